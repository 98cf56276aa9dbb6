package http

import (
	"botguard-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1")
	api.Use(mw.Auth())
	{
		api.GET("/monitoring/status", h.GetStatus)
		api.POST("/monitoring/summary", h.GenerateSummary)
	}

	internal := r.Group("/internal/api/v1")
	internal.Use(mw.InternalAuth())
	{
		internal.POST("/monitoring/summary", h.GenerateSummary)
	}
}
