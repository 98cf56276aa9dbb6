package http

import (
	"botguard-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1")
	api.Use(mw.Auth())
	{
		api.POST("/analysis", h.Analyze)
	}

	internal := r.Group("/internal/api/v1")
	internal.Use(mw.ServiceAuth())
	{
		internal.POST("/analysis", h.Analyze)
	}
}
