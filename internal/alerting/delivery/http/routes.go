package http

import (
	"botguard-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1")
	api.Use(mw.Auth())
	{
		api.GET("/alerts", h.ListAlerts)
		api.GET("/alerts/:alert_id", h.GetAlert)
		api.PUT("/alerts/:alert_id/acknowledge", h.Acknowledge)
		api.PUT("/alerts/:alert_id/resolve", h.Resolve)
	}
}
