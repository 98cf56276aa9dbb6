package http

import (
	"botguard-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1")
	api.Use(mw.Auth())
	{
		api.POST("/normalizer/preview", h.Preview)
		api.GET("/normalizer/rules", h.ListRules)
		api.PUT("/normalizer/rules/:rule_name/enable", h.EnableRule)
		api.PUT("/normalizer/rules/:rule_name/disable", h.DisableRule)
	}
}
