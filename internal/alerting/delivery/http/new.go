package http

import (
	"botguard-srv/internal/alerting"
	"botguard-srv/internal/middleware"
	"botguard-srv/pkg/discord"
	"botguard-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l       log.Logger
	uc      alerting.UseCase
	discord discord.IDiscord
}

func New(l log.Logger, uc alerting.UseCase, discord discord.IDiscord) Handler {
	return &handler{
		l:       l,
		uc:      uc,
		discord: discord,
	}
}
