package http

import (
	"depression-srv/internal/questionnaire"
	"depression-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler - Interface for the questionnaire HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup)
}

type handler struct {
	l  log.Logger
	uc questionnaire.UseCase
}

// New - Factory
func New(l log.Logger, uc questionnaire.UseCase) Handler {
	return &handler{l: l, uc: uc}
}
