package http

import (
	"depression-srv/internal/prediction"
	"depression-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler - Interface for the prediction HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup)
}

type handler struct {
	l  log.Logger
	uc prediction.UseCase
}

// New - Factory
func New(l log.Logger, uc prediction.UseCase) Handler {
	return &handler{l: l, uc: uc}
}
