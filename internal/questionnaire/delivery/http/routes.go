package http

import "github.com/gin-gonic/gin"

func (h *handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/questions", h.List)
}
