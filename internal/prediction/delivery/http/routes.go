package http

import "github.com/gin-gonic/gin"

func (h *handler) RegisterRoutes(r *gin.RouterGroup) {
	g := r.Group("/model")
	g.POST("/predict", h.Predict)
	g.GET("/example", h.Example)
	g.GET("/info", h.Info)
}
