package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	predictionHTTP "depression-srv/internal/prediction/delivery/http"
	predictionUsecase "depression-srv/internal/prediction/usecase"
)

func (srv *HTTPServer) setupPredictionDomain(ctx context.Context, r *gin.RouterGroup) error {
	srv.predictionUC = predictionUsecase.New(srv.classifier, srv.metrics, srv.l)

	handler := predictionHTTP.New(srv.l, srv.predictionUC)
	handler.RegisterRoutes(r)

	srv.l.Infof(ctx, "Prediction domain registered (model ready=%t)", srv.predictionUC.Ready())
	return nil
}
