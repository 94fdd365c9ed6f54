package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"depression-srv/config"
	questionnaireHTTP "depression-srv/internal/questionnaire/delivery/http"
	"depression-srv/internal/questionnaire/repository"
	questionnaireFile "depression-srv/internal/questionnaire/repository/file"
	questionnaireMinio "depression-srv/internal/questionnaire/repository/minio"
	questionnaireRedis "depression-srv/internal/questionnaire/repository/redis"
	questionnaireUsecase "depression-srv/internal/questionnaire/usecase"
)

func (srv *HTTPServer) setupQuestionnaireDomain(ctx context.Context, r *gin.RouterGroup) error {
	var repo repository.DocumentRepository
	switch srv.storageSource {
	case config.StorageSourceMinIO:
		repo = questionnaireMinio.New(srv.minioClient, srv.bucket, srv.questionnaireObject, srv.l)
	default:
		repo = questionnaireFile.New(srv.questionnairePath, srv.l)
	}
	if srv.redisClient != nil {
		repo = questionnaireRedis.New(repo, srv.redisClient, srv.cacheTTL, srv.l)
	}

	srv.questionnaireUC = questionnaireUsecase.New(repo, srv.l)

	handler := questionnaireHTTP.New(srv.l, srv.questionnaireUC)
	handler.RegisterRoutes(r)

	srv.l.Infof(ctx, "Questionnaire domain registered (source=%s, cache=%t)", srv.storageSource, srv.redisClient != nil)
	return nil
}
