package httpserver

import (
	"net/http"

	"depression-srv/config"
	"depression-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Student depression prediction API"
	HealthVersion = "1.0.0"
	ServiceName   = "depression-srv"
)

const statusConnected = "connected"

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck reports ready when the model is loaded, the questionnaire is readable
// and every configured backing service answers.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} map[string]interface{} "API is not ready"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()

	if srv.predictionUC == nil || !srv.predictionUC.Ready() {
		notReady(c, "Prediction model not loaded", nil)
		return
	}
	if srv.questionnaireUC == nil {
		notReady(c, "Questionnaire not wired", nil)
		return
	}
	if _, err := srv.questionnaireUC.ListQuestions(ctx); err != nil {
		notReady(c, "Questionnaire unreadable", err)
		return
	}

	checks := gin.H{"model": "loaded", "questionnaire": "readable"}
	if srv.redisClient != nil {
		if err := srv.redisClient.Ping(ctx); err != nil {
			notReady(c, "Redis connection failed", err)
			return
		}
		checks["redis"] = statusConnected
	}
	if srv.minioClient != nil {
		if err := srv.minioClient.HealthCheck(ctx); err != nil {
			notReady(c, "MinIO connection failed", err)
			return
		}
		checks["minio"] = statusConnected
	}
	if srv.storageSource == config.StorageSourceMinIO {
		exists, err := srv.minioClient.FileExists(ctx, srv.bucket, srv.questionnaireObject)
		if err != nil {
			notReady(c, "Questionnaire object check failed", err)
			return
		}
		if !exists {
			notReady(c, "Questionnaire object missing", nil)
			return
		}
		checks["questionnaire_object"] = "present"
	}

	response.OK(c, gin.H{
		"status":  "ready",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
		"checks":  checks,
	})
}

func notReady(c *gin.Context, message string, err error) {
	body := gin.H{
		"status":  "not ready",
		"message": message,
	}
	if err != nil {
		body["error"] = err.Error()
	}
	c.JSON(http.StatusServiceUnavailable, body)
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}
