package httpserver

import (
	"context"
	"fmt"
	"net/http"

	"depression-srv/config"
	"depression-srv/internal/middleware"
	pkgErrors "depression-srv/pkg/errors"
	"depression-srv/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (srv *HTTPServer) mapHandlers() error {
	ctx := context.Background()
	mw := middleware.New(srv.l, srv.metrics, srv.allowedOrigins)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		pkgErrors.UseJSONFieldNames(v)
	}

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	root := &srv.gin.RouterGroup
	if err := srv.setupQuestionnaireDomain(ctx, root); err != nil {
		return fmt.Errorf("questionnaire domain: %w", err)
	}
	if err := srv.setupPredictionDomain(ctx, root); err != nil {
		return fmt.Errorf("prediction domain: %w", err)
	}

	srv.gin.NoRoute(response.NotFound)

	return nil
}

func (srv *HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(middleware.Recovery(srv.l))
	srv.gin.Use(mw.RequestID())
	srv.gin.Use(mw.Logger())
	srv.gin.Use(mw.Metrics())
	srv.gin.Use(mw.CORS())

	srv.l.Infof(context.Background(), "CORS allowed origins: %v", srv.allowedOrigins)
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/", srv.root)
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	if srv.metricsPath != "" {
		srv.gin.GET(srv.metricsPath, gin.WrapH(srv.metrics.Handler()))
	}

	// Swagger UI and docs (non-production only)
	if srv.environment != config.EnvironmentProduction {
		srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
			swaggerFiles.Handler,
			ginSwagger.URL("doc.json"),
			ginSwagger.DefaultModelsExpandDepth(-1),
		))
	}
}

// root answers with an empty object.
// @Summary Root
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (srv *HTTPServer) root(c *gin.Context) {
	response.Raw(c, http.StatusOK, gin.H{})
}
