package httpserver

import (
	"errors"
	"time"

	"depression-srv/config"
	"depression-srv/internal/prediction"
	"depression-srv/internal/questionnaire"
	"depression-srv/pkg/classifier"
	"depression-srv/pkg/log"
	"depression-srv/pkg/metrics"
	pkgMinio "depression-srv/pkg/minio"
	pkgRedis "depression-srv/pkg/redis"

	"github.com/gin-gonic/gin"
)

type HTTPServer struct {
	// Server Configuration
	gin            *gin.Engine
	l              log.Logger
	host           string
	port           int
	mode           string
	environment    string
	allowedOrigins []string

	// Domain Configuration
	storageSource       string
	questionnairePath   string
	questionnaireObject string
	bucket              string
	classifier          classifier.IClassifier

	// Storage Configuration
	minioClient pkgMinio.MinIO
	redisClient pkgRedis.IRedis
	cacheTTL    time.Duration

	// Monitoring Configuration
	metrics     metrics.Recorder
	metricsPath string

	// Wired in mapHandlers
	questionnaireUC questionnaire.UseCase
	predictionUC    prediction.UseCase
}

type Config struct {
	// Server Configuration
	Logger         log.Logger
	Host           string
	Port           int
	Mode           string
	Environment    string
	AllowedOrigins []string

	// Domain Configuration
	StorageSource       string
	QuestionnairePath   string
	QuestionnaireObject string
	Bucket              string
	// Classifier may be nil; predictions then answer 503.
	Classifier classifier.IClassifier

	// Storage Configuration
	MinIO pkgMinio.MinIO
	// Redis is optional. When set the questionnaire document is cached for CacheTTL.
	Redis    pkgRedis.IRedis
	CacheTTL time.Duration

	// Monitoring Configuration
	Metrics     metrics.Recorder
	MetricsPath string
}

// New creates a new HTTPServer instance with the provided configuration.
func New(cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	rec := cfg.Metrics
	if rec == nil {
		rec = metrics.NewNop()
	}

	srv := &HTTPServer{
		// Server Configuration
		l:              cfg.Logger,
		gin:            gin.New(),
		host:           cfg.Host,
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		allowedOrigins: cfg.AllowedOrigins,

		// Domain Configuration
		storageSource:       cfg.StorageSource,
		questionnairePath:   cfg.QuestionnairePath,
		questionnaireObject: cfg.QuestionnaireObject,
		bucket:              cfg.Bucket,
		classifier:          cfg.Classifier,

		// Storage Configuration
		minioClient: cfg.MinIO,
		redisClient: cfg.Redis,
		cacheTTL:    cfg.CacheTTL,

		// Monitoring Configuration
		metrics:     rec,
		metricsPath: cfg.MetricsPath,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv *HTTPServer) validate() error {
	// Server Configuration
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}

	// Domain Configuration
	switch srv.storageSource {
	case config.StorageSourceFile:
		if srv.questionnairePath == "" {
			return errors.New("questionnairePath is required")
		}
	case config.StorageSourceMinIO:
		if srv.minioClient == nil {
			return errors.New("minioClient is required for minio storage")
		}
		if srv.bucket == "" || srv.questionnaireObject == "" {
			return errors.New("bucket and questionnaireObject are required for minio storage")
		}
	default:
		return errors.New("storageSource must be file or minio")
	}

	// Storage Configuration (optional)
	if srv.redisClient != nil && srv.cacheTTL <= 0 {
		return errors.New("cacheTTL must be positive when redis is set")
	}

	return nil
}
