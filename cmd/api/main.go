package main

import (
	"context"
	"fmt"

	"depression-srv/config"
	_ "depression-srv/docs" // Import swagger docs
	"depression-srv/internal/httpserver"
	"depression-srv/pkg/classifier"
	"depression-srv/pkg/log"
	"depression-srv/pkg/metrics"
	pkgMinio "depression-srv/pkg/minio"
	pkgRedis "depression-srv/pkg/redis"
)

const (
	metricsNamespace = "depression"
	minioMaxRetries  = 3
)

// @title       Student Depression Prediction API
// @description Serves the student questionnaire and scores answers with a linear SVM classifier.
// @version     1
// @BasePath    /
func main() {
	// 1. Load configuration
	// Reads config from YAML file and environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})
	ctx := context.Background()

	// 3. Initialize MinIO (only when artifacts live in object storage)
	var minioClient pkgMinio.MinIO
	if cfg.Storage.Source == config.StorageSourceMinIO {
		minioClient, err = pkgMinio.NewMinIOWithRetry(ctx, &cfg.MinIO, minioMaxRetries)
		if err != nil {
			logger.Error(ctx, "Failed to connect to MinIO: ", err)
			return
		}
		defer minioClient.Close()
		logger.Infof(ctx, "MinIO connected successfully to %s (bucket %s)", cfg.MinIO.Endpoint, cfg.MinIO.Bucket)
	}

	// 4. Initialize Redis (optional questionnaire cache)
	var redisClient pkgRedis.IRedis
	if cfg.Redis.Enabled {
		redisClient, err = pkgRedis.NewRedis(pkgRedis.RedisConfig{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			logger.Error(ctx, "Failed to connect to Redis: ", err)
			return
		}
		defer redisClient.Close()
		logger.Infof(ctx, "Redis connected successfully to %s:%d (DB %d)", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)
	}

	// 5. Load classifier artifact
	// The model is loaded once; without it the service runs degraded unless model.required is set.
	clf, err := loadClassifier(ctx, cfg, minioClient)
	if err != nil {
		if cfg.Model.Required {
			logger.Fatalf(ctx, "Failed to load classifier: %v", err)
		}
		logger.Warnf(ctx, "Failed to load classifier, predictions disabled: %v", err)
	} else {
		info := clf.Info()
		logger.Infof(ctx, "Classifier %s@%s loaded (%d features)", info.Name, info.Version, len(info.Features))
	}

	// 6. Initialize metrics
	rec := metrics.NewNop()
	metricsPath := ""
	if cfg.Metrics.Enabled {
		rec = metrics.New(metricsNamespace)
		metricsPath = cfg.Metrics.Path
	}

	// 7. Initialize HTTP server
	httpServer, err := httpserver.New(httpserver.Config{
		// Server Configuration
		Logger:         logger,
		Host:           cfg.HTTPServer.Host,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		AllowedOrigins: cfg.CORS.AllowedOrigins,

		// Domain Configuration
		StorageSource:       cfg.Storage.Source,
		QuestionnairePath:   cfg.Questionnaire.Path,
		QuestionnaireObject: cfg.Questionnaire.Object,
		Bucket:              cfg.MinIO.Bucket,
		Classifier:          clf,

		// Storage Configuration
		MinIO:    minioClient,
		Redis:    redisClient,
		CacheTTL: cfg.Redis.QuestionnaireTTL,

		// Monitoring Configuration
		Metrics:     rec,
		MetricsPath: metricsPath,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}

func loadClassifier(ctx context.Context, cfg *config.Config, storage pkgMinio.MinIO) (classifier.IClassifier, error) {
	var src classifier.Source = classifier.FileSource{Path: cfg.Model.Path}
	if cfg.Storage.Source == config.StorageSourceMinIO {
		src = pkgMinio.ObjectSource{Client: storage, Bucket: cfg.MinIO.Bucket, Object: cfg.Model.Object}
	}
	clf, err := classifier.Load(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src, err)
	}
	return clf, nil
}
