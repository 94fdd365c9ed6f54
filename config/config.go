package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	// StorageSourceFile reads the questionnaire and the classifier artifact from local paths.
	StorageSourceFile = "file"
	// StorageSourceMinIO reads them as objects from the configured bucket.
	StorageSourceMinIO = "minio"

	EnvironmentProduction = "production"
)

// Config holds all service configuration.
type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	CORS       CORSConfig

	// Domain
	Questionnaire QuestionnaireConfig
	Model         ModelConfig
	Storage       StorageConfig

	// MinIO - Artifact storage
	MinIO MinIOConfig

	// Redis - Questionnaire cache
	Redis RedisConfig

	// Monitoring
	Metrics MetricsConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// HTTPServerConfig is the configuration for the HTTP server
type HTTPServerConfig struct {
	Host string
	Port int
	Mode string
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// CORSConfig lists the browser origins allowed to call the API.
type CORSConfig struct {
	AllowedOrigins []string
}

// QuestionnaireConfig locates the questionnaire document.
type QuestionnaireConfig struct {
	Path   string
	Object string
}

// ModelConfig locates the classifier artifact.
// When Required is false the service starts degraded if the artifact cannot be loaded.
type ModelConfig struct {
	Path     string
	Object   string
	Required bool
}

// StorageConfig selects where questionnaire and model are read from.
type StorageConfig struct {
	Source string
}

// MinIOConfig is the configuration for MinIO
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Region    string
	Bucket    string
}

// RedisConfig is the configuration for Redis
type RedisConfig struct {
	Enabled          bool
	Host             string
	Port             int
	Password         string
	DB               int
	QuestionnaireTTL time.Duration
}

// MetricsConfig is the configuration for the Prometheus endpoint
type MetricsConfig struct {
	Enabled bool
	Path    string
}

// Load loads configuration using Viper
func Load() (*Config, error) {
	// .env is optional; real environment variables win over it
	_ = godotenv.Load()

	// Set config file name and paths
	viper.SetConfigName("depression-config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/depression-srv/")

	// Enable environment variable override
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set defaults
	setDefaults()

	// Read config file (optional - will use env vars if file not found)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Host = viper.GetString("http_server.host")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.CORS.AllowedOrigins = viper.GetStringSlice("cors.allowed_origins")

	// Questionnaire & model
	cfg.Questionnaire.Path = viper.GetString("questionnaire.path")
	cfg.Questionnaire.Object = viper.GetString("questionnaire.object")
	cfg.Model.Path = viper.GetString("model.path")
	cfg.Model.Object = viper.GetString("model.object")
	cfg.Model.Required = viper.GetBool("model.required")
	cfg.Storage.Source = strings.ToLower(viper.GetString("storage.source"))

	// MinIO
	cfg.MinIO.Endpoint = viper.GetString("minio.endpoint")
	cfg.MinIO.AccessKey = viper.GetString("minio.access_key")
	cfg.MinIO.SecretKey = viper.GetString("minio.secret_key")
	cfg.MinIO.UseSSL = viper.GetBool("minio.use_ssl")
	cfg.MinIO.Region = viper.GetString("minio.region")
	cfg.MinIO.Bucket = viper.GetString("minio.bucket")

	// Redis
	cfg.Redis.Enabled = viper.GetBool("redis.enabled")
	cfg.Redis.Host = viper.GetString("redis.host")
	cfg.Redis.Port = viper.GetInt("redis.port")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")
	cfg.Redis.QuestionnaireTTL = viper.GetDuration("redis.questionnaire_ttl")

	// Metrics
	cfg.Metrics.Enabled = viper.GetBool("metrics.enabled")
	cfg.Metrics.Path = viper.GetString("metrics.path")

	// Validate required fields
	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	// Environment
	viper.SetDefault("environment.name", "development")

	// HTTP Server
	viper.SetDefault("http_server.host", "")
	viper.SetDefault("http_server.port", 3001)
	viper.SetDefault("http_server.mode", "debug")

	// Logger
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	// CORS (the questionnaire UI dev server)
	viper.SetDefault("cors.allowed_origins", []string{"http://localhost:3000"})

	// Questionnaire & model
	viper.SetDefault("questionnaire.path", "data/questions.json")
	viper.SetDefault("questionnaire.object", "questions.json")
	viper.SetDefault("model.path", "data/student-depression-svm.json")
	viper.SetDefault("model.object", "student-depression-svm.json")
	viper.SetDefault("model.required", false)
	viper.SetDefault("storage.source", StorageSourceFile)

	// MinIO
	viper.SetDefault("minio.endpoint", "localhost:9000")
	viper.SetDefault("minio.access_key", "minioadmin")
	viper.SetDefault("minio.secret_key", "minioadmin")
	viper.SetDefault("minio.use_ssl", false)
	viper.SetDefault("minio.region", "us-east-1")
	viper.SetDefault("minio.bucket", "depression-models")

	// Redis
	viper.SetDefault("redis.enabled", false)
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("redis.questionnaire_ttl", "10m")

	// Metrics
	viper.SetDefault("metrics.enabled", true)
	viper.SetDefault("metrics.path", "/metrics")
}

func validate(cfg *Config) error {
	if cfg.HTTPServer.Port <= 0 || cfg.HTTPServer.Port > 65535 {
		return fmt.Errorf("http_server.port must be between 1 and 65535")
	}

	switch cfg.Storage.Source {
	case StorageSourceFile:
		if cfg.Questionnaire.Path == "" {
			return fmt.Errorf("questionnaire.path is required")
		}
		if cfg.Model.Path == "" {
			return fmt.Errorf("model.path is required")
		}
	case StorageSourceMinIO:
		if cfg.MinIO.Endpoint == "" {
			return fmt.Errorf("minio.endpoint is required")
		}
		if cfg.MinIO.AccessKey == "" {
			return fmt.Errorf("minio.access_key is required")
		}
		if cfg.MinIO.SecretKey == "" {
			return fmt.Errorf("minio.secret_key is required")
		}
		if cfg.MinIO.Bucket == "" {
			return fmt.Errorf("minio.bucket is required")
		}
		if cfg.Questionnaire.Object == "" {
			return fmt.Errorf("questionnaire.object is required")
		}
		if cfg.Model.Object == "" {
			return fmt.Errorf("model.object is required")
		}
	default:
		return fmt.Errorf("storage.source must be %q or %q, got %q", StorageSourceFile, StorageSourceMinIO, cfg.Storage.Source)
	}

	if cfg.Redis.Enabled {
		if cfg.Redis.Host == "" {
			return fmt.Errorf("redis.host is required")
		}
		if cfg.Redis.Port == 0 {
			return fmt.Errorf("redis.port is required")
		}
		if cfg.Redis.QuestionnaireTTL <= 0 {
			return fmt.Errorf("redis.questionnaire_ttl must be greater than 0")
		}
	}

	if cfg.Metrics.Enabled && !strings.HasPrefix(cfg.Metrics.Path, "/") {
		return fmt.Errorf("metrics.path must start with '/'")
	}

	return nil
}
