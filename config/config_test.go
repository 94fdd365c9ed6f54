package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		HTTPServer:    HTTPServerConfig{Port: 3001},
		Questionnaire: QuestionnaireConfig{Path: "data/questions.json", Object: "questions.json"},
		Model:         ModelConfig{Path: "data/model.json", Object: "model.json"},
		Storage:       StorageConfig{Source: StorageSourceFile},
		MinIO:         MinIOConfig{Endpoint: "localhost:9000", AccessKey: "a", SecretKey: "s", Bucket: "b"},
		Redis:         RedisConfig{Host: "localhost", Port: 6379, QuestionnaireTTL: time.Minute},
		Metrics:       MetricsConfig{Enabled: true, Path: "/metrics"},
	}
}

func TestValidate(t *testing.T) {
	tcs := map[string]struct {
		mutate  func(c *Config)
		wantErr bool
	}{
		"valid file source": {
			mutate: func(c *Config) {},
		},
		"valid minio source": {
			mutate: func(c *Config) { c.Storage.Source = StorageSourceMinIO },
		},
		"unknown source": {
			mutate:  func(c *Config) { c.Storage.Source = "s3" },
			wantErr: true,
		},
		"missing model path": {
			mutate:  func(c *Config) { c.Model.Path = "" },
			wantErr: true,
		},
		"minio without bucket": {
			mutate: func(c *Config) {
				c.Storage.Source = StorageSourceMinIO
				c.MinIO.Bucket = ""
			},
			wantErr: true,
		},
		"redis enabled without ttl": {
			mutate: func(c *Config) {
				c.Redis.Enabled = true
				c.Redis.QuestionnaireTTL = 0
			},
			wantErr: true,
		},
		"bad port": {
			mutate:  func(c *Config) { c.HTTPServer.Port = 0 },
			wantErr: true,
		},
		"metrics path without slash": {
			mutate:  func(c *Config) { c.Metrics.Path = "metrics" },
			wantErr: true,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(cfg)
			err := validate(cfg)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
