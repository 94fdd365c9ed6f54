package log

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestIDFromContext(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		_, ok := RequestIDFromContext(context.Background())
		assert.False(t, ok)
	})

	t.Run("empty id is ignored", func(t *testing.T) {
		_, ok := RequestIDFromContext(WithRequestID(context.Background(), ""))
		assert.False(t, ok)
	})

	t.Run("present", func(t *testing.T) {
		id, ok := RequestIDFromContext(WithRequestID(context.Background(), "abc"))
		assert.True(t, ok)
		assert.Equal(t, "abc", id)
	})
}

func TestInit(t *testing.T) {
	for _, cfg := range []ZapConfig{
		{Level: "debug", Mode: ModeDebug, Encoding: EncodingConsole, ColorEnabled: true},
		{Level: "info", Mode: ModeProduction, Encoding: EncodingJSON},
		{Level: "not-a-level", Mode: ModeProduction, Encoding: EncodingJSON},
	} {
		l := Init(cfg)
		assert.NotNil(t, l)
		l.Debugf(WithRequestID(context.Background(), "req-1"), "level=%s", cfg.Level)
	}
}
