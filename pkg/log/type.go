package log

import "go.uber.org/zap"

// ZapConfig configures the zap logger.
type ZapConfig struct {
	Level        string // debug | info | warn | error
	Mode         string // debug | production
	Encoding     string // console | json
	ColorEnabled bool
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}

// ctxKey is the context key for request scoped log fields.
type ctxKey struct{}

const (
	ModeProduction = "production"
	ModeDebug      = "debug"

	EncodingConsole = "console"
	EncodingJSON    = "json"

	requestIDField = "request_id"
)
