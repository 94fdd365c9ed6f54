package middleware

import (
	"depression-srv/pkg/log"
	"depression-srv/pkg/metrics"
)

type Middleware struct {
	l              log.Logger
	metrics        metrics.Recorder
	allowedOrigins map[string]struct{}
}

func New(l log.Logger, rec metrics.Recorder, allowedOrigins []string) Middleware {
	if rec == nil {
		rec = metrics.NewNop()
	}
	origins := make(map[string]struct{}, len(allowedOrigins))
	for _, o := range allowedOrigins {
		origins[o] = struct{}{}
	}
	return Middleware{
		l:              l,
		metrics:        rec,
		allowedOrigins: origins,
	}
}
