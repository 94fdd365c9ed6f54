package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Recorder records service metrics. Implementations are safe for concurrent use.
type Recorder interface {
	ObserveHTTP(method, route string, status int, elapsed time.Duration)
	IncPrediction(risk string)
	SetModelLoaded(loaded bool)
	// Handler serves the exposition format. Nop recorders return 404.
	Handler() http.Handler
}

// New creates a Recorder backed by its own registry, including Go runtime and process collectors.
func New(namespace string) Recorder {
	reg := prometheus.NewRegistry()
	m := &promRecorder{
		registry: reg,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		predictions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "predictions_total",
			Help:      "Predictions served by risk label.",
		}, []string{"risk"}),
		modelLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "model_loaded",
			Help:      "1 when the classifier artifact is loaded.",
		}),
	}
	reg.MustRegister(
		m.httpRequests,
		m.httpDuration,
		m.predictions,
		m.modelLoaded,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// NewNop returns a Recorder that drops everything.
func NewNop() Recorder {
	return nopRecorder{}
}
