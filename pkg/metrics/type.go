package metrics

import "github.com/prometheus/client_golang/prometheus"

type promRecorder struct {
	registry     *prometheus.Registry
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	predictions  *prometheus.CounterVec
	modelLoaded  prometheus.Gauge
}

type nopRecorder struct{}
