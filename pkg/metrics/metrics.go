package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (m *promRecorder) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (m *promRecorder) IncPrediction(risk string) {
	m.predictions.WithLabelValues(risk).Inc()
}

func (m *promRecorder) SetModelLoaded(loaded bool) {
	if loaded {
		m.modelLoaded.Set(1)
		return
	}
	m.modelLoaded.Set(0)
}

func (m *promRecorder) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (nopRecorder) ObserveHTTP(string, string, int, time.Duration) {}
func (nopRecorder) IncPrediction(string)                           {}
func (nopRecorder) SetModelLoaded(bool)                            {}
func (nopRecorder) Handler() http.Handler                          { return http.NotFoundHandler() }
