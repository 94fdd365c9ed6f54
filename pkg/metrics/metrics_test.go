package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromRecorder(t *testing.T) {
	r := New("depression").(*promRecorder)

	r.ObserveHTTP(http.MethodPost, "/model/predict", http.StatusOK, 20*time.Millisecond)
	r.ObserveHTTP(http.MethodPost, "/model/predict", http.StatusOK, 30*time.Millisecond)
	r.ObserveHTTP(http.MethodPost, "/model/predict", http.StatusUnprocessableEntity, time.Millisecond)
	r.IncPrediction("Alto")
	r.SetModelLoaded(true)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.httpRequests.WithLabelValues(http.MethodPost, "/model/predict", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.httpRequests.WithLabelValues(http.MethodPost, "/model/predict", "422")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.predictions.WithLabelValues("Alto")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.modelLoaded))

	r.SetModelLoaded(false)
	assert.Equal(t, 0.0, testutil.ToFloat64(r.modelLoaded))
}

func TestHandler(t *testing.T) {
	r := New("depression")
	r.IncPrediction("Baixo")

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body, _ := io.ReadAll(rec.Body)
	assert.Contains(t, string(body), `depression_predictions_total{risk="Baixo"} 1`)

	rec = httptest.NewRecorder()
	NewNop().Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
