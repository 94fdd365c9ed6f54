package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"depression-srv/pkg/log"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type observation struct {
	method, route string
	status        int
}

type fakeRecorder struct {
	observed []observation
}

func (f *fakeRecorder) ObserveHTTP(method, route string, status int, _ time.Duration) {
	f.observed = append(f.observed, observation{method: method, route: route, status: status})
}
func (f *fakeRecorder) IncPrediction(string)  {}
func (f *fakeRecorder) SetModelLoaded(bool)   {}
func (f *fakeRecorder) Handler() http.Handler { return http.NotFoundHandler() }

func newEngine(mw Middleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Recovery(log.NewNop()), mw.RequestID(), mw.Metrics(), mw.CORS())
	r.GET("/ping/:id", func(c *gin.Context) {
		id, _ := log.RequestIDFromContext(c.Request.Context())
		c.String(http.StatusOK, id)
	})
	r.GET("/panic", func(c *gin.Context) { panic("boom") })
	return r
}

func TestRecovery(t *testing.T) {
	r := newEngine(New(log.NewNop(), nil, nil))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"error_code":500`)
}

func TestRequestID(t *testing.T) {
	r := newEngine(New(log.NewNop(), nil, nil))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping/1", nil))
	id := rec.Header().Get(HeaderRequestID)
	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, id, rec.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/ping/1", nil)
	req.Header.Set(HeaderRequestID, "caller-id")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, "caller-id", rec.Header().Get(HeaderRequestID))
	assert.Equal(t, "caller-id", rec.Body.String())
}

func TestCORS(t *testing.T) {
	r := newEngine(New(log.NewNop(), nil, []string{"http://localhost:3000"}))

	req := httptest.NewRequest(http.MethodGet, "/ping/1", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))

	req = httptest.NewRequest(http.MethodGet, "/ping/1", nil)
	req.Header.Set("Origin", "http://evil.example")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_Preflight(t *testing.T) {
	r := gin.New()
	mw := New(log.NewNop(), nil, []string{"http://localhost:3000"})
	r.Use(mw.CORS())
	r.POST("/model/predict", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/model/predict", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "POST")
	req.Header.Set("Access-Control-Request-Headers", "content-type")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "content-type", rec.Header().Get("Access-Control-Allow-Headers"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "POST")
}

func TestMetrics_UsesRouteTemplate(t *testing.T) {
	rec := &fakeRecorder{}
	r := newEngine(New(log.NewNop(), rec, nil))

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ping/42", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	require.Len(t, rec.observed, 2)
	assert.Equal(t, observation{method: "GET", route: "/ping/:id", status: 200}, rec.observed[0])
	assert.Equal(t, observation{method: "GET", route: unmatchedRoute, status: 404}, rec.observed[1])
}
