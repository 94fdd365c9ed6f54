package response

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"depression-srv/pkg/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func record(fn func(c *gin.Context)) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	fn(c)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) Resp {
	t.Helper()
	var resp Resp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestOK(t *testing.T) {
	w := record(func(c *gin.Context) { OK(c, gin.H{"status": "alive"}) })
	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	assert.Equal(t, 0, resp.ErrorCode)
	assert.Equal(t, MessageSuccess, resp.Message)
}

func TestError(t *testing.T) {
	t.Run("http error keeps status", func(t *testing.T) {
		w := record(func(c *gin.Context) {
			Error(c, errors.NewHTTPError(http.StatusNotFound, "Questionnaire not found"))
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
		resp := decode(t, w)
		assert.Equal(t, "Questionnaire not found", resp.Message)
		assert.Nil(t, resp.Errors)
	})

	t.Run("wrapped http error is unwrapped", func(t *testing.T) {
		w := record(func(c *gin.Context) {
			Error(c, fmt.Errorf("delivery: %w", errors.NewFieldError("cgpa", "field required")))
		})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.NotNil(t, decode(t, w).Errors)
	})

	t.Run("unknown error is a 500", func(t *testing.T) {
		w := record(func(c *gin.Context) { Error(c, stderrors.New("boom")) })
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, MessageInternalError, decode(t, w).Message)
	})
}

func TestRaw(t *testing.T) {
	w := record(func(c *gin.Context) { Raw(c, http.StatusOK, []int{1, 2}) })
	assert.Equal(t, "[1,2]", w.Body.String())
}
