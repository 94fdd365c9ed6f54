package response

import (
	stderrors "errors"
	"net/http"

	"depression-srv/pkg/errors"

	"github.com/gin-gonic/gin"
)

// OK writes data inside the standard envelope with status 200.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	})
}

// Raw writes data as is. Used by endpoints whose body shape is a client contract.
func Raw(c *gin.Context, status int, data any) {
	c.JSON(status, data)
}

// Error writes err inside the standard envelope. An *errors.HTTPError keeps its status,
// anything else becomes a 500 with a generic message.
func Error(c *gin.Context, err error) {
	var httpErr *errors.HTTPError
	if !stderrors.As(err, &httpErr) {
		c.JSON(http.StatusInternalServerError, Resp{
			ErrorCode: http.StatusInternalServerError,
			Message:   MessageInternalError,
		})
		return
	}

	resp := Resp{
		ErrorCode: httpErr.Code,
		Message:   httpErr.Message,
	}
	if len(httpErr.Details) > 0 {
		resp.Errors = httpErr.Details
	}
	c.JSON(httpErr.StatusCode, resp)
}

// NotFound writes a 404 envelope.
func NotFound(c *gin.Context) {
	Error(c, errors.NewHTTPError(http.StatusNotFound, MessageNotFound))
}

// PanicError writes the 500 envelope after a recovered panic.
func PanicError(c *gin.Context, _ any) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   MessageInternalError,
	})
}
