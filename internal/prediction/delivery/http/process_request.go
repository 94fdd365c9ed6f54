package http

import (
	"encoding/json"
	"errors"
	"io"
	"reflect"

	"depression-srv/internal/model"
	pkgErrors "depression-srv/pkg/errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const fieldBody = "body"

func (h *handler) processPredictRequest(c *gin.Context) (model.AnswerSet, error) {
	var req predictReq

	if err := c.ShouldBindJSON(&req); err != nil {
		return model.AnswerSet{}, bindError(err)
	}

	return req.toInput(), nil
}

// bindError turns a gin binding failure into the HTTPError it renders as.
func bindError(err error) error {
	var (
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
		verrs     validator.ValidationErrors
	)
	switch {
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF), errors.As(err, &syntaxErr):
		return errMalformedBody
	case errors.As(err, &verrs):
		return pkgErrors.NewValidationError(verrs)
	case errors.As(err, &typeErr):
		field := typeErr.Field
		if field == "" {
			field = fieldBody
		}
		return pkgErrors.NewFieldError(field, typeMessage(typeErr.Type))
	default:
		return errMalformedBody
	}
}

func typeMessage(t reflect.Type) string {
	if t == nil {
		return "invalid type"
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int64, reflect.Int32:
		return "value is not a valid integer"
	case reflect.Float64, reflect.Float32:
		return "value is not a valid number"
	case reflect.String:
		return "value is not a valid string"
	case reflect.Struct, reflect.Map:
		return "body must be a JSON object"
	default:
		return "invalid type"
	}
}
