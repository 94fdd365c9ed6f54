package errors

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrValidation is the base HTTPError for request validation failures.
var ErrValidation = NewHTTPError(http.StatusUnprocessableEntity, "Validation failed")

// NewValidationError converts a validator error into a 422 HTTPError with one detail per field.
// Errors that are not validator errors produce a single detail with an empty field.
func NewValidationError(err error) *HTTPError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return ErrValidation.WithDetails([]FieldError{{Message: err.Error()}})
	}

	details := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, FieldError{
			Field:   fe.Field(),
			Message: fieldMessage(fe),
		})
	}
	return ErrValidation.WithDetails(details)
}

// NewFieldError builds a 422 HTTPError for a single field.
func NewFieldError(field, message string) *HTTPError {
	return ErrValidation.WithDetails([]FieldError{{Field: field, Message: message}})
}

// UseJSONFieldNames makes v report json tag names instead of Go field names.
func UseJSONFieldNames(v *validator.Validate) {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	case "min", "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "max", "lte":
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	default:
		return fmt.Sprintf("field must satisfy %s constraint", fe.Tag())
	}
}
