package http

import (
	"errors"
	"net/http"

	"depression-srv/internal/prediction"
	pkgErrors "depression-srv/pkg/errors"
)

var (
	errMalformedBody = pkgErrors.NewHTTPError(
		http.StatusBadRequest, "Malformed JSON body",
	)
	errModelUnavailable = pkgErrors.NewHTTPError(
		http.StatusServiceUnavailable, "Prediction model unavailable",
	)
	errPredictFailed = pkgErrors.NewHTTPError(
		http.StatusInternalServerError, "Prediction failed",
	)
)

const msgInvalidAnswer = "value is not an accepted answer"

func (h *handler) mapError(err error) error {
	var invalid *prediction.InvalidAnswerError
	switch {
	case errors.As(err, &invalid):
		return pkgErrors.NewFieldError(invalid.Field, msgInvalidAnswer)
	case errors.Is(err, prediction.ErrInvalidAnswer):
		return pkgErrors.ErrValidation
	case errors.Is(err, prediction.ErrModelUnavailable):
		return errModelUnavailable
	case errors.Is(err, prediction.ErrPredictFailed):
		return errPredictFailed
	default:
		panic(err)
	}
}
