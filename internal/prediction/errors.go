package prediction

import (
	"errors"
	"fmt"
)

// Domain errors
var (
	// ErrInvalidAnswer - an answer cannot be encoded for the classifier
	ErrInvalidAnswer = errors.New("prediction: invalid answer")

	// ErrModelUnavailable - the classifier artifact is not loaded
	ErrModelUnavailable = errors.New("prediction: model unavailable")

	// ErrPredictFailed - the classifier rejected the encoded vector
	ErrPredictFailed = errors.New("prediction: classifier failed")
)

// InvalidAnswerError names the answer that could not be encoded.
type InvalidAnswerError struct {
	Field string
	Value string
}

func (e *InvalidAnswerError) Error() string {
	return fmt.Sprintf("%v: %s=%q", ErrInvalidAnswer, e.Field, e.Value)
}

func (e *InvalidAnswerError) Unwrap() error {
	return ErrInvalidAnswer
}
