package questionnaire

import "errors"

// Domain errors
var (
	// ErrNotFound - the questionnaire document does not exist
	ErrNotFound = errors.New("questionnaire: definition not found")

	// ErrRead - the document exists but cannot be read, parsed or validated
	ErrRead = errors.New("questionnaire: definition unreadable")
)
