package repository

import "errors"

var (
	ErrDocumentNotFound = errors.New("repository: questionnaire document not found")
	ErrFailedToRead     = errors.New("repository: failed to read questionnaire document")
)
