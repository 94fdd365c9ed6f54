package repository

import "context"

//go:generate mockery --name DocumentRepository
type DocumentRepository interface {
	// GetDocument returns the raw questionnaire JSON.
	// It returns ErrDocumentNotFound when nothing is stored at the configured location.
	GetDocument(ctx context.Context) ([]byte, error)
	// InvalidateDocument drops any cached copy so the next GetDocument reads the source.
	InvalidateDocument(ctx context.Context) error
}
