package questionnaire

import (
	"context"

	"depression-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// ListQuestions returns the questionnaire in document order.
	// The first successful load is kept for the lifetime of the process.
	ListQuestions(ctx context.Context) ([]model.Question, error)
}
