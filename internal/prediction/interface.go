package prediction

import (
	"context"

	"depression-srv/internal/model"
	"depression-srv/pkg/classifier"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Predict scores one answer set and explains each answer.
	Predict(ctx context.Context, answers model.AnswerSet) (Output, error)
	// ModelInfo describes the loaded artifact.
	ModelInfo(ctx context.Context) (classifier.Info, error)
	// Ready reports whether predictions can be served.
	Ready() bool
}
