package usecase

import (
	"context"
	"fmt"

	"depression-srv/internal/feedback"
	"depression-srv/internal/model"
	"depression-srv/internal/prediction"
	"depression-srv/pkg/classifier"
)

func (uc *implUseCase) Predict(ctx context.Context, answers model.AnswerSet) (prediction.Output, error) {
	if uc.clf == nil {
		return prediction.Output{}, prediction.ErrModelUnavailable
	}

	vec, err := encode(answers)
	if err != nil {
		return prediction.Output{}, err
	}

	label, err := uc.clf.Predict(vec)
	if err != nil {
		uc.l.Errorf(ctx, "prediction.usecase.Predict: clf.Predict: %v", err)
		return prediction.Output{}, fmt.Errorf("%w: %v", prediction.ErrPredictFailed, err)
	}
	proba, err := uc.clf.PredictProba(vec)
	if err != nil {
		uc.l.Errorf(ctx, "prediction.usecase.Predict: clf.PredictProba: %v", err)
		return prediction.Output{}, fmt.Errorf("%w: %v", prediction.ErrPredictFailed, err)
	}
	if uc.positiveIdx >= len(proba) {
		return prediction.Output{}, fmt.Errorf("%w: %d probabilities for positive index %d", prediction.ErrPredictFailed, len(proba), uc.positiveIdx)
	}

	risk := riskFor(proba[uc.positiveIdx])
	uc.metrics.IncPrediction(string(risk))
	uc.l.Infof(ctx, "prediction.usecase.Predict: prediction=%d risk=%s", label, risk)

	return prediction.Output{
		Prediction:  label,
		Probability: proba,
		Risk:        risk,
		Feedback:    feedback.Generate(answers),
	}, nil
}

func (uc *implUseCase) ModelInfo(_ context.Context) (classifier.Info, error) {
	if uc.clf == nil {
		return classifier.Info{}, prediction.ErrModelUnavailable
	}
	return uc.clf.Info(), nil
}
