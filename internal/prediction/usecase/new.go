package usecase

import (
	"context"
	"fmt"
	"slices"

	"depression-srv/internal/feedback"
	"depression-srv/internal/prediction"
	"depression-srv/pkg/classifier"
	"depression-srv/pkg/log"
	"depression-srv/pkg/metrics"
)

// positiveClass is the label the classifier uses for depression.
const positiveClass = 1

// implUseCase - Implementation of the UseCase interface
type implUseCase struct {
	clf         classifier.IClassifier
	positiveIdx int
	metrics     metrics.Recorder
	l           log.Logger
}

// New - Factory function. A nil classifier, or one whose columns differ from the
// encoder's, yields a use case that answers every call with ErrModelUnavailable.
func New(clf classifier.IClassifier, rec metrics.Recorder, l log.Logger) prediction.UseCase {
	if rec == nil {
		rec = metrics.NewNop()
	}
	uc := &implUseCase{metrics: rec, l: l}

	ctx := context.Background()
	if clf == nil {
		l.Warnf(ctx, "prediction.usecase.New: no classifier loaded, predictions disabled")
		rec.SetModelLoaded(false)
		return uc
	}
	if err := checkClassifier(clf); err != nil {
		l.Errorf(ctx, "prediction.usecase.New: incompatible classifier: %v", err)
		rec.SetModelLoaded(false)
		return uc
	}

	uc.clf = clf
	uc.positiveIdx = slices.Index(clf.Classes(), positiveClass)
	rec.SetModelLoaded(true)
	return uc
}

func checkClassifier(clf classifier.IClassifier) error {
	got := clf.FeatureNames()
	if len(got) != len(columns) {
		return fmt.Errorf("%d feature columns, want %d", len(got), len(columns))
	}
	for i, name := range got {
		f, ok := feedback.FeatureByName(name)
		if !ok {
			return fmt.Errorf("feature column %d: unknown name %q", i, name)
		}
		if f != columns[i] {
			return fmt.Errorf("feature column %d is %q, want %q", i, name, columns[i].Name())
		}
	}
	if slices.Index(clf.Classes(), positiveClass) < 0 {
		return fmt.Errorf("classes %v do not contain %d", clf.Classes(), positiveClass)
	}
	return nil
}

func (uc *implUseCase) Ready() bool {
	return uc.clf != nil
}
