package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"depression-srv/internal/model"
	"depression-srv/internal/questionnaire"
	"depression-srv/internal/questionnaire/repository"
)

func (uc *implUseCase) ListQuestions(ctx context.Context) ([]model.Question, error) {
	uc.mu.RLock()
	cached := uc.questions
	uc.mu.RUnlock()
	if cached != nil {
		return slices.Clone(cached), nil
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.questions != nil {
		return slices.Clone(uc.questions), nil
	}

	data, err := uc.repo.GetDocument(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrDocumentNotFound) {
			uc.l.Warnf(ctx, "questionnaire.usecase.ListQuestions: document not found")
			return nil, questionnaire.ErrNotFound
		}
		uc.l.Errorf(ctx, "questionnaire.usecase.ListQuestions: repo.GetDocument: %v", err)
		return nil, fmt.Errorf("%w: %v", questionnaire.ErrRead, err)
	}

	questions, err := uc.decode(ctx, data)
	if err != nil {
		uc.l.Errorf(ctx, "questionnaire.usecase.ListQuestions: invalid document: %v", err)
		if ierr := uc.repo.InvalidateDocument(ctx); ierr != nil {
			uc.l.Warnf(ctx, "questionnaire.usecase.ListQuestions: repo.InvalidateDocument: %v", ierr)
		}
		return nil, fmt.Errorf("%w: %v", questionnaire.ErrRead, err)
	}

	uc.questions = questions
	uc.l.Infof(ctx, "questionnaire.usecase.ListQuestions: loaded %d questions", len(questions))
	return slices.Clone(questions), nil
}

func (uc *implUseCase) decode(ctx context.Context, data []byte) ([]model.Question, error) {
	var entries []json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if entries == nil {
		return nil, errors.New("document must be a JSON array")
	}

	questions := make([]model.Question, len(entries))
	for i, raw := range entries {
		if err := json.Unmarshal(raw, &questions[i]); err != nil {
			return nil, fmt.Errorf("decode question %d: %w", i, err)
		}
		questions[i].Raw = raw
		if err := strictDecode(raw); err != nil {
			uc.l.Warnf(ctx, "questionnaire.usecase.decode: question %d: %v", i, err)
		}
	}
	if err := uc.check(questions); err != nil {
		return nil, err
	}
	return questions, nil
}

// strictDecode reports keys the model does not know about. They are still served.
func strictDecode(raw json.RawMessage) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	var q model.Question
	return dec.Decode(&q)
}
