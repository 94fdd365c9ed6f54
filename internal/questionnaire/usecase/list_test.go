package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"depression-srv/internal/model"
	"depression-srv/internal/questionnaire"
	"depression-srv/internal/questionnaire/repository"
	"depression-srv/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	mu          sync.Mutex
	data        []byte
	err         error
	calls       int
	invalidated int
}

func (f *fakeRepo) GetDocument(context.Context) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.data, f.err
}

func (f *fakeRepo) InvalidateDocument(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.invalidated++
	return nil
}

func (f *fakeRepo) set(data []byte, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data, f.err = data, err
}

func shippedDocument(t *testing.T) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "..", "..", "data", "questions.json"))
	require.NoError(t, err)
	return data
}

func minimalDocument(mutate func(qs []map[string]any) []map[string]any) []byte {
	qs := make([]map[string]any, 0, len(model.AnswerFields))
	for _, id := range model.AnswerFields {
		qs = append(qs, map[string]any{
			"type": "number",
			"data": map[string]any{"id": id, "title": id, "description": "", "min": 0, "max": 10},
		})
	}
	if mutate != nil {
		qs = mutate(qs)
	}
	data, _ := json.Marshal(qs)
	return data
}

func TestListQuestions_ShippedDocument(t *testing.T) {
	uc := New(&fakeRepo{data: shippedDocument(t)}, log.NewNop())

	questions, err := uc.ListQuestions(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, questions)

	types := map[string]string{}
	for _, q := range questions {
		types[q.Data.ID] = q.Type
	}
	assert.Equal(t, model.QuestionTypeAlternative, types["gender"])
	assert.Equal(t, model.QuestionTypeDate, types["age"])
	assert.Equal(t, model.QuestionTypeNumber, types["cgpa"])
	for _, id := range model.AnswerFields {
		assert.Contains(t, types, id)
	}
}

func TestListQuestions_Memoized(t *testing.T) {
	repo := &fakeRepo{data: minimalDocument(nil)}
	uc := New(repo, log.NewNop())

	first, err := uc.ListQuestions(context.Background())
	require.NoError(t, err)

	repo.set(nil, errors.New("disk gone"))
	second, err := uc.ListQuestions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.calls)
}

func TestListQuestions_FailuresAreNotMemoized(t *testing.T) {
	repo := &fakeRepo{err: repository.ErrDocumentNotFound}
	uc := New(repo, log.NewNop())

	questions, err := uc.ListQuestions(context.Background())
	assert.ErrorIs(t, err, questionnaire.ErrNotFound)
	assert.Nil(t, questions)

	repo.set(minimalDocument(nil), nil)
	questions, err = uc.ListQuestions(context.Background())
	require.NoError(t, err)
	assert.Len(t, questions, len(model.AnswerFields))
	assert.Equal(t, 2, repo.calls)
}

func TestListQuestions_ConcurrentReaders(t *testing.T) {
	repo := &fakeRepo{data: minimalDocument(nil)}
	uc := New(repo, log.NewNop())

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.ListQuestions(context.Background())
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, repo.calls)
}

func TestListQuestions_ReadErrors(t *testing.T) {
	tcs := map[string]struct {
		data []byte
		err  error
	}{
		"repository failure": {err: repository.ErrFailedToRead},
		"not json":           {data: []byte("{")},
		"not an array":       {data: []byte(`{"type":"number"}`)},
		"null":               {data: []byte(`null`)},
		"unknown type": {data: minimalDocument(func(qs []map[string]any) []map[string]any {
			qs[0]["type"] = "checkbox"
			return qs
		})},
		"missing description": {data: minimalDocument(func(qs []map[string]any) []map[string]any {
			delete(qs[0]["data"].(map[string]any), "description")
			return qs
		})},
		"null description": {data: minimalDocument(func(qs []map[string]any) []map[string]any {
			qs[0]["data"].(map[string]any)["description"] = nil
			return qs
		})},
		"duplicate id": {data: minimalDocument(func(qs []map[string]any) []map[string]any {
			return append(qs, qs[0])
		})},
		"missing request field": {data: minimalDocument(func(qs []map[string]any) []map[string]any {
			return qs[1:]
		})},
		"alternative without alternatives": {data: minimalDocument(func(qs []map[string]any) []map[string]any {
			qs[0]["type"] = "alternative"
			return qs
		})},
		"number with string bounds": {data: minimalDocument(func(qs []map[string]any) []map[string]any {
			qs[0]["data"].(map[string]any)["min"] = "zero"
			return qs
		})},
		"date with numeric bounds": {data: minimalDocument(func(qs []map[string]any) []map[string]any {
			qs[0]["type"] = "date"
			return qs
		})},
		"missing title": {data: minimalDocument(func(qs []map[string]any) []map[string]any {
			qs[0]["data"].(map[string]any)["title"] = ""
			return qs
		})},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			repo := &fakeRepo{data: tc.data, err: tc.err}
			uc := New(repo, log.NewNop())
			questions, err := uc.ListQuestions(context.Background())
			assert.ErrorIs(t, err, questionnaire.ErrRead)
			assert.Nil(t, questions)
			if tc.err == nil {
				assert.Equal(t, 1, repo.invalidated)
			}
		})
	}
}

func TestListQuestions_RawBoundsRoundTrip(t *testing.T) {
	doc := minimalDocument(func(qs []map[string]any) []map[string]any {
		qs[1]["type"] = "date"
		qs[1]["data"].(map[string]any)["min"] = "1950-01-01"
		qs[1]["data"].(map[string]any)["max"] = "2010-12-31"
		return qs
	})
	uc := New(&fakeRepo{data: doc}, log.NewNop())

	questions, err := uc.ListQuestions(context.Background())
	require.NoError(t, err)

	out, err := json.Marshal(questions[1])
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(out), `"max":"2010-12-31"`), string(out))
	assert.True(t, strings.Contains(string(out), `"description":""`), string(out))
}

func TestListQuestions_UnknownKeysServedVerbatim(t *testing.T) {
	doc := minimalDocument(func(qs []map[string]any) []map[string]any {
		qs[0]["data"].(map[string]any)["unit"] = "horas"
		qs[1]["hint"] = true
		return qs
	})
	repo := &fakeRepo{data: doc}
	uc := New(repo, log.NewNop())

	questions, err := uc.ListQuestions(context.Background())
	require.NoError(t, err)
	assert.Zero(t, repo.invalidated)

	out, err := json.Marshal(questions)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"unit":"horas"`)
	assert.Contains(t, string(out), `"hint":true`)

	var served, stored []map[string]any
	require.NoError(t, json.Unmarshal(out, &served))
	require.NoError(t, json.Unmarshal(doc, &stored))
	assert.Equal(t, stored, served)
}

func TestListQuestions_ShippedDocumentServedVerbatim(t *testing.T) {
	doc := shippedDocument(t)
	uc := New(&fakeRepo{data: doc}, log.NewNop())

	questions, err := uc.ListQuestions(context.Background())
	require.NoError(t, err)

	out, err := json.Marshal(questions)
	require.NoError(t, err)
	assert.JSONEq(t, string(doc), string(out))
}
