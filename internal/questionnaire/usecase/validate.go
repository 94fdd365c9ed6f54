package usecase

import (
	"encoding/json"
	"fmt"

	"depression-srv/internal/model"
)

// check enforces the document invariants the client and the predictor rely on.
func (uc *implUseCase) check(questions []model.Question) error {
	seen := make(map[string]struct{}, len(questions))
	for i, q := range questions {
		if err := uc.validate.Struct(q); err != nil {
			return fmt.Errorf("question %d: %w", i, err)
		}
		if _, dup := seen[q.Data.ID]; dup {
			return fmt.Errorf("question %d: duplicate id %q", i, q.Data.ID)
		}
		seen[q.Data.ID] = struct{}{}

		if err := checkShape(q); err != nil {
			return fmt.Errorf("question %q: %w", q.Data.ID, err)
		}
	}

	for _, id := range uc.requiredIDs {
		if _, ok := seen[id]; !ok {
			return fmt.Errorf("missing question %q", id)
		}
	}
	return nil
}

func checkShape(q model.Question) error {
	hasAlternatives := len(q.Data.Alternatives) > 0
	switch q.Type {
	case model.QuestionTypeAlternative:
		if !hasAlternatives {
			return fmt.Errorf("alternative question needs alternatives")
		}
		return nil
	case model.QuestionTypeDate:
		if hasAlternatives {
			return fmt.Errorf("date question cannot have alternatives")
		}
		return checkBounds(q, isJSONString)
	default:
		if hasAlternatives {
			return fmt.Errorf("%s question cannot have alternatives", q.Type)
		}
		return checkBounds(q, isJSONNumber)
	}
}

func checkBounds(q model.Question, ok func(json.RawMessage) bool) error {
	if len(q.Data.Min) > 0 && !ok(q.Data.Min) {
		return fmt.Errorf("min has the wrong type for a %s question", q.Type)
	}
	if len(q.Data.Max) > 0 && !ok(q.Data.Max) {
		return fmt.Errorf("max has the wrong type for a %s question", q.Type)
	}
	return nil
}

func isJSONString(raw json.RawMessage) bool {
	var s string
	return json.Unmarshal(raw, &s) == nil
}

func isJSONNumber(raw json.RawMessage) bool {
	var n float64
	return json.Unmarshal(raw, &n) == nil
}
