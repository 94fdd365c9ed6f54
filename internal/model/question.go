package model

import "encoding/json"

// Question types understood by the client UI.
const (
	QuestionTypeAlternative = "alternative"
	QuestionTypeDate        = "date"
	QuestionTypeNumber      = "number"
	QuestionTypeSlider      = "slider"
)

// Question is one entry of the questionnaire document.
// When Raw is set the entry is served verbatim, including keys QuestionData does not model.
type Question struct {
	Type string          `json:"type" validate:"required,oneof=alternative date number slider"`
	Data QuestionData    `json:"data"`
	Raw  json.RawMessage `json:"-"`
}

func (q Question) MarshalJSON() ([]byte, error) {
	if len(q.Raw) > 0 {
		return q.Raw, nil
	}
	type plain Question
	return json.Marshal(plain(q))
}

// QuestionData holds the display attributes of a Question.
// Min, Max, Step and DefaultValue keep their raw JSON: numbers for number/slider, strings for date.
type QuestionData struct {
	ID           string          `json:"id" validate:"required"`
	Title        string          `json:"title" validate:"required"`
	Description  *string         `json:"description" validate:"required"`
	Alternatives []string        `json:"alternatives,omitempty" validate:"omitempty,dive,required"`
	Labels       []string        `json:"labels,omitempty"`
	Placeholder  string          `json:"placeholder,omitempty"`
	Min          json.RawMessage `json:"min,omitempty"`
	Max          json.RawMessage `json:"max,omitempty"`
	Step         json.RawMessage `json:"step,omitempty"`
	DefaultValue json.RawMessage `json:"defaultValue,omitempty"`
}
