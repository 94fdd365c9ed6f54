package feedback

import "depression-srv/internal/model"

const unansweredValue = "não informado"

// Generate explains every tracked answer, in fixed priority order.
// It is pure: the same answers always yield the same items.
func Generate(a model.AnswerSet) []Item {
	items := make([]Item, 0, len(order))
	for _, f := range order {
		out := rules[f](a)
		if out.value == "" {
			out.value = unansweredValue
		}
		items = append(items, Item{
			Feature:     f.Label(),
			UserValue:   out.value,
			Importance:  f.Weight(),
			ImpactLevel: out.level,
			Message:     out.message,
			Context:     formatContext(f, out.detail),
		})
	}
	return items
}
