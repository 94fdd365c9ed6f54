package prediction

import "depression-srv/internal/feedback"

// RiskLevel is the coarse risk bucket shown to the user.
type RiskLevel string

const (
	RiskLow      RiskLevel = "Baixo"
	RiskModerate RiskLevel = "Moderado"
	RiskHigh     RiskLevel = "Alto"
)

// Output is the result of Predict.
type Output struct {
	Prediction  int
	Probability []float64
	Risk        RiskLevel
	Feedback    []feedback.Item
}
