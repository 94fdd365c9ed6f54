package usecase

import "depression-srv/internal/prediction"

// Risk bucket upper bounds on P(depression).
const (
	riskLowBelow      = 0.33
	riskModerateBelow = 0.66
)

func riskFor(p float64) prediction.RiskLevel {
	switch {
	case p < riskLowBelow:
		return prediction.RiskLow
	case p < riskModerateBelow:
		return prediction.RiskModerate
	default:
		return prediction.RiskHigh
	}
}
