package http

import (
	"depression-srv/internal/feedback"
	"depression-srv/internal/model"
	"depression-srv/internal/prediction"
	"depression-srv/pkg/classifier"
)

// =====================================================
// Request DTOs
// =====================================================

// predictReq carries pointers for numbers so a missing field is told apart from zero.
type predictReq struct {
	Gender            string     `json:"gender" binding:"required,oneof=Masculino Feminino"`
	Age               *flexInt   `json:"age" binding:"required" swaggertype:"integer"`
	AcademicPressure  *flexInt   `json:"academic_pressure" binding:"required" swaggertype:"integer"`
	CGPA              *flexFloat `json:"cgpa" binding:"required" swaggertype:"number"`
	StudySatisfaction *flexInt   `json:"study_satisfaction" binding:"required" swaggertype:"integer"`
	SleepDuration     string     `json:"sleep_duration" binding:"required"`
	DietaryHabits     string     `json:"dietary_habits" binding:"required"`
	SuicidalThoughts  string     `json:"suicidal_thoughts" binding:"required,oneof=Sim Não"`
	WorkStudyHours    *flexInt   `json:"work_study_hours" binding:"required" swaggertype:"integer"`
	FinancialStress   *flexInt   `json:"financial_stress" binding:"required" swaggertype:"integer"`
	FamilyHistory     string     `json:"family_history" binding:"required,oneof=Sim Não"`
}

func (r predictReq) toInput() model.AnswerSet {
	return model.AnswerSet{
		Gender:            r.Gender,
		Age:               int(*r.Age),
		AcademicPressure:  int(*r.AcademicPressure),
		CGPA:              float64(*r.CGPA),
		StudySatisfaction: int(*r.StudySatisfaction),
		SleepDuration:     r.SleepDuration,
		DietaryHabits:     r.DietaryHabits,
		SuicidalThoughts:  r.SuicidalThoughts,
		WorkStudyHours:    int(*r.WorkStudyHours),
		FinancialStress:   int(*r.FinancialStress),
		FamilyHistory:     r.FamilyHistory,
	}
}

// =====================================================
// Response DTOs
// =====================================================

type predictResp struct {
	Prediction      int                   `json:"prediction"`
	Probability     []float64             `json:"probability"`
	DepressionRisk  string                `json:"depression_risk"`
	FeatureFeedback []featureFeedbackResp `json:"feature_feedback"`
}

type featureFeedbackResp struct {
	Feature     string  `json:"feature"`
	UserValue   string  `json:"user_value"`
	Importance  float64 `json:"importance"`
	ImpactLevel string  `json:"impact_level"`
	Message     string  `json:"message"`
	Context     string  `json:"context"`
}

type exampleResp struct {
	Message string `json:"message"`
}

type modelInfoResp struct {
	Name     string   `json:"name"`
	Version  string   `json:"version"`
	Kind     string   `json:"kind"`
	Classes  []int    `json:"classes"`
	Features []string `json:"features"`
}

func (h *handler) newPredictResp(o prediction.Output) predictResp {
	items := make([]featureFeedbackResp, 0, len(o.Feedback))
	for _, it := range o.Feedback {
		items = append(items, newFeatureFeedbackResp(it))
	}
	return predictResp{
		Prediction:      o.Prediction,
		Probability:     o.Probability,
		DepressionRisk:  string(o.Risk),
		FeatureFeedback: items,
	}
}

func newFeatureFeedbackResp(it feedback.Item) featureFeedbackResp {
	return featureFeedbackResp{
		Feature:     it.Feature,
		UserValue:   it.UserValue,
		Importance:  it.Importance,
		ImpactLevel: string(it.ImpactLevel),
		Message:     it.Message,
		Context:     it.Context,
	}
}

func (h *handler) newModelInfoResp(info classifier.Info) modelInfoResp {
	return modelInfoResp{
		Name:     info.Name,
		Version:  info.Version,
		Kind:     info.Kind,
		Classes:  info.Classes,
		Features: info.Features,
	}
}
