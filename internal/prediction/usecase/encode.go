package usecase

import (
	"depression-srv/internal/feedback"
	"depression-srv/internal/model"
	"depression-srv/internal/prediction"
)

// columns is the training-time column order of the classifier.
var columns = []feedback.Feature{
	feedback.Gender,
	feedback.Age,
	feedback.AcademicPressure,
	feedback.CGPA,
	feedback.StudySatisfaction,
	feedback.SleepDuration,
	feedback.DietaryHabits,
	feedback.SuicidalThoughts,
	feedback.WorkStudyHours,
	feedback.FinancialStress,
	feedback.FamilyHistory,
}

// Training-time codes. Unknown sleep and diet labels use the "Others" bucket.
var (
	genderCodes = map[string]float64{
		model.GenderMale:   1,
		model.GenderFemale: 0,
	}
	binaryCodes = map[string]float64{
		model.AnswerYes: 1,
		model.AnswerNo:  0,
	}
	sleepCodes = map[string]float64{
		model.SleepLessThan5: 0,
		model.Sleep5To6:      1,
		model.Sleep7To8:      2,
		model.SleepMoreThan8: 3,
	}
	dietCodes = map[string]float64{
		model.DietVeryHealthy:       0,
		model.DietModeratelyHealthy: 1,
		model.DietUnhealthy:         2,
		model.DietVeryUnhealthy:     2,
	}
)

const (
	sleepOthers = 4
	dietOthers  = 3
)

// encode returns the feature vector in column order.
func encode(a model.AnswerSet) ([]float64, error) {
	gender, ok := genderCodes[a.Gender]
	if !ok {
		return nil, &prediction.InvalidAnswerError{Field: "gender", Value: a.Gender}
	}
	suicidal, ok := binaryCodes[a.SuicidalThoughts]
	if !ok {
		return nil, &prediction.InvalidAnswerError{Field: "suicidal_thoughts", Value: a.SuicidalThoughts}
	}
	family, ok := binaryCodes[a.FamilyHistory]
	if !ok {
		return nil, &prediction.InvalidAnswerError{Field: "family_history", Value: a.FamilyHistory}
	}
	sleep, ok := sleepCodes[a.SleepDuration]
	if !ok {
		sleep = sleepOthers
	}
	diet, ok := dietCodes[a.DietaryHabits]
	if !ok {
		diet = dietOthers
	}

	return []float64{
		gender,
		float64(a.Age),
		float64(a.AcademicPressure),
		a.CGPA,
		float64(a.StudySatisfaction),
		sleep,
		diet,
		suicidal,
		float64(a.WorkStudyHours),
		float64(a.FinancialStress),
		family,
	}, nil
}
