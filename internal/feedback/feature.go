package feedback

import (
	"fmt"
	"math"
)

// Feature is one model input tracked by the feedback generator.
type Feature int

const (
	SuicidalThoughts Feature = iota
	AcademicPressure
	FinancialStress
	Age
	WorkStudyHours
	CGPA
	StudySatisfaction
	DietaryHabits
	SleepDuration
	FamilyHistory
	Gender

	featureCount
)

type featureInfo struct {
	name   string
	label  string
	weight float64
}

// features is indexed by Feature. Weights are percentages of the model decision.
var features = [featureCount]featureInfo{
	SuicidalThoughts:  {name: "Have you ever had suicidal thoughts ?", label: "Pensamentos Suicidas", weight: 35.2},
	AcademicPressure:  {name: "Academic Pressure", label: "Pressão Acadêmica", weight: 27.4},
	FinancialStress:   {name: "Financial Stress", label: "Estresse Financeiro", weight: 11.3},
	Age:               {name: "Age", label: "Idade", weight: 5.9},
	WorkStudyHours:    {name: "Work/Study Hours", label: "Horas de Estudo/Trabalho", weight: 4.6},
	CGPA:              {name: "CGPA", label: "Coeficiente de Rendimento (CR)", weight: 4.1},
	StudySatisfaction: {name: "Study Satisfaction", label: "Satisfação com os Estudos", weight: 3.8},
	DietaryHabits:     {name: "Dietary Habits", label: "Hábitos Alimentares", weight: 3.5},
	SleepDuration:     {name: "Sleep Duration", label: "Duração do Sono", weight: 2.4},
	FamilyHistory:     {name: "Family History of Mental Illness", label: "Histórico Familiar de Doença Mental", weight: 1.2},
	Gender:            {name: "Gender", label: "Gênero", weight: 0.6},
}

// order is the fixed priority in which feedback items are emitted.
var order = []Feature{
	SuicidalThoughts,
	AcademicPressure,
	FinancialStress,
	SleepDuration,
	DietaryHabits,
	StudySatisfaction,
	WorkStudyHours,
	CGPA,
	Age,
	FamilyHistory,
	Gender,
}

const weightTotal = 100.0

func init() {
	if err := checkTable(); err != nil {
		panic(err)
	}
}

func checkTable() error {
	var sum float64
	for _, f := range Features() {
		info := features[f]
		if info.name == "" || info.label == "" || info.weight <= 0 {
			return fmt.Errorf("feedback: feature %d is incomplete", f)
		}
		if _, ok := rules[f]; !ok {
			return fmt.Errorf("feedback: feature %q has no rule", info.name)
		}
		if info.weight > features[SuicidalThoughts].weight {
			return fmt.Errorf("feedback: %q outweighs suicidal thoughts", info.name)
		}
		sum += info.weight
	}
	if math.Abs(sum-weightTotal) > 0.01 {
		return fmt.Errorf("feedback: weights sum to %.2f, want %.0f", sum, weightTotal)
	}
	if len(order) != int(featureCount) {
		return fmt.Errorf("feedback: order lists %d features, want %d", len(order), featureCount)
	}
	return nil
}

// Name is the canonical English name the model was trained with.
func (f Feature) Name() string { return features[f].name }

// Label is the pt-BR display label.
func (f Feature) Label() string { return features[f].label }

// Weight is the share of the model decision attributed to f, in percent.
func (f Feature) Weight() float64 { return features[f].weight }

func (f Feature) String() string { return f.Label() }

// Features returns every feature in descending weight.
func Features() []Feature {
	all := make([]Feature, featureCount)
	for i := range all {
		all[i] = Feature(i)
	}
	return all
}

// FeatureByName looks up a feature by its canonical name.
func FeatureByName(name string) (Feature, bool) {
	for f := Feature(0); f < featureCount; f++ {
		if features[f].name == name {
			return f, true
		}
	}
	return 0, false
}
