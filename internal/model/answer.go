package model

// Binary answer labels.
const (
	AnswerYes = "Sim"
	AnswerNo  = "Não"
)

// Gender labels.
const (
	GenderMale   = "Masculino"
	GenderFemale = "Feminino"
)

// Sleep duration labels.
const (
	SleepLessThan5 = "Menos de 5 horas"
	Sleep5To6      = "5-6 horas"
	Sleep7To8      = "7-8 horas"
	SleepMoreThan8 = "Mais de 8 horas"
	SleepIrregular = "Irregular"
)

// Dietary habit labels.
const (
	DietVeryHealthy       = "Muito saudáveis"
	DietModeratelyHealthy = "Moderadamente saudáveis"
	DietUnhealthy         = "Pouco saudáveis"
	DietVeryUnhealthy     = "Muito pouco saudáveis"
)

// AnswerSet is one validated questionnaire submission. It is never persisted or logged.
type AnswerSet struct {
	Gender            string
	Age               int
	AcademicPressure  int
	CGPA              float64
	StudySatisfaction int
	SleepDuration     string
	DietaryHabits     string
	SuicidalThoughts  string
	WorkStudyHours    int
	FinancialStress   int
	FamilyHistory     string
}

// AnswerFields lists the request field names in questionnaire order.
var AnswerFields = []string{
	"gender",
	"age",
	"academic_pressure",
	"cgpa",
	"study_satisfaction",
	"sleep_duration",
	"dietary_habits",
	"suicidal_thoughts",
	"work_study_hours",
	"financial_stress",
	"family_history",
}
