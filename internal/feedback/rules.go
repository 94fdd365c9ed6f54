package feedback

import "depression-srv/internal/model"

// Tier thresholds. Scales run from 1 to 5.
const (
	scaleCritical = 5
	scaleHigh     = 4
	scaleModerate = 3

	satisfactionHighMax     = 1
	satisfactionModerateMax = 3

	hoursHigh     = 12
	hoursModerate = 9

	cgpaHighBelow     = 6.0
	cgpaModerateBelow = 7.5

	ageModerateMax = 21
)

type assessment struct {
	value   string
	level   ImpactLevel
	message string
	detail  string
}

// rules maps every feature to its assessment. Unknown labels land on a neutral MODERADO.
var rules = map[Feature]func(a model.AnswerSet) assessment{
	SuicidalThoughts:  assessSuicidalThoughts,
	AcademicPressure:  assessAcademicPressure,
	FinancialStress:   assessFinancialStress,
	SleepDuration:     assessSleepDuration,
	DietaryHabits:     assessDietaryHabits,
	StudySatisfaction: assessStudySatisfaction,
	WorkStudyHours:    assessWorkStudyHours,
	CGPA:              assessCGPA,
	Age:               assessAge,
	FamilyHistory:     assessFamilyHistory,
	Gender:            assessGender,
}

func assessSuicidalThoughts(a model.AnswerSet) assessment {
	out := assessment{
		value:  a.SuicidalThoughts,
		detail: "É o fator de maior peso na avaliação.",
	}
	switch a.SuicidalThoughts {
	case model.AnswerYes:
		out.level = ImpactCritical
		out.message = "Você relatou pensamentos suicidas. Procure ajuda profissional o quanto antes; o CVV atende 24 horas pelo telefone 188."
	case model.AnswerNo:
		out.level = ImpactLow
		out.message = "Você não relatou pensamentos suicidas."
	default:
		out.level = ImpactModerate
		out.message = "Não foi possível interpretar a resposta. Se tiver qualquer dúvida, converse com um profissional de saúde."
	}
	return out
}

func scaleTier(n int) ImpactLevel {
	switch {
	case n >= scaleCritical:
		return ImpactCritical
	case n >= scaleHigh:
		return ImpactHigh
	case n >= scaleModerate:
		return ImpactModerate
	default:
		return ImpactLow
	}
}

func assessAcademicPressure(a model.AnswerSet) assessment {
	out := assessment{
		value:  formatScale(a.AcademicPressure),
		level:  scaleTier(a.AcademicPressure),
		detail: "Pressão acadêmica elevada é o segundo fator mais associado ao risco.",
	}
	switch out.level {
	case ImpactCritical:
		out.message = "Pressão acadêmica muito alta. Reveja a carga de disciplinas e procure apoio da coordenação do curso."
	case ImpactHigh:
		out.message = "Pressão acadêmica alta. Uma rotina com pausas regulares ajuda a reduzir a sobrecarga."
	case ImpactModerate:
		out.message = "Pressão acadêmica moderada. Fique atento(a) aos períodos de provas e entregas."
	default:
		out.message = "Pressão acadêmica baixa. Continue mantendo esse equilíbrio."
	}
	return out
}

func assessFinancialStress(a model.AnswerSet) assessment {
	out := assessment{
		value:  formatScale(a.FinancialStress),
		level:  scaleTier(a.FinancialStress),
		detail: "Dificuldades financeiras aumentam a ansiedade ao longo do curso.",
	}
	switch out.level {
	case ImpactCritical:
		out.message = "Estresse financeiro muito alto. Procure os programas de assistência estudantil da sua instituição."
	case ImpactHigh:
		out.message = "Estresse financeiro alto. Planejar o orçamento mensal pode trazer mais tranquilidade."
	case ImpactModerate:
		out.message = "Estresse financeiro moderado. Vale acompanhar os gastos de perto."
	default:
		out.message = "Estresse financeiro baixo."
	}
	return out
}

func assessSleepDuration(a model.AnswerSet) assessment {
	out := assessment{
		value:  a.SleepDuration,
		detail: "O recomendado para adultos jovens é dormir entre 7 e 8 horas por noite.",
	}
	switch a.SleepDuration {
	case model.SleepLessThan5:
		out.level = ImpactHigh
		out.message = "Você dorme menos de 5 horas. A privação de sono afeta humor e concentração."
	case model.Sleep5To6:
		out.level = ImpactModerate
		out.message = "Seu sono está um pouco abaixo do recomendado."
	case model.Sleep7To8, model.SleepMoreThan8:
		out.level = ImpactLow
		out.message = "Sua duração de sono está adequada."
	case model.SleepIrregular:
		out.level = ImpactModerate
		out.message = "Seu sono é irregular. Horários fixos para dormir e acordar ajudam a regular o descanso."
	default:
		out.level = ImpactModerate
		out.message = "Não foi possível avaliar a sua duração de sono."
	}
	return out
}

func assessDietaryHabits(a model.AnswerSet) assessment {
	out := assessment{
		value:  a.DietaryHabits,
		detail: "A alimentação influencia energia e disposição no dia a dia.",
	}
	switch a.DietaryHabits {
	case model.DietVeryHealthy:
		out.level = ImpactLow
		out.message = "Seus hábitos alimentares são muito saudáveis."
	case model.DietModeratelyHealthy:
		out.level = ImpactModerate
		out.message = "Seus hábitos alimentares são razoáveis. Pequenos ajustes podem fazer diferença."
	case model.DietUnhealthy, model.DietVeryUnhealthy:
		out.level = ImpactHigh
		out.message = "Seus hábitos alimentares podem estar afetando o seu bem-estar. Refeições regulares e equilibradas ajudam."
	default:
		out.level = ImpactModerate
		out.message = "Não foi possível avaliar os seus hábitos alimentares."
	}
	return out
}

func assessStudySatisfaction(a model.AnswerSet) assessment {
	out := assessment{
		value:  formatScale(a.StudySatisfaction),
		detail: "Quanto menor a satisfação com os estudos, maior o risco.",
	}
	switch {
	case a.StudySatisfaction <= satisfactionHighMax:
		out.level = ImpactHigh
		out.message = "Satisfação muito baixa com os estudos. Conversar com um orientador pode ajudar a rever objetivos."
	case a.StudySatisfaction <= satisfactionModerateMax:
		out.level = ImpactModerate
		out.message = "Satisfação moderada com os estudos."
	default:
		out.level = ImpactLow
		out.message = "Boa satisfação com os estudos."
	}
	return out
}

func assessWorkStudyHours(a model.AnswerSet) assessment {
	out := assessment{
		value:  formatHours(a.WorkStudyHours),
		detail: "Jornadas longas reduzem o tempo de descanso e lazer.",
	}
	switch {
	case a.WorkStudyHours >= hoursHigh:
		out.level = ImpactHigh
		out.message = "Sua jornada de estudo e trabalho é muito longa. Reserve tempo para descanso."
	case a.WorkStudyHours >= hoursModerate:
		out.level = ImpactModerate
		out.message = "Sua jornada de estudo e trabalho está acima de 8 horas por dia."
	default:
		out.level = ImpactLow
		out.message = "Sua jornada de estudo e trabalho está equilibrada."
	}
	return out
}

func assessCGPA(a model.AnswerSet) assessment {
	out := assessment{
		value:  formatCGPA(a.CGPA),
		detail: "O desempenho acadêmico tem peso pequeno, mas ajuda a compor o quadro.",
	}
	switch {
	case a.CGPA < cgpaHighBelow:
		out.level = ImpactHigh
		out.message = "Seu rendimento está abaixo de 6.0. Monitorias e grupos de estudo podem ajudar."
	case a.CGPA < cgpaModerateBelow:
		out.level = ImpactModerate
		out.message = "Seu rendimento está na média."
	default:
		out.level = ImpactLow
		out.message = "Seu rendimento acadêmico está bom."
	}
	return out
}

func assessAge(a model.AnswerSet) assessment {
	out := assessment{
		value:  formatAge(a.Age),
		detail: "Estudantes mais jovens apresentam maior incidência no conjunto de treinamento.",
	}
	if a.Age <= ageModerateMax {
		out.level = ImpactModerate
		out.message = "Estudantes de até 21 anos costumam enfrentar mais adaptações no início da graduação."
		return out
	}
	out.level = ImpactLow
	out.message = "Sua faixa etária tem influência baixa no resultado."
	return out
}

func assessFamilyHistory(a model.AnswerSet) assessment {
	out := assessment{
		value:  a.FamilyHistory,
		detail: "O histórico familiar tem peso baixo no modelo.",
	}
	switch a.FamilyHistory {
	case model.AnswerYes:
		out.level = ImpactModerate
		out.message = "Há histórico familiar de doença mental. Compartilhe essa informação em consultas de saúde."
	case model.AnswerNo:
		out.level = ImpactLow
		out.message = "Não há histórico familiar de doença mental."
	default:
		out.level = ImpactModerate
		out.message = "Não foi possível avaliar o histórico familiar."
	}
	return out
}

func assessGender(a model.AnswerSet) assessment {
	return assessment{
		value:   a.Gender,
		level:   ImpactLow,
		message: "O gênero tem influência mínima no resultado.",
		detail:  "É o fator de menor peso entre todos os avaliados.",
	}
}
