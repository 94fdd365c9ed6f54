package feedback

// ImpactLevel grades how much an answer contributes to depression risk.
type ImpactLevel string

const (
	ImpactLow      ImpactLevel = "BAIXO"
	ImpactModerate ImpactLevel = "MODERADO"
	ImpactHigh     ImpactLevel = "ALTO"
	ImpactCritical ImpactLevel = "CRÍTICO"
)

// Item explains one answer to the user.
type Item struct {
	Feature     string      `json:"feature"`
	UserValue   string      `json:"user_value"`
	Importance  float64     `json:"importance"`
	ImpactLevel ImpactLevel `json:"impact_level"`
	Message     string      `json:"message"`
	Context     string      `json:"context"`
}
