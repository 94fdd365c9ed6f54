package classifier

// Artifact is the serialized form of a linear SVM with a standard scaler and a
// Platt sigmoid for probability calibration.
type Artifact struct {
	Name         string    `json:"name"`
	Version      string    `json:"version"`
	Kind         string    `json:"kind"`
	Classes      []int     `json:"classes"`
	Features     []string  `json:"features"`
	Scaler       Scaler    `json:"scaler"`
	Coefficients []float64 `json:"coefficients"`
	Intercept    float64   `json:"intercept"`
	Platt        Platt     `json:"platt"`
}

// Scaler standardizes each column as (x - mean) / scale.
type Scaler struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

// Platt holds the sigmoid parameters: P(positive) = 1 / (1 + exp(A*f + B)).
type Platt struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
}

// Info describes a loaded artifact.
type Info struct {
	Name     string   `json:"name"`
	Version  string   `json:"version"`
	Kind     string   `json:"kind"`
	Classes  []int    `json:"classes"`
	Features []string `json:"features"`
}

const KindLinearSVC = "linear_svc"

type linearSVC struct {
	artifact Artifact
}
