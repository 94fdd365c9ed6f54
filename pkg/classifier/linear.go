package classifier

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"slices"
)

// Decode parses and validates an artifact.
func Decode(r io.Reader) (IClassifier, error) {
	var a Artifact
	if err := json.NewDecoder(r).Decode(&a); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArtifact, err)
	}
	return New(a)
}

// New validates a and returns a classifier backed by it.
func New(a Artifact) (IClassifier, error) {
	if a.Kind == "" {
		a.Kind = KindLinearSVC
	}
	if a.Kind != KindLinearSVC {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedKind, a.Kind)
	}
	if err := validate(a); err != nil {
		return nil, err
	}
	return &linearSVC{artifact: a}, nil
}

func validate(a Artifact) error {
	n := len(a.Features)
	if n == 0 {
		return fmt.Errorf("%w: features must not be empty", ErrInvalidArtifact)
	}
	if len(a.Classes) != 2 {
		return fmt.Errorf("%w: expected 2 classes, got %d", ErrInvalidArtifact, len(a.Classes))
	}
	if len(a.Coefficients) != n {
		return fmt.Errorf("%w: coefficients length %d != features length %d", ErrInvalidArtifact, len(a.Coefficients), n)
	}
	if len(a.Scaler.Mean) != n || len(a.Scaler.Scale) != n {
		return fmt.Errorf("%w: scaler length does not match features length %d", ErrInvalidArtifact, n)
	}
	for i, s := range a.Scaler.Scale {
		if s == 0 || math.IsNaN(s) || math.IsInf(s, 0) {
			return fmt.Errorf("%w: scaler.scale[%d]=%v", ErrInvalidArtifact, i, s)
		}
	}
	if a.Platt.A == 0 {
		return fmt.Errorf("%w: platt.a must not be zero", ErrInvalidArtifact)
	}
	return nil
}

// decision returns the signed distance to the separating hyperplane.
func (m *linearSVC) decision(features []float64) (float64, error) {
	if len(features) != len(m.artifact.Coefficients) {
		return 0, fmt.Errorf("%w: got %d, want %d", ErrFeatureLength, len(features), len(m.artifact.Coefficients))
	}
	f := m.artifact.Intercept
	for i, x := range features {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return 0, ErrNonFiniteFeatures
		}
		z := (x - m.artifact.Scaler.Mean[i]) / m.artifact.Scaler.Scale[i]
		f += m.artifact.Coefficients[i] * z
	}
	return f, nil
}

func (m *linearSVC) Predict(features []float64) (int, error) {
	f, err := m.decision(features)
	if err != nil {
		return 0, err
	}
	if f > 0 {
		return m.artifact.Classes[1], nil
	}
	return m.artifact.Classes[0], nil
}

func (m *linearSVC) PredictProba(features []float64) ([]float64, error) {
	f, err := m.decision(features)
	if err != nil {
		return nil, err
	}
	positive := 1 / (1 + math.Exp(m.artifact.Platt.A*f+m.artifact.Platt.B))
	return []float64{1 - positive, positive}, nil
}

func (m *linearSVC) Classes() []int {
	return slices.Clone(m.artifact.Classes)
}

func (m *linearSVC) FeatureNames() []string {
	return slices.Clone(m.artifact.Features)
}

func (m *linearSVC) Info() Info {
	return Info{
		Name:     m.artifact.Name,
		Version:  m.artifact.Version,
		Kind:     m.artifact.Kind,
		Classes:  m.Classes(),
		Features: m.FeatureNames(),
	}
}
