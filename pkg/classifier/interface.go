package classifier

import (
	"context"
	"io"
)

// IClassifier is a loaded, immutable binary classifier.
// Implementations are safe for concurrent use.
type IClassifier interface {
	// Predict returns the class label for one feature vector.
	Predict(features []float64) (int, error)
	// PredictProba returns one probability per class, ordered like Classes.
	PredictProba(features []float64) ([]float64, error)
	Classes() []int
	FeatureNames() []string
	Info() Info
}

// Source fetches the raw artifact bytes. Local files and object storage both satisfy it.
type Source interface {
	Open(ctx context.Context) (io.ReadCloser, error)
	String() string
}

// Load reads the artifact from src and decodes it.
func Load(ctx context.Context, src Source) (IClassifier, error) {
	rc, err := src.Open(ctx)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return Decode(rc)
}
