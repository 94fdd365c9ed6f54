package classifier

import "errors"

var (
	ErrArtifactNotFound  = errors.New("classifier: artifact not found")
	ErrInvalidArtifact   = errors.New("classifier: invalid artifact")
	ErrUnsupportedKind   = errors.New("classifier: unsupported artifact kind")
	ErrFeatureLength     = errors.New("classifier: feature vector length mismatch")
	ErrNonFiniteFeatures = errors.New("classifier: feature vector contains NaN or Inf")
)
