package model

import (
	"fmt"

	"github.com/scholarmill/paperscreen/internal/domain"
)

// Model bundles the fitted scaler and classifier with the feature-vector
// length they expect.
type Model struct {
	Scaler     *Scaler
	Classifier *Classifier
	Dim        int
}

// Predict scales one raw feature vector and votes the ensemble.
func (m *Model) Predict(vec []float64) (label int, confidence float64, err error) {
	if len(vec) != m.Dim {
		return 0, 0, fmt.Errorf("vector has %d features, model expects %d: %w",
			len(vec), m.Dim, domain.ErrVectorDimMismatch)
	}

	scaled, err := m.Scaler.Transform(vec)
	if err != nil {
		return 0, 0, fmt.Errorf("scale: %w", err)
	}

	label, confidence, err = m.Classifier.Predict(scaled)
	if err != nil {
		return 0, 0, fmt.Errorf("classify: %w", err)
	}
	return label, confidence, nil
}
