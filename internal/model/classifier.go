package model

import (
	"fmt"
	"math/rand"

	randomforest "github.com/malaschitz/randomForest"

	"github.com/scholarmill/paperscreen/internal/domain"
)

// Classifier wraps the random-forest ensemble.
type Classifier struct {
	forest *randomforest.Forest
	trees  int
}

// NewClassifier creates an untrained ensemble of the given size.
func NewClassifier(trees int) *Classifier {
	return &Classifier{trees: trees}
}

// Fit trains the ensemble on scaled feature rows. The forest library samples
// from the global math/rand source, so Fit seeds it to keep a fixed config
// seed reproducible.
func (c *Classifier) Fit(rows [][]float64, labels []int, seed int64) error {
	if len(rows) == 0 {
		return fmt.Errorf("fit classifier: %w", domain.ErrEmptyDataset)
	}
	if len(rows) != len(labels) {
		return fmt.Errorf("fit classifier: %d rows vs %d labels: %w",
			len(rows), len(labels), domain.ErrVectorDimMismatch)
	}

	rand.Seed(seed) //nolint:staticcheck // the forest draws from the global source

	forest := &randomforest.Forest{}
	forest.Data = randomforest.ForestData{X: rows, Class: labels}
	forest.Train(c.trees)

	c.forest = forest
	return nil
}

// Predict votes the ensemble on one scaled feature vector and returns the
// winning label with its vote share.
func (c *Classifier) Predict(row []float64) (int, float64, error) {
	if c.forest == nil {
		return 0, 0, domain.ErrNotFitted
	}

	votes := c.forest.Vote(row)
	if len(votes) == 0 {
		return 0, 0, fmt.Errorf("empty vote from ensemble: %w", domain.ErrNotFitted)
	}

	best := 0
	for i, v := range votes {
		if v > votes[best] {
			best = i
		}
	}
	return best, votes[best], nil
}
