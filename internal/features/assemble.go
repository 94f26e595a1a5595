package features

import (
	"fmt"

	"github.com/scholarmill/paperscreen/internal/domain"
)

// Assemble concatenates the structural block (in Schema order) with the
// embedding block into one flat feature vector. The set must hold exactly
// the Schema fields.
func Assemble(set Set, embedding []float32) ([]float64, error) {
	if len(set) != len(Schema) {
		return nil, fmt.Errorf("feature set has %d fields, schema has %d: %w",
			len(set), len(Schema), domain.ErrVectorDimMismatch)
	}

	vec := make([]float64, 0, len(Schema)+len(embedding))
	for _, field := range Schema {
		v, ok := set[field]
		if !ok {
			return nil, fmt.Errorf("feature set missing field %q: %w",
				field, domain.ErrVectorDimMismatch)
		}
		vec = append(vec, v)
	}
	for _, v := range embedding {
		vec = append(vec, float64(v))
	}
	return vec, nil
}
