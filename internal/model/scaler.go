// Package model holds the fitted classification artifacts: scaler, tree
// ensemble and evaluation. Training produces an explicit *Model that callers
// pass to prediction; there is no shared mutable model state.
package model

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/scholarmill/paperscreen/internal/domain"
)

// Scaler standardizes feature columns to zero mean and unit variance.
// Fit on training rows only; the same statistics are applied to every
// later transform.
type Scaler struct {
	Mean []float64
	Std  []float64
}

// FitScaler computes per-column mean and population standard deviation.
// Zero-variance columns keep a scale of 1 so transforms stay finite.
func FitScaler(rows [][]float64) (*Scaler, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("fit scaler: %w", domain.ErrEmptyDataset)
	}

	dim := len(rows[0])
	col := make([]float64, len(rows))
	s := &Scaler{
		Mean: make([]float64, dim),
		Std:  make([]float64, dim),
	}

	for j := 0; j < dim; j++ {
		for i, row := range rows {
			if len(row) != dim {
				return nil, fmt.Errorf("row %d has %d features, expected %d: %w",
					i, len(row), dim, domain.ErrVectorDimMismatch)
			}
			col[i] = row[j]
		}
		s.Mean[j] = stat.Mean(col, nil)
		std := stat.PopStdDev(col, nil)
		if std == 0 {
			std = 1
		}
		s.Std[j] = std
	}

	return s, nil
}

// Dim returns the number of feature columns the scaler was fit on.
func (s *Scaler) Dim() int { return len(s.Mean) }

// Transform standardizes one feature vector.
func (s *Scaler) Transform(row []float64) ([]float64, error) {
	if len(row) != s.Dim() {
		return nil, fmt.Errorf("vector has %d features, scaler fit on %d: %w",
			len(row), s.Dim(), domain.ErrVectorDimMismatch)
	}
	out := make([]float64, len(row))
	for j, v := range row {
		out[j] = (v - s.Mean[j]) / s.Std[j]
	}
	return out, nil
}

// TransformAll standardizes a matrix row by row.
func (s *Scaler) TransformAll(rows [][]float64) ([][]float64, error) {
	out := make([][]float64, len(rows))
	for i, row := range rows {
		scaled, err := s.Transform(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		out[i] = scaled
	}
	return out, nil
}
