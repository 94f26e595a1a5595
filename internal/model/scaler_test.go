package model

import (
	"errors"
	"math"
	"testing"

	"github.com/scholarmill/paperscreen/internal/domain"
)

func TestFitScaler_Standardizes(t *testing.T) {
	rows := [][]float64{
		{1, 10},
		{2, 20},
		{3, 30},
		{4, 40},
	}

	s, err := FitScaler(rows)
	if err != nil {
		t.Fatalf("FitScaler failed: %v", err)
	}

	scaled, err := s.TransformAll(rows)
	if err != nil {
		t.Fatalf("TransformAll failed: %v", err)
	}

	for j := 0; j < 2; j++ {
		var sum, sumSq float64
		for _, row := range scaled {
			sum += row[j]
			sumSq += row[j] * row[j]
		}
		mean := sum / float64(len(scaled))
		variance := sumSq/float64(len(scaled)) - mean*mean
		if math.Abs(mean) > 1e-9 {
			t.Errorf("column %d mean = %g, expected 0", j, mean)
		}
		if math.Abs(variance-1) > 1e-9 {
			t.Errorf("column %d variance = %g, expected 1", j, variance)
		}
	}
}

func TestFitScaler_ZeroVarianceColumn(t *testing.T) {
	rows := [][]float64{
		{5, 1},
		{5, 2},
		{5, 3},
	}

	s, err := FitScaler(rows)
	if err != nil {
		t.Fatalf("FitScaler failed: %v", err)
	}

	scaled, err := s.Transform([]float64{5, 2})
	if err != nil {
		t.Fatalf("Transform failed: %v", err)
	}
	if scaled[0] != 0 {
		t.Errorf("constant column scaled to %g, expected 0", scaled[0])
	}
	if math.IsNaN(scaled[0]) || math.IsInf(scaled[0], 0) {
		t.Error("zero-variance column produced non-finite value")
	}
}

func TestFitScaler_EmptyInput(t *testing.T) {
	if _, err := FitScaler(nil); !errors.Is(err, domain.ErrEmptyDataset) {
		t.Fatalf("expected ErrEmptyDataset, got %v", err)
	}
}

func TestFitScaler_RaggedInput(t *testing.T) {
	_, err := FitScaler([][]float64{{1, 2}, {1}})
	if !errors.Is(err, domain.ErrVectorDimMismatch) {
		t.Fatalf("expected ErrVectorDimMismatch, got %v", err)
	}
}

func TestTransform_DimMismatch(t *testing.T) {
	s, err := FitScaler([][]float64{{1, 2}, {3, 4}})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.Transform([]float64{1}); !errors.Is(err, domain.ErrVectorDimMismatch) {
		t.Fatalf("expected ErrVectorDimMismatch, got %v", err)
	}
}
