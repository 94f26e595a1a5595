package model

import (
	"errors"
	"testing"

	"github.com/scholarmill/paperscreen/internal/domain"
)

// separableData is two well-separated clusters: class 0 near the origin,
// class 1 near (10, 10).
func separableData() ([][]float64, []int) {
	var rows [][]float64
	var labels []int
	offsets := []float64{-0.4, -0.2, 0, 0.2, 0.4}
	for _, dx := range offsets {
		for _, dy := range offsets {
			rows = append(rows, []float64{dx, dy})
			labels = append(labels, 0)
			rows = append(rows, []float64{10 + dx, 10 + dy})
			labels = append(labels, 1)
		}
	}
	return rows, labels
}

func TestClassifier_FitPredict(t *testing.T) {
	rows, labels := separableData()

	c := NewClassifier(100)
	if err := c.Fit(rows, labels, 42); err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	cases := []struct {
		point []float64
		want  int
	}{
		{[]float64{0.1, -0.1}, 0},
		{[]float64{9.9, 10.1}, 1},
	}
	for _, tc := range cases {
		label, confidence, err := c.Predict(tc.point)
		if err != nil {
			t.Fatalf("Predict failed: %v", err)
		}
		if label != tc.want {
			t.Errorf("Predict(%v) = %d, expected %d", tc.point, label, tc.want)
		}
		if confidence < 0 || confidence > 1 {
			t.Errorf("confidence = %g, expected [0, 1]", confidence)
		}
	}
}

func TestClassifier_PredictBeforeFit(t *testing.T) {
	c := NewClassifier(10)
	if _, _, err := c.Predict([]float64{1, 2}); !errors.Is(err, domain.ErrNotFitted) {
		t.Fatalf("expected ErrNotFitted, got %v", err)
	}
}

func TestClassifier_FitErrors(t *testing.T) {
	c := NewClassifier(10)
	if err := c.Fit(nil, nil, 1); !errors.Is(err, domain.ErrEmptyDataset) {
		t.Errorf("expected ErrEmptyDataset, got %v", err)
	}
	if err := c.Fit([][]float64{{1}}, []int{0, 1}, 1); !errors.Is(err, domain.ErrVectorDimMismatch) {
		t.Errorf("expected ErrVectorDimMismatch, got %v", err)
	}
}

func TestModel_Predict(t *testing.T) {
	rows, labels := separableData()

	scaler, err := FitScaler(rows)
	if err != nil {
		t.Fatal(err)
	}
	scaled, err := scaler.TransformAll(rows)
	if err != nil {
		t.Fatal(err)
	}

	c := NewClassifier(100)
	if err := c.Fit(scaled, labels, 42); err != nil {
		t.Fatal(err)
	}

	m := &Model{Scaler: scaler, Classifier: c, Dim: 2}

	label, _, err := m.Predict([]float64{10, 10})
	if err != nil {
		t.Fatalf("Predict failed: %v", err)
	}
	if label != 1 {
		t.Errorf("Predict near positive cluster = %d, expected 1", label)
	}

	if _, _, err := m.Predict([]float64{1, 2, 3}); !errors.Is(err, domain.ErrVectorDimMismatch) {
		t.Fatalf("expected ErrVectorDimMismatch, got %v", err)
	}
}
