package model

import (
	"fmt"
	"sort"
	"strings"

	"github.com/scholarmill/paperscreen/internal/domain"
)

// ClassMetrics holds per-class evaluation numbers.
type ClassMetrics struct {
	Label     int
	Precision float64
	Recall    float64
	F1        float64
	Support   int
}

// Evaluation summarizes held-out performance. F1 is the binary F1 for the
// positive class (label 1). Classes absent from a partition report 0 for
// every metric rather than NaN.
type Evaluation struct {
	F1       float64
	Accuracy float64
	Classes  []ClassMetrics
}

// Evaluate compares predictions against ground truth.
func Evaluate(yTrue, yPred []int) (Evaluation, error) {
	if len(yTrue) == 0 {
		return Evaluation{}, fmt.Errorf("evaluate: %w", domain.ErrEmptyDataset)
	}
	if len(yTrue) != len(yPred) {
		return Evaluation{}, fmt.Errorf("evaluate: %d truths vs %d predictions", len(yTrue), len(yPred))
	}

	labels := map[int]struct{}{}
	correct := 0
	for i, truth := range yTrue {
		labels[truth] = struct{}{}
		labels[yPred[i]] = struct{}{}
		if truth == yPred[i] {
			correct++
		}
	}

	sorted := make([]int, 0, len(labels))
	for l := range labels {
		sorted = append(sorted, l)
	}
	sort.Ints(sorted)

	eval := Evaluation{Accuracy: float64(correct) / float64(len(yTrue))}
	for _, label := range sorted {
		m := classMetrics(yTrue, yPred, label)
		eval.Classes = append(eval.Classes, m)
		if label == 1 {
			eval.F1 = m.F1
		}
	}
	return eval, nil
}

func classMetrics(yTrue, yPred []int, label int) ClassMetrics {
	var tp, fp, fn, support int
	for i, truth := range yTrue {
		pred := yPred[i]
		if truth == label {
			support++
		}
		switch {
		case pred == label && truth == label:
			tp++
		case pred == label && truth != label:
			fp++
		case pred != label && truth == label:
			fn++
		}
	}

	m := ClassMetrics{Label: label, Support: support}
	if tp+fp > 0 {
		m.Precision = float64(tp) / float64(tp+fp)
	}
	if tp+fn > 0 {
		m.Recall = float64(tp) / float64(tp+fn)
	}
	if m.Precision+m.Recall > 0 {
		m.F1 = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
	}
	return m
}

// Report renders the per-class table.
func (e Evaluation) Report() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%12s %10s %10s %10s %10s\n", "", "precision", "recall", "f1-score", "support"))
	for _, m := range e.Classes {
		sb.WriteString(fmt.Sprintf("%12d %10.2f %10.2f %10.2f %10d\n",
			m.Label, m.Precision, m.Recall, m.F1, m.Support))
	}
	sb.WriteString(fmt.Sprintf("%12s %10s %10s %10.2f\n", "accuracy", "", "", e.Accuracy))
	return sb.String()
}
