package model

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/scholarmill/paperscreen/internal/domain"
)

// StratifiedSplit partitions row indices into train and test sets, sampling
// the test fraction within each class so class ratios are preserved. A fixed
// seed yields the same partition on every run. Classes with a single member
// stay in the training set.
func StratifiedSplit(labels []int, testFraction float64, seed int64) (trainIdx, testIdx []int, err error) {
	if len(labels) == 0 {
		return nil, nil, fmt.Errorf("stratified split: %w", domain.ErrEmptyDataset)
	}
	if testFraction <= 0 || testFraction >= 1 {
		return nil, nil, fmt.Errorf("test fraction must be in (0, 1), got %g", testFraction)
	}

	byClass := make(map[int][]int)
	for i, label := range labels {
		byClass[label] = append(byClass[label], i)
	}

	// Deterministic class iteration order.
	classes := make([]int, 0, len(byClass))
	for c := range byClass {
		classes = append(classes, c)
	}
	sort.Ints(classes)

	rng := rand.New(rand.NewSource(seed))

	for _, c := range classes {
		indices := byClass[c]
		rng.Shuffle(len(indices), func(i, j int) {
			indices[i], indices[j] = indices[j], indices[i]
		})

		nTest := int(math.Round(testFraction * float64(len(indices))))
		if nTest >= len(indices) {
			nTest = len(indices) - 1
		}
		if nTest < 0 {
			nTest = 0
		}

		testIdx = append(testIdx, indices[:nTest]...)
		trainIdx = append(trainIdx, indices[nTest:]...)
	}

	sort.Ints(trainIdx)
	sort.Ints(testIdx)
	return trainIdx, testIdx, nil
}

// Subset gathers matrix rows and labels at the given indices.
func Subset(rows [][]float64, labels []int, idx []int) ([][]float64, []int) {
	outRows := make([][]float64, len(idx))
	outLabels := make([]int, len(idx))
	for i, j := range idx {
		outRows[i] = rows[j]
		outLabels[i] = labels[j]
	}
	return outRows, outLabels
}
