// Package dataset builds the training matrix from a labeled document list.
package dataset

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/scholarmill/paperscreen/internal/domain"
	"github.com/scholarmill/paperscreen/internal/metrics"
)

// FeaturePipeline computes one document's feature vector.
type FeaturePipeline interface {
	FeatureVector(ctx context.Context, path string) ([]float64, error)
}

// Result is a built dataset: rows and labels stay parallel, and every
// dropped document is accounted for in Skipped.
type Result struct {
	Matrix  [][]float64
	Labels  []int
	Skipped []domain.Skip
}

// Builder assembles feature matrices.
type Builder struct {
	pipeline FeaturePipeline
	logger   *zap.Logger
}

// NewBuilder creates a dataset builder.
func NewBuilder(pipeline FeaturePipeline, logger *zap.Logger) *Builder {
	return &Builder{pipeline: pipeline, logger: logger}
}

// Build runs the feature pipeline over every document, dropping exactly the
// unreadable ones. Feature vectors must all have the same length. Returns
// domain.ErrEmptyDataset when nothing survives.
func (b *Builder) Build(ctx context.Context, docs []domain.Document) (Result, error) {
	var res Result
	for _, doc := range docs {
		vec, err := b.pipeline.FeatureVector(ctx, doc.Path)
		if err != nil {
			if errors.Is(err, domain.ErrUnreadableDocument) {
				b.logger.Warn("Skipping document",
					zap.String("path", doc.Path),
					zap.Error(err),
				)
				metrics.DocumentsProcessedTotal.WithLabelValues("train", "skipped").Inc()
				res.Skipped = append(res.Skipped, domain.Skip{Path: doc.Path, Reason: err.Error()})
				continue
			}
			return Result{}, fmt.Errorf("build dataset: %w", err)
		}

		if len(res.Matrix) > 0 && len(vec) != len(res.Matrix[0]) {
			return Result{}, fmt.Errorf("document %s produced %d features, expected %d: %w",
				doc.Path, len(vec), len(res.Matrix[0]), domain.ErrVectorDimMismatch)
		}

		metrics.DocumentsProcessedTotal.WithLabelValues("train", "ok").Inc()
		res.Matrix = append(res.Matrix, vec)
		res.Labels = append(res.Labels, doc.Label)
	}

	if len(res.Matrix) == 0 {
		return Result{}, fmt.Errorf("no document survived feature extraction: %w", domain.ErrEmptyDataset)
	}

	b.logger.Info("Dataset built",
		zap.Int("documents", len(res.Matrix)),
		zap.Int("skipped", len(res.Skipped)),
		zap.Int("features", len(res.Matrix[0])),
	)
	return res, nil
}
