// Package screen applies a fitted model to new documents.
package screen

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"

	"go.uber.org/zap"

	"github.com/scholarmill/paperscreen/internal/domain"
	"github.com/scholarmill/paperscreen/internal/metrics"
	"github.com/scholarmill/paperscreen/internal/model"
)

// FeaturePipeline computes one document's feature vector.
type FeaturePipeline interface {
	FeatureVector(ctx context.Context, path string) ([]float64, error)
}

// BatchResult holds the outcome of a directory pass: predictions for every
// readable document and an explicit record of every skip.
type BatchResult struct {
	Predictions []domain.Prediction
	Skipped     []domain.Skip
}

// Service classifies documents with a fitted model. Construction requires
// the model, so predicting before training is unrepresentable.
type Service struct {
	pipeline FeaturePipeline
	model    *model.Model
	logger   *zap.Logger
}

// New creates a screening service around a fitted model.
func New(pipeline FeaturePipeline, m *model.Model, logger *zap.Logger) *Service {
	return &Service{pipeline: pipeline, model: m, logger: logger}
}

// Classify predicts the label for a single document. Unreadable documents
// return domain.ErrUnreadableDocument.
func (s *Service) Classify(ctx context.Context, path string) (domain.Prediction, error) {
	vec, err := s.pipeline.FeatureVector(ctx, path)
	if err != nil {
		return domain.Prediction{}, fmt.Errorf("classify %s: %w", path, err)
	}

	label, confidence, err := s.model.Predict(vec)
	if err != nil {
		return domain.Prediction{}, fmt.Errorf("classify %s: %w", path, err)
	}

	pred := domain.Prediction{
		PaperID:     filepath.Base(path),
		Publishable: label,
		Confidence:  confidence,
	}
	s.logger.Debug("Document classified",
		zap.String("paper_id", pred.PaperID),
		zap.Int("publishable", pred.Publishable),
		zap.Float64("confidence", pred.Confidence),
	)
	return pred, nil
}

// ClassifyDir sequentially classifies every *.pdf in dir (sorted order).
// Unreadable documents are skipped and reported; any other failure aborts.
func (s *Service) ClassifyDir(ctx context.Context, dir string) (BatchResult, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.pdf"))
	if err != nil {
		return BatchResult{}, fmt.Errorf("list %s: %w", dir, err)
	}
	sort.Strings(paths)

	var res BatchResult
	for _, path := range paths {
		pred, err := s.Classify(ctx, path)
		if err != nil {
			if errors.Is(err, domain.ErrUnreadableDocument) {
				metrics.DocumentsProcessedTotal.WithLabelValues("classify", "skipped").Inc()
				res.Skipped = append(res.Skipped, domain.Skip{Path: path, Reason: err.Error()})
				continue
			}
			return BatchResult{}, err
		}
		metrics.DocumentsProcessedTotal.WithLabelValues("classify", "ok").Inc()
		res.Predictions = append(res.Predictions, pred)
	}

	s.logger.Info("Batch classification complete",
		zap.String("dir", dir),
		zap.Int("classified", len(res.Predictions)),
		zap.Int("skipped", len(res.Skipped)),
	)
	return res, nil
}
