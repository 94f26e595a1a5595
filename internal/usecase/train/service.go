// Package train fits the scaler and ensemble on a labeled document set and
// evaluates them on a stratified hold-out.
package train

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/scholarmill/paperscreen/internal/domain"
	"github.com/scholarmill/paperscreen/internal/model"
	"github.com/scholarmill/paperscreen/internal/usecase/dataset"
)

// DatasetBuilder turns labeled documents into a feature matrix.
type DatasetBuilder interface {
	Build(ctx context.Context, docs []domain.Document) (dataset.Result, error)
}

// Options configure a training pass.
type Options struct {
	TestFraction float64
	Seed         int64
	Trees        int
}

// Service trains and evaluates classification models.
type Service struct {
	builder DatasetBuilder
	opts    Options
	logger  *zap.Logger
}

// New creates a training service.
func New(builder DatasetBuilder, opts Options, logger *zap.Logger) *Service {
	return &Service{builder: builder, opts: opts, logger: logger}
}

// Train builds the dataset, splits it 80/20 stratified by label, fits the
// scaler on the training partition only, fits the ensemble on scaled
// training rows and evaluates on the hold-out. Returns the fitted model
// artifact and the evaluation.
func (s *Service) Train(ctx context.Context, docs []domain.Document) (*model.Model, model.Evaluation, error) {
	res, err := s.builder.Build(ctx, docs)
	if err != nil {
		return nil, model.Evaluation{}, fmt.Errorf("train: %w", err)
	}
	if len(res.Skipped) > 0 {
		s.logger.Warn("Documents excluded from training",
			zap.Int("skipped", len(res.Skipped)),
		)
	}

	trainIdx, testIdx, err := model.StratifiedSplit(res.Labels, s.opts.TestFraction, s.opts.Seed)
	if err != nil {
		return nil, model.Evaluation{}, fmt.Errorf("train: %w", err)
	}

	trainRows, trainLabels := model.Subset(res.Matrix, res.Labels, trainIdx)
	testRows, testLabels := model.Subset(res.Matrix, res.Labels, testIdx)

	scaler, err := model.FitScaler(trainRows)
	if err != nil {
		return nil, model.Evaluation{}, fmt.Errorf("train: %w", err)
	}
	scaledTrain, err := scaler.TransformAll(trainRows)
	if err != nil {
		return nil, model.Evaluation{}, fmt.Errorf("train: %w", err)
	}

	classifier := model.NewClassifier(s.opts.Trees)
	if err := classifier.Fit(scaledTrain, trainLabels, s.opts.Seed); err != nil {
		return nil, model.Evaluation{}, fmt.Errorf("train: %w", err)
	}

	m := &model.Model{
		Scaler:     scaler,
		Classifier: classifier,
		Dim:        scaler.Dim(),
	}

	eval, err := s.evaluate(m, testRows, testLabels)
	if err != nil {
		return nil, model.Evaluation{}, err
	}

	s.logger.Info("Training complete",
		zap.Int("train_documents", len(trainRows)),
		zap.Int("test_documents", len(testRows)),
		zap.Int("trees", s.opts.Trees),
		zap.Float64("f1", eval.F1),
	)
	s.logger.Info("Classification report\n" + eval.Report())

	return m, eval, nil
}

func (s *Service) evaluate(m *model.Model, testRows [][]float64, testLabels []int) (model.Evaluation, error) {
	if len(testRows) == 0 {
		s.logger.Warn("Hold-out partition is empty, skipping evaluation")
		return model.Evaluation{}, nil
	}

	preds := make([]int, len(testRows))
	for i, row := range testRows {
		label, _, err := m.Predict(row)
		if err != nil {
			return model.Evaluation{}, fmt.Errorf("evaluate row %d: %w", i, err)
		}
		preds[i] = label
	}

	eval, err := model.Evaluate(testLabels, preds)
	if err != nil {
		return model.Evaluation{}, fmt.Errorf("evaluate: %w", err)
	}
	return eval, nil
}
