package dataset

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"go.uber.org/zap"

	"github.com/scholarmill/paperscreen/internal/domain"
)

type fakePipeline struct {
	vectors map[string][]float64
	err     error
}

func (f *fakePipeline) FeatureVector(_ context.Context, path string) ([]float64, error) {
	if f.err != nil {
		return nil, f.err
	}
	vec, ok := f.vectors[path]
	if !ok {
		return nil, fmt.Errorf("open %s: %w", path, domain.ErrUnreadableDocument)
	}
	return vec, nil
}

func TestBuild_DropsExactlyUnreadable(t *testing.T) {
	p := &fakePipeline{vectors: map[string][]float64{
		"a.pdf": {1, 2},
		"c.pdf": {3, 4},
	}}
	b := NewBuilder(p, zap.NewNop())

	docs := []domain.Document{
		{Path: "a.pdf", Label: 1},
		{Path: "b.pdf", Label: 0}, // unreadable
		{Path: "c.pdf", Label: 0},
	}

	res, err := b.Build(context.Background(), docs)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if len(res.Matrix) != 2 {
		t.Fatalf("matrix rows = %d, expected 2", len(res.Matrix))
	}
	if len(res.Labels) != len(res.Matrix) {
		t.Fatalf("labels %d not parallel to matrix %d", len(res.Labels), len(res.Matrix))
	}
	if res.Labels[0] != 1 || res.Labels[1] != 0 {
		t.Errorf("labels = %v, expected [1 0]", res.Labels)
	}
	if len(res.Skipped) != 1 || res.Skipped[0].Path != "b.pdf" {
		t.Errorf("skipped = %v, expected exactly b.pdf", res.Skipped)
	}
	if res.Skipped[0].Reason == "" {
		t.Error("skip record has no reason")
	}
}

func TestBuild_AllUnreadable(t *testing.T) {
	b := NewBuilder(&fakePipeline{}, zap.NewNop())

	_, err := b.Build(context.Background(), []domain.Document{{Path: "x.pdf"}})
	if !errors.Is(err, domain.ErrEmptyDataset) {
		t.Fatalf("expected ErrEmptyDataset, got %v", err)
	}
}

func TestBuild_RaggedVectors(t *testing.T) {
	p := &fakePipeline{vectors: map[string][]float64{
		"a.pdf": {1, 2},
		"b.pdf": {1, 2, 3},
	}}
	b := NewBuilder(p, zap.NewNop())

	docs := []domain.Document{{Path: "a.pdf"}, {Path: "b.pdf"}}
	_, err := b.Build(context.Background(), docs)
	if !errors.Is(err, domain.ErrVectorDimMismatch) {
		t.Fatalf("expected ErrVectorDimMismatch, got %v", err)
	}
}

func TestBuild_FatalErrorPropagates(t *testing.T) {
	p := &fakePipeline{err: domain.ErrEmbeddingProviderError}
	b := NewBuilder(p, zap.NewNop())

	_, err := b.Build(context.Background(), []domain.Document{{Path: "a.pdf"}})
	if !errors.Is(err, domain.ErrEmbeddingProviderError) {
		t.Fatalf("expected provider error to abort the build, got %v", err)
	}
}
