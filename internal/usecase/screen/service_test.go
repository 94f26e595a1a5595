package screen

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/scholarmill/paperscreen/internal/domain"
	"github.com/scholarmill/paperscreen/internal/model"
)

// fakePipeline maps file base names to feature vectors; unknown names are
// unreadable.
type fakePipeline struct {
	vectors map[string][]float64
}

func (f *fakePipeline) FeatureVector(_ context.Context, path string) ([]float64, error) {
	vec, ok := f.vectors[filepath.Base(path)]
	if !ok {
		return nil, fmt.Errorf("open %s: %w", path, domain.ErrUnreadableDocument)
	}
	return vec, nil
}

// trainedModel fits a small model on two separated clusters.
func trainedModel(t *testing.T) *model.Model {
	t.Helper()

	var rows [][]float64
	var labels []int
	for i := 0; i < 10; i++ {
		rows = append(rows, []float64{float64(i) * 0.1, float64(i) * 0.1})
		labels = append(labels, 0)
		rows = append(rows, []float64{10 + float64(i)*0.1, 10 + float64(i)*0.1})
		labels = append(labels, 1)
	}

	scaler, err := model.FitScaler(rows)
	if err != nil {
		t.Fatal(err)
	}
	scaled, err := scaler.TransformAll(rows)
	if err != nil {
		t.Fatal(err)
	}
	c := model.NewClassifier(50)
	if err := c.Fit(scaled, labels, 42); err != nil {
		t.Fatal(err)
	}
	return &model.Model{Scaler: scaler, Classifier: c, Dim: 2}
}

func TestClassify(t *testing.T) {
	p := &fakePipeline{vectors: map[string][]float64{
		"good.pdf": {10, 10},
		"bad.pdf":  {0.2, 0.3},
	}}
	svc := New(p, trainedModel(t), zap.NewNop())

	pred, err := svc.Classify(context.Background(), "/papers/good.pdf")
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	if pred.PaperID != "good.pdf" {
		t.Errorf("PaperID = %q, expected base name", pred.PaperID)
	}
	if pred.Publishable != 1 {
		t.Errorf("Publishable = %d, expected 1", pred.Publishable)
	}

	pred, err = svc.Classify(context.Background(), "/papers/bad.pdf")
	if err != nil {
		t.Fatal(err)
	}
	if pred.Publishable != 0 {
		t.Errorf("Publishable = %d, expected 0", pred.Publishable)
	}
}

func TestClassify_Unreadable(t *testing.T) {
	svc := New(&fakePipeline{}, trainedModel(t), zap.NewNop())

	_, err := svc.Classify(context.Background(), "corrupt.pdf")
	if !errors.Is(err, domain.ErrUnreadableDocument) {
		t.Fatalf("expected ErrUnreadableDocument, got %v", err)
	}
}

func TestClassify_DimMismatch(t *testing.T) {
	p := &fakePipeline{vectors: map[string][]float64{"odd.pdf": {1, 2, 3}}}
	svc := New(p, trainedModel(t), zap.NewNop())

	_, err := svc.Classify(context.Background(), "odd.pdf")
	if !errors.Is(err, domain.ErrVectorDimMismatch) {
		t.Fatalf("expected ErrVectorDimMismatch, got %v", err)
	}
}

func TestClassifyDir(t *testing.T) {
	dir := t.TempDir()
	vectors := map[string][]float64{}
	for i := 0; i < 4; i++ {
		name := fmt.Sprintf("paper%d.pdf", i)
		if err := os.WriteFile(filepath.Join(dir, name), []byte("stub"), 0o600); err != nil {
			t.Fatal(err)
		}
		vectors[name] = []float64{10, 10}
	}
	// A corrupt member of the batch and a non-PDF that must be ignored.
	if err := os.WriteFile(filepath.Join(dir, "corrupt.pdf"), []byte("stub"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("stub"), 0o600); err != nil {
		t.Fatal(err)
	}

	svc := New(&fakePipeline{vectors: vectors}, trainedModel(t), zap.NewNop())

	res, err := svc.ClassifyDir(context.Background(), dir)
	if err != nil {
		t.Fatalf("ClassifyDir failed: %v", err)
	}

	if len(res.Predictions) != 4 {
		t.Errorf("predictions = %d, expected 4", len(res.Predictions))
	}
	for _, pred := range res.Predictions {
		if pred.Publishable != 0 && pred.Publishable != 1 {
			t.Errorf("prediction %s has label %d", pred.PaperID, pred.Publishable)
		}
	}
	if len(res.Skipped) != 1 || filepath.Base(res.Skipped[0].Path) != "corrupt.pdf" {
		t.Errorf("skipped = %v, expected exactly corrupt.pdf", res.Skipped)
	}
}

func TestClassifyDir_EmptyDir(t *testing.T) {
	svc := New(&fakePipeline{}, trainedModel(t), zap.NewNop())

	res, err := svc.ClassifyDir(context.Background(), t.TempDir())
	if err != nil {
		t.Fatalf("ClassifyDir failed: %v", err)
	}
	if len(res.Predictions) != 0 || len(res.Skipped) != 0 {
		t.Errorf("expected empty result, got %+v", res)
	}
}
