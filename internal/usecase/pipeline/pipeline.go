// Package pipeline turns one document into one feature vector. Training and
// prediction share this path so their vectors cannot drift apart.
package pipeline

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/scholarmill/paperscreen/internal/domain"
	"github.com/scholarmill/paperscreen/internal/features"
	"github.com/scholarmill/paperscreen/internal/textnorm"
)

// TextExtractor pulls plain text out of a source document.
type TextExtractor interface {
	Text(ctx context.Context, path string) (string, error)
}

// Pipeline runs extract → normalize → structural features → embed → assemble.
type Pipeline struct {
	extractor TextExtractor
	embedder  domain.Embedder
	logger    *zap.Logger
}

// New creates a feature pipeline.
func New(extractor TextExtractor, embedder domain.Embedder, logger *zap.Logger) *Pipeline {
	return &Pipeline{
		extractor: extractor,
		embedder:  embedder,
		logger:    logger,
	}
}

// FeatureVector computes the full feature vector for the document at path:
// the 13 structural features first, the semantic embedding second.
func (p *Pipeline) FeatureVector(ctx context.Context, path string) ([]float64, error) {
	raw, err := p.extractor.Text(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}
	if strings.TrimSpace(raw) == "" {
		// Image-only scans extract successfully but carry no text.
		p.logger.Warn("Document has no extractable text", zap.String("path", path))
		return nil, fmt.Errorf("no extractable text in %s: %w", path, domain.ErrUnreadableDocument)
	}

	set := features.Extract(raw)

	normalized := textnorm.Normalize(raw)
	if normalized == "" {
		// Stopword-only text; embed the collapsed raw text instead of an
		// empty string, which providers reject.
		normalized = strings.Join(strings.Fields(raw), " ")
	}

	result, err := p.embedder.Embed(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("embed %s: %w", path, err)
	}

	vec, err := features.Assemble(set, result.Embedding)
	if err != nil {
		return nil, fmt.Errorf("assemble %s: %w", path, err)
	}
	return vec, nil
}
