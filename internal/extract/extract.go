// Package extract pulls plain text out of PDF files.
package extract

import (
	"context"
	"fmt"
	"strings"

	pdf "github.com/ledongthuc/pdf"
	"go.uber.org/zap"

	"github.com/scholarmill/paperscreen/internal/domain"
)

// Extractor reads PDF files into plain text, one page per line block.
type Extractor struct {
	logger *zap.Logger
}

// New creates a PDF text extractor.
func New(logger *zap.Logger) *Extractor {
	return &Extractor{logger: logger}
}

// Text extracts the concatenated page text of the PDF at path, pages joined
// by newlines. Any open/parse failure is logged and wrapped in
// domain.ErrUnreadableDocument; callers must skip the document.
func (e *Extractor) Text(ctx context.Context, path string) (text string, err error) {
	// The pdf package panics on some malformed xref tables and font maps.
	defer func() {
		if r := recover(); r != nil {
			e.logger.Warn("PDF parser panic",
				zap.String("path", path),
				zap.Any("panic", r),
			)
			text = ""
			err = fmt.Errorf("parse %s: %v: %w", path, r, domain.ErrUnreadableDocument)
		}
	}()

	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("extract %s: %w", path, err)
	}

	f, r, err := pdf.Open(path)
	if err != nil {
		e.logger.Warn("Failed to open PDF", zap.String("path", path), zap.Error(err))
		return "", fmt.Errorf("open %s: %v: %w", path, err, domain.ErrUnreadableDocument)
	}
	defer func() { _ = f.Close() }()

	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			e.logger.Warn("Failed to extract page text",
				zap.String("path", path),
				zap.Int("page", i),
				zap.Error(err),
			)
			return "", fmt.Errorf("extract %s page %d: %v: %w", path, i, err, domain.ErrUnreadableDocument)
		}
		sb.WriteString(pageText)
		sb.WriteByte('\n')
	}

	return sb.String(), nil
}
