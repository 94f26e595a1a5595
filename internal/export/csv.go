package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/scholarmill/paperscreen/internal/domain"
)

// WriteCSV writes predictions as a CSV table with columns paper_id,
// publishable and confidence.
func WriteCSV(path string, preds []domain.Prediction) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"paper_id", "publishable", "confidence"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, p := range preds {
		record := []string{
			p.PaperID,
			strconv.Itoa(p.Publishable),
			strconv.FormatFloat(p.Confidence, 'f', 4, 64),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write row for %s: %w", p.PaperID, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return f.Close()
}
