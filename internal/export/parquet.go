package export

import (
	"fmt"
	"os"

	"github.com/parquet-go/parquet-go"

	"github.com/scholarmill/paperscreen/internal/domain"
)

// resultRow is the parquet schema for one prediction.
type resultRow struct {
	PaperID     string  `parquet:"paper_id"`
	Publishable int32   `parquet:"publishable"`
	Confidence  float64 `parquet:"confidence"`
}

// WriteParquet writes predictions as a parquet table.
func WriteParquet(path string, preds []domain.Prediction) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	rows := make([]resultRow, len(preds))
	for i, p := range preds {
		rows[i] = resultRow{
			PaperID:     p.PaperID,
			Publishable: int32(p.Publishable),
			Confidence:  p.Confidence,
		}
	}

	w := parquet.NewGenericWriter[resultRow](f)
	if _, err := w.Write(rows); err != nil {
		return fmt.Errorf("write rows: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close writer: %w", err)
	}
	return f.Close()
}
