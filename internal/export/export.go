// Package export persists prediction tables.
package export

import (
	"fmt"

	"github.com/scholarmill/paperscreen/internal/domain"
)

// Write persists predictions at path in the given format ("csv" or
// "parquet"), overwriting any previous run.
func Write(path, format string, preds []domain.Prediction) error {
	switch format {
	case "csv":
		return WriteCSV(path, preds)
	case "parquet":
		return WriteParquet(path, preds)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
