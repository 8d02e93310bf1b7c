package csvio

import (
	"encoding/csv"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"

	"github.com/systemstart/blottertools/pkg/table"
)

// Write stores the given columns of t as a CSV file. Decimal cells are
// written with a fixed number of fractional digits, dates as YYYY-MM-DD,
// nil cells as empty fields.
func Write(path string, t *table.Table, columns []string, precision int) error {
	sel, err := t.Select(columns...)
	if err != nil {
		return fmt.Errorf("selecting output columns: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	writeErr := writeRecords(f, sel, columns, precision)

	if closeErr := f.Close(); closeErr != nil {
		if writeErr != nil {
			return fmt.Errorf("writing %s: %w", path, writeErr)
		}
		return fmt.Errorf("closing %s: %w", path, closeErr)
	}
	if writeErr != nil {
		return fmt.Errorf("writing %s: %w", path, writeErr)
	}
	return nil
}

func writeRecords(f *os.File, t *table.Table, columns []string, precision int) error {
	w := csv.NewWriter(f)
	if err := w.Write(columns); err != nil {
		return err
	}

	record := make([]string, len(columns))
	for i := 0; i < t.Len(); i++ {
		for j, name := range columns {
			v, err := t.Value(i, name)
			if err != nil {
				return err
			}
			record[j] = formatCell(v, precision)
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func formatCell(v any, precision int) string {
	switch cv := v.(type) {
	case nil:
		return ""
	case decimal.Decimal:
		return cv.StringFixed(int32(precision))
	case time.Time:
		return cv.Format("2006-01-02")
	default:
		return cast.ToString(cv)
	}
}
