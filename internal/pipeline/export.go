package pipeline

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"spendlive/internal/core"
)

// DefaultExportColumns is the column order shown in the transactions table.
var DefaultExportColumns = []string{"date", "category", "amount", "description"}

// ExportCSV serializes the currently filtered view as delimited text: one
// header row, one data row per record, comma separated with standard quoting.
// It is a pure function of the view; the caller hands the bytes off for
// download.
func ExportCSV(v View, columns []string) ([]byte, error) {
	if len(columns) == 0 {
		columns = DefaultExportColumns
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(columns); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, t := range v.ByDateDesc() {
		record := make([]string, len(columns))
		for i, col := range columns {
			val, err := fieldValue(t, col)
			if err != nil {
				return nil, err
			}
			record[i] = val
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

func fieldValue(t core.Transaction, column string) (string, error) {
	switch column {
	case "id":
		return strconv.FormatInt(t.ID, 10), nil
	case "user_id":
		return t.UserID, nil
	case "category":
		return t.Category, nil
	case "amount":
		return t.Amount.String(), nil
	case "currency":
		return t.Currency, nil
	case "date":
		if t.Date == nil {
			return "", nil
		}
		return t.Date.String(), nil
	case "description":
		return t.Description, nil
	case "tags":
		return t.Tags, nil
	case "created_at":
		if t.CreatedAt == nil {
			return "", nil
		}
		return t.CreatedAt.Format("2006-01-02 15:04:05"), nil
	default:
		return "", fmt.Errorf("unknown export column %q", column)
	}
}
