// Package report turns a filtered record view into a downloadable tabular
// document (CSV). It operates purely on in-memory data: no network access,
// and an empty view still yields a valid header-only document.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"finledger/internal/models"
)

// dateLayout renders abbreviated-month day, 4-digit year: "Jan 05, 2024".
const dateLayout = "Jan 02, 2006"

// Fallback literals for fields a record may be missing. These are rendered
// values, never errors: a half-broken record still exports.
const (
	missingField = "N/A"
	invalidDate  = "Invalid Date"
	zeroAmount   = "0.00"
)

// Header returns the fixed column set for a record kind.
func Header(kind models.Kind) []string {
	if kind == models.KindTransaction {
		return []string{"Date", "Type", "Amount"}
	}
	return []string{"Date", "Description", "Category", "Amount"}
}

// Row renders one record into the column set of its kind.
func Row(kind models.Kind, r models.Record) []string {
	if kind == models.KindTransaction {
		return []string{formatDate(r), orMissing(r.Type), formatAmount(r.Amount)}
	}
	return []string{formatDate(r), orMissing(r.Description), orMissing(r.Category), formatAmount(r.Amount)}
}

// Write emits the CSV document for recs to w: one header row, then one row
// per record in view order.
func Write(w io.Writer, kind models.Kind, recs []models.Record) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Header(kind)); err != nil {
		return fmt.Errorf("writing report header: %w", err)
	}
	for _, r := range recs {
		if err := cw.Write(Row(kind, r)); err != nil {
			return fmt.Errorf("writing report row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing report: %w", err)
	}
	return nil
}

// ExportFile writes the report into dir and returns the file path.
func ExportFile(dir string, kind models.Kind, recs []models.Record) (string, error) {
	name := "expenses_report.csv"
	if kind == models.KindTransaction {
		name = "transactions_report.csv"
	}
	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating report file: %w", err)
	}
	defer f.Close()

	if err := Write(f, kind, recs); err != nil {
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing report file: %w", err)
	}
	return path, nil
}

func formatDate(r models.Record) string {
	t, ok := r.CreatedAtTime()
	if !ok {
		return invalidDate
	}
	return t.Format(dateLayout)
}

func formatAmount(a models.Amount) string {
	if !a.Valid {
		return zeroAmount
	}
	return strconv.FormatFloat(a.Value, 'f', 2, 64)
}

func orMissing(s string) string {
	if s == "" {
		return missingField
	}
	return s
}
