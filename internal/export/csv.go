package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"fjacquet/budget-projector/internal/logging"
	"fjacquet/budget-projector/internal/models"

	"github.com/gocarina/gocsv"
)

// CSVRow is one ledger month as written to CSV.
type CSVRow struct {
	Month            string `csv:"Month"`
	OpeningBalance   int64  `csv:"OpeningBalance"`
	Income           int64  `csv:"Income"`
	RecurringExpense int64  `csv:"RecurringExpense"`
	WishlistExpense  int64  `csv:"WishlistExpense"`
	TotalExpense     int64  `csv:"TotalExpense"`
	ClosingBalance   int64  `csv:"ClosingBalance"`
}

// CSVRows converts the ledger into CSV rows with month labels in locale.
func CSVRows(ledger models.Ledger, locale string) []CSVRow {
	rows := ledger.Rows()
	out := make([]CSVRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, CSVRow{
			Month:            r.Month.Label(locale),
			OpeningBalance:   r.OpeningBalance,
			Income:           r.Income,
			RecurringExpense: r.RecurringExpense,
			WishlistExpense:  r.WishlistExpense,
			TotalExpense:     r.TotalExpense,
			ClosingBalance:   r.ClosingBalance,
		})
	}
	return out
}

// WriteCSV writes the ledger to w.
func (e *Exporter) WriteCSV(w io.Writer, ledger models.Ledger, locale string) error {
	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = e.delimiter
	out := gocsv.NewSafeCSVWriter(csvWriter)

	rows := CSVRows(ledger, locale)
	var err error
	if e.includeHeaders {
		err = gocsv.MarshalCSV(rows, out)
	} else {
		err = gocsv.MarshalCSVWithoutHeaders(rows, out)
	}
	if err != nil {
		e.logger.WithError(err).Error("Failed to marshal ledger to CSV")
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}

// WriteCSVFile writes the ledger to path, creating parent directories.
func (e *Exporter) WriteCSVFile(path string, ledger models.Ledger, locale string) error {
	if err := os.MkdirAll(filepath.Dir(path), models.PermissionDirectory); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, models.PermissionReportFile) // #nosec G302 G304 -- report output chosen by the user
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			e.logger.WithError(err).Warn("Failed to close file")
		}
	}()

	if err := e.WriteCSV(file, ledger, locale); err != nil {
		return err
	}

	e.logger.Info("Wrote ledger to CSV file",
		logging.F(logging.FieldOutputFile, path),
		logging.F(logging.FieldDelimiter, string(e.delimiter)),
		logging.F(logging.FieldCount, ledger.Len()))
	return nil
}
