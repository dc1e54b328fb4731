// Package export writes the filtered, newest-first expense view to CSV, JSON,
// or XLSX files for use outside the application.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/pennywise-app/pennywise/internal/model"
)

// csvHeader is the fixed CSV column order.
const csvHeader = "Date,Category,Amount,Description"

// shortDate is the date layout used in CSV and XLSX cells.
const shortDate = "1/2/06"

// WriteCSV writes the expenses as CSV. Commas in descriptions are replaced
// with semicolons; there is no further quoting or escaping, a documented
// limitation of the format.
func WriteCSV(w io.Writer, expenses []model.Expense) error {
	var b strings.Builder
	b.WriteString(csvHeader)
	b.WriteByte('\n')

	for _, e := range expenses {
		description := strings.ReplaceAll(e.Description, ",", ";")
		fmt.Fprintf(&b, "%s,%s,%.2f,%s\n", e.Date.Format(shortDate), e.Category, e.Amount, description)
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}
	return nil
}

// WriteJSON writes the expenses as an indented JSON array. Field names and
// the ISO-8601 date format match the persistence schema, so an export can be
// read back as a data file.
func WriteJSON(w io.Writer, expenses []model.Expense) error {
	if expenses == nil {
		expenses = []model.Expense{}
	}

	data, err := json.MarshalIndent(expenses, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode expenses: %w", err)
	}

	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write JSON: %w", err)
	}
	return nil
}

// WriteXLSX writes the expenses as a single-sheet workbook with the same
// columns as the CSV export, amounts as numeric cells.
func WriteXLSX(w io.Writer, expenses []model.Expense) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	const sheet = "Expenses"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	header := []any{"Date", "Category", "Amount", "Description"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, e := range expenses {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to compute cell: %w", err)
		}
		row := []any{e.Date.Format(shortDate), string(e.Category), e.Amount, e.Description}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// Format is an export file format.
type Format string

const (
	// FormatCSV is comma-separated text.
	FormatCSV Format = "csv"
	// FormatJSON is an indented JSON array.
	FormatJSON Format = "json"
	// FormatXLSX is an Excel workbook.
	FormatXLSX Format = "xlsx"
)

// ParseFormat resolves a user-supplied format name.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	case "xlsx":
		return FormatXLSX, nil
	}
	return "", fmt.Errorf("unknown export format %q (valid: csv, json, xlsx)", name)
}

// ToFile writes the expenses to path in the given format.
func ToFile(path string, format Format, expenses []model.Expense) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer func() { _ = f.Close() }()

	switch format {
	case FormatCSV:
		err = WriteCSV(f, expenses)
	case FormatJSON:
		err = WriteJSON(f, expenses)
	case FormatXLSX:
		err = WriteXLSX(f, expenses)
	default:
		err = fmt.Errorf("unknown export format %q", format)
	}
	if err != nil {
		return err
	}

	return f.Close()
}
