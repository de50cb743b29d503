// Package export writes canonical records as CSV or XLSX.
package export

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/xuri/excelize/v2"

	"github.com/ynabfmt/ynabfmt/internal/model"
)

// Format is an output file format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatCSV, FormatXLSX:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want csv or xlsx)", s)
	}
}

// OutputPath names the file written for input: the base name without its
// extension, then suffix, then the format extension. An empty dir places it
// next to the input.
func OutputPath(input, dir, suffix string, f Format) string {
	base := filepath.Base(input)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if dir == "" {
		dir = filepath.Dir(input)
	}
	return filepath.Join(dir, base+suffix+"."+string(f))
}

// Write encodes records in format f.
func Write(w io.Writer, f Format, records []model.Record) error {
	switch f {
	case FormatCSV:
		return WriteCSV(w, records)
	case FormatXLSX:
		return WriteXLSX(w, records)
	default:
		return fmt.Errorf("unknown output format %q", f)
	}
}

// csvRow is the on-disk shape of a record.
type csvRow struct {
	Date    string `csv:"Date"`
	Payee   string `csv:"Payee"`
	Outflow string `csv:"Outflow"`
	Inflow  string `csv:"Inflow"`
	Memo    string `csv:"Memo"`
}

func toRow(r model.Record) csvRow {
	out, in := r.Amounts()
	return csvRow{Date: r.Date, Payee: r.Payee, Outflow: out, Inflow: in, Memo: r.Memo}
}

// WriteCSV writes the canonical header followed by one line per record.
func WriteCSV(w io.Writer, records []model.Record) error {
	rows := make([]csvRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, toRow(r))
	}
	if err := gocsv.Marshal(&rows, w); err != nil {
		return fmt.Errorf("writing csv: %w", err)
	}
	return nil
}

const sheetName = "Transactions"

// WriteXLSX writes records to a single-sheet workbook. Amounts are stored as
// numbers.
func WriteXLSX(w io.Writer, records []model.Record) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	header := make([]any, len(model.CanonicalHeader))
	for i, h := range model.CanonicalHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}
	if err := f.SetRowStyle(sheetName, 1, 1, bold); err != nil {
		return fmt.Errorf("styling header: %w", err)
	}

	money, err := f.NewStyle(&excelize.Style{NumFmt: 2})
	if err != nil {
		return fmt.Errorf("creating amount style: %w", err)
	}

	for i, r := range records {
		row := []any{r.Date, r.Payee, amountCell(r.Outflow.Valid, r.Outflow.Decimal.InexactFloat64()), amountCell(r.Inflow.Valid, r.Inflow.Decimal.InexactFloat64()), r.Memo}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	if len(records) > 0 {
		if err := f.SetCellStyle(sheetName, "C2", fmt.Sprintf("D%d", len(records)+1), money); err != nil {
			return fmt.Errorf("styling amounts: %w", err)
		}
	}

	for col, width := range map[string]float64{"A": 12, "B": 40, "C": 12, "D": 12, "E": 40} {
		if err := f.SetColWidth(sheetName, col, col, width); err != nil {
			return fmt.Errorf("sizing column %s: %w", col, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing xlsx: %w", err)
	}
	return nil
}

func amountCell(valid bool, v float64) any {
	if !valid {
		return nil
	}
	return v
}
