// Package sheet reads spreadsheet exports and detects which bank layout
// they follow.
package sheet

import (
	"bytes"
	"fmt"

	"github.com/shakinm/xlsReader/xls"
	"github.com/xuri/excelize/v2"

	"github.com/ynabfmt/ynabfmt/internal/model"
)

// Kind is a workbook container format.
type Kind int

const (
	KindNone Kind = iota
	KindXLSX
	KindXLS
)

var (
	zipMagic = []byte{'P', 'K', 0x03, 0x04}
	oleMagic = []byte{0xD0, 0xCF, 0x11, 0xE0}
)

// Sniff identifies the workbook format from its leading bytes.
func Sniff(data []byte) Kind {
	switch {
	case bytes.HasPrefix(data, zipMagic):
		return KindXLSX
	case bytes.HasPrefix(data, oleMagic):
		return KindXLS
	default:
		return KindNone
	}
}

// Read returns the cell text of the first sheet, row by row.
func Read(data []byte) ([][]string, error) {
	switch Sniff(data) {
	case KindXLSX:
		return readXLSX(data)
	case KindXLS:
		return readXLS(data)
	default:
		return nil, fmt.Errorf("%w: not an xls or xlsx workbook", model.ErrUnrecognizedFormat)
	}
}

func readXLSX(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("opening xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", model.ErrUnrecognizedFormat)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheets[0], err)
	}
	return rows, nil
}

func readXLS(data []byte) ([][]string, error) {
	wb, err := xls.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("opening xls: %w", err)
	}
	if len(wb.GetSheets()) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", model.ErrUnrecognizedFormat)
	}
	sh, err := wb.GetSheet(0)
	if err != nil {
		return nil, fmt.Errorf("reading first sheet: %w", err)
	}

	var rows [][]string
	for _, row := range sh.GetRows() {
		var cells []string
		for _, cell := range row.GetCols() {
			cells = append(cells, cell.GetString())
		}
		rows = append(rows, cells)
	}
	return rows, nil
}
