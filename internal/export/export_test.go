package export

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ynabfmt/ynabfmt/internal/model"
)

func records(t *testing.T) []model.Record {
	t.Helper()
	a, ok := model.NewRecord("01/02/2023", "Alice", decimal.NullDecimal{}, decimal.NewNullDecimal(decimal.RequireFromString("100")), "rent")
	require.True(t, ok)
	b, ok := model.NewRecord("02/02/2023", `Coffee_ Shop, "Orchard"`, decimal.NewNullDecimal(decimal.RequireFromString("4.5")), decimal.NullDecimal{}, "")
	require.True(t, ok)
	return []model.Record{a, b}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, records(t)))

	want := "Date,Payee,Outflow,Inflow,Memo\n" +
		"01/02/2023,Alice,,100.00,rent\n" +
		"02/02/2023,\"Coffee_ Shop, \"\"Orchard\"\"\",4.50,,\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))
	assert.Equal(t, "Date,Payee,Outflow,Inflow,Memo\n", buf.String())
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatXLSX, records(t)))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{sheetName}, f.GetSheetList())
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, model.CanonicalHeader, rows[0])
	assert.Equal(t, []string{"01/02/2023", "Alice", "", "100", "rent"}, rows[1])
	assert.Equal(t, "4.5", rows[2][2])
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat(" XLSX ")
	require.NoError(t, err)
	assert.Equal(t, FormatXLSX, f)

	_, err = ParseFormat("ods")
	assert.Error(t, err)
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		input, dir, suffix string
		format             Format
		want               string
	}{
		{"stmt/ocbc.csv", "", ".ynab", FormatCSV, filepath.Join("stmt", "ocbc.ynab.csv")},
		{"stmt/uob.xls", "", ".ynab", FormatCSV, filepath.Join("stmt", "uob.ynab.csv")},
		{"stmt/uob.xls", "out", ".ynab", FormatXLSX, filepath.Join("out", "uob.ynab.xlsx")},
		{"noext", "", "-ynab", FormatCSV, "noext-ynab.csv"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, OutputPath(tt.input, tt.dir, tt.suffix, tt.format), tt.input)
	}
}
