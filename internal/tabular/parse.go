// Package tabular parses normalized CSV text into canonical rows and turns
// them into records.
package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ynabfmt/ynabfmt/internal/bank"
	"github.com/ynabfmt/ynabfmt/internal/model"
)

// ErrorCode classifies a structural parse failure.
type ErrorCode string

const (
	TooFewFields  ErrorCode = "TooFewFields"
	TooManyFields ErrorCode = "TooManyFields"
	InvalidSyntax ErrorCode = "InvalidSyntax"
)

// ParseError is a structural problem on one row. Row is the 1-based line in
// the parsed text.
type ParseError struct {
	Row  int
	Code ErrorCode
	Err  error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("row %d: %s: %v", e.Row, e.Code, e.Err)
	}
	return fmt.Sprintf("row %d: %s", e.Row, e.Code)
}

// Unwrap lets errors.Is match model.ErrStructuralParse and the cause.
func (e *ParseError) Unwrap() []error {
	if e.Err != nil {
		return []error{model.ErrStructuralParse, e.Err}
	}
	return []error{model.ErrStructuralParse}
}

// Table is the parsed form of one normalized export.
type Table struct {
	Header       []model.Field
	Rows         []model.Row
	Unrecognized []string
	Warnings     []model.Warning
}

type rawRecord struct {
	line   int
	fields []string
}

// Parse reads text as comma-separated data with a header row. Lines starting
// with '#' are comments. A short final row is dropped as a truncated line;
// every other structural problem fails the parse.
func Parse(text string, p bank.Profile) (*Table, error) {
	cr := csv.NewReader(strings.NewReader(text))
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var records []rawRecord
	for {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			row := 0
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				row = pe.StartLine
			}
			return nil, &ParseError{Row: row, Code: InvalidSyntax, Err: err}
		}
		line, _ := cr.FieldPos(0)
		records = append(records, rawRecord{line: line, fields: fields})
	}
	if len(records) == 0 {
		return &Table{}, nil
	}

	t := &Table{}
	for _, h := range records[0].fields {
		f := p.FieldFor(h)
		if f == model.FieldUnrecognized {
			t.Unrecognized = append(t.Unrecognized, h)
			t.Warnings = append(t.Warnings, model.Warnf(model.WarnUnrecognizedHeader, records[0].line, "column %q has no canonical field", h))
		}
		t.Header = append(t.Header, f)
	}

	body := records[1:]
	var errs []error
	for i, rec := range body {
		switch {
		case len(rec.fields) < len(t.Header):
			if i == len(body)-1 {
				continue
			}
			errs = append(errs, &ParseError{Row: rec.line, Code: TooFewFields})
			continue
		case len(rec.fields) > len(t.Header):
			errs = append(errs, &ParseError{Row: rec.line, Code: TooManyFields})
			continue
		}
		t.Rows = append(t.Rows, t.row(rec.fields))
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return t, nil
}

// row keys fields by canonical header. The first column for a field wins;
// unrecognized columns are not kept.
func (t *Table) row(fields []string) model.Row {
	r := make(model.Row, len(t.Header))
	for i, f := range t.Header {
		if f == model.FieldUnrecognized {
			continue
		}
		if _, seen := r[f]; seen {
			continue
		}
		r[f] = model.Infer(fields[i])
	}
	return r
}
