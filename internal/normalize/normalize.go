// Package normalize repairs bank-specific CSV exports into lines with a
// header the tabular stage can remap.
package normalize

import (
	"encoding/csv"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ynabfmt/ynabfmt/internal/bank"
	"github.com/ynabfmt/ynabfmt/internal/model"
)

// Normalizer rewrites the lines of one export.
type Normalizer interface {
	Normalize(lines []string) (*Result, error)
}

// Result is the rewritten line sequence plus the diagnostics raised on the way.
type Result struct {
	Lines    []string
	Warnings []model.Warning
}

func (r *Result) warn(kind model.WarningKind, line int, format string, args ...any) {
	r.Warnings = append(r.Warnings, model.Warnf(kind, line, format, args...))
}

// canonicalHeader is emitted by normalizers that rebuild every row.
var canonicalHeader = strings.Join(model.CanonicalHeader, ",")

// dayOfMonth matches a line starting with a DD/ date.
var dayOfMonth = regexp.MustCompile(`^([0-2]\d|3[0-1])/`)

// strategies maps every style to its normalizer.
var strategies = map[bank.Style]func(p bank.Profile) Normalizer{
	bank.StyleUnsupported:  func(p bank.Profile) Normalizer { return &Unsupported{Bank: p.ID} },
	bank.StylePassthrough:  func(bank.Profile) Normalizer { return &Passthrough{} },
	bank.StyleContinuation: func(p bank.Profile) Normalizer { return &Continuation{PayeeField: p.PayeeField} },
	bank.StyleColumnMerge:  func(bank.Profile) Normalizer { return &ColumnMerge{KeepHeader: true, Currency: "SGD"} },
	bank.StyleHeaderRemap:  func(bank.Profile) Normalizer { return &HeaderRemap{} },
	bank.StyleSignedRemap:  func(bank.Profile) Normalizer { return &SignedRemap{} },
	bank.StyleHeaderSeek:   func(bank.Profile) Normalizer { return &HeaderSeek{Header: bank.DBSHeader} },
}

// For returns the normalizer for a profile's style.
func For(p bank.Profile) Normalizer {
	if build, ok := strategies[p.Style]; ok {
		return build(p)
	}
	return &Unsupported{Bank: p.ID}
}

// Unsupported passes lines through and reports model.ErrUnsupportedBank.
type Unsupported struct {
	Bank string
}

// Normalize returns the input unchanged together with the error.
func (n *Unsupported) Normalize(lines []string) (*Result, error) {
	return &Result{Lines: lines}, fmt.Errorf("%w: %s has no CSV normalizer, export it as a spreadsheet", model.ErrUnsupportedBank, n.Bank)
}

func isBlank(s string) bool { return strings.TrimSpace(s) == "" }

// splitFields splits one CSV line honouring quotes. Lines the CSV reader
// rejects fall back to a plain comma split.
func splitFields(line string) []string {
	r := csv.NewReader(strings.NewReader(line))
	r.LazyQuotes = true
	r.FieldsPerRecord = -1
	fields, err := r.Read()
	if err != nil {
		return strings.Split(line, ",")
	}
	return fields
}

// joinFields renders fields as one CSV line, quoting where needed.
func joinFields(fields []string) string {
	var b strings.Builder
	w := csv.NewWriter(&b)
	_ = w.Write(fields)
	w.Flush()
	return strings.TrimRight(b.String(), "\n")
}

// plainAmount drops thousands separators from a numeric field. Non-numeric
// text is returned trimmed but otherwise untouched.
func plainAmount(s string) string {
	s = strings.TrimSpace(s)
	stripped := strings.ReplaceAll(s, ",", "")
	if _, err := decimal.NewFromString(stripped); err == nil {
		return stripped
	}
	return s
}
