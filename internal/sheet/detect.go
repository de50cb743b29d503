package sheet

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ynabfmt/ynabfmt/internal/bank"
	"github.com/ynabfmt/ynabfmt/internal/model"
	"github.com/ynabfmt/ynabfmt/internal/sanitize"
	"github.com/ynabfmt/ynabfmt/internal/tabular"
)

// dateLayouts are the cell date renderings accepted, tried in order.
var dateLayouts = []string{
	"02 Jan 2006",
	"2 Jan 2006",
	"02 January 2006",
	"02/01/2006",
	"2/1/2006",
	"2006-01-02",
	"01-02-06",
	"02-Jan-2006",
}

// Row is one sheet row accepted under a layout.
type Row struct {
	Line    int
	Date    time.Time
	Payee   string
	Outflow decimal.NullDecimal
	Inflow  decimal.NullDecimal
}

// Match is the first layout that yielded transactions.
type Match struct {
	Profile bank.Profile
	Rows    []Row
}

// Detect tries every positional profile in registry order and returns the
// first one under which at least one row has a valid date and a numeric
// amount.
func Detect(rows [][]string, reg *bank.Registry) (*Match, error) {
	var tried []string
	for _, p := range reg.Positional() {
		tried = append(tried, p.ID)
		if accepted := project(rows, p); len(accepted) > 0 {
			return &Match{Profile: p, Rows: accepted}, nil
		}
	}
	return nil, fmt.Errorf("%w: tried %s", model.ErrUnrecognizedFormat, strings.Join(tried, ", "))
}

func project(rows [][]string, p bank.Profile) []Row {
	dateCol := slices.Index(p.PositionalHeaders, p.DateField)
	payeeCol := slices.Index(p.PositionalHeaders, p.PayeeField)
	debitCol := slices.Index(p.PositionalHeaders, p.DebitField)
	creditCol := slices.Index(p.PositionalHeaders, p.CreditField)

	var accepted []Row
	for i, cells := range rows {
		date, ok := parseDate(cell(cells, dateCol))
		if !ok {
			continue
		}
		out := amount(cell(cells, debitCol))
		in := amount(cell(cells, creditCol))
		if !out.Valid && !in.Valid {
			continue
		}
		accepted = append(accepted, Row{
			Line:    i + 1,
			Date:    date,
			Payee:   cell(cells, payeeCol),
			Outflow: out,
			Inflow:  in,
		})
	}
	return accepted
}

func cell(cells []string, col int) string {
	if col < 0 || col >= len(cells) {
		return ""
	}
	return strings.TrimSpace(cells[col])
}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// amount parses a numeric cell, allowing thousands separators.
func amount(s string) decimal.NullDecimal {
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return decimal.NullDecimal{}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}

// FormatDate renders t as D-M-YYYY without zero padding.
func FormatDate(t time.Time) string {
	return strconv.Itoa(t.Day()) + "-" + strconv.Itoa(int(t.Month())) + "-" + strconv.Itoa(t.Year())
}

// Canonicalize turns the matched rows into records with an empty memo.
func Canonicalize(m *Match) ([]model.Record, []model.Warning) {
	var (
		records  []model.Record
		warnings []model.Warning
	)
	for _, r := range m.Rows {
		payee := sanitize.CleanText(r.Payee)
		if r.Outflow.Valid && tabular.SuspectedFee(payee, model.Number(r.Outflow.Decimal)) {
			warnings = append(warnings, model.Warnf(model.WarnSuspectedFee, r.Line, "payee %q looks like a fee of %s", payee, r.Outflow.Decimal.String()))
		}
		if rec, ok := model.NewRecord(FormatDate(r.Date), payee, r.Outflow, r.Inflow, ""); ok {
			records = append(records, rec)
		}
	}
	return records, warnings
}
