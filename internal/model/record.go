package model

import (
	"github.com/shopspring/decimal"
)

// Field names a canonical column.
type Field string

const (
	FieldDate    Field = "Date"
	FieldPayee   Field = "Payee"
	FieldOutflow Field = "Outflow"
	FieldInflow  Field = "Inflow"
	FieldMemo    Field = "Memo"

	// FieldUnrecognized labels a source column that maps to no canonical field.
	FieldUnrecognized Field = "unknown_header"
)

// CanonicalHeader is the header row written to every output file.
var CanonicalHeader = []string{"Date", "Payee", "Outflow", "Inflow", "Memo"}

// Record is one normalized transaction ready for export.
type Record struct {
	Date    string // source format for text inputs, D-M-YYYY for spreadsheets
	Payee   string
	Outflow decimal.NullDecimal
	Inflow  decimal.NullDecimal
	Memo    string
}

// NewRecord builds a Record, moving negative amounts to the opposite side so
// that Outflow and Inflow are never negative and never both set.
// It reports false when the result has no date or no amount.
func NewRecord(date, payee string, outflow, inflow decimal.NullDecimal, memo string) (Record, bool) {
	if date == "" {
		return Record{}, false
	}

	net := decimal.Zero
	has := false
	if outflow.Valid {
		net = net.Add(outflow.Decimal)
		has = true
	}
	if inflow.Valid {
		net = net.Sub(inflow.Decimal)
		has = true
	}
	if !has {
		return Record{}, false
	}

	rec := Record{Date: date, Payee: payee, Memo: memo}
	switch {
	case net.IsNegative():
		rec.Inflow = decimal.NewNullDecimal(net.Neg())
	case net.IsPositive(), !inflow.Valid:
		rec.Outflow = decimal.NewNullDecimal(net)
	default:
		rec.Inflow = decimal.NewNullDecimal(net)
	}
	return rec, true
}

// Amounts returns Outflow and Inflow formatted with two decimals, or empty.
func (r Record) Amounts() (outflow, inflow string) {
	if r.Outflow.Valid {
		outflow = r.Outflow.Decimal.StringFixed(2)
	}
	if r.Inflow.Valid {
		inflow = r.Inflow.Decimal.StringFixed(2)
	}
	return outflow, inflow
}

// Strings returns the record as a row in CanonicalHeader order.
func (r Record) Strings() []string {
	out, in := r.Amounts()
	return []string{r.Date, r.Payee, out, in, r.Memo}
}
