package tabular

import (
	"regexp"

	"github.com/ynabfmt/ynabfmt/internal/model"
	"github.com/ynabfmt/ynabfmt/internal/sanitize"
)

// feeWord matches "fee" as a whole word.
var feeWord = regexp.MustCompile(`(?i)\bfee\b`)

// Clean re-applies text cleaning to every text value. Running it twice
// changes nothing.
func Clean(rows []model.Row) []model.Row {
	for _, r := range rows {
		for f, v := range r {
			r[f] = sanitize.CleanValue(v)
		}
	}
	return rows
}

// SuspectedFee reports whether payee names a fee and outflow is a positive
// charge.
func SuspectedFee(payee string, outflow model.Value) bool {
	if payee == "" || !feeWord.MatchString(payee) {
		return false
	}
	d, ok := outflow.Decimal()
	return ok && d.IsPositive()
}

// Validate returns diagnostics for rows. It never rejects a row.
func Validate(rows []model.Row) []model.Warning {
	var warnings []model.Warning
	for i, r := range rows {
		row := i + 1
		payee, ok := r[model.FieldPayee]
		if !ok || payee.String() == "" {
			warnings = append(warnings, model.Warnf(model.WarnNullPayee, 0, "record %d has no payee", row))
			continue
		}
		if SuspectedFee(payee.String(), r[model.FieldOutflow]) {
			warnings = append(warnings, model.Warnf(model.WarnSuspectedFee, 0, "record %d: payee %q looks like a fee of %s", row, payee.String(), r[model.FieldOutflow].String()))
		}
	}
	return warnings
}

// Canonicalize builds records from rows, skipping rows without a date or
// without any amount.
func Canonicalize(rows []model.Row) []model.Record {
	var records []model.Record
	for _, r := range rows {
		rec, ok := model.NewRecord(
			r[model.FieldDate].String(),
			r[model.FieldPayee].String(),
			r[model.FieldOutflow].NullDecimal(),
			r[model.FieldInflow].NullDecimal(),
			r[model.FieldMemo].String(),
		)
		if ok {
			records = append(records, rec)
		}
	}
	return records
}
