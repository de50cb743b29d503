package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Value is a parsed cell: either text or a number.
type Value struct {
	text    string
	number  decimal.Decimal
	numeric bool
}

// Text returns a text Value.
func Text(s string) Value { return Value{text: s} }

// Number returns a numeric Value.
func Number(d decimal.Decimal) Value { return Value{number: d, numeric: true} }

// Infer turns a raw field into a Value, treating numeric-looking text as a
// number. Empty and blank fields stay text.
func Infer(raw string) Value {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Text(raw)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Text(raw)
	}
	return Number(d)
}

// IsNumber reports whether v holds a number.
func (v Value) IsNumber() bool { return v.numeric }

// Decimal returns the numeric value; ok is false for text.
func (v Value) Decimal() (d decimal.Decimal, ok bool) {
	return v.number, v.numeric
}

// NullDecimal returns the number as a NullDecimal, invalid for text.
func (v Value) NullDecimal() decimal.NullDecimal {
	if !v.numeric {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(v.number)
}

// String returns the text, or the number's canonical form.
func (v Value) String() string {
	if v.numeric {
		return v.number.String()
	}
	return v.text
}

// Row is one parsed line keyed by canonical field. A missing key means the
// source had no such column.
type Row map[Field]Value
