package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func amount(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}

func TestNewRecord(t *testing.T) {
	tests := []struct {
		name    string
		outflow decimal.NullDecimal
		inflow  decimal.NullDecimal
		wantOut string
		wantIn  string
	}{
		{"outflow", amount("4.5"), decimal.NullDecimal{}, "4.50", ""},
		{"inflow", decimal.NullDecimal{}, amount("100"), "", "100.00"},
		{"negative outflow", amount("-20.00"), decimal.NullDecimal{}, "", "20.00"},
		{"negative inflow", decimal.NullDecimal{}, amount("-7"), "7.00", ""},
		{"both sides net out", amount("10"), amount("3"), "7.00", ""},
		{"zero outflow", amount("0"), decimal.NullDecimal{}, "0.00", ""},
		{"zero both", amount("0"), amount("0"), "", "0.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, ok := NewRecord("01/02/2023", "Shop", tt.outflow, tt.inflow, "")
			assert.True(t, ok)
			out, in := rec.Amounts()
			assert.Equal(t, tt.wantOut, out)
			assert.Equal(t, tt.wantIn, in)
			assert.False(t, rec.Outflow.Valid && rec.Inflow.Valid, "never both sides")
		})
	}
}

func TestNewRecord_Rejects(t *testing.T) {
	_, ok := NewRecord("", "Shop", amount("1"), decimal.NullDecimal{}, "")
	assert.False(t, ok, "missing date")

	_, ok = NewRecord("01/02/2023", "Shop", decimal.NullDecimal{}, decimal.NullDecimal{}, "")
	assert.False(t, ok, "missing amount")
}

func TestRecordStrings(t *testing.T) {
	rec, ok := NewRecord("1-2-2023", "Cafe", amount("3.2"), decimal.NullDecimal{}, "lunch")
	assert.True(t, ok)
	assert.Equal(t, []string{"1-2-2023", "Cafe", "3.20", "", "lunch"}, rec.Strings())
	assert.Len(t, rec.Strings(), len(CanonicalHeader))
}

func TestInfer(t *testing.T) {
	tests := []struct {
		raw     string
		numeric bool
		str     string
	}{
		{"4.50", true, "4.5"},
		{"-20.00", true, "-20"},
		{" 12 ", true, "12"},
		{"", false, ""},
		{"SGD 4.50", false, "SGD 4.50"},
		{"01/02/2023", false, "01/02/2023"},
	}
	for _, tt := range tests {
		v := Infer(tt.raw)
		assert.Equal(t, tt.numeric, v.IsNumber(), "Infer(%q)", tt.raw)
		assert.Equal(t, tt.str, v.String(), "Infer(%q)", tt.raw)
	}
}

func TestWarningString(t *testing.T) {
	w := Warnf(WarnSuspectedFee, 3, "payee %q", "Annual Fee")
	assert.Equal(t, `suspected-fee (line 3): payee "Annual Fee"`, w.String())
	assert.Equal(t, "currency: x", Warning{Kind: WarnCurrency, Message: "x"}.String())
}
