package normalize

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ynabfmt/ynabfmt/internal/model"
	"github.com/ynabfmt/ynabfmt/internal/sanitize"
)

const remapMinColumns = 4

// HeaderRemap normalizes well-formed exports whose columns are already in
// date, payee, outflow, inflow, memo order under different names.
type HeaderRemap struct{}

// Normalize implements Normalizer.
func (n *HeaderRemap) Normalize(lines []string) (*Result, error) {
	res := &Result{}
	for i, line := range lines {
		lineNo := i + 1
		if i == 0 {
			res.Lines = append(res.Lines, canonicalHeader)
			continue
		}
		if isBlank(line) {
			continue
		}

		cols := splitFields(sanitize.CleanText(line))
		for j := range cols {
			cols[j] = strings.TrimSpace(cols[j])
		}
		if len(cols) < remapMinColumns {
			res.warn(model.WarnColumnCount, lineNo, "expected at least %d columns, got %d", remapMinColumns, len(cols))
			continue
		}

		memo := ""
		if len(cols) > remapMinColumns {
			memo = cols[4]
		}
		res.Lines = append(res.Lines, joinFields([]string{
			cols[0],
			cols[1],
			plainAmount(cols[2]),
			plainAmount(cols[3]),
			memo,
		}))
	}
	return res, nil
}

var (
	slashDate      = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)
	countrySuffix  = regexp.MustCompile(`(?i)\s+(?:SINGAPORE\s+)?SG\s*$`)
	surroundQuotes = regexp.MustCompile(`^["']|["']$`)
)

// SignedRemap normalizes Citibank card exports: no header, one signed
// amount column where negative values are spending.
type SignedRemap struct{}

// Normalize implements Normalizer.
func (n *SignedRemap) Normalize(lines []string) (*Result, error) {
	res := &Result{Lines: []string{canonicalHeader}}
	for i, line := range lines {
		lineNo := i + 1
		if isBlank(line) {
			continue
		}

		cols := splitFields(line)
		for j := range cols {
			cols[j] = surroundQuotes.ReplaceAllString(cols[j], "")
		}
		if len(cols) < remapMinColumns || !slashDate.MatchString(cols[0]) {
			continue
		}

		amount, err := decimal.NewFromString(plainAmount(cols[2]))
		if err != nil {
			res.warn(model.WarnAmountFormat, lineNo, "amount column %q is not a number", cols[2])
			continue
		}

		payee := countrySuffix.ReplaceAllString(strings.TrimSpace(cols[1]), "")
		outflow, inflow := "", amount.String()
		if amount.IsNegative() {
			outflow, inflow = amount.Abs().String(), ""
		}
		res.Lines = append(res.Lines, joinFields([]string{cols[0], payee, outflow, inflow, ""}))
	}
	return res, nil
}
