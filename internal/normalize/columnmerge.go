package normalize

import (
	"strings"

	"github.com/ynabfmt/ynabfmt/internal/model"
)

const (
	mergedColumns = 4
	creditMarker  = "CR"
)

// ColumnMerge normalizes Standard Chartered exports, whose unquoted
// description may itself contain commas.
type ColumnMerge struct {
	// KeepHeader emits the first line verbatim as the header.
	KeepHeader bool
	// Currency is the expected code in front of every amount.
	Currency string
}

// Normalize implements Normalizer.
func (n *ColumnMerge) Normalize(lines []string) (*Result, error) {
	res := &Result{}
	start := 0
	if n.KeepHeader && len(lines) > 0 {
		res.Lines = append(res.Lines, lines[0])
		start = 1
	}

	for i := start; i < len(lines); i++ {
		lineNo := i + 1
		line := strings.TrimSpace(lines[i])
		if line == "" || !dayOfMonth.MatchString(line) {
			continue
		}

		cols := strings.Split(line, ",")
		switch {
		case len(cols) > mergedColumns:
			cols = mergePayee(cols)
		case len(cols) < mergedColumns:
			res.warn(model.WarnColumnCount, lineNo, "expected %d columns, got %d", mergedColumns, len(cols))
		}

		cols = n.sanitizeOutflow(res, lineNo, cols)
		res.Lines = append(res.Lines, strings.Join(cols, ","))
	}
	return res, nil
}

// mergePayee joins every column between the first and the last two with "_".
func mergePayee(cols []string) []string {
	n := len(cols)
	merged := []string{cols[0], strings.Join(cols[1:n-2], "_")}
	return append(merged, cols[n-2:]...)
}

// sanitizeOutflow turns "SGD 20.00" into "20.00" and "SGD 20.00 CR" into "-20.00".
func (n *ColumnMerge) sanitizeOutflow(res *Result, lineNo int, cols []string) []string {
	last := len(cols) - 1
	tokens := strings.Fields(cols[last])
	if len(tokens) == 0 || tokens[0] != n.Currency {
		res.warn(model.WarnCurrency, lineNo, "outflow %q is not in %s", cols[last], n.Currency)
	}

	amount := ""
	if len(tokens) > 1 {
		amount = tokens[1]
	}
	if len(tokens) > 2 && tokens[2] == creditMarker && amount != "" {
		amount = "-" + amount
	}

	out := append([]string(nil), cols[:last]...)
	return append(out, amount)
}
