package normalize

import (
	"regexp"
	"strings"

	"github.com/ynabfmt/ynabfmt/internal/model"
	"github.com/ynabfmt/ynabfmt/internal/sanitize"
)

const (
	continuationMarker  = ",,"
	defaultPayeeColumn  = 2
	defaultMemoColumn   = 5
	continuationMemoCol = "Memo"
)

// transferLabels are the payee labels whose detail line carries a
// structured "to X via PayNow" style description.
var transferLabels = map[string]bool{
	"PAYMENT/TRANSFER": true,
	"FAST PAYMENT":     true,
	"FUND TRANSFER":    true,
}

var (
	// quotedAmount matches the body of a quoted number with thousands
	// separators, eg. 1,000.00.
	quotedAmount = regexp.MustCompile(`^[0-9,.]{5,}$`)
	// cardRef matches a card reference glued after the date cell, eg. "01/02/2023,-1234 ".
	cardRef = regexp.MustCompile(`^([^,]*,)-\d+ `)
)

// Continuation normalizes OCBC exports, where a transaction may be followed
// by a detail line starting with ",," that belongs to the row above.
type Continuation struct {
	// PayeeField names the header column holding the payee.
	PayeeField string
}

// Normalize implements Normalizer.
func (n *Continuation) Normalize(lines []string) (*Result, error) {
	res := &Result{}
	var rows [][]string
	payeeCol, memoCol := defaultPayeeColumn, defaultMemoColumn
	haveHeader := false
	// merged is set once the last row has taken a detail line.
	merged := false

	for i, line := range lines {
		lineNo := i + 1
		switch {
		case isBlank(line):
			continue
		case strings.HasPrefix(line, continuationMarker):
			if len(rows) < 2 {
				res.warn(model.WarnOrphanContinuation, lineNo, "detail line with no transaction above: %q", line)
				continue
			}
			prev := rows[len(rows)-1]
			if merged {
				rows[len(rows)-1] = appendMemo(prev, memoCol, detailText(line))
				continue
			}
			rows[len(rows)-1] = n.merge(res, lineNo, prev, payeeCol, memoCol, detailText(line))
			merged = true
		case !haveHeader:
			header := append(strings.Split(line, ","), continuationMemoCol)
			payeeCol, memoCol = n.columns(header)
			rows = append(rows, header)
			haveHeader = true
		default:
			merged = false
			line = stripAmountSeparators(line)
			line = cardRef.ReplaceAllString(line, "$1")
			line = sanitize.CleanText(line)
			rows = append(rows, strings.Split(line+",", ","))
		}
	}

	for _, row := range rows {
		res.Lines = append(res.Lines, strings.Join(row, ","))
	}
	return res, nil
}

// columns resolves payee and memo positions from the header.
func (n *Continuation) columns(header []string) (payee, memo int) {
	payee = defaultPayeeColumn
	for i, h := range header {
		if n.PayeeField != "" && strings.TrimSpace(h) == n.PayeeField {
			payee = i
			break
		}
	}
	return payee, len(header) - 1
}

// merge rewrites prev's payee and memo from the detail text.
func (n *Continuation) merge(res *Result, lineNo int, prev []string, payeeCol, memoCol int, detail string) []string {
	for len(prev) <= payeeCol || len(prev) <= memoCol {
		prev = append(prev, "")
	}

	label := strings.Trim(strings.TrimSpace(prev[payeeCol]), `"`)
	payee, memo := "", ""
	if transferLabels[label] {
		e, ok := transferChain.First(detail)
		if !ok {
			res.warn(model.WarnHeuristicMiss, lineNo, "no payee pattern matched %s detail %q", label, detail)
		}
		payee, memo = e.Payee, e.Memo
	} else {
		payee = label + " " + detail
	}

	prev[payeeCol] = quoteNonEmpty(payee)
	prev[memoCol] = quoteNonEmpty(memo)
	return prev
}

// detailText extracts the free text of a continuation line.
func detailText(line string) string {
	text := strings.TrimPrefix(line, continuationMarker)
	text = strings.TrimRight(text, ", ")
	text = strings.Trim(text, `"`)
	return sanitize.CleanText(text)
}

// appendMemo adds the text of a further detail line to a merged row's memo.
func appendMemo(row []string, memoCol int, detail string) []string {
	for len(row) <= memoCol {
		row = append(row, "")
	}
	memo := strings.ReplaceAll(strings.Trim(row[memoCol], `"`), `""`, `"`)
	row[memoCol] = quoteNonEmpty(strings.TrimSpace(memo + " " + detail))
	return row
}

// stripAmountSeparators drops the commas inside quoted numeric fields. Only
// quotes that open a field are considered, so neighbouring fields are never
// joined.
func stripAmountSeparators(line string) string {
	var b strings.Builder
	for i := 0; i < len(line); {
		if line[i] != '"' || (i > 0 && line[i-1] != ',') {
			b.WriteByte(line[i])
			i++
			continue
		}
		end := strings.IndexByte(line[i+1:], '"')
		if end < 0 {
			b.WriteString(line[i:])
			break
		}
		end += i + 1
		field := line[i+1 : end]
		if closesField(line, end) && quotedAmount.MatchString(field) {
			field = strings.ReplaceAll(field, ",", "")
		}
		b.WriteString(`"` + field + `"`)
		i = end + 1
	}
	return b.String()
}

func closesField(line string, quote int) bool {
	return quote == len(line)-1 || line[quote+1] == ','
}

func quoteNonEmpty(s string) string {
	if s == "" {
		return ""
	}
	return sanitize.Quote(s)
}
