package normalize

import (
	"fmt"
	"strings"
	"time"

	"github.com/ynabfmt/ynabfmt/internal/model"
)

const (
	seekMinColumns = 9
	seekDateLayout = "02 Jan 2006"
	seekOutLayout  = "02/01/2006"
	interestCode   = "INT"
	interestPayee  = "Interest"
	seekColDate    = 0
	seekColCode    = 2
	seekColRef     = 3
	seekColDebit   = 4
	seekColCredit  = 5
	seekColClient  = 6
	seekColAddlRef = 7
	seekColMiscRef = 8
)

// HeaderSeek normalizes DBS exports, which put a variable-length account
// summary in front of the transaction table.
type HeaderSeek struct {
	// Header is the exact text of the transaction table's header line.
	Header string
}

// Normalize implements Normalizer.
func (n *HeaderSeek) Normalize(lines []string) (*Result, error) {
	start := -1
	for i, line := range lines {
		if strings.Contains(line, n.Header) {
			start = i
			break
		}
	}
	if start < 0 {
		return nil, fmt.Errorf("%w: transaction header not found", model.ErrMalformedInput)
	}

	res := &Result{Lines: []string{canonicalHeader}}
	for i := start + 1; i < len(lines); i++ {
		lineNo := i + 1
		if isBlank(lines[i]) {
			continue
		}
		cols := splitFields(lines[i])
		if len(cols) < seekMinColumns {
			continue
		}
		for j := range cols {
			cols[j] = strings.TrimSpace(cols[j])
		}

		date, err := time.Parse(seekDateLayout, cols[seekColDate])
		if err != nil {
			res.warn(model.WarnDateFormat, lineNo, "date %q is not in %q form", cols[seekColDate], seekDateLayout)
			continue
		}

		payee := cols[seekColClient]
		if payee == "" {
			payee = cols[seekColRef]
		}
		if payee == "" && cols[seekColCode] == interestCode {
			payee = interestPayee
		}

		res.Lines = append(res.Lines, joinFields([]string{
			date.Format(seekOutLayout),
			payee,
			plainAmount(cols[seekColDebit]),
			plainAmount(cols[seekColCredit]),
			joinNonEmpty(cols[seekColAddlRef], cols[seekColMiscRef]),
		}))
	}
	return res, nil
}

func joinNonEmpty(parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}
