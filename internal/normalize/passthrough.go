package normalize

// passthroughHeader is prepended to American Express exports that start
// straight with transactions.
var passthroughHeader = "Date,SKIP,Outflow,Payee,Memo,SKIP"

// Passthrough normalizes exports that only lack a header row.
type Passthrough struct{}

// Normalize implements Normalizer.
func (n *Passthrough) Normalize(lines []string) (*Result, error) {
	res := &Result{}
	first := true
	for _, line := range lines {
		if isBlank(line) {
			continue
		}
		if first && dayOfMonth.MatchString(line) {
			res.Lines = append(res.Lines, passthroughHeader)
		}
		first = false
		res.Lines = append(res.Lines, line)
	}
	return res, nil
}
