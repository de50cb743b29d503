package normalize

import "regexp"

// Extraction is the payee and memo recovered from a free-text description.
type Extraction struct {
	Payee string
	Memo  string
}

// Rule extracts an Extraction from text, or declines.
type Rule interface {
	Extract(text string) (Extraction, bool)
}

// PatternRule is a Rule backed by a regexp with optional named groups
// "payee" and "memo".
type PatternRule struct {
	re *regexp.Regexp
}

// NewPatternRule compiles expr. Panics if expr is invalid.
func NewPatternRule(expr string) PatternRule {
	return PatternRule{re: regexp.MustCompile(expr)}
}

// Extract implements Rule.
func (r PatternRule) Extract(text string) (Extraction, bool) {
	m := r.re.FindStringSubmatch(text)
	if m == nil {
		return Extraction{}, false
	}
	var e Extraction
	if i := r.re.SubexpIndex("payee"); i >= 0 {
		e.Payee = m[i]
	}
	if i := r.re.SubexpIndex("memo"); i >= 0 {
		e.Memo = m[i]
	}
	return e, true
}

// Chain tries rules in order; the first match wins.
type Chain []Rule

// First returns the first rule's extraction that matches text.
func (c Chain) First(text string) (Extraction, bool) {
	for _, rule := range c {
		if e, ok := rule.Extract(text); ok {
			return e, true
		}
	}
	return Extraction{}, false
}

// transferChain recovers payee and memo from OCBC transfer detail lines.
var transferChain = Chain{
	NewPatternRule(`(?m)^to (?P<payee>.+) via PayNow-\w+ OTHR - (?P<memo>.+)`),
	NewPatternRule(`(?m)^[A-Z]+( -)? (?P<memo>.+) (to|from) (?P<payee>.+) via PayNow`),
	NewPatternRule(`(?m)^[A-Z]+( -)? (?P<memo>.+) (to|from) (?P<payee>.+)`),
	NewPatternRule(`(?m)^SALA \d+ from (?P<payee>.+)`),
}
