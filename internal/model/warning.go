package model

import "fmt"

// WarningKind classifies a non-fatal diagnostic.
type WarningKind string

const (
	WarnHeuristicMiss      WarningKind = "heuristic-miss"
	WarnColumnCount        WarningKind = "column-count"
	WarnCurrency           WarningKind = "currency"
	WarnSuspectedFee       WarningKind = "suspected-fee"
	WarnNullPayee          WarningKind = "null-payee"
	WarnUnrecognizedHeader WarningKind = "unrecognized-header"
	WarnOrphanContinuation WarningKind = "orphan-continuation"
	WarnDateFormat         WarningKind = "date-format"
	WarnAmountFormat       WarningKind = "amount-format"
)

// Warning is a diagnostic that never stops a conversion.
type Warning struct {
	Kind    WarningKind
	Line    int // 1-based source line or row; 0 when unknown
	Message string
}

func (w Warning) String() string {
	if w.Line > 0 {
		return fmt.Sprintf("%s (line %d): %s", w.Kind, w.Line, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Kind, w.Message)
}

// Warnf builds a Warning with a formatted message.
func Warnf(kind WarningKind, line int, format string, args ...any) Warning {
	return Warning{Kind: kind, Line: line, Message: fmt.Sprintf(format, args...)}
}
