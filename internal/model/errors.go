package model

import "errors"

var (
	// ErrMalformedInput means the expected header row was never found.
	ErrMalformedInput = errors.New("malformed input")
	// ErrStructuralParse means the normalized text is not valid tabular data.
	ErrStructuralParse = errors.New("structural parse error")
	// ErrUnrecognizedFormat means no spreadsheet layout matched the sheet.
	ErrUnrecognizedFormat = errors.New("unrecognized spreadsheet format")
	// ErrUnsupportedBank means the bank cannot be converted on this pathway.
	ErrUnsupportedBank = errors.New("bank not supported for this file type")
	// ErrUnknownBank means the bank identifier is not registered.
	ErrUnknownBank = errors.New("unknown bank")
)
