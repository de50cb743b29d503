// Package sanitize turns raw export bytes into clean text lines and fields.
package sanitize

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/ynabfmt/ynabfmt/internal/model"
)

var (
	utf8BOM    = []byte{0xEF, 0xBB, 0xBF}
	lineBreaks = regexp.MustCompile(`\r?\n`)
	whitespace = regexp.MustCompile(`\s+`)
)

// Decode returns data as NFC-normalized UTF-8 text. Input that is not valid
// UTF-8 is read as Windows-1252.
func Decode(data []byte) (string, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		decoded, _, err := transform.Bytes(charmap.Windows1252.NewDecoder(), data)
		if err != nil {
			return "", fmt.Errorf("decoding windows-1252: %w", err)
		}
		data = decoded
	}
	return norm.NFC.String(string(data)), nil
}

// SplitLines splits text on CRLF or LF.
func SplitLines(text string) []string {
	return lineBreaks.Split(text, -1)
}

// SkipPreamble drops lines until one starts with prefix and reports how many
// were dropped. An empty prefix returns lines unchanged.
func SkipPreamble(lines []string, prefix string) (rest []string, skipped int, err error) {
	if prefix == "" {
		return lines, 0, nil
	}
	for i, line := range lines {
		if strings.HasPrefix(line, prefix) {
			return lines[i:], i, nil
		}
	}
	return nil, 0, fmt.Errorf("%w: no line starts with %q", model.ErrMalformedInput, prefix)
}

// CleanText replaces line breaks with spaces, collapses whitespace and trims.
func CleanText(s string) string {
	s = lineBreaks.ReplaceAllString(s, " ")
	s = whitespace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// CleanValue applies CleanText to text values; numbers pass through.
func CleanValue(v model.Value) model.Value {
	if v.IsNumber() {
		return v
	}
	return model.Text(CleanText(v.String()))
}

// Quote renders s as a double-quoted CSV field.
func Quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
