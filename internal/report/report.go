// Package report keeps an append-only CSV log of conversion diagnostics.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/ynabfmt/ynabfmt/internal/model"
)

// FileName is the report written into the output directory.
const FileName = "ynabfmt-report.csv"

// Header is the CSV header of the report.
const Header = "timestamp,file,bank,kind,line,message"

const (
	numFields    = 6
	colTimestamp = 0
	colFile      = 1
	colBank      = 2
	colKind      = 3
	colLine      = 4
	colMessage   = 5
)

// Entry is one diagnostic raised while converting a file.
type Entry struct {
	Timestamp time.Time
	File      string
	Bank      string
	Kind      model.WarningKind
	Line      int
	Message   string
}

// Entries wraps warnings from one conversion.
func Entries(at time.Time, file, bank string, warnings []model.Warning) []Entry {
	entries := make([]Entry, 0, len(warnings))
	for _, w := range warnings {
		entries = append(entries, Entry{
			Timestamp: at,
			File:      file,
			Bank:      bank,
			Kind:      w.Kind,
			Line:      w.Line,
			Message:   w.Message,
		})
	}
	return entries
}

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colTimestamp] = e.Timestamp.Format(time.RFC3339)
	row[colFile] = e.File
	row[colBank] = e.Bank
	row[colKind] = string(e.Kind)
	if e.Line > 0 {
		row[colLine] = strconv.Itoa(e.Line)
	}
	row[colMessage] = e.Message
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}

	var line int
	if record[colLine] != "" {
		line, err = strconv.Atoi(record[colLine])
		if err != nil {
			return Entry{}, fmt.Errorf("parsing line %q: %w", record[colLine], err)
		}
	}

	return Entry{
		Timestamp: ts,
		File:      record[colFile],
		Bank:      record[colBank],
		Kind:      model.WarningKind(record[colKind]),
		Line:      line,
		Message:   record[colMessage],
	}, nil
}

// Append writes entries to <dir>/ynabfmt-report.csv, creating the file and
// header if needed.
func Append(dir string, entries []Entry) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating report dir: %w", err)
	}

	path := filepath.Join(dir, FileName)
	needsHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening report: %w", err)
	}
	if err := writeEntries(f, needsHeader, entries); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing report: %w", err)
	}
	return nil
}

func writeEntries(w io.Writer, header bool, entries []Entry) error {
	cw := csv.NewWriter(w)
	if header {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}
	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing report: %w", err)
	}
	return nil
}

// Read returns all entries from <dir>/ynabfmt-report.csv, or nothing if the
// report does not exist yet.
func Read(dir string) ([]Entry, error) {
	f, err := os.Open(filepath.Join(dir, FileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening report: %w", err)
	}
	defer f.Close()

	return readEntries(f)
}

func readEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading report CSV: %w", err)
	}
	if len(records) <= 1 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
