// Package convert runs a bank export through the full normalization
// pipeline.
package convert

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ynabfmt/ynabfmt/internal/bank"
	"github.com/ynabfmt/ynabfmt/internal/model"
	"github.com/ynabfmt/ynabfmt/internal/normalize"
	"github.com/ynabfmt/ynabfmt/internal/sanitize"
	"github.com/ynabfmt/ynabfmt/internal/sheet"
	"github.com/ynabfmt/ynabfmt/internal/tabular"
)

// Result is the outcome of converting one file.
type Result struct {
	// Bank is the profile used, chosen by the caller for text input and by
	// detection for spreadsheets.
	Bank     string
	Records  []model.Record
	Warnings []model.Warning
	// Lines is the normalized text handed to the tabular parser. For an
	// unsupported bank it is the input, unmodified.
	Lines []string
}

// Converter converts exports using a fixed set of bank profiles.
type Converter struct {
	registry *bank.Registry
	log      logrus.FieldLogger
}

// New creates a Converter.
func New(registry *bank.Registry, log logrus.FieldLogger) *Converter {
	return &Converter{registry: registry, log: log}
}

// Convert dispatches on content: workbooks go through layout detection and
// everything else through the text pipeline for bankID.
func (c *Converter) Convert(name string, data []byte, bankID string) (*Result, error) {
	if sheet.Sniff(data) != sheet.KindNone {
		res, err := c.ConvertSheet(name, data)
		if err == nil && bankID != "" && !strings.EqualFold(bankID, res.Bank) {
			c.log.WithFields(logrus.Fields{"file": name, "requested": bankID, "detected": res.Bank}).
				Info("Spreadsheet layout detected, ignoring requested bank")
		}
		return res, err
	}
	return c.ConvertText(name, data, bankID)
}

// ConvertText runs delimited text through the normalizer for bankID and the
// tabular stage.
func (c *Converter) ConvertText(name string, data []byte, bankID string) (*Result, error) {
	p, err := c.registry.Lookup(bankID)
	if err != nil {
		return nil, err
	}
	log := c.log.WithFields(logrus.Fields{"file": name, "bank": p.ID})

	text, err := sanitize.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	lines := sanitize.SplitLines(text)

	if !p.SupportsText() {
		nres, err := normalize.For(p).Normalize(lines)
		return &Result{Bank: p.ID, Lines: nres.Lines}, err
	}

	lines, skipped, err := sanitize.SkipPreamble(lines, p.HeaderPrefix)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	nres, err := normalize.For(p).Normalize(lines)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	log.WithField("lines", len(nres.Lines)).Debug("Normalized export")

	table, err := tabular.Parse(strings.Join(nres.Lines, "\n"), p)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	rows := tabular.Clean(table.Rows)

	res := &Result{
		Bank:    p.ID,
		Records: tabular.Canonicalize(rows),
		Lines:   nres.Lines,
	}
	res.Warnings = append(res.Warnings, sourceLines(nres.Warnings, skipped)...)
	res.Warnings = append(res.Warnings, sourceLines(table.Warnings, skipped)...)
	res.Warnings = append(res.Warnings, tabular.Validate(rows)...)

	c.logWarnings(log, res.Warnings)
	log.WithFields(logrus.Fields{"rows": len(rows), "records": len(res.Records)}).Info("Converted export")
	return res, nil
}

// sourceLines shifts warning line numbers past the dropped preamble so they
// point into the original file.
func sourceLines(warnings []model.Warning, skipped int) []model.Warning {
	for i := range warnings {
		if warnings[i].Line > 0 {
			warnings[i].Line += skipped
		}
	}
	return warnings
}

// ConvertSheet reads the first sheet of a workbook and converts it with the
// first layout that fits.
func (c *Converter) ConvertSheet(name string, data []byte) (*Result, error) {
	rows, err := sheet.Read(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	m, err := sheet.Detect(rows, c.registry)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	log := c.log.WithFields(logrus.Fields{"file": name, "bank": m.Profile.ID})

	records, warnings := sheet.Canonicalize(m)
	c.logWarnings(log, warnings)
	log.WithFields(logrus.Fields{"rows": len(m.Rows), "records": len(records)}).Info("Converted spreadsheet")

	return &Result{Bank: m.Profile.ID, Records: records, Warnings: warnings}, nil
}

func (c *Converter) logWarnings(log logrus.FieldLogger, warnings []model.Warning) {
	for _, w := range warnings {
		log.WithFields(logrus.Fields{"kind": w.Kind, "line": w.Line}).Warn(w.Message)
	}
}

// IsUnsupported reports whether err means the bank has no normalizer for
// the input's pathway.
func IsUnsupported(err error) bool {
	return errors.Is(err, model.ErrUnsupportedBank)
}
