package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/schollz/closestmatch"
	"github.com/spf13/cobra"

	"github.com/ynabfmt/ynabfmt/internal/convert"
	"github.com/ynabfmt/ynabfmt/internal/export"
	"github.com/ynabfmt/ynabfmt/internal/model"
	"github.com/ynabfmt/ynabfmt/internal/report"
	"github.com/ynabfmt/ynabfmt/internal/sheet"
)

var (
	okColor   = color.New(color.FgGreen)
	warnColor = color.New(color.FgYellow)
	errColor  = color.New(color.FgRed)
)

type convertOptions struct {
	bank   string
	format string
	outDir string
	report bool
}

func newConvertCommand(a *app) *cobra.Command {
	var opts convertOptions

	cmd := &cobra.Command{
		Use:   "convert <file|dir>...",
		Short: "Convert bank exports to YNAB CSV",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") {
				opts.format = a.cfg.Output.Format
			}
			if !cmd.Flags().Changed("out-dir") {
				opts.outDir = a.cfg.Output.Dir
			}
			if !cmd.Flags().Changed("report") {
				opts.report = a.cfg.Report.Enabled
			}
			if opts.bank == "" {
				opts.bank = a.cfg.Bank
			}
			return runConvert(cmd.OutOrStdout(), a, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.bank, "bank", "", "bank identifier, see the banks command")
	cmd.Flags().StringVar(&opts.format, "format", "csv", "output format: csv or xlsx")
	cmd.Flags().StringVar(&opts.outDir, "out-dir", "", "output directory (default: next to each input)")
	cmd.Flags().BoolVar(&opts.report, "report", false, "append diagnostics to "+report.FileName)

	return cmd
}

func runConvert(out io.Writer, a *app, opts convertOptions, args []string) error {
	format, err := export.ParseFormat(opts.format)
	if err != nil {
		return err
	}
	if opts.bank != "" {
		if _, err := a.registry.Lookup(opts.bank); err != nil {
			return withSuggestion(err, opts.bank, a.registry.IDs())
		}
	}

	files, err := convert.Inputs(args, a.cfg.Output.Suffix)
	if err != nil {
		return err
	}

	conv := convert.New(a.registry, a.log)
	failed := 0
	for _, file := range files {
		if err := convertFile(out, a, conv, opts, format, file); err != nil {
			failed++
			errColor.Fprintf(out, "✗ %s: %v\n", file, err)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(files))
	}
	return nil
}

func convertFile(out io.Writer, a *app, conv *convert.Converter, opts convertOptions, format export.Format, file string) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	if opts.bank == "" && sheet.Sniff(data) == sheet.KindNone {
		return errors.New("--bank is required for text exports")
	}

	res, err := conv.Convert(filepath.Base(file), data, opts.bank)
	if convert.IsUnsupported(err) {
		warnColor.Fprintf(out, "! %s: %v; nothing written\n", file, err)
		return nil
	}
	if err != nil {
		return err
	}

	dest := export.OutputPath(file, opts.outDir, a.cfg.Output.Suffix, format)
	if err := writeRecords(dest, format, res.Records); err != nil {
		return err
	}

	okColor.Fprintf(out, "✓ %s → %s (%d records, %s)\n", file, dest, len(res.Records), res.Bank)
	printWarnings(out, res.Warnings)

	if opts.report && len(res.Warnings) > 0 {
		dir := opts.outDir
		if dir == "" {
			dir = filepath.Dir(file)
		}
		entries := report.Entries(time.Now().UTC(), filepath.Base(file), res.Bank, res.Warnings)
		if err := report.Append(dir, entries); err != nil {
			a.log.WithError(err).Warn("Failed to write diagnostics report")
		}
	}
	return nil
}

func writeRecords(dest string, format export.Format, records []model.Record) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}
	f, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	if err := export.Write(f, format, records); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func printWarnings(out io.Writer, warnings []model.Warning) {
	for _, w := range warnings {
		warnColor.Fprintf(out, "  ! %s\n", w)
	}
}

// withSuggestion adds the closest known identifier to an unknown-bank error.
func withSuggestion(err error, id string, known []string) error {
	if !errors.Is(err, model.ErrUnknownBank) {
		return err
	}
	cm := closestmatch.New(known, []int{2, 3})
	if match := cm.Closest(id); match != "" {
		return fmt.Errorf("%w (did you mean %q?)", err, match)
	}
	return err
}
