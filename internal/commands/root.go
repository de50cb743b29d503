package commands

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ynabfmt/ynabfmt/internal/bank"
	"github.com/ynabfmt/ynabfmt/internal/buildinfo"
	"github.com/ynabfmt/ynabfmt/internal/config"
)

// app is the state shared by every subcommand, filled in before they run.
type app struct {
	configPath string
	logLevel   string

	cfg      *config.Config
	log      *logrus.Logger
	registry *bank.Registry
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	a := &app{registry: bank.DefaultRegistry()}

	rootCmd := &cobra.Command{
		Use:     "ynabfmt",
		Short:   "Convert bank exports into YNAB import files",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", config.DefaultFile, "config file")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (overrides config)")

	rootCmd.AddCommand(newConvertCommand(a))
	rootCmd.AddCommand(newBanksCommand(a))
	rootCmd.AddCommand(newInitCommand(a))
	rootCmd.AddCommand(newReportCommand(a))

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Resolve(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}

	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	log := logrus.New()
	log.SetOutput(cmd.ErrOrStderr())
	log.SetLevel(level)

	a.cfg = cfg
	a.log = log
	return nil
}
