// Package cli wires the taxplan commands.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/taxplan/planner/internal/config"
	"github.com/taxplan/planner/internal/logging"
	"github.com/taxplan/planner/internal/storage"
	money "github.com/taxplan/planner/pkg/decimal"
)

// app carries the state shared by every subcommand of one invocation
type app struct {
	settings  config.Settings
	dbPath    string
	logLevel  string
	logFormat string
	log       *logrus.Logger
	errOut    io.Writer
}

// Execute loads the settings from the environment and runs the root command
func Execute(ctx context.Context, args []string) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	root := NewRootCommand(settings, os.Stdout, os.Stderr)
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

// NewRootCommand builds the command tree. Reports go to out, logs to errOut.
func NewRootCommand(settings config.Settings, out, errOut io.Writer) *cobra.Command {
	a := &app{settings: settings, errOut: errOut}

	root := &cobra.Command{
		Use:           "taxplan",
		Short:         "Income tax planner for the Indian new tax regime",
		Long:          "taxplan records income by category, computes the year's tax liability under the new regime and renders the computation in several formats.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log, err := logging.New(a.logLevel, a.logFormat, a.errOut)
			if err != nil {
				return err
			}
			a.log = log
			return nil
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&a.dbPath, "db", settings.DBPath, "path of the SQLite ledger store")
	pf.StringVar(&a.logLevel, "log-level", settings.LogLevel, "log level (debug, info, warn, error)")
	pf.StringVar(&a.logFormat, "log-format", settings.LogFormat, "log format (text or json)")

	root.AddCommand(
		a.newComputeCommand(),
		a.newCompareCommand(),
		a.newImportCommand(),
		a.newExportCommand(),
		a.newSalaryCommand(),
		a.newStatusCommand(),
		a.newInitCommand(),
		a.newExemptionCommand(),
		a.newFormatsCommand(),
	)
	return root
}

// openRepository opens the SQLite store. The caller closes the returned store.
func (a *app) openRepository() (*storage.LedgerRepository, storage.KeyValueStore, error) {
	store, err := storage.NewSQLiteStore(a.dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open store %s: %w", a.dbPath, err)
	}
	a.log.WithField("db", a.dbPath).Debug("store opened")
	return storage.NewLedgerRepository(store, a.log), store, nil
}

func (a *app) closeStore(store storage.KeyValueStore) {
	if err := store.Close(); err != nil {
		a.log.WithError(err).Warn("failed to close store")
	}
}

// parseAmount reads a rupee flag or argument; grouping commas and ₹ are accepted
func parseAmount(name, s string) (decimal.Decimal, error) {
	if strings.TrimSpace(s) == "" {
		return decimal.Zero, nil
	}
	m, err := money.NewMoneyFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s %q: %w", name, s, err)
	}
	if m.IsNegative() {
		return decimal.Zero, fmt.Errorf("invalid %s %q: must not be negative", name, s)
	}
	return m.Decimal, nil
}

// writeOutput runs write against stdout, or against a new file at path. The
// file's Close error is returned so a failed flush is never silent.
func writeOutput(cmd *cobra.Command, path string, write func(io.Writer) error) error {
	if path == "" {
		return write(cmd.OutOrStdout())
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := write(file); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
