package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/taxplan/planner/internal/calculation"
	"github.com/taxplan/planner/internal/config"
	"github.com/taxplan/planner/internal/domain"
	"github.com/taxplan/planner/internal/output"
)

type computeOptions struct {
	ledgerFile string
	format     string
	outFile    string
	saveDir    string
	tds        string
	fy         string
	noAdvance  bool
}

func (a *app) newComputeCommand() *cobra.Command {
	var opts computeOptions
	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Compute the tax liability for the recorded income",
		Long:  "Aggregates the ledger (from --ledger or the store) and renders the full new regime computation.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCompute(cmd, opts)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&opts.ledgerFile, "ledger", "l", "", "YAML or JSON ledger file (default: the store)")
	f.StringVarP(&opts.format, "format", "f", a.settings.OutputFormat, "output format ("+joinNames()+")")
	f.StringVarP(&opts.outFile, "out", "o", "", "write the report to this file instead of stdout")
	f.StringVar(&opts.saveDir, "save-dir", "", "also save a timestamped copy of the report in this directory")
	f.StringVar(&opts.tds, "tds", "0", "tax already deducted at source")
	f.StringVar(&opts.fy, "fy", "", "financial year, e.g. 2025-26 (default: ledger or rules year)")
	f.BoolVar(&opts.noAdvance, "no-advance-tax", false, "omit the advance tax schedule")
	return cmd
}

func (a *app) runCompute(cmd *cobra.Command, opts computeOptions) error {
	tds, err := parseAmount("tds", opts.tds)
	if err != nil {
		return err
	}
	if output.GetFormatterByName(opts.format) == nil {
		return fmt.Errorf("%w: %q (available: %s)", output.ErrUnsupportedFormat, opts.format, joinNames())
	}

	ledger, err := a.loadLedger(cmd, opts.ledgerFile)
	if err != nil {
		return err
	}

	engine := calculation.NewCalculationEngine()
	engine.SetLogger(a.log)
	report, err := engine.RunLedger(cmd.Context(), ledger, calculation.ReportOptions{
		FinancialYear:  opts.fy,
		TDSDeducted:    tds,
		SkipAdvanceTax: opts.noAdvance,
	})
	if err != nil {
		return fmt.Errorf("computation failed: %w", err)
	}
	report.Assumptions = output.GenerateAssumptions(report.Rules)

	err = writeOutput(cmd, opts.outFile, func(w io.Writer) error {
		return output.GenerateReport(w, report, opts.format)
	})
	if err != nil {
		return err
	}
	if opts.saveDir != "" {
		path, err := output.SaveReport(report, opts.format, opts.saveDir)
		if err != nil {
			return fmt.Errorf("failed to save report: %w", err)
		}
		a.log.WithField("path", path).Info("report saved")
	}
	return nil
}

// loadLedger reads the ledger from path, or from the store when path is empty
func (a *app) loadLedger(cmd *cobra.Command, path string) (*domain.IncomeLedger, error) {
	if path != "" {
		a.log.WithField("file", path).Debug("loading ledger file")
		return config.NewInputParser().LoadFromFile(path)
	}
	repo, store, err := a.openRepository()
	if err != nil {
		return nil, err
	}
	defer a.closeStore(store)
	return repo.Load(cmd.Context())
}
