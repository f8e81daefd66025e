package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/taxplan/planner/internal/calculation"
	"github.com/taxplan/planner/internal/domain"
	"github.com/taxplan/planner/internal/output"
)

type compareOptions struct {
	ledgerFile       string
	format           string
	section80C       string
	section80D       string
	homeLoanInterest string
	other            string
}

func (a *app) newCompareCommand() *cobra.Command {
	var opts compareOptions
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare the old and new regimes for the recorded income",
		Long:  "Computes the ledger (from --ledger or the store) under both regimes. The deduction flags only apply to the old regime; 80C is capped at 1.5 lakh and home loan interest at 2 lakh.",
		Example: `  taxplan compare --80c 1,50,000 --80d 25,000 --home-loan-interest 1,80,000
  taxplan compare --ledger ledger.yaml --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCompare(cmd, opts)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&opts.ledgerFile, "ledger", "l", "", "YAML or JSON ledger file (default: the store)")
	f.StringVarP(&opts.format, "format", "f", "console", "output format (console, json, yaml)")
	f.StringVar(&opts.section80C, "80c", "0", "section 80C investments")
	f.StringVar(&opts.section80D, "80d", "0", "section 80D health insurance premiums")
	f.StringVar(&opts.homeLoanInterest, "home-loan-interest", "0", "interest on a self-occupied home loan, section 24(b)")
	f.StringVar(&opts.other, "other-deductions", "0", "other old-regime deductions such as 80G or 80TTA")
	return cmd
}

func (a *app) runCompare(cmd *cobra.Command, opts compareOptions) error {
	var deductions domain.OldRegimeDeductions
	var err error
	if deductions.Section80C, err = parseAmount("80c", opts.section80C); err != nil {
		return err
	}
	if deductions.Section80D, err = parseAmount("80d", opts.section80D); err != nil {
		return err
	}
	if deductions.HomeLoanInterest, err = parseAmount("home loan interest", opts.homeLoanInterest); err != nil {
		return err
	}
	if deductions.Other, err = parseAmount("other deductions", opts.other); err != nil {
		return err
	}

	ledger, err := a.loadLedger(cmd, opts.ledgerFile)
	if err != nil {
		return err
	}
	te, err := calculation.NewTaxEngineWithRules(ledger.EffectiveRules())
	if err != nil {
		return err
	}
	te.SetLogger(a.log)
	profile, _, err := calculation.AggregateLedger(ledger)
	if err != nil {
		return err
	}
	cmp, err := te.CompareRegimes(profile, deductions)
	if err != nil {
		return fmt.Errorf("comparison failed: %w", err)
	}
	return output.WriteRegimeComparison(cmd.OutOrStdout(), cmp, opts.format)
}
