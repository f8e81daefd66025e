package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/taxplan/planner/internal/calculation"
	"github.com/taxplan/planner/internal/config"
	"github.com/taxplan/planner/internal/output"
)

func (a *app) newInitCommand() *cobra.Command {
	var outFile string
	var force, toStore bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write an example ledger to start from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewInputParser()
			ledger := parser.CreateExampleLedger()

			if toStore {
				repo, store, err := a.openRepository()
				if err != nil {
					return err
				}
				defer a.closeStore(store)
				if err := repo.Save(cmd.Context(), ledger); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Example ledger stored in %s\n", a.dbPath)
				return nil
			}

			if _, err := os.Stat(outFile); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", outFile)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return err
			}
			if err := parser.SaveToFile(outFile, ledger); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example ledger written to %s\n", outFile)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outFile, "out", "o", "ledger.yaml", "file to write")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	cmd.Flags().BoolVar(&toStore, "store", false, "seed the store instead of writing a file")
	return cmd
}

func (a *app) newExemptionCommand() *cobra.Command {
	var sale, expenses, newHouse, gains string
	cmd := &cobra.Command{
		Use:   "exemption54f",
		Short: "Compute the section 54F exemption for gains reinvested in a residential house",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			saleAmt, err := parseAmount("sale", sale)
			if err != nil {
				return err
			}
			expAmt, err := parseAmount("expenses", expenses)
			if err != nil {
				return err
			}
			houseAmt, err := parseAmount("new-house", newHouse)
			if err != nil {
				return err
			}
			gainsAmt, err := parseAmount("gains", gains)
			if err != nil {
				return err
			}

			res := calculation.ComputeSection54F(saleAmt, expAmt, houseAmt, gainsAmt)
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, "SECTION 54F EXEMPTION")
			fmt.Fprintln(w, strings.Repeat("-", 57))
			fmt.Fprintf(w, "  %-36s %18s\n", "Net Sale Consideration", output.FormatCurrency(res.NetConsideration))
			fmt.Fprintf(w, "  %-36s %18s\n", "Long-Term Capital Gains", output.FormatCurrency(res.CapitalGains))
			fmt.Fprintf(w, "  %-36s %18s\n", "Exemption", output.FormatCurrency(res.Exemption))
			fmt.Fprintf(w, "  %-36s %18s\n", "Taxable Capital Gains", output.FormatCurrency(res.TaxableCapitalGains))
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&sale, "sale", "", "full value of consideration received")
	f.StringVar(&expenses, "expenses", "0", "expenses incurred on the transfer")
	f.StringVar(&newHouse, "new-house", "", "cost of the new residential house")
	f.StringVar(&gains, "gains", "", "long-term capital gains on the transfer")
	for _, name := range []string{"sale", "new-house", "gains"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func (a *app) newFormatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List the available report formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, "Formats:")
			for _, n := range output.AvailableFormatterNames() {
				fmt.Fprintf(w, "  %s\n", n)
			}
			fmt.Fprintln(w, "Aliases:")
			for _, alias := range output.AvailableFormatAliases() {
				fmt.Fprintf(w, "  %s -> %s\n", alias, output.NormalizeFormatName(alias))
			}
			return nil
		},
	}
}

func joinNames() string {
	return strings.Join(output.AvailableFormatterNames(), ", ")
}
