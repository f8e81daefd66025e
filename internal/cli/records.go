package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/taxplan/planner/internal/domain"
	"github.com/taxplan/planner/internal/importer"
	"github.com/taxplan/planner/internal/output"
)

func (a *app) newImportCommand() *cobra.Command {
	var format, source string
	cmd := &cobra.Command{
		Use:   "import CATEGORY FILE",
		Short: "Replace the stored records of a category with the contents of a JSON or CSV file",
		Example: `  taxplan import fd fixed_deposits.csv
  taxplan import dividends broker1.csv --source broker1
  taxplan import bonds bonds.json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := domain.ParseCategory(args[0])
			if err != nil {
				return err
			}
			f, err := resolveFileFormat(format, args[1])
			if err != nil {
				return err
			}
			file, err := os.Open(args[1])
			if err != nil {
				return fmt.Errorf("failed to read file %s: %w", args[1], err)
			}
			defer file.Close()

			repo, store, err := a.openRepository()
			if err != nil {
				return err
			}
			defer a.closeStore(store)

			ledger, err := repo.Load(cmd.Context())
			if err != nil {
				return err
			}
			sum, err := importer.Import(file, c, importer.Options{Format: f, Source: source}, ledger)
			if err != nil {
				return fmt.Errorf("import %s: %w", args[1], err)
			}
			if err := repo.SaveCategory(cmd.Context(), c, ledger); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d %s records (%d blank rows skipped)\n", sum.Imported, c, sum.Skipped)
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "", "file format, json or csv (default: from the file extension)")
	cmd.Flags().StringVar(&source, "source", "", "dividend source for rows without one (pms, broker1, ...)")
	return cmd
}

func (a *app) newExportCommand() *cobra.Command {
	var format, outFile string
	cmd := &cobra.Command{
		Use:   "export CATEGORY",
		Short: "Write the stored records of a category as JSON or CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := domain.ParseCategory(args[0])
			if err != nil {
				return err
			}
			if format == "" && outFile != "" {
				format = string(formatFromPathOrJSON(outFile))
			}
			f := importer.FormatJSON
			if format != "" {
				if f, err = importer.ParseFormat(format); err != nil {
					return err
				}
			}

			repo, store, err := a.openRepository()
			if err != nil {
				return err
			}
			defer a.closeStore(store)
			ledger, err := repo.Load(cmd.Context())
			if err != nil {
				return err
			}

			return writeOutput(cmd, outFile, func(w io.Writer) error {
				return importer.Export(w, ledger, c, f)
			})
		},
	}
	cmd.Flags().StringVar(&format, "format", "", "json or csv (default: from --out, else json)")
	cmd.Flags().StringVarP(&outFile, "out", "o", "", "write to this file instead of stdout")
	return cmd
}

func (a *app) newSalaryCommand() *cobra.Command {
	var salaried bool
	cmd := &cobra.Command{
		Use:   "salary AMOUNT",
		Short: "Set the annual gross salary",
		Long:  "Stores the annual gross salary. --salaried overrides whether the standard deduction applies; without it the deduction follows a positive salary.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount("salary", args[0])
			if err != nil {
				return err
			}
			var flag *bool
			if cmd.Flags().Changed("salaried") {
				flag = &salaried
			}

			repo, store, err := a.openRepository()
			if err != nil {
				return err
			}
			defer a.closeStore(store)
			if err := repo.SaveSalary(cmd.Context(), amount, flag); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Salary set to %s\n", output.FormatCurrency(amount))
			return nil
		},
	}
	cmd.Flags().BoolVar(&salaried, "salaried", true, "whether the standard deduction applies")
	return cmd
}

func (a *app) newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show which income categories are stored",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, store, err := a.openRepository()
			if err != nil {
				return err
			}
			defer a.closeStore(store)
			keys, err := repo.StoredKeys(cmd.Context())
			if err != nil {
				return err
			}
			ledger, err := repo.Load(cmd.Context())
			if err != nil {
				return err
			}

			stored := make(map[string]bool, len(keys))
			for _, k := range keys {
				stored[k] = true
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Store: %s (%d keys)\n", a.dbPath, len(keys))
			if stored[domain.CategorySalary.StorageKey()] {
				fmt.Fprintf(w, "  %-13s %s\n", domain.CategorySalary, output.FormatCurrency(ledger.Salary))
			} else {
				fmt.Fprintf(w, "  %-13s not stored\n", domain.CategorySalary)
			}
			for _, c := range domain.RecordCategories() {
				if !stored[c.StorageKey()] {
					fmt.Fprintf(w, "  %-13s not stored\n", c)
					continue
				}
				fmt.Fprintf(w, "  %-13s %d records\n", c, ledger.RecordCount(c))
			}
			return nil
		},
	}
}

func resolveFileFormat(flag, path string) (importer.Format, error) {
	if flag != "" {
		return importer.ParseFormat(flag)
	}
	return importer.FormatFromPath(path)
}

// formatFromPathOrJSON falls back to json for unrecognised extensions
func formatFromPathOrJSON(path string) importer.Format {
	f, err := importer.FormatFromPath(path)
	if err != nil {
		return importer.FormatJSON
	}
	return f
}
