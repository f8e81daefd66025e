package importer

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"github.com/taxplan/planner/internal/domain"
)

// Export writes the category's records of ledger to w. JSON output wraps the
// array in an object keyed by the collection name, which Import accepts back.
func Export(w io.Writer, ledger *domain.IncomeLedger, c domain.Category, f Format) error {
	header, rows, records, err := tabulate(ledger, c)
	if err != nil {
		return err
	}

	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{wrapperKeys(c)[1]: records})
	case FormatCSV:
		cw := csv.NewWriter(w)
		if err := cw.Write(header); err != nil {
			return fmt.Errorf("write CSV header: %w", err)
		}
		if err := cw.WriteAll(rows); err != nil {
			return fmt.Errorf("write CSV: %w", err)
		}
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
}

func tabulate(l *domain.IncomeLedger, c domain.Category) ([]string, [][]string, any, error) {
	var rows [][]string
	switch c {
	case domain.CategoryRental:
		for _, r := range l.RentalProperties {
			rows = append(rows, []string{r.ID, r.Name, r.MonthlyRent.String(), r.MonthsRented.String(), r.PropertyTax.String(), r.InterestOnLoan.String()})
		}
		return []string{"id", "name", "monthlyRent", "monthsRented", "propertyTax", "interestOnLoan"}, rows, nonNil(l.RentalProperties), nil
	case domain.CategoryFD:
		for _, r := range l.FixedDeposits {
			rows = append(rows, []string{r.ID, r.BankName, r.AccountNo, r.Interest.String()})
		}
		return []string{"id", "bankName", "accountNo", "interest"}, rows, nonNil(l.FixedDeposits), nil
	case domain.CategoryBonds:
		for _, r := range l.Bonds {
			rows = append(rows, []string{r.ID, r.Name, r.ISIN, r.Income.String()})
		}
		return []string{"id", "name", "isin", "income"}, rows, nonNil(l.Bonds), nil
	case domain.CategoryDividends:
		for _, r := range l.Dividends {
			rows = append(rows, []string{r.ID, r.Source, r.Date, r.Particulars, r.Amount.String()})
		}
		return []string{"id", "source", "date", "particulars", "amount"}, rows, nonNil(l.Dividends), nil
	case domain.CategoryDemat, domain.CategoryMutualFunds:
		accounts := l.DematAccounts
		if c == domain.CategoryMutualFunds {
			accounts = l.MutualFunds
		}
		for _, r := range accounts {
			rows = append(rows, []string{r.ID, r.Name, r.STCG.String(), r.LTCG.String()})
		}
		return []string{"id", "name", "stcg", "ltcg"}, rows, nonNil(accounts), nil
	}
	return nil, nil, nil, fmt.Errorf("category %q cannot be exported", c)
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
