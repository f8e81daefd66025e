package output

import (
	"bytes"
	"encoding/csv"

	"github.com/taxplan/planner/internal/domain"
)

// CSVDetailedExporter writes every section of the report as section,field,value rows.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(report *domain.TaxReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	rows := [][]string{{"Section", "Field", "Value"}}

	p := report.Profile
	for _, f := range []namedAmount{
		{"Salary", p.Salary},
		{"RentalIncome", p.RentalIncome},
		{"FDIncome", p.FDIncome},
		{"BondIncome", p.BondIncome},
		{"DividendIncome", p.DividendIncome},
		{"STCG", p.STCG},
		{"LTCG", p.LTCG},
	} {
		rows = append(rows, []string{"income", f.name, f.value.StringFixed(2)})
	}
	rows = append(rows, []string{"income", "IsSalaried", boolToString(p.IsSalaried)})

	rs := report.Rental
	for _, f := range []namedAmount{
		{"GrossAnnualValue", rs.GrossAnnualValue},
		{"PropertyTax", rs.PropertyTax},
		{"NetAnnualValue", rs.NetAnnualValue},
		{"StandardDeduction30", rs.StandardDeduction30},
		{"InterestOnLoan", rs.InterestOnLoan},
		{"NetIncome", rs.NetIncome},
	} {
		rows = append(rows, []string{"rental", f.name, f.value.StringFixed(2)})
	}

	for _, f := range resultFields(report.Result) {
		rows = append(rows, []string{"tax", f.name, f.value.StringFixed(2)})
	}

	if s := report.AdvanceTax; s != nil {
		rows = append(rows,
			[]string{"advance_tax", "NetTaxLiability", s.NetTaxLiability.StringFixed(2)},
			[]string{"advance_tax", "Required", boolToString(s.Required)},
		)
		for _, inst := range s.Installments {
			rows = append(rows, []string{"advance_tax", inst.DueDate.Format("2006-01-02"), inst.Amount.StringFixed(2)})
		}
	}

	for _, a := range assumptionsFor(report) {
		rows = append(rows, []string{"assumption", "", a})
	}

	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
