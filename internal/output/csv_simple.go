package output

import (
	"bytes"
	"encoding/csv"

	"github.com/shopspring/decimal"
	"github.com/taxplan/planner/internal/domain"
)

// CSVSummarizer writes the computation as field,value rows.
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(report *domain.TaxReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Field", "Value"}); err != nil {
		return nil, err
	}
	if err := w.Write([]string{"FinancialYear", report.FinancialYear}); err != nil {
		return nil, err
	}
	for _, f := range resultFields(report.Result) {
		if err := w.Write([]string{f.name, f.value.StringFixed(2)}); err != nil {
			return nil, err
		}
	}
	if err := w.Write([]string{"IsRebateApplicable", boolToString(report.Result.IsRebateApplicable)}); err != nil {
		return nil, err
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

type namedAmount struct {
	name  string
	value decimal.Decimal
}

func resultFields(r domain.TaxComputationResult) []namedAmount {
	return []namedAmount{
		{"GrossSlabIncome", r.GrossSlabIncome},
		{"StandardDeduction", r.StandardDeduction},
		{"NetTaxableSlabIncome", r.NetTaxableSlabIncome},
		{"BracketTax", r.BracketTax},
		{"SlabTaxBeforeRebate", r.SlabTaxBeforeRebate},
		{"Rebate", r.Rebate},
		{"SlabTaxAfterRebate", r.SlabTaxAfterRebate},
		{"OriginalSTCG", r.OriginalSTCG},
		{"OriginalLTCG", r.OriginalLTCG},
		{"STCLSetOff", r.STCLSetOff},
		{"PostSetOffSTCG", r.PostSetOffSTCG},
		{"PostSetOffLTCG", r.PostSetOffLTCG},
		{"LTCGExemption", r.LTCGExemption},
		{"TaxableLTCG", r.TaxableLTCG},
		{"LTCGTax", r.LTCGTax},
		{"STCGTax", r.STCGTax},
		{"TotalCapitalGainsTax", r.TotalCapitalGainsTax},
		{"TotalTaxBeforeSurcharge", r.TotalTaxBeforeSurcharge},
		{"Surcharge", r.Surcharge},
		{"TaxBeforeCess", r.TaxBeforeCess},
		{"Cess", r.Cess},
		{"TotalTaxPayable", r.TotalTaxPayable},
	}
}

func boolToString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
