package output

import (
	"bytes"
	"fmt"

	"github.com/taxplan/planner/internal/domain"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(report *domain.TaxReport) ([]byte, error) {
	var buf bytes.Buffer
	res := report.Result
	a := AnalyzeReport(report)
	fmt.Fprintf(&buf, "TAX SUMMARY FY %s\n", report.FinancialYear)
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Income Tax: %s  Capital Gains Tax: %s\n", FormatCurrency(a.IncomeTax), FormatCurrency(a.CapitalGainsTax))
	fmt.Fprintf(&buf, "Total Payable: %s (effective %s)\n", FormatCurrency(res.TotalTaxPayable), FormatPercentage(a.EffectiveRate))
	if res.IsRebateApplicable {
		fmt.Fprintln(&buf, "Rebate applied to slab tax")
	}
	if s := report.AdvanceTax; s != nil && s.Required {
		fmt.Fprintf(&buf, "Advance tax due: %s over %d installments\n", FormatCurrency(s.NetTaxLiability), len(s.Installments))
	}
	return buf.Bytes(), nil
}
