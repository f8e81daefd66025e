package output

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/taxplan/planner/internal/domain"
)

// ConsoleVerboseFormatter renders the sectioned tax computation
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(report *domain.TaxReport) ([]byte, error) {
	var buf bytes.Buffer
	p, res := report.Profile, report.Result
	a := AnalyzeReport(report)

	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintf(&buf, "INCOME TAX COMPUTATION - FY %s (NEW REGIME)\n", report.FinancialYear)
	if report.AssessmentYear != "" {
		fmt.Fprintf(&buf, "Assessment Year %s\n", report.AssessmentYear)
	}
	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, s := range assumptionsFor(report) {
		fmt.Fprintf(&buf, "• %s\n", s)
	}
	fmt.Fprintln(&buf)

	section(&buf, "INCOME SOURCES")
	line(&buf, "Salary", p.Salary)
	line(&buf, "Rental Income (net)", p.RentalIncome)
	line(&buf, "FD Interest", p.FDIncome)
	line(&buf, "Bond Interest", p.BondIncome)
	line(&buf, "Dividends", p.DividendIncome)
	line(&buf, "GROSS SLAB INCOME", res.GrossSlabIncome)
	line(&buf, "Short-Term Capital Gains", res.OriginalSTCG)
	line(&buf, "Long-Term Capital Gains", res.OriginalLTCG)
	fmt.Fprintln(&buf)

	if !report.Rental.GrossAnnualValue.IsZero() {
		section(&buf, "HOUSE PROPERTY")
		line(&buf, "Gross Annual Value", report.Rental.GrossAnnualValue)
		line(&buf, "Less: Property Tax", report.Rental.PropertyTax)
		line(&buf, "Net Annual Value", report.Rental.NetAnnualValue)
		line(&buf, "Less: 30% Deduction", report.Rental.StandardDeduction30)
		line(&buf, "Income from House Property", report.Rental.NetIncome)
		if report.Rental.InterestOnLoan.IsPositive() {
			line(&buf, "Home Loan Interest (not deducted)", report.Rental.InterestOnLoan)
		}
		fmt.Fprintln(&buf)
	}

	section(&buf, "SLAB TAX")
	line(&buf, "Standard Deduction", res.StandardDeduction)
	line(&buf, "Net Taxable Slab Income", res.NetTaxableSlabIncome)
	line(&buf, "Slab Tax (bands)", res.BracketTax)
	if res.IsRebateApplicable {
		line(&buf, "Less: Rebate", res.Rebate)
		fmt.Fprintf(&buf, "  (rebate applies; %s of headroom left)\n", FormatCurrency(a.RebateHeadroom))
	} else {
		fmt.Fprintf(&buf, "  (no rebate; %s above the threshold)\n", FormatCurrency(a.OverRebateThreshold))
	}
	line(&buf, "SLAB TAX PAYABLE", res.SlabTaxAfterRebate)
	fmt.Fprintln(&buf)

	section(&buf, "CAPITAL GAINS")
	if res.STCLSetOff.IsPositive() {
		line(&buf, "Short-Term Loss Set Off", res.STCLSetOff)
	}
	line(&buf, "STCG for Tax", res.STCGForTax)
	line(&buf, "LTCG for Tax", res.LTCGForTax)
	line(&buf, "Less: LTCG Exemption", res.LTCGExemption)
	line(&buf, "Taxable LTCG", res.TaxableLTCG)
	line(&buf, "STCG Tax", res.STCGTax)
	line(&buf, "LTCG Tax", res.LTCGTax)
	line(&buf, "CAPITAL GAINS TAX", res.TotalCapitalGainsTax)
	fmt.Fprintln(&buf)

	section(&buf, "FINAL LIABILITY")
	line(&buf, "Tax before Surcharge", res.TotalTaxBeforeSurcharge)
	line(&buf, "Surcharge", res.Surcharge)
	line(&buf, "Tax before Cess", res.TaxBeforeCess)
	line(&buf, "Health & Education Cess", res.Cess)
	line(&buf, "TOTAL TAX PAYABLE", res.TotalTaxPayable)
	fmt.Fprintf(&buf, "  %-36s %18s\n", "Effective Rate", FormatPercentage(a.EffectiveRate))
	fmt.Fprintf(&buf, "  %-36s %18s\n", "Slab Band Rate", FormatRate(a.SlabBandRate))
	fmt.Fprintln(&buf)

	if s := report.AdvanceTax; s != nil {
		section(&buf, "ADVANCE TAX")
		line(&buf, "TDS Deducted", s.TDSDeducted)
		line(&buf, "Net Liability", s.NetTaxLiability)
		if !s.Required {
			fmt.Fprintln(&buf, "  Advance tax not required (net liability below ₹10,000)")
		}
		for _, inst := range s.Installments {
			fmt.Fprintf(&buf, "  %-12s %6s %18s %18s\n", inst.DueDate.Format("02 Jan 2006"), inst.CumulativePercent.String()+"%", FormatCurrency(inst.Amount), FormatCurrency(inst.CumulativeAmountDue))
		}
		fmt.Fprintln(&buf)
	}

	return buf.Bytes(), nil
}

func section(w io.Writer, title string) {
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("-", 57))
}

func line(w io.Writer, label string, v decimal.Decimal) {
	fmt.Fprintf(w, "  %-36s %18s\n", label, FormatCurrency(v))
}
