package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/taxplan/planner/internal/domain"
	"gopkg.in/yaml.v3"
)

// WriteRegimeComparison renders cmp as a side-by-side console table, JSON or YAML
func WriteRegimeComparison(w io.Writer, cmp domain.RegimeComparison, format string) error {
	var data []byte
	var err error
	switch NormalizeFormatName(format) {
	case "console", "console-lite":
		data = formatRegimeComparison(cmp)
	case "json":
		data, err = json.MarshalIndent(cmp, "", "  ")
		data = append(data, '\n')
	case "yaml":
		data, err = yaml.Marshal(cmp)
	default:
		return fmt.Errorf("%w: %q (regime comparison supports console, json, yaml)", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return fmt.Errorf("failed to format regime comparison: %w", err)
	}
	_, err = w.Write(data)
	return err
}

func formatRegimeComparison(cmp domain.RegimeComparison) []byte {
	var buf bytes.Buffer
	o, n := cmp.OldRegime, cmp.NewRegime
	zero := decimal.Zero

	fmt.Fprintln(&buf, strings.Repeat("=", 72))
	fmt.Fprintln(&buf, "TAX REGIME COMPARISON")
	fmt.Fprintln(&buf, strings.Repeat("=", 72))
	fmt.Fprintf(&buf, "  %-30s %18s %18s\n", "", "Old Regime", "New Regime")
	regimeRow(&buf, "Gross slab income", o.GrossSlabIncome, n.GrossSlabIncome)
	regimeRow(&buf, "Less: Standard deduction", o.StandardDeduction, n.StandardDeduction)
	regimeRow(&buf, "Less: Section 80C", o.Section80C, zero)
	regimeRow(&buf, "Less: Section 80D", o.Section80D, zero)
	regimeRow(&buf, "Less: Home loan interest", o.HomeLoanInterest, zero)
	regimeRow(&buf, "Less: Other deductions", o.OtherDeductions, zero)
	regimeRow(&buf, "Net taxable slab income", o.NetTaxableSlabIncome, n.NetTaxableSlabIncome)
	regimeRow(&buf, "Slab tax (bands)", o.SlabTax, n.BracketTax)
	regimeRow(&buf, "Less: Rebate", o.Rebate, n.Rebate)
	regimeRow(&buf, "Capital gains tax", o.TotalCapitalGainsTax, n.TotalCapitalGainsTax)
	regimeRow(&buf, "Surcharge", o.Surcharge, n.Surcharge)
	regimeRow(&buf, "Cess", o.Cess, n.Cess)
	fmt.Fprintf(&buf, "  %s\n", strings.Repeat("-", 68))
	regimeRow(&buf, "TOTAL TAX PAYABLE", o.TotalTaxPayable, n.TotalTaxPayable)
	fmt.Fprintln(&buf)

	switch cmp.Recommended {
	case domain.RegimeEither:
		fmt.Fprintln(&buf, "Recommendation: both regimes cost the same")
	default:
		fmt.Fprintf(&buf, "Recommendation: the %s regime costs %s less\n", cmp.Recommended, FormatCurrency(cmp.Savings))
	}
	return buf.Bytes()
}

func regimeRow(w io.Writer, label string, oldRegime, newRegime decimal.Decimal) {
	fmt.Fprintf(w, "  %-30s %18s %18s\n", label, FormatCurrency(oldRegime), FormatCurrency(newRegime))
}
