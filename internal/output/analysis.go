package output

import (
	"github.com/shopspring/decimal"
	"github.com/taxplan/planner/internal/domain"
)

// TaxAnalysis holds derived figures shown alongside the raw breakdown.
// Extracted from formatter logic for testability.
type TaxAnalysis struct {
	TotalIncome     decimal.Decimal
	EffectiveRate   decimal.Decimal // percent of total income
	SlabBandRate    decimal.Decimal // rate of the band the net slab income ends in
	IncomeTax       decimal.Decimal // slab share of the payable total
	CapitalGainsTax decimal.Decimal // gains share of the payable total
	// RebateHeadroom is how much more slab income keeps the rebate; zero once lost.
	RebateHeadroom decimal.Decimal
	// OverRebateThreshold is how far net slab income exceeds the rebate threshold.
	OverRebateThreshold decimal.Decimal
}

// AnalyzeReport derives the summary figures of a report
func AnalyzeReport(r *domain.TaxReport) TaxAnalysis {
	res := r.Result
	a := TaxAnalysis{
		TotalIncome:     res.GrossSlabIncome.Add(res.STCGForTax).Add(res.LTCGForTax),
		IncomeTax:       res.IncomeTax(),
		CapitalGainsTax: res.CapitalGainsTaxWithLevies(),
		SlabBandRate:    bandRate(r.Rules.SlabBands, res.NetTaxableSlabIncome),
	}
	if a.TotalIncome.IsPositive() {
		a.EffectiveRate = res.TotalTaxPayable.Div(a.TotalIncome).Mul(decimalHundred).Round(2)
	}
	if res.IsRebateApplicable {
		a.RebateHeadroom = r.Rules.RebateThreshold.Sub(res.NetTaxableSlabIncome)
	} else {
		a.OverRebateThreshold = res.NetTaxableSlabIncome.Sub(r.Rules.RebateThreshold)
	}
	return a
}

func bandRate(bands []domain.SlabBand, income decimal.Decimal) decimal.Decimal {
	rate := decimal.Zero
	for _, b := range bands {
		if income.LessThanOrEqual(b.Min) {
			break
		}
		rate = b.Rate
	}
	return rate
}
