package calculation

import (
	"github.com/shopspring/decimal"
	"github.com/taxplan/planner/internal/domain"
	"github.com/taxplan/planner/pkg/dateutil"
)

// AdvanceTaxThreshold is the net liability below which no advance tax is due
var AdvanceTaxThreshold = decimal.NewFromInt(10000)

// advanceTaxCumulative is the share of the year's liability due by each installment
var advanceTaxCumulative = []decimal.Decimal{
	decimal.NewFromInt(15),
	decimal.NewFromInt(45),
	decimal.NewFromInt(75),
	decimal.NewFromInt(100),
}

// ComputeAdvanceTax spreads the liability left after TDS across the four due dates
// of the financial year.
func ComputeAdvanceTax(totalTax, tdsDeducted decimal.Decimal, fy dateutil.FinancialYear) *domain.AdvanceTaxSchedule {
	s := &domain.AdvanceTaxSchedule{
		FinancialYear:   fy.Label(),
		TotalTax:        totalTax,
		TDSDeducted:     tdsDeducted,
		NetTaxLiability: floorZero(totalTax.Sub(tdsDeducted)),
	}
	if s.NetTaxLiability.LessThan(AdvanceTaxThreshold) {
		return s
	}
	s.Required = true

	hundred := decimal.NewFromInt(100)
	dates := dateutil.AdvanceTaxDueDates(fy)
	paid := decimal.Zero
	for i, pct := range advanceTaxCumulative {
		cumulative := s.NetTaxLiability.Mul(pct).Div(hundred)
		s.Installments = append(s.Installments, domain.AdvanceTaxInstallment{
			DueDate:             dates[i],
			Amount:              cumulative.Sub(paid),
			CumulativePercent:   pct,
			CumulativeAmountDue: cumulative,
		})
		paid = cumulative
	}
	return s
}
