package calculation

import (
	"github.com/shopspring/decimal"
	"github.com/taxplan/planner/internal/domain"
)

// ComputeSection54F computes the exemption on long-term gains from selling an
// asset other than a house when the proceeds are reinvested in a residential house.
// Reinvesting the whole net consideration exempts the whole gain; otherwise the
// exemption is proportional to the share reinvested.
func ComputeSection54F(saleConsideration, transferExpenses, newHouseCost, capitalGains decimal.Decimal) domain.Section54FResult {
	res := domain.Section54FResult{
		NetConsideration: saleConsideration.Sub(transferExpenses),
		CapitalGains:     capitalGains,
		Exemption:        decimal.Zero,
	}
	switch {
	case !res.NetConsideration.IsPositive() || !capitalGains.IsPositive():
	case newHouseCost.GreaterThanOrEqual(res.NetConsideration):
		res.Exemption = capitalGains
	default:
		res.Exemption = decimal.Min(capitalGains, capitalGains.Mul(floorZero(newHouseCost)).Div(res.NetConsideration))
	}
	res.TaxableCapitalGains = floorZero(capitalGains.Sub(res.Exemption))
	return res
}
