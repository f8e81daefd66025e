package output

import (
	"fmt"

	"github.com/taxplan/planner/internal/domain"
)

// DefaultAssumptions lists the simplifications of the canonical rules, rendered in
// detailed outputs when a report carries none of its own.
var DefaultAssumptions = GenerateAssumptions(domain.DefaultTaxRules())

// GenerateAssumptions creates the assumptions list from actual rule values
func GenerateAssumptions(rules domain.TaxRules) []string {
	return []string{
		fmt.Sprintf("New tax regime, FY %s rules, individual resident taxpayer", rules.FinancialYear),
		fmt.Sprintf("Standard deduction of %s for salaried taxpayers only", FormatCurrency(rules.StandardDeduction)),
		fmt.Sprintf("Rebate cancels all slab tax up to %s of net slab income; no marginal relief above it", FormatCurrency(rules.RebateThreshold)),
		"Short-term losses are set off against long-term gains only; no carry-forward",
		fmt.Sprintf("LTCG above %s taxed at %s, STCG at %s", FormatCurrency(rules.LTCGExemption), FormatRate(rules.LTCGRate), FormatRate(rules.STCGRate)),
		fmt.Sprintf("Flat %s surcharge above %s of total income; no marginal relief", FormatRate(rules.SurchargeRate), FormatCurrency(rules.SurchargeThreshold)),
		fmt.Sprintf("Health and education cess at %s", FormatRate(rules.CessRate)),
		"Rental income: 30% deduction on net annual value; home loan interest not deducted",
	}
}

func assumptionsFor(r *domain.TaxReport) []string {
	if len(r.Assumptions) > 0 {
		return r.Assumptions
	}
	if len(r.Rules.SlabBands) > 0 {
		return GenerateAssumptions(r.Rules)
	}
	return DefaultAssumptions
}
