package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/taxplan/planner/internal/domain"
)

// OLD REGIME ASSUMPTIONS:
//
// 1. Section 80C and home loan interest are capped; 80D and other deductions
//    are taken as claimed.
//
// 2. Capital gains are taxed at the same special rates as in the new regime,
//    after the same short-term loss set-off.
//
// 3. The 87A rebate is tested on total income (slab + taxable gains) and only
//    reduces slab tax.

// CompareRegimes computes profile under both regimes with the canonical rules
func CompareRegimes(profile domain.DetailedIncomeProfile, deductions domain.OldRegimeDeductions) (domain.RegimeComparison, error) {
	return NewTaxEngine().CompareRegimes(profile, deductions)
}

// CompareRegimes computes profile under the engine's new-regime rules and the
// old regime with deductions, and recommends the cheaper of the two. Equal
// totals recommend RegimeEither.
func (te *TaxEngine) CompareRegimes(profile domain.DetailedIncomeProfile, deductions domain.OldRegimeDeductions) (domain.RegimeComparison, error) {
	if err := domain.ValidateStruct(deductions); err != nil {
		return domain.RegimeComparison{}, fmt.Errorf("invalid deductions: %w", err)
	}

	cmp := domain.RegimeComparison{
		Profile:    profile,
		Deductions: deductions,
		NewRegime:  te.ComputeTax(profile),
	}
	cmp.OldRegime = te.computeOldRegime(profile, deductions, domain.DefaultOldRegimeRules(), cmp.NewRegime)

	diff := cmp.OldRegime.TotalTaxPayable.Sub(cmp.NewRegime.TotalTaxPayable)
	switch {
	case diff.IsPositive():
		cmp.Recommended = domain.RegimeNew
		cmp.Savings = diff
	case diff.IsNegative():
		cmp.Recommended = domain.RegimeOld
		cmp.Savings = diff.Neg()
	default:
		cmp.Recommended = domain.RegimeEither
		cmp.Savings = decimal.Zero
	}
	te.logger().Infof("regime comparison: old %s, new %s, recommended %s", cmp.OldRegime.TotalTaxPayable.StringFixed(2), cmp.NewRegime.TotalTaxPayable.StringFixed(2), cmp.Recommended)
	return cmp, nil
}

// computeOldRegime reuses the capital gains side of the new-regime result
func (te *TaxEngine) computeOldRegime(profile domain.DetailedIncomeProfile, d domain.OldRegimeDeductions, o domain.OldRegimeRules, gains domain.TaxComputationResult) domain.OldRegimeResult {
	r := te.Rules
	var res domain.OldRegimeResult

	res.GrossSlabIncome = profile.SlabIncome()
	res.StandardDeduction = decimal.Zero
	if profile.IsSalaried {
		res.StandardDeduction = o.StandardDeduction
	}
	res.Section80C = decimal.Min(d.Section80C, o.Section80CCap)
	res.Section80D = d.Section80D
	res.HomeLoanInterest = decimal.Min(d.HomeLoanInterest, o.HomeLoanInterestCap)
	res.OtherDeductions = d.Other
	res.TotalDeductions = res.Section80C.Add(res.Section80D).Add(res.HomeLoanInterest).Add(res.OtherDeductions)
	res.NetTaxableSlabIncome = floorZero(res.GrossSlabIncome.Sub(res.StandardDeduction).Sub(res.TotalDeductions))
	res.SlabTax = bandTax(o.SlabBands, res.NetTaxableSlabIncome)

	res.TotalCapitalGainsTax = gains.TotalCapitalGainsTax
	res.TotalIncome = res.NetTaxableSlabIncome.Add(gains.STCGForTax).Add(gains.LTCGForTax)

	res.Rebate = decimal.Zero
	if res.TotalIncome.LessThanOrEqual(o.RebateThreshold) {
		res.Rebate = decimal.Min(res.SlabTax, o.RebateCap)
	}
	res.SlabTaxAfterRebate = res.SlabTax.Sub(res.Rebate)

	res.TotalTaxBeforeSurcharge = res.SlabTaxAfterRebate.Add(res.TotalCapitalGainsTax)
	res.Surcharge = decimal.Zero
	if res.TotalIncome.GreaterThan(r.SurchargeThreshold) {
		res.Surcharge = res.TotalTaxBeforeSurcharge.Mul(r.SurchargeRate)
	}
	beforeCess := res.TotalTaxBeforeSurcharge.Add(res.Surcharge)
	res.Cess = beforeCess.Mul(r.CessRate)
	res.TotalTaxPayable = beforeCess.Add(res.Cess)
	te.logger().Debugf("old regime: net=%s slab=%s rebate=%s payable=%s", res.NetTaxableSlabIncome, res.SlabTax, res.Rebate, res.TotalTaxPayable)
	return res
}
