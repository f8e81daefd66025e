package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/taxplan/planner/internal/domain"
)

// TAX COMPUTATION ASSUMPTIONS (new regime, individual resident):
//
// 1. Rebate is all-or-nothing: slab tax is fully cancelled when net taxable slab
//    income is at or below the rebate threshold. No marginal relief above it.
//
// 2. Loss set-off only moves a short-term loss against long-term gains. Long-term
//    losses, STCL against STCG ordering and carry-forward are not modelled.
//
// 3. Surcharge is a single flat rate once total income (slab + taxable gains)
//    exceeds the threshold. No graded slabs, no marginal relief.
//
// 4. Cess applies to every rupee of tax after surcharge.

// TaxEngine computes the tax breakdown for a DetailedIncomeProfile. It holds no
// mutable state and is safe for concurrent use.
type TaxEngine struct {
	Rules  domain.TaxRules
	Logger Logger
}

// NewTaxEngine creates an engine using the canonical rules
func NewTaxEngine() *TaxEngine {
	return &TaxEngine{Rules: domain.DefaultTaxRules(), Logger: NopLogger{}}
}

// NewTaxEngineWithRules creates an engine with caller supplied rules
func NewTaxEngineWithRules(rules domain.TaxRules) (*TaxEngine, error) {
	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("tax engine: %w", err)
	}
	return &TaxEngine{Rules: rules, Logger: NopLogger{}}, nil
}

// SetLogger sets the logger. If nil is provided, a no-op logger is used.
func (te *TaxEngine) SetLogger(l Logger) {
	if l == nil {
		te.Logger = NopLogger{}
		return
	}
	te.Logger = l
}

// ComputeTax computes tax with the canonical rules
func ComputeTax(profile domain.DetailedIncomeProfile) domain.TaxComputationResult {
	return NewTaxEngine().ComputeTax(profile)
}

// ComputeTax maps a profile to its full tax breakdown. It never fails: inputs
// are not range checked and negative slab income propagates arithmetically.
func (te *TaxEngine) ComputeTax(profile domain.DetailedIncomeProfile) domain.TaxComputationResult {
	r := te.Rules
	log := te.logger()
	var res domain.TaxComputationResult

	res.GrossSlabIncome = profile.SlabIncome()
	res.OriginalSTCG = profile.STCG
	res.OriginalLTCG = profile.LTCG

	res.StandardDeduction = decimal.Zero
	if profile.IsSalaried {
		res.StandardDeduction = r.StandardDeduction
	}
	res.NetTaxableSlabIncome = floorZero(res.GrossSlabIncome.Sub(res.StandardDeduction))

	res.IsRebateApplicable = res.NetTaxableSlabIncome.LessThanOrEqual(r.RebateThreshold)
	res.BracketTax = te.SlabTax(res.NetTaxableSlabIncome)
	if res.IsRebateApplicable {
		res.Rebate = res.BracketTax
		res.SlabTaxBeforeRebate = decimal.Zero
	} else {
		res.Rebate = decimal.Zero
		res.SlabTaxBeforeRebate = res.BracketTax
	}
	res.SlabTaxAfterRebate = res.BracketTax.Sub(res.Rebate)
	log.Debugf("slab: gross=%s net=%s bracket=%s rebate=%t", res.GrossSlabIncome, res.NetTaxableSlabIncome, res.BracketTax, res.IsRebateApplicable)

	res.STCLSetOff, res.PostSetOffSTCG, res.PostSetOffLTCG = setOffShortTermLoss(profile.STCG, profile.LTCG)
	res.STCGForTax = floorZero(res.PostSetOffSTCG)
	res.LTCGForTax = floorZero(res.PostSetOffLTCG)
	res.LTCGExemption = r.LTCGExemption
	res.TaxableLTCG = floorZero(res.LTCGForTax.Sub(r.LTCGExemption))
	res.LTCGTax = res.TaxableLTCG.Mul(r.LTCGRate)
	res.STCGTax = res.STCGForTax.Mul(r.STCGRate)
	res.TotalCapitalGainsTax = res.LTCGTax.Add(res.STCGTax)
	log.Debugf("gains: set-off=%s stcg=%s ltcg=%s taxable-ltcg=%s tax=%s", res.STCLSetOff, res.STCGForTax, res.LTCGForTax, res.TaxableLTCG, res.TotalCapitalGainsTax)

	res.TotalTaxBeforeSurcharge = res.SlabTaxAfterRebate.Add(res.TotalCapitalGainsTax)
	res.TotalIncomeForSurcharge = res.NetTaxableSlabIncome.Add(res.STCGForTax).Add(res.LTCGForTax)
	res.Surcharge = decimal.Zero
	if res.TotalIncomeForSurcharge.GreaterThan(r.SurchargeThreshold) {
		res.Surcharge = res.TotalTaxBeforeSurcharge.Mul(r.SurchargeRate)
	}
	res.TaxBeforeCess = res.TotalTaxBeforeSurcharge.Add(res.Surcharge)
	res.Cess = res.TaxBeforeCess.Mul(r.CessRate)
	res.TotalTaxPayable = res.TaxBeforeCess.Add(res.Cess)
	log.Debugf("total: before-surcharge=%s surcharge=%s cess=%s payable=%s", res.TotalTaxBeforeSurcharge, res.Surcharge, res.Cess, res.TotalTaxPayable)

	return res
}

// SlabTax applies the marginal bands to income, ignoring any rebate
func (te *TaxEngine) SlabTax(income decimal.Decimal) decimal.Decimal {
	return bandTax(te.Rules.SlabBands, income)
}

func bandTax(bands []domain.SlabBand, income decimal.Decimal) decimal.Decimal {
	tax := decimal.Zero
	for _, band := range bands {
		if income.LessThanOrEqual(band.Min) {
			break
		}
		upper := income
		if !band.Unbounded() {
			upper = decimal.Min(income, band.Max)
		}
		tax = tax.Add(upper.Sub(band.Min).Mul(band.Rate))
	}
	return tax
}

// setOffShortTermLoss offsets a short-term loss against long-term gains, capped
// at the smaller magnitude. Any other sign combination passes through untouched.
func setOffShortTermLoss(stcg, ltcg decimal.Decimal) (setOff, postSTCG, postLTCG decimal.Decimal) {
	if !stcg.IsNegative() || !ltcg.IsPositive() {
		return decimal.Zero, stcg, ltcg
	}
	setOff = decimal.Min(stcg.Abs(), ltcg)
	return setOff, stcg.Add(setOff), ltcg.Sub(setOff)
}

func floorZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

func (te *TaxEngine) logger() Logger {
	if te.Logger == nil {
		return NopLogger{}
	}
	return te.Logger
}
