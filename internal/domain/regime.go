package domain

import (
	"github.com/shopspring/decimal"
)

// Regime names a tax regime, or both when they cost the same
type Regime string

const (
	RegimeNew    Regime = "new"
	RegimeOld    Regime = "old"
	RegimeEither Regime = "either"
)

// OldRegimeDeductions are the claims only the old regime allows. Amounts are
// as claimed; caps are applied by the computation.
type OldRegimeDeductions struct {
	Section80C       decimal.Decimal `yaml:"section_80c" json:"section_80c" validate:"gte=0"`
	Section80D       decimal.Decimal `yaml:"section_80d" json:"section_80d" validate:"gte=0"`
	HomeLoanInterest decimal.Decimal `yaml:"home_loan_interest" json:"home_loan_interest" validate:"gte=0"`
	Other            decimal.Decimal `yaml:"other" json:"other" validate:"gte=0"`
}

// OldRegimeRules holds the old-regime constants that differ from TaxRules.
// Capital gains rates, surcharge and cess are shared with the new regime.
type OldRegimeRules struct {
	StandardDeduction   decimal.Decimal `yaml:"standard_deduction" json:"standard_deduction"`
	Section80CCap       decimal.Decimal `yaml:"section_80c_cap" json:"section_80c_cap"`
	HomeLoanInterestCap decimal.Decimal `yaml:"home_loan_interest_cap" json:"home_loan_interest_cap"`
	RebateThreshold     decimal.Decimal `yaml:"rebate_threshold" json:"rebate_threshold"`
	RebateCap           decimal.Decimal `yaml:"rebate_cap" json:"rebate_cap"`
	SlabBands           []SlabBand      `yaml:"slab_bands" json:"slab_bands"`
}

// DefaultOldRegimeRules returns the old-regime schedule for an individual below 60
func DefaultOldRegimeRules() OldRegimeRules {
	return OldRegimeRules{
		StandardDeduction:   decimal.NewFromInt(50000),
		Section80CCap:       decimal.NewFromInt(150000),
		HomeLoanInterestCap: lakh(2),
		RebateThreshold:     lakh(5),
		RebateCap:           decimal.NewFromInt(12500),
		SlabBands: []SlabBand{
			{Min: decimal.Zero, Max: decimal.NewFromInt(250000), Rate: decimal.Zero},
			{Min: decimal.NewFromInt(250000), Max: lakh(5), Rate: rate("0.05")},
			{Min: lakh(5), Max: lakh(10), Rate: rate("0.20")},
			{Min: lakh(10), Max: decimal.Zero, Rate: rate("0.30")},
		},
	}
}

// OldRegimeResult is the old-regime breakdown of one profile
type OldRegimeResult struct {
	GrossSlabIncome   decimal.Decimal `yaml:"gross_slab_income" json:"gross_slab_income"`
	StandardDeduction decimal.Decimal `yaml:"standard_deduction" json:"standard_deduction"`
	// Section80C and HomeLoanInterest are the allowed amounts, after their caps.
	Section80C           decimal.Decimal `yaml:"section_80c" json:"section_80c"`
	Section80D           decimal.Decimal `yaml:"section_80d" json:"section_80d"`
	HomeLoanInterest     decimal.Decimal `yaml:"home_loan_interest" json:"home_loan_interest"`
	OtherDeductions      decimal.Decimal `yaml:"other_deductions" json:"other_deductions"`
	TotalDeductions      decimal.Decimal `yaml:"total_deductions" json:"total_deductions"`
	NetTaxableSlabIncome decimal.Decimal `yaml:"net_taxable_slab_income" json:"net_taxable_slab_income"`
	SlabTax              decimal.Decimal `yaml:"slab_tax" json:"slab_tax"`
	Rebate               decimal.Decimal `yaml:"rebate" json:"rebate"`
	SlabTaxAfterRebate   decimal.Decimal `yaml:"slab_tax_after_rebate" json:"slab_tax_after_rebate"`

	TotalCapitalGainsTax    decimal.Decimal `yaml:"total_capital_gains_tax" json:"total_capital_gains_tax"`
	TotalTaxBeforeSurcharge decimal.Decimal `yaml:"total_tax_before_surcharge" json:"total_tax_before_surcharge"`
	TotalIncome             decimal.Decimal `yaml:"total_income" json:"total_income"`
	Surcharge               decimal.Decimal `yaml:"surcharge" json:"surcharge"`
	Cess                    decimal.Decimal `yaml:"cess" json:"cess"`
	TotalTaxPayable         decimal.Decimal `yaml:"total_tax_payable" json:"total_tax_payable"`
}

// RegimeComparison puts the same profile through both regimes
type RegimeComparison struct {
	Profile     DetailedIncomeProfile `yaml:"profile" json:"profile"`
	Deductions  OldRegimeDeductions   `yaml:"deductions" json:"deductions"`
	OldRegime   OldRegimeResult       `yaml:"old_regime" json:"old_regime"`
	NewRegime   TaxComputationResult  `yaml:"new_regime" json:"new_regime"`
	Recommended Regime                `yaml:"recommended" json:"recommended"`
	// Savings is how much less the recommended regime costs; zero on a tie.
	Savings decimal.Decimal `yaml:"savings" json:"savings"`
}
