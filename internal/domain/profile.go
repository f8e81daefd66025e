package domain

import (
	"github.com/shopspring/decimal"
)

// DetailedIncomeProfile is the flattened, per-category total of a taxpayer's
// income for one financial year. It is built fresh for every computation.
type DetailedIncomeProfile struct {
	Salary decimal.Decimal `yaml:"salary" json:"salary"`
	// RentalIncome is net of property tax and the 30% house property deduction.
	RentalIncome   decimal.Decimal `yaml:"rental_income" json:"rental_income"`
	FDIncome       decimal.Decimal `yaml:"fd_income" json:"fd_income"`
	BondIncome     decimal.Decimal `yaml:"bond_income" json:"bond_income"`
	DividendIncome decimal.Decimal `yaml:"dividend_income" json:"dividend_income"`
	// STCG is negative when the year closed with a short-term capital loss.
	STCG       decimal.Decimal `yaml:"stcg" json:"stcg"`
	LTCG       decimal.Decimal `yaml:"ltcg" json:"ltcg"`
	IsSalaried bool            `yaml:"is_salaried" json:"is_salaried"`
}

// SlabIncome returns the sum of all income taxed at slab rates
func (p DetailedIncomeProfile) SlabIncome() decimal.Decimal {
	return p.Salary.Add(p.RentalIncome).Add(p.FDIncome).Add(p.BondIncome).Add(p.DividendIncome)
}

// TaxComputationResult is the full breakdown produced by the tax engine.
// Every amount is in rupees and unrounded.
type TaxComputationResult struct {
	GrossSlabIncome decimal.Decimal `yaml:"gross_slab_income" json:"gross_slab_income"`
	OriginalSTCG    decimal.Decimal `yaml:"original_stcg" json:"original_stcg"`
	OriginalLTCG    decimal.Decimal `yaml:"original_ltcg" json:"original_ltcg"`

	StandardDeduction    decimal.Decimal `yaml:"standard_deduction" json:"standard_deduction"`
	NetTaxableSlabIncome decimal.Decimal `yaml:"net_taxable_slab_income" json:"net_taxable_slab_income"`
	IsRebateApplicable   bool            `yaml:"is_rebate_applicable" json:"is_rebate_applicable"`
	// BracketTax is the marginal band tax on net slab income, before any rebate.
	BracketTax decimal.Decimal `yaml:"bracket_tax" json:"bracket_tax"`
	// SlabTaxBeforeRebate is the slab tax that enters the payable total: zero
	// when the rebate applies, BracketTax otherwise.
	SlabTaxBeforeRebate decimal.Decimal `yaml:"slab_tax_before_rebate" json:"slab_tax_before_rebate"`
	Rebate              decimal.Decimal `yaml:"rebate" json:"rebate"`
	SlabTaxAfterRebate  decimal.Decimal `yaml:"slab_tax_after_rebate" json:"slab_tax_after_rebate"`

	STCLSetOff           decimal.Decimal `yaml:"stcl_set_off" json:"stcl_set_off"`
	PostSetOffSTCG       decimal.Decimal `yaml:"post_set_off_stcg" json:"post_set_off_stcg"`
	PostSetOffLTCG       decimal.Decimal `yaml:"post_set_off_ltcg" json:"post_set_off_ltcg"`
	STCGForTax           decimal.Decimal `yaml:"stcg_for_tax" json:"stcg_for_tax"`
	LTCGForTax           decimal.Decimal `yaml:"ltcg_for_tax" json:"ltcg_for_tax"`
	LTCGExemption        decimal.Decimal `yaml:"ltcg_exemption" json:"ltcg_exemption"`
	TaxableLTCG          decimal.Decimal `yaml:"taxable_ltcg" json:"taxable_ltcg"`
	LTCGTax              decimal.Decimal `yaml:"ltcg_tax" json:"ltcg_tax"`
	STCGTax              decimal.Decimal `yaml:"stcg_tax" json:"stcg_tax"`
	TotalCapitalGainsTax decimal.Decimal `yaml:"total_capital_gains_tax" json:"total_capital_gains_tax"`

	TotalTaxBeforeSurcharge decimal.Decimal `yaml:"total_tax_before_surcharge" json:"total_tax_before_surcharge"`
	TotalIncomeForSurcharge decimal.Decimal `yaml:"total_income_for_surcharge" json:"total_income_for_surcharge"`
	Surcharge               decimal.Decimal `yaml:"surcharge" json:"surcharge"`
	TaxBeforeCess           decimal.Decimal `yaml:"tax_before_cess" json:"tax_before_cess"`
	Cess                    decimal.Decimal `yaml:"cess" json:"cess"`
	TotalTaxPayable         decimal.Decimal `yaml:"total_tax_payable" json:"total_tax_payable"`
}

// IncomeTax is the slab-side share of the payable total, including its share
// of surcharge and cess. Used for the "income tax vs capital gains" split in reports.
func (r TaxComputationResult) IncomeTax() decimal.Decimal {
	return r.TotalTaxPayable.Sub(r.CapitalGainsTaxWithLevies())
}

// CapitalGainsTaxWithLevies scales the capital gains tax by the same surcharge
// and cess factors applied to the combined total.
func (r TaxComputationResult) CapitalGainsTaxWithLevies() decimal.Decimal {
	if r.TotalTaxBeforeSurcharge.IsZero() {
		return decimal.Zero
	}
	factor := r.TotalTaxPayable.Div(r.TotalTaxBeforeSurcharge)
	return r.TotalCapitalGainsTax.Mul(factor)
}
