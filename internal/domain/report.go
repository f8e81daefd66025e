package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AdvanceTaxInstallment is one statutory due date and the amount payable on it
type AdvanceTaxInstallment struct {
	DueDate             time.Time       `yaml:"due_date" json:"due_date"`
	Amount              decimal.Decimal `yaml:"amount" json:"amount"`
	CumulativePercent   decimal.Decimal `yaml:"cumulative_percent" json:"cumulative_percent"`
	CumulativeAmountDue decimal.Decimal `yaml:"cumulative_amount_due" json:"cumulative_amount_due"`
}

// AdvanceTaxSchedule spreads the year's net liability over the installment dates
type AdvanceTaxSchedule struct {
	FinancialYear   string                  `yaml:"financial_year" json:"financial_year"`
	TotalTax        decimal.Decimal         `yaml:"total_tax" json:"total_tax"`
	TDSDeducted     decimal.Decimal         `yaml:"tds_deducted" json:"tds_deducted"`
	NetTaxLiability decimal.Decimal         `yaml:"net_tax_liability" json:"net_tax_liability"`
	Required        bool                    `yaml:"required" json:"required"`
	Installments    []AdvanceTaxInstallment `yaml:"installments,omitempty" json:"installments,omitempty"`
}

// Section54FResult is the exemption on long-term gains reinvested in a residential house
type Section54FResult struct {
	NetConsideration    decimal.Decimal `yaml:"net_consideration" json:"net_consideration"`
	CapitalGains        decimal.Decimal `yaml:"capital_gains" json:"capital_gains"`
	Exemption           decimal.Decimal `yaml:"exemption" json:"exemption"`
	TaxableCapitalGains decimal.Decimal `yaml:"taxable_capital_gains" json:"taxable_capital_gains"`
}

// TaxReport is everything a formatter needs to render one computation
type TaxReport struct {
	FinancialYear  string                `yaml:"financial_year" json:"financial_year"`
	// AssessmentYear is the year following FinancialYear, in which the income is assessed
	AssessmentYear string                `yaml:"assessment_year,omitempty" json:"assessment_year,omitempty"`
	GeneratedAt    time.Time             `yaml:"generated_at" json:"generated_at"`
	Profile        DetailedIncomeProfile `yaml:"profile" json:"profile"`
	Result         TaxComputationResult  `yaml:"result" json:"result"`
	Rental         RentalSummary         `yaml:"rental" json:"rental"`
	Rules          TaxRules              `yaml:"rules" json:"rules"`
	AdvanceTax     *AdvanceTaxSchedule   `yaml:"advance_tax,omitempty" json:"advance_tax,omitempty"`
	Assumptions    []string              `yaml:"assumptions" json:"assumptions"`
}
