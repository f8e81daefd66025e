package domain

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Category names one persisted collection of income records
type Category string

const (
	CategorySalary       Category = "salary"
	CategoryRental       Category = "rental"
	CategoryFD           Category = "fd"
	CategoryBonds        Category = "bonds"
	CategoryDividends    Category = "dividends"
	CategoryDemat        Category = "demat"
	CategoryMutualFunds  Category = "mutual-funds"
	categoryKeyNamespace          = "taxplan"
)

var categoryKeys = map[Category]string{
	CategorySalary:      "salary-income",
	CategoryRental:      "rental-income",
	CategoryFD:          "fd-income",
	CategoryBonds:       "bonds-income",
	CategoryDividends:   "dividends",
	CategoryDemat:       "demat-gains",
	CategoryMutualFunds: "mutual-fund-gains",
}

var categoryAliases = map[string]Category{
	"salary":            CategorySalary,
	"rent":              CategoryRental,
	"rental":            CategoryRental,
	"rental-income":     CategoryRental,
	"fd":                CategoryFD,
	"fds":               CategoryFD,
	"fixed-deposits":    CategoryFD,
	"bond":              CategoryBonds,
	"bonds":             CategoryBonds,
	"dividend":          CategoryDividends,
	"dividends":         CategoryDividends,
	"demat":             CategoryDemat,
	"demat-gains":       CategoryDemat,
	"mf":                CategoryMutualFunds,
	"mutual-funds":      CategoryMutualFunds,
	"mutual-fund-gains": CategoryMutualFunds,
}

// StorageKey returns the key under which the category is persisted
func (c Category) StorageKey() string {
	return categoryKeyNamespace + ":" + categoryKeys[c]
}

// ParseCategory resolves a user supplied category name or alias
func ParseCategory(s string) (Category, error) {
	if c, ok := categoryAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return c, nil
	}
	return "", fmt.Errorf("unknown income category %q (known: %s)", s, strings.Join(CategoryNames(), ", "))
}

// RecordCategories lists the categories that hold record collections
func RecordCategories() []Category {
	return []Category{CategoryRental, CategoryFD, CategoryBonds, CategoryDividends, CategoryDemat, CategoryMutualFunds}
}

// CategoryNames returns the canonical category names, sorted
func CategoryNames() []string {
	names := make([]string, 0, len(categoryKeys))
	for c := range categoryKeys {
		names = append(names, string(c))
	}
	sort.Strings(names)
	return names
}

// RentalProperty is one let-out property
type RentalProperty struct {
	ID             string          `yaml:"id,omitempty" json:"id,omitempty"`
	Name           string          `yaml:"name,omitempty" json:"name,omitempty"`
	MonthlyRent    decimal.Decimal `yaml:"monthly_rent" json:"monthlyRent" validate:"gte=0"`
	MonthsRented   decimal.Decimal `yaml:"months_rented" json:"monthsRented" validate:"gte=0,lte=12"`
	PropertyTax    decimal.Decimal `yaml:"property_tax" json:"propertyTax" validate:"gte=0"`
	InterestOnLoan decimal.Decimal `yaml:"interest_on_loan" json:"interestOnLoan" validate:"gte=0"`
}

// FixedDeposit is interest earned on one deposit
type FixedDeposit struct {
	ID        string          `yaml:"id,omitempty" json:"id,omitempty"`
	BankName  string          `yaml:"bank_name" json:"bankName" validate:"required"`
	AccountNo string          `yaml:"account_no,omitempty" json:"accountNo,omitempty"`
	Interest  decimal.Decimal `yaml:"interest" json:"interest" validate:"gte=0"`
}

// Bond is interest earned on one bond holding
type Bond struct {
	ID     string          `yaml:"id,omitempty" json:"id,omitempty"`
	Name   string          `yaml:"name" json:"name" validate:"required"`
	ISIN   string          `yaml:"isin,omitempty" json:"isin,omitempty" validate:"omitempty,len=12,alphanum"`
	Income decimal.Decimal `yaml:"income" json:"income" validate:"gte=0"`
}

// DividendEntry is one dividend credit from a broker or PMS statement
type DividendEntry struct {
	ID          string          `yaml:"id,omitempty" json:"id,omitempty"`
	Source      string          `yaml:"source" json:"source" validate:"required"`
	Date        string          `yaml:"date" json:"date" validate:"required"`
	Particulars string          `yaml:"particulars" json:"particulars" validate:"required"`
	Amount      decimal.Decimal `yaml:"amount" json:"amount" validate:"gte=0"`
}

// CapitalGainsAccount holds realised gains of one demat account or mutual fund.
// STCG and LTCG are signed; a negative value is a loss.
type CapitalGainsAccount struct {
	ID   string          `yaml:"id,omitempty" json:"id,omitempty"`
	Name string          `yaml:"name" json:"name" validate:"required"`
	STCG decimal.Decimal `yaml:"stcg" json:"stcg"`
	LTCG decimal.Decimal `yaml:"ltcg" json:"ltcg"`
}

// IncomeLedger is everything recorded for one taxpayer and year
type IncomeLedger struct {
	FinancialYear string          `yaml:"financial_year,omitempty" json:"financial_year,omitempty"`
	Salary        decimal.Decimal `yaml:"salary" json:"salary" validate:"gte=0"`
	// IsSalaried overrides the default of "salaried when salary is positive".
	IsSalaried       *bool                 `yaml:"is_salaried,omitempty" json:"is_salaried,omitempty"`
	RentalProperties []RentalProperty      `yaml:"rental_properties,omitempty" json:"rental_properties,omitempty" validate:"dive"`
	FixedDeposits    []FixedDeposit        `yaml:"fixed_deposits,omitempty" json:"fixed_deposits,omitempty" validate:"dive"`
	Bonds            []Bond                `yaml:"bonds,omitempty" json:"bonds,omitempty" validate:"dive"`
	Dividends        []DividendEntry       `yaml:"dividends,omitempty" json:"dividends,omitempty" validate:"dive"`
	DematAccounts    []CapitalGainsAccount `yaml:"demat_accounts,omitempty" json:"demat_accounts,omitempty" validate:"dive"`
	MutualFunds      []CapitalGainsAccount `yaml:"mutual_funds,omitempty" json:"mutual_funds,omitempty" validate:"dive"`
	Rules            *TaxRules             `yaml:"rules,omitempty" json:"rules,omitempty"`
}

// Salaried resolves the standard deduction eligibility flag
func (l *IncomeLedger) Salaried() bool {
	if l.IsSalaried != nil {
		return *l.IsSalaried
	}
	return l.Salary.IsPositive()
}

// EffectiveRules returns the ledger's rule override or the canonical defaults
func (l *IncomeLedger) EffectiveRules() TaxRules {
	if l.Rules != nil {
		return *l.Rules
	}
	return DefaultTaxRules()
}

// RecordCount returns the number of records held for c
func (l *IncomeLedger) RecordCount(c Category) int {
	switch c {
	case CategoryRental:
		return len(l.RentalProperties)
	case CategoryFD:
		return len(l.FixedDeposits)
	case CategoryBonds:
		return len(l.Bonds)
	case CategoryDividends:
		return len(l.Dividends)
	case CategoryDemat:
		return len(l.DematAccounts)
	case CategoryMutualFunds:
		return len(l.MutualFunds)
	case CategorySalary:
		if l.Salary.IsZero() {
			return 0
		}
		return 1
	}
	return 0
}

// RentalSummary totals the house property computation across all properties
type RentalSummary struct {
	GrossAnnualValue    decimal.Decimal `yaml:"gross_annual_value" json:"gross_annual_value"`
	PropertyTax         decimal.Decimal `yaml:"property_tax" json:"property_tax"`
	NetAnnualValue      decimal.Decimal `yaml:"net_annual_value" json:"net_annual_value"`
	StandardDeduction30 decimal.Decimal `yaml:"standard_deduction_30" json:"standard_deduction_30"`
	InterestOnLoan      decimal.Decimal `yaml:"interest_on_loan" json:"interest_on_loan"`
	NetIncome           decimal.Decimal `yaml:"net_income" json:"net_income"`
}
