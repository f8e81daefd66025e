package output

import (
	"github.com/shopspring/decimal"
	money "github.com/taxplan/planner/pkg/decimal"
)

// FormatCurrency formats a decimal as rupees with Indian digit grouping, e.g. ₹12,34,567.89.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount decimal.Decimal) string {
	return money.NewMoneyFromDecimal(amount).Format()
}

// FormatPercentage formats a decimal that is already a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// FormatRate formats a fractional rate (0.125) as a percentage ("12.50%").
func FormatRate(rate decimal.Decimal) string { return FormatPercentage(rate.Mul(decimalHundred)) }

var decimalHundred = decimal.NewFromInt(100)
