package decimal

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Money represents a rupee amount with exact paise precision
type Money struct {
	decimal.Decimal
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// NewMoneyFromString creates a new Money instance from a string.
// Indian digit grouping ("12,34,567.50") and a leading rupee sign are accepted.
func NewMoneyFromString(value string) (Money, error) {
	clean := strings.TrimSpace(value)
	clean = strings.TrimPrefix(clean, "₹")
	clean = strings.ReplaceAll(clean, ",", "")
	d, err := decimal.NewFromString(strings.TrimSpace(clean))
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// String returns the plain two-decimal representation
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format renders the amount in rupees with Indian digit grouping, e.g. ₹12,34,567.89
func (m Money) Format() string {
	return "₹" + GroupIndian(m.Decimal)
}

// GroupIndian formats d with two decimals and lakh/crore grouping: the last
// three integer digits form one group, every earlier group has two digits.
func GroupIndian(d decimal.Decimal) string {
	s := d.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}
	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}
	if len(intPart) <= 3 {
		return sign + intPart + frac
	}
	head, tail := intPart[:len(intPart)-3], intPart[len(intPart)-3:]
	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	return sign + strings.Join(groups, ",") + "," + tail + frac
}
