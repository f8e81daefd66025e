package dateutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FinancialYear identifies an Indian financial year (1 April to 31 March) by the
// calendar year in which it starts: FinancialYear(2025) is FY 2025-26.
type FinancialYear int

// FinancialYearOf returns the financial year containing t
func FinancialYearOf(t time.Time) FinancialYear {
	if t.Month() < time.April {
		return FinancialYear(t.Year() - 1)
	}
	return FinancialYear(t.Year())
}

// Start returns 1 April of the financial year
func (fy FinancialYear) Start() time.Time {
	return time.Date(int(fy), time.April, 1, 0, 0, 0, 0, time.UTC)
}

// End returns 31 March of the following calendar year
func (fy FinancialYear) End() time.Time {
	return time.Date(int(fy)+1, time.March, 31, 0, 0, 0, 0, time.UTC)
}

// Label formats the year as "2025-26"
func (fy FinancialYear) Label() string {
	return fmt.Sprintf("%d-%02d", int(fy), (int(fy)+1)%100)
}

// AssessmentYearLabel is the year in which income of fy is assessed, e.g. "2026-27"
func (fy FinancialYear) AssessmentYearLabel() string {
	return (fy + 1).Label()
}

// String implements fmt.Stringer
func (fy FinancialYear) String() string {
	return "FY " + fy.Label()
}

// Contains reports whether t falls inside the financial year
func (fy FinancialYear) Contains(t time.Time) bool {
	return FinancialYearOf(t) == fy
}

// ParseFinancialYear accepts "2025-26", "2025-2026", "FY 2025-26" or "2025"
func ParseFinancialYear(s string) (FinancialYear, error) {
	v := strings.TrimSpace(strings.ToUpper(s))
	v = strings.TrimSpace(strings.TrimPrefix(v, "FY"))
	if v == "" {
		return 0, fmt.Errorf("invalid financial year %q", s)
	}
	parts := strings.Split(v, "-")
	if len(parts) > 2 {
		return 0, fmt.Errorf("invalid financial year %q", s)
	}
	start, err := strconv.Atoi(parts[0])
	if err != nil || start < 1900 || start > 9998 {
		return 0, fmt.Errorf("invalid financial year %q", s)
	}
	if len(parts) == 2 {
		end, err := strconv.Atoi(parts[1])
		if err != nil {
			return 0, fmt.Errorf("invalid financial year %q", s)
		}
		switch len(parts[1]) {
		case 2:
			if end != (start+1)%100 {
				return 0, fmt.Errorf("financial year %q must span consecutive years", s)
			}
		case 4:
			if end != start+1 {
				return 0, fmt.Errorf("financial year %q must span consecutive years", s)
			}
		default:
			return 0, fmt.Errorf("invalid financial year %q", s)
		}
	}
	return FinancialYear(start), nil
}

// AdvanceTaxDueDates returns the four advance tax installment dates of the year:
// 15 June, 15 September, 15 December and 15 March.
func AdvanceTaxDueDates(fy FinancialYear) []time.Time {
	y := int(fy)
	return []time.Time{
		time.Date(y, time.June, 15, 0, 0, 0, 0, time.UTC),
		time.Date(y, time.September, 15, 0, 0, 0, 0, time.UTC),
		time.Date(y, time.December, 15, 0, 0, 0, 0, time.UTC),
		time.Date(y+1, time.March, 15, 0, 0, 0, 0, time.UTC),
	}
}
