package calculation

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/taxplan/planner/internal/domain"
	"github.com/taxplan/planner/pkg/dateutil"
)

// houseProperty30 is the flat deduction on net annual value of let-out property
var houseProperty30 = decimal.NewFromFloat(0.30)

// SummarizeRental computes the house property income of one or more properties.
// Interest on a housing loan is reported but not deducted.
func SummarizeRental(properties []domain.RentalProperty) domain.RentalSummary {
	var s domain.RentalSummary
	for _, p := range properties {
		gav := p.MonthlyRent.Mul(p.MonthsRented)
		nav := gav.Sub(p.PropertyTax)
		deduction := decimal.Zero
		if nav.IsPositive() {
			deduction = nav.Mul(houseProperty30)
		}
		s.GrossAnnualValue = s.GrossAnnualValue.Add(gav)
		s.PropertyTax = s.PropertyTax.Add(p.PropertyTax)
		s.NetAnnualValue = s.NetAnnualValue.Add(nav)
		s.StandardDeduction30 = s.StandardDeduction30.Add(deduction)
		s.InterestOnLoan = s.InterestOnLoan.Add(p.InterestOnLoan)
		s.NetIncome = s.NetIncome.Add(nav.Sub(deduction))
	}
	return s
}

// AggregateLedger flattens a ledger into the per-category totals the engine consumes.
func AggregateLedger(ledger *domain.IncomeLedger) (domain.DetailedIncomeProfile, domain.RentalSummary, error) {
	if ledger == nil {
		return domain.DetailedIncomeProfile{}, domain.RentalSummary{}, fmt.Errorf("aggregate: ledger is nil")
	}

	rental := SummarizeRental(ledger.RentalProperties)
	profile := domain.DetailedIncomeProfile{
		Salary:       ledger.Salary,
		RentalIncome: rental.NetIncome,
		IsSalaried:   ledger.Salaried(),
	}

	for _, fd := range ledger.FixedDeposits {
		profile.FDIncome = profile.FDIncome.Add(fd.Interest)
	}
	for _, b := range ledger.Bonds {
		profile.BondIncome = profile.BondIncome.Add(b.Income)
	}
	for _, d := range ledger.Dividends {
		profile.DividendIncome = profile.DividendIncome.Add(d.Amount)
	}
	for _, accounts := range [][]domain.CapitalGainsAccount{ledger.DematAccounts, ledger.MutualFunds} {
		for _, a := range accounts {
			profile.STCG = profile.STCG.Add(a.STCG)
			profile.LTCG = profile.LTCG.Add(a.LTCG)
		}
	}

	if err := ValidateProfile(profile); err != nil {
		return domain.DetailedIncomeProfile{}, rental, fmt.Errorf("aggregate: %w", err)
	}
	return profile, rental, nil
}

// DividendsOutsideYear returns the dividend entries dated outside fy. Entries
// whose date does not parse as YYYY-MM-DD are left out.
func DividendsOutsideYear(ledger *domain.IncomeLedger, fy dateutil.FinancialYear) []domain.DividendEntry {
	var out []domain.DividendEntry
	for _, d := range ledger.Dividends {
		t, err := time.Parse(time.DateOnly, d.Date)
		if err != nil {
			continue
		}
		if !fy.Contains(t) {
			out = append(out, d)
		}
	}
	return out
}
