package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taxplan/planner/internal/domain"
	"github.com/taxplan/planner/pkg/dateutil"
)

func sampleLedger() *domain.IncomeLedger {
	return &domain.IncomeLedger{
		Salary: d("1500000"),
		RentalProperties: []domain.RentalProperty{
			{Name: "Flat A", MonthlyRent: d("25000"), MonthsRented: d("12"), PropertyTax: d("20000"), InterestOnLoan: d("150000")},
			{Name: "Shop", MonthlyRent: d("5000"), MonthsRented: d("2"), PropertyTax: d("15000")},
		},
		FixedDeposits: []domain.FixedDeposit{
			{BankName: "SBI", Interest: d("40000")},
			{BankName: "HDFC", Interest: d("20000")},
		},
		Bonds: []domain.Bond{{Name: "REC 2030", Income: d("25000")}},
		Dividends: []domain.DividendEntry{
			{Source: "pms", Date: "2025-07-01", Particulars: "INFY", Amount: d("12000")},
			{Source: "broker1", Date: "2025-08-12", Particulars: "TCS", Amount: d("3000")},
		},
		DematAccounts: []domain.CapitalGainsAccount{{Name: "Zerodha", STCG: d("50000"), LTCG: d("100000")}},
		MutualFunds:   []domain.CapitalGainsAccount{{Name: "Index fund", STCG: d("-20000"), LTCG: d("80000")}},
	}
}

func TestSummarizeRental(t *testing.T) {
	s := SummarizeRental(sampleLedger().RentalProperties)

	assertDecimal(t, d("310000"), s.GrossAnnualValue, "gross annual value")
	assertDecimal(t, d("35000"), s.PropertyTax, "property tax")
	assertDecimal(t, d("275000"), s.NetAnnualValue, "net annual value")
	// the shop's negative NAV earns no 30% deduction
	assertDecimal(t, d("84000"), s.StandardDeduction30, "30% deduction")
	assertDecimal(t, d("150000"), s.InterestOnLoan, "interest on loan")
	assertDecimal(t, d("191000"), s.NetIncome, "net income")
}

func TestAggregateLedger(t *testing.T) {
	profile, rental, err := AggregateLedger(sampleLedger())
	require.NoError(t, err)

	assertDecimal(t, d("1500000"), profile.Salary, "salary")
	assertDecimal(t, rental.NetIncome, profile.RentalIncome, "rental")
	assertDecimal(t, d("60000"), profile.FDIncome, "fd")
	assertDecimal(t, d("25000"), profile.BondIncome, "bonds")
	assertDecimal(t, d("15000"), profile.DividendIncome, "dividends")
	assertDecimal(t, d("30000"), profile.STCG, "stcg")
	assertDecimal(t, d("180000"), profile.LTCG, "ltcg")
	assert.True(t, profile.IsSalaried)
}

func TestAggregateLedger_SalariedFlag(t *testing.T) {
	no := false
	tests := []struct {
		name     string
		ledger   *domain.IncomeLedger
		salaried bool
	}{
		{"positive salary defaults to salaried", &domain.IncomeLedger{Salary: d("100")}, true},
		{"no salary is not salaried", &domain.IncomeLedger{}, false},
		{"explicit override wins", &domain.IncomeLedger{Salary: d("100"), IsSalaried: &no}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _, err := AggregateLedger(tt.ledger)
			require.NoError(t, err)
			assert.Equal(t, tt.salaried, p.IsSalaried)
		})
	}
}

func TestAggregateLedger_Errors(t *testing.T) {
	_, _, err := AggregateLedger(nil)
	assert.Error(t, err)

	_, _, err = AggregateLedger(&domain.IncomeLedger{FixedDeposits: []domain.FixedDeposit{{BankName: "X", Interest: d("-5")}}})
	assert.ErrorIs(t, err, ErrNegativeIncome)
}

func TestDividendsOutsideYear(t *testing.T) {
	ledger := &domain.IncomeLedger{Dividends: []domain.DividendEntry{
		{Particulars: "first day", Date: "2025-04-01", Amount: d("100")},
		{Particulars: "last day", Date: "2026-03-31", Amount: d("100")},
		{Particulars: "prior year", Date: "2025-03-31", Amount: d("100")},
		{Particulars: "next year", Date: "2026-04-01", Amount: d("100")},
		{Particulars: "unparsable", Date: "18/07/2025", Amount: d("100")},
	}}
	out := DividendsOutsideYear(ledger, dateutil.FinancialYear(2025))
	require.Len(t, out, 2)
	assert.Equal(t, "prior year", out[0].Particulars)
	assert.Equal(t, "next year", out[1].Particulars)

	assert.Empty(t, DividendsOutsideYear(&domain.IncomeLedger{}, dateutil.FinancialYear(2025)))
}
