package calculation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taxplan/planner/internal/domain"
)

func fixedNow(t *testing.T) time.Time {
	t.Helper()
	now := time.Date(2025, time.November, 3, 10, 0, 0, 0, time.UTC)
	SetNowFunc(func() time.Time { return now })
	t.Cleanup(func() { SetNowFunc(time.Now) })
	return now
}

type recordingLogger struct {
	NopLogger
	infos int
	warns int
}

func (l *recordingLogger) Infof(format string, args ...any) { l.infos++ }
func (l *recordingLogger) Warnf(format string, args ...any) { l.warns++ }

func TestRunLedger(t *testing.T) {
	now := fixedNow(t)
	ledger := &domain.IncomeLedger{
		FinancialYear: "2025-26",
		Salary:        d("1500000"),
		DematAccounts: []domain.CapitalGainsAccount{{Name: "Zerodha", LTCG: d("300000")}},
	}
	logger := &recordingLogger{}
	engine := NewCalculationEngine()
	engine.SetLogger(logger)

	report, err := engine.RunLedger(context.Background(), ledger, ReportOptions{TDSDeducted: d("100000")})
	require.NoError(t, err)

	assert.Equal(t, "2025-26", report.FinancialYear)
	assert.Equal(t, "2026-27", report.AssessmentYear)
	assert.True(t, now.Equal(report.GeneratedAt))
	assert.True(t, report.Profile.IsSalaried)
	assertDecimal(t, d("120250"), report.Result.TotalTaxPayable, "total")
	require.NotNil(t, report.AdvanceTax)
	assertDecimal(t, d("20250"), report.AdvanceTax.NetTaxLiability, "advance tax net")
	assert.True(t, report.AdvanceTax.Required)
	assert.Equal(t, 2, logger.infos)
	assert.Zero(t, logger.warns)
}

func TestRunLedger_DividendOutsideYear(t *testing.T) {
	fixedNow(t)
	ledger := &domain.IncomeLedger{
		FinancialYear: "2025-26",
		Dividends: []domain.DividendEntry{
			{Particulars: "ITC LTD", Date: "2025-08-22", Amount: d("5000")},
			{Particulars: "COAL INDIA LTD", Date: "2026-04-06", Amount: d("3000")},
		},
	}
	logger := &recordingLogger{}
	engine := NewCalculationEngine()
	engine.SetLogger(logger)

	report, err := engine.RunLedger(context.Background(), ledger, ReportOptions{})
	require.NoError(t, err)
	assert.Equal(t, 1, logger.warns)
	assertDecimal(t, d("8000"), report.Profile.DividendIncome, "dividends")
}

func TestRunLedger_Options(t *testing.T) {
	fixedNow(t)
	engine := NewCalculationEngine()
	ledger := &domain.IncomeLedger{Salary: d("800000")}

	report, err := engine.RunLedger(context.Background(), ledger, ReportOptions{SkipAdvanceTax: true})
	require.NoError(t, err)
	assert.Nil(t, report.AdvanceTax)
	// falls back to the rules' year
	assert.Equal(t, "2025-26", report.FinancialYear)

	report, err = engine.RunLedger(context.Background(), ledger, ReportOptions{FinancialYear: "FY 2026-27"})
	require.NoError(t, err)
	assert.Equal(t, "2026-27", report.FinancialYear)
	assert.False(t, report.AdvanceTax.Required)
}

func TestRunLedger_Errors(t *testing.T) {
	engine := NewCalculationEngine()

	_, err := engine.RunLedger(context.Background(), nil, ReportOptions{})
	assert.Error(t, err)

	_, err = engine.RunLedger(context.Background(), &domain.IncomeLedger{}, ReportOptions{FinancialYear: "2025-27"})
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = engine.RunLedger(ctx, &domain.IncomeLedger{}, ReportOptions{})
	assert.ErrorIs(t, err, context.Canceled)

	rules := domain.DefaultTaxRules()
	rules.CessRate = d("1.5")
	_, err = engine.RunLedger(context.Background(), &domain.IncomeLedger{Rules: &rules}, ReportOptions{})
	assert.ErrorIs(t, err, domain.ErrInvalidRules)
}

func TestRunLedger_CustomRules(t *testing.T) {
	fixedNow(t)
	rules := domain.DefaultTaxRules()
	rules.LTCGExemption = d("150000")
	ledger := &domain.IncomeLedger{MutualFunds: []domain.CapitalGainsAccount{{Name: "Flexi cap", LTCG: d("150000")}}, Rules: &rules}

	report, err := NewCalculationEngine().RunLedger(context.Background(), ledger, ReportOptions{})
	require.NoError(t, err)
	assertDecimal(t, d("0"), report.Result.TotalTaxPayable, "total")
}
