package calculation

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/taxplan/planner/internal/domain"
	"github.com/taxplan/planner/pkg/dateutil"
)

// ReportOptions controls the optional parts of a report
type ReportOptions struct {
	// FinancialYear defaults to the rules' year, then to the current year.
	FinancialYear string
	// TDSDeducted is tax already withheld at source, used for the advance tax schedule.
	TDSDeducted decimal.Decimal
	// SkipAdvanceTax omits the advance tax schedule.
	SkipAdvanceTax bool
}

// CalculationEngine orchestrates a full ledger computation: aggregation, tax
// engine and advance tax schedule.
type CalculationEngine struct {
	Logger Logger
}

// NewCalculationEngine creates a new calculation engine
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// RunLedger computes the tax report for a ledger using the ledger's rules
func (ce *CalculationEngine) RunLedger(ctx context.Context, ledger *domain.IncomeLedger, opts ReportOptions) (*domain.TaxReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if ledger == nil {
		return nil, fmt.Errorf("ledger is nil")
	}

	rules := ledger.EffectiveRules()
	te, err := NewTaxEngineWithRules(rules)
	if err != nil {
		return nil, err
	}
	te.SetLogger(ce.Logger)

	fy, err := resolveFinancialYear(opts.FinancialYear, ledger.FinancialYear, rules.FinancialYear)
	if err != nil {
		return nil, err
	}

	profile, rental, err := AggregateLedger(ledger)
	if err != nil {
		return nil, err
	}
	for _, d := range DividendsOutsideYear(ledger, fy) {
		ce.Logger.Warnf("dividend %s dated %s falls outside %s and is still counted", d.Particulars, d.Date, fy)
	}
	ce.Logger.Infof("computing %s: slab income %s, stcg %s, ltcg %s", fy, profile.SlabIncome().StringFixed(2), profile.STCG.StringFixed(2), profile.LTCG.StringFixed(2))

	result := te.ComputeTax(profile)
	report := &domain.TaxReport{
		FinancialYear:  fy.Label(),
		AssessmentYear: fy.AssessmentYearLabel(),
		GeneratedAt:    nowFunc(),
		Profile:        profile,
		Result:         result,
		Rental:         rental,
		Rules:          rules,
	}
	if !opts.SkipAdvanceTax {
		report.AdvanceTax = ComputeAdvanceTax(result.TotalTaxPayable, opts.TDSDeducted, fy)
	}
	ce.Logger.Infof("total tax payable %s", result.TotalTaxPayable.StringFixed(2))
	return report, nil
}

// resolveFinancialYear returns the first non-empty label parsed, or the
// financial year containing now.
func resolveFinancialYear(labels ...string) (dateutil.FinancialYear, error) {
	for _, l := range labels {
		if l == "" {
			continue
		}
		fy, err := dateutil.ParseFinancialYear(l)
		if err != nil {
			return 0, fmt.Errorf("invalid financial year: %w", err)
		}
		return fy, nil
	}
	return dateutil.FinancialYearOf(nowFunc()), nil
}
