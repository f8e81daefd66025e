package calculation

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
	"github.com/taxplan/planner/internal/domain"
)

var (
	// ErrNonFiniteAmount is returned for NaN or infinite float inputs
	ErrNonFiniteAmount = errors.New("amount is not a finite number")
	// ErrNegativeIncome is returned by ValidateProfile for negative slab income
	ErrNegativeIncome = errors.New("income cannot be negative")
)

// FloatProfile is the float64 form of a profile as produced by loosely typed
// callers (forms, spreadsheets).
type FloatProfile struct {
	Salary         float64
	RentalIncome   float64
	FDIncome       float64
	BondIncome     float64
	DividendIncome float64
	STCG           float64
	LTCG           float64
	IsSalaried     bool
}

// ProfileFromFloat64 converts to exact decimals, failing fast on NaN or ±Inf
// so a non-number never reaches a displayed total.
func ProfileFromFloat64(fp FloatProfile) (domain.DetailedIncomeProfile, error) {
	fields := []struct {
		name string
		v    float64
	}{
		{"salary", fp.Salary},
		{"rental income", fp.RentalIncome},
		{"FD income", fp.FDIncome},
		{"bond income", fp.BondIncome},
		{"dividend income", fp.DividendIncome},
		{"STCG", fp.STCG},
		{"LTCG", fp.LTCG},
	}
	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return domain.DetailedIncomeProfile{}, fmt.Errorf("%s: %w", f.name, ErrNonFiniteAmount)
		}
	}
	return domain.DetailedIncomeProfile{
		Salary:         decimal.NewFromFloat(fp.Salary),
		RentalIncome:   decimal.NewFromFloat(fp.RentalIncome),
		FDIncome:       decimal.NewFromFloat(fp.FDIncome),
		BondIncome:     decimal.NewFromFloat(fp.BondIncome),
		DividendIncome: decimal.NewFromFloat(fp.DividendIncome),
		STCG:           decimal.NewFromFloat(fp.STCG),
		LTCG:           decimal.NewFromFloat(fp.LTCG),
		IsSalaried:     fp.IsSalaried,
	}, nil
}

// ValidateProfile is the caller-side boundary check: salary, interest and
// dividend income must be non-negative. Rental income may legitimately be
// negative (property tax above rent) and capital gains carry the sign of a loss.
// The engine itself never calls this.
func ValidateProfile(p domain.DetailedIncomeProfile) error {
	fields := []struct {
		name string
		v    decimal.Decimal
	}{
		{"salary", p.Salary},
		{"FD income", p.FDIncome},
		{"bond income", p.BondIncome},
		{"dividend income", p.DividendIncome},
	}
	for _, f := range fields {
		if f.v.IsNegative() {
			return fmt.Errorf("%s %s: %w", f.name, f.v.StringFixed(2), ErrNegativeIncome)
		}
	}
	return nil
}
