package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrInvalidRules is returned when a TaxRules set is internally inconsistent
var ErrInvalidRules = errors.New("invalid tax rules")

// SlabBand is one marginal bracket of the slab schedule. A zero Max marks the
// open-ended top band.
type SlabBand struct {
	Min  decimal.Decimal `yaml:"min" json:"min"`
	Max  decimal.Decimal `yaml:"max" json:"max"`
	Rate decimal.Decimal `yaml:"rate" json:"rate"`
}

// Unbounded reports whether the band has no ceiling
func (b SlabBand) Unbounded() bool {
	return b.Max.IsZero()
}

// TaxRules holds every statutory constant the engine uses for one financial year
type TaxRules struct {
	FinancialYear      string          `yaml:"financial_year" json:"financial_year"`
	StandardDeduction  decimal.Decimal `yaml:"standard_deduction" json:"standard_deduction"`
	RebateThreshold    decimal.Decimal `yaml:"rebate_threshold" json:"rebate_threshold"`
	SlabBands          []SlabBand      `yaml:"slab_bands" json:"slab_bands"`
	LTCGExemption      decimal.Decimal `yaml:"ltcg_exemption" json:"ltcg_exemption"`
	LTCGRate           decimal.Decimal `yaml:"ltcg_rate" json:"ltcg_rate"`
	STCGRate           decimal.Decimal `yaml:"stcg_rate" json:"stcg_rate"`
	SurchargeThreshold decimal.Decimal `yaml:"surcharge_threshold" json:"surcharge_threshold"`
	SurchargeRate      decimal.Decimal `yaml:"surcharge_rate" json:"surcharge_rate"`
	CessRate           decimal.Decimal `yaml:"cess_rate" json:"cess_rate"`
}

func lakh(n int64) decimal.Decimal { return decimal.NewFromInt(n * 100000) }

func rate(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// DefaultTaxRules returns the new-regime rules for FY 2025-26.
// Earlier variants (50,000 deduction, 7 lakh rebate, 1 or 1.5 lakh LTCG
// exemption) are superseded and intentionally not selectable by name.
func DefaultTaxRules() TaxRules {
	return TaxRules{
		FinancialYear:     "2025-26",
		StandardDeduction: decimal.NewFromInt(75000),
		RebateThreshold:   lakh(12),
		SlabBands: []SlabBand{
			{Min: decimal.Zero, Max: lakh(4), Rate: decimal.Zero},
			{Min: lakh(4), Max: lakh(8), Rate: rate("0.05")},
			{Min: lakh(8), Max: lakh(12), Rate: rate("0.10")},
			{Min: lakh(12), Max: lakh(16), Rate: rate("0.15")},
			{Min: lakh(16), Max: lakh(20), Rate: rate("0.20")},
			{Min: lakh(20), Max: lakh(24), Rate: rate("0.25")},
			{Min: lakh(24), Max: decimal.Zero, Rate: rate("0.30")},
		},
		LTCGExemption:      decimal.NewFromInt(125000),
		LTCGRate:           rate("0.125"),
		STCGRate:           rate("0.20"),
		SurchargeThreshold: lakh(50),
		SurchargeRate:      rate("0.10"),
		CessRate:           rate("0.04"),
	}
}

// Validate checks that the bands are contiguous and ascending, that only the
// last band is open-ended, and that all rates and thresholds are sane.
func (r TaxRules) Validate() error {
	if len(r.SlabBands) == 0 {
		return fmt.Errorf("%w: no slab bands", ErrInvalidRules)
	}
	if !r.SlabBands[0].Min.IsZero() {
		return fmt.Errorf("%w: first slab band must start at 0", ErrInvalidRules)
	}
	for i, b := range r.SlabBands {
		if err := checkRate(fmt.Sprintf("slab band %d rate", i), b.Rate); err != nil {
			return err
		}
		last := i == len(r.SlabBands)-1
		if b.Unbounded() && !last {
			return fmt.Errorf("%w: only the last slab band may be open-ended (band %d)", ErrInvalidRules, i)
		}
		if !b.Unbounded() && b.Max.LessThanOrEqual(b.Min) {
			return fmt.Errorf("%w: slab band %d max must exceed min", ErrInvalidRules, i)
		}
		if i > 0 && !b.Min.Equal(r.SlabBands[i-1].Max) {
			return fmt.Errorf("%w: slab band %d must start where band %d ends", ErrInvalidRules, i, i-1)
		}
	}

	for _, f := range []namedValue{
		{"standard deduction", r.StandardDeduction},
		{"rebate threshold", r.RebateThreshold},
		{"LTCG exemption", r.LTCGExemption},
		{"surcharge threshold", r.SurchargeThreshold},
	} {
		if f.value.IsNegative() {
			return fmt.Errorf("%w: %s cannot be negative", ErrInvalidRules, f.name)
		}
	}
	for _, f := range []namedValue{
		{"LTCG rate", r.LTCGRate},
		{"STCG rate", r.STCGRate},
		{"surcharge rate", r.SurchargeRate},
		{"cess rate", r.CessRate},
	} {
		if err := checkRate(f.name, f.value); err != nil {
			return err
		}
	}
	return nil
}

// namedValue keeps validation in field order so the first failure is stable
type namedValue struct {
	name  string
	value decimal.Decimal
}

func checkRate(name string, v decimal.Decimal) error {
	if v.IsNegative() || v.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("%w: %s must be between 0 and 1", ErrInvalidRules, name)
	}
	return nil
}
