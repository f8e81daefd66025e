package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taxplan/planner/internal/calculation"
	"github.com/taxplan/planner/internal/domain"
	"gopkg.in/yaml.v3"
)

func buildComparison(t *testing.T, deductions domain.OldRegimeDeductions) domain.RegimeComparison {
	t.Helper()
	cmp, err := calculation.CompareRegimes(domain.DetailedIncomeProfile{
		Salary:     decimal.NewFromInt(1500000),
		IsSalaried: true,
	}, deductions)
	require.NoError(t, err)
	return cmp
}

func TestWriteRegimeComparison_Console(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRegimeComparison(&buf, buildComparison(t, domain.OldRegimeDeductions{}), "console"))
	out := buf.String()
	for _, want := range []string{
		"TAX REGIME COMPARISON",
		"Old Regime",
		"₹14,50,000.00",
		"₹14,25,000.00",
		"₹2,57,400.00",
		"₹97,500.00",
		"Recommendation: the new regime costs ₹1,59,900.00 less\n",
	} {
		assert.Contains(t, out, want)
	}

	buf.Reset()
	require.NoError(t, WriteRegimeComparison(&buf, buildComparison(t, domain.OldRegimeDeductions{
		Section80C:       decimal.NewFromInt(150000),
		Section80D:       decimal.NewFromInt(50000),
		HomeLoanInterest: decimal.NewFromInt(200000),
		Other:            decimal.NewFromInt(150000),
	}), "summary"))
	assert.Contains(t, buf.String(), "Recommendation: the old regime costs ₹1,300.00 less\n")
}

func TestWriteRegimeComparison_Tie(t *testing.T) {
	cmp, err := calculation.CompareRegimes(domain.DetailedIncomeProfile{Salary: decimal.NewFromInt(500000), IsSalaried: true}, domain.OldRegimeDeductions{})
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, WriteRegimeComparison(&buf, cmp, "console"))
	assert.Contains(t, buf.String(), "Recommendation: both regimes cost the same\n")
}

func TestWriteRegimeComparison_Structured(t *testing.T) {
	cmp := buildComparison(t, domain.OldRegimeDeductions{})

	var buf bytes.Buffer
	require.NoError(t, WriteRegimeComparison(&buf, cmp, "json"))
	var decoded domain.RegimeComparison
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, domain.RegimeNew, decoded.Recommended)
	assert.True(t, decoded.Savings.Equal(decimal.NewFromInt(159900)))

	buf.Reset()
	require.NoError(t, WriteRegimeComparison(&buf, cmp, "yml"))
	var m map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &m))
	assert.Equal(t, "new", m["recommended"])

	err := WriteRegimeComparison(&buf, cmp, "csv")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}
