package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFinancialYearOf(t *testing.T) {
	tests := []struct {
		name     string
		date     time.Time
		expected FinancialYear
	}{
		{"first day of year", time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC), 2025},
		{"last day of year", time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC), 2025},
		{"january belongs to previous start", time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC), 2025},
		{"december", time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC), 2025},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FinancialYearOf(tt.date))
		})
	}
}

func TestFinancialYearLabels(t *testing.T) {
	fy := FinancialYear(2025)
	assert.Equal(t, "2025-26", fy.Label())
	assert.Equal(t, "2026-27", fy.AssessmentYearLabel())
	assert.Equal(t, "FY 2025-26", fy.String())
	assert.Equal(t, "2099-00", FinancialYear(2099).Label())
	assert.True(t, fy.Contains(time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, fy.Contains(time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC), fy.Start())
	assert.Equal(t, time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC), fy.End())
}

func TestParseFinancialYear(t *testing.T) {
	valid := map[string]FinancialYear{
		"2025-26":    2025,
		"2025-2026":  2025,
		"FY 2024-25": 2024,
		"fy2023-24":  2023,
		"2025":       2025,
		"2099-00":    2099,
	}
	for in, want := range valid {
		got, err := ParseFinancialYear(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, in := range []string{"", "FY", "2025-27", "2025-2027", "abcd-ef", "2025-26-27", "2025-2"} {
		_, err := ParseFinancialYear(in)
		assert.Error(t, err, in)
	}
}

func TestAdvanceTaxDueDates(t *testing.T) {
	dates := AdvanceTaxDueDates(2025)
	require.Len(t, dates, 4)
	assert.Equal(t, time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC), dates[0])
	assert.Equal(t, time.Date(2025, time.September, 15, 0, 0, 0, 0, time.UTC), dates[1])
	assert.Equal(t, time.Date(2025, time.December, 15, 0, 0, 0, 0, time.UTC), dates[2])
	assert.Equal(t, time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC), dates[3])
	for _, d := range dates {
		assert.True(t, FinancialYear(2025).Contains(d))
	}
}
