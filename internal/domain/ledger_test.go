package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in       string
		expected Category
	}{
		{"fd", CategoryFD},
		{" Fixed-Deposits ", CategoryFD},
		{"MF", CategoryMutualFunds},
		{"rent", CategoryRental},
		{"dividend", CategoryDividends},
	}
	for _, tt := range tests {
		c, err := ParseCategory(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.expected, c)
	}

	_, err := ParseCategory("crypto")
	assert.Error(t, err)
}

func TestCategory_StorageKey(t *testing.T) {
	assert.Equal(t, "taxplan:fd-income", CategoryFD.StorageKey())
	assert.Equal(t, "taxplan:mutual-fund-gains", CategoryMutualFunds.StorageKey())
	assert.Len(t, CategoryNames(), 7)
}

func TestIncomeLedger_Salaried(t *testing.T) {
	yes := true
	assert.False(t, (&IncomeLedger{}).Salaried())
	assert.True(t, (&IncomeLedger{Salary: decimal.NewFromInt(1)}).Salaried())
	assert.True(t, (&IncomeLedger{IsSalaried: &yes}).Salaried())
}

func TestIncomeLedger_RecordCount(t *testing.T) {
	l := &IncomeLedger{
		Salary: decimal.NewFromInt(100),
		Bonds:  []Bond{{Name: "a"}, {Name: "b"}},
	}
	assert.Equal(t, 1, l.RecordCount(CategorySalary))
	assert.Equal(t, 2, l.RecordCount(CategoryBonds))
	assert.Equal(t, 0, l.RecordCount(CategoryDemat))
}

func TestValidateStruct(t *testing.T) {
	assert.NoError(t, ValidateStruct(FixedDeposit{BankName: "SBI", Interest: decimal.NewFromInt(100)}))

	err := ValidateStruct(FixedDeposit{Interest: decimal.NewFromInt(-1)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bankName is required")
	assert.Contains(t, err.Error(), "interest must be at least 0")

	err = ValidateStruct(Bond{Name: "GOI", ISIN: "IN123"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "isin must be 12 characters long")

	err = ValidateStruct(RentalProperty{MonthsRented: decimal.NewFromInt(13)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "monthsRented must be at most 12")

	ledger := IncomeLedger{Dividends: []DividendEntry{{Source: "pms", Date: "2025-04-01"}}}
	err = ValidateStruct(ledger)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dividends[0].particulars is required")
}
