package importer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taxplan/planner/internal/domain"
)

func TestImport_FDCSVWithAliases(t *testing.T) {
	input := "Bank Name,Account/Receipt No.,Interest Income\n" +
		"State Bank of India,XX4521,\"42,000.50\"\n" +
		",,\n" +
		"HDFC Bank,XX0913,18500\n"

	ledger := &domain.IncomeLedger{FixedDeposits: []domain.FixedDeposit{{BankName: "old", Interest: decimal.NewFromInt(1)}}}
	sum, err := Import(strings.NewReader(input), domain.CategoryFD, Options{Format: FormatCSV}, ledger)
	require.NoError(t, err)

	assert.Equal(t, 2, sum.Imported)
	assert.Equal(t, 1, sum.Skipped)
	require.Len(t, ledger.FixedDeposits, 2)
	fd := ledger.FixedDeposits[0]
	assert.Equal(t, "State Bank of India", fd.BankName)
	assert.Equal(t, "XX4521", fd.AccountNo)
	assert.True(t, fd.Interest.Equal(decimal.RequireFromString("42000.50")))
	_, err = uuid.Parse(fd.ID)
	assert.NoError(t, err, "missing IDs are assigned")
}

func TestImport_JSONWrappedExport(t *testing.T) {
	input := `{"bonds": [
		{"name": "REC 2030", "isin": "ine020b08de5", "income": 29250},
		{"id": "b-2", "name": "NHAI", "isin": "", "income": "1,500"}
	]}`
	ledger := &domain.IncomeLedger{}
	sum, err := Import(strings.NewReader(input), domain.CategoryBonds, Options{Format: FormatJSON}, ledger)
	require.NoError(t, err)
	assert.Equal(t, 2, sum.Imported)
	assert.Equal(t, "INE020B08DE5", ledger.Bonds[0].ISIN)
	assert.Equal(t, "b-2", ledger.Bonds[1].ID)
	assert.True(t, ledger.Bonds[1].Income.Equal(decimal.NewFromInt(1500)))
}

func TestImport_DividendsCredit(t *testing.T) {
	input := `[{"Date": "2025-07-01", "Particulars": "INFY", "Credit": "1,200"}]`
	ledger := &domain.IncomeLedger{}
	_, err := Import(strings.NewReader(input), domain.CategoryDividends, Options{Format: FormatJSON, Source: "broker2"}, ledger)
	require.NoError(t, err)
	require.Len(t, ledger.Dividends, 1)
	assert.Equal(t, "broker2", ledger.Dividends[0].Source)
	assert.True(t, ledger.Dividends[0].Amount.Equal(decimal.NewFromInt(1200)))
}

func TestImport_CapitalGainsKeepSign(t *testing.T) {
	input := "name,stcg,ltcg\nZerodha,-35000,210000\n"
	ledger := &domain.IncomeLedger{}
	_, err := Import(strings.NewReader(input), domain.CategoryDemat, Options{Format: FormatCSV}, ledger)
	require.NoError(t, err)
	assert.True(t, ledger.DematAccounts[0].STCG.Equal(decimal.NewFromInt(-35000)))
	assert.Empty(t, ledger.MutualFunds)
}

func TestImport_Errors(t *testing.T) {
	tests := []struct {
		name     string
		category domain.Category
		format   Format
		input    string
		wantErr  error
		contains string
	}{
		{"not a number", domain.CategoryFD, FormatCSV, "bankName,interest\nSBI,abc\n", ErrInvalidRecord, "row 1"},
		{"missing required", domain.CategoryFD, FormatCSV, "bankName,interest\n,100\n", ErrInvalidRecord, "bankName is required"},
		{"negative interest", domain.CategoryBonds, FormatJSON, `[{"name":"x","income":-5}]`, ErrInvalidRecord, "income must be at least 0"},
		{"months above twelve", domain.CategoryRental, FormatJSON, `[{"monthlyRent":100,"monthsRented":13}]`, ErrInvalidRecord, "monthsRented"},
		{"only blank rows", domain.CategoryFD, FormatCSV, "bankName,interest\n,\n", ErrNoRecords, ""},
		{"unknown format", domain.CategoryFD, Format("xlsx"), "", ErrUnsupportedFormat, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger := &domain.IncomeLedger{}
			_, err := Import(strings.NewReader(tt.input), tt.category, Options{Format: tt.format}, ledger)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.contains != "" {
				assert.Contains(t, err.Error(), tt.contains)
			}
			assert.Zero(t, ledger.RecordCount(tt.category), "failed import leaves the ledger unchanged")
		})
	}

	_, err := Import(strings.NewReader("[]"), domain.CategorySalary, Options{Format: FormatJSON}, &domain.IncomeLedger{})
	assert.Error(t, err)
}

func TestExportImport(t *testing.T) {
	ledger := &domain.IncomeLedger{
		RentalProperties: []domain.RentalProperty{
			{ID: "r-1", Name: "Flat, 2BHK", MonthlyRent: decimal.NewFromInt(25000), MonthsRented: decimal.NewFromInt(12), PropertyTax: decimal.NewFromInt(20000), InterestOnLoan: decimal.NewFromInt(150000)},
		},
	}
	for _, f := range []Format{FormatJSON, FormatCSV} {
		t.Run(string(f), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Export(&buf, ledger, domain.CategoryRental, f))

			back := &domain.IncomeLedger{}
			_, err := Import(&buf, domain.CategoryRental, Options{Format: f}, back)
			require.NoError(t, err)
			require.Len(t, back.RentalProperties, 1)
			got := back.RentalProperties[0]
			assert.Equal(t, "r-1", got.ID)
			assert.Equal(t, "Flat, 2BHK", got.Name)
			assert.True(t, got.MonthlyRent.Equal(decimal.NewFromInt(25000)))
			assert.True(t, got.InterestOnLoan.Equal(decimal.NewFromInt(150000)))
		})
	}

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, &domain.IncomeLedger{}, domain.CategoryFD, FormatJSON))
	assert.JSONEq(t, `{"fds": []}`, buf.String())
	assert.Error(t, Export(&buf, ledger, domain.CategorySalary, FormatJSON))
}

func TestFormatFromPath(t *testing.T) {
	f, err := FormatFromPath("/tmp/fds.CSV")
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, f)

	_, err = FormatFromPath("fds.xlsx")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}
