package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taxplan/planner/internal/domain"
)

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser)
}

func writeTemp(t *testing.T, pattern, content string) string {
	t.Helper()
	tmpfile, err := os.CreateTemp(t.TempDir(), pattern)
	require.NoError(t, err)
	_, err = tmpfile.WriteString(content)
	require.NoError(t, err)
	require.NoError(t, tmpfile.Close())
	return tmpfile.Name()
}

func TestLoadFromFile_Success(t *testing.T) {
	testLedger := "financial_year: \"2025-26\"\n" +
		"salary: 1500000\n" +
		"rental_properties:\n" +
		"  - name: \"Flat\"\n" +
		"    monthly_rent: 20000\n" +
		"    months_rented: 12\n" +
		"    property_tax: 10000\n" +
		"fixed_deposits:\n" +
		"  - bank_name: \"SBI\"\n" +
		"    interest: 45000.50\n" +
		"demat_accounts:\n" +
		"  - name: \"Zerodha\"\n" +
		"    stcg: -50000\n" +
		"    ltcg: 300000\n"

	parser := NewInputParser()
	ledger, err := parser.LoadFromFile(writeTemp(t, "ledger_*.yaml", testLedger))
	require.NoError(t, err)

	assert.Equal(t, "2025-26", ledger.FinancialYear)
	assert.True(t, ledger.Salary.Equal(decimal.NewFromInt(1500000)))
	require.Len(t, ledger.RentalProperties, 1)
	assert.True(t, ledger.RentalProperties[0].MonthsRented.Equal(decimal.NewFromInt(12)))
	require.Len(t, ledger.FixedDeposits, 1)
	assert.Equal(t, "45000.5", ledger.FixedDeposits[0].Interest.String())
	require.Len(t, ledger.DematAccounts, 1)
	assert.True(t, ledger.DematAccounts[0].STCG.Equal(decimal.NewFromInt(-50000)))
	assert.True(t, ledger.Salaried())
	assert.Nil(t, ledger.Rules)
}

func TestLoadFromFile_JSON(t *testing.T) {
	testLedger := `{
  "salary": 900000,
  "is_salaried": false,
  "bonds": [{"name": "GOI 2033", "isin": "IN0020230010", "income": 7150}],
  "dividends": [{"source": "broker1", "date": "2025-06-02", "particulars": "HDFCBANK", "amount": 1900}]
}`
	ledger, err := NewInputParser().LoadFromFile(writeTemp(t, "ledger_*.json", testLedger))
	require.NoError(t, err)
	assert.False(t, ledger.Salaried())
	require.Len(t, ledger.Bonds, 1)
	assert.Equal(t, "IN0020230010", ledger.Bonds[0].ISIN)
	assert.True(t, ledger.Dividends[0].Amount.Equal(decimal.NewFromInt(1900)))
}

func TestLoadFromFile_RuleOverride(t *testing.T) {
	testLedger := "salary: 100000\n" +
		"rules:\n" +
		"  financial_year: \"2024-25\"\n" +
		"  standard_deduction: 75000\n" +
		"  rebate_threshold: 700000\n" +
		"  slab_bands:\n" +
		"    - {min: 0, max: 300000, rate: 0}\n" +
		"    - {min: 300000, max: 0, rate: 0.05}\n" +
		"  ltcg_exemption: 125000\n" +
		"  ltcg_rate: 0.125\n" +
		"  stcg_rate: 0.20\n" +
		"  surcharge_threshold: 5000000\n" +
		"  surcharge_rate: 0.10\n" +
		"  cess_rate: 0.04\n"

	ledger, err := NewInputParser().LoadFromFile(writeTemp(t, "ledger_*.yaml", testLedger))
	require.NoError(t, err)
	require.NotNil(t, ledger.Rules)
	rules := ledger.EffectiveRules()
	assert.Len(t, rules.SlabBands, 2)
	assert.True(t, rules.RebateThreshold.Equal(decimal.NewFromInt(700000)))
}

func TestLoadFromFile_Errors(t *testing.T) {
	parser := NewInputParser()

	_, err := parser.LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")

	_, err = parser.LoadFromFile(writeTemp(t, "bad_*.yaml", "salary: [unclosed\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")

	_, err = parser.LoadFromFile(writeTemp(t, "bad_*.json", "{\"salary\": "))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse JSON")
}

func TestValidateLedger(t *testing.T) {
	parser := NewInputParser()

	tests := []struct {
		name    string
		ledger  domain.IncomeLedger
		wantErr string
	}{
		{
			name:    "negative salary",
			ledger:  domain.IncomeLedger{Salary: decimal.NewFromInt(-1)},
			wantErr: "salary must be at least 0",
		},
		{
			name:    "fd without bank",
			ledger:  domain.IncomeLedger{FixedDeposits: []domain.FixedDeposit{{Interest: decimal.NewFromInt(10)}}},
			wantErr: "bankName is required",
		},
		{
			name:    "bad financial year",
			ledger:  domain.IncomeLedger{FinancialYear: "2025-27"},
			wantErr: "consecutive",
		},
		{
			name: "invalid rules",
			ledger: func() domain.IncomeLedger {
				r := domain.DefaultTaxRules()
				r.SlabBands = nil
				return domain.IncomeLedger{Rules: &r}
			}(),
			wantErr: "no slab bands",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := parser.ValidateLedger(&tt.ledger)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCreateExampleLedger(t *testing.T) {
	parser := NewInputParser()
	ledger := parser.CreateExampleLedger()
	require.NoError(t, parser.ValidateLedger(ledger))

	path := filepath.Join(t.TempDir(), "example.yaml")
	require.NoError(t, parser.SaveToFile(path, ledger))

	loaded, err := parser.LoadFromFile(path)
	require.NoError(t, err)
	assert.True(t, ledger.Salary.Equal(loaded.Salary))
	assert.Len(t, loaded.Dividends, 3)
	assert.True(t, loaded.DematAccounts[0].STCG.Equal(decimal.NewFromInt(-35000)))
}
