package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/taxplan/planner/internal/domain"
	"github.com/taxplan/planner/pkg/dateutil"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of income ledger files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a ledger from a YAML or JSON file. Files ending in .json
// use the camelCase record keys of exported data; everything else is YAML.
func (ip *InputParser) LoadFromFile(filename string) (*domain.IncomeLedger, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var ledger domain.IncomeLedger
	if strings.EqualFold(filepath.Ext(filename), ".json") {
		if err := json.Unmarshal(data, &ledger); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	} else if err := yaml.Unmarshal(data, &ledger); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateLedger(&ledger); err != nil {
		return nil, fmt.Errorf("ledger validation failed: %w", err)
	}

	return &ledger, nil
}

// ValidateLedger validates the record fields, the financial year label and any
// rule override.
func (ip *InputParser) ValidateLedger(ledger *domain.IncomeLedger) error {
	if err := domain.ValidateStruct(ledger); err != nil {
		return err
	}
	if ledger.FinancialYear != "" {
		if _, err := dateutil.ParseFinancialYear(ledger.FinancialYear); err != nil {
			return err
		}
	}
	if ledger.Rules != nil {
		if err := ledger.Rules.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// SaveToFile writes the ledger as YAML
func (ip *InputParser) SaveToFile(filename string, ledger *domain.IncomeLedger) error {
	data, err := yaml.Marshal(ledger)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}

// CreateExampleLedger creates an example ledger covering every income category
func (ip *InputParser) CreateExampleLedger() *domain.IncomeLedger {
	return &domain.IncomeLedger{
		FinancialYear: "2025-26",
		Salary:        decimal.NewFromInt(1800000),
		RentalProperties: []domain.RentalProperty{
			{
				Name:           "2BHK Whitefield",
				MonthlyRent:    decimal.NewFromInt(28000),
				MonthsRented:   decimal.NewFromInt(11),
				PropertyTax:    decimal.NewFromInt(12000),
				InterestOnLoan: decimal.NewFromInt(180000),
			},
		},
		FixedDeposits: []domain.FixedDeposit{
			{BankName: "State Bank of India", AccountNo: "XXXX4521", Interest: decimal.NewFromInt(42000)},
			{BankName: "HDFC Bank", AccountNo: "XXXX0913", Interest: decimal.NewFromInt(18500)},
		},
		Bonds: []domain.Bond{
			{Name: "REC 5.85% 2030", ISIN: "INE020B08DE5", Income: decimal.NewFromInt(29250)},
		},
		Dividends: []domain.DividendEntry{
			{Source: "pms", Date: "2025-07-18", Particulars: "INFOSYS LTD", Amount: decimal.NewFromInt(8400)},
			{Source: "broker1", Date: "2025-08-22", Particulars: "ITC LTD", Amount: decimal.NewFromInt(5250)},
			{Source: "broker2", Date: "2026-02-06", Particulars: "COAL INDIA LTD", Amount: decimal.NewFromInt(3100)},
		},
		DematAccounts: []domain.CapitalGainsAccount{
			{Name: "Zerodha", STCG: decimal.NewFromInt(-35000), LTCG: decimal.NewFromInt(210000)},
		},
		MutualFunds: []domain.CapitalGainsAccount{
			{Name: "Parag Parikh Flexi Cap", STCG: decimal.NewFromInt(12000), LTCG: decimal.NewFromInt(95000)},
		},
	}
}
