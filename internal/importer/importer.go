// Package importer reads and writes ledger categories as JSON or CSV files.
package importer

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/taxplan/planner/internal/domain"
	money "github.com/taxplan/planner/pkg/decimal"
)

var (
	// ErrUnsupportedFormat is returned for formats other than json and csv
	ErrUnsupportedFormat = errors.New("unsupported file format")
	// ErrInvalidRecord is returned when a row fails conversion or validation
	ErrInvalidRecord = errors.New("invalid record")
	// ErrNoRecords is returned when the input holds no usable rows
	ErrNoRecords = errors.New("no records found")
)

// Format is a file encoding
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// ParseFormat resolves a format name
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "csv":
		return FormatCSV, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// FormatFromPath infers the format from a file extension
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
}

// Options tunes an import
type Options struct {
	Format Format
	// Source labels dividend rows that carry no source column (pms, broker1, ...).
	Source string
}

// Summary describes what an import did
type Summary struct {
	Category domain.Category
	Imported int
	Skipped  int
}

// Import decodes r and replaces the category's records in ledger. Blank rows are
// skipped; any other unusable row fails the whole import and leaves ledger unchanged.
func Import(r io.Reader, c domain.Category, opts Options, ledger *domain.IncomeLedger) (Summary, error) {
	sum := Summary{Category: c}
	if c == domain.CategorySalary {
		return sum, fmt.Errorf("salary is a single amount and cannot be imported from a file")
	}

	var rows []row
	var err error
	switch opts.Format {
	case FormatJSON:
		rows, err = decodeJSON(r, wrapperKeys(c))
	case FormatCSV:
		rows, err = decodeCSV(r)
	default:
		return sum, fmt.Errorf("%w: %q", ErrUnsupportedFormat, opts.Format)
	}
	if err != nil {
		return sum, err
	}

	var staged domain.IncomeLedger
	for i, rw := range rows {
		if rw.blank() {
			sum.Skipped++
			continue
		}
		if err := appendRecord(&staged, c, rw, opts); err != nil {
			return Summary{Category: c}, fmt.Errorf("%w: row %d: %v", ErrInvalidRecord, i+1, err)
		}
		sum.Imported++
	}
	if sum.Imported == 0 {
		return sum, ErrNoRecords
	}

	replaceCategory(ledger, &staged, c)
	return sum, nil
}

// replaceCategory moves the decoded records of c from staged into ledger
func replaceCategory(ledger, staged *domain.IncomeLedger, c domain.Category) {
	switch c {
	case domain.CategoryRental:
		ledger.RentalProperties = staged.RentalProperties
	case domain.CategoryFD:
		ledger.FixedDeposits = staged.FixedDeposits
	case domain.CategoryBonds:
		ledger.Bonds = staged.Bonds
	case domain.CategoryDividends:
		ledger.Dividends = staged.Dividends
	case domain.CategoryDemat:
		ledger.DematAccounts = staged.DematAccounts
	case domain.CategoryMutualFunds:
		ledger.MutualFunds = staged.MutualFunds
	}
}

func appendRecord(l *domain.IncomeLedger, c domain.Category, rw row, opts Options) error {
	p := amountParser{row: rw}
	id := rw.lookup("id")
	if id == "" {
		id = uuid.NewString()
	}

	var rec any
	switch c {
	case domain.CategoryRental:
		r := domain.RentalProperty{
			ID:             id,
			Name:           rw.lookup("name", "property", "property name"),
			MonthlyRent:    p.amount("monthlyRent", "monthly rent", "rent"),
			MonthsRented:   p.amount("monthsRented", "months rented", "months"),
			PropertyTax:    p.amount("propertyTax", "property tax", "municipal tax"),
			InterestOnLoan: p.amount("interestOnLoan", "interest on loan", "home loan interest"),
		}
		l.RentalProperties = append(l.RentalProperties, r)
		rec = r
	case domain.CategoryFD:
		r := domain.FixedDeposit{
			ID:        id,
			BankName:  rw.lookup("bankName", "bank name", "bank"),
			AccountNo: rw.lookup("accountNo", "account no", "account/receipt no.", "account number"),
			Interest:  p.amount("interest", "interest income"),
		}
		l.FixedDeposits = append(l.FixedDeposits, r)
		rec = r
	case domain.CategoryBonds:
		r := domain.Bond{
			ID:     id,
			Name:   rw.lookup("name", "bond name", "bond"),
			ISIN:   strings.ToUpper(rw.lookup("isin")),
			Income: p.amount("income", "interest", "interest income"),
		}
		l.Bonds = append(l.Bonds, r)
		rec = r
	case domain.CategoryDividends:
		source := rw.lookup("source", "broker")
		if source == "" {
			source = opts.Source
		}
		r := domain.DividendEntry{
			ID:          id,
			Source:      source,
			Date:        rw.lookup("date"),
			Particulars: rw.lookup("particulars", "company", "scrip"),
			Amount:      p.amount("amount", "credit"),
		}
		l.Dividends = append(l.Dividends, r)
		rec = r
	case domain.CategoryDemat, domain.CategoryMutualFunds:
		r := domain.CapitalGainsAccount{
			ID:   id,
			Name: rw.lookup("name", "account", "fund", "scheme"),
			STCG: p.amount("stcg", "short term", "short term gain"),
			LTCG: p.amount("ltcg", "long term", "long term gain"),
		}
		if c == domain.CategoryDemat {
			l.DematAccounts = append(l.DematAccounts, r)
		} else {
			l.MutualFunds = append(l.MutualFunds, r)
		}
		rec = r
	default:
		return fmt.Errorf("unknown category %q", c)
	}

	if p.err != nil {
		return p.err
	}
	return domain.ValidateStruct(rec)
}

// amountParser parses money columns and keeps the first failure
type amountParser struct {
	row row
	err error
}

func (p *amountParser) amount(aliases ...string) decimal.Decimal {
	v := p.row.lookup(aliases...)
	if v == "" {
		return decimal.Zero
	}
	m, err := money.NewMoneyFromString(v)
	if err != nil {
		if p.err == nil {
			p.err = fmt.Errorf("%s: %q is not a number", aliases[0], v)
		}
		return decimal.Zero
	}
	return m.Decimal
}

// wrapperKeys are the object keys an exported JSON file may wrap its array in
func wrapperKeys(c domain.Category) []string {
	keys := []string{string(c)}
	switch c {
	case domain.CategoryRental:
		keys = append(keys, "rentalProperties", "properties", "rentals")
	case domain.CategoryFD:
		keys = append(keys, "fds", "fixedDeposits")
	case domain.CategoryBonds:
		keys = append(keys, "bonds")
	case domain.CategoryDividends:
		keys = append(keys, "dividends")
	case domain.CategoryDemat:
		keys = append(keys, "dematAccounts", "accounts")
	case domain.CategoryMutualFunds:
		keys = append(keys, "mutualFunds", "funds")
	}
	return keys
}
