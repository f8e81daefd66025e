package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/taxplan/planner/internal/domain"
	"github.com/taxplan/planner/internal/logging"
)

// KeyPrefix is shared by every key the repository writes
const KeyPrefix = "taxplan:"

// SalariedKey holds the explicit salaried flag as a JSON bool
const SalariedKey = "taxplan:is-salaried"

// LedgerRepository maps an IncomeLedger onto one key per category
type LedgerRepository struct {
	store KeyValueStore
	log   logrus.FieldLogger
}

// NewLedgerRepository creates a repository over store. A nil logger discards output.
func NewLedgerRepository(store KeyValueStore, log logrus.FieldLogger) *LedgerRepository {
	if log == nil {
		log = logging.Discard()
	}
	return &LedgerRepository{store: store, log: log}
}

// Load reads every category. Missing keys load as empty collections.
func (r *LedgerRepository) Load(ctx context.Context) (*domain.IncomeLedger, error) {
	ledger := &domain.IncomeLedger{}

	if err := r.get(ctx, domain.CategorySalary.StorageKey(), &ledger.Salary); err != nil {
		return nil, err
	}
	var salaried bool
	found, err := r.lookup(ctx, SalariedKey, &salaried)
	if err != nil {
		return nil, err
	}
	if found {
		ledger.IsSalaried = &salaried
	}

	targets := map[domain.Category]any{
		domain.CategoryRental:      &ledger.RentalProperties,
		domain.CategoryFD:          &ledger.FixedDeposits,
		domain.CategoryBonds:       &ledger.Bonds,
		domain.CategoryDividends:   &ledger.Dividends,
		domain.CategoryDemat:       &ledger.DematAccounts,
		domain.CategoryMutualFunds: &ledger.MutualFunds,
	}
	for _, c := range domain.RecordCategories() {
		if err := r.get(ctx, c.StorageKey(), targets[c]); err != nil {
			return nil, err
		}
	}

	r.log.WithField("records", recordTotal(ledger)).Debug("ledger loaded")
	return ledger, nil
}

// StoredKeys lists the ledger keys present in the store, sorted
func (r *LedgerRepository) StoredKeys(ctx context.Context) ([]string, error) {
	keys, err := r.store.Keys(ctx, KeyPrefix)
	if err != nil {
		return nil, fmt.Errorf("list keys: %w", err)
	}
	return keys, nil
}

// Save writes the salary keys and every record category of ledger
func (r *LedgerRepository) Save(ctx context.Context, ledger *domain.IncomeLedger) error {
	if err := r.SaveSalary(ctx, ledger.Salary, ledger.IsSalaried); err != nil {
		return err
	}
	for _, c := range domain.RecordCategories() {
		if err := r.SaveCategory(ctx, c, ledger); err != nil {
			return err
		}
	}
	return nil
}

// SaveSalary stores the salary as a JSON number. A nil salaried flag removes any
// stored override.
func (r *LedgerRepository) SaveSalary(ctx context.Context, salary decimal.Decimal, salaried *bool) error {
	if err := r.store.Put(ctx, domain.CategorySalary.StorageKey(), []byte(salary.String())); err != nil {
		return err
	}
	if salaried == nil {
		return r.store.Delete(ctx, SalariedKey)
	}
	if err := r.put(ctx, SalariedKey, *salaried); err != nil {
		return err
	}
	r.log.WithField("salary", salary.StringFixed(2)).Debug("salary saved")
	return nil
}

// SaveCategory replaces the stored collection of c with the ledger's records
func (r *LedgerRepository) SaveCategory(ctx context.Context, c domain.Category, ledger *domain.IncomeLedger) error {
	var records any
	switch c {
	case domain.CategorySalary:
		return r.SaveSalary(ctx, ledger.Salary, ledger.IsSalaried)
	case domain.CategoryRental:
		records = nonNil(ledger.RentalProperties)
	case domain.CategoryFD:
		records = nonNil(ledger.FixedDeposits)
	case domain.CategoryBonds:
		records = nonNil(ledger.Bonds)
	case domain.CategoryDividends:
		records = nonNil(ledger.Dividends)
	case domain.CategoryDemat:
		records = nonNil(ledger.DematAccounts)
	case domain.CategoryMutualFunds:
		records = nonNil(ledger.MutualFunds)
	default:
		return fmt.Errorf("unknown category %q", c)
	}
	if err := r.put(ctx, c.StorageKey(), records); err != nil {
		return err
	}
	r.log.WithFields(logrus.Fields{"category": c, "records": ledger.RecordCount(c)}).Info("category saved")
	return nil
}

func (r *LedgerRepository) put(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return r.store.Put(ctx, key, data)
}

func (r *LedgerRepository) get(ctx context.Context, key string, v any) error {
	_, err := r.lookup(ctx, key, v)
	return err
}

func (r *LedgerRepository) lookup(ctx context.Context, key string, v any) (bool, error) {
	data, err := r.store.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func recordTotal(l *domain.IncomeLedger) int {
	n := 0
	for _, c := range domain.RecordCategories() {
		n += l.RecordCount(c)
	}
	return n
}
