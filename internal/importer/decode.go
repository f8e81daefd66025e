package importer

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// row is one decoded record keyed by normalized column name
type row map[string]string

// normalizeKey folds "Interest Income", "interest_income" and "interestIncome"
// to the same key.
func normalizeKey(k string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(k)) {
		switch r {
		case ' ', '_', '-', '.', '/':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (r row) blank() bool {
	for _, v := range r {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// lookup returns the first non-empty value among the aliases
func (r row) lookup(aliases ...string) string {
	for _, a := range aliases {
		if v, ok := r[normalizeKey(a)]; ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

// decodeJSON accepts a bare array of objects or an object wrapping the array,
// e.g. {"bonds": [...]}.
func decodeJSON(r io.Reader, wrapperKeys []string) ([]row, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, nil
	}

	var items []map[string]any
	if data[0] == '{' {
		var wrapper map[string]json.RawMessage
		if err := unmarshalNumber(data, &wrapper); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
		raw, err := pickArray(wrapper, wrapperKeys)
		if err != nil {
			return nil, err
		}
		data = raw
	}
	if err := unmarshalNumber(data, &items); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	rows := make([]row, 0, len(items))
	for _, item := range items {
		rw := make(row, len(item))
		for k, v := range item {
			rw[normalizeKey(k)] = stringify(v)
		}
		rows = append(rows, rw)
	}
	return rows, nil
}

func pickArray(wrapper map[string]json.RawMessage, keys []string) (json.RawMessage, error) {
	for _, k := range keys {
		for wk, v := range wrapper {
			if normalizeKey(wk) == normalizeKey(k) {
				return v, nil
			}
		}
	}
	if len(wrapper) == 1 {
		for _, v := range wrapper {
			return v, nil
		}
	}
	return nil, fmt.Errorf("JSON object has no record array (expected one of %s)", strings.Join(keys, ", "))
}

func unmarshalNumber(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec.Decode(v)
}

func stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case json.Number:
		return x.String()
	case bool:
		if x {
			return "true"
		}
		return "false"
	}
	return fmt.Sprint(v)
}

// decodeCSV reads a header row followed by records
func decodeCSV(r io.Reader) ([]row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV header: %w", err)
	}
	for i, h := range header {
		header[i] = normalizeKey(strings.TrimPrefix(h, "\ufeff"))
	}

	var rows []row
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse CSV: %w", err)
		}
		rw := make(row, len(header))
		for i, h := range header {
			if i < len(rec) {
				rw[h] = rec[i]
			}
		}
		rows = append(rows, rw)
	}
	return rows, nil
}
