package decimal

import (
	"testing"

	stddec "github.com/shopspring/decimal"
)

func TestConstructors(t *testing.T) {
	d := stddec.NewFromFloat(10.125)
	m2 := NewMoneyFromDecimal(d)
	if !m2.Decimal.Equal(d) {
		t.Fatalf("NewMoneyFromDecimal mismatch: got %s want %s", m2.Decimal, d)
	}

	m3, err := NewMoneyFromString("₹12,34,567.50")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m3.String() != "1234567.50" {
		t.Fatalf("NewMoneyFromString display mismatch: got %s", m3.String())
	}

	if _, err := NewMoneyFromString("not-a-number"); err == nil {
		t.Fatalf("expected error for invalid string")
	}
}

func TestDisplayRounding(t *testing.T) {
	cases := []struct{ in, out string }{
		{"2.344", "2.34"},
		{"2.345", "2.35"},
		{"0.125", "0.13"},
	}
	for _, c := range cases {
		m, _ := NewMoneyFromString(c.in)
		if got := m.String(); got != c.out {
			t.Fatalf("String(%s) got %s want %s", c.in, got, c.out)
		}
	}
}

func TestIndianGrouping(t *testing.T) {
	cases := []struct{ in, out string }{
		{"0", "0.00"},
		{"999", "999.00"},
		{"1000", "1,000.00"},
		{"120250", "1,20,250.00"},
		{"1234567.891", "12,34,567.89"},
		{"123456789", "12,34,56,789.00"},
		{"-50000", "-50,000.00"},
	}
	for _, c := range cases {
		if got := GroupIndian(stddec.RequireFromString(c.in)); got != c.out {
			t.Fatalf("GroupIndian(%s) got %s want %s", c.in, got, c.out)
		}
	}
	if got := NewMoneyFromDecimal(stddec.NewFromInt(1500000)).Format(); got != "₹15,00,000.00" {
		t.Fatalf("Format got %s", got)
	}
}
