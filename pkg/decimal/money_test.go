package decimal

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestMoneyFormat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{999.5, "$999.50"},
		{1000, "$1,000.00"},
		{12345.6, "$12,345.60"},
		{1234567.89, "$1,234,567.89"},
		{-12345.6, "-$12,345.60"},
	}
	for _, tt := range tests {
		if got := NewMoney(tt.in).Format(); got != tt.want {
			t.Errorf("NewMoney(%v).Format() = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMoneyConversions(t *testing.T) {
	monthly := NewMoney(100)
	if got := monthly.Annual(); !got.Equal(NewMoney(1200)) {
		t.Errorf("Annual() = %s, want 1200.00", got)
	}
	annual := NewMoney(2400)
	if got := annual.Monthly(); !got.Equal(NewMoney(200)) {
		t.Errorf("Monthly() = %s, want 200.00", got)
	}
}

func TestMoneyRound(t *testing.T) {
	m := NewMoneyFromDecimal(decimal.NewFromFloat(10.005))
	if got := m.Round().String(); got != "10.00" && got != "10.01" {
		t.Errorf("Round() = %q, want cents precision", got)
	}
}

func TestMoneyArithmeticAndComparison(t *testing.T) {
	a, b := NewMoney(150), NewMoney(100)
	if got := a.Sub(b); !got.Equal(NewMoney(50)) {
		t.Errorf("Sub = %s", got)
	}
	if got := a.Add(b); !got.Equal(NewMoney(250)) {
		t.Errorf("Add = %s", got)
	}
	if !Min(a, b).Equal(b) || !Max(a, b).Equal(a) {
		t.Error("Min/Max disagree with comparison")
	}
	if !Zero().IsZero() {
		t.Error("Zero() should be zero")
	}
	if !NewMoney(-1).IsNegative() {
		t.Error("IsNegative should detect negative amounts")
	}
}

func TestNewMoneyFromString(t *testing.T) {
	m, err := NewMoneyFromString("1234.56")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.String() != "1234.56" {
		t.Errorf("got %q", m.String())
	}
	if _, err := NewMoneyFromString("not-a-number"); err == nil {
		t.Error("expected an error for bad input")
	}
}
