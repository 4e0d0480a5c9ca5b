package cli

import "testing"

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		amount   float64
		currency string
		want     string
	}{
		{1234.56, "USD", "$1,234.56"},
		{45.99, "USD", "$45.99"},
		{0, "USD", "$0.00"},
		{-250.5, "USD", "-$250.50"},
		{1234.56, "EUR", "€1,234.56"},
		{900, "GBP", "£900.00"},
		{1234.56, "JPY", "¥1,235"},
		{50000, "KRW", "₩50,000"},
		{12, "XYZ", "$12.00"}, // unknown currency falls back to dollars
	}
	for _, tt := range tests {
		if got := FormatMoney(tt.amount, tt.currency); got != tt.want {
			t.Errorf("FormatMoney(%v, %q) = %q, want %q", tt.amount, tt.currency, got, tt.want)
		}
	}
}

func TestCurrencySymbol(t *testing.T) {
	if got := CurrencySymbol("ngn"); got != "₦" {
		t.Errorf("CurrencySymbol(ngn) = %q, want ₦ (case-insensitive)", got)
	}
	if got := CurrencySymbol("???"); got != "$" {
		t.Errorf("CurrencySymbol(???) = %q, want $", got)
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-45000, "-45,000"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatRunway(t *testing.T) {
	if got := FormatRunway(-1); got != "n/a" {
		t.Errorf("FormatRunway(-1) = %q, want n/a", got)
	}
	if got := FormatRunway(1); got != "1 day" {
		t.Errorf("FormatRunway(1) = %q, want 1 day", got)
	}
	if got := FormatRunway(24); got != "24 days" {
		t.Errorf("FormatRunway(24) = %q, want 24 days", got)
	}
}
