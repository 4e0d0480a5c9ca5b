package parse

import "testing"

func TestExtractAmount(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{"symbol with decimals", "Paid $45.99 for lunch", 45.99},
		{"symbol euro", "€30 for groceries", 30},
		{"symbol pound", "bought a coat for £120", 120},
		{"k suffix", "Spent 15k on rent", 15000},
		{"fractional k", "spent 2.5k on laptop", 2500},
		{"symbol and k", "$2k for flights", 2000},
		{"currency word", "45 dollars on gas", 45},
		{"usd word", "paid 12 usd for parking", 12},
		{"verb prefix", "charged 89 at the dentist", 89},
		{"preposition prefix", "coffee for 4.50", 4.50},
		{"bare number fallback", "lunch 12", 12},
		{"thousands separator", "paid $1,250 for rent", 1250},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractAmount(tt.text)
			if !ok {
				t.Fatalf("ExtractAmount(%q) found nothing, want %v", tt.text, tt.want)
			}
			if got != tt.want {
				t.Errorf("ExtractAmount(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestExtractAmount_NoDigits(t *testing.T) {
	texts := []string{
		"",
		"lunch with friends",
		"paid for coffee at the usual place",
		"k",
		"$",
	}

	for _, text := range texts {
		if got, ok := ExtractAmount(text); ok {
			t.Errorf("ExtractAmount(%q) = %v, want not found", text, got)
		}
	}
}

func TestExtractAmount_ImplausibleValues(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"zero", "paid $0 for nothing"},
		{"too large", "spent 100000000 on a yacht"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, ok := ExtractAmount(tt.text); ok {
				t.Errorf("ExtractAmount(%q) = %v, want rejected", tt.text, got)
			}
		})
	}
}

func TestExtractAmount_LargeKNotMultiplied(t *testing.T) {
	// A value already at or above 10k keeps its magnitude even with a
	// trailing "k" in the span.
	got, ok := ExtractAmount("transferred 15000k")
	if !ok {
		t.Fatal("ExtractAmount found nothing")
	}
	if got != 15000 {
		t.Errorf("ExtractAmount = %v, want 15000 (no double multiply)", got)
	}
}

func TestExtractAmount_PrecedenceOverBareNumber(t *testing.T) {
	// "$45.99" must win over the bare "2" even though "2" appears first.
	got, ok := ExtractAmount("2 coffees at $45.99 total")
	if !ok {
		t.Fatal("ExtractAmount found nothing")
	}
	if got != 45.99 {
		t.Errorf("ExtractAmount = %v, want 45.99 (symbol pattern wins)", got)
	}
}
