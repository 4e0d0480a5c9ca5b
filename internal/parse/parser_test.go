package parse

import (
	"errors"
	"testing"

	"github.com/moneymind/moneymind/internal/model"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		amount   float64
		category model.Category
		note     string
	}{
		{"verb sentence", "Paid $45.99 for lunch", 45.99, model.CategoryFoodDining, "Lunch"},
		{"k suffix", "Spent 15k on rent", 15000, model.CategoryRentHousing, "Rent"},
		{"plain description", "uber ride home 12", 12, model.CategoryTransportation, "Uber ride home"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft, err := Parse(tt.text)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.text, err)
			}
			if draft.Amount != tt.amount {
				t.Errorf("Amount = %v, want %v", draft.Amount, tt.amount)
			}
			if draft.Category != tt.category {
				t.Errorf("Category = %q, want %q", draft.Category, tt.category)
			}
			if draft.Note != tt.note {
				t.Errorf("Note = %q, want %q", draft.Note, tt.note)
			}
			if draft.Confidence <= 0 || draft.Confidence > 95 {
				t.Errorf("Confidence = %d, want in (0, 95]", draft.Confidence)
			}
		})
	}
}

func TestParse_NoAmount(t *testing.T) {
	_, err := Parse("lunch with friends")
	if !errors.Is(err, ErrNoAmount) {
		t.Errorf("err = %v, want ErrNoAmount", err)
	}
}

// FuzzParse tests that the parser never panics on arbitrary input and
// that every successful draft satisfies the amount and confidence bounds.
func FuzzParse(f *testing.F) {
	f.Add("Paid $45.99 for lunch")
	f.Add("Spent 15k on rent")
	f.Add("€30 for groceries")
	f.Add("45 dollars on gas")
	f.Add("coffee for 4.50")
	f.Add("lunch 12")
	f.Add("paid $1,250 for rent")
	f.Add("transferred 15000k")
	f.Add("$")
	f.Add("")
	f.Add("-$5 refund")
	f.Add("100000000 on a yacht")
	f.Add("Ⱥbc kebab 45")
	f.Add("İstanbul kebab 45")
	f.Add("KKapp lunch 12")

	f.Fuzz(func(t *testing.T, text string) {
		draft, err := Parse(text)
		if err != nil {
			if !errors.Is(err, ErrNoAmount) {
				t.Errorf("Parse(%q) unexpected error: %v", text, err)
			}
			return
		}
		if draft.Amount <= 0 || draft.Amount >= 100_000_000 {
			t.Errorf("Parse(%q) amount %v out of bounds", text, draft.Amount)
		}
		if draft.Confidence < 0 || draft.Confidence > 95 {
			t.Errorf("Parse(%q) confidence %d out of range", text, draft.Confidence)
		}
		if !draft.Category.Valid() {
			t.Errorf("Parse(%q) invalid category %q", text, draft.Category)
		}
	})
}

func TestParse_UnrecognizedText(t *testing.T) {
	draft, err := Parse("xyzzy qwerty 42")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if draft.Category != model.CategoryOther {
		t.Errorf("Category = %q, want Other", draft.Category)
	}
	if draft.Confidence != 0 {
		t.Errorf("Confidence = %d, want 0", draft.Confidence)
	}
}
