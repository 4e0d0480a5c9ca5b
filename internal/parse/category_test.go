package parse

import (
	"testing"

	"github.com/moneymind/moneymind/internal/model"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want model.Category
	}{
		{"coffee chain", "starbucks coffee", model.CategoryFoodDining},
		{"supermarket", "weekly run to whole foods", model.CategoryGroceries},
		{"rideshare", "uber ride home", model.CategoryTransportation},
		{"streaming", "netflix renewal", model.CategorySubscription},
		{"housing", "monthly rent to landlord", model.CategoryRentHousing},
		{"medical", "dentist checkup", model.CategoryHealth},
		{"flight booking", "booking a hotel for vacation", model.CategoryTravel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, conf := Classify(tt.text)
			if got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.text, got, tt.want)
			}
			if conf <= 0 {
				t.Errorf("Classify(%q) confidence = %d, want > 0", tt.text, conf)
			}
		})
	}
}

func TestClassify_CaseInsensitive(t *testing.T) {
	upperCat, upperConf := Classify("STARBUCKS coffee")
	lowerCat, lowerConf := Classify("starbucks coffee")

	if upperCat != lowerCat || upperConf != lowerConf {
		t.Errorf("case mismatch: (%q, %d) vs (%q, %d)", upperCat, upperConf, lowerCat, lowerConf)
	}
}

func TestClassify_NoKeywords(t *testing.T) {
	cat, conf := Classify("xyzzy qwerty 42")
	if cat != model.CategoryOther {
		t.Errorf("category = %q, want Other", cat)
	}
	if conf != 0 {
		t.Errorf("confidence = %d, want 0", conf)
	}
}

func TestClassify_ConfidenceCapped(t *testing.T) {
	// Plenty of keyword hits; confidence must still cap at 95.
	_, conf := Classify("lunch dinner breakfast pizza burger coffee restaurant")
	if conf != 95 {
		t.Errorf("confidence = %d, want capped at 95", conf)
	}
}

func TestClassify_LongerKeywordOutweighsShorter(t *testing.T) {
	// "whole foods" (11 chars, Groceries) beats "food" (4 chars, Food & Dining)
	// even though both categories get a hit.
	cat, _ := Classify("whole foods")
	if cat != model.CategoryGroceries {
		t.Errorf("Classify(\"whole foods\") = %q, want Groceries", cat)
	}
}
