package parse

import (
	"errors"

	"github.com/moneymind/moneymind/internal/model"
)

// ErrNoAmount is returned when no plausible monetary value could be
// located in the text. Callers should prompt for a clearer sentence,
// e.g. "Paid $50 for dinner" or "Spent 15k on rent".
var ErrNoAmount = errors.New("no amount found in text")

// Parse turns one free-text sentence into a draft expense.
// Pure and deterministic: the same text always yields the same draft.
func Parse(text string) (model.DraftExpense, error) {
	amount, ok := ExtractAmount(text)
	if !ok {
		return model.DraftExpense{}, ErrNoAmount
	}

	category, confidence := Classify(text)

	return model.DraftExpense{
		Amount:     amount,
		Category:   category,
		Confidence: confidence,
		Note:       ExtractNote(text, category),
	}, nil
}
