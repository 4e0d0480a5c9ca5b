package parse

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/moneymind/moneymind/internal/model"
)

// The strips are case-insensitive on the original string. Mapping match
// offsets from a lower-cased copy back onto the original is not safe:
// ToLower can change UTF-8 byte lengths (İ, Ⱥ, the Kelvin sign).
var (
	// Leading action-verb phrase: "I paid for", "spent", "bought"...
	noteVerbRe = regexp.MustCompile(`(?i)^(i\s+)?(paid|spent|bought|purchased|got|charged)\s+(for\s+)?`)
	// Amount spans with optional symbol, "k" suffix, currency word, and
	// trailing preposition: "$45.99 for", "15k on", "30 dollars"
	noteAmountRe = regexp.MustCompile(`(?i)[$€£¥₹₦₱₩]?\s*[\d,]+\.?\d*\s*k?\s*(dollars?|usd|euro?s?|pounds?|rupees?|naira|pesos?)?\s*(for|on)?\s*`)
	// Leftover leading preposition after the amount strip
	noteLeadRe = regexp.MustCompile(`(?i)^\s*(for|on|at)\s+`)
)

// ExtractNote derives a short human-readable label from the text, after
// the amount and any verb phrasing have been accounted for. This is lossy
// best-effort cleanup; when too little text survives, it falls back to
// "<category> expense".
func ExtractNote(text string, category model.Category) string {
	note := strings.TrimSpace(text)

	note = noteVerbRe.ReplaceAllString(note, "")
	note = noteAmountRe.ReplaceAllString(note, "")
	note = noteLeadRe.ReplaceAllString(note, "")
	note = strings.TrimSpace(note)

	if utf8.RuneCountInString(note) < 2 {
		note = string(category) + " expense"
	}

	r, size := utf8.DecodeRuneInString(note)
	return string(unicode.ToUpper(r)) + note[size:]
}
