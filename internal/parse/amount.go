// Package parse turns free-text expense descriptions into structured drafts.
package parse

import (
	"regexp"
	"strconv"
	"strings"
)

// maxPlausibleAmount is the exclusive upper bound for an extracted value.
// Anything at or above it is treated as noise, not money.
const maxPlausibleAmount = 100_000_000

// amountPatterns is the ordered extraction cascade, most specific first.
// Each pattern captures the numeric span in group 1; the first pattern
// that yields a plausible value wins. The bare-number fallback comes
// last so shapes like "$45" or "15k" are never mistaken for plain digits.
var amountPatterns = []*regexp.Regexp{
	// Currency symbol followed by a number, optional thousands suffix: "$45.99", "€2k"
	regexp.MustCompile(`[$€£¥₹₦₱₩]\s*([\d,]+(?:\.\d{1,2})?)\s*k?\b`),
	// Bare number with thousands suffix: "15k", "2.5k"
	regexp.MustCompile(`(\d[\d,]*(?:\.\d{1,2})?)\s*k\b`),
	// Number followed by a currency word: "45 dollars", "30 euros"
	regexp.MustCompile(`([\d,]+(?:\.\d{1,2})?)\s*(?:dollars?|usd|euro?s?|pounds?|rupees?|naira|pesos?)`),
	// Action verb followed by a number: "paid 45", "spent $30"
	regexp.MustCompile(`(?:paid|spent|cost|bought|charged|pay)\s+[$€£¥₹₦₱₩]?\s*([\d,]+(?:\.\d{1,2})?)\s*k?\b`),
	// Preposition followed by a number: "for 20", "of $15"
	regexp.MustCompile(`(?:for|of)\s+[$€£¥₹₦₱₩]?\s*([\d,]+(?:\.\d{1,2})?)\s*k?\b`),
	// Any number, last resort
	regexp.MustCompile(`([\d,]+(?:\.\d{1,2})?)`),
}

// ExtractAmount pulls a monetary magnitude out of free text.
// Returns false when no plausible value is found.
func ExtractAmount(text string) (float64, bool) {
	lower := strings.ToLower(text)

	for _, re := range amountPatterns {
		m := re.FindStringSubmatch(lower)
		if m == nil {
			continue
		}

		amount, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
		if err != nil {
			continue
		}

		// A "k" in the matched span multiplies by 1000, but only for
		// values under 10k. A number that large already spelled out
		// its thousands.
		if strings.Contains(m[0], "k") && amount < 10_000 {
			amount *= 1000
		}

		if amount > 0 && amount < maxPlausibleAmount {
			return amount, true
		}
	}

	return 0, false
}
