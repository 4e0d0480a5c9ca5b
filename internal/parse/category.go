package parse

import (
	"strings"

	"github.com/moneymind/moneymind/internal/model"
)

// maxConfidence caps the classifier confidence. The score transform is a
// monotonic heuristic, not a calibrated probability, so it never claims
// full certainty.
const maxConfidence = 95

// Classify scores the text against the keyword taxonomy and returns the
// best-matching category with a 0-95 confidence. Text with no keyword
// hits classifies as Other with confidence 0.
func Classify(text string) (model.Category, int) {
	lower := strings.ToLower(text)

	best := model.CategoryOther
	bestScore := 0

	for _, entry := range categoryKeywords {
		score := 0
		for _, kw := range entry.Keywords {
			if strings.Contains(lower, kw) {
				score += len(kw)
			}
		}
		if score > bestScore {
			bestScore = score
			best = entry.Category
		}
	}

	confidence := bestScore * 10
	if confidence > maxConfidence {
		confidence = maxConfidence
	}

	return best, confidence
}
