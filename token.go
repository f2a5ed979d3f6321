package mako

import (
	"math"
	"strings"
)

// TokenEstimator estimates the token count of a text for budget
// enforcement. Implementations must be deterministic and cheap: the
// estimator is called repeatedly during truncation.
type TokenEstimator interface {
	Estimate(text string) int
}

// TokenEstimatorFunc adapts a function to the TokenEstimator interface.
type TokenEstimatorFunc func(text string) int

// Estimate calls f(text).
func (f TokenEstimatorFunc) Estimate(text string) int { return f(text) }

// EstimateTokens estimates the token count of text using two heuristics
// and returning the larger: word count * 1.3 (English average) and
// character count / 4 (floor for CJK, URLs, code, and other dense text
// that whitespace splitting undercounts). Empty or whitespace-only input
// yields 0.
func EstimateTokens(text string) int {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0
	}

	words := len(strings.Fields(text))
	wordEstimate := int(math.Ceil(float64(words) * 1.3))
	charEstimate := int(math.Ceil(float64(len([]rune(text))) / 4))

	return max(wordEstimate, charEstimate)
}

// SavingsPercent returns the token savings of a capsule relative to its
// source HTML, as a percentage rounded to two decimals. Never negative.
func SavingsPercent(htmlTokens, capsuleTokens int) float64 {
	if htmlTokens <= 0 {
		return 0
	}
	savings := float64(htmlTokens-capsuleTokens) / float64(htmlTokens) * 100
	return math.Round(max(savings, 0)*100) / 100
}
