// Package whatlanggo provides a whatlanggo-backed implementation of
// mako.LanguageDetector for documents without a host language hint.
package whatlanggo

import (
	"strings"

	"github.com/abadojack/whatlanggo"
	"github.com/fwojciec/mako"
)

// minConfidence is the detection confidence below which the detector
// reports "undetermined" rather than guessing.
const minConfidence = 0.5

// Ensure Detector implements mako.LanguageDetector at compile time.
var _ mako.LanguageDetector = (*Detector)(nil)

// Detector guesses the dominant language of a text.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// DetectLanguage returns the ISO 639-1 code of the detected language,
// or empty string when the text is too short or ambiguous.
func (d *Detector) DetectLanguage(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	info := whatlanggo.Detect(text)
	if !info.IsReliable() || info.Confidence < minConfidence {
		return ""
	}

	return info.Lang.Iso6391()
}
