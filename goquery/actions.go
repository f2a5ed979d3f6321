package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/mako"
)

// Candidate selectors for interactive elements, in priority order.
var actionSelectors = []string{
	"button",
	`input[type="submit"]`,
	`a[class*="btn"]`,
	`a[class*="button"]`,
	`a[class*="cta"]`,
	`[role="button"]`,
	`[class*="cta"]`,
}

// maxActionLabel is the longest label still considered a CTA; anything
// longer is prose, not a button.
const maxActionLabel = 50

// Ensure ActionExtractor implements mako.ActionExtractor at compile time.
var _ mako.ActionExtractor = (*ActionExtractor)(nil)

// ActionExtractor finds interactive elements in raw HTML and matches
// their labels against the action vocabulary.
type ActionExtractor struct{}

// NewActionExtractor creates a new ActionExtractor.
func NewActionExtractor() *ActionExtractor {
	return &ActionExtractor{}
}

// ExtractActions returns up to mako.MaxActions canonical actions.
// The first element matching a given action name wins; later matches
// for the same name are ignored, so three add-to-cart buttons yield one
// add_to_cart action.
func (e *ActionExtractor) ExtractActions(rawHTML string) ([]mako.Action, error) {
	var actions []mako.Action

	if strings.TrimSpace(rawHTML) == "" {
		return actions, nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return actions, nil
	}

	seen := make(map[string]bool)

	for _, selector := range actionSelectors {
		if len(actions) >= mako.MaxActions {
			break
		}

		doc.Find(selector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
			if len(actions) >= mako.MaxActions {
				return false
			}

			label := elementLabel(sel)
			if label == "" || len([]rune(label)) > maxActionLabel {
				return true
			}

			action, ok := mako.MatchAction(label)
			if !ok || seen[action.Name] {
				return true
			}

			seen[action.Name] = true
			actions = append(actions, action)
			return true
		})
	}

	return actions, nil
}

// elementLabel derives the display text of an interactive element:
// the value attribute for inputs, then aria-label, then text content.
func elementLabel(sel *goquery.Selection) string {
	if goquery.NodeName(sel) == "input" {
		value, _ := sel.Attr("value")
		return strings.TrimSpace(value)
	}

	if aria, ok := sel.Attr("aria-label"); ok && strings.TrimSpace(aria) != "" {
		return strings.TrimSpace(aria)
	}

	return strings.TrimSpace(sel.Text())
}
