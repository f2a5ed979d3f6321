// Package gemini provides a Gemini-backed summary enhancer. It is
// optional: the pipeline works without it, falling back to the
// heuristic summary derivation.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/mako"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// Ensure Enhancer implements mako.SummaryEnhancer at compile time.
var _ mako.SummaryEnhancer = (*Enhancer)(nil)

// Enhancer implements mako.SummaryEnhancer using Google Gemini.
type Enhancer struct {
	client *genai.Client
}

// NewEnhancer creates a new Enhancer.
func NewEnhancer(client *genai.Client) *Enhancer {
	return &Enhancer{client: client}
}

// EnhanceSummary rewrites the heuristic summary into a single
// information-dense sentence. On any failure the original summary is
// returned unchanged so generation never blocks on the model.
func (e *Enhancer) EnhanceSummary(ctx context.Context, doc *mako.SourceDocument, body string, summary string) (string, error) {
	if doc == nil {
		return summary, mako.Errorf(mako.EINVALID, "source document required")
	}
	if strings.TrimSpace(body) == "" {
		return summary, nil
	}

	prompt := BuildUserPrompt(doc, body, summary)
	config := BuildConfig()

	result, err := e.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return summary, err
	}
	if result == nil {
		return summary, mako.Errorf(mako.EINTERNAL, "gemini returned nil result")
	}

	enhanced := strings.TrimSpace(result.Text())
	if enhanced == "" {
		return summary, nil
	}
	if len([]rune(enhanced)) > mako.MaxSummaryLength {
		return summary, nil
	}

	return enhanced, nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.2)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You write one-sentence summaries of web pages for machine consumption. Respond with a single plain sentence of at most 160 characters. No markdown, no quotes, no preamble.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildUserPrompt builds the user prompt containing the page content
// and the draft summary.
func BuildUserPrompt(doc *mako.SourceDocument, body string, summary string) string {
	var sb strings.Builder
	sb.WriteString("<page>\n")
	fmt.Fprintf(&sb, "<url>%s</url>\n", doc.URL)
	fmt.Fprintf(&sb, "<title>%s</title>\n", doc.Title)
	fmt.Fprintf(&sb, "<content>%s</content>\n", body)
	sb.WriteString("</page>\n\n")
	if summary != "" {
		fmt.Fprintf(&sb, "Draft summary: %s\n\n", summary)
	}
	sb.WriteString("Rewrite the summary so it captures what the page is about in one sentence.")
	return sb.String()
}
