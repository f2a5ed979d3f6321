// Package mock provides function-field mock implementations of mako
// interfaces for testing.
package mock

import (
	"context"

	"github.com/fwojciec/mako"
)

var _ mako.Reducer = (*Reducer)(nil)

// Reducer is a mock implementation of mako.Reducer.
type Reducer struct {
	ReduceFn func(html string) (*mako.ReduceResult, error)
}

func (r *Reducer) Reduce(html string) (*mako.ReduceResult, error) {
	return r.ReduceFn(html)
}

var _ mako.Converter = (*Converter)(nil)

// Converter is a mock implementation of mako.Converter.
type Converter struct {
	ConvertFn func(html string, baseURL string) (string, error)
}

func (c *Converter) Convert(html string, baseURL string) (string, error) {
	return c.ConvertFn(html, baseURL)
}

var _ mako.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor is a mock implementation of mako.LinkExtractor.
type LinkExtractor struct {
	ExtractLinksFn func(html string, siteURL string) (mako.Links, error)
}

func (e *LinkExtractor) ExtractLinks(html string, siteURL string) (mako.Links, error) {
	return e.ExtractLinksFn(html, siteURL)
}

var _ mako.ActionExtractor = (*ActionExtractor)(nil)

// ActionExtractor is a mock implementation of mako.ActionExtractor.
type ActionExtractor struct {
	ExtractActionsFn func(html string) ([]mako.Action, error)
}

func (e *ActionExtractor) ExtractActions(html string) ([]mako.Action, error) {
	return e.ExtractActionsFn(html)
}

var _ mako.MediaScanner = (*MediaScanner)(nil)

// MediaScanner is a mock implementation of mako.MediaScanner.
type MediaScanner struct {
	ScanMediaFn func(html string, baseURL string) (*mako.Media, error)
}

func (s *MediaScanner) ScanMedia(html string, baseURL string) (*mako.Media, error) {
	return s.ScanMediaFn(html, baseURL)
}

var _ mako.LanguageDetector = (*LanguageDetector)(nil)

// LanguageDetector is a mock implementation of mako.LanguageDetector.
type LanguageDetector struct {
	DetectLanguageFn func(text string) string
}

func (d *LanguageDetector) DetectLanguage(text string) string {
	return d.DetectLanguageFn(text)
}

var _ mako.SummaryEnhancer = (*SummaryEnhancer)(nil)

// SummaryEnhancer is a mock implementation of mako.SummaryEnhancer.
type SummaryEnhancer struct {
	EnhanceSummaryFn func(ctx context.Context, doc *mako.SourceDocument, body string, summary string) (string, error)
}

func (e *SummaryEnhancer) EnhanceSummary(ctx context.Context, doc *mako.SourceDocument, body string, summary string) (string, error) {
	return e.EnhanceSummaryFn(ctx, doc, body, summary)
}

var _ mako.CapsuleGenerator = (*CapsuleGenerator)(nil)

// CapsuleGenerator is a mock implementation of mako.CapsuleGenerator.
type CapsuleGenerator struct {
	GenerateFn func(ctx context.Context, doc *mako.SourceDocument) (*mako.Capsule, error)
}

func (g *CapsuleGenerator) Generate(ctx context.Context, doc *mako.SourceDocument) (*mako.Capsule, error) {
	return g.GenerateFn(ctx, doc)
}
