// Package slog provides logging decorators for mako services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/mako"
)

// Ensure LoggingGenerator implements mako.CapsuleGenerator.
var _ mako.CapsuleGenerator = (*LoggingGenerator)(nil)

// LoggingGenerator wraps a CapsuleGenerator with structured logging.
type LoggingGenerator struct {
	next   mako.CapsuleGenerator
	logger *slog.Logger
}

// NewLoggingGenerator creates a new LoggingGenerator.
func NewLoggingGenerator(next mako.CapsuleGenerator, logger *slog.Logger) *LoggingGenerator {
	return &LoggingGenerator{next: next, logger: logger}
}

// Generate delegates to the wrapped generator and logs the outcome,
// including validation diagnostics since generation never blocks on
// them.
func (g *LoggingGenerator) Generate(ctx context.Context, doc *mako.SourceDocument) (c *mako.Capsule, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"url", docURL(doc),
			"duration", time.Since(begin),
			"err", err,
		}
		if c != nil {
			attrs = append(attrs,
				"type", c.Type,
				"tokens", c.TokenCount,
				"errors", len(c.Validation.Errors),
				"warnings", len(c.Validation.Warnings),
			)
		} else if err == nil {
			attrs = append(attrs, "skipped", true)
		}
		g.logger.Info("capsule generation", attrs...)
	}(time.Now())
	return g.next.Generate(ctx, doc)
}

func docURL(doc *mako.SourceDocument) string {
	if doc == nil {
		return ""
	}
	return doc.URL
}
