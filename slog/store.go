package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/mako"
)

// Ensure LoggingCapsuleStore implements mako.CapsuleStore.
var _ mako.CapsuleStore = (*LoggingCapsuleStore)(nil)

// LoggingCapsuleStore wraps a CapsuleStore with debug logging.
type LoggingCapsuleStore struct {
	next   mako.CapsuleStore
	logger *slog.Logger
}

// NewLoggingCapsuleStore creates a new LoggingCapsuleStore.
func NewLoggingCapsuleStore(next mako.CapsuleStore, logger *slog.Logger) *LoggingCapsuleStore {
	return &LoggingCapsuleStore{next: next, logger: logger}
}

// SaveCapsule delegates to the wrapped store and logs the operation.
func (s *LoggingCapsuleStore) SaveCapsule(ctx context.Context, c *mako.Capsule) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("capsule save",
			"url", c.Canonical,
			"bytes", len(c.Body),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SaveCapsule(ctx, c)
}
