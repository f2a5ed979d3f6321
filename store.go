package mako

import "context"

// CapsuleStore persists serialized capsules for the delivery layer.
type CapsuleStore interface {
	// SaveCapsule writes the serialized capsule for its canonical URL.
	SaveCapsule(ctx context.Context, c *Capsule) error
}

// CapsuleIndex manages the capsule metadata index backing the discovery
// feed.
type CapsuleIndex interface {
	// UpsertCapsule inserts or replaces the record for its URL.
	UpsertCapsule(ctx context.Context, rec *CapsuleRecord) error

	// FindCapsuleByURL retrieves a record by canonical URL.
	// Returns ENOTFOUND if no record exists.
	FindCapsuleByURL(ctx context.Context, url string) (*CapsuleRecord, error)

	// FindCapsules retrieves records matching the filter, ordered by URL.
	FindCapsules(ctx context.Context, filter CapsuleFilter) ([]*CapsuleRecord, error)

	// DeleteCapsule removes the record for a URL.
	// Returns ENOTFOUND if no record exists.
	DeleteCapsule(ctx context.Context, url string) error
}

// CapsuleFilter filters FindCapsules results.
type CapsuleFilter struct {
	Type     *Type   `json:"type"`
	Language *string `json:"language"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
