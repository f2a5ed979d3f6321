package mako

import "context"

// CapsuleGenerator produces a capsule for one source document.
// A (nil, nil) return means the input was unusable and the document
// should be skipped, not treated as a failure.
type CapsuleGenerator interface {
	Generate(ctx context.Context, doc *SourceDocument) (*Capsule, error)
}
