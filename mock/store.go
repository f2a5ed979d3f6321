package mock

import (
	"context"

	"github.com/fwojciec/mako"
)

var _ mako.CapsuleStore = (*CapsuleStore)(nil)

// CapsuleStore is a mock implementation of mako.CapsuleStore.
type CapsuleStore struct {
	SaveCapsuleFn func(ctx context.Context, c *mako.Capsule) error
}

func (s *CapsuleStore) SaveCapsule(ctx context.Context, c *mako.Capsule) error {
	return s.SaveCapsuleFn(ctx, c)
}

var _ mako.CapsuleIndex = (*CapsuleIndex)(nil)

// CapsuleIndex is a mock implementation of mako.CapsuleIndex.
type CapsuleIndex struct {
	UpsertCapsuleFn    func(ctx context.Context, rec *mako.CapsuleRecord) error
	FindCapsuleByURLFn func(ctx context.Context, url string) (*mako.CapsuleRecord, error)
	FindCapsulesFn     func(ctx context.Context, filter mako.CapsuleFilter) ([]*mako.CapsuleRecord, error)
	DeleteCapsuleFn    func(ctx context.Context, url string) error
}

func (i *CapsuleIndex) UpsertCapsule(ctx context.Context, rec *mako.CapsuleRecord) error {
	return i.UpsertCapsuleFn(ctx, rec)
}

func (i *CapsuleIndex) FindCapsuleByURL(ctx context.Context, url string) (*mako.CapsuleRecord, error) {
	return i.FindCapsuleByURLFn(ctx, url)
}

func (i *CapsuleIndex) FindCapsules(ctx context.Context, filter mako.CapsuleFilter) ([]*mako.CapsuleRecord, error) {
	return i.FindCapsulesFn(ctx, filter)
}

func (i *CapsuleIndex) DeleteCapsule(ctx context.Context, url string) error {
	return i.DeleteCapsuleFn(ctx, url)
}
