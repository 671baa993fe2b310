package mock

import (
	"context"

	"github.com/fwojciec/msdocs"
)

var _ msdocs.Resolver = (*Resolver)(nil)

// Resolver is a mock implementation of msdocs.Resolver.
type Resolver struct {
	ResolveFn func(ctx context.Context, query string) (*msdocs.Match, error)
}

func (r *Resolver) Resolve(ctx context.Context, query string) (*msdocs.Match, error) {
	return r.ResolveFn(ctx, query)
}
