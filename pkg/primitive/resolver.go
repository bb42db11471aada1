package primitive

import (
	"context"

	"github.com/ruFelix/hesper/pkg/dao"
)

// Resolver turns a raw identifier into an entity.
// It reports dao.ErrNotFound and dao.ErrInvalidID for data the user can correct;
// every other error is treated as a fault.
type Resolver interface {
	Resolve(ctx context.Context, raw any) (dao.Entity, error)
}

// ResolverFunc adapts a function to Resolver.
type ResolverFunc func(ctx context.Context, raw any) (dao.Entity, error)

func (fn ResolverFunc) Resolve(ctx context.Context, raw any) (dao.Entity, error) {
	return fn(ctx, raw)
}
