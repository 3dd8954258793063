package ports

import (
	"context"

	"voyage-routing-service/internal/domain"
)

// PathResultCache memoizes PathResults by an opaque query key (see
// internal/adapters/cache for the fingerprinting scheme). Implementations
// must treat a cache miss as non-fatal: callers always fall back to
// recomputation.
type PathResultCache interface {
	Get(ctx context.Context, key string) (domain.PathResult, bool, error)
	Put(ctx context.Context, key string, result domain.PathResult) error
}
