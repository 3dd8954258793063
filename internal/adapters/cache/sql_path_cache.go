package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"voyage-routing-service/internal/domain"
	"voyage-routing-service/internal/platform/obs"
)

// SQLPathCache is a Postgres-backed PathResultCache, keyed by an
// opaque fingerprint (see Fingerprint) rather than the raw query
// parameters.
type SQLPathCache struct {
	DB *sql.DB
}

func NewSQLPathCache(db *sql.DB) *SQLPathCache {
	return &SQLPathCache{DB: db}
}

// Get looks up a previously cached PathResult by key. A miss is
// reported as (_, false, nil), never as an error.
func (c *SQLPathCache) Get(ctx context.Context, key string) (_ domain.PathResult, found bool, err error) {
	defer obs.Time(ctx, "path.cache.Get")(&err)

	if c.DB == nil {
		return domain.PathResult{}, false, errors.New("path cache: db is nil")
	}

	q := `SELECT result_json FROM path_result_cache WHERE cache_key = $1;`

	var raw []byte
	if err := c.DB.QueryRowContext(ctx, q, key).Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.PathResult{}, false, nil
		}
		return domain.PathResult{}, false, fmt.Errorf("get path cache: query path_result_cache table: %w", err)
	}

	result, err := decodeResult(raw)
	if err != nil {
		return domain.PathResult{}, false, fmt.Errorf("get path cache: %w", err)
	}
	return result, true, nil
}

// Put stores a PathResult under key, overwriting any prior entry.
func (c *SQLPathCache) Put(ctx context.Context, key string, result domain.PathResult) (err error) {
	defer obs.Time(ctx, "path.cache.Put")(&err)

	if c.DB == nil {
		return errors.New("path cache: db is nil")
	}

	raw, err := encodeResult(result)
	if err != nil {
		return fmt.Errorf("put path cache: %w", err)
	}

	q := `
	INSERT INTO path_result_cache (cache_key, result_json)
	VALUES ($1, $2)
	ON CONFLICT (cache_key) DO UPDATE
	SET result_json = EXCLUDED.result_json;
	`
	if _, err := c.DB.ExecContext(ctx, q, key, raw); err != nil {
		return fmt.Errorf("put path cache: insert path_result_cache: %w", err)
	}
	return nil
}
