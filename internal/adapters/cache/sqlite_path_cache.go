package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"voyage-routing-service/internal/domain"
)

// SqlitePathCache is a SQLite-backed PathResultCache for the
// single-binary/offline deployment, sharing SQLPathCache's fingerprint
// key scheme but SQLite's placeholder and upsert syntax.
type SqlitePathCache struct {
	DB *sql.DB
}

func NewSqlitePathCache(db *sql.DB) *SqlitePathCache {
	return &SqlitePathCache{DB: db}
}

func (c *SqlitePathCache) Get(ctx context.Context, key string) (domain.PathResult, bool, error) {
	if c.DB == nil {
		return domain.PathResult{}, false, errors.New("path cache: db is nil")
	}

	q := `SELECT result_json FROM path_result_cache WHERE cache_key = ?;`

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

func (c *SqlitePathCache) Put(ctx context.Context, key string, result domain.PathResult) error {
	if c.DB == nil {
		return errors.New("path cache: db is nil")
	}

	raw, err := encodeResult(result)
	if err != nil {
		return fmt.Errorf("put path cache: %w", err)
	}

	q := `INSERT OR REPLACE INTO path_result_cache (cache_key, result_json) VALUES (?, ?);`
	if _, err := c.DB.ExecContext(ctx, q, key, raw); err != nil {
		return fmt.Errorf("put path cache: insert path_result_cache: %w", err)
	}
	return nil
}
