package cache

import (
	"context"
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"

	"voyage-routing-service/internal/domain"
)

func newTestSQLiteCache(t *testing.T) *SqlitePathCache {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := InitSQLiteSchema(db); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	return NewSqlitePathCache(db)
}

func TestSqlitePathCacheMissReturnsFalseNotError(t *testing.T) {
	c := newTestSQLiteCache(t)
	ctx := context.Background()

	_, found, err := c.Get(ctx, "nonexistent-key")
	if err != nil {
		t.Fatalf("Get on miss returned an error: %v", err)
	}
	if found {
		t.Fatalf("expected found=false on a cache miss")
	}
}

func TestSqlitePathCachePutThenGetRoundTrips(t *testing.T) {
	c := newTestSQLiteCache(t)
	ctx := context.Background()

	want := domain.PathResult{
		Found:      true,
		Path:       []string{"SIN", "LAX"},
		TotalCost:  500,
		TotalHours: 24,
	}

	if err := c.Put(ctx, "sin-lax-direct", want); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, found, err := c.Get(ctx, "sin-lax-direct")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !found || got.TotalCost != want.TotalCost {
		t.Errorf("got %+v found=%v, want %+v", got, found, want)
	}
}

func TestSqlitePathCachePutOverwritesExistingKey(t *testing.T) {
	c := newTestSQLiteCache(t)
	ctx := context.Background()

	_ = c.Put(ctx, "k", domain.PathResult{Found: true, TotalCost: 100})
	_ = c.Put(ctx, "k", domain.PathResult{Found: true, TotalCost: 200})

	got, found, err := c.Get(ctx, "k")
	if err != nil || !found {
		t.Fatalf("Get: found=%v err=%v", found, err)
	}
	if got.TotalCost != 200 {
		t.Errorf("TotalCost = %d, want 200 (overwritten)", got.TotalCost)
	}
}
