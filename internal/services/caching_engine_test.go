package services

import (
	"context"
	"testing"

	"voyage-routing-service/internal/domain"
)

type fakePathCache struct {
	store map[string]domain.PathResult
	gets  int
	puts  int
}

func newFakePathCache() *fakePathCache {
	return &fakePathCache{store: make(map[string]domain.PathResult)}
}

func (f *fakePathCache) Get(_ context.Context, key string) (domain.PathResult, bool, error) {
	f.gets++
	r, ok := f.store[key]
	return r, ok, nil
}

func (f *fakePathCache) Put(_ context.Context, key string, result domain.PathResult) error {
	f.puts++
	f.store[key] = result
	return nil
}

func TestCachingEngineCachesCheapestQueries(t *testing.T) {
	g := buildTestGraph()
	cache := newFakePathCache()
	inner := NewEngine(g, nil)
	engine := NewCachingEngine(inner, cache)
	ctx := context.Background()

	first, err := engine.FindCheapest(ctx, "SIN", "LAX", "01/06/2026", nil)
	if err != nil || !first.Found {
		t.Fatalf("first FindCheapest: err=%v found=%v", err, first.Found)
	}
	if cache.puts != 1 {
		t.Errorf("expected 1 cache put after first miss, got %d", cache.puts)
	}

	second, err := engine.FindCheapest(ctx, "SIN", "LAX", "01/06/2026", nil)
	if err != nil || !second.Found {
		t.Fatalf("second FindCheapest: err=%v found=%v", err, second.Found)
	}
	if cache.puts != 1 {
		t.Errorf("expected no additional cache put on a hit, got %d total", cache.puts)
	}
	if second.TotalCost != first.TotalCost {
		t.Errorf("cached result cost = %d, want %d", second.TotalCost, first.TotalCost)
	}
}

func TestCachingEngineNilCachePassesThrough(t *testing.T) {
	g := buildTestGraph()
	inner := NewEngine(g, nil)
	engine := NewCachingEngine(inner, nil)

	result, err := engine.FindCheapest(context.Background(), "SIN", "LAX", "01/06/2026", nil)
	if err != nil || !result.Found {
		t.Fatalf("expected pass-through query to succeed, err=%v found=%v", err, result.Found)
	}
}
