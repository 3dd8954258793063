package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"voyage-routing-service/internal/domain"
)

func newTestRedisCache(t *testing.T) *RedisPathCache {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedisPathCache(client, 0)
}

func TestRedisPathCacheMissReturnsFalseNotError(t *testing.T) {
	c := newTestRedisCache(t)
	ctx := context.Background()

	_, found, err := c.Get(ctx, "nonexistent-key")
	if err != nil {
		t.Fatalf("Get on miss returned an error: %v", err)
	}
	if found {
		t.Fatalf("expected found=false on a cache miss")
	}
}

func TestRedisPathCachePutThenGetRoundTrips(t *testing.T) {
	c := newTestRedisCache(t)
	ctx := context.Background()

	want := domain.PathResult{
		Found: true,
		Path:  []string{"SIN", "HKG", "LAX"},
		Legs: []domain.Leg{
			{Origin: "SIN", Destination: "HKG", Date: "01/06/2026", DepartureTime: "08:00", ArrivalTime: "14:00", Fare: 100, Carrier: "Maersk"},
		},
		TotalCost:  100,
		TotalHours: 24,
	}

	if err := c.Put(ctx, "sin-lax", want); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, found, err := c.Get(ctx, "sin-lax")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !found {
		t.Fatalf("expected found=true after Put")
	}
	if got.TotalCost != want.TotalCost || len(got.Path) != len(want.Path) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}
