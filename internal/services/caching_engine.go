package services

import (
	"context"
	"log"
	"sort"
	"strconv"

	"voyage-routing-service/internal/adapters/cache"
	"voyage-routing-service/internal/domain"
	"voyage-routing-service/internal/ports"
)

// CachingEngine decorates an Engine with an optional PathResultCache in
// front of the cheapest-path query, the one callers are expected to
// repeat most often for a fixed schedule. A cache miss or error falls
// through to the wrapped engine transparently; caching is best-effort
// and never turns a successful query into a failure.
type CachingEngine struct {
	Engine
	Cache ports.PathResultCache
}

// NewCachingEngine wraps inner with resultCache. A nil resultCache
// makes this a pass-through.
func NewCachingEngine(inner Engine, resultCache ports.PathResultCache) *CachingEngine {
	return &CachingEngine{Engine: inner, Cache: resultCache}
}

func (e *CachingEngine) FindCheapest(ctx context.Context, origin, destination string, date domain.Date, prefs *domain.PreferenceFilter) (domain.PathResult, error) {
	if e.Cache == nil {
		return e.Engine.FindCheapest(ctx, origin, destination, date, prefs)
	}

	key := cheapestCacheKey(origin, destination, date, prefs)
	if cached, found, err := e.Cache.Get(ctx, key); err == nil && found {
		return cached, nil
	}

	result, err := e.Engine.FindCheapest(ctx, origin, destination, date, prefs)
	if err != nil {
		return result, err
	}

	if putErr := e.Cache.Put(ctx, key, result); putErr != nil {
		log.Printf("caching engine: cache put failed, serving uncached result: %v", putErr)
	}
	return result, nil
}

// cheapestCacheKey fingerprints the query's identifying parameters
// (origin, destination, date, algorithm, preference filter) into the
// opaque key stored by every PathResultCache backend.
func cheapestCacheKey(origin, destination string, date domain.Date, prefs *domain.PreferenceFilter) string {
	parts := []string{"cheapest", origin, destination, string(date)}
	if prefs != nil {
		parts = append(parts,
			cache.FingerprintStrings(sortedKeysSlice(prefs.Carriers)),
			cache.FingerprintStrings(sortedKeysSlice(prefs.RequiredPorts)),
			cache.FingerprintStrings(sortedKeysSlice(prefs.ExcludedPorts)),
			strconv.Itoa(prefs.MaxVoyageHours),
		)
	}
	return cache.Fingerprint(parts...)
}

func sortedKeysSlice(m map[string]struct{}) []string {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
