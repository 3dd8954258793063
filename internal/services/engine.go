package services

import (
	"context"
	"fmt"

	"go.uber.org/atomic"

	"voyage-routing-service/internal/domain"
)

// Engine is the query surface the HTTP layer (and any other caller)
// depends on. error is returned only for structural/programmer-error
// situations (nil graph, negative depth); the three routing-failure
// kinds are always communicated through PathResult.Found == false or
// PathResult.Warnings, never through error.
type Engine interface {
	FindCheapest(ctx context.Context, origin, destination string, date domain.Date, prefs *domain.PreferenceFilter) (domain.PathResult, error)
	FindCheapestBidirectional(ctx context.Context, origin, destination string, date domain.Date) (domain.PathResult, error)
	FindShortest(ctx context.Context, origin, destination string, date domain.Date, prefs *domain.PreferenceFilter) (domain.PathResult, error)
	FindMultiLeg(ctx context.Context, origin string, intermediates []string, destination string, date domain.Date) (domain.PathResult, error)
	EnumerateAllPaths(ctx context.Context, origin, destination string, date domain.Date, depth int) ([][]string, error)
	ConnectingLegs(ctx context.Context, origin, destination string, date domain.Date, prefs *domain.PreferenceFilter) ([]domain.Leg, error)
}

// QueryCounters tallies queries served per algorithm for /health
// reporting. All fields are safe for concurrent use.
type QueryCounters struct {
	Cheapest              atomic.Int64
	CheapestBidirectional atomic.Int64
	Shortest              atomic.Int64
	MultiLeg              atomic.Int64
	Enumerate             atomic.Int64
	Connecting            atomic.Int64
}

// Snapshot returns the current counter values as a plain map, suitable
// for embedding in a health-check payload.
func (c *QueryCounters) Snapshot() map[string]int64 {
	return map[string]int64{
		"find_cheapest":               c.Cheapest.Load(),
		"find_cheapest_bidirectional": c.CheapestBidirectional.Load(),
		"find_shortest":               c.Shortest.Load(),
		"find_multi_leg":              c.MultiLeg.Load(),
		"enumerate_all_paths":         c.Enumerate.Load(),
		"connecting_legs":             c.Connecting.Load(),
	}
}

// engine is the default Engine implementation: a thin dispatcher over
// the package-level algorithm functions, bound to one static graph.
type engine struct {
	graph    *domain.Graph
	counters *QueryCounters
}

// NewEngine binds a routing engine to an immutable graph. The graph
// must not be mutated for the engine's lifetime.
func NewEngine(graph *domain.Graph, counters *QueryCounters) Engine {
	if counters == nil {
		counters = &QueryCounters{}
	}
	return &engine{graph: graph, counters: counters}
}

func (e *engine) FindCheapest(_ context.Context, origin, destination string, date domain.Date, prefs *domain.PreferenceFilter) (domain.PathResult, error) {
	if e.graph == nil {
		return domain.PathResult{}, fmt.Errorf("find cheapest: engine has no graph bound")
	}
	e.counters.Cheapest.Inc()
	return FindCheapest(e.graph, origin, destination, date, prefs), nil
}

func (e *engine) FindCheapestBidirectional(_ context.Context, origin, destination string, date domain.Date) (domain.PathResult, error) {
	if e.graph == nil {
		return domain.PathResult{}, fmt.Errorf("find cheapest bidirectional: engine has no graph bound")
	}
	e.counters.CheapestBidirectional.Inc()
	return FindCheapestBidirectional(e.graph, origin, destination, date), nil
}

func (e *engine) FindShortest(_ context.Context, origin, destination string, date domain.Date, prefs *domain.PreferenceFilter) (domain.PathResult, error) {
	if e.graph == nil {
		return domain.PathResult{}, fmt.Errorf("find shortest: engine has no graph bound")
	}
	e.counters.Shortest.Inc()
	return FindShortest(e.graph, origin, destination, date, prefs), nil
}

func (e *engine) FindMultiLeg(_ context.Context, origin string, intermediates []string, destination string, date domain.Date) (domain.PathResult, error) {
	if e.graph == nil {
		return domain.PathResult{}, fmt.Errorf("find multi-leg: engine has no graph bound")
	}
	e.counters.MultiLeg.Inc()
	return FindMultiLeg(e.graph, origin, intermediates, destination, date), nil
}

func (e *engine) EnumerateAllPaths(_ context.Context, origin, destination string, date domain.Date, depth int) ([][]string, error) {
	if e.graph == nil {
		return nil, fmt.Errorf("enumerate all paths: engine has no graph bound")
	}
	if depth < 0 {
		return nil, fmt.Errorf("enumerate all paths: depth must be non-negative, got %d", depth)
	}
	e.counters.Enumerate.Inc()
	return EnumerateAllPaths(e.graph, origin, destination, date, depth), nil
}

func (e *engine) ConnectingLegs(_ context.Context, origin, destination string, date domain.Date, prefs *domain.PreferenceFilter) ([]domain.Leg, error) {
	if e.graph == nil {
		return nil, fmt.Errorf("connecting legs: engine has no graph bound")
	}
	e.counters.Connecting.Inc()
	return ConnectingLegs(e.graph, origin, destination, date, prefs), nil
}
