package services

import (
	"math"

	"voyage-routing-service/internal/domain"
)

// infinite is the "unreached" sentinel for Dijkstra distance/hop arrays.
const infinite = math.MaxInt32

// singleArrivalState is the per-vertex state both the cost-Dijkstra and
// hop-count Dijkstra maintain: one best (parent, arrivalDate,
// arrivalTime) triple per port. Because port charges depend on the
// *arriving* leg, not just on the vertex, this is an approximation —
// the engine trusts that the cheapest/fewest-hops triple also yields the
// cheapest/fewest-hops onward extensions. This is a deliberate,
// preserved heuristic (see design notes), not a bug.
type singleArrivalState struct {
	parent      []int
	arrivalDate []domain.Date
	arrivalTime []domain.Clock
	visited     []bool
}

func newSingleArrivalState(n int) *singleArrivalState {
	s := &singleArrivalState{
		parent:      make([]int, n),
		arrivalDate: make([]domain.Date, n),
		arrivalTime: make([]domain.Clock, n),
		visited:     make([]bool, n),
	}
	for i := range s.parent {
		s.parent[i] = -1
	}
	return s
}

// findArrivingLeg re-derives the leg taken from fromPort to toPort by
// re-querying the graph's connecting legs from the predecessor's own
// recorded arrival, matching on destination and arrival date. It
// returns the first such leg in insertion order; when several legs
// share that destination and date, this need not be the leg the
// relaxation used. This mirrors the source's re-derivation of "the
// route just taken" rather than caching the leg object directly.
func findArrivingLeg(
	graph *domain.Graph,
	fromPort string,
	fromArrivalDate domain.Date,
	fromArrivalTime domain.Clock,
	toPort string,
	toArrivalDate domain.Date,
) (domain.Leg, bool) {
	candidates := graph.ConnectingLegsFrom(fromPort, fromArrivalDate, fromArrivalTime)
	for _, l := range candidates {
		if l.Destination == toPort && l.Date == toArrivalDate {
			return l, true
		}
	}
	return domain.Leg{}, false
}

// reconstructPath walks parent[] from destIdx back to originIdx, then
// re-derives the concrete leg sequence, layovers, and totals from the
// graph rather than trusting anything cached during the search.
func reconstructPath(
	graph *domain.Graph,
	idx *domain.PortIndexMap,
	state *singleArrivalState,
	originIdx, destIdx int,
	prefs *domain.PreferenceFilter,
) domain.PathResult {
	var pathIdx []int
	for cur := destIdx; cur != -1; cur = state.parent[cur] {
		pathIdx = append(pathIdx, cur)
	}
	// pathIdx is destination-to-origin; reverse it.
	for l, r := 0, len(pathIdx)-1; l < r; l, r = l+1, r-1 {
		pathIdx[l], pathIdx[r] = pathIdx[r], pathIdx[l]
	}

	path := make([]string, len(pathIdx))
	for i, pi := range pathIdx {
		path[i] = idx.Name(pi)
	}

	legs := make([]domain.Leg, 0, len(pathIdx)-1)
	for i := 0; i < len(pathIdx)-1; i++ {
		fromIdx := pathIdx[i]
		toIdx := pathIdx[i+1]
		fromPort := idx.Name(fromIdx)
		toPort := idx.Name(toIdx)

		leg, ok := findArrivingLeg(graph, fromPort, state.arrivalDate[fromIdx], state.arrivalTime[fromIdx], toPort, state.arrivalDate[toIdx])
		if !ok {
			return domain.PathResult{Diagnostic: "path reconstruction failed: missing leg " + fromPort + " -> " + toPort}
		}
		legs = append(legs, leg)
	}

	layovers := buildLayovers(graph, legs)
	totalCost := domain.TotalCostFor(legs, layovers)
	totalHours := domain.TotalHoursFor(legs, layovers)

	result := domain.PathResult{
		Found:      true,
		Path:       path,
		Legs:       legs,
		Layovers:   layovers,
		TotalCost:  totalCost,
		TotalHours: totalHours,
	}
	result.Warnings = prefs.MatchesPath(result.Path, result.TotalHours)
	return result
}

func originOnlyResult(origin string) domain.PathResult {
	return domain.PathResult{
		Found: true,
		Path:  []string{origin},
	}
}
