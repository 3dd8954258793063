package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"voyage-routing-service/internal/domain"
)

// FindMultiLeg runs cost-Dijkstra independently on each consecutive
// segment of origin, intermediates..., destination, all against the
// same query date rather than the arrival time of the previous
// segment. This is a source-level simplification: it ignores any
// temporal offset a real voyage would accumulate across segments.
// Segments are independent of one another (none consumes another's
// output), so they are solved concurrently; if any segment fails, the
// whole request fails. Segment paths are concatenated with
// de-duplication of the shared join port.
func FindMultiLeg(graph *domain.Graph, origin string, intermediates []string, destination string, date domain.Date) domain.PathResult {
	stops := make([]string, 0, len(intermediates)+2)
	stops = append(stops, origin)
	stops = append(stops, intermediates...)
	stops = append(stops, destination)

	if len(stops) < 2 {
		return domain.PathResult{Diagnostic: "multi-leg request requires at least an origin and a destination"}
	}

	segments := make([]domain.PathResult, len(stops)-1)

	g, _ := errgroup.WithContext(context.Background())
	for i := 0; i < len(stops)-1; i++ {
		i := i
		g.Go(func() error {
			segment := FindCheapest(graph, stops[i], stops[i+1], date, nil)
			if !segment.Found {
				return fmt.Errorf("segment %s -> %s failed: %s", stops[i], stops[i+1], segment.Diagnostic)
			}
			segments[i] = segment
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return domain.PathResult{Diagnostic: err.Error()}
	}

	return concatenateSegments(segments)
}

// concatenateSegments joins a sequence of already-found PathResults
// end to end, dropping the duplicated join port name between
// consecutive segments and summing costs and durations across the
// whole chain.
func concatenateSegments(segments []domain.PathResult) domain.PathResult {
	var path []string
	var legs []domain.Leg
	var layovers []domain.Layover
	totalCost := 0
	totalHours := 0

	for i, seg := range segments {
		if i == 0 {
			path = append(path, seg.Path...)
		} else {
			// seg.Path[0] is the join port already present as the
			// previous segment's last element.
			path = append(path, seg.Path[1:]...)
		}
		legs = append(legs, seg.Legs...)
		layovers = append(layovers, seg.Layovers...)
		totalCost += seg.TotalCost
		totalHours += seg.TotalHours
	}

	return domain.PathResult{
		Found:      true,
		Path:       path,
		Legs:       legs,
		Layovers:   layovers,
		TotalCost:  totalCost,
		TotalHours: totalHours,
	}
}
