package services

import (
	"context"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"voyage-routing-service/internal/domain"
)

// ConnectingLegs lists every leg that could participate in some
// feasible path from origin to destination: first a reverse BFS from
// destination labels every port that can reach it, then a forward BFS
// from origin collects every outbound leg whose destination carries
// that label. Both passes apply the preference filter per leg. The
// two BFS passes are independent of one another and run concurrently.
func ConnectingLegs(graph *domain.Graph, origin, destination string, date domain.Date, prefs *domain.PreferenceFilter) []domain.Leg {
	if !graph.HasPort(origin) || !graph.HasPort(destination) {
		return nil
	}

	var canReachDestination map[string]bool
	var reverseAdjacency map[string][]reverseEdge

	g, _ := errgroup.WithContext(context.Background())
	g.Go(func() error {
		reverseAdjacency = buildReverseAdjacency(graph)
		canReachDestination = reverseBFS(reverseAdjacency, destination, prefs)
		return nil
	})

	var forwardReachable map[string]bool
	g.Go(func() error {
		forwardReachable = forwardBFS(graph, origin, date, prefs)
		return nil
	})

	_ = g.Wait()

	var legs []domain.Leg
	seen := make(map[domain.Leg]bool)
	for port := range forwardReachable {
		for _, leg := range graph.LegsFrom(port) {
			if !prefs.MatchesLeg(leg) {
				continue
			}
			if !canReachDestination[leg.Destination] {
				continue
			}
			if seen[leg] {
				continue
			}
			seen[leg] = true
			legs = append(legs, leg)
		}
	}

	sortLegsDeterministically(legs)
	return legs
}

// reverseBFS labels every port, including destination itself, that can
// reach destination by traversing legs backward, irrespective of date.
func reverseBFS(reverseAdjacency map[string][]reverseEdge, destination string, prefs *domain.PreferenceFilter) map[string]bool {
	labeled := map[string]bool{destination: true}
	queue := []string{destination}

	for len(queue) > 0 {
		port := queue[0]
		queue = queue[1:]

		for _, edge := range reverseAdjacency[port] {
			if !prefs.MatchesLeg(edge.leg) {
				continue
			}
			if labeled[edge.neighbor] {
				continue
			}
			labeled[edge.neighbor] = true
			queue = append(queue, edge.neighbor)
		}
	}
	return labeled
}

// forwardBFS labels every port, including origin itself, reachable
// from origin via connecting legs departing on or after date.
func forwardBFS(graph *domain.Graph, origin string, date domain.Date, prefs *domain.PreferenceFilter) map[string]bool {
	labeled := map[string]bool{origin: true}
	queue := []string{origin}

	for len(queue) > 0 {
		port := queue[0]
		queue = queue[1:]

		for _, leg := range graph.ConnectingLegsFrom(port, date, "00:00") {
			if !prefs.MatchesLeg(leg) {
				continue
			}
			if labeled[leg.Destination] {
				continue
			}
			labeled[leg.Destination] = true
			queue = append(queue, leg.Destination)
		}
	}
	return labeled
}

// collatorOnce and sharedCollator avoid building a fresh collator on
// every call; the
// English collation order is used purely for deterministic display
// ordering, not for any locale-sensitive business rule.
var collatorOnce sync.Once
var sharedCollator *collate.Collator

func getCollator() *collate.Collator {
	collatorOnce.Do(func() {
		sharedCollator = collate.New(language.English)
	})
	return sharedCollator
}

// sortLegsDeterministically orders legs by origin then destination
// using locale-aware string collation, breaking ties on the remaining
// leg fields, so diagnostic output does not depend on map iteration
// order.
func sortLegsDeterministically(legs []domain.Leg) {
	c := getCollator()
	sort.Slice(legs, func(i, j int) bool {
		a, b := legs[i], legs[j]
		if a.Origin != b.Origin {
			return c.CompareString(a.Origin, b.Origin) < 0
		}
		if a.Destination != b.Destination {
			return c.CompareString(a.Destination, b.Destination) < 0
		}
		if d := domain.CompareDates(a.Date, b.Date); d != 0 {
			return d < 0
		}
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		if a.DepartureTime != b.DepartureTime {
			return a.DepartureTime < b.DepartureTime
		}
		if a.ArrivalTime != b.ArrivalTime {
			return a.ArrivalTime < b.ArrivalTime
		}
		if a.Fare != b.Fare {
			return a.Fare < b.Fare
		}
		return a.Carrier < b.Carrier
	})
}
