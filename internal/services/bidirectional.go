package services

import "voyage-routing-service/internal/domain"

// backwardState is the simplified per-vertex state kept by the backward
// half of the bidirectional search: it tracks only fare-based distance
// and a parent pointer over the reverse graph. It deliberately carries
// no arrival-date/time fields since the backward pass performs no
// temporal filtering.
type backwardState struct {
	dist    []int
	parent  []int
	visited []bool
}

func newBackwardState(n int) *backwardState {
	s := &backwardState{
		dist:    make([]int, n),
		parent:  make([]int, n),
		visited: make([]bool, n),
	}
	for i := range s.dist {
		s.dist[i] = infinite
		s.parent[i] = -1
	}
	return s
}

// reverseEdge pairs a leg with the neighbor reached by traversing it
// backward (i.e. the leg's origin, from the perspective of standing at
// its destination).
type reverseEdge struct {
	neighbor string
	leg      domain.Leg
}

// buildReverseAdjacency indexes every leg in the graph by destination,
// ignoring date and time, since the backward pass is non-temporal.
func buildReverseAdjacency(graph *domain.Graph) map[string][]reverseEdge {
	rev := make(map[string][]reverseEdge)
	for _, p := range graph.AllPorts() {
		for _, leg := range graph.LegsFrom(p.Name) {
			rev[leg.Destination] = append(rev[leg.Destination], reverseEdge{neighbor: leg.Origin, leg: leg})
		}
	}
	return rev
}

// FindCheapestBidirectional alternates a forward, time-aware cost-Dijkstra
// from origin with a backward, fare-only Dijkstra from destination over
// the reverse graph, stopping at the first vertex visited by both
// sides. The meeting distance is a lower-bound heuristic only: the
// authoritative total cost is recomputed from the reconstructed leg
// sequence using the full cost model.
func FindCheapestBidirectional(graph *domain.Graph, origin, destination string, date domain.Date) domain.PathResult {
	if !graph.HasPort(origin) {
		return domain.PathResult{Diagnostic: "unknown origin port: " + origin}
	}
	if !graph.HasPort(destination) {
		return domain.PathResult{Diagnostic: "unknown destination port: " + destination}
	}
	if origin == destination {
		return originOnlyResult(origin)
	}

	idx := buildPortIndex(graph)
	n := idx.Len()
	originIdx := idx.Index(origin)
	destIdx := idx.Index(destination)
	if originIdx == -1 || destIdx == -1 {
		return domain.PathResult{Diagnostic: "port index mapping failed"}
	}

	reverse := buildReverseAdjacency(graph)

	fwdDist := make([]int, n)
	for i := range fwdDist {
		fwdDist[i] = infinite
	}
	fwdDist[originIdx] = 0
	fwd := newSingleArrivalState(n)
	fwd.arrivalDate[originIdx] = date
	fwd.arrivalTime[originIdx] = "00:00"

	bwd := newBackwardState(n)
	bwd.dist[destIdx] = 0

	meetingIdx := -1

	for meetingIdx == -1 {
		fwdProgressed := stepForward(graph, idx, fwdDist, fwd)
		if fwdProgressed != -1 && bwd.visited[fwdProgressed] {
			meetingIdx = fwdProgressed
			break
		}

		bwdProgressed := stepBackward(reverse, idx, bwd)
		if bwdProgressed != -1 && fwd.visited[bwdProgressed] {
			meetingIdx = bwdProgressed
			break
		}

		if fwdProgressed == -1 && bwdProgressed == -1 {
			break
		}
	}

	if meetingIdx == -1 {
		return domain.PathResult{Diagnostic: "no feasible path found"}
	}

	return reconstructBidirectionalPath(graph, idx, fwd, bwd, originIdx, meetingIdx, destIdx)
}

// stepForward advances the forward frontier by one vertex, mirroring
// the relaxation rule in FindCheapest, and returns the index just
// visited, or -1 if the forward frontier is exhausted.
func stepForward(graph *domain.Graph, idx *domain.PortIndexMap, dist []int, state *singleArrivalState) int {
	minIdx := selectMinUnvisited(dist, state.visited)
	if minIdx == -1 {
		return -1
	}
	state.visited[minIdx] = true

	currentPort := idx.Name(minIdx)
	legs := graph.ConnectingLegsFrom(currentPort, state.arrivalDate[minIdx], state.arrivalTime[minIdx])

	for _, leg := range legs {
		neighborIdx := idx.Index(leg.Destination)
		if neighborIdx == -1 || state.visited[neighborIdx] {
			continue
		}

		portCharge := 0
		if state.parent[minIdx] != -1 {
			if arriving, ok := findArrivingLeg(
				graph,
				idx.Name(state.parent[minIdx]),
				state.arrivalDate[state.parent[minIdx]],
				state.arrivalTime[state.parent[minIdx]],
				currentPort,
				state.arrivalDate[minIdx],
			); ok {
				port, _ := graph.Port(currentPort)
				_, portCharge = evaluateLayover(port, arriving, leg)
			}
		}

		newDist := dist[minIdx] + leg.Fare + portCharge
		if newDist < dist[neighborIdx] {
			dist[neighborIdx] = newDist
			state.parent[neighborIdx] = minIdx
			state.arrivalDate[neighborIdx] = leg.Date
			state.arrivalTime[neighborIdx] = leg.ArrivalTime
		}
	}

	return minIdx
}

// stepBackward advances the backward frontier by one vertex over the
// reverse graph, relaxing on fare alone with no temporal filtering or
// port charges, and returns the index just visited, or -1 if the
// backward frontier is exhausted.
func stepBackward(reverse map[string][]reverseEdge, idx *domain.PortIndexMap, state *backwardState) int {
	minIdx := selectMinUnvisited(state.dist, state.visited)
	if minIdx == -1 {
		return -1
	}
	state.visited[minIdx] = true

	currentPort := idx.Name(minIdx)
	for _, edge := range reverse[currentPort] {
		neighborIdx := idx.Index(edge.neighbor)
		if neighborIdx == -1 || state.visited[neighborIdx] {
			continue
		}

		newDist := state.dist[minIdx] + edge.leg.Fare
		if newDist < state.dist[neighborIdx] {
			state.dist[neighborIdx] = newDist
			state.parent[neighborIdx] = minIdx
		}
	}

	return minIdx
}

// reconstructBidirectionalPath walks the forward parent chain from the
// meeting point to origin, then the backward parent chain from the
// meeting point to destination, concatenates them, and recomputes the
// authoritative cost and duration from the full leg sequence.
func reconstructBidirectionalPath(
	graph *domain.Graph,
	idx *domain.PortIndexMap,
	fwd *singleArrivalState,
	bwd *backwardState,
	originIdx, meetingIdx, destIdx int,
) domain.PathResult {
	var forwardHalf []int
	for cur := meetingIdx; cur != -1; cur = fwd.parent[cur] {
		forwardHalf = append(forwardHalf, cur)
	}
	for l, r := 0, len(forwardHalf)-1; l < r; l, r = l+1, r-1 {
		forwardHalf[l], forwardHalf[r] = forwardHalf[r], forwardHalf[l]
	}

	var backwardHalf []int
	for cur := bwd.parent[meetingIdx]; cur != -1; cur = bwd.parent[cur] {
		backwardHalf = append(backwardHalf, cur)
	}

	pathIdx := append(forwardHalf, backwardHalf...)
	if len(pathIdx) == 0 || pathIdx[0] != originIdx || pathIdx[len(pathIdx)-1] != destIdx {
		return domain.PathResult{Diagnostic: "path reconstruction failed: broken meeting point"}
	}

	path := make([]string, len(pathIdx))
	for i, pi := range pathIdx {
		path[i] = idx.Name(pi)
	}

	legs := make([]domain.Leg, 0, len(pathIdx)-1)
	for i := 0; i < len(pathIdx)-1; i++ {
		fromIdx := pathIdx[i]
		toIdx := pathIdx[i+1]
		fromPort := path[i]
		toPort := path[i+1]

		// The forward-discovered portion of the meeting path re-derives
		// its legs with full temporal precision from the recorded
		// arrival state; the backward-discovered portion (including the
		// joining edge at the meeting point) was found ignoring dates
		// entirely, so it is re-derived the same non-temporal way here.
		var leg domain.Leg
		var ok bool
		if i < len(forwardHalf)-1 {
			leg, ok = findArrivingLeg(graph, fromPort, fwd.arrivalDate[fromIdx], fwd.arrivalTime[fromIdx], toPort, fwd.arrivalDate[toIdx])
		}
		if !ok {
			leg, ok = findAnyLegBetween(graph, fromPort, toPort)
		}
		if !ok {
			return domain.PathResult{Diagnostic: "path reconstruction failed: missing leg " + fromPort + " -> " + toPort}
		}
		legs = append(legs, leg)
	}

	layovers := buildLayovers(graph, legs)
	return domain.PathResult{
		Found:      true,
		Path:       path,
		Legs:       legs,
		Layovers:   layovers,
		TotalCost:  domain.TotalCostFor(legs, layovers),
		TotalHours: domain.TotalHoursFor(legs, layovers),
	}
}

// findAnyLegBetween re-derives every backward-discovered edge (and any
// forward edge the exact arrival-date match fails to locate) without
// regard to dates, since the backward search ignored dates entirely.
// It returns the first matching leg in insertion order.
func findAnyLegBetween(graph *domain.Graph, from, to string) (domain.Leg, bool) {
	for _, leg := range graph.LegsFrom(from) {
		if leg.Destination == to {
			return leg, true
		}
	}
	return domain.Leg{}, false
}
