package services

import "voyage-routing-service/internal/domain"

// FindShortest computes the minimum-hop-count path from origin to
// destination, tie-breaking by fare+port-charge cost when two
// candidates reach a port in the same number of hops. Both hop counts
// and cost are maintained per vertex so the tie-break can switch the
// recorded parent without discarding the hop count itself.
func FindShortest(graph *domain.Graph, origin, destination string, date domain.Date, prefs *domain.PreferenceFilter) domain.PathResult {
	if !graph.HasPort(origin) {
		return domain.PathResult{Diagnostic: "unknown origin port: " + origin}
	}
	if !graph.HasPort(destination) {
		return domain.PathResult{Diagnostic: "unknown destination port: " + destination}
	}
	if origin == destination {
		return originOnlyResult(origin)
	}
	if len(graph.ConnectingLegsFrom(origin, date, "00:00")) == 0 {
		return domain.PathResult{Diagnostic: "no outbound legs from origin on or after query date"}
	}

	idx := buildPortIndex(graph)
	n := idx.Len()
	originIdx := idx.Index(origin)
	destIdx := idx.Index(destination)
	if originIdx == -1 || destIdx == -1 {
		return domain.PathResult{Diagnostic: "port index mapping failed"}
	}

	hops := make([]int, n)
	cost := make([]int, n)
	for i := range hops {
		hops[i] = infinite
		cost[i] = infinite
	}
	hops[originIdx] = 0
	cost[originIdx] = 0

	state := newSingleArrivalState(n)
	state.arrivalDate[originIdx] = date
	state.arrivalTime[originIdx] = "00:00"

	found := false

	for {
		minIdx := selectMinHopsUnvisited(hops, cost, state.visited)
		if minIdx == -1 {
			break
		}
		state.visited[minIdx] = true

		if minIdx == destIdx {
			found = true
			break
		}

		currentPort := idx.Name(minIdx)
		legs := graph.ConnectingLegsFrom(currentPort, state.arrivalDate[minIdx], state.arrivalTime[minIdx])

		for _, leg := range legs {
			if !prefs.MatchesLeg(leg) {
				continue
			}

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

			newHops := hops[minIdx] + 1
			newCost := cost[minIdx] + leg.Fare + portCharge

			relax := false
			switch {
			case newHops < hops[neighborIdx]:
				relax = true
			case newHops == hops[neighborIdx] && newCost < cost[neighborIdx]:
				relax = true
			}

			if relax {
				hops[neighborIdx] = newHops
				cost[neighborIdx] = newCost
				state.parent[neighborIdx] = minIdx
				state.arrivalDate[neighborIdx] = leg.Date
				state.arrivalTime[neighborIdx] = leg.ArrivalTime
			}
		}
	}

	if !found {
		return domain.PathResult{Diagnostic: "no feasible path found"}
	}

	return reconstructPath(graph, idx, state, originIdx, destIdx, prefs)
}

// selectMinHopsUnvisited returns the unvisited index with the fewest
// hops, breaking ties by lower cost, or -1 if every reachable vertex
// has been visited.
func selectMinHopsUnvisited(hops, cost []int, visited []bool) int {
	minIdx := -1
	minHops := infinite
	minCost := infinite
	for i := range hops {
		if visited[i] {
			continue
		}
		if hops[i] > minHops {
			continue
		}
		if hops[i] < minHops || cost[i] < minCost {
			minHops = hops[i]
			minCost = cost[i]
			minIdx = i
		}
	}
	return minIdx
}
