package services

import "voyage-routing-service/internal/domain"

// FindCheapest computes the minimum-cost path from origin to destination
// departing no earlier than date, honoring an optional preference
// filter. See design notes for the single-arrival-state relaxation
// heuristic this algorithm relies on.
func FindCheapest(graph *domain.Graph, origin, destination string, date domain.Date, prefs *domain.PreferenceFilter) domain.PathResult {
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

	dist := make([]int, n)
	for i := range dist {
		dist[i] = infinite
	}
	dist[originIdx] = 0

	state := newSingleArrivalState(n)
	state.arrivalDate[originIdx] = date
	state.arrivalTime[originIdx] = "00:00"

	found := false

	for {
		minIdx := selectMinUnvisited(dist, state.visited)
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

			newDist := dist[minIdx] + leg.Fare + portCharge
			if newDist < dist[neighborIdx] {
				dist[neighborIdx] = newDist
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

func buildPortIndex(graph *domain.Graph) *domain.PortIndexMap {
	ports := graph.AllPorts()
	names := make([]string, len(ports))
	for i, p := range ports {
		names[i] = p.Name
	}
	return domain.NewPortIndexMap(names)
}

// selectMinUnvisited returns the unvisited index with the smallest dist
// value, or -1 if every reachable vertex has been visited.
func selectMinUnvisited(dist []int, visited []bool) int {
	minIdx := -1
	minDist := infinite
	for i, d := range dist {
		if !visited[i] && d < minDist {
			minDist = d
			minIdx = i
		}
	}
	return minIdx
}
