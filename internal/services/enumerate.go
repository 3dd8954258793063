package services

import "voyage-routing-service/internal/domain"

// defaultEnumerationDepth bounds the DFS enumerator when the caller
// does not specify one.
const defaultEnumerationDepth = 10

// EnumerateAllPaths performs a pure depth-first traversal from origin,
// collecting every simple path (no repeated port) that terminates at
// destination, bounded by depth (the most ports a path may hold). It is
// used for diagnostic display only
// and never feeds routing decisions. A depth <= 0 falls back to
// defaultEnumerationDepth.
func EnumerateAllPaths(graph *domain.Graph, origin, destination string, date domain.Date, depth int) [][]string {
	if depth <= 0 {
		depth = defaultEnumerationDepth
	}
	if !graph.HasPort(origin) || !graph.HasPort(destination) {
		return nil
	}

	var results [][]string
	current := make([]string, 0, depth)
	onPath := make(map[string]bool)

	var dfs func(port string)
	dfs = func(port string) {
		current = append(current, port)
		onPath[port] = true

		defer func() {
			onPath[port] = false
			current = current[:len(current)-1]
		}()

		if len(current) > depth {
			return
		}

		if port == destination {
			found := make([]string, len(current))
			copy(found, current)
			results = append(results, found)
			return
		}

		for _, leg := range graph.LegsFromOn(port, date) {
			if onPath[leg.Destination] {
				continue
			}
			dfs(leg.Destination)
		}
	}

	dfs(origin)
	return results
}
