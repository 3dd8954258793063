package api

import (
	"net/http"

	"voyage-routing-service/internal/api/handlers"
	"voyage-routing-service/internal/domain"
	"voyage-routing-service/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root (handlers stay
// unaware of concrete adapters).
func NewRouter(engine services.Engine, graph *domain.Graph, counters *services.QueryCounters) http.Handler {
	mux := http.NewServeMux()

	healthHandler := &handlers.HealthHandler{Counters: counters}
	routeHandler := &handlers.RouteHandler{Engine: engine}
	dockingHandler := &handlers.DockingHandler{Graph: graph}

	mux.HandleFunc("/health", healthHandler.Health)
	mux.HandleFunc("/routes/cheapest", routeHandler.Cheapest)
	mux.HandleFunc("/routes/cheapest/bidirectional", routeHandler.CheapestBidirectional)
	mux.HandleFunc("/routes/shortest", routeHandler.Shortest)
	mux.HandleFunc("/routes/multi-leg", routeHandler.MultiLeg)
	mux.HandleFunc("/routes/enumerate", routeHandler.Enumerate)
	mux.HandleFunc("/routes/connecting", routeHandler.Connecting)
	mux.HandleFunc("/docking/", dockingHandler.Dispatch)

	return loggingMiddleware(mux)
}
