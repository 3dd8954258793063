package handlers

import (
	"log"
	"net/http"
	"strconv"

	"voyage-routing-service/internal/api/dto"
	"voyage-routing-service/internal/domain"
	"voyage-routing-service/internal/services"
)

// RouteHandler exposes the engine's query surface over HTTP.
type RouteHandler struct {
	Engine services.Engine
}

func (h *RouteHandler) Cheapest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.CheapestRequest
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	result, err := h.Engine.FindCheapest(r.Context(), req.Origin, req.Destination, domain.Date(req.Date), dto.ToPreferenceFilter(req.Preferences))
	if err != nil {
		log.Printf("find cheapest failed: %v", err)
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	logWarnings(r, result.Warnings)

	writeJSON(w, r, http.StatusOK, dto.FromPathResult(result))
}

func (h *RouteHandler) CheapestBidirectional(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.BidirectionalRequest
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	result, err := h.Engine.FindCheapestBidirectional(r.Context(), req.Origin, req.Destination, domain.Date(req.Date))
	if err != nil {
		log.Printf("find cheapest bidirectional failed: %v", err)
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, r, http.StatusOK, dto.FromPathResult(result))
}

func (h *RouteHandler) Shortest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.CheapestRequest
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	result, err := h.Engine.FindShortest(r.Context(), req.Origin, req.Destination, domain.Date(req.Date), dto.ToPreferenceFilter(req.Preferences))
	if err != nil {
		log.Printf("find shortest failed: %v", err)
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	logWarnings(r, result.Warnings)

	writeJSON(w, r, http.StatusOK, dto.FromPathResult(result))
}

func (h *RouteHandler) MultiLeg(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.MultiLegRequest
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	result, err := h.Engine.FindMultiLeg(r.Context(), req.Origin, req.Intermediates, req.Destination, domain.Date(req.Date))
	if err != nil {
		log.Printf("find multi-leg failed: %v", err)
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, r, http.StatusOK, dto.FromPathResult(result))
}

func (h *RouteHandler) Enumerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	q := r.URL.Query()
	origin := q.Get("origin")
	destination := q.Get("destination")
	date := q.Get("date")

	depth := 0
	if raw := q.Get("depth"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "depth must be an integer")
			return
		}
		depth = parsed
	}

	paths, err := h.Engine.EnumerateAllPaths(r.Context(), origin, destination, domain.Date(date), depth)
	if err != nil {
		log.Printf("enumerate all paths failed: %v", err)
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, r, http.StatusOK, dto.EnumerateResponse{Paths: paths})
}

func (h *RouteHandler) Connecting(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	q := r.URL.Query()
	origin := q.Get("origin")
	destination := q.Get("destination")
	date := q.Get("date")

	legs, err := h.Engine.ConnectingLegs(r.Context(), origin, destination, domain.Date(date), nil)
	if err != nil {
		log.Printf("connecting legs failed: %v", err)
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ConnectingLegsResponse{Legs: dto.FromLegs(legs)})
}

// logWarnings surfaces soft-constraint violations at info level; they
// never become HTTP errors since the path was still found.
func logWarnings(r *http.Request, warnings []string) {
	for _, w := range warnings {
		log.Printf("path=%s warning=%q", r.URL.Path, w)
	}
}
