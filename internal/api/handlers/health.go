package handlers

import (
	"net/http"

	"voyage-routing-service/internal/services"
)

// HealthHandler reports liveness plus per-algorithm query counters.
type HealthHandler struct {
	Counters *services.QueryCounters
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	res := map[string]any{
		"status": "ok",
	}
	if h.Counters != nil {
		res["queries"] = h.Counters.Snapshot()
	}
	writeJSON(w, r, http.StatusOK, res)
}
