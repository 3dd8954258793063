package handlers

import (
	"net/http"
	"strings"

	"voyage-routing-service/internal/api/dto"
	"voyage-routing-service/internal/domain"
)

// DockingHandler exposes the per-port docking queue. The port name is
// taken from the first path segment after /docking/ (/docking/{port}...),
// and an optional second segment names the action.
type DockingHandler struct {
	Graph *domain.Graph
}

func (h *DockingHandler) portFromPath(prefix, path string) (string, string) {
	trimmed := strings.TrimPrefix(path, prefix)
	trimmed = strings.Trim(trimmed, "/")
	parts := strings.SplitN(trimmed, "/", 2)
	port := parts[0]
	action := ""
	if len(parts) == 2 {
		action = parts[1]
	}
	return port, action
}

func (h *DockingHandler) Dispatch(w http.ResponseWriter, r *http.Request) {
	port, action := h.portFromPath("/docking/", r.URL.Path)
	if port == "" {
		writeError(w, r, http.StatusBadRequest, "port name is required")
		return
	}

	switch action {
	case "enqueue":
		h.enqueue(w, r, port)
	case "dequeue":
		h.dequeue(w, r, port)
	case "":
		h.snapshot(w, r, port)
	default:
		writeError(w, r, http.StatusNotFound, "unknown docking action")
	}
}

func (h *DockingHandler) enqueue(w http.ResponseWriter, r *http.Request, port string) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.EnqueueRequest
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	ship := strings.TrimSpace(req.Ship)
	if ship == "" {
		writeError(w, r, http.StatusBadRequest, "ship is required")
		return
	}

	queue := h.Graph.DockingQueueFor(port)
	queue.Enqueue(ship)

	writeJSON(w, r, http.StatusOK, snapshotResponse(port, queue))
}

func (h *DockingHandler) dequeue(w http.ResponseWriter, r *http.Request, port string) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	queue := h.Graph.DockingQueueFor(port)
	if _, err := queue.DequeueFront(); err != nil {
		writeError(w, r, http.StatusConflict, err.Error())
		return
	}

	writeJSON(w, r, http.StatusOK, snapshotResponse(port, queue))
}

func (h *DockingHandler) snapshot(w http.ResponseWriter, r *http.Request, port string) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	queue := h.Graph.DockingQueueFor(port)
	writeJSON(w, r, http.StatusOK, snapshotResponse(port, queue))
}

func snapshotResponse(port string, queue *domain.DockingQueue) dto.DockingSnapshotResponse {
	ships := queue.Snapshot()
	return dto.DockingSnapshotResponse{
		Port:  port,
		Ships: ships,
		Size:  len(ships),
	}
}
