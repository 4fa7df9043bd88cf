package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/futmetrics/stats-api/internal/logic"
)

// Health check endpoint
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().UTC(),
	})
}

// Ready check endpoint
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	checks := map[string]bool{
		"postgres": h.pg.Ping(ctx) == nil,
		"redis":    h.redis.Ping(ctx).Err() == nil,
	}

	allHealthy := true
	for _, ok := range checks {
		if !ok {
			allHealthy = false
			break
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if !allHealthy {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	json.NewEncoder(w).Encode(map[string]interface{}{
		"ready":  allHealthy,
		"checks": checks,
	})
}

func (h *Handler) jsonResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *Handler) errorResponse(w http.ResponseWriter, status int, message string) {
	h.jsonResponse(w, status, map[string]string{"error": message})
}

// serviceError maps pipeline errors onto response codes: unknown entities
// are 404, everything else is an internal error.
func (h *Handler) serviceError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, logic.ErrPlayerNotFound), errors.Is(err, logic.ErrTeamNotFound):
		h.errorResponse(w, http.StatusNotFound, err.Error())
	default:
		h.errorResponse(w, http.StatusInternalServerError, fallback)
	}
}
