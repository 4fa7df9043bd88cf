package handlers

import "net/http"

// SearchPlayers returns every known player matching ?name=, scraping the
// stats site when the store has none.
func (h *Handler) SearchPlayers(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		h.errorResponse(w, http.StatusBadRequest, "name is required")
		return
	}

	players, err := h.players.PlayerByName(r.Context(), name)
	if err != nil {
		h.logger.Errorw("Failed to look up player", "name", name, "error", err)
		h.serviceError(w, err, "Failed to look up player")
		return
	}

	// Warm the metrics aggregate off the request path.
	if h.precompute != nil && len(players) > 0 {
		h.precompute.Enqueue(players[0].Name)
	}

	h.jsonResponse(w, http.StatusOK, players)
}

// SearchTeams is the team counterpart of SearchPlayers.
func (h *Handler) SearchTeams(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		h.errorResponse(w, http.StatusBadRequest, "name is required")
		return
	}

	teams, err := h.teams.TeamByName(r.Context(), name)
	if err != nil {
		h.logger.Errorw("Failed to look up team", "name", name, "error", err)
		h.serviceError(w, err, "Failed to look up team")
		return
	}

	h.jsonResponse(w, http.StatusOK, teams)
}
