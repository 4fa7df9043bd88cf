package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"github.com/futmetrics/stats-api/internal/models"
)

// GetPerformanceMetrics returns the aggregated metrics for a player,
// normalizing their scraped history first if needed.
func (h *Handler) GetPerformanceMetrics(w http.ResponseWriter, r *http.Request) {
	player := chi.URLParam(r, "player")
	ctx := r.Context()

	records, err := h.integration.ConvertToMatchRecords(ctx, player)
	if err != nil {
		h.logger.Errorw("Failed to resolve match records", "player", player, "error", err)
		h.serviceError(w, err, "Failed to resolve match records")
		return
	}
	if len(records) == 0 {
		h.errorResponse(w, http.StatusNotFound, "No statistics found for player: "+player)
		return
	}

	metrics, err := h.metrics.CalculateMetrics(ctx, records)
	if err != nil {
		h.logger.Errorw("Failed to calculate metrics", "player", player, "error", err)
		h.serviceError(w, err, "Failed to calculate metrics")
		return
	}

	h.jsonResponse(w, http.StatusOK, metrics)
}

// PredictPerformance produces a prediction snapshot for the fixture
// context given in the query string.
func (h *Handler) PredictPerformance(w http.ResponseWriter, r *http.Request) {
	player := chi.URLParam(r, "player")

	isHome, err := strconv.ParseBool(r.URL.Query().Get("isHome"))
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, "isHome must be a boolean")
		return
	}
	query := models.PredictionQuery{
		Opponent: r.URL.Query().Get("opponent"),
		IsHome:   isHome,
		Position: r.URL.Query().Get("position"),
	}
	if err := h.validator.Struct(query); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "opponent and position are required")
		return
	}

	// Make sure the history exists before predicting over it.
	if _, err := h.integration.ConvertToMatchRecords(r.Context(), player); err != nil {
		h.logger.Errorw("Failed to resolve match records", "player", player, "error", err)
		h.serviceError(w, err, "Failed to resolve match records")
		return
	}

	prediction, err := h.prediction.PredictPerformance(r.Context(), player, query.Opponent, query.IsHome, query.Position)
	if err != nil {
		h.logger.Errorw("Failed to predict performance", "player", player, "error", err)
		h.serviceError(w, err, "Failed to predict performance")
		return
	}

	h.jsonResponse(w, http.StatusOK, prediction)
}

// ConvertPlayerData normalizes a player's scraped history on demand.
func (h *Handler) ConvertPlayerData(w http.ResponseWriter, r *http.Request) {
	player := chi.URLParam(r, "player")

	records, err := h.integration.ConvertToMatchRecords(r.Context(), player)
	if err != nil {
		h.logger.Errorw("Failed to convert player data", "player", player, "error", err)
		h.serviceError(w, err, "Failed to convert player data")
		return
	}

	h.jsonResponse(w, http.StatusOK, models.ConvertDataResponse{
		Status:           "SUCCESS",
		Player:           player,
		ConvertedMatches: len(records),
		Message:          "Scraped history normalized into match records",
	})
}

// GetComparison computes metrics per season. Seasons come from the
// ?seasons= list, defaulting to the configured current season.
func (h *Handler) GetComparison(w http.ResponseWriter, r *http.Request) {
	player := chi.URLParam(r, "player")
	ctx := r.Context()

	seasons := []string{}
	if raw := r.URL.Query().Get("seasons"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(s); trimmed != "" {
				seasons = append(seasons, trimmed)
			}
		}
	}
	if len(seasons) == 0 {
		seasons = []string{h.season}
	}

	records, err := h.integration.ConvertToMatchRecords(ctx, player)
	if err != nil {
		h.logger.Errorw("Failed to resolve match records", "player", player, "error", err)
		h.serviceError(w, err, "Failed to resolve match records")
		return
	}

	comparison := models.SeasonComparison{
		Player:  player,
		Seasons: make(map[string]*models.PerformanceMetrics, len(seasons)),
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	for _, season := range seasons {
		season := season
		g.Go(func() error {
			subset := make([]models.MatchRecord, 0, len(records))
			for _, rec := range records {
				if rec.Season == season {
					subset = append(subset, rec)
				}
			}
			if len(subset) == 0 {
				return nil
			}
			metrics, err := h.metrics.CalculateMetrics(gctx, subset)
			if err != nil {
				return err
			}
			mu.Lock()
			comparison.Seasons[season] = metrics
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		h.logger.Errorw("Failed to compute comparison", "player", player, "error", err)
		h.serviceError(w, err, "Failed to compute comparison")
		return
	}

	h.jsonResponse(w, http.StatusOK, comparison)
}
