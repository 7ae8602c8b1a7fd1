package handler

import (
	"net/http"

	"teamsort/internal/model"
	"teamsort/internal/service"
)

// StatsHandler handles statistics endpoints
type StatsHandler struct {
	statsSvc *service.StatsService
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(statsSvc *service.StatsService) *StatsHandler {
	return &StatsHandler{statsSvc: statsSvc}
}

// AreaStats handles GET /v1/stats/areas
func (h *StatsHandler) AreaStats(w http.ResponseWriter, r *http.Request) {
	shares, total, err := h.statsSvc.AreaStatistics(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, model.AreaStatsResponse{
		TotalGames: total,
		Shares:     shares,
	})
}
