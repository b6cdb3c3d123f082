package handlers

import (
	"net/http"

	"github.com/isdelr/passpocket-be/internal/services"
	"github.com/rs/zerolog/log"
)

// StatsHandler handles HTTP requests for vault statistics.
type StatsHandler struct {
	service services.StatsServiceProvider
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(service services.StatsServiceProvider) *StatsHandler {
	return &StatsHandler{service: service}
}

// Get handles the request to compute the vault summary and health score.
func (h *StatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.ComputeStats(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to compute vault stats")
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
