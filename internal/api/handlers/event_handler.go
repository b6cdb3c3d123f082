package handlers

import (
	"net/http"
	"strconv"

	"github.com/isdelr/passpocket-be/internal/models"
	"github.com/isdelr/passpocket-be/internal/services"
	"github.com/rs/zerolog/log"
)

// EventHandler handles HTTP requests for vault activity events.
type EventHandler struct {
	service services.EventServiceProvider
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(service services.EventServiceProvider) *EventHandler {
	return &EventHandler{service: service}
}

// GetRecent handles the request to list recent vault activity.
func (h *EventHandler) GetRecent(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid limit"})
			return
		}
		if parsed > 100 {
			parsed = 100
		}
		limit = parsed
	}

	events, err := h.service.GetRecentEvents(r.Context(), limit)
	if err != nil {
		log.Error().Err(err).Msg("Failed to retrieve events")
		writeError(w, err)
		return
	}

	if events == nil {
		events = []models.VaultEvent{}
	}
	writeJSON(w, http.StatusOK, events)
}
