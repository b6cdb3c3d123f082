package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/isdelr/passpocket-be/internal/models"
	"github.com/isdelr/passpocket-be/internal/services"
	"github.com/rs/zerolog/log"
)

// PasswordHandler handles HTTP requests for credential records.
type PasswordHandler struct {
	service services.VaultServiceProvider
}

// NewPasswordHandler creates a new PasswordHandler.
func NewPasswordHandler(service services.VaultServiceProvider) *PasswordHandler {
	return &PasswordHandler{service: service}
}

// GetAll handles the request to list records, honoring the category, search
// and favorite query filters.
func (h *PasswordHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	filter := models.ListFilter{
		Category:      r.URL.Query().Get("category"),
		Search:        r.URL.Query().Get("search"),
		FavoritesOnly: r.URL.Query().Get("favorite") == "true",
	}

	records, err := h.service.ListRecords(r.Context(), filter)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list records")
		writeError(w, err)
		return
	}

	if records == nil {
		records = []models.CredentialRecord{}
	}
	writeJSON(w, http.StatusOK, records)
}

// Get handles the request to get a single record by its ID.
func (h *PasswordHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	record, err := h.service.GetRecord(r.Context(), id)
	if err != nil {
		log.Warn().Err(err).Str("record_id", id).Msg("Failed to get record by ID")
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

// Create handles the request to create a new record.
func (h *PasswordHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input models.RecordInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid request body"})
		return
	}

	record, err := h.service.CreateRecord(r.Context(), input)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create record")
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, record)
}

// Update handles the request to partially update an existing record.
func (h *PasswordHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var patch models.RecordPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid request body"})
		return
	}

	record, err := h.service.UpdateRecord(r.Context(), id, patch)
	if err != nil {
		log.Error().Err(err).Str("record_id", id).Msg("Failed to update record")
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

// Delete handles the request to delete a record.
func (h *PasswordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.service.DeleteRecord(r.Context(), id); err != nil {
		log.Error().Err(err).Str("record_id", id).Msg("Failed to delete record")
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// ToggleFavorite handles the request to flip a record's favorite flag.
func (h *PasswordHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	record, err := h.service.ToggleFavorite(r.Context(), id)
	if err != nil {
		log.Error().Err(err).Str("record_id", id).Msg("Failed to toggle favorite")
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}
