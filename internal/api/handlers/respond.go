package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/isdelr/passpocket-be/internal/vault"
)

// writeJSON encodes v as the response body with the given status code.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// errorResponse is the error envelope shared by all endpoints.
type errorResponse struct {
	Error string `json:"error"`
}

// writeError maps a vault error kind to its HTTP status. Store faults are
// surfaced as an opaque internal error.
func writeError(w http.ResponseWriter, err error) {
	var validationErr *vault.ValidationError
	switch {
	case errors.Is(err, vault.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "Not found"})
	case errors.As(err, &validationErr):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: validationErr.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Internal server error"})
	}
}
