package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/isdelr/passpocket-be/internal/passgen"
	"github.com/rs/zerolog/log"
)

// GeneratorHandler handles HTTP requests for password generation and
// strength estimation. Both operations are stateless.
type GeneratorHandler struct{}

// NewGeneratorHandler creates a new GeneratorHandler.
func NewGeneratorHandler() *GeneratorHandler {
	return &GeneratorHandler{}
}

// Generate handles the request to produce a random password from a
// character-class policy.
func (h *GeneratorHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var opts passgen.Options
	if err := json.NewDecoder(r.Body).Decode(&opts); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid request body"})
		return
	}

	password, err := passgen.Generate(opts)
	if err != nil {
		log.Warn().Err(err).Int("length", opts.Length).Msg("Failed to generate password")
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"password": password,
		"strength": passgen.EstimateStrength(password),
	})
}

// Strength handles the request to classify a password into a strength tier.
func (h *GeneratorHandler) Strength(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid request body"})
		return
	}

	writeJSON(w, http.StatusOK, passgen.EstimateStrength(body.Password))
}
