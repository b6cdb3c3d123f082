package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/isdelr/passpocket-be/internal/api/handlers"
	"github.com/isdelr/passpocket-be/internal/services"
	"github.com/isdelr/passpocket-be/internal/websocket"
)

// NewRouter creates and configures a new Chi router.
func NewRouter(hub *websocket.Hub, vaultService services.VaultServiceProvider, statsService services.StatsServiceProvider, eventService services.EventServiceProvider, allowedOrigins []string) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Initialize handlers
	passwordHandler := handlers.NewPasswordHandler(vaultService)
	statsHandler := handlers.NewStatsHandler(statsService)
	generatorHandler := handlers.NewGeneratorHandler()
	eventHandler := handlers.NewEventHandler(eventService)
	wsHandler := handlers.NewWebSocketHandler(hub)

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"PassPocket API"}`))
	})

	// API versioning
	r.Route("/api/v1", func(r chi.Router) {
		// WebSocket connection endpoint for live vault activity
		r.Get("/ws", wsHandler.Serve)

		// REST API endpoints for credential records
		r.Route("/passwords", func(r chi.Router) {
			r.Get("/", passwordHandler.GetAll)
			r.Post("/", passwordHandler.Create)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", passwordHandler.Get)
				r.Put("/", passwordHandler.Update)
				r.Delete("/", passwordHandler.Delete)
				r.Patch("/favorite", passwordHandler.ToggleFavorite)
			})
		})

		r.Get("/stats", statsHandler.Get)

		r.Route("/generator", func(r chi.Router) {
			r.Post("/password", generatorHandler.Generate)
			r.Post("/strength", generatorHandler.Strength)
		})

		r.Get("/events", eventHandler.GetRecent)
	})

	return r
}
