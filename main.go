package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/isdelr/passpocket-be/internal/api"
	"github.com/isdelr/passpocket-be/internal/config"
	"github.com/isdelr/passpocket-be/internal/database"
	"github.com/isdelr/passpocket-be/internal/logger"
	"github.com/isdelr/passpocket-be/internal/monitoring"
	"github.com/isdelr/passpocket-be/internal/secrets"
	"github.com/isdelr/passpocket-be/internal/services"
	"github.com/isdelr/passpocket-be/internal/store"
	"github.com/isdelr/passpocket-be/internal/websocket"
)

func main() {
	logger.Init()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set up database
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to apply database migrations: %v", err)
	}

	// Set up the secret cipher (passthrough when no master key is configured)
	cipher, err := secrets.New(cfg.MasterKey)
	if err != nil {
		log.Fatalf("Failed to initialize secret cipher: %v", err)
	}
	if !cipher.Enabled() {
		log.Println("VAULT_MASTER_KEY not set; secrets are stored in plaintext")
	}

	// Set up WebSocket Hub
	hub := websocket.NewHub()
	go hub.Run()

	// Set up the record store and services
	recordStore := store.NewSQLiteRecordStore(db, cipher)
	eventService := services.NewEventService(db, hub)
	vaultService := services.NewVaultService(recordStore, eventService)
	statsService := services.NewStatsService(recordStore)

	// Set up and run the background health auditor
	auditor, err := monitoring.NewHealthAuditor(statsService, eventService, cfg.HealthAuditSchedule, cfg.HealthAlertThreshold)
	if err != nil {
		log.Fatalf("Failed to initialize health auditor: %v", err)
	}
	go auditor.Run()

	// Set up router
	router := api.NewRouter(hub, vaultService, statsService, eventService, cfg.AllowedOrigins)

	// Set up server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on port %d\n", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	auditor.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
