package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/isdelr/passpocket-be/internal/models"
	"github.com/isdelr/passpocket-be/internal/vault"
	"github.com/isdelr/passpocket-be/internal/websocket"
)

// eventTimeLayout is fixed width so text ordering on created_at is
// chronological.
const eventTimeLayout = "2006-01-02T15:04:05.000000000Z"

// EventServiceProvider defines the interface for vault activity events.
type EventServiceProvider interface {
	CreateEvent(ctx context.Context, eventType, level, message string, recordID *string) error
	GetRecentEvents(ctx context.Context, limit int) ([]models.VaultEvent, error)
}

// EventService persists vault activity and pushes it to connected clients.
type EventService struct {
	db  *sql.DB
	hub *websocket.Hub
}

// NewEventService creates a new EventService.
func NewEventService(db *sql.DB, hub *websocket.Hub) *EventService {
	return &EventService{db: db, hub: hub}
}

// CreateEvent logs a new event and broadcasts it over the websocket hub.
func (s *EventService) CreateEvent(ctx context.Context, eventType, level, message string, recordID *string) error {
	event := models.VaultEvent{
		ID:        uuid.New().String(),
		Type:      eventType,
		Level:     level,
		Message:   message,
		RecordID:  recordID,
		CreatedAt: time.Now().UTC(),
	}

	const query = "INSERT INTO events (id, type, level, message, record_id, created_at) VALUES (?, ?, ?, ?, ?, ?)"
	_, err := s.db.ExecContext(ctx, query,
		event.ID, event.Type, event.Level, event.Message, event.RecordID,
		event.CreatedAt.Format(eventTimeLayout),
	)
	if err != nil {
		return &vault.StoreError{Op: "create-event", Err: err}
	}

	s.hub.BroadcastEvent(event)
	return nil
}

// GetRecentEvents retrieves the most recent events, newest first.
func (s *EventService) GetRecentEvents(ctx context.Context, limit int) ([]models.VaultEvent, error) {
	const query = "SELECT id, type, level, message, record_id, created_at FROM events ORDER BY created_at DESC LIMIT ?"
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, &vault.StoreError{Op: "list-events", Err: err}
	}
	defer rows.Close()

	var events []models.VaultEvent
	for rows.Next() {
		var event models.VaultEvent
		var createdAt string
		if err := rows.Scan(&event.ID, &event.Type, &event.Level, &event.Message, &event.RecordID, &createdAt); err != nil {
			return nil, &vault.StoreError{Op: "list-events", Err: err}
		}
		if event.CreatedAt, err = time.Parse(eventTimeLayout, createdAt); err != nil {
			return nil, &vault.StoreError{Op: "list-events", Err: err}
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, &vault.StoreError{Op: "list-events", Err: err}
	}
	return events, nil
}
