package models

import "time"

// VaultEvent represents a loggable action or alert in the vault.
type VaultEvent struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`  // e.g., "record.created", "vault.health.low"
	Level     string    `json:"level"` // e.g., "info", "warn"
	Message   string    `json:"message"`
	RecordID  *string   `json:"recordId,omitempty"` // Nullable for vault-wide events
	CreatedAt time.Time `json:"createdAt"`
}
