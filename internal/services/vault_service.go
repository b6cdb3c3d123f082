package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/isdelr/passpocket-be/internal/models"
	"github.com/isdelr/passpocket-be/internal/store"
	"github.com/isdelr/passpocket-be/internal/vault"
	"github.com/rs/zerolog/log"
)

// VaultServiceProvider defines the interface for credential record services.
type VaultServiceProvider interface {
	ListRecords(ctx context.Context, filter models.ListFilter) ([]models.CredentialRecord, error)
	GetRecord(ctx context.Context, id string) (models.CredentialRecord, error)
	CreateRecord(ctx context.Context, input models.RecordInput) (models.CredentialRecord, error)
	UpdateRecord(ctx context.Context, id string, patch models.RecordPatch) (models.CredentialRecord, error)
	DeleteRecord(ctx context.Context, id string) error
	ToggleFavorite(ctx context.Context, id string) (models.CredentialRecord, error)
}

// VaultService provides the query and mutation logic for credential records.
type VaultService struct {
	store  store.RecordStore
	events EventServiceProvider
}

// NewVaultService creates a new VaultService.
func NewVaultService(store store.RecordStore, events EventServiceProvider) *VaultService {
	return &VaultService{store: store, events: events}
}

// ListRecords retrieves records matching the filter, newest first.
func (s *VaultService) ListRecords(ctx context.Context, filter models.ListFilter) ([]models.CredentialRecord, error) {
	return s.store.List(ctx, filter)
}

// GetRecord retrieves a single record by its id.
func (s *VaultService) GetRecord(ctx context.Context, id string) (models.CredentialRecord, error) {
	return s.store.Get(ctx, id)
}

// CreateRecord validates the input, applies defaults, assigns an id and
// timestamps, and persists the new record.
func (s *VaultService) CreateRecord(ctx context.Context, input models.RecordInput) (models.CredentialRecord, error) {
	if input.Title == "" {
		return models.CredentialRecord{}, vault.NewValidationError("title", "must not be empty")
	}
	if input.Password == "" {
		return models.CredentialRecord{}, vault.NewValidationError("password", "must not be empty")
	}

	category := input.Category
	if category == "" {
		category = models.DefaultCategory
	}

	now := time.Now().UTC()
	record := models.CredentialRecord{
		ID:         uuid.New().String(),
		Title:      input.Title,
		Username:   input.Username,
		Email:      input.Email,
		Password:   input.Password,
		WebsiteURL: input.WebsiteURL,
		Category:   category,
		Notes:      input.Notes,
		IsFavorite: input.IsFavorite,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.store.Insert(ctx, record); err != nil {
		return models.CredentialRecord{}, err
	}

	s.emitEvent(ctx, "record.created", "info", "Created entry '"+record.Title+"'", record.ID)
	return record, nil
}

// UpdateRecord merges the supplied fields onto the existing record and
// refreshes updated_at. Fields absent from the patch keep their prior values.
func (s *VaultService) UpdateRecord(ctx context.Context, id string, patch models.RecordPatch) (models.CredentialRecord, error) {
	record, err := s.store.Get(ctx, id)
	if err != nil {
		return models.CredentialRecord{}, err
	}

	if patch.Title != nil {
		if *patch.Title == "" {
			return models.CredentialRecord{}, vault.NewValidationError("title", "must not be empty")
		}
		record.Title = *patch.Title
	}
	if patch.Password != nil {
		if *patch.Password == "" {
			return models.CredentialRecord{}, vault.NewValidationError("password", "must not be empty")
		}
		record.Password = *patch.Password
	}
	if patch.Username != nil {
		record.Username = *patch.Username
	}
	if patch.Email != nil {
		record.Email = *patch.Email
	}
	if patch.WebsiteURL != nil {
		record.WebsiteURL = *patch.WebsiteURL
	}
	if patch.Category != nil {
		record.Category = *patch.Category
	}
	if patch.Notes != nil {
		record.Notes = *patch.Notes
	}
	if patch.IsFavorite != nil {
		record.IsFavorite = *patch.IsFavorite
	}

	record.UpdatedAt = time.Now().UTC()
	if err := s.store.Update(ctx, record); err != nil {
		return models.CredentialRecord{}, err
	}

	s.emitEvent(ctx, "record.updated", "info", "Updated entry '"+record.Title+"'", record.ID)
	return record, nil
}

// DeleteRecord removes a record permanently. Deleting an id that does not
// exist fails with ErrNotFound.
func (s *VaultService) DeleteRecord(ctx context.Context, id string) error {
	record, err := s.store.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}

	s.emitEvent(ctx, "record.deleted", "info", "Deleted entry '"+record.Title+"'", record.ID)
	return nil
}

// ToggleFavorite flips the favorite flag and returns the updated record.
func (s *VaultService) ToggleFavorite(ctx context.Context, id string) (models.CredentialRecord, error) {
	if err := s.store.ToggleFavorite(ctx, id, time.Now().UTC()); err != nil {
		return models.CredentialRecord{}, err
	}

	record, err := s.store.Get(ctx, id)
	if err != nil {
		return models.CredentialRecord{}, err
	}

	s.emitEvent(ctx, "record.favorite_toggled", "info", "Toggled favorite on '"+record.Title+"'", record.ID)
	return record, nil
}

// emitEvent records vault activity. A failed event write never fails the
// mutation that triggered it.
func (s *VaultService) emitEvent(ctx context.Context, eventType, level, message, recordID string) {
	if err := s.events.CreateEvent(ctx, eventType, level, message, &recordID); err != nil {
		log.Warn().Err(err).Str("event_type", eventType).Msg("Failed to record vault event")
	}
}
