// Package store is the persistence boundary for credential records. The
// SQLite implementation owns id lookup, filtering, ordering and the
// favorite-toggle conditional update; secret values pass through the
// configured cipher on every read and write.
package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/isdelr/passpocket-be/internal/models"
	"github.com/isdelr/passpocket-be/internal/secrets"
	"github.com/isdelr/passpocket-be/internal/vault"
)

// timeLayout is a fixed-width UTC format so stored timestamps sort
// lexicographically in chronological order.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// RecordStore abstracts the persistent collection of credential records.
// Every method is a blocking I/O round trip; implementations own unique-id
// storage and all query execution.
type RecordStore interface {
	List(ctx context.Context, filter models.ListFilter) ([]models.CredentialRecord, error)
	Get(ctx context.Context, id string) (models.CredentialRecord, error)
	Insert(ctx context.Context, record models.CredentialRecord) error
	Update(ctx context.Context, record models.CredentialRecord) error
	ToggleFavorite(ctx context.Context, id string, now time.Time) error
	Delete(ctx context.Context, id string) error
}

// SQLiteRecordStore persists credential records in the local SQLite database.
type SQLiteRecordStore struct {
	db     *sql.DB
	cipher *secrets.SecretCipher
}

// NewSQLiteRecordStore creates a record store over an open database handle.
func NewSQLiteRecordStore(db *sql.DB, cipher *secrets.SecretCipher) *SQLiteRecordStore {
	return &SQLiteRecordStore{db: db, cipher: cipher}
}

const recordColumns = "id, title, username, email, password, website_url, category, notes, is_favorite, created_at, updated_at"

// scanRecord reads one record from a row or rows object and decrypts the
// stored secret.
func (s *SQLiteRecordStore) scanRecord(scanner interface{ Scan(...interface{}) error }) (models.CredentialRecord, error) {
	var record models.CredentialRecord
	var createdAt, updatedAt string

	err := scanner.Scan(
		&record.ID, &record.Title, &record.Username, &record.Email,
		&record.Password, &record.WebsiteURL, &record.Category, &record.Notes,
		&record.IsFavorite, &createdAt, &updatedAt,
	)
	if err != nil {
		return record, err
	}

	if record.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
		return record, err
	}
	if record.UpdatedAt, err = time.Parse(timeLayout, updatedAt); err != nil {
		return record, err
	}

	record.Password, err = s.cipher.Open(record.Password)
	return record, err
}

// List retrieves records matching the filter, newest created first. Zero
// matches is a valid result, not an error.
func (s *SQLiteRecordStore) List(ctx context.Context, filter models.ListFilter) ([]models.CredentialRecord, error) {
	query := "SELECT " + recordColumns + " FROM passwords"
	var conds []string
	var args []interface{}

	if filter.Category != "" && filter.Category != "all" {
		conds = append(conds, "category = ?")
		args = append(args, filter.Category)
	}
	if filter.FavoritesOnly {
		conds = append(conds, "is_favorite = 1")
	}
	if filter.Search != "" {
		// LIKE is case-insensitive for ASCII in SQLite.
		pattern := "%" + escapeLike(filter.Search) + "%"
		conds = append(conds, `(title LIKE ? ESCAPE '\' OR username LIKE ? ESCAPE '\' OR email LIKE ? ESCAPE '\' OR website_url LIKE ? ESCAPE '\')`)
		args = append(args, pattern, pattern, pattern, pattern)
	}

	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, &vault.StoreError{Op: "list", Err: err}
	}
	defer rows.Close()

	var records []models.CredentialRecord
	for rows.Next() {
		record, err := s.scanRecord(rows)
		if err != nil {
			return nil, &vault.StoreError{Op: "list", Err: err}
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, &vault.StoreError{Op: "list", Err: err}
	}
	return records, nil
}

// Get retrieves a single record by its id.
func (s *SQLiteRecordStore) Get(ctx context.Context, id string) (models.CredentialRecord, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+recordColumns+" FROM passwords WHERE id = ?", id)
	record, err := s.scanRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.CredentialRecord{}, vault.ErrNotFound
		}
		return models.CredentialRecord{}, &vault.StoreError{Op: "get", Err: err}
	}
	return record, nil
}

// Insert persists a fully-populated new record.
func (s *SQLiteRecordStore) Insert(ctx context.Context, record models.CredentialRecord) error {
	sealed, err := s.cipher.Seal(record.Password)
	if err != nil {
		return &vault.StoreError{Op: "insert", Err: err}
	}

	const query = `
		INSERT INTO passwords(id, title, username, email, password, website_url, category, notes, is_favorite, created_at, updated_at)
		VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = s.db.ExecContext(ctx, query,
		record.ID, record.Title, record.Username, record.Email,
		sealed, record.WebsiteURL, record.Category, record.Notes,
		record.IsFavorite, record.CreatedAt.UTC().Format(timeLayout), record.UpdatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return &vault.StoreError{Op: "insert", Err: err}
	}
	return nil
}

// Update overwrites every mutable column of an existing record. The caller
// has already merged the patch; created_at is never touched.
func (s *SQLiteRecordStore) Update(ctx context.Context, record models.CredentialRecord) error {
	sealed, err := s.cipher.Seal(record.Password)
	if err != nil {
		return &vault.StoreError{Op: "update", Err: err}
	}

	const query = `
		UPDATE passwords
		SET title = ?, username = ?, email = ?, password = ?, website_url = ?, category = ?, notes = ?, is_favorite = ?, updated_at = ?
		WHERE id = ?`
	result, err := s.db.ExecContext(ctx, query,
		record.Title, record.Username, record.Email, sealed,
		record.WebsiteURL, record.Category, record.Notes, record.IsFavorite,
		record.UpdatedAt.UTC().Format(timeLayout), record.ID,
	)
	if err != nil {
		return &vault.StoreError{Op: "update", Err: err}
	}
	return s.requireRow(result, "update")
}

// ToggleFavorite flips is_favorite in a single conditional update, so two
// concurrent toggles on the same id cannot lose a write.
func (s *SQLiteRecordStore) ToggleFavorite(ctx context.Context, id string, now time.Time) error {
	result, err := s.db.ExecContext(ctx,
		"UPDATE passwords SET is_favorite = NOT is_favorite, updated_at = ? WHERE id = ?",
		now.UTC().Format(timeLayout), id,
	)
	if err != nil {
		return &vault.StoreError{Op: "toggle-favorite", Err: err}
	}
	return s.requireRow(result, "toggle-favorite")
}

// Delete removes a record permanently. Deleting an id that does not exist
// fails with ErrNotFound.
func (s *SQLiteRecordStore) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM passwords WHERE id = ?", id)
	if err != nil {
		return &vault.StoreError{Op: "delete", Err: err}
	}
	return s.requireRow(result, "delete")
}

// requireRow converts a zero-row write into ErrNotFound.
func (s *SQLiteRecordStore) requireRow(result sql.Result, op string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return &vault.StoreError{Op: op, Err: err}
	}
	if affected == 0 {
		return vault.ErrNotFound
	}
	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
