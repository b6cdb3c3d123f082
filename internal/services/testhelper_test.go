package services

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"sync"
	"testing"

	"github.com/isdelr/passpocket-be/internal/database"
	"github.com/isdelr/passpocket-be/internal/models"
	"github.com/isdelr/passpocket-be/internal/secrets"
	"github.com/isdelr/passpocket-be/internal/store"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates a named shared in-memory SQLite database for testing.
// A unique name derived from t.Name() ensures isolation between tests.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	safeName := url.PathEscape(t.Name())
	dsn := fmt.Sprintf(
		"file:%s?mode=memory&cache=shared&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)",
		safeName,
	)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		t.Fatalf("ping test db: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		_ = db.Close()
		t.Fatalf("migrate test db: %v", err)
	}

	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newTestStore(t *testing.T) store.RecordStore {
	t.Helper()
	cipher, err := secrets.New("")
	require.NoError(t, err)
	return store.NewSQLiteRecordStore(setupTestDB(t), cipher)
}

// eventRecorder captures emitted events instead of persisting them.
type eventRecorder struct {
	mu    sync.Mutex
	types []string
}

func (r *eventRecorder) CreateEvent(_ context.Context, eventType, _, _ string, _ *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.types = append(r.types, eventType)
	return nil
}

func (r *eventRecorder) GetRecentEvents(context.Context, int) ([]models.VaultEvent, error) {
	return nil, nil
}

func (r *eventRecorder) Types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.types...)
}
