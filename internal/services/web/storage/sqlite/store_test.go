package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/rkprasad/portfolio/internal/services/web/storage"
)

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open(context.Background(), ""); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestRecordContactMessageStoresFields(t *testing.T) {
	store := openTempStore(t)

	createdAt := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	err := store.RecordContactMessage(context.Background(), storage.ContactMessage{
		ID:        "msg-1",
		Name:      "Ada Lovelace",
		Email:     "ada@example.com",
		Subject:   "Hello",
		Message:   "Let's build something.",
		Budget:    "5k-10k",
		CreatedAt: createdAt,
	})
	if err != nil {
		t.Fatalf("record message: %v", err)
	}

	var name, budget, timeline, storedAt string
	row := store.sqlDB.QueryRow("SELECT name, budget, timeline, created_at FROM contact_messages WHERE id = ?", "msg-1")
	if err := row.Scan(&name, &budget, &timeline, &storedAt); err != nil {
		t.Fatalf("scan message: %v", err)
	}
	if name != "Ada Lovelace" || budget != "5k-10k" || timeline != "" {
		t.Fatalf("stored = (%q, %q, %q)", name, budget, timeline)
	}
	if storedAt != createdAt.Format(timeFormat) {
		t.Fatalf("created_at = %s, want %s", storedAt, createdAt.Format(timeFormat))
	}
}

func TestRecordContactMessageAssignsIDAndTime(t *testing.T) {
	store := openTempStore(t)
	fixed := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
	store.now = func() time.Time { return fixed }

	for range 2 {
		if err := store.RecordContactMessage(context.Background(), storage.ContactMessage{Email: "a@b.co"}); err != nil {
			t.Fatalf("record message: %v", err)
		}
	}

	count, err := store.CountContactMessages(context.Background())
	if err != nil {
		t.Fatalf("count messages: %v", err)
	}
	if count != 2 {
		t.Fatalf("count = %d, want 2", count)
	}
	var storedAt string
	if err := store.sqlDB.QueryRow("SELECT created_at FROM contact_messages LIMIT 1").Scan(&storedAt); err != nil {
		t.Fatalf("scan created_at: %v", err)
	}
	if storedAt != fixed.Format(timeFormat) {
		t.Fatalf("created_at = %s, want %s", storedAt, fixed.Format(timeFormat))
	}
}

func TestRecordContactMessageValidation(t *testing.T) {
	store := openTempStore(t)

	if err := store.RecordContactMessage(context.Background(), storage.ContactMessage{}); err == nil {
		t.Fatal("expected error for missing email")
	}
}

func TestRecordContactMessageRequiresStore(t *testing.T) {
	var store *Store
	if err := store.RecordContactMessage(context.Background(), storage.ContactMessage{Email: "a@b.co"}); err == nil {
		t.Fatal("expected error for nil store")
	}
}

func TestOpenIsRepeatable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inbox.db")
	for range 2 {
		store, err := Open(context.Background(), path)
		if err != nil {
			t.Fatalf("open store: %v", err)
		}
		if err := store.Close(); err != nil {
			t.Fatalf("close store: %v", err)
		}
	}
}

func openTempStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "inbox.db")
	store, err := Open(context.Background(), path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil && err != sql.ErrConnDone {
			t.Fatalf("close store: %v", err)
		}
	})
	return store
}
