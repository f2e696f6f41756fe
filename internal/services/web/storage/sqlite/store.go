package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/rkprasad/portfolio/internal/platform/id"
	sqlitemigrate "github.com/rkprasad/portfolio/internal/platform/storage/sqlitemigrate"
	"github.com/rkprasad/portfolio/internal/services/web/storage"
	"github.com/rkprasad/portfolio/internal/services/web/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

const timeFormat = time.RFC3339Nano

// Store is the SQLite-backed contact inbox.
type Store struct {
	sqlDB *sql.DB
	now   func() time.Time
}

// Open opens (creating when missing) the inbox database at path and applies
// the embedded migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := "file:" + cleanPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &Store{sqlDB: sqlDB, now: time.Now}
	if err := sqlitemigrate.Apply(ctx, sqlDB, migrations.FS, "."); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// RecordContactMessage persists message, assigning an id and timestamp when
// they are missing.
func (s *Store) RecordContactMessage(ctx context.Context, message storage.ContactMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(message.Email) == "" {
		return fmt.Errorf("message email is required")
	}
	if strings.TrimSpace(message.ID) == "" {
		generated, err := id.NewID()
		if err != nil {
			return fmt.Errorf("generate message id: %w", err)
		}
		message.ID = generated
	}
	if message.CreatedAt.IsZero() {
		message.CreatedAt = s.now()
	}

	_, err := s.sqlDB.ExecContext(ctx, `INSERT INTO contact_messages
    (id, name, email, subject, message, budget, timeline, client_ip, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		message.ID,
		message.Name,
		message.Email,
		message.Subject,
		message.Message,
		message.Budget,
		message.Timeline,
		message.ClientIP,
		message.CreatedAt.UTC().Format(timeFormat),
	)
	if err != nil {
		return fmt.Errorf("insert contact message: %w", err)
	}
	return nil
}

// CountContactMessages returns the number of stored messages.
func (s *Store) CountContactMessages(ctx context.Context) (int, error) {
	if s == nil || s.sqlDB == nil {
		return 0, fmt.Errorf("storage is not configured")
	}
	var count int
	if err := s.sqlDB.QueryRowContext(ctx, `SELECT COUNT(*) FROM contact_messages`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count contact messages: %w", err)
	}
	return count, nil
}

var _ storage.Store = (*Store)(nil)
