// Package sqlite provides a SQLite-backed session store implementation.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/relaydesk/opsdash/internal/identity/sessionstore"
	"github.com/relaydesk/opsdash/internal/identity/sessionstore/sqlite/migrations"
	"github.com/relaydesk/opsdash/internal/platform/storage/sqlitemigrate"
)

// Store persists operator sessions in SQLite.
type Store struct {
	sqlDB *sql.DB
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite session store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// PutSession inserts or replaces one session record.
func (s *Store) PutSession(ctx context.Context, session sessionstore.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	sessionID := strings.TrimSpace(session.ID)
	if sessionID == "" {
		return fmt.Errorf("session id is required")
	}
	if strings.TrimSpace(session.UserID) == "" {
		return fmt.Errorf("user id is required")
	}
	if strings.TrimSpace(session.AccessToken) == "" {
		return fmt.Errorf("access token is required")
	}
	createdAt := session.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := s.sqlDB.ExecContext(ctx, `
INSERT OR REPLACE INTO sessions (id, user_id, email, access_token, refresh_token, expires_at, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?)`,
		sessionID,
		session.UserID,
		session.Email,
		session.AccessToken,
		session.RefreshToken,
		toMillis(session.ExpiresAt),
		toMillis(createdAt),
	)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

// GetSession loads one session record by id.
func (s *Store) GetSession(ctx context.Context, sessionID string) (sessionstore.Session, error) {
	if err := ctx.Err(); err != nil {
		return sessionstore.Session{}, err
	}
	if s == nil || s.sqlDB == nil {
		return sessionstore.Session{}, fmt.Errorf("storage is not configured")
	}
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return sessionstore.Session{}, sessionstore.ErrNotFound
	}

	row := s.sqlDB.QueryRowContext(ctx, `
SELECT id, user_id, email, access_token, refresh_token, expires_at, created_at
FROM sessions WHERE id = ?`, sessionID)

	var session sessionstore.Session
	var expiresAt, createdAt int64
	err := row.Scan(&session.ID, &session.UserID, &session.Email, &session.AccessToken, &session.RefreshToken, &expiresAt, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return sessionstore.Session{}, sessionstore.ErrNotFound
	}
	if err != nil {
		return sessionstore.Session{}, fmt.Errorf("scan session: %w", err)
	}
	session.ExpiresAt = fromMillis(expiresAt)
	session.CreatedAt = fromMillis(createdAt)
	return session, nil
}

// DeleteSession removes one session record.
func (s *Store) DeleteSession(ctx context.Context, sessionID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if _, err := s.sqlDB.ExecContext(ctx, "DELETE FROM sessions WHERE id = ?", strings.TrimSpace(sessionID)); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// DeleteExpiredSessions purges sessions past their expiry.
func (s *Store) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if s == nil || s.sqlDB == nil {
		return 0, fmt.Errorf("storage is not configured")
	}
	result, err := s.sqlDB.ExecContext(ctx, "DELETE FROM sessions WHERE expires_at <= ?", toMillis(now))
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}
	removed, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("count expired sessions: %w", err)
	}
	return removed, nil
}
