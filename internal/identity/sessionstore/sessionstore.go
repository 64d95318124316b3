// Package sessionstore defines persistence contracts for server-side
// operator sessions. The provider owns token lifecycle; the store only
// maps the browser's session cookie to the token bundle.
package sessionstore

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound indicates a requested session record is missing or expired.
var ErrNotFound = errors.New("session not found")

// Session is one server-side session record.
type Session struct {
	ID           string
	UserID       string
	Email        string
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
	CreatedAt    time.Time
}

// Store persists operator sessions.
type Store interface {
	PutSession(ctx context.Context, session Session) error
	GetSession(ctx context.Context, sessionID string) (Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}
