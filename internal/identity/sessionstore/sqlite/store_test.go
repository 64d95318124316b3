package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/relaydesk/opsdash/internal/identity/sessionstore"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "sessions.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func sessionFixture(id string, expiresAt time.Time) sessionstore.Session {
	return sessionstore.Session{
		ID:           id,
		UserID:       "user-1",
		Email:        "ops@example.com",
		AccessToken:  "access-" + id,
		RefreshToken: "refresh-" + id,
		ExpiresAt:    expiresAt,
	}
}

func TestPutAndGetSession(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	expiry := time.Now().Add(time.Hour).UTC().Truncate(time.Millisecond)

	if err := store.PutSession(ctx, sessionFixture("s1", expiry)); err != nil {
		t.Fatalf("put session: %v", err)
	}

	session, err := store.GetSession(ctx, "s1")
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if session.UserID != "user-1" {
		t.Fatalf("UserID = %q, want user-1", session.UserID)
	}
	if session.AccessToken != "access-s1" {
		t.Fatalf("AccessToken = %q", session.AccessToken)
	}
	if !session.ExpiresAt.Equal(expiry) {
		t.Fatalf("ExpiresAt = %v, want %v", session.ExpiresAt, expiry)
	}
	if session.CreatedAt.IsZero() {
		t.Fatal("expected CreatedAt to be populated")
	}
}

func TestGetSessionMissing(t *testing.T) {
	store := openTestStore(t)
	_, err := store.GetSession(context.Background(), "absent")
	if !errors.Is(err, sessionstore.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestPutSessionReplacesExisting(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	expiry := time.Now().Add(time.Hour)

	if err := store.PutSession(ctx, sessionFixture("s1", expiry)); err != nil {
		t.Fatalf("put session: %v", err)
	}
	replacement := sessionFixture("s1", expiry)
	replacement.AccessToken = "access-rotated"
	if err := store.PutSession(ctx, replacement); err != nil {
		t.Fatalf("replace session: %v", err)
	}

	session, err := store.GetSession(ctx, "s1")
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if session.AccessToken != "access-rotated" {
		t.Fatalf("AccessToken = %q, want rotated token", session.AccessToken)
	}
}

func TestPutSessionValidatesRequiredFields(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if err := store.PutSession(ctx, sessionstore.Session{UserID: "u", AccessToken: "a"}); err == nil {
		t.Fatal("expected missing session id to fail")
	}
	if err := store.PutSession(ctx, sessionstore.Session{ID: "s", AccessToken: "a"}); err == nil {
		t.Fatal("expected missing user id to fail")
	}
	if err := store.PutSession(ctx, sessionstore.Session{ID: "s", UserID: "u"}); err == nil {
		t.Fatal("expected missing access token to fail")
	}
}

func TestDeleteSession(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if err := store.PutSession(ctx, sessionFixture("s1", time.Now().Add(time.Hour))); err != nil {
		t.Fatalf("put session: %v", err)
	}
	if err := store.DeleteSession(ctx, "s1"); err != nil {
		t.Fatalf("delete session: %v", err)
	}
	if _, err := store.GetSession(ctx, "s1"); !errors.Is(err, sessionstore.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound after delete", err)
	}
}

func TestDeleteExpiredSessions(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	if err := store.PutSession(ctx, sessionFixture("stale", now.Add(-time.Minute))); err != nil {
		t.Fatalf("put stale session: %v", err)
	}
	if err := store.PutSession(ctx, sessionFixture("live", now.Add(time.Hour))); err != nil {
		t.Fatalf("put live session: %v", err)
	}

	removed, err := store.DeleteExpiredSessions(ctx, now)
	if err != nil {
		t.Fatalf("delete expired: %v", err)
	}
	if removed != 1 {
		t.Fatalf("removed = %d, want 1", removed)
	}
	if _, err := store.GetSession(ctx, "live"); err != nil {
		t.Fatalf("live session should survive: %v", err)
	}
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open("  "); err == nil {
		t.Fatal("expected empty path to fail")
	}
}
