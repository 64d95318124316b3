package web

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/relaydesk/opsdash/internal/identity/sessionstore"
	"github.com/relaydesk/opsdash/internal/platform/requestctx"
)

// SessionCookieName carries the server-side session identifier.
const SessionCookieName = "opsdash_session"

// sessionContextKey carries the resolved session record to handlers.
type sessionContextKey struct{}

func withSession(ctx context.Context, session sessionstore.Session) context.Context {
	return context.WithValue(ctx, sessionContextKey{}, session)
}

func sessionFromContext(ctx context.Context) (sessionstore.Session, bool) {
	session, ok := ctx.Value(sessionContextKey{}).(sessionstore.Session)
	return session, ok
}

func setSessionCookie(w http.ResponseWriter, sessionID string, expiresAt time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    sessionID,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// requireAuth resolves the session cookie into a verified identity and
// stores it in the request context. Unauthenticated requests are sent to
// the sign-in page; static assets and the auth routes pass through.
func (s *Server) requireAuth() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, ok := s.resolveSession(r)
			if !ok {
				if isPublicPath(r.URL.Path) {
					next.ServeHTTP(w, r)
					return
				}
				clearSessionCookie(w)
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}

			ctx := withSession(r.Context(), session)
			ctx = requestctx.WithUserID(ctx, session.UserID)
			ctx = requestctx.WithAccessToken(ctx, session.AccessToken)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func (s *Server) resolveSession(r *http.Request) (sessionstore.Session, bool) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return sessionstore.Session{}, false
	}

	session, err := s.sessions.GetSession(r.Context(), cookie.Value)
	if err != nil {
		return sessionstore.Session{}, false
	}
	if !session.ExpiresAt.IsZero() && session.ExpiresAt.Before(time.Now()) {
		_ = s.sessions.DeleteSession(r.Context(), session.ID)
		return sessionstore.Session{}, false
	}

	claims, err := s.verifier.Verify(session.AccessToken)
	if err != nil {
		_ = s.sessions.DeleteSession(r.Context(), session.ID)
		return sessionstore.Session{}, false
	}
	if claims.Email != "" {
		session.Email = claims.Email
	}
	return session, true
}

func isPublicPath(path string) bool {
	return path == "/login" || strings.HasPrefix(path, "/static/")
}
