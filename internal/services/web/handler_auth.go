package web

import (
	"log"
	"net/http"
	"time"

	"github.com/rs/xid"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/relaydesk/opsdash/internal/identity/sessionstore"
	"github.com/relaydesk/opsdash/internal/services/web/htmx"
	"github.com/relaydesk/opsdash/internal/services/web/i18n"
	"github.com/relaydesk/opsdash/internal/services/web/templates"
)

// pageEnv bundles the per-request locale and shared page chrome.
type pageEnv struct {
	tag     language.Tag
	loc     *message.Printer
	pageCtx templates.PageContext
}

func (s *Server) handleLoginForm(w http.ResponseWriter, r *http.Request) {
	env := s.pageSetup(w, r)
	loc, pageCtx := env.loc, env.pageCtx
	if _, ok := sessionFromContext(r.Context()); ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	title := loc.Sprintf("title.login")
	content := templates.LoginPage("", loc)
	htmx.RenderPage(w, r, content, templates.Layout(title, pageCtx, loc, content), title)
}

func (s *Server) handleLoginSubmit(w http.ResponseWriter, r *http.Request) {
	env := s.pageSetup(w, r)
	loc, pageCtx := env.loc, env.pageCtx
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	email := r.PostFormValue("email")
	password := r.PostFormValue("password")

	providerSession, err := s.provider.SignInWithPassword(r.Context(), email, password)
	if err != nil {
		log.Printf("sign-in failed for %s: %v", email, err)
		title := loc.Sprintf("title.unauthorized")
		content := templates.UnauthorizedPage(loc)
		w.WriteHeader(http.StatusUnauthorized)
		htmx.RenderPage(w, r, content, templates.Layout(title, pageCtx, loc, content), title)
		return
	}

	claims, err := s.verifier.Verify(providerSession.AccessToken)
	if err != nil {
		log.Printf("sign-in token rejected for %s: %v", email, err)
		title := loc.Sprintf("title.unauthorized")
		content := templates.UnauthorizedPage(loc)
		w.WriteHeader(http.StatusUnauthorized)
		htmx.RenderPage(w, r, content, templates.Layout(title, pageCtx, loc, content), title)
		return
	}

	now := time.Now()
	session := sessionstore.Session{
		ID:           xid.New().String(),
		UserID:       claims.UserID,
		Email:        providerSession.User.Email,
		AccessToken:  providerSession.AccessToken,
		RefreshToken: providerSession.RefreshToken,
		ExpiresAt:    now.Add(time.Duration(providerSession.ExpiresIn) * time.Second),
		CreatedAt:    now,
	}
	if session.Email == "" {
		session.Email = claims.Email
	}
	if providerSession.ExpiresIn <= 0 {
		session.ExpiresAt = claims.ExpiresAt
	}

	if err := s.sessions.PutSession(r.Context(), session); err != nil {
		log.Printf("persist session for %s: %v", email, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	setSessionCookie(w, session.ID, session.ExpiresAt)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if session, ok := sessionFromContext(r.Context()); ok {
		if err := s.provider.SignOut(r.Context(), session.AccessToken); err != nil {
			log.Printf("provider sign-out for %s: %v", session.UserID, err)
		}
		if err := s.sessions.DeleteSession(r.Context(), session.ID); err != nil {
			log.Printf("delete session %s: %v", session.ID, err)
		}
	}
	clearSessionCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// pageSetup resolves the request language, persists an explicit language
// selection, and assembles the shared page chrome.
func (s *Server) pageSetup(w http.ResponseWriter, r *http.Request) pageEnv {
	tag, persist := i18n.ResolveTag(r)
	if persist {
		i18n.SetLanguageCookie(w, tag)
	}

	pageCtx := templates.PageContext{
		Lang:       tag.String(),
		ActivePath: r.URL.Path,
		Banner:     s.instance.Banner(),
		Production: s.instance.IsProduction(),
	}
	if session, ok := sessionFromContext(r.Context()); ok {
		pageCtx.UserEmail = session.Email
	}
	return pageEnv{tag: tag, loc: i18n.Printer(tag), pageCtx: pageCtx}
}
