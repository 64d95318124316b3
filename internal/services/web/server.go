// Package web serves the operations dashboard: session-cookie sign-in
// against the identity provider and the read-only list views over the
// backend's GraphQL layer.
package web

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"time"

	"github.com/relaydesk/opsdash/internal/backend/graphql"
	"github.com/relaydesk/opsdash/internal/backend/records"
	"github.com/relaydesk/opsdash/internal/identity/provider"
	"github.com/relaydesk/opsdash/internal/identity/sessionstore"
	sqlitestore "github.com/relaydesk/opsdash/internal/identity/sessionstore/sqlite"
	"github.com/relaydesk/opsdash/internal/identity/token"
	"github.com/relaydesk/opsdash/internal/platform/branding"
	"github.com/relaydesk/opsdash/internal/platform/timeouts"
	"github.com/relaydesk/opsdash/internal/services/web/static"
)

// Config carries everything the web service needs to run.
type Config struct {
	// HTTPAddr is the listen address, for example ":8080".
	HTTPAddr string
	// BackendURL is the backend's GraphQL endpoint.
	BackendURL string
	// BackendAnonKey authenticates unauthenticated backend requests.
	BackendAnonKey string
	// AuthURL is the identity provider's auth API base URL.
	AuthURL string
	// JWTSecret verifies the provider's access tokens locally.
	JWTSecret string
	// SessionDBPath locates the SQLite session database.
	SessionDBPath string
	// Instance labels the deployment in the UI chrome.
	Instance branding.Instance
}

// Server is the dashboard HTTP service.
type Server struct {
	httpAddr   string
	httpServer *http.Server

	records  *records.Client
	provider *provider.Client
	verifier *token.Verifier
	sessions sessionstore.Store
	instance branding.Instance

	closeSessions func() error
}

// NewServer wires the backend clients, the identity stack, and the HTTP
// handler.
func NewServer(cfg Config) (*Server, error) {
	if cfg.BackendURL == "" {
		return nil, fmt.Errorf("backend URL is required")
	}
	if cfg.AuthURL == "" {
		return nil, fmt.Errorf("auth URL is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT secret is required")
	}

	store, err := sqlitestore.Open(cfg.SessionDBPath)
	if err != nil {
		return nil, fmt.Errorf("open session store: %w", err)
	}

	backendHTTP := &http.Client{Timeout: timeouts.BackendRequest}
	providerHTTP := &http.Client{Timeout: timeouts.ProviderRequest}

	s := &Server{
		httpAddr:      cfg.HTTPAddr,
		records:       records.NewClient(graphql.NewClient(cfg.BackendURL, cfg.BackendAnonKey, backendHTTP)),
		provider:      provider.NewClient(cfg.AuthURL, cfg.BackendAnonKey, providerHTTP),
		verifier:      token.NewVerifier(cfg.JWTSecret),
		sessions:      store,
		instance:      cfg.Instance,
		closeSessions: store.Close,
	}
	s.httpServer = &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: timeouts.ReadHeader,
	}
	return s, nil
}

// Handler builds the routed and middleware-wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	assets, err := fs.Sub(static.FS, "assets")
	if err != nil {
		panic(fmt.Sprintf("static assets: %v", err))
	}
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(assets))))

	mux.HandleFunc("GET /login", s.handleLoginForm)
	mux.HandleFunc("POST /login", s.handleLoginSubmit)
	mux.HandleFunc("GET /logout", s.handleLogout)

	mux.HandleFunc("GET /", s.handleHome)
	mux.HandleFunc("GET /contacts", s.handleContacts)
	mux.HandleFunc("GET /interactions", s.handleInteractions)
	mux.HandleFunc("GET /followups", s.handleFollowUps)
	mux.HandleFunc("GET /sources", s.handleSources)
	mux.HandleFunc("GET /entities", s.handleEntities)
	mux.HandleFunc("GET /ingestion", s.handleIngestion)
	mux.HandleFunc("GET /runs", s.handleAnalysisRuns)
	mux.HandleFunc("GET /feedback", s.handleFeedback)

	return chain(mux,
		recoverPanic(),
		withRequestID(),
		requestLogger(),
		withTracing(),
		s.requireAuth(),
	)
}

// sweepInterval is how often expired sessions are purged from the store.
const sweepInterval = time.Hour

// sweepSessions deletes expired session records until the context ends.
func (s *Server) sweepSessions(ctx context.Context) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			deleted, err := s.sessions.DeleteExpiredSessions(ctx, time.Now())
			if err != nil {
				log.Printf("sweep sessions: %v", err)
				continue
			}
			if deleted > 0 {
				log.Printf("sweep sessions: removed %d expired", deleted)
			}
		}
	}
}

// ListenAndServe runs the HTTP server until the context is canceled, then
// shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	sweepCtx, stopSweep := context.WithCancel(ctx)
	defer stopSweep()
	go s.sweepSessions(sweepCtx)

	errCh := make(chan error, 1)
	go func() {
		log.Printf("web listening on %s", s.httpAddr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errCh
}

// Close releases the server's resources.
func (s *Server) Close() error {
	if s.closeSessions != nil {
		return s.closeSessions()
	}
	return nil
}
