// Package opsdash wires configuration and startup for the dashboard
// service binary.
package opsdash

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/relaydesk/opsdash/internal/platform/branding"
	"github.com/relaydesk/opsdash/internal/platform/config"
	"github.com/relaydesk/opsdash/internal/platform/otel"
	"github.com/relaydesk/opsdash/internal/services/web"
)

const (
	defaultHTTPAddr      = "localhost:8090"
	defaultSessionDBPath = "opsdash-sessions.db"
)

// Config holds the opsdash command configuration. Environment variables
// provide the defaults; flags override them.
type Config struct {
	HTTPAddr       string `env:"OPSDASH_HTTP_ADDR"`
	BackendURL     string `env:"OPSDASH_BACKEND_URL"`
	BackendAnonKey string `env:"OPSDASH_BACKEND_ANON_KEY"`
	AuthURL        string `env:"OPSDASH_AUTH_URL"`
	JWTSecret      string `env:"OPSDASH_JWT_SECRET"`
	SessionDBPath  string `env:"OPSDASH_SESSION_DB_PATH"`
}

// ParseConfig reads the environment and parses flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := Config{
		HTTPAddr:      defaultHTTPAddr,
		SessionDBPath: defaultSessionDBPath,
	}
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.BackendURL, "backend-url", cfg.BackendURL, "Backend GraphQL endpoint URL")
	fs.StringVar(&cfg.BackendAnonKey, "backend-anon-key", cfg.BackendAnonKey, "Backend anonymous API key")
	fs.StringVar(&cfg.AuthURL, "auth-url", cfg.AuthURL, "Identity provider auth API base URL")
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", cfg.JWTSecret, "Provider JWT signing secret")
	fs.StringVar(&cfg.SessionDBPath, "session-db", cfg.SessionDBPath, "SQLite session database path")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Run starts the dashboard web server and blocks until the context is
// canceled.
func Run(ctx context.Context, cfg Config) error {
	shutdownTracing, err := otel.Setup(ctx, "opsdash-web")
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Printf("shutdown tracing: %v", err)
		}
	}()

	server, err := web.NewServer(web.Config{
		HTTPAddr:       cfg.HTTPAddr,
		BackendURL:     cfg.BackendURL,
		BackendAnonKey: cfg.BackendAnonKey,
		AuthURL:        cfg.AuthURL,
		JWTSecret:      cfg.JWTSecret,
		SessionDBPath:  cfg.SessionDBPath,
		Instance:       branding.FromEnv(),
	})
	if err != nil {
		return fmt.Errorf("init web server: %w", err)
	}
	defer server.Close()

	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve web: %w", err)
	}
	return nil
}
