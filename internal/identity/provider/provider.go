// Package provider is the confidential-client glue for the third-party
// identity provider. The provider owns authentication and the token
// lifecycle; this package only exchanges credentials for tokens over the
// provider's HTTP API.
package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// Session is the token bundle returned by a successful exchange.
type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	User         User   `json:"user"`
}

// User identifies the signed-in operator as reported by the provider.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Client calls the identity provider's token endpoints.
type Client struct {
	baseURL    string
	anonKey    string
	httpClient *http.Client
}

// NewClient creates a provider client rooted at the auth API base URL.
func NewClient(baseURL, anonKey string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		anonKey:    strings.TrimSpace(anonKey),
		httpClient: httpClient,
	}
}

// SignInWithPassword exchanges operator credentials for a session.
func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (Session, error) {
	payload := map[string]string{"email": email, "password": password}
	return c.tokenRequest(ctx, "password", payload)
}

// Refresh exchanges a refresh token for a fresh session.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (Session, error) {
	payload := map[string]string{"refresh_token": refreshToken}
	return c.tokenRequest(ctx, "refresh_token", payload)
}

// SignOut revokes the session behind the access token. Revocation errors
// are returned so the caller can log them; the local session is removed
// either way.
func (c *Client) SignOut(ctx context.Context, accessToken string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/logout", nil)
	if err != nil {
		return fmt.Errorf("build sign-out request: %w", err)
	}
	c.setHeaders(req)
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sign-out request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("sign-out returned %s", resp.Status)
	}
	return nil
}

func (c *Client) tokenRequest(ctx context.Context, grantType string, payload map[string]string) (Session, error) {
	if c == nil || c.baseURL == "" {
		return Session{}, fmt.Errorf("identity provider is not configured")
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return Session{}, fmt.Errorf("encode token request: %w", err)
	}

	url := c.baseURL + "/token?grant_type=" + grantType
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return Session{}, fmt.Errorf("build token request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Session{}, fmt.Errorf("token request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var providerError struct {
			Message string `json:"msg"`
			Error   string `json:"error_description"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&providerError)
		message := providerError.Message
		if message == "" {
			message = providerError.Error
		}
		if message != "" {
			return Session{}, fmt.Errorf("token exchange rejected: %s", message)
		}
		return Session{}, fmt.Errorf("token exchange returned %s", resp.Status)
	}

	var session Session
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return Session{}, fmt.Errorf("decode token response: %w", err)
	}
	if session.AccessToken == "" {
		return Session{}, fmt.Errorf("token response missing access token")
	}
	return session, nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	if c.anonKey != "" {
		req.Header.Set("apikey", c.anonKey)
	}
}
