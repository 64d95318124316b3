// Package graphql issues read-only queries against the managed backend's
// generated GraphQL endpoint.
package graphql

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/relaydesk/opsdash/internal/platform/requestctx"
)

// Client posts fixed query documents to one GraphQL endpoint. Requests
// carry the platform's anonymous key and, when the request context holds a
// signed-in operator's access token, a bearer authorization header; the
// backend's row-level security decides what each identity may read.
type Client struct {
	endpoint   string
	anonKey    string
	httpClient *http.Client
}

// NewClient creates a query client for the backend endpoint.
func NewClient(endpoint, anonKey string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		endpoint:   strings.TrimSpace(endpoint),
		anonKey:    strings.TrimSpace(anonKey),
		httpClient: httpClient,
	}
}

type request struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type response struct {
	Data   json.RawMessage `json:"data"`
	Errors []responseError `json:"errors"`
}

type responseError struct {
	Message string `json:"message"`
}

// Query executes one query document and decodes the data envelope into
// out. Transport failures, non-200 statuses, and GraphQL error lists all
// collapse into a single error wrapped with the operation name; callers
// treat every failure the same way.
func (c *Client) Query(ctx context.Context, operation, query string, variables map[string]any, out any) error {
	if c == nil || c.endpoint == "" {
		return fmt.Errorf("%s: query client is not configured", operation)
	}

	body, err := json.Marshal(request{Query: query, Variables: variables})
	if err != nil {
		return fmt.Errorf("%s: encode query: %w", operation, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%s: build request: %w", operation, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.anonKey != "" {
		req.Header.Set("apikey", c.anonKey)
	}
	req.Header.Set("Authorization", "Bearer "+c.bearerToken(ctx))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: query request: %w", operation, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: query returned %s", operation, resp.Status)
	}

	var envelope response
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("%s: decode response: %w", operation, err)
	}
	if len(envelope.Errors) > 0 {
		messages := make([]string, 0, len(envelope.Errors))
		for _, respErr := range envelope.Errors {
			messages = append(messages, respErr.Message)
		}
		return fmt.Errorf("%s: query errors: %s", operation, strings.Join(messages, "; "))
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("%s: decode data: %w", operation, err)
	}
	return nil
}

// bearerToken selects the operator's access token when present, falling
// back to the public anonymous key for unauthenticated requests.
func (c *Client) bearerToken(ctx context.Context) string {
	if token := requestctx.AccessTokenFromContext(ctx); token != "" {
		return token
	}
	return c.anonKey
}
