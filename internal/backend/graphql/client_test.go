package graphql

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/relaydesk/opsdash/internal/platform/requestctx"
)

func TestQueryDecodesDataEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %q, want POST", r.Method)
		}
		body, _ := io.ReadAll(r.Body)
		if !strings.Contains(string(body), "contactsCollection") {
			t.Errorf("request body missing query document: %s", body)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"value":41}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "anon-key", server.Client())
	var out struct {
		Value int `json:"value"`
	}
	err := client.Query(context.Background(), "contacts", "query { contactsCollection { edges { node { id } } } }", nil, &out)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if out.Value != 41 {
		t.Fatalf("value = %d, want 41", out.Value)
	}
}

func TestQuerySendsAnonKeyWhenUnauthenticated(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("apikey"); got != "anon-key" {
			t.Errorf("apikey header = %q, want %q", got, "anon-key")
		}
		if got := r.Header.Get("Authorization"); got != "Bearer anon-key" {
			t.Errorf("authorization header = %q, want anon fallback", got)
		}
		_, _ = w.Write([]byte(`{"data":{}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "anon-key", server.Client())
	if err := client.Query(context.Background(), "contacts", "query {}", nil, nil); err != nil {
		t.Fatalf("query: %v", err)
	}
}

func TestQuerySendsSessionTokenWhenPresent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer operator-token" {
			t.Errorf("authorization header = %q, want operator token", got)
		}
		_, _ = w.Write([]byte(`{"data":{}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "anon-key", server.Client())
	ctx := requestctx.WithAccessToken(context.Background(), "operator-token")
	if err := client.Query(ctx, "contacts", "query {}", nil, nil); err != nil {
		t.Fatalf("query: %v", err)
	}
}

func TestQueryCollapsesGraphQLErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		payload := map[string]any{
			"data":   nil,
			"errors": []map[string]string{{"message": "permission denied"}, {"message": "field missing"}},
		}
		_ = json.NewEncoder(w).Encode(payload)
	}))
	defer server.Close()

	client := NewClient(server.URL, "anon-key", server.Client())
	err := client.Query(context.Background(), "contacts", "query {}", nil, nil)
	if err == nil {
		t.Fatal("expected error from GraphQL error list")
	}
	if !strings.Contains(err.Error(), "contacts") {
		t.Fatalf("error %q missing operation name", err)
	}
	if !strings.Contains(err.Error(), "permission denied; field missing") {
		t.Fatalf("error %q missing joined messages", err)
	}
}

func TestQueryRejectsNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL, "anon-key", server.Client())
	err := client.Query(context.Background(), "contacts", "query {}", nil, nil)
	if err == nil {
		t.Fatal("expected error for non-200 status")
	}
}

func TestQueryUnconfiguredClient(t *testing.T) {
	client := NewClient("", "", nil)
	if err := client.Query(context.Background(), "contacts", "query {}", nil, nil); err == nil {
		t.Fatal("expected error for unconfigured client")
	}
}
