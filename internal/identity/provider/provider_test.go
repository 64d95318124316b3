package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSignInWithPasswordDecodesSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/token" {
			t.Errorf("path = %q, want /token", r.URL.Path)
		}
		if got := r.URL.Query().Get("grant_type"); got != "password" {
			t.Errorf("grant_type = %q, want password", got)
		}
		if got := r.Header.Get("apikey"); got != "anon-key" {
			t.Errorf("apikey = %q, want anon-key", got)
		}
		var payload map[string]string
		_ = json.NewDecoder(r.Body).Decode(&payload)
		if payload["email"] != "ops@example.com" {
			t.Errorf("email = %q", payload["email"])
		}
		_ = json.NewEncoder(w).Encode(Session{
			AccessToken:  "access-1",
			RefreshToken: "refresh-1",
			TokenType:    "bearer",
			ExpiresIn:    3600,
			User:         User{ID: "user-1", Email: "ops@example.com"},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "anon-key", server.Client())
	session, err := client.SignInWithPassword(context.Background(), "ops@example.com", "secret")
	if err != nil {
		t.Fatalf("sign in: %v", err)
	}
	if session.AccessToken != "access-1" || session.User.ID != "user-1" {
		t.Fatalf("session = %+v", session)
	}
}

func TestSignInRejectionSurfacesProviderMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"msg":"Invalid login credentials"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "anon-key", server.Client())
	_, err := client.SignInWithPassword(context.Background(), "ops@example.com", "wrong")
	if err == nil {
		t.Fatal("expected error for rejected credentials")
	}
	if !strings.Contains(err.Error(), "Invalid login credentials") {
		t.Fatalf("error %q missing provider message", err)
	}
}

func TestRefreshUsesRefreshGrant(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("grant_type"); got != "refresh_token" {
			t.Errorf("grant_type = %q, want refresh_token", got)
		}
		_ = json.NewEncoder(w).Encode(Session{AccessToken: "access-2", RefreshToken: "refresh-2"})
	}))
	defer server.Close()

	client := NewClient(server.URL, "anon-key", server.Client())
	session, err := client.Refresh(context.Background(), "refresh-1")
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if session.AccessToken != "access-2" {
		t.Fatalf("AccessToken = %q, want access-2", session.AccessToken)
	}
}

func TestSignOutSendsBearerToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewClient(server.URL, "anon-key", server.Client())
	if err := client.SignOut(context.Background(), "access-1"); err != nil {
		t.Fatalf("sign out: %v", err)
	}
	if gotAuth != "Bearer access-1" {
		t.Fatalf("Authorization = %q, want bearer token", gotAuth)
	}
}

func TestTokenResponseMissingAccessTokenFails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "anon-key", server.Client())
	if _, err := client.SignInWithPassword(context.Background(), "a", "b"); err == nil {
		t.Fatal("expected error for empty token response")
	}
}
