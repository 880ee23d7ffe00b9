package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestTokenRoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req tokenRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Key != "app-key" {
			t.Fatalf("expected app key, got %q", req.Key)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(tokenResponse{Token: "opaque-token-123"})
	}))
	defer srv.Close()

	r := NewRegistrar(srv.URL, "app-key")
	token, err := r.Token(context.Background())
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	if token != "opaque-token-123" {
		t.Fatalf("unexpected token %q", token)
	}
}

func TestTokenServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	r := NewRegistrar(srv.URL, "app-key")
	if _, err := r.Token(context.Background()); err == nil {
		t.Fatalf("expected error for refused registration")
	}
}

func TestTokenNoEndpoint(t *testing.T) {
	r := NewRegistrar("", "app-key")
	if _, err := r.Token(context.Background()); err == nil {
		t.Fatalf("expected error without endpoint")
	}
}
