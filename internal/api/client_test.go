// ABOUTME: Tests for the shared request primitive and GUID predicate.
// ABOUTME: Verifies bearer attachment, 204 handling, and error body capture.
package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"
)

type staticTokens struct {
	token string
}

func (s *staticTokens) Token() string { return s.token }

func TestBearerTokenAttachment(t *testing.T) {
	var gotAuth string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer ts.Close()

	c := New(ts.URL, &staticTokens{token: "tok-123"}, WithHTTPClient(ts.Client()))

	// Authenticated call carries the bearer header.
	if err := c.do(context.Background(), http.MethodGet, "/api/auth/me", nil, true, nil); err != nil {
		t.Fatalf("do: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer tok-123")
	}

	// Unauthenticated call never carries it, even with a token set.
	if err := c.do(context.Background(), http.MethodGet, "/health", nil, false, nil); err != nil {
		t.Fatalf("do: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("Authorization = %q on requireAuth=false, want empty", gotAuth)
	}
}

func TestNoTokenMeansNoHeader(t *testing.T) {
	var sawHeader bool
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawHeader = r.Header["Authorization"]
		_, _ = w.Write([]byte(`{}`))
	}))
	defer ts.Close()

	c := New(ts.URL, &staticTokens{}, WithHTTPClient(ts.Client()))
	if err := c.do(context.Background(), http.MethodGet, "/api/profiles", nil, true, nil); err != nil {
		t.Fatalf("do: %v", err)
	}
	if sawHeader {
		t.Error("Authorization header sent with empty token")
	}
}

func TestNoContentResponse(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer ts.Close()

	c := New(ts.URL, &staticTokens{token: "tok"}, WithHTTPClient(ts.Client()))

	// Even with a decode target, 204 must resolve without touching JSON.
	var out map[string]any
	if err := c.do(context.Background(), http.MethodDelete, "/api/thing", nil, true, &out); err != nil {
		t.Fatalf("204 response returned error: %v", err)
	}
	if out != nil {
		t.Errorf("204 response decoded into %v, want untouched nil", out)
	}
}

func TestErrorCarriesStatusAndBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte("email already registered"))
	}))
	defer ts.Close()

	c := New(ts.URL, nil, WithHTTPClient(ts.Client()))
	err := c.do(context.Background(), http.MethodPost, "/api/auth/register", map[string]string{}, false, nil)
	if err == nil {
		t.Fatal("expected error on 409")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T: %v", err, err)
	}
	if apiErr.Status != http.StatusConflict {
		t.Errorf("Status = %d, want 409", apiErr.Status)
	}
	if apiErr.Body != "email already registered" {
		t.Errorf("Body = %q, want raw response text", apiErr.Body)
	}
	if StatusOf(err) != http.StatusConflict {
		t.Errorf("StatusOf = %d, want 409", StatusOf(err))
	}
}

func TestErrorBodyNeedNotBeJSON(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>Bad Gateway</html>"))
	}))
	defer ts.Close()

	c := New(ts.URL, nil, WithHTTPClient(ts.Client()))
	err := c.do(context.Background(), http.MethodGet, "/health", nil, false, nil)
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.Body != "<html>Bad Gateway</html>" {
		t.Errorf("Body = %q, want raw HTML preserved", apiErr.Body)
	}
}

func TestErrorTruncatesOnRuneBoundary(t *testing.T) {
	// A body of three-byte runes that crosses the 200-byte cutoff mid-rune.
	body := strings.Repeat("ä¸‰", 100)
	e := &APIError{Status: http.StatusInternalServerError, Body: body}

	msg := e.Error()
	if !strings.HasSuffix(msg, "...") {
		t.Fatalf("Error() = %q, want truncated message", msg)
	}
	if !utf8.ValidString(msg) {
		t.Errorf("Error() = %q, contains a split rune", msg)
	}
	if strings.Contains(msg, string(utf8.RuneError)) {
		t.Errorf("Error() = %q, contains replacement rune", msg)
	}
}

func TestIsGUID(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"0d9bfb3e-3c5d-4a2e-9d38-8e2f3f1a7b6c", true},
		{"0D9BFB3E-3C5D-4A2E-9D38-8E2F3F1A7B6C", true},
		{"local-01HWZX5E8PKQ9J4T2M6R8V3N7A", false},
		{"0d9bfb3e3c5d4a2e9d388e2f3f1a7b6c", false},
		{"0d9bfb3e-3c5d-4a2e-9d38-8e2f3f1a7b6", false},
		{"", false},
		{"not-a-guid", false},
	}
	for _, tc := range cases {
		if got := IsGUID(tc.in); got != tc.want {
			t.Errorf("IsGUID(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestGuardRejectsLocalIDs(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request reached the server despite local ID")
	}))
	defer ts.Close()

	c := New(ts.URL, &staticTokens{token: "tok"}, WithHTTPClient(ts.Client()))
	err := c.DeleteWorkout(context.Background(), "0d9bfb3e-3c5d-4a2e-9d38-8e2f3f1a7b6c", "local-01HWZX5E8P")
	if err == nil {
		t.Fatal("expected error for local placeholder ID")
	}
}
