// ABOUTME: Tests for auth endpoints.
// ABOUTME: Verifies login payloads, refresh auth requirement, and result conversion.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLoginParsesAuthResult(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/login" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "" {
			t.Error("login must not carry a bearer token")
		}
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if req.Email != "sam@example.com" || req.Password != "hunter2" {
			t.Errorf("unexpected credentials: %+v", req)
		}
		_, _ = w.Write([]byte(`{
			"token": "tok-abc",
			"expiresAt": "2025-06-01T00:00:00Z",
			"user": {
				"id": "a0b1c2d3-e4f5-4678-9abc-def012345678",
				"email": "sam@example.com",
				"name": "Sam",
				"profileId": null
			}
		}`))
	}))
	defer ts.Close()

	c := New(ts.URL, &staticTokens{token: "stale"}, WithHTTPClient(ts.Client()))
	result, err := c.Login(context.Background(), "sam@example.com", "hunter2")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if result.Token != "tok-abc" {
		t.Errorf("Token = %q", result.Token)
	}
	if result.ExpiresAt.IsZero() {
		t.Error("expiresAt not parsed")
	}
	if result.User.ProfileID != nil {
		t.Error("null profileId must convert to nil")
	}
}

func TestRefreshRequiresAuth(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer old-token" {
			t.Errorf("Authorization = %q, want prior token", r.Header.Get("Authorization"))
		}
		_, _ = w.Write([]byte(`{
			"token": "new-token",
			"expiresAt": "2025-06-01T00:00:00Z",
			"user": {"id": "u", "email": "e", "name": "n", "profileId": "p"}
		}`))
	}))
	defer ts.Close()

	c := New(ts.URL, &staticTokens{token: "old-token"}, WithHTTPClient(ts.Client()))
	result, err := c.Refresh(context.Background())
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if result.Token != "new-token" {
		t.Errorf("Token = %q", result.Token)
	}
	if result.User.ProfileID == nil || *result.User.ProfileID != "p" {
		t.Errorf("ProfileID = %v", result.User.ProfileID)
	}
}

func TestChangePasswordNoContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer ts.Close()

	c := New(ts.URL, &staticTokens{token: "tok"}, WithHTTPClient(ts.Client()))
	if err := c.ChangePassword(context.Background(), "old", "new"); err != nil {
		t.Fatalf("ChangePassword: %v", err)
	}
}
