// ABOUTME: Tests for the session state machine and durable persistence.
// ABOUTME: Uses a fake auth API and a temp badger store.
package session

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/harperreed/fittrack/internal/api"
	"github.com/harperreed/fittrack/internal/localdata"
	"github.com/harperreed/fittrack/internal/models"
)

type fakeAuth struct {
	loginFn    func(email, password string) (*models.AuthResult, error)
	registerFn func(email, password, name string) (*models.AuthResult, error)
	refreshFn  func() (*models.AuthResult, error)
}

func (f *fakeAuth) Login(_ context.Context, email, password string) (*models.AuthResult, error) {
	return f.loginFn(email, password)
}

func (f *fakeAuth) Register(_ context.Context, email, password, name string) (*models.AuthResult, error) {
	return f.registerFn(email, password, name)
}

func (f *fakeAuth) Refresh(_ context.Context) (*models.AuthResult, error) {
	return f.refreshFn()
}

func (f *fakeAuth) ChangePassword(_ context.Context, _, _ string) error {
	return nil
}

func setupManager(t *testing.T) (*Manager, *localdata.Store) {
	t.Helper()
	kv, err := localdata.Open(t.TempDir())
	if err != nil {
		t.Fatalf("open kv: %v", err)
	}
	t.Cleanup(func() { _ = kv.Close() })

	m, err := NewManager(kv)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	return m, kv
}

func validResult(token string) *models.AuthResult {
	profileID := "7f3c9a2b-1d4e-4f6a-8b0c-2e5d7a9c1f3b"
	return &models.AuthResult{
		Token: token,
		User: models.AuthUser{
			ID:        "u1",
			Email:     "sam@example.com",
			Name:      "Sam",
			ProfileID: &profileID,
		},
	}
}

func TestInitialStateIsUnknown(t *testing.T) {
	m, _ := setupManager(t)
	if m.State() != StateUnknown {
		t.Errorf("State = %s, want unknown", m.State())
	}
	if m.Token() != "" {
		t.Error("token present before restore")
	}
}

func TestRestoreWithoutStoredSession(t *testing.T) {
	m, _ := setupManager(t)
	m.Bind(&fakeAuth{refreshFn: func() (*models.AuthResult, error) {
		t.Error("refresh called with no stored session")
		return nil, nil
	}})

	if err := m.Restore(context.Background()); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if m.State() != StateAnonymous {
		t.Errorf("State = %s, want anonymous", m.State())
	}
}

func TestRestoreWithFailingRefreshClearsSession(t *testing.T) {
	m, kv := setupManager(t)

	// Seed a stored session.
	if err := kv.Set(localdata.KeyToken, []byte("stale-token")); err != nil {
		t.Fatal(err)
	}
	if err := kv.Set(localdata.KeyUser, []byte(`{"id":"u1","email":"sam@example.com","name":"Sam","profileId":null}`)); err != nil {
		t.Fatal(err)
	}

	var refreshSawToken string
	m.Bind(&fakeAuth{refreshFn: func() (*models.AuthResult, error) {
		refreshSawToken = m.Token()
		return nil, &api.APIError{Status: 401, Body: "token expired"}
	}})

	if err := m.Restore(context.Background()); err != nil {
		t.Fatalf("Restore must swallow refresh failure, got %v", err)
	}
	if refreshSawToken != "stale-token" {
		t.Errorf("refresh ran with token %q, want stored token", refreshSawToken)
	}
	if m.State() != StateAnonymous {
		t.Errorf("State = %s, want anonymous after failed refresh", m.State())
	}
	if m.Token() != "" {
		t.Error("token still set after downgrade")
	}
	if _, err := kv.Get(localdata.KeyToken); !errors.Is(err, localdata.ErrNotFound) {
		t.Error("token key not cleared")
	}
	if _, err := kv.Get(localdata.KeyUser); !errors.Is(err, localdata.ErrNotFound) {
		t.Error("user key not cleared")
	}
}

func TestRestoreWithSuccessfulRefresh(t *testing.T) {
	m, kv := setupManager(t)
	if err := kv.Set(localdata.KeyToken, []byte("stale-token")); err != nil {
		t.Fatal(err)
	}
	if err := kv.Set(localdata.KeyUser, []byte(`{"id":"u1","email":"sam@example.com","name":"Sam","profileId":"7f3c9a2b-1d4e-4f6a-8b0c-2e5d7a9c1f3b"}`)); err != nil {
		t.Fatal(err)
	}

	m.Bind(&fakeAuth{refreshFn: func() (*models.AuthResult, error) {
		return validResult("fresh-token"), nil
	}})

	if err := m.Restore(context.Background()); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if m.State() != StateAuthenticated {
		t.Fatalf("State = %s, want authenticated", m.State())
	}
	if m.Token() != "fresh-token" {
		t.Errorf("Token = %q, want refreshed token", m.Token())
	}

	stored, err := kv.Get(localdata.KeyToken)
	if err != nil || string(stored) != "fresh-token" {
		t.Errorf("persisted token = %q (%v), want fresh-token", stored, err)
	}
}

func TestSignInSuccess(t *testing.T) {
	m, kv := setupManager(t)
	m.Bind(&fakeAuth{loginFn: func(email, password string) (*models.AuthResult, error) {
		return validResult("tok-login"), nil
	}})

	if err := m.SignIn(context.Background(), "sam@example.com", "hunter2"); err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	if m.State() != StateAuthenticated {
		t.Errorf("State = %s", m.State())
	}
	if pid, ok := m.ProfileID(); !ok || pid != "7f3c9a2b-1d4e-4f6a-8b0c-2e5d7a9c1f3b" {
		t.Errorf("ProfileID = %q, %v", pid, ok)
	}
	if _, err := kv.Get(localdata.KeyUser); err != nil {
		t.Errorf("user not persisted: %v", err)
	}
}

func TestExpiresAtTracksSession(t *testing.T) {
	m, _ := setupManager(t)
	expiry := time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)
	m.Bind(&fakeAuth{loginFn: func(_, _ string) (*models.AuthResult, error) {
		result := validResult("tok")
		result.ExpiresAt = expiry
		return result, nil
	}})

	if _, ok := m.ExpiresAt(); ok {
		t.Error("expiry reported before sign-in")
	}

	if err := m.SignIn(context.Background(), "sam@example.com", "hunter2"); err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	exp, ok := m.ExpiresAt()
	if !ok || !exp.Equal(expiry) {
		t.Errorf("ExpiresAt = %v, %v, want %v", exp, ok, expiry)
	}

	m.SignOut()
	if _, ok := m.ExpiresAt(); ok {
		t.Error("expiry reported after sign-out")
	}
}

func TestSignInInvalidCredentials(t *testing.T) {
	m, _ := setupManager(t)
	m.Bind(&fakeAuth{loginFn: func(_, _ string) (*models.AuthResult, error) {
		return nil, &api.APIError{Status: 401, Body: "bad credentials"}
	}})

	err := m.SignIn(context.Background(), "sam@example.com", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}
	if m.State() == StateAuthenticated {
		t.Error("authenticated after failed sign-in")
	}
}

func TestSignUpEmailTaken(t *testing.T) {
	m, _ := setupManager(t)
	m.Bind(&fakeAuth{registerFn: func(_, _, _ string) (*models.AuthResult, error) {
		return nil, &api.APIError{Status: 409, Body: "exists"}
	}})

	err := m.SignUp(context.Background(), "sam@example.com", "pw", "Sam")
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("err = %v, want ErrEmailTaken", err)
	}
}

func TestSignUpOtherErrorsPassThrough(t *testing.T) {
	m, _ := setupManager(t)
	m.Bind(&fakeAuth{registerFn: func(_, _, _ string) (*models.AuthResult, error) {
		return nil, &api.APIError{Status: 500, Body: "boom"}
	}})

	err := m.SignUp(context.Background(), "sam@example.com", "pw", "Sam")
	if errors.Is(err, ErrEmailTaken) || errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("500 mapped to a credential error: %v", err)
	}
	if api.StatusOf(err) != 500 {
		t.Errorf("StatusOf = %d, want 500", api.StatusOf(err))
	}
}

func TestSignOutClearsBothKeys(t *testing.T) {
	m, kv := setupManager(t)
	m.Bind(&fakeAuth{loginFn: func(_, _ string) (*models.AuthResult, error) {
		return validResult("tok"), nil
	}})
	if err := m.SignIn(context.Background(), "a", "b"); err != nil {
		t.Fatal(err)
	}

	m.SignOut()

	if m.State() != StateAnonymous {
		t.Errorf("State = %s", m.State())
	}
	if _, err := kv.Get(localdata.KeyToken); !errors.Is(err, localdata.ErrNotFound) {
		t.Error("token key survived sign-out")
	}
	if _, err := kv.Get(localdata.KeyUser); !errors.Is(err, localdata.ErrNotFound) {
		t.Error("user key survived sign-out")
	}
}

func TestSetProfileIDPersists(t *testing.T) {
	m, kv := setupManager(t)
	noProfile := validResult("tok")
	noProfile.User.ProfileID = nil
	m.Bind(&fakeAuth{loginFn: func(_, _ string) (*models.AuthResult, error) {
		return noProfile, nil
	}})
	if err := m.SignIn(context.Background(), "a", "b"); err != nil {
		t.Fatal(err)
	}
	if _, ok := m.ProfileID(); ok {
		t.Fatal("profile ID present before creation")
	}

	if err := m.SetProfileID("7f3c9a2b-1d4e-4f6a-8b0c-2e5d7a9c1f3b"); err != nil {
		t.Fatalf("SetProfileID: %v", err)
	}
	if pid, ok := m.ProfileID(); !ok || pid == "" {
		t.Error("profile ID not visible after set")
	}

	raw, err := kv.Get(localdata.KeyUser)
	if err != nil {
		t.Fatalf("read user key: %v", err)
	}
	if want := `"profileId":"7f3c9a2b-1d4e-4f6a-8b0c-2e5d7a9c1f3b"`; !strings.Contains(string(raw), want) {
		t.Errorf("stored user %s does not carry profile id", raw)
	}
}

func TestDeviceIDStableAcrossRestarts(t *testing.T) {
	kv, err := localdata.Open(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer kv.Close()

	m1, err := NewManager(kv)
	if err != nil {
		t.Fatal(err)
	}
	m2, err := NewManager(kv)
	if err != nil {
		t.Fatal(err)
	}
	if m1.DeviceID() == "" || m1.DeviceID() != m2.DeviceID() {
		t.Errorf("device IDs differ: %q vs %q", m1.DeviceID(), m2.DeviceID())
	}
}
