// ABOUTME: Auth session state machine: Unknown -> Anonymous/Authenticated.
// ABOUTME: Owns the bearer token, persists the session, and silently downgrades on failed refresh.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/harperreed/fittrack/internal/api"
	"github.com/harperreed/fittrack/internal/localdata"
	"github.com/harperreed/fittrack/internal/models"
)

// State is the session lifecycle state.
type State string

const (
	// StateUnknown means the stored session has not been restored yet.
	StateUnknown State = "unknown"
	// StateAnonymous means there is no valid session.
	StateAnonymous State = "anonymous"
	// StateAuthenticated means a token and user are present.
	StateAuthenticated State = "authenticated"
)

var (
	// ErrInvalidCredentials maps a 401 on sign-in.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrEmailTaken maps a 409 on sign-up.
	ErrEmailTaken = errors.New("email is already registered")
	// ErrNotAuthenticated is returned for operations that need a session.
	ErrNotAuthenticated = errors.New("not signed in")
)

// AuthAPI is the slice of the REST client the session manager drives.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*models.AuthResult, error)
	Register(ctx context.Context, email, password, name string) (*models.AuthResult, error)
	Refresh(ctx context.Context) (*models.AuthResult, error)
	ChangePassword(ctx context.Context, currentPassword, newPassword string) error
}

// storedUser is the durable JSON shape of the authenticated user.
type storedUser struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	Name      string  `json:"name"`
	ProfileID *string `json:"profileId"`
}

// Manager is the single source of truth for "is there a logged-in user"
// and the bearer token the API client reads. It implements api.TokenSource.
type Manager struct {
	mu       sync.RWMutex
	kv       *localdata.Store
	auth     AuthAPI
	state    State
	token    string
	expires  time.Time
	user     *models.AuthUser
	deviceID string
}

var _ api.TokenSource = (*Manager)(nil)

// NewManager creates a manager in the Unknown state, generating and
// persisting a device ID on first run.
func NewManager(kv *localdata.Store) (*Manager, error) {
	m := &Manager{kv: kv, state: StateUnknown}

	id, err := kv.Get(localdata.KeyDeviceID)
	switch {
	case err == nil:
		m.deviceID = string(id)
	case errors.Is(err, localdata.ErrNotFound):
		m.deviceID = newDeviceID()
		if err := kv.Set(localdata.KeyDeviceID, []byte(m.deviceID)); err != nil {
			return nil, fmt.Errorf("persist device id: %w", err)
		}
	default:
		return nil, fmt.Errorf("read device id: %w", err)
	}

	return m, nil
}

// Bind attaches the REST client. Done after construction because the client
// itself needs the manager as its token source.
func (m *Manager) Bind(auth AuthAPI) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.auth = auth
}

// Token returns the current bearer token, or "" when anonymous.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}

// DeviceID returns the ULID identifying this install.
func (m *Manager) DeviceID() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.deviceID
}

// State returns the current session state.
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// ExpiresAt returns when the current token expires. ok is false when
// anonymous or when the server sent no expiry.
func (m *Manager) ExpiresAt() (time.Time, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.state != StateAuthenticated || m.expires.IsZero() {
		return time.Time{}, false
	}
	return m.expires, true
}

// User returns a copy of the authenticated user, or nil when anonymous.
func (m *Manager) User() *models.AuthUser {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.user == nil {
		return nil
	}
	u := *m.user
	return &u
}

// ProfileID returns the current user's profile ID. ok is false when there
// is no session or no profile yet; every profile-scoped call requires it.
func (m *Manager) ProfileID() (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.user == nil || m.user.ProfileID == nil || *m.user.ProfileID == "" {
		return "", false
	}
	return *m.user.ProfileID, true
}

// Restore loads the stored session and verifies it with a refresh call.
// A missing session or a failed refresh downgrades to Anonymous without
// error; refresh failure at startup is expected, not exceptional.
func (m *Manager) Restore(ctx context.Context) error {
	tokenBytes, tokenErr := m.kv.Get(localdata.KeyToken)
	userBytes, userErr := m.kv.Get(localdata.KeyUser)
	if tokenErr != nil || userErr != nil {
		m.becomeAnonymous()
		return nil
	}

	var stored storedUser
	if err := json.Unmarshal(userBytes, &stored); err != nil {
		log.Debugf("session: stored user unreadable, discarding: %v", err)
		m.becomeAnonymous()
		return nil
	}

	// Make the stored token visible to the refresh call.
	m.mu.Lock()
	m.token = string(tokenBytes)
	m.user = userFromStored(stored)
	m.mu.Unlock()

	result, err := m.auth.Refresh(ctx)
	if err != nil {
		log.Debugf("session: refresh failed, signing out: %v", err)
		m.becomeAnonymous()
		return nil
	}

	return m.becomeAuthenticated(*result)
}

// SignIn exchanges credentials for a session. A 401 surfaces as
// ErrInvalidCredentials; other failures pass through.
func (m *Manager) SignIn(ctx context.Context, email, password string) error {
	result, err := m.auth.Login(ctx, email, password)
	if err != nil {
		if api.StatusOf(err) == http.StatusUnauthorized {
			return fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
		}
		return err
	}
	return m.becomeAuthenticated(*result)
}

// SignUp creates an account. A 409 surfaces as ErrEmailTaken.
func (m *Manager) SignUp(ctx context.Context, email, password, name string) error {
	result, err := m.auth.Register(ctx, email, password, name)
	if err != nil {
		if api.StatusOf(err) == http.StatusConflict {
			return fmt.Errorf("%w: %w", ErrEmailTaken, err)
		}
		return err
	}
	return m.becomeAuthenticated(*result)
}

// SignOut clears the session locally. The remote profile is untouched.
func (m *Manager) SignOut() {
	m.becomeAnonymous()
}

// ChangePassword updates the account password for the current session.
func (m *Manager) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	if m.State() != StateAuthenticated {
		return ErrNotAuthenticated
	}
	return m.auth.ChangePassword(ctx, currentPassword, newPassword)
}

// SetProfileID records a newly created profile on the stored user.
func (m *Manager) SetProfileID(profileID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		return ErrNotAuthenticated
	}
	m.user.ProfileID = &profileID
	return m.persistUserLocked()
}

// becomeAuthenticated enters the Authenticated state and persists the
// token and user under the two durable keys.
func (m *Manager) becomeAuthenticated(result models.AuthResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.state = StateAuthenticated
	m.token = result.Token
	m.expires = result.ExpiresAt
	user := result.User
	m.user = &user

	if err := m.kv.Set(localdata.KeyToken, []byte(m.token)); err != nil {
		return fmt.Errorf("persist token: %w", err)
	}
	return m.persistUserLocked()
}

// becomeAnonymous enters the Anonymous state and clears both durable keys.
func (m *Manager) becomeAnonymous() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.state = StateAnonymous
	m.token = ""
	m.expires = time.Time{}
	m.user = nil

	if err := m.kv.Delete(localdata.KeyToken); err != nil {
		log.Debugf("session: clear token: %v", err)
	}
	if err := m.kv.Delete(localdata.KeyUser); err != nil {
		log.Debugf("session: clear user: %v", err)
	}
}

func (m *Manager) persistUserLocked() error {
	stored := storedUser{
		ID:        m.user.ID,
		Email:     m.user.Email,
		Name:      m.user.Name,
		ProfileID: m.user.ProfileID,
	}
	data, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("marshal user: %w", err)
	}
	if err := m.kv.Set(localdata.KeyUser, data); err != nil {
		return fmt.Errorf("persist user: %w", err)
	}
	return nil
}

func userFromStored(s storedUser) *models.AuthUser {
	return &models.AuthUser{
		ID:        s.ID,
		Email:     s.Email,
		Name:      s.Name,
		ProfileID: s.ProfileID,
	}
}
