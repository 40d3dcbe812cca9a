// ABOUTME: Application state store mirroring the remote profile's data in memory.
// ABOUTME: Mutations go through the API first; local state only ever reflects confirmed server responses.
package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/harperreed/fittrack/internal/api"
	"github.com/harperreed/fittrack/internal/localdata"
	"github.com/harperreed/fittrack/internal/models"
)

// ErrNoProfile is returned for profile-scoped operations before a training
// profile exists.
var ErrNoProfile = errors.New("no training profile yet")

// ProfileSource tells the store which profile is current.
type ProfileSource interface {
	ProfileID() (string, bool)
}

// Store aggregates the remote profile's collections into one in-memory
// snapshot. It is a cache, not a source of truth: every mutation calls the
// API first and applies the server's canonical response as a minimal local
// patch. One live Store per authenticated session.
type Store struct {
	mu      sync.RWMutex
	api     *api.Client
	session ProfileSource
	kv      *localdata.Store
	now     func() time.Time

	profile    *models.UserProfile
	workouts   []models.Workout
	bioHistory []models.BioimpedanceData
	completed  []models.CompletedWorkout
	stats      models.WorkoutStats
	water      *models.DailyWaterSummary
	loaded     bool
	lastErr    string
}

// Option configures a Store.
type Option func(*Store)

// WithClock injects the wall clock (used by tests).
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithLocalData enables offline snapshots in the given KV store.
func WithLocalData(kv *localdata.Store) Option {
	return func(s *Store) { s.kv = kv }
}

// New creates an empty store bound to the API client and session.
func New(client *api.Client, session ProfileSource, opts ...Option) *Store {
	s := &Store{
		api:     client,
		session: session,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Loaded reports whether a hydration batch has completed.
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Err returns the latest user-facing error message, or "".
func (s *Store) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// ClearErr dismisses the current error message.
func (s *Store) ClearErr() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = ""
}

func (s *Store) setErr(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = msg
}

func (s *Store) profileID() (string, error) {
	pid, ok := s.session.ProfileID()
	if !ok {
		return "", ErrNoProfile
	}
	return pid, nil
}

// Hydrate loads the profile and every profile-scoped collection in one
// concurrent batch. The batch is all-or-nothing: if any fetch fails, no
// local state changes — an incomplete snapshot is worse than none.
func (s *Store) Hydrate(ctx context.Context) error {
	pid, err := s.profileID()
	if err != nil {
		return err
	}

	var (
		profile   *models.UserProfile
		workouts  []models.Workout
		bio       []models.BioimpedanceData
		completed []models.CompletedWorkout
		stats     *models.WorkoutStats
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		profile, err = s.api.GetProfile(gctx, pid)
		return err
	})
	g.Go(func() error {
		var err error
		workouts, err = s.api.ListWorkouts(gctx, pid)
		return err
	})
	g.Go(func() error {
		var err error
		bio, err = s.api.ListBioimpedance(gctx, pid)
		return err
	})
	g.Go(func() error {
		var err error
		completed, err = s.api.ListCompleted(gctx, pid)
		return err
	})
	g.Go(func() error {
		var err error
		stats, err = s.api.WorkoutStats(gctx, pid)
		return err
	})

	if err := g.Wait(); err != nil {
		s.setErr("Could not load your training data.")
		return err
	}

	s.mu.Lock()
	s.profile = profile
	s.workouts = workouts
	s.bioHistory = bio
	s.completed = completed
	s.stats = *stats
	s.loaded = true
	s.lastErr = ""
	s.mu.Unlock()

	s.saveSnapshot(pid)
	return nil
}

// Refresh re-runs the hydration batch. Safe to call concurrently with
// itself: each successful batch replaces the snapshot wholesale, so the
// last response to settle wins. No cancellation of in-flight calls.
func (s *Store) Refresh(ctx context.Context) error {
	return s.Hydrate(ctx)
}

// Reset empties every collection, called on the Anonymous transition.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = nil
	s.workouts = nil
	s.bioHistory = nil
	s.completed = nil
	s.stats = models.WorkoutStats{}
	s.water = nil
	s.loaded = false
	s.lastErr = ""
}

// Profile returns a copy of the current profile, or nil.
func (s *Store) Profile() *models.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.profile == nil {
		return nil
	}
	p := *s.profile
	return &p
}

// Workouts returns a copy of the workout list, newest first.
func (s *Store) Workouts() []models.Workout {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Workout, len(s.workouts))
	copy(out, s.workouts)
	return out
}

// WorkoutByID returns the workout with the given ID, or nil.
func (s *Store) WorkoutByID(id string) *models.Workout {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.workouts {
		if s.workouts[i].ID == id {
			w := s.workouts[i]
			return &w
		}
	}
	return nil
}

// BioimpedanceHistory returns a copy of the measurement history.
func (s *Store) BioimpedanceHistory() []models.BioimpedanceData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.BioimpedanceData, len(s.bioHistory))
	copy(out, s.bioHistory)
	return out
}

// CompletedWorkouts returns a copy of the completion records.
func (s *Store) CompletedWorkouts() []models.CompletedWorkout {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.CompletedWorkout, len(s.completed))
	copy(out, s.completed)
	return out
}

// Stats returns the server-aggregated completion stats.
func (s *Store) Stats() models.WorkoutStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stats
}

// Water returns the most recently fetched daily water summary, or nil.
func (s *Store) Water() *models.DailyWaterSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.water == nil {
		return nil
	}
	w := *s.water
	return &w
}

// IsCompletedToday reports whether the workout has a completion record
// dated today in local time. Recomputed on every call: "today" moves
// without any data mutation.
func (s *Store) IsCompletedToday(workoutID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	today := s.now().Local()
	for _, c := range s.completed {
		if c.WorkoutID == workoutID && sameLocalDay(c.CompletedAt, today) {
			return true
		}
	}
	return false
}

// sameLocalDay compares two instants by calendar day in local time.
func sameLocalDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}
