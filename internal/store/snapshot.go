// ABOUTME: Offline snapshot of the last hydrated state, kept in local KV.
// ABOUTME: Display-only; snapshot data is never written back to the server.
package store

import (
	"encoding/json"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/harperreed/fittrack/internal/localdata"
	"github.com/harperreed/fittrack/internal/models"
)

// Snapshot is the last successfully hydrated state for a profile.
type Snapshot struct {
	SavedAt    time.Time
	Profile    *models.UserProfile
	Workouts   []models.Workout
	BioHistory []models.BioimpedanceData
	Completed  []models.CompletedWorkout
	Stats      models.WorkoutStats
}

// saveSnapshot persists the current state for offline display. Best
// effort: a failed write only logs.
func (s *Store) saveSnapshot(profileID string) {
	if s.kv == nil {
		return
	}

	s.mu.RLock()
	snap := Snapshot{
		SavedAt:    s.now(),
		Profile:    s.profile,
		Workouts:   s.workouts,
		BioHistory: s.bioHistory,
		Completed:  s.completed,
		Stats:      s.stats,
	}
	s.mu.RUnlock()

	data, err := json.Marshal(snap)
	if err != nil {
		log.Debugf("store: marshal snapshot: %v", err)
		return
	}
	if err := s.kv.Set(localdata.SnapshotPrefix+profileID, data); err != nil {
		log.Debugf("store: save snapshot: %v", err)
	}
}

// ApplySnapshot fills the collections from a saved snapshot without
// touching the network. Mutations still require the backend.
func (s *Store) ApplySnapshot(snap *Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = snap.Profile
	s.workouts = snap.Workouts
	s.bioHistory = snap.BioHistory
	s.completed = snap.Completed
	s.stats = snap.Stats
	s.loaded = true
}

// LoadSnapshot returns the last saved state for the profile, if any. Used
// when the backend is unreachable; callers must treat it as read-only.
func (s *Store) LoadSnapshot(profileID string) (*Snapshot, error) {
	if s.kv == nil {
		return nil, localdata.ErrNotFound
	}
	data, err := s.kv.Get(localdata.SnapshotPrefix + profileID)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}
