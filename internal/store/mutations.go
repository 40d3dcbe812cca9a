// ABOUTME: Store mutation operations: remote call first, then a minimal local patch.
// ABOUTME: Failures land in the error field for display and are returned for caller-side handling.
package store

import (
	"context"

	"github.com/harperreed/fittrack/internal/models"
)

// ProfileWriter is implemented by the session manager so a freshly created
// profile becomes visible to profile-scoped calls.
type ProfileWriter interface {
	SetProfileID(profileID string) error
}

// CreateProfile creates the training profile and records its ID on the
// session. Not profile-scoped; it is what makes the profile exist.
func (s *Store) CreateProfile(ctx context.Context, p models.UserProfile, session ProfileWriter) (*models.UserProfile, error) {
	created, err := s.api.CreateProfile(ctx, p)
	if err != nil {
		s.setErr("Could not create your profile.")
		return nil, err
	}
	if err := session.SetProfileID(created.ID); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.profile = created
	s.mu.Unlock()
	return created, nil
}

// UpdateProfile saves profile edits and replaces the local copy with the
// server's canonical response.
func (s *Store) UpdateProfile(ctx context.Context, p models.UserProfile) (*models.UserProfile, error) {
	updated, err := s.api.UpdateProfile(ctx, p)
	if err != nil {
		s.setErr("Could not save your profile.")
		return nil, err
	}

	s.mu.Lock()
	s.profile = updated
	s.mu.Unlock()
	return updated, nil
}

// AddWorkout creates a workout. On success the server's copy is prepended
// to the local list; the request payload is never inserted directly.
func (s *Store) AddWorkout(ctx context.Context, w models.Workout) (*models.Workout, error) {
	pid, err := s.profileID()
	if err != nil {
		return nil, err
	}

	created, err := s.api.CreateWorkout(ctx, pid, w)
	if err != nil {
		s.setErr("Could not save the workout.")
		return nil, err
	}

	s.mu.Lock()
	s.workouts = append([]models.Workout{*created}, s.workouts...)
	s.mu.Unlock()
	return created, nil
}

// UpdateWorkout saves workout edits, replacing exactly the matching entry.
func (s *Store) UpdateWorkout(ctx context.Context, w models.Workout) (*models.Workout, error) {
	pid, err := s.profileID()
	if err != nil {
		return nil, err
	}

	updated, err := s.api.UpdateWorkout(ctx, pid, w)
	if err != nil {
		s.setErr("Could not save the workout.")
		return nil, err
	}

	s.mu.Lock()
	for i := range s.workouts {
		if s.workouts[i].ID == updated.ID {
			s.workouts[i] = *updated
			break
		}
	}
	s.mu.Unlock()
	return updated, nil
}

// DeleteWorkout removes a workout remotely, then filters it out locally.
func (s *Store) DeleteWorkout(ctx context.Context, id string) error {
	pid, err := s.profileID()
	if err != nil {
		return err
	}

	if err := s.api.DeleteWorkout(ctx, pid, id); err != nil {
		s.setErr("Could not delete the workout.")
		return err
	}

	s.mu.Lock()
	kept := s.workouts[:0]
	for _, w := range s.workouts {
		if w.ID != id {
			kept = append(kept, w)
		}
	}
	s.workouts = kept
	s.mu.Unlock()
	return nil
}

// CompleteWorkout records a finished session, prepends the confirmed
// record, and replaces the aggregate stats wholesale from the server.
func (s *Store) CompleteWorkout(ctx context.Context, workoutID string, durationSeconds int) (*models.CompletedWorkout, error) {
	pid, err := s.profileID()
	if err != nil {
		return nil, err
	}

	record, err := s.api.CompleteWorkout(ctx, pid, workoutID, s.now(), durationSeconds)
	if err != nil {
		s.setErr("Could not record the completed workout.")
		return nil, err
	}

	s.mu.Lock()
	s.completed = append([]models.CompletedWorkout{*record}, s.completed...)
	s.mu.Unlock()

	// Stats are never computed client-side; re-fetch the aggregate.
	stats, err := s.api.WorkoutStats(ctx, pid)
	if err != nil {
		s.setErr("Workout recorded, but stats could not be refreshed.")
		return record, err
	}

	s.mu.Lock()
	s.stats = *stats
	s.mu.Unlock()
	return record, nil
}

// DeleteCompleted removes a completion record and refreshes the stats.
func (s *Store) DeleteCompleted(ctx context.Context, id string) error {
	pid, err := s.profileID()
	if err != nil {
		return err
	}

	if err := s.api.DeleteCompleted(ctx, pid, id); err != nil {
		s.setErr("Could not delete the record.")
		return err
	}

	s.mu.Lock()
	kept := s.completed[:0]
	for _, c := range s.completed {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	s.completed = kept
	s.mu.Unlock()

	stats, err := s.api.WorkoutStats(ctx, pid)
	if err != nil {
		s.setErr("Record deleted, but stats could not be refreshed.")
		return err
	}

	s.mu.Lock()
	s.stats = *stats
	s.mu.Unlock()
	return nil
}

// AddBioimpedance stores a measurement and prepends the confirmed record.
func (s *Store) AddBioimpedance(ctx context.Context, b models.BioimpedanceData) (*models.BioimpedanceData, error) {
	pid, err := s.profileID()
	if err != nil {
		return nil, err
	}

	created, err := s.api.CreateBioimpedance(ctx, pid, b)
	if err != nil {
		s.setErr("Could not save the measurement.")
		return nil, err
	}

	s.mu.Lock()
	s.bioHistory = append([]models.BioimpedanceData{*created}, s.bioHistory...)
	s.mu.Unlock()
	return created, nil
}

// UpdateBioimpedance saves measurement edits, replacing the matching entry.
func (s *Store) UpdateBioimpedance(ctx context.Context, b models.BioimpedanceData) (*models.BioimpedanceData, error) {
	pid, err := s.profileID()
	if err != nil {
		return nil, err
	}

	updated, err := s.api.UpdateBioimpedance(ctx, pid, b)
	if err != nil {
		s.setErr("Could not save the measurement.")
		return nil, err
	}

	s.mu.Lock()
	for i := range s.bioHistory {
		if s.bioHistory[i].ID == updated.ID {
			s.bioHistory[i] = *updated
			break
		}
	}
	s.mu.Unlock()
	return updated, nil
}

// DeleteBioimpedance removes a measurement remotely, then locally.
func (s *Store) DeleteBioimpedance(ctx context.Context, id string) error {
	pid, err := s.profileID()
	if err != nil {
		return err
	}

	if err := s.api.DeleteBioimpedance(ctx, pid, id); err != nil {
		s.setErr("Could not delete the measurement.")
		return err
	}

	s.mu.Lock()
	kept := s.bioHistory[:0]
	for _, b := range s.bioHistory {
		if b.ID != id {
			kept = append(kept, b)
		}
	}
	s.bioHistory = kept
	s.mu.Unlock()
	return nil
}

// LoadWater fetches the summary for one UTC calendar date (YYYY-MM-DD).
func (s *Store) LoadWater(ctx context.Context, date string) (*models.DailyWaterSummary, error) {
	pid, err := s.profileID()
	if err != nil {
		return nil, err
	}

	summary, err := s.api.WaterSummary(ctx, pid, date)
	if err != nil {
		s.setErr("Could not load water intake.")
		return nil, err
	}

	s.mu.Lock()
	s.water = summary
	s.mu.Unlock()
	return summary, nil
}

// AddWater logs a drink. The whole summary is replaced from the response
// because the total is server-computed.
func (s *Store) AddWater(ctx context.Context, amountMl int, note *string) (*models.DailyWaterSummary, error) {
	pid, err := s.profileID()
	if err != nil {
		return nil, err
	}

	summary, err := s.api.AddWater(ctx, pid, amountMl, note)
	if err != nil {
		s.setErr("Could not log water intake.")
		return nil, err
	}

	s.mu.Lock()
	s.water = summary
	s.mu.Unlock()
	return summary, nil
}

// DeleteWater removes an entry, then re-fetches the day's summary so the
// server-computed total stays authoritative.
func (s *Store) DeleteWater(ctx context.Context, entryID, date string) error {
	pid, err := s.profileID()
	if err != nil {
		return err
	}

	if err := s.api.DeleteWater(ctx, pid, entryID); err != nil {
		s.setErr("Could not delete the entry.")
		return err
	}

	summary, err := s.api.WaterSummary(ctx, pid, date)
	if err != nil {
		s.setErr("Entry deleted, but the summary could not be refreshed.")
		return err
	}

	s.mu.Lock()
	s.water = summary
	s.mu.Unlock()
	return nil
}
