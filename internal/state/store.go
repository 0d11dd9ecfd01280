// Package state owns the persisted application state. Every mutation goes
// through the Store, which applies the change and immediately flushes the
// whole state to disk, so callers never observe a half-applied update.
package state

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/duartev/pioneiro/internal/model"
	"github.com/duartev/pioneiro/internal/storage"
	"github.com/duartev/pioneiro/internal/timecalc"
)

// ErrNotFound is returned when a referenced entry, study or plan day does not exist.
var ErrNotFound = errors.New("not found")

// Store holds the in-memory AppState and persists it on every mutation.
type Store struct {
	base string
	st   model.AppState
	now  func() time.Time
}

// Open loads the state from the given base directory.
func Open(base string) (*Store, error) {
	st, err := storage.LoadState(base)
	if err != nil {
		return nil, err
	}
	return &Store{base: base, st: st, now: time.Now}, nil
}

// NewForTest builds a Store over a temp directory with an injected clock.
func NewForTest(base string, now func() time.Time) *Store {
	return &Store{base: base, st: model.NewAppState(), now: now}
}

// State returns a copy of the current state.
func (s *Store) State() model.AppState {
	st := s.st
	st.ServiceEntries = append([]model.ServiceEntry(nil), s.st.ServiceEntries...)
	st.BibleStudies = append([]model.BibleStudy(nil), s.st.BibleStudies...)
	st.WeeklyPlans = append([]model.DayPlan(nil), s.st.WeeklyPlans...)
	return st
}

// Profile returns the current user profile.
func (s *Store) Profile() model.UserProfile {
	return s.st.Profile
}

func (s *Store) persist() error {
	return storage.SaveState(s.base, s.st)
}

// UpdateProfile replaces the user profile.
func (s *Store) UpdateProfile(p model.UserProfile) error {
	s.st.Profile = p
	return s.persist()
}

// AddEntry records a completed service session. Zero or negative durations
// are rejected: no zero-duration entries are ever persisted.
func (s *Store) AddEntry(date string, minutes float64, note string) (model.ServiceEntry, error) {
	if minutes <= 0 {
		return model.ServiceEntry{}, fmt.Errorf("entry duration must be positive, got %v minutes", minutes)
	}
	if _, err := time.Parse(timecalc.DayLayout, date); err != nil {
		return model.ServiceEntry{}, fmt.Errorf("invalid entry date %q: %w", date, err)
	}

	entry := model.ServiceEntry{
		ID:      timecalc.GenerateID(s.now()),
		Date:    date,
		Minutes: minutes,
		Note:    note,
	}
	// Newest first, matching how listings display.
	s.st.ServiceEntries = append([]model.ServiceEntry{entry}, s.st.ServiceEntries...)
	return entry, s.persist()
}

// DeleteEntry removes a service entry by ID.
func (s *Store) DeleteEntry(id string) error {
	for i, e := range s.st.ServiceEntries {
		if e.ID == id {
			s.st.ServiceEntries = append(s.st.ServiceEntries[:i], s.st.ServiceEntries[i+1:]...)
			return s.persist()
		}
	}
	return fmt.Errorf("service entry %q: %w", id, ErrNotFound)
}

// TogglePlanDay flips a weekly-plan day. Activating seeds the default
// duration; deactivating resets the minutes to zero.
func (s *Store) TogglePlanDay(day int) (model.DayPlan, error) {
	for i, p := range s.st.WeeklyPlans {
		if p.Day != day {
			continue
		}
		if p.Active {
			p.Active = false
			p.Minutes = 0
		} else {
			p.Active = true
			p.Minutes = model.DefaultPlanMinutes
		}
		s.st.WeeklyPlans[i] = p
		return p, s.persist()
	}
	return model.DayPlan{}, fmt.Errorf("plan day %d: %w", day, ErrNotFound)
}

// SetPlanMinutes sets the planned duration of a day and activates it.
func (s *Store) SetPlanMinutes(day int, minutes float64) (model.DayPlan, error) {
	if minutes <= 0 {
		return model.DayPlan{}, fmt.Errorf("planned duration must be positive, got %v minutes", minutes)
	}
	for i, p := range s.st.WeeklyPlans {
		if p.Day != day {
			continue
		}
		p.Active = true
		p.Minutes = minutes
		s.st.WeeklyPlans[i] = p
		return p, s.persist()
	}
	return model.DayPlan{}, fmt.Errorf("plan day %d: %w", day, ErrNotFound)
}

// AddStudy registers a new bible study for the current reporting month,
// starting at one session.
func (s *Store) AddStudy(name, notes string) (model.BibleStudy, error) {
	if name == "" {
		return model.BibleStudy{}, errors.New("study name must not be empty")
	}
	study := model.BibleStudy{
		ID:       uuid.NewString(),
		Name:     name,
		Month:    timecalc.MonthKey(s.now()),
		Sessions: 1,
		Notes:    notes,
	}
	s.st.BibleStudies = append(s.st.BibleStudies, study)
	return study, s.persist()
}

// AdjustStudySessions changes a study's session count by delta, clamping at zero.
func (s *Store) AdjustStudySessions(id string, delta int) (model.BibleStudy, error) {
	for i, st := range s.st.BibleStudies {
		if st.ID != id {
			continue
		}
		st.Sessions += delta
		if st.Sessions < 0 {
			st.Sessions = 0
		}
		s.st.BibleStudies[i] = st
		return st, s.persist()
	}
	return model.BibleStudy{}, fmt.Errorf("bible study %q: %w", id, ErrNotFound)
}

// SetStudyNotes replaces a study's notes.
func (s *Store) SetStudyNotes(id, notes string) error {
	for i, st := range s.st.BibleStudies {
		if st.ID != id {
			continue
		}
		s.st.BibleStudies[i].Notes = notes
		return s.persist()
	}
	return fmt.Errorf("bible study %q: %w", id, ErrNotFound)
}

// RemoveStudy deletes a bible study.
func (s *Store) RemoveStudy(id string) error {
	for i, st := range s.st.BibleStudies {
		if st.ID != id {
			continue
		}
		s.st.BibleStudies = append(s.st.BibleStudies[:i], s.st.BibleStudies[i+1:]...)
		return s.persist()
	}
	return fmt.Errorf("bible study %q: %w", id, ErrNotFound)
}

// MarkReminderSent records that today's reminder went out, for the
// once-per-day dedupe.
func (s *Store) MarkReminderSent(day string) error {
	s.st.Profile.LastReminderSent = day
	return s.persist()
}
