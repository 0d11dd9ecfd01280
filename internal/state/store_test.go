package state_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duartev/pioneiro/internal/model"
	"github.com/duartev/pioneiro/internal/state"
	"github.com/duartev/pioneiro/internal/storage"
)

func fixedClock() func() time.Time {
	return func() time.Time {
		return time.Date(2024, 3, 20, 10, 0, 0, 0, time.UTC)
	}
}

func TestAddEntryPersists(t *testing.T) {
	base := t.TempDir()
	s := state.NewForTest(base, fixedClock())

	entry, err := s.AddEntry("2024-03-20", 90, "door to door")
	require.NoError(t, err)
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, 90.0, entry.Minutes)

	// The mutation must already be on disk.
	st, err := storage.LoadState(base)
	require.NoError(t, err)
	require.Len(t, st.ServiceEntries, 1)
	assert.Equal(t, entry, st.ServiceEntries[0])
}

func TestAddEntryRejectsNonPositive(t *testing.T) {
	s := state.NewForTest(t.TempDir(), fixedClock())

	_, err := s.AddEntry("2024-03-20", 0, "")
	assert.Error(t, err)
	_, err = s.AddEntry("2024-03-20", -15, "")
	assert.Error(t, err)
	_, err = s.AddEntry("20-03-2024", 60, "")
	assert.Error(t, err, "malformed date must be rejected")

	assert.Empty(t, s.State().ServiceEntries)
}

func TestAddEntryNewestFirst(t *testing.T) {
	s := state.NewForTest(t.TempDir(), fixedClock())

	first, err := s.AddEntry("2024-03-19", 60, "")
	require.NoError(t, err)
	second, err := s.AddEntry("2024-03-20", 30, "")
	require.NoError(t, err)

	got := s.State().ServiceEntries
	require.Len(t, got, 2)
	assert.Equal(t, second.ID, got[0].ID)
	assert.Equal(t, first.ID, got[1].ID)
}

func TestDeleteEntry(t *testing.T) {
	s := state.NewForTest(t.TempDir(), fixedClock())
	entry, err := s.AddEntry("2024-03-20", 60, "")
	require.NoError(t, err)

	require.NoError(t, s.DeleteEntry(entry.ID))
	assert.Empty(t, s.State().ServiceEntries)

	err = s.DeleteEntry("missing")
	assert.True(t, errors.Is(err, state.ErrNotFound))
}

func TestTogglePlanDay(t *testing.T) {
	s := state.NewForTest(t.TempDir(), fixedClock())

	p, err := s.TogglePlanDay(2)
	require.NoError(t, err)
	assert.True(t, p.Active)
	assert.Equal(t, float64(model.DefaultPlanMinutes), p.Minutes)

	p, err = s.TogglePlanDay(2)
	require.NoError(t, err)
	assert.False(t, p.Active)
	assert.Zero(t, p.Minutes, "deactivating must reset minutes")

	_, err = s.TogglePlanDay(7)
	assert.True(t, errors.Is(err, state.ErrNotFound))
}

func TestSetPlanMinutes(t *testing.T) {
	s := state.NewForTest(t.TempDir(), fixedClock())

	p, err := s.SetPlanMinutes(4, 180)
	require.NoError(t, err)
	assert.True(t, p.Active)
	assert.Equal(t, 180.0, p.Minutes)

	_, err = s.SetPlanMinutes(4, 0)
	assert.Error(t, err)
}

func TestStudyLifecycle(t *testing.T) {
	s := state.NewForTest(t.TempDir(), fixedClock())

	study, err := s.AddStudy("Pedro Silva", "chapter 3")
	require.NoError(t, err)
	assert.Equal(t, "2024-03", study.Month)
	assert.Equal(t, 1, study.Sessions)

	study, err = s.AdjustStudySessions(study.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, study.Sessions)

	// Sessions clamp at zero.
	study, err = s.AdjustStudySessions(study.ID, -10)
	require.NoError(t, err)
	assert.Equal(t, 0, study.Sessions)
	study, err = s.AdjustStudySessions(study.ID, -1)
	require.NoError(t, err)
	assert.Equal(t, 0, study.Sessions)

	require.NoError(t, s.SetStudyNotes(study.ID, "finished chapter 4"))
	assert.Equal(t, "finished chapter 4", s.State().BibleStudies[0].Notes)

	require.NoError(t, s.RemoveStudy(study.ID))
	assert.Empty(t, s.State().BibleStudies)
}

func TestAddStudyRequiresName(t *testing.T) {
	s := state.NewForTest(t.TempDir(), fixedClock())
	_, err := s.AddStudy("", "")
	assert.Error(t, err)
}

func TestMarkReminderSent(t *testing.T) {
	base := t.TempDir()
	s := state.NewForTest(base, fixedClock())

	require.NoError(t, s.MarkReminderSent("2024-03-20"))

	st, err := storage.LoadState(base)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-20", st.Profile.LastReminderSent)
}

func TestStateReturnsCopy(t *testing.T) {
	s := state.NewForTest(t.TempDir(), fixedClock())
	_, err := s.AddEntry("2024-03-20", 60, "")
	require.NoError(t, err)

	st := s.State()
	st.ServiceEntries[0].Minutes = 999

	assert.Equal(t, 60.0, s.State().ServiceEntries[0].Minutes)
}
