package tui_test

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duartev/pioneiro/internal/tracker"
	"github.com/duartev/pioneiro/internal/tui"
)

func key(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newModel(t *testing.T) (tui.Model, *tracker.Tracker) {
	t.Helper()
	clock := time.Date(2024, 3, 20, 10, 0, 0, 0, time.UTC)
	tr, err := tracker.LoadWithClock(t.TempDir(), func() time.Time { return clock })
	require.NoError(t, err)
	return tui.NewModel(tr), tr
}

func TestSpaceTogglesRunning(t *testing.T) {
	m, tr := newModel(t)

	next, _ := m.Update(key(" "))
	m = next.(tui.Model)
	assert.True(t, tr.Running())

	next, _ = m.Update(key(" "))
	m = next.(tui.Model)
	assert.False(t, tr.Running())
}

func TestFinishKeyQuitsWithOutcome(t *testing.T) {
	m, _ := newModel(t)

	next, cmd := m.Update(key("f"))
	m = next.(tui.Model)
	assert.Equal(t, tui.OutcomeFinish, m.Outcome)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestResetKeyQuitsWithOutcome(t *testing.T) {
	m, _ := newModel(t)

	next, _ := m.Update(key("r"))
	m = next.(tui.Model)
	assert.Equal(t, tui.OutcomeReset, m.Outcome)
}

func TestQuitLeavesSessionAlone(t *testing.T) {
	m, tr := newModel(t)
	require.NoError(t, tr.Start())

	next, _ := m.Update(key("q"))
	m = next.(tui.Model)
	assert.Equal(t, tui.OutcomeNone, m.Outcome)
	assert.True(t, tr.Running(), "quitting must not stop the session")
}

func TestViewShowsClock(t *testing.T) {
	m, _ := newModel(t)
	view := m.View()
	assert.True(t, strings.Contains(view, "00:00:00"), "view: %s", view)
	assert.Contains(t, view, "Cronómetro")
}
