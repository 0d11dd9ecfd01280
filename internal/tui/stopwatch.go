// Package tui holds the interactive stopwatch view. It follows the Elm
// architecture: the model is the screen state, Update reacts to key presses
// and the once-per-second tick, View renders a string.
//
// The tick only refreshes the display. Elapsed time always comes from the
// tracker's wall-clock arithmetic, so missed ticks (suspend, slow terminal)
// never lose time.
package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/duartev/pioneiro/internal/timecalc"
	"github.com/duartev/pioneiro/internal/tracker"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	clockStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Padding(1, 4)
	runningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	pausedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

type tickMsg time.Time

// Outcome is what the user chose when the view exited.
type Outcome int

const (
	OutcomeNone Outcome = iota // quit, session left as-is
	OutcomeFinish
	OutcomeReset
)

// Model is the stopwatch screen.
type Model struct {
	tracker *tracker.Tracker
	err     error

	// Outcome tells the caller what to do after the program exits; the
	// actual finish/reset runs outside the TUI so confirmations and entry
	// output use plain stdout.
	Outcome Outcome
}

// NewModel builds the stopwatch screen over a loaded tracker.
func NewModel(tr *tracker.Tracker) Model {
	return Model{tracker: tr}
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return m, tick()

	case tea.KeyMsg:
		switch msg.String() {
		case " ":
			if m.tracker.Running() {
				m.err = m.tracker.Pause()
			} else {
				m.err = m.tracker.Start()
			}
			return m, nil
		case "f":
			m.Outcome = OutcomeFinish
			return m, tea.Quit
		case "r":
			m.Outcome = OutcomeReset
			return m, tea.Quit
		case "q", "esc", "ctrl+c":
			m.Outcome = OutcomeNone
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) View() string {
	state := pausedStyle.Render("pausado")
	if m.tracker.Running() {
		state = runningStyle.Render("serviço em curso…")
	} else if m.tracker.Elapsed() == 0 {
		state = helpStyle.Render("parado")
	}

	s := titleStyle.Render("Cronómetro de Serviço") + "\n"
	s += clockStyle.Render(timecalc.FormatDurationHHMMSS(m.tracker.Elapsed())) + "\n"
	s += state + "\n\n"
	s += helpStyle.Render("espaço iniciar/pausar · f finalizar · r descartar · q sair") + "\n"
	if m.err != nil {
		s += errStyle.Render(fmt.Sprintf("erro: %v", m.err)) + "\n"
	}
	return s
}
