// Package tracker implements the service-session stopwatch. Elapsed time is
// always derived from wall-clock deltas, never from accumulated ticks, so a
// running session survives process restarts and suspends of any length.
package tracker

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/duartev/pioneiro/internal/model"
	"github.com/duartev/pioneiro/internal/storage"
	"github.com/duartev/pioneiro/internal/timecalc"
)

var (
	ErrAlreadyRunning = errors.New("timer is already running")
	ErrNotRunning     = errors.New("timer is not running")
)

// EntryAdder receives the finished session. Satisfied by *state.Store.
type EntryAdder interface {
	AddEntry(date string, minutes float64, note string) (model.ServiceEntry, error)
}

// Tracker is the stopwatch state machine: Idle, Running or Paused.
// Idle has zero accumulated seconds; Paused carries them; Running additionally
// carries the wall-clock instant the current interval began.
type Tracker struct {
	base string
	now  func() time.Time
	ts   model.TimerState
}

// Load reads the persisted timer, recovering a session left running by a
// previous process. The wall-clock start time persisted at Start() makes the
// recovery exact: no time is lost or double-counted.
func Load(base string) (*Tracker, error) {
	return LoadWithClock(base, time.Now)
}

// LoadWithClock is Load with an injected clock, for tests.
func LoadWithClock(base string, now func() time.Time) (*Tracker, error) {
	ts, err := storage.LoadTimer(base)
	if err != nil {
		return nil, err
	}
	if ts.Running {
		if _, err := time.Parse(time.RFC3339, ts.StartedAt); err != nil {
			return nil, fmt.Errorf("persisted timer has invalid start time %q: %w", ts.StartedAt, err)
		}
	}
	return &Tracker{base: base, now: now, ts: ts}, nil
}

// Running reports whether the stopwatch is currently counting.
func (t *Tracker) Running() bool {
	return t.ts.Running
}

// Elapsed returns the session's total elapsed seconds at this instant,
// folding in the currently-running interval if any.
func (t *Tracker) Elapsed() int64 {
	total := t.ts.AccumulatedSeconds
	if t.ts.Running {
		start, _ := time.Parse(time.RFC3339, t.ts.StartedAt)
		total += int64(t.now().Sub(start).Seconds())
	}
	if total < 0 {
		return 0
	}
	return total
}

// Start transitions Idle or Paused to Running, capturing the wall-clock start
// time and persisting it so a restart can reconstruct the session.
func (t *Tracker) Start() error {
	if t.ts.Running {
		return ErrAlreadyRunning
	}
	t.ts.Running = true
	t.ts.StartedAt = t.now().Format(time.RFC3339)
	return storage.SaveTimer(t.base, t.ts)
}

// Pause folds the running interval into the accumulated seconds and persists.
func (t *Tracker) Pause() error {
	if !t.ts.Running {
		return ErrNotRunning
	}
	t.ts.AccumulatedSeconds = t.Elapsed()
	t.ts.Running = false
	t.ts.StartedAt = ""
	return storage.SaveTimer(t.base, t.ts)
}

// Reset discards the session from any state. Confirmation is the caller's
// responsibility; this is destructive.
func (t *Tracker) Reset() error {
	t.ts = model.TimerState{}
	return storage.ClearTimer(t.base)
}

// Finish closes the session and records it as a service entry dated today.
// Elapsed seconds convert to whole minutes, rounded to nearest with a minimum
// of one minute for any non-zero session. A zero-length session records
// nothing and simply resets.
func (t *Tracker) Finish(log EntryAdder, note string) (*model.ServiceEntry, error) {
	elapsed := t.Elapsed()
	if elapsed <= 0 {
		return nil, t.Reset()
	}

	minutes := math.Round(float64(elapsed) / 60)
	if minutes < 1 {
		minutes = 1
	}

	entry, err := log.AddEntry(timecalc.DayKey(t.now()), minutes, note)
	if err != nil {
		return nil, err
	}
	if err := t.Reset(); err != nil {
		return nil, err
	}
	return &entry, nil
}
