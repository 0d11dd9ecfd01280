// Package reminder decides, once per day, whether to nudge the user that
// tomorrow is a scheduled service day.
package reminder

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/duartev/pioneiro/internal/aggregate"
	"github.com/duartev/pioneiro/internal/model"
	"github.com/duartev/pioneiro/internal/notify"
	"github.com/duartev/pioneiro/internal/timecalc"
)

// StateSource provides the scheduler's view of the application state and the
// dedupe marker. Satisfied by *state.Store.
type StateSource interface {
	State() model.AppState
	MarkReminderSent(day string) error
}

// Scheduler evaluates the reminder rule on a fixed poll interval.
type Scheduler struct {
	states   StateSource
	notifier notify.Notifier
	log      zerolog.Logger
}

// New builds a Scheduler.
func New(states StateSource, notifier notify.Notifier, log zerolog.Logger) *Scheduler {
	return &Scheduler{states: states, notifier: notifier, log: log}
}

// Check runs one evaluation at the given instant and reports whether a
// notification was sent. The rule fires within a half-open one-hour window at
// the configured hour, at most once per calendar day, and only when
// tomorrow's weekly plan is active. Delivery failures are swallowed: this is
// a best-effort nudge, never a critical path.
func (s *Scheduler) Check(now time.Time) bool {
	st := s.states.State()
	profile := st.Profile

	if !profile.RemindersEnabled {
		return false
	}
	if !s.notifier.Available() {
		return false
	}
	if now.Hour() != profile.ReminderHour {
		return false
	}

	today := timecalc.DayKey(now)
	if profile.LastReminderSent == today {
		return false
	}

	tomorrow := int(now.AddDate(0, 0, 1).Weekday())
	if !planActive(st.WeeklyPlans, tomorrow) {
		s.log.Debug().Int("day", tomorrow).Msg("tomorrow not a planned service day")
		return false
	}

	hours := aggregate.Hours(aggregate.MonthlyMinutes(st.ServiceEntries, now))
	body := fmt.Sprintf(
		"Amanhã é dia de serviço de campo! 📢\nProgresso da Meta: %dh de %dh concluídas.",
		hours, profile.Goals.Monthly)

	if err := s.notifier.Send("Lembrete de Pregação", body); err != nil {
		s.log.Warn().Err(err).Msg("notification delivery failed")
		return false
	}
	if err := s.states.MarkReminderSent(today); err != nil {
		// The notification went out; worst case the next poll within the
		// window repeats it once.
		s.log.Warn().Err(err).Msg("could not record reminder dedupe marker")
	}
	s.log.Info().Str("day", today).Int("monthly_hours", hours).Msg("reminder sent")
	return true
}

// Run polls Check on the given interval until the context is cancelled.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	s.log.Info().Dur("interval", interval).Msg("reminder scheduler started")
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.Check(time.Now())
	for {
		select {
		case <-ctx.Done():
			s.log.Info().Msg("reminder scheduler stopped")
			return
		case now := <-ticker.C:
			s.Check(now)
		}
	}
}

func planActive(plans []model.DayPlan, day int) bool {
	for _, p := range plans {
		if p.Day == day {
			return p.Active
		}
	}
	return false
}
