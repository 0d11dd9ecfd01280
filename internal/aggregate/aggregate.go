// Package aggregate computes report totals from the service-entry log.
// All functions are pure: they take the entries and a reference instant and
// never touch storage. Entry dates are YYYY-MM-DD strings, so range checks
// are plain lexicographic comparisons.
package aggregate

import (
	"math"
	"strings"
	"time"

	"github.com/duartev/pioneiro/internal/model"
	"github.com/duartev/pioneiro/internal/timecalc"
)

// WeeklyMinutes sums entries within the ISO week containing now
// (Monday through now's own day).
func WeeklyMinutes(entries []model.ServiceEntry, now time.Time) float64 {
	weekStart := timecalc.DayKey(timecalc.WeekStart(now))
	var total float64
	for _, e := range entries {
		if e.Date >= weekStart {
			total += e.Minutes
		}
	}
	return total
}

// MonthlyMinutes sums entries in now's calendar month.
func MonthlyMinutes(entries []model.ServiceEntry, now time.Time) float64 {
	return monthMinutes(entries, timecalc.MonthKey(now))
}

// AnnualMinutes sums entries dated on or after January 1 of now's year.
func AnnualMinutes(entries []model.ServiceEntry, now time.Time) float64 {
	yearStart := timecalc.DayKey(time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location()))
	var total float64
	for _, e := range entries {
		if e.Date >= yearStart {
			total += e.Minutes
		}
	}
	return total
}

// MonthTotal is one point of the monthly chart series.
type MonthTotal struct {
	Month   string // YYYY-MM
	Minutes float64
}

// MonthlySeries returns the per-month totals for the last n months ending at
// now's month inclusive, ordered oldest to newest.
func MonthlySeries(entries []model.ServiceEntry, now time.Time, n int) []MonthTotal {
	series := make([]MonthTotal, 0, n)
	for i := n - 1; i >= 0; i-- {
		key := timecalc.MonthKey(timecalc.AddMonths(now, -i))
		series = append(series, MonthTotal{Month: key, Minutes: monthMinutes(entries, key)})
	}
	return series
}

func monthMinutes(entries []model.ServiceEntry, monthKey string) float64 {
	var total float64
	for _, e := range entries {
		if strings.HasPrefix(e.Date, monthKey) {
			total += e.Minutes
		}
	}
	return total
}

// Hours converts minutes to whole hours (floor).
func Hours(minutes float64) int {
	return int(minutes) / 60
}

// GoalPercent returns progress toward a goal in whole percent, capped at 100.
// A zero goal reports 0 rather than dividing by zero.
func GoalPercent(hours, goal int) int {
	if goal <= 0 {
		return 0
	}
	pct := int(math.Round(float64(hours) / float64(goal) * 100))
	if pct > 100 {
		return 100
	}
	return pct
}

// StudiesInMonth counts bible studies reported for the given month.
func StudiesInMonth(studies []model.BibleStudy, now time.Time) int {
	key := timecalc.MonthKey(now)
	count := 0
	for _, s := range studies {
		if s.Month == key {
			count++
		}
	}
	return count
}

// PlannedWeeklyMinutes sums the minutes of all active plan days.
func PlannedWeeklyMinutes(plans []model.DayPlan) float64 {
	var total float64
	for _, p := range plans {
		if p.Active {
			total += p.Minutes
		}
	}
	return total
}
