package aggregate_test

import (
	"testing"
	"time"

	"github.com/duartev/pioneiro/internal/aggregate"
	"github.com/duartev/pioneiro/internal/model"
)

func entries(pairs ...any) []model.ServiceEntry {
	var es []model.ServiceEntry
	for i := 0; i < len(pairs); i += 2 {
		es = append(es, model.ServiceEntry{
			ID:      "e",
			Date:    pairs[i].(string),
			Minutes: float64(pairs[i+1].(int)),
		})
	}
	return es
}

func TestMonthlyMinutes(t *testing.T) {
	es := entries("2024-03-01", 90, "2024-03-15", 30, "2024-02-28", 600)
	now := time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)

	got := aggregate.MonthlyMinutes(es, now)
	if got != 120 {
		t.Errorf("MonthlyMinutes = %v, want 120", got)
	}
	if h := aggregate.Hours(got); h != 2 {
		t.Errorf("Hours(120) = %d, want 2", h)
	}
}

func TestWeeklyMinutes(t *testing.T) {
	// Wed 2024-03-20; week starts Mon 2024-03-18.
	now := time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)
	es := entries(
		"2024-03-17", 60, // Sunday of the previous week
		"2024-03-18", 90, // Monday
		"2024-03-20", 30, // today
	)
	if got := aggregate.WeeklyMinutes(es, now); got != 120 {
		t.Errorf("WeeklyMinutes = %v, want 120", got)
	}
}

func TestWeeklyMinutesAcrossYearBoundary(t *testing.T) {
	// Wed 2025-01-01 belongs to the week starting Mon 2024-12-30.
	now := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	es := entries(
		"2024-12-29", 45, // Sunday before the week
		"2024-12-30", 60, // Monday, previous calendar year
		"2024-12-31", 60,
		"2025-01-01", 30,
	)
	if got := aggregate.WeeklyMinutes(es, now); got != 150 {
		t.Errorf("WeeklyMinutes = %v, want 150", got)
	}
}

func TestAnnualMinutes(t *testing.T) {
	now := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)
	es := entries("2023-12-31", 600, "2024-01-01", 60, "2024-03-01", 30)
	if got := aggregate.AnnualMinutes(es, now); got != 90 {
		t.Errorf("AnnualMinutes = %v, want 90", got)
	}
}

func TestMonthlySeries(t *testing.T) {
	now := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)
	es := entries("2023-10-05", 60, "2024-01-10", 120, "2024-03-01", 30)

	series := aggregate.MonthlySeries(es, now, 6)
	if len(series) != 6 {
		t.Fatalf("series length = %d, want 6", len(series))
	}
	wantMonths := []string{"2023-10", "2023-11", "2023-12", "2024-01", "2024-02", "2024-03"}
	wantMinutes := []float64{60, 0, 0, 120, 0, 30}
	for i, pt := range series {
		if pt.Month != wantMonths[i] {
			t.Errorf("series[%d].Month = %s, want %s", i, pt.Month, wantMonths[i])
		}
		if pt.Minutes != wantMinutes[i] {
			t.Errorf("series[%d].Minutes = %v, want %v", i, pt.Minutes, wantMinutes[i])
		}
	}
}

func TestGoalPercent(t *testing.T) {
	tests := []struct {
		hours, goal, want int
	}{
		{0, 50, 0},
		{25, 50, 50},
		{50, 50, 100},
		{80, 50, 100}, // capped
		{1, 3, 33},
		{10, 0, 0}, // guarded, never a fault
		{10, -5, 0},
	}
	for _, tt := range tests {
		if got := aggregate.GoalPercent(tt.hours, tt.goal); got != tt.want {
			t.Errorf("GoalPercent(%d, %d) = %d, want %d", tt.hours, tt.goal, got, tt.want)
		}
	}
}

func TestStudiesInMonth(t *testing.T) {
	now := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)
	studies := []model.BibleStudy{
		{ID: "a", Name: "Ana", Month: "2024-03", Sessions: 2},
		{ID: "b", Name: "Rui", Month: "2024-03", Sessions: 1},
		{ID: "c", Name: "Eva", Month: "2024-02", Sessions: 4},
	}
	if got := aggregate.StudiesInMonth(studies, now); got != 2 {
		t.Errorf("StudiesInMonth = %d, want 2", got)
	}
}

func TestPlannedWeeklyMinutes(t *testing.T) {
	plans := model.InitialWeeklyPlans()
	plans[1] = model.DayPlan{Day: 1, Active: true, Minutes: 120}
	plans[3] = model.DayPlan{Day: 3, Active: true, Minutes: 180}
	plans[5] = model.DayPlan{Day: 5, Active: false, Minutes: 999} // inactive minutes ignored

	if got := aggregate.PlannedWeeklyMinutes(plans); got != 300 {
		t.Errorf("PlannedWeeklyMinutes = %v, want 300", got)
	}
}
