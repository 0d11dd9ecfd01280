// Package report renders the monthly service report in its shareable forms.
// Everything here is a pure consumer of the aggregation results and the
// profile; nothing mutates state.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/duartev/pioneiro/internal/aggregate"
	"github.com/duartev/pioneiro/internal/model"
	"github.com/duartev/pioneiro/internal/timecalc"
)

// monthNames are the Portuguese month names used in report headings.
var monthNames = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// MonthName returns the Portuguese name of t's month.
func MonthName(t time.Time) string {
	return monthNames[int(t.Month())-1]
}

// Summary is the computed monthly report.
type Summary struct {
	Profile     model.UserProfile
	Month       string // YYYY-MM
	MonthName   string
	Year        int
	Hours       int
	MinutesRem  int
	GoalPercent int
	Studies     int
	Series      []aggregate.MonthTotal
}

// SeriesMonths is how many months the evolution chart covers.
const SeriesMonths = 6

// Build computes the report for now's month.
func Build(st model.AppState, now time.Time) Summary {
	minutes := aggregate.MonthlyMinutes(st.ServiceEntries, now)
	hours := aggregate.Hours(minutes)
	return Summary{
		Profile:     st.Profile,
		Month:       timecalc.MonthKey(now),
		MonthName:   MonthName(now),
		Year:        now.Year(),
		Hours:       hours,
		MinutesRem:  int(minutes) % 60,
		GoalPercent: aggregate.GoalPercent(hours, st.Profile.Goals.Monthly),
		Studies:     aggregate.StudiesInMonth(st.BibleStudies, now),
		Series:      aggregate.MonthlySeries(st.ServiceEntries, now, SeriesMonths),
	}
}

// ShareText renders the report as the WhatsApp-style message the user sends
// to their group overseer.
func (s Summary) ShareText() string {
	var b strings.Builder
	fmt.Fprintf(&b, "📄 *Relatório de Serviço - %s*\n", s.MonthName)
	fmt.Fprintf(&b, "👤 *Pioneiro:* %s\n", s.Profile.Name)
	fmt.Fprintf(&b, "🏛 *Congregação:* %s\n", s.Profile.Congregation)
	fmt.Fprintf(&b, "👥 *Grupo:* %s\n", s.Profile.GroupNumber)
	if s.MinutesRem > 0 {
		fmt.Fprintf(&b, "⏱ *Horas:* %dh %dmin\n", s.Hours, s.MinutesRem)
	} else {
		fmt.Fprintf(&b, "⏱ *Horas:* %dh\n", s.Hours)
	}
	fmt.Fprintf(&b, "📚 *Estudos Bíblicos:* %d\n", s.Studies)
	fmt.Fprintf(&b, "🎯 *Meta:* %dh\n", s.Profile.Goals.Monthly)
	b.WriteString("✨ Enviado via app *PIONEIRO EU SOU*")
	return b.String()
}

// Chart renders the monthly evolution series as text bars, one month per
// line, scaled to the largest month.
func (s Summary) Chart() string {
	const width = 30
	var max float64
	for _, pt := range s.Series {
		if pt.Minutes > max {
			max = pt.Minutes
		}
	}

	var b strings.Builder
	for _, pt := range s.Series {
		bar := 0
		if max > 0 {
			bar = int(pt.Minutes / max * width)
		}
		fmt.Fprintf(&b, "%s  %-*s %dh\n", pt.Month, width, strings.Repeat("█", bar), aggregate.Hours(pt.Minutes))
	}
	return b.String()
}

// CSV renders the service entries, newest first, as CSV with a header row.
func CSV(entries []model.ServiceEntry) string {
	var b strings.Builder
	b.WriteString("date,minutes,note\n")
	for _, e := range entries {
		fmt.Fprintf(&b, "%s,%g,%s\n", csvEscape(e.Date), e.Minutes, csvEscape(e.Note))
	}
	return b.String()
}

// csvEscape wraps a field in quotes if it contains a comma, quote, or newline.
func csvEscape(s string) string {
	needsQuote := false
	for _, c := range s {
		if c == ',' || c == '"' || c == '\n' || c == '\r' {
			needsQuote = true
			break
		}
	}
	if !needsQuote {
		return s
	}
	// Escape internal double quotes by doubling them.
	escaped := ""
	for _, c := range s {
		if c == '"' {
			escaped += "\""
		}
		escaped += string(c)
	}
	return `"` + escaped + `"`
}
