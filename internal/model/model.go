package model

// SchemaVersion is the current on-disk format of AppState. Readers must
// reject files written by a newer binary instead of silently dropping fields.
const SchemaVersion = 1

// PioneerType is the service designation that determines the hour goals.
type PioneerType string

const (
	PioneerRegular  PioneerType = "Regular"
	PioneerAuxiliar PioneerType = "Auxiliar"
)

// Goals holds the hour targets per reporting period.
type Goals struct {
	Annual  int `json:"annual"`
	Monthly int `json:"monthly"`
	Weekly  int `json:"weekly"`
}

// UserProfile is the single user's identity and preferences.
type UserProfile struct {
	Name             string      `json:"name"`
	Congregation     string      `json:"congregation"`
	GroupNumber      string      `json:"group_number"`
	Type             PioneerType `json:"type"`
	Goals            Goals       `json:"goals"`
	Onboarded        bool        `json:"onboarded"`
	ReminderHour     int         `json:"reminder_hour"`
	RemindersEnabled bool        `json:"reminders_enabled"`
	// LastReminderSent is the YYYY-MM-DD of the last reminder, empty if none.
	LastReminderSent string `json:"last_reminder_sent,omitempty"`
}

// ServiceEntry is one completed unit of field-service time.
// Entries are immutable once created; the only mutation is deletion.
type ServiceEntry struct {
	ID      string  `json:"id"`
	Date    string  `json:"date"` // YYYY-MM-DD
	Minutes float64 `json:"minutes"`
	Note    string  `json:"note,omitempty"`
}

// BibleStudy is a recurring instructional contact, tracked per reporting month.
type BibleStudy struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Month    string `json:"month"` // YYYY-MM
	Sessions int    `json:"sessions"`
	Notes    string `json:"notes,omitempty"`
}

// DayPlan is the weekly-schedule slot for one day of the week.
// Minutes is meaningful only while Active is true.
type DayPlan struct {
	Day     int     `json:"day"` // 0=Sunday .. 6=Saturday
	Active  bool    `json:"active"`
	Minutes float64 `json:"minutes"`
}

// DefaultPlanMinutes is seeded when a plan day is toggled active.
const DefaultPlanMinutes = 120

// AppState is the whole persisted application state.
type AppState struct {
	SchemaVersion  int            `json:"schema_version"`
	Profile        UserProfile    `json:"profile"`
	ServiceEntries []ServiceEntry `json:"service_entries"`
	BibleStudies   []BibleStudy   `json:"bible_studies"`
	WeeklyPlans    []DayPlan      `json:"weekly_plans"`
}

// TimerState holds the stopwatch's raw counters, persisted separately from
// AppState so a running session survives a process restart.
type TimerState struct {
	Running            bool   `json:"running"`
	AccumulatedSeconds int64  `json:"accumulated_seconds"`
	StartedAt          string `json:"started_at,omitempty"` // RFC3339, set while running
}

// DefaultProfile mirrors the defaults applied during onboarding.
func DefaultProfile() UserProfile {
	return UserProfile{
		Type: PioneerRegular,
		Goals: Goals{
			Annual:  600,
			Monthly: 50,
			Weekly:  12,
		},
		ReminderHour:     19,
		RemindersEnabled: true,
	}
}

// InitialWeeklyPlans returns the seven inactive day plans, Sunday..Saturday.
func InitialWeeklyPlans() []DayPlan {
	plans := make([]DayPlan, 7)
	for d := 0; d < 7; d++ {
		plans[d] = DayPlan{Day: d}
	}
	return plans
}

// NewAppState returns an empty state with defaults.
func NewAppState() AppState {
	return AppState{
		SchemaVersion:  SchemaVersion,
		Profile:        DefaultProfile(),
		ServiceEntries: []ServiceEntry{},
		BibleStudies:   []BibleStudy{},
		WeeklyPlans:    InitialWeeklyPlans(),
	}
}
