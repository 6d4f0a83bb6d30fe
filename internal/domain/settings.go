package domain

// Settings is the professional's personalization snapshot, immutable for the
// duration of one computation. Absent fields fall back to defaults.
type Settings struct {
	WorkDayStartHour     int
	WorkDayEndHour       int
	BreakDurationMin     int
	MaxDailyAppointments int
	MaxWeeklyHours       int
}

const (
	DefaultWorkDayStartHour     = 8
	DefaultWorkDayEndHour       = 18
	DefaultBreakDurationMin     = 20
	DefaultMaxDailyAppointments = 8
	DefaultMaxWeeklyHours       = 40
)

// DefaultSettings returns the documented fallback profile.
func DefaultSettings() Settings {
	return Settings{
		WorkDayStartHour:     DefaultWorkDayStartHour,
		WorkDayEndHour:       DefaultWorkDayEndHour,
		BreakDurationMin:     DefaultBreakDurationMin,
		MaxDailyAppointments: DefaultMaxDailyAppointments,
		MaxWeeklyHours:       DefaultMaxWeeklyHours,
	}
}

// Normalize fills zero-valued fields with their defaults. A partially
// populated settings row is not an error condition.
func (s Settings) Normalize() Settings {
	d := DefaultSettings()
	s.WorkDayStartHour = IntWithDefault(d.WorkDayStartHour, s.WorkDayStartHour)
	s.WorkDayEndHour = IntWithDefault(d.WorkDayEndHour, s.WorkDayEndHour)
	s.BreakDurationMin = IntWithDefault(d.BreakDurationMin, s.BreakDurationMin)
	s.MaxDailyAppointments = IntWithDefault(d.MaxDailyAppointments, s.MaxDailyAppointments)
	s.MaxWeeklyHours = IntWithDefault(d.MaxWeeklyHours, s.MaxWeeklyHours)
	return s
}
