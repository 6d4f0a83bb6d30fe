package importer

import (
	"fmt"
	"time"

	"github.com/harmonialabs/harmonia/internal/domain"
)

// ValidateImportSchema checks the import schema before conversion.
// Returns a slice of all validation errors found.
func ValidateImportSchema(schema *ImportSchema) []error {
	var errs []error

	if schema.Schedule.Timezone != "" {
		if _, err := time.LoadLocation(schema.Schedule.Timezone); err != nil {
			errs = append(errs, fmt.Errorf("schedule.timezone: unknown zone %q", schema.Schedule.Timezone))
		}
	}

	errs = append(errs, validateSettings(schema.Settings)...)
	errs = append(errs, validateAppointments(schema.Appointments)...)

	return errs
}

func validateSettings(s *SettingsImport) []error {
	if s == nil {
		return nil
	}
	var errs []error

	if s.WorkDayStartHour != nil && (*s.WorkDayStartHour < 0 || *s.WorkDayStartHour > 23) {
		errs = append(errs, fmt.Errorf("settings.work_day_start_hour must be between 0 and 23"))
	}
	if s.WorkDayEndHour != nil && (*s.WorkDayEndHour < 1 || *s.WorkDayEndHour > 24) {
		errs = append(errs, fmt.Errorf("settings.work_day_end_hour must be between 1 and 24"))
	}
	if s.WorkDayStartHour != nil && s.WorkDayEndHour != nil && *s.WorkDayStartHour >= *s.WorkDayEndHour {
		errs = append(errs, fmt.Errorf("settings: work_day_start_hour (%d) must be < work_day_end_hour (%d)", *s.WorkDayStartHour, *s.WorkDayEndHour))
	}
	if s.BreakDurationMin != nil && *s.BreakDurationMin <= 0 {
		errs = append(errs, fmt.Errorf("settings.break_duration_min must be positive"))
	}
	if s.MaxDailyAppointments != nil && *s.MaxDailyAppointments <= 0 {
		errs = append(errs, fmt.Errorf("settings.max_daily_appointments must be positive"))
	}
	if s.MaxWeeklyHours != nil && *s.MaxWeeklyHours <= 0 {
		errs = append(errs, fmt.Errorf("settings.max_weekly_hours must be positive"))
	}

	return errs
}

func validateAppointments(appts []AppointmentImport) []error {
	var errs []error

	for i, a := range appts {
		prefix := fmt.Sprintf("appointments[%d]", i)

		start, startErr := parseTimestamp(a.Start)
		if a.Start == "" {
			errs = append(errs, fmt.Errorf("%s.start is required", prefix))
		} else if startErr != nil {
			errs = append(errs, fmt.Errorf("%s.start: invalid timestamp %q (expected RFC 3339)", prefix, a.Start))
		}

		end, endErr := parseTimestamp(a.End)
		if a.End == "" {
			errs = append(errs, fmt.Errorf("%s.end is required", prefix))
		} else if endErr != nil {
			errs = append(errs, fmt.Errorf("%s.end: invalid timestamp %q (expected RFC 3339)", prefix, a.End))
		}

		if startErr == nil && endErr == nil && a.Start != "" && a.End != "" && !end.After(start) {
			errs = append(errs, fmt.Errorf("%s: end %q must be after start %q", prefix, a.End, a.Start))
		}

		if a.Type != "" && !domain.ValidAppointmentTypes[a.Type] {
			errs = append(errs, fmt.Errorf("%s.type: invalid value %q", prefix, a.Type))
		}
		if a.Status != "" && !domain.ValidAppointmentStatuses[a.Status] {
			errs = append(errs, fmt.Errorf("%s.status: invalid value %q", prefix, a.Status))
		}
	}

	return errs
}

func parseTimestamp(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}
