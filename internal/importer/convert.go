package importer

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/harmonialabs/harmonia/internal/domain"
)

// ImportedSchedule holds the converted domain objects ready for persistence.
type ImportedSchedule struct {
	Appointments []domain.Appointment
	Settings     *domain.Settings
}

// Convert transforms a validated ImportSchema into domain objects.
// Call ValidateImportSchema first; Convert assumes the schema is valid.
func Convert(schema *ImportSchema) (*ImportedSchedule, error) {
	now := time.Now().UTC()

	loc := time.UTC
	if schema.Schedule.Timezone != "" {
		l, err := time.LoadLocation(schema.Schedule.Timezone)
		if err != nil {
			return nil, fmt.Errorf("loading timezone: %w", err)
		}
		loc = l
	}

	appts := make([]domain.Appointment, 0, len(schema.Appointments))
	for _, a := range schema.Appointments {
		start, err := parseTimestamp(a.Start)
		if err != nil {
			return nil, fmt.Errorf("parsing start %q: %w", a.Start, err)
		}
		end, err := parseTimestamp(a.End)
		if err != nil {
			return nil, fmt.Errorf("parsing end %q: %w", a.End, err)
		}

		appts = append(appts, domain.Appointment{
			ID:         uuid.New().String(),
			Start:      start.In(loc),
			End:        end.In(loc),
			Type:       domain.AppointmentType(domain.CoalesceStr(a.Type, string(domain.TypeAppointment))),
			Status:     domain.AppointmentStatus(domain.CoalesceStr(a.Status, string(domain.StatusConfirmed))),
			ClientName: a.ClientName,
			Notes:      a.Notes,
			CreatedAt:  now,
			UpdatedAt:  now,
		})
	}

	return &ImportedSchedule{
		Appointments: appts,
		Settings:     convertSettings(schema.Settings),
	}, nil
}

func convertSettings(s *SettingsImport) *domain.Settings {
	if s == nil {
		return nil
	}
	out := domain.Settings{
		WorkDayStartHour:     domain.IntFromPtrWithDefault(0, s.WorkDayStartHour),
		WorkDayEndHour:       domain.IntFromPtrWithDefault(0, s.WorkDayEndHour),
		BreakDurationMin:     domain.IntFromPtrWithDefault(0, s.BreakDurationMin),
		MaxDailyAppointments: domain.IntFromPtrWithDefault(0, s.MaxDailyAppointments),
		MaxWeeklyHours:       domain.IntFromPtrWithDefault(0, s.MaxWeeklyHours),
	}
	out = out.Normalize()
	return &out
}
