package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// ImportSchema is the top-level JSON structure for schedule import.
type ImportSchema struct {
	Schedule     ScheduleImport      `json:"schedule"`
	Settings     *SettingsImport     `json:"settings,omitempty"`
	Appointments []AppointmentImport `json:"appointments"`
}

// ScheduleImport defines the schedule-level fields in the import file.
type ScheduleImport struct {
	Source   string `json:"source,omitempty"`
	Timezone string `json:"timezone,omitempty"`
}

// SettingsImport defines an optional profile override carried alongside the
// appointments. Absent fields keep their stored values.
type SettingsImport struct {
	WorkDayStartHour     *int `json:"work_day_start_hour,omitempty"`
	WorkDayEndHour       *int `json:"work_day_end_hour,omitempty"`
	BreakDurationMin     *int `json:"break_duration_min,omitempty"`
	MaxDailyAppointments *int `json:"max_daily_appointments,omitempty"`
	MaxWeeklyHours       *int `json:"max_weekly_hours,omitempty"`
}

// AppointmentImport defines one appointment row in the import file.
type AppointmentImport struct {
	Start      string `json:"start"`
	End        string `json:"end"`
	Type       string `json:"type,omitempty"`
	Status     string `json:"status,omitempty"`
	ClientName string `json:"client_name,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

// LoadImportSchema reads and parses a schedule import JSON file.
func LoadImportSchema(path string) (*ImportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var schema ImportSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}
