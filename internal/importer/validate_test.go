package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptrInt(i int) *int { return &i }

func validMinimalSchema() *ImportSchema {
	return &ImportSchema{
		Appointments: []AppointmentImport{
			{Start: "2025-06-02T09:00:00Z", End: "2025-06-02T10:00:00Z"},
		},
	}
}

func TestValidateImportSchema_ValidMinimal(t *testing.T) {
	errs := ValidateImportSchema(validMinimalSchema())
	assert.Empty(t, errs)
}

func TestValidateImportSchema_ValidFull(t *testing.T) {
	schema := &ImportSchema{
		Schedule: ScheduleImport{Source: "calcom", Timezone: "Europe/Madrid"},
		Settings: &SettingsImport{
			WorkDayStartHour:     ptrInt(9),
			WorkDayEndHour:       ptrInt(19),
			BreakDurationMin:     ptrInt(15),
			MaxDailyAppointments: ptrInt(10),
			MaxWeeklyHours:       ptrInt(45),
		},
		Appointments: []AppointmentImport{
			{Start: "2025-06-02T09:00:00Z", End: "2025-06-02T09:45:00Z", Type: "appointment", Status: "confirmed", ClientName: "Alex"},
			{Start: "2025-06-02T10:00:00Z", End: "2025-06-02T10:20:00Z", Type: "break"},
			{Start: "2025-06-02T18:00:00+02:00", End: "2025-06-02T19:00:00+02:00", Status: "pending"},
		},
	}
	errs := ValidateImportSchema(schema)
	assert.Empty(t, errs)
}

func TestValidateImportSchema_AppointmentErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(s *ImportSchema)
		wantMsg string
	}{
		{"missing start", func(s *ImportSchema) { s.Appointments[0].Start = "" }, "appointments[0].start is required"},
		{"missing end", func(s *ImportSchema) { s.Appointments[0].End = "" }, "appointments[0].end is required"},
		{"bad start format", func(s *ImportSchema) { s.Appointments[0].Start = "2025-06-02 09:00" }, "invalid timestamp"},
		{"end before start", func(s *ImportSchema) { s.Appointments[0].End = "2025-06-02T08:00:00Z" }, "must be after start"},
		{"end equals start", func(s *ImportSchema) { s.Appointments[0].End = s.Appointments[0].Start }, "must be after start"},
		{"bad type", func(s *ImportSchema) { s.Appointments[0].Type = "lunch" }, `type: invalid value "lunch"`},
		{"bad status", func(s *ImportSchema) { s.Appointments[0].Status = "maybe" }, `status: invalid value "maybe"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schema := validMinimalSchema()
			tt.mutate(schema)
			errs := ValidateImportSchema(schema)
			assert.NotEmpty(t, errs)
			found := false
			for _, err := range errs {
				if strings.Contains(err.Error(), tt.wantMsg) {
					found = true
				}
			}
			assert.True(t, found, "expected an error containing %q, got %v", tt.wantMsg, errs)
		})
	}
}

func TestValidateImportSchema_SettingsErrors(t *testing.T) {
	schema := validMinimalSchema()
	schema.Settings = &SettingsImport{
		WorkDayStartHour: ptrInt(20),
		WorkDayEndHour:   ptrInt(8),
		BreakDurationMin: ptrInt(-10),
	}
	errs := ValidateImportSchema(schema)
	assert.Len(t, errs, 2)
}

func TestValidateImportSchema_BadTimezone(t *testing.T) {
	schema := validMinimalSchema()
	schema.Schedule.Timezone = "Mars/Olympus"
	errs := ValidateImportSchema(schema)
	assert.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "unknown zone")
}

func TestValidateImportSchema_CollectsAllErrors(t *testing.T) {
	schema := &ImportSchema{
		Appointments: []AppointmentImport{
			{Start: "", End: "2025-06-02T10:00:00Z"},
			{Start: "2025-06-03T09:00:00Z", End: "nope"},
			{Start: "2025-06-04T09:00:00Z", End: "2025-06-04T10:00:00Z", Type: "party"},
		},
	}
	errs := ValidateImportSchema(schema)
	assert.Len(t, errs, 3)
}
