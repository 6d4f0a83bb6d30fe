package importer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harmonialabs/harmonia/internal/domain"
)

func TestConvert_Minimal(t *testing.T) {
	schema := validMinimalSchema()
	require.Empty(t, ValidateImportSchema(schema))

	got, err := Convert(schema)
	require.NoError(t, err)
	require.Len(t, got.Appointments, 1)
	assert.Nil(t, got.Settings)

	a := got.Appointments[0]
	assert.NotEmpty(t, a.ID)
	assert.Equal(t, domain.TypeAppointment, a.Type)
	assert.Equal(t, domain.StatusConfirmed, a.Status)
	assert.Equal(t, 60, a.DurationMin())
	assert.True(t, a.Scorable())
}

func TestConvert_ExplicitTypeAndStatus(t *testing.T) {
	schema := validMinimalSchema()
	schema.Appointments[0].Type = "break"
	schema.Appointments[0].Status = "pending"
	schema.Appointments[0].ClientName = "Alex"
	schema.Appointments[0].Notes = "follow-up"

	got, err := Convert(schema)
	require.NoError(t, err)

	a := got.Appointments[0]
	assert.Equal(t, domain.TypeBreak, a.Type)
	assert.Equal(t, domain.StatusPending, a.Status)
	assert.Equal(t, "Alex", a.ClientName)
	assert.Equal(t, "follow-up", a.Notes)
}

func TestConvert_TimezoneApplied(t *testing.T) {
	schema := validMinimalSchema()
	schema.Schedule.Timezone = "Europe/Madrid"

	got, err := Convert(schema)
	require.NoError(t, err)

	a := got.Appointments[0]
	assert.Equal(t, "Europe/Madrid", a.Start.Location().String())
	// 09:00 UTC in June is 11:00 in Madrid.
	assert.Equal(t, 11, a.Start.Hour())
	assert.Equal(t, 60, a.DurationMin())
}

func TestConvert_SettingsCascade(t *testing.T) {
	schema := validMinimalSchema()
	schema.Settings = &SettingsImport{
		WorkDayStartHour: ptrInt(7),
		MaxWeeklyHours:   ptrInt(45),
	}

	got, err := Convert(schema)
	require.NoError(t, err)
	require.NotNil(t, got.Settings)

	// Explicit fields win; the rest normalize to defaults.
	assert.Equal(t, 7, got.Settings.WorkDayStartHour)
	assert.Equal(t, 45, got.Settings.MaxWeeklyHours)
	assert.Equal(t, domain.DefaultWorkDayEndHour, got.Settings.WorkDayEndHour)
	assert.Equal(t, domain.DefaultBreakDurationMin, got.Settings.BreakDurationMin)
}

func TestConvert_UniqueIDs(t *testing.T) {
	schema := &ImportSchema{
		Appointments: []AppointmentImport{
			{Start: "2025-06-02T09:00:00Z", End: "2025-06-02T10:00:00Z"},
			{Start: "2025-06-02T10:00:00Z", End: "2025-06-02T11:00:00Z"},
			{Start: "2025-06-03T09:00:00Z", End: "2025-06-03T10:00:00Z"},
		},
	}
	got, err := Convert(schema)
	require.NoError(t, err)
	require.Len(t, got.Appointments, 3)

	seen := make(map[string]bool)
	now := time.Now().UTC()
	for _, a := range got.Appointments {
		assert.False(t, seen[a.ID], "duplicate id %s", a.ID)
		seen[a.ID] = true
		assert.WithinDuration(t, now, a.CreatedAt, time.Minute)
	}
}
