package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func mkAppt(typ AppointmentType, status AppointmentStatus) Appointment {
	start := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	return Appointment{
		ID:     "a-1",
		Start:  start,
		End:    start.Add(time.Hour),
		Type:   typ,
		Status: status,
	}
}

func TestAppointment_DurationMin(t *testing.T) {
	a := mkAppt(TypeAppointment, StatusConfirmed)
	assert.Equal(t, 60, a.DurationMin())
}

func TestAppointment_IsValid(t *testing.T) {
	a := mkAppt(TypeAppointment, StatusConfirmed)
	assert.True(t, a.IsValid())

	inverted := a
	inverted.End = a.Start.Add(-time.Minute)
	assert.False(t, inverted.IsValid())

	zero := a
	zero.Start = time.Time{}
	assert.False(t, zero.IsValid())

	instant := a
	instant.End = instant.Start
	assert.False(t, instant.IsValid())
}

func TestFilterScorable(t *testing.T) {
	appts := []Appointment{
		mkAppt(TypeAppointment, StatusConfirmed),
		mkAppt(TypeAppointment, StatusCancelled),
		mkAppt(TypeBreak, StatusConfirmed),
		mkAppt(TypeBlocked, StatusConfirmed),
		mkAppt(TypeAppointment, StatusCompleted),
		mkAppt(TypeAppointment, StatusPending),
	}

	got := FilterScorable(appts)
	assert.Len(t, got, 3)
	for _, a := range got {
		assert.Equal(t, TypeAppointment, a.Type)
		assert.NotEqual(t, StatusCancelled, a.Status)
	}
}

func TestSettings_NormalizeFillsDefaults(t *testing.T) {
	s := Settings{BreakDurationMin: 30}.Normalize()
	assert.Equal(t, 30, s.BreakDurationMin)
	assert.Equal(t, DefaultMaxDailyAppointments, s.MaxDailyAppointments)
	assert.Equal(t, DefaultMaxWeeklyHours, s.MaxWeeklyHours)
	assert.Equal(t, DefaultWorkDayStartHour, s.WorkDayStartHour)
	assert.Equal(t, DefaultWorkDayEndHour, s.WorkDayEndHour)
}
