package engine

import (
	"testing"
	"time"

	"github.com/harmonialabs/harmonia/internal/domain"
	"github.com/harmonialabs/harmonia/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestDailyScore_BalancedDay(t *testing.T) {
	e := NewDefault()
	// 5 one-hour bookings with half-hour gaps: the good-tier count penalty
	// is offset by the break-compliance bonus.
	appts := testutil.Day(monday, 9, 5, 60, 30)

	res := e.DailyScore(monday, appts)
	assert.Equal(t, 100, res.Score)
	assert.Equal(t, domain.LevelExcellent, res.Level)
	assert.Equal(t, 5, res.AppointmentCount)
	assert.InDelta(t, 5.0, res.TotalWorkHours, 0.01)
	assert.False(t, res.HasEveningWork)
	assert.False(t, res.HasNightWork)
	assert.Equal(t, domain.IntensityGood, res.Intensity)
}

func TestDailyScore_OverloadedClusteredDay(t *testing.T) {
	e := NewDefault()
	// 13 back-to-back bookings: critical count (-60), broken breaks (-10),
	// clustered span (-10).
	appts := testutil.Day(monday, 8, 13, 30, 0)

	res := e.DailyScore(monday, appts)
	assert.Equal(t, 20, res.Score)
	assert.Equal(t, domain.LevelCritical, res.Level)
	assert.Equal(t, domain.IntensityCritical, res.Intensity)
	assert.Equal(t, 0, res.BreakCompliance)
}

func TestDailyScore_EveningPenalty(t *testing.T) {
	e := NewDefault()
	appts := testutil.Day(monday, 19, 2, 60, 30)

	res := e.DailyScore(monday, appts)
	assert.Equal(t, 95, res.Score)
	assert.True(t, res.HasEveningWork)
	assert.False(t, res.HasNightWork)
}

func TestDailyScore_NightOutweighsEvening(t *testing.T) {
	e := NewDefault()
	appts := []domain.Appointment{
		testutil.NewAppointment(monday.Add(19*time.Hour), 60),
		testutil.NewAppointment(monday.Add(21*time.Hour+30*time.Minute), 60),
	}

	res := e.DailyScore(monday, appts)
	assert.True(t, res.HasNightWork)
	// Night penalty (-20) applies instead of evening (-10); the generous
	// 90-minute gap earns the break bonus.
	assert.Equal(t, 85, res.Score)
}

func TestDailyScore_LongHoursPenalty(t *testing.T) {
	e := NewDefault()
	// Two bookings totalling 10.5 hours.
	appts := []domain.Appointment{
		testutil.NewAppointment(monday.Add(7*time.Hour), 360),
		testutil.NewAppointment(monday.Add(13*time.Hour+30*time.Minute), 270),
	}

	res := e.DailyScore(monday, appts)
	// Count optimal, -15 for >10h, +5 for the compliant 30-minute gap.
	assert.Equal(t, 90, res.Score)
	assert.InDelta(t, 10.5, res.TotalWorkHours, 0.01)
}

func TestDailyScore_SingleLongNightAppointment(t *testing.T) {
	e := NewDefault()
	// One 11-hour booking running into the night: -15 for >10h, -20 for
	// night work, and the break bonus still applies with no gaps to break.
	appts := []domain.Appointment{
		testutil.NewAppointment(monday.Add(21*time.Hour), 660),
	}

	res := e.DailyScore(monday, appts)
	assert.Equal(t, 70, res.Score)
	assert.True(t, res.HasNightWork)
}

func TestDailyScore_OnlyTargetDateCounts(t *testing.T) {
	e := NewDefault()
	appts := append(
		testutil.Day(monday, 9, 3, 60, 30),
		testutil.Day(monday.AddDate(0, 0, 1), 8, 13, 30, 0)...,
	)

	res := e.DailyScore(monday, appts)
	assert.Equal(t, 3, res.AppointmentCount)
	assert.Equal(t, domain.IntensityOptimal, res.Intensity)
}

func TestDailyScore_EmptyDay(t *testing.T) {
	e := NewDefault()
	res := e.DailyScore(monday, nil)
	assert.Equal(t, 100, res.Score)
	assert.Equal(t, 0, res.AppointmentCount)
}
