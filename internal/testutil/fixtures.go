package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/harmonialabs/harmonia/internal/domain"
)

// Appointment options
type AppointmentOption func(*domain.Appointment)

func WithType(t domain.AppointmentType) AppointmentOption {
	return func(a *domain.Appointment) {
		a.Type = t
	}
}

func WithStatus(s domain.AppointmentStatus) AppointmentOption {
	return func(a *domain.Appointment) {
		a.Status = s
	}
}

func WithClient(name string) AppointmentOption {
	return func(a *domain.Appointment) {
		a.ClientName = name
	}
}

func WithEnd(end time.Time) AppointmentOption {
	return func(a *domain.Appointment) {
		a.End = end
	}
}

// NewAppointment builds a confirmed appointment starting at start with the
// given duration.
func NewAppointment(start time.Time, durationMin int, opts ...AppointmentOption) domain.Appointment {
	a := domain.Appointment{
		ID:        uuid.New().String(),
		Start:     start,
		End:       start.Add(time.Duration(durationMin) * time.Minute),
		Type:      domain.TypeAppointment,
		Status:    domain.StatusConfirmed,
		CreatedAt: start.AddDate(0, 0, -7),
		UpdatedAt: start.AddDate(0, 0, -7),
	}
	for _, opt := range opts {
		opt(&a)
	}
	return a
}

// Day builds count appointments on one date, each durationMin long and
// separated by gapMin, the first starting at startHour.
func Day(date time.Time, startHour, count, durationMin, gapMin int) []domain.Appointment {
	var appts []domain.Appointment
	cur := time.Date(date.Year(), date.Month(), date.Day(), startHour, 0, 0, 0, date.Location())
	for i := 0; i < count; i++ {
		appts = append(appts, NewAppointment(cur, durationMin))
		cur = cur.Add(time.Duration(durationMin+gapMin) * time.Minute)
	}
	return appts
}

// Week builds the same day shape on each of days consecutive dates starting
// from start.
func Week(start time.Time, days, startHour, perDay, durationMin, gapMin int) []domain.Appointment {
	var appts []domain.Appointment
	for d := 0; d < days; d++ {
		appts = append(appts, Day(start.AddDate(0, 0, d), startHour, perDay, durationMin, gapMin)...)
	}
	return appts
}
