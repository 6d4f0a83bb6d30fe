package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/harmonialabs/harmonia/internal/domain"
	"github.com/harmonialabs/harmonia/internal/repository"
)

type appointmentService struct {
	appointments repository.AppointmentRepo
	now          func() time.Time
}

// NewAppointmentService creates the appointment CRUD service.
func NewAppointmentService(appointments repository.AppointmentRepo) AppointmentService {
	return &appointmentService{
		appointments: appointments,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func (s *appointmentService) Add(ctx context.Context, req AddAppointmentRequest) (*domain.Appointment, error) {
	if !req.End.After(req.Start) {
		return nil, fmt.Errorf("appointment end must be after start")
	}
	typ := req.Type
	if typ == "" {
		typ = domain.TypeAppointment
	}
	if !domain.ValidAppointmentTypes[string(typ)] {
		return nil, fmt.Errorf("unknown appointment type %q", typ)
	}

	now := s.now()
	a := &domain.Appointment{
		ID:         uuid.New().String(),
		Start:      req.Start,
		End:        req.End,
		Type:       typ,
		Status:     domain.StatusConfirmed,
		ClientName: req.ClientName,
		Notes:      req.Notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.appointments.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *appointmentService) List(ctx context.Context) ([]domain.Appointment, error) {
	return s.appointments.List(ctx)
}

// Cancel marks the appointment cancelled; records are never hard-deleted so
// the schedule history stays intact.
func (s *appointmentService) Cancel(ctx context.Context, id string) error {
	return s.appointments.UpdateStatus(ctx, id, domain.StatusCancelled)
}
