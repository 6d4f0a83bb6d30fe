package domain

import "time"

type Appointment struct {
	ID     string
	Start  time.Time
	End    time.Time
	Type   AppointmentType
	Status AppointmentStatus

	// Descriptive fields carried for the store and UI; ignored by scoring.
	ClientName string
	Notes      string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DurationMin returns the booked length in whole minutes.
func (a Appointment) DurationMin() int {
	return int(a.End.Sub(a.Start).Minutes())
}

// IsValid reports whether the record carries usable timestamps.
// Malformed records are excluded from scoring rather than rejected upstream.
func (a Appointment) IsValid() bool {
	return !a.Start.IsZero() && !a.End.IsZero() && a.End.After(a.Start)
}

// Scorable reports whether the record participates in well-being scoring:
// a real appointment that was not cancelled.
func (a Appointment) Scorable() bool {
	return a.IsValid() && a.Type == TypeAppointment && a.Status != StatusCancelled
}

// FilterScorable returns the subset of appts that participate in scoring,
// preserving input order. The input slice is never mutated.
func FilterScorable(appts []Appointment) []Appointment {
	out := make([]Appointment, 0, len(appts))
	for _, a := range appts {
		if a.Scorable() {
			out = append(out, a)
		}
	}
	return out
}
