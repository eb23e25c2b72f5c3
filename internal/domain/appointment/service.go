package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when an appointment does not exist.
	ErrNotFound = errors.New("appointment not found")
	// ErrDateRequired is returned when the booking has no date.
	ErrDateRequired = errors.New("appointment date is required")
	// ErrDateInPast is returned when the booking date is not in the future.
	ErrDateInPast = errors.New("appointment date must be in the future")
	// ErrInvalidConsultationType is returned for an unrecognized consultation type.
	ErrInvalidConsultationType = errors.New("invalid consultation type")
)

// BookingRequest carries the validated inputs for a new appointment.
type BookingRequest struct {
	ProviderID       uuid.UUID
	AppointmentDate  time.Time
	ConsultationType string
	Fee              float64
	IdempotencyKey   string
}

type Service struct {
	appointments Repository
	now          func() time.Time
}

func NewService(appointments Repository) *Service {
	return &Service{appointments: appointments, now: time.Now}
}

func validConsultationType(t string) bool {
	switch t {
	case ConsultationPhone, ConsultationVideo, ConsultationInPerson:
		return true
	}
	return false
}

// Book creates a pending appointment for userID. The returned bool reports
// whether a new record was created; a repeated idempotency key returns the
// original booking with created=false and writes nothing.
func (s *Service) Book(ctx context.Context, userID string, req BookingRequest) (*Appointment, bool, error) {
	if req.AppointmentDate.IsZero() {
		return nil, false, ErrDateRequired
	}
	if !req.AppointmentDate.After(s.now()) {
		return nil, false, ErrDateInPast
	}
	if !validConsultationType(req.ConsultationType) {
		return nil, false, ErrInvalidConsultationType
	}

	if req.IdempotencyKey != "" {
		existing, err := s.appointments.GetByIdempotencyKey(ctx, userID, req.IdempotencyKey)
		if err == nil {
			return existing, false, nil
		}
		if !errors.Is(err, ErrNotFound) {
			return nil, false, err
		}
	}

	a := &Appointment{
		UserID:           userID,
		ProviderID:       req.ProviderID,
		AppointmentDate:  req.AppointmentDate,
		ConsultationType: req.ConsultationType,
		Fee:              req.Fee,
		Status:           StatusPending,
	}
	if req.IdempotencyKey != "" {
		a.IdempotencyKey = &req.IdempotencyKey
	}
	if err := s.appointments.Create(ctx, a); err != nil {
		return nil, false, err
	}
	return a, true, nil
}

// History returns the user's bookings, newest first.
func (s *Service) History(ctx context.Context, userID string, limit, offset int) ([]*Appointment, int, error) {
	return s.appointments.ListByUser(ctx, userID, limit, offset)
}
