package appointment

import (
	"time"

	"github.com/google/uuid"
)

// Consultation types accepted at booking time.
const (
	ConsultationPhone    = "phone"
	ConsultationVideo    = "video"
	ConsultationInPerson = "in-person"
)

// StatusPending is the only status a new booking can carry. Transitions are
// handled outside this service.
const StatusPending = "pending"

// Appointment maps to the appointments table. Fee is snapshotted from the
// booking request.
type Appointment struct {
	ID               uuid.UUID `db:"id" json:"id"`
	UserID           string    `db:"user_id" json:"user_id"`
	ProviderID       uuid.UUID `db:"provider_id" json:"provider_id"`
	AppointmentDate  time.Time `db:"appointment_date" json:"appointment_date"`
	ConsultationType string    `db:"consultation_type" json:"consultation_type"`
	Fee              float64   `db:"fee" json:"fee"`
	Status           string    `db:"status" json:"status"`
	IdempotencyKey   *string   `db:"idempotency_key" json:"-"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time `db:"updated_at" json:"updated_at"`
}
