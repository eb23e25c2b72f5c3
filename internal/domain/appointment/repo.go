package appointment

import (
	"context"
)

type Repository interface {
	Create(ctx context.Context, a *Appointment) error
	// GetByIdempotencyKey returns the appointment previously booked by the
	// same user with the same key, or ErrNotFound.
	GetByIdempotencyKey(ctx context.Context, userID, key string) (*Appointment, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*Appointment, int, error)
}
