package purchase

import (
	"context"
)

type Repository interface {
	Create(ctx context.Context, p *Purchase) error
	// GetByIdempotencyKey returns the purchase previously created by the
	// same user with the same key, or ErrNotFound.
	GetByIdempotencyKey(ctx context.Context, userID, key string) (*Purchase, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*Purchase, int, error)
}
