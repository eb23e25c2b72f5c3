package hospital

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Search(ctx context.Context, location string, limit, offset int) ([]*Hospital, int, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Hospital, error)
}
