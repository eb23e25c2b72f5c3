package medicine

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a medicine does not exist.
var ErrNotFound = errors.New("medicine not found")

type Service struct {
	medicines Repository
}

func NewService(medicines Repository) *Service {
	return &Service{medicines: medicines}
}

func (s *Service) Search(ctx context.Context, f Filters, limit, offset int) ([]*Medicine, int, error) {
	return s.medicines.Search(ctx, f, limit, offset)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Medicine, error) {
	return s.medicines.GetByID(ctx, id)
}

// Categories returns the distinct categories for filter menus.
func (s *Service) Categories(ctx context.Context) ([]string, error) {
	return s.medicines.Categories(ctx)
}
