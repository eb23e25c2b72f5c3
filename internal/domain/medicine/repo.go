package medicine

import (
	"context"

	"github.com/google/uuid"
)

// Filters narrows a medicine listing. Category treats "" and "all" as no
// filtering; the two flags only constrain when enabled.
type Filters struct {
	Search           string
	Category         string
	PrescriptionOnly bool
	InStockOnly      bool
}

type Repository interface {
	Search(ctx context.Context, f Filters, limit, offset int) ([]*Medicine, int, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Medicine, error)
	Categories(ctx context.Context) ([]string, error)
}
