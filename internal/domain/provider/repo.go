package provider

import (
	"context"

	"github.com/google/uuid"
)

// Filters narrows a provider listing. Zero values mean no filtering;
// Specialty additionally treats "all" as no filtering.
type Filters struct {
	Search    string
	Location  string
	Specialty string
}

type DoctorRepository interface {
	Search(ctx context.Context, f Filters, limit, offset int) ([]*Doctor, int, error)
	Featured(ctx context.Context, limit int) ([]*Doctor, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Doctor, error)
	// FindByLocation matches doctors whose location contains the given
	// city substring.
	FindByLocation(ctx context.Context, city string, limit int) ([]*Doctor, error)
}

type SpecialistRepository interface {
	Search(ctx context.Context, f Filters, limit, offset int) ([]*Specialist, int, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Specialist, error)
	Specialties(ctx context.Context) ([]string, error)
}
