package provider

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a doctor or specialist does not exist.
var ErrNotFound = errors.New("provider not found")

type Service struct {
	doctors       DoctorRepository
	specialists   SpecialistRepository
	featuredLimit int
}

func NewService(doctors DoctorRepository, specialists SpecialistRepository, featuredLimit int) *Service {
	return &Service{
		doctors:       doctors,
		specialists:   specialists,
		featuredLimit: featuredLimit,
	}
}

func (s *Service) SearchDoctors(ctx context.Context, f Filters, limit, offset int) ([]*Doctor, int, error) {
	return s.doctors.Search(ctx, f, limit, offset)
}

// FeaturedDoctors returns the fixed landing-page selection.
func (s *Service) FeaturedDoctors(ctx context.Context) ([]*Doctor, error) {
	return s.doctors.Featured(ctx, s.featuredLimit)
}

func (s *Service) GetDoctor(ctx context.Context, id uuid.UUID) (*Doctor, error) {
	return s.doctors.GetByID(ctx, id)
}

// DoctorsInCity matches doctors whose location contains the city substring.
func (s *Service) DoctorsInCity(ctx context.Context, city string, limit int) ([]*Doctor, error) {
	if city == "" {
		return nil, nil
	}
	return s.doctors.FindByLocation(ctx, city, limit)
}

func (s *Service) SearchSpecialists(ctx context.Context, f Filters, limit, offset int) ([]*Specialist, int, error) {
	return s.specialists.Search(ctx, f, limit, offset)
}

func (s *Service) GetSpecialist(ctx context.Context, id uuid.UUID) (*Specialist, error) {
	return s.specialists.GetByID(ctx, id)
}

// SpecialistSpecialties returns the distinct specialties for filter menus.
func (s *Service) SpecialistSpecialties(ctx context.Context) ([]string, error) {
	return s.specialists.Specialties(ctx)
}
