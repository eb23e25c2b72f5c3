package hospital

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/carelink/carelink/internal/domain/provider"
)

// ErrNotFound is returned when a hospital does not exist.
var ErrNotFound = errors.New("hospital not found")

// cityDoctorLimit caps the doctors shown on a hospital detail page.
const cityDoctorLimit = 6

// DoctorFinder resolves the doctors practicing in a city.
type DoctorFinder interface {
	DoctorsInCity(ctx context.Context, city string, limit int) ([]*provider.Doctor, error)
}

type Service struct {
	hospitals Repository
	doctors   DoctorFinder
	logger    zerolog.Logger
}

func NewService(hospitals Repository, doctors DoctorFinder, logger zerolog.Logger) *Service {
	return &Service{hospitals: hospitals, doctors: doctors, logger: logger}
}

func (s *Service) Search(ctx context.Context, location string, limit, offset int) ([]*Hospital, int, error) {
	return s.hospitals.Search(ctx, location, limit, offset)
}

// GetDetail loads a hospital plus the doctors practicing in its city. The
// doctor lookup is best-effort: when it fails the detail still returns with
// an empty doctor list.
func (s *Service) GetDetail(ctx context.Context, id uuid.UUID) (*Detail, error) {
	h, err := s.hospitals.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &Detail{Hospital: h, Doctors: []*provider.Doctor{}}

	doctors, err := s.doctors.DoctorsInCity(ctx, h.City(), cityDoctorLimit)
	if err != nil {
		s.logger.Error().Err(err).
			Str("hospital_id", h.ID.String()).
			Str("city", h.City()).
			Msg("city doctor lookup failed")
		return detail, nil
	}
	if doctors != nil {
		detail.Doctors = doctors
	}
	return detail, nil
}
