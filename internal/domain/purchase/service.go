package purchase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/carelink/carelink/internal/domain/medicine"
)

var (
	// ErrNotFound is returned when a purchase record does not exist.
	ErrNotFound = errors.New("purchase not found")
	// ErrMedicineNotFound is returned when the purchased medicine does not exist.
	ErrMedicineNotFound = errors.New("medicine not found")
	// ErrPrescriptionRequired is returned when the medicine needs a
	// prescription. Checked before stock so the caller learns the harder
	// blocker first.
	ErrPrescriptionRequired = errors.New("medicine requires a prescription")
	// ErrOutOfStock is returned when the medicine is not in stock.
	ErrOutOfStock = errors.New("medicine is out of stock")
)

// MedicineGetter is the slice of the medicine catalog the purchase flow needs.
type MedicineGetter interface {
	Get(ctx context.Context, id uuid.UUID) (*medicine.Medicine, error)
}

type Service struct {
	purchases Repository
	medicines MedicineGetter
}

func NewService(purchases Repository, medicines MedicineGetter) *Service {
	return &Service{purchases: purchases, medicines: medicines}
}

// Buy records a purchase of the given medicine for userID. The returned bool
// reports whether a new record was created; a repeated idempotency key
// returns the original purchase with created=false and writes nothing.
func (s *Service) Buy(ctx context.Context, userID string, medicineID uuid.UUID, idempotencyKey string) (*Purchase, bool, error) {
	if idempotencyKey != "" {
		existing, err := s.purchases.GetByIdempotencyKey(ctx, userID, idempotencyKey)
		if err == nil {
			return existing, false, nil
		}
		if !errors.Is(err, ErrNotFound) {
			return nil, false, err
		}
	}

	med, err := s.medicines.Get(ctx, medicineID)
	if err != nil {
		if errors.Is(err, medicine.ErrNotFound) {
			return nil, false, ErrMedicineNotFound
		}
		return nil, false, err
	}
	if med.PrescriptionRequired {
		return nil, false, ErrPrescriptionRequired
	}
	if !med.InStock {
		return nil, false, ErrOutOfStock
	}

	price := 0.0
	if med.Price != nil {
		price = *med.Price
	}
	p := &Purchase{
		UserID:       userID,
		MedicineID:   med.ID,
		MedicineName: med.Name,
		Price:        price,
	}
	if idempotencyKey != "" {
		p.IdempotencyKey = &idempotencyKey
	}
	if err := s.purchases.Create(ctx, p); err != nil {
		return nil, false, err
	}
	return p, true, nil
}

// History returns the user's purchases, newest first.
func (s *Service) History(ctx context.Context, userID string, limit, offset int) ([]*Purchase, int, error) {
	return s.purchases.ListByUser(ctx, userID, limit, offset)
}
