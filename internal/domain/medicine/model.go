package medicine

import (
	"time"

	"github.com/google/uuid"
)

// Medicine maps to the medicines table.
type Medicine struct {
	ID                   uuid.UUID `db:"id" json:"id"`
	Name                 string    `db:"name" json:"name"`
	Manufacturer         *string   `db:"manufacturer" json:"manufacturer,omitempty"`
	Category             *string   `db:"category" json:"category,omitempty"`
	Description          *string   `db:"description" json:"description,omitempty"`
	Price                *float64  `db:"price" json:"price"`
	PrescriptionRequired bool      `db:"prescription_required" json:"prescription_required"`
	InStock              bool      `db:"in_stock" json:"in_stock"`
	Image                *string   `db:"image" json:"image,omitempty"`
	CreatedAt            time.Time `db:"created_at" json:"created_at"`
	UpdatedAt            time.Time `db:"updated_at" json:"updated_at"`
}
