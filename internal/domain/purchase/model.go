package purchase

import (
	"time"

	"github.com/google/uuid"
)

// Purchase maps to the purchases table. It snapshots the medicine name and
// price at purchase time; later catalog edits never rewrite history.
type Purchase struct {
	ID             uuid.UUID `db:"id" json:"id"`
	UserID         string    `db:"user_id" json:"user_id"`
	MedicineID     uuid.UUID `db:"medicine_id" json:"medicine_id"`
	MedicineName   string    `db:"medicine_name" json:"medicine_name"`
	Price          float64   `db:"price" json:"price"`
	IdempotencyKey *string   `db:"idempotency_key" json:"-"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}
