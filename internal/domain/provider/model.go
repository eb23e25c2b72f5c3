package provider

import (
	"time"

	"github.com/google/uuid"
)

// Doctor maps to the doctors table.
type Doctor struct {
	ID             uuid.UUID `db:"id" json:"id"`
	Name           string    `db:"name" json:"name"`
	Specialty      string    `db:"specialty" json:"specialty"`
	Experience     *string   `db:"experience" json:"experience,omitempty"`
	Location       *string   `db:"location" json:"location,omitempty"`
	Price          *float64  `db:"price" json:"price"`
	Rating         *float64  `db:"rating" json:"rating"`
	ReviewCount    int       `db:"review_count" json:"review_count"`
	AvailableToday bool      `db:"available_today" json:"available_today"`
	Features       []string  `db:"features" json:"features,omitempty"`
	Image          *string   `db:"image" json:"image,omitempty"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

// Specialist maps to the specialists table. Specialists are browsed by
// exact specialty rather than the free-text matching doctors get, so they
// stay a distinct record type even though the columns line up.
type Specialist struct {
	ID             uuid.UUID `db:"id" json:"id"`
	Name           string    `db:"name" json:"name"`
	Specialty      string    `db:"specialty" json:"specialty"`
	Experience     *string   `db:"experience" json:"experience,omitempty"`
	Location       *string   `db:"location" json:"location,omitempty"`
	Price          *float64  `db:"price" json:"price"`
	Rating         *float64  `db:"rating" json:"rating"`
	ReviewCount    int       `db:"review_count" json:"review_count"`
	AvailableToday bool      `db:"available_today" json:"available_today"`
	Features       []string  `db:"features" json:"features,omitempty"`
	Image          *string   `db:"image" json:"image,omitempty"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}
