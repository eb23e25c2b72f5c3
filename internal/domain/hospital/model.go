package hospital

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/carelink/carelink/internal/domain/provider"
)

// Hospital maps to the hospitals table.
type Hospital struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Location    string    `db:"location" json:"location"`
	Phone       *string   `db:"phone" json:"phone,omitempty"`
	Website     *string   `db:"website" json:"website,omitempty"`
	Rating      *float64  `db:"rating" json:"rating"`
	ReviewCount int       `db:"review_count" json:"review_count"`
	Departments []string  `db:"departments" json:"departments,omitempty"`
	Features    []string  `db:"features" json:"features,omitempty"`
	Image       *string   `db:"image" json:"image,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// City returns the city segment of the hospital's location, the part
// before the first comma.
func (h *Hospital) City() string {
	city, _, _ := strings.Cut(h.Location, ",")
	return strings.TrimSpace(city)
}

// Detail is a hospital together with the doctors practicing in its city.
type Detail struct {
	Hospital *Hospital          `json:"hospital"`
	Doctors  []*provider.Doctor `json:"doctors"`
}
