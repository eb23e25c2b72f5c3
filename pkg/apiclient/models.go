package apiclient

import "time"

// Doctor mirrors the server's doctor resource.
type Doctor struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Specialty      string   `json:"specialty"`
	Experience     string   `json:"experience,omitempty"`
	Location       string   `json:"location,omitempty"`
	Price          *float64 `json:"price"`
	Rating         *float64 `json:"rating"`
	ReviewCount    int      `json:"review_count"`
	AvailableToday bool     `json:"available_today"`
	Features       []string `json:"features,omitempty"`
	Image          string   `json:"image,omitempty"`
}

// Specialist mirrors the server's specialist resource.
type Specialist struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Specialty      string   `json:"specialty"`
	Experience     string   `json:"experience,omitempty"`
	Location       string   `json:"location,omitempty"`
	Price          *float64 `json:"price"`
	Rating         *float64 `json:"rating"`
	ReviewCount    int      `json:"review_count"`
	AvailableToday bool     `json:"available_today"`
	Features       []string `json:"features,omitempty"`
	Image          string   `json:"image,omitempty"`
}

// Hospital mirrors the server's hospital resource.
type Hospital struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Location    string   `json:"location"`
	Phone       string   `json:"phone,omitempty"`
	Website     string   `json:"website,omitempty"`
	Rating      *float64 `json:"rating"`
	ReviewCount int      `json:"review_count"`
	Departments []string `json:"departments,omitempty"`
	Features    []string `json:"features,omitempty"`
	Image       string   `json:"image,omitempty"`
}

// HospitalDetail is a hospital plus the doctors practicing in its city.
type HospitalDetail struct {
	Hospital Hospital `json:"hospital"`
	Doctors  []Doctor `json:"doctors"`
}

// Medicine mirrors the server's medicine resource.
type Medicine struct {
	ID                   string   `json:"id"`
	Name                 string   `json:"name"`
	Manufacturer         string   `json:"manufacturer,omitempty"`
	Category             string   `json:"category,omitempty"`
	Description          string   `json:"description,omitempty"`
	Price                *float64 `json:"price"`
	PrescriptionRequired bool     `json:"prescription_required"`
	InStock              bool     `json:"in_stock"`
	Image                string   `json:"image,omitempty"`
}

// Purchase is a recorded medicine purchase.
type Purchase struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	MedicineID   string    `json:"medicine_id"`
	MedicineName string    `json:"medicine_name"`
	Price        float64   `json:"price"`
	CreatedAt    time.Time `json:"created_at"`
}

// Appointment is a booked consultation.
type Appointment struct {
	ID               string    `json:"id"`
	UserID           string    `json:"user_id"`
	ProviderID       string    `json:"provider_id"`
	AppointmentDate  time.Time `json:"appointment_date"`
	ConsultationType string    `json:"consultation_type"`
	Fee              float64   `json:"fee"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
}

// Conversation links two users.
type Conversation struct {
	ID        string    `json:"id"`
	User1ID   string    `json:"user1_id"`
	User2ID   string    `json:"user2_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Message is a single chat message.
type Message struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversation_id"`
	SenderID       string    `json:"sender_id"`
	RecipientID    string    `json:"recipient_id"`
	Content        string    `json:"content"`
	IsRead         bool      `json:"is_read"`
	CreatedAt      time.Time `json:"created_at"`
}
