// Package seed generates demo catalog data for development environments. It
// produces reproducible doctors, specialists, hospitals and medicines
// suitable for developer on-boarding and UI demos.
package seed

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedConfig controls the volume of generated demo data.
type SeedConfig struct {
	DoctorCount     int   `json:"doctorCount"`
	SpecialistCount int   `json:"specialistCount"`
	HospitalCount   int   `json:"hospitalCount"`
	MedicineCount   int   `json:"medicineCount"`
	Seed            int64 `json:"seed"`
}

// DefaultSeedConfig returns a SeedConfig with sensible development defaults.
func DefaultSeedConfig() SeedConfig {
	return SeedConfig{
		DoctorCount:     24,
		SpecialistCount: 16,
		HospitalCount:   8,
		MedicineCount:   30,
	}
}

// SeedResult summarizes the output of a seed operation.
type SeedResult struct {
	Doctors     int           `json:"doctors"`
	Specialists int           `json:"specialists"`
	Hospitals   int           `json:"hospitals"`
	Medicines   int           `json:"medicines"`
	Duration    time.Duration `json:"duration"`
}

type medicineDef struct {
	Name         string
	Manufacturer string
	Category     string
	Prescription bool
}

var (
	firstNames = []string{
		"James", "Mary", "Robert", "Patricia", "John", "Jennifer", "Michael",
		"Linda", "David", "Elizabeth", "William", "Barbara", "Richard",
		"Susan", "Joseph", "Jessica", "Thomas", "Sarah", "Daniel", "Karen",
		"Matthew", "Lisa", "Anthony", "Nancy", "Mark", "Betty", "Steven",
		"Margaret", "Andrew", "Sandra",
	}
	lastNames = []string{
		"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
		"Davis", "Rodriguez", "Martinez", "Wilson", "Anderson", "Thomas",
		"Taylor", "Moore", "Jackson", "Martin", "Lee", "Thompson", "White",
		"Harris", "Clark", "Lewis", "Robinson", "Walker", "Young", "Allen",
	}

	specialties = []string{
		"General Physician", "Cardiology", "Dermatology", "Neurology",
		"Orthopedics", "Pediatrics", "Psychiatry", "Gynecology", "ENT",
		"Ophthalmology", "Urology", "Gastroenterology",
	}

	cities = []string{
		"London", "Manchester", "Birmingham", "Leeds", "Glasgow",
		"Liverpool", "Bristol", "Sheffield",
	}
	districts = []string{
		"Central", "North", "South", "East", "West", "Riverside", "Old Town",
	}

	hospitalNames = []string{
		"Mercy General Hospital", "St. Luke's Medical Center",
		"Community Health Partners", "Regional Medical Associates",
		"Valley Care Medical Group", "Northside Health System",
		"Lakewood Family Medicine", "Summit Healthcare Network",
		"Riverside Community Hospital", "Beacon Health Alliance",
	}
	departments = []string{
		"Emergency", "Cardiology", "Oncology", "Maternity", "Radiology",
		"Orthopedics", "Pediatrics", "Neurology", "General Surgery",
	}
	hospitalFeatures = []string{
		"24/7 Emergency", "ICU", "Pharmacy", "Ambulance", "Lab Services",
		"Blood Bank", "Parking",
	}
	doctorFeatures = []string{
		"Video Consultation", "Home Visits", "Insurance Accepted",
		"Weekend Availability", "Multilingual",
	}

	medicines = []medicineDef{
		{"Paracetamol 500mg", "HealWell Labs", "Pain Relief", false},
		{"Ibuprofen 400mg", "HealWell Labs", "Pain Relief", false},
		{"Aspirin 75mg", "CareGen Pharma", "Pain Relief", false},
		{"Amoxicillin 500mg", "CareGen Pharma", "Antibiotics", true},
		{"Azithromycin 250mg", "CareGen Pharma", "Antibiotics", true},
		{"Ciprofloxacin 500mg", "Medix Bio", "Antibiotics", true},
		{"Cetirizine 10mg", "Medix Bio", "Allergy", false},
		{"Loratadine 10mg", "HealWell Labs", "Allergy", false},
		{"Omeprazole 20mg", "Medix Bio", "Digestive Health", false},
		{"Ranitidine 150mg", "CareGen Pharma", "Digestive Health", false},
		{"Metformin 500mg", "Medix Bio", "Diabetes", true},
		{"Gliclazide 80mg", "CareGen Pharma", "Diabetes", true},
		{"Amlodipine 5mg", "HealWell Labs", "Blood Pressure", true},
		{"Lisinopril 10mg", "Medix Bio", "Blood Pressure", true},
		{"Atorvastatin 20mg", "CareGen Pharma", "Cholesterol", true},
		{"Salbutamol Inhaler", "Medix Bio", "Respiratory", true},
		{"Vitamin D3 1000IU", "HealWell Labs", "Vitamins", false},
		{"Vitamin C 500mg", "HealWell Labs", "Vitamins", false},
		{"Multivitamin Complex", "CareGen Pharma", "Vitamins", false},
		{"Folic Acid 5mg", "Medix Bio", "Vitamins", false},
		{"Sertraline 50mg", "CareGen Pharma", "Mental Health", true},
		{"Levothyroxine 50mcg", "Medix Bio", "Hormonal", true},
		{"Hydrocortisone Cream", "HealWell Labs", "Skin Care", false},
		{"Clotrimazole Cream", "HealWell Labs", "Skin Care", false},
		{"ORS Sachets", "CareGen Pharma", "Digestive Health", false},
		{"Cough Syrup 100ml", "HealWell Labs", "Respiratory", false},
		{"Eye Drops 10ml", "Medix Bio", "Eye Care", false},
		{"Antacid Tablets", "HealWell Labs", "Digestive Health", false},
		{"Zinc Supplement 20mg", "CareGen Pharma", "Vitamins", false},
		{"Melatonin 3mg", "Medix Bio", "Sleep Aid", false},
	}
)

// Generator produces deterministic demo records.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a generator seeded for reproducibility. If seed is 0 a
// time-based seed is chosen.
func NewGenerator(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

func (g *Generator) pick(pool []string) string {
	return pool[g.rng.Intn(len(pool))]
}

// DoctorRow holds the generated column values for one provider insert.
type DoctorRow struct {
	Name           string
	Specialty      string
	Experience     string
	Location       string
	Price          float64
	Rating         float64
	ReviewCount    int
	AvailableToday bool
	Features       []string
}

// HospitalRow holds the generated column values for one hospital insert.
type HospitalRow struct {
	Name        string
	Location    string
	Phone       string
	Website     string
	Rating      float64
	ReviewCount int
	Departments []string
	Features    []string
}

// MedicineRow holds the generated column values for one medicine insert.
type MedicineRow struct {
	Name                 string
	Manufacturer         string
	Category             string
	Description          string
	Price                float64
	PrescriptionRequired bool
	InStock              bool
}

// Location returns a "City, District" pair matching the catalog's location
// format, where the city is the segment before the comma.
func (g *Generator) Location() string {
	return g.pick(cities) + ", " + g.pick(districts)
}

func (g *Generator) rating() float64 {
	// 3.0 to 5.0 in half-star steps.
	return 3.0 + float64(g.rng.Intn(5))*0.5
}

func (g *Generator) features(pool []string) []string {
	n := 1 + g.rng.Intn(3)
	out := make([]string, 0, n)
	seen := map[string]bool{}
	for len(out) < n {
		f := g.pick(pool)
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	return out
}

// Doctor generates one demo provider record.
func (g *Generator) Doctor() DoctorRow {
	return DoctorRow{
		Name:           fmt.Sprintf("Dr. %s %s", g.pick(firstNames), g.pick(lastNames)),
		Specialty:      g.pick(specialties),
		Experience:     fmt.Sprintf("%d years", 2+g.rng.Intn(28)),
		Location:       g.Location(),
		Price:          float64(20 + g.rng.Intn(18)*5),
		Rating:         g.rating(),
		ReviewCount:    g.rng.Intn(500),
		AvailableToday: g.rng.Intn(2) == 0,
		Features:       g.features(doctorFeatures),
	}
}

// Hospital generates one demo hospital record.
func (g *Generator) Hospital() HospitalRow {
	name := g.pick(hospitalNames)
	return HospitalRow{
		Name:     name,
		Location: g.Location(),
		Phone: fmt.Sprintf("+44 %d %06d",
			20+g.rng.Intn(160), g.rng.Intn(1000000)),
		Website:     "https://example.org/" + fmt.Sprintf("h%04d", g.rng.Intn(10000)),
		Rating:      g.rating(),
		ReviewCount: g.rng.Intn(1200),
		Departments: g.features(departments),
		Features:    g.features(hospitalFeatures),
	}
}

// Medicine generates one demo medicine record. The catalog pool is walked in
// order so names stay unique within a run; i indexes into it.
func (g *Generator) Medicine(i int) MedicineRow {
	def := medicines[i%len(medicines)]
	return MedicineRow{
		Name:                 def.Name,
		Manufacturer:         def.Manufacturer,
		Category:             def.Category,
		Description:          def.Name + " by " + def.Manufacturer,
		Price:                float64(1+g.rng.Intn(40)) + 0.99,
		PrescriptionRequired: def.Prescription,
		InStock:              g.rng.Intn(5) != 0,
	}
}

// Seeder inserts generated demo data into the database.
type Seeder struct {
	pool      *pgxpool.Pool
	config    SeedConfig
	generator *Generator
}

// NewSeeder creates a Seeder with the given config.
func NewSeeder(pool *pgxpool.Pool, config SeedConfig) *Seeder {
	return &Seeder{
		pool:      pool,
		config:    config,
		generator: NewGenerator(config.Seed),
	}
}

// Run generates and inserts all demo records according to config.
func (s *Seeder) Run(ctx context.Context) (*SeedResult, error) {
	start := time.Now()
	result := &SeedResult{}

	for i := 0; i < s.config.DoctorCount; i++ {
		d := s.generator.Doctor()
		if err := s.insertProvider(ctx, "doctors", d); err != nil {
			return nil, fmt.Errorf("seed doctors: %w", err)
		}
		result.Doctors++
	}

	for i := 0; i < s.config.SpecialistCount; i++ {
		d := s.generator.Doctor()
		if err := s.insertProvider(ctx, "specialists", d); err != nil {
			return nil, fmt.Errorf("seed specialists: %w", err)
		}
		result.Specialists++
	}

	for i := 0; i < s.config.HospitalCount; i++ {
		h := s.generator.Hospital()
		_, err := s.pool.Exec(ctx, `
			INSERT INTO hospitals (name, location, phone, website, rating, review_count, departments, features)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			h.Name, h.Location, h.Phone, h.Website, h.Rating, h.ReviewCount, h.Departments, h.Features)
		if err != nil {
			return nil, fmt.Errorf("seed hospitals: %w", err)
		}
		result.Hospitals++
	}

	for i := 0; i < s.config.MedicineCount; i++ {
		m := s.generator.Medicine(i)
		_, err := s.pool.Exec(ctx, `
			INSERT INTO medicines (name, manufacturer, category, description, price, prescription_required, in_stock)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			m.Name, m.Manufacturer, m.Category, m.Description, m.Price, m.PrescriptionRequired, m.InStock)
		if err != nil {
			return nil, fmt.Errorf("seed medicines: %w", err)
		}
		result.Medicines++
	}

	result.Duration = time.Since(start)
	return result, nil
}

func (s *Seeder) insertProvider(ctx context.Context, table string, d DoctorRow) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO `+table+` (name, specialty, experience, location, price, rating, review_count, available_today, features)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		d.Name, d.Specialty, d.Experience, d.Location, d.Price, d.Rating,
		d.ReviewCount, d.AvailableToday, d.Features)
	return err
}
