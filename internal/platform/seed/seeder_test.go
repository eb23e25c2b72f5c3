package seed

import (
	"strings"
	"testing"
)

func TestGenerator_Deterministic(t *testing.T) {
	a := NewGenerator(42)
	b := NewGenerator(42)

	for i := 0; i < 10; i++ {
		da, db := a.Doctor(), b.Doctor()
		if da.Name != db.Name || da.Specialty != db.Specialty || da.Price != db.Price {
			t.Fatalf("same seed must generate the same sequence: %+v vs %+v", da, db)
		}
	}
}

func TestGenerator_DoctorFields(t *testing.T) {
	g := NewGenerator(1)
	for i := 0; i < 50; i++ {
		d := g.Doctor()
		if !strings.HasPrefix(d.Name, "Dr. ") {
			t.Errorf("expected a doctor name, got %q", d.Name)
		}
		if d.Specialty == "" {
			t.Error("specialty must be set")
		}
		if d.Rating < 3.0 || d.Rating > 5.0 {
			t.Errorf("rating out of range: %v", d.Rating)
		}
		if d.Price <= 0 {
			t.Errorf("price must be positive, got %v", d.Price)
		}
		if len(d.Features) == 0 || len(d.Features) > 3 {
			t.Errorf("expected 1 to 3 features, got %d", len(d.Features))
		}
	}
}

func TestGenerator_LocationHasCitySegment(t *testing.T) {
	g := NewGenerator(7)
	for i := 0; i < 20; i++ {
		loc := g.Location()
		city, rest, found := strings.Cut(loc, ", ")
		if !found || city == "" || rest == "" {
			t.Errorf("expected \"City, District\", got %q", loc)
		}
	}
}

func TestGenerator_MedicineUniqueNamesPerRun(t *testing.T) {
	g := NewGenerator(3)
	seen := map[string]bool{}
	count := DefaultSeedConfig().MedicineCount
	for i := 0; i < count; i++ {
		m := g.Medicine(i)
		if seen[m.Name] {
			t.Errorf("duplicate medicine name %q", m.Name)
		}
		seen[m.Name] = true
	}
}

func TestGenerator_MedicinePrescriptionFlagFromCatalog(t *testing.T) {
	g := NewGenerator(9)
	for i, def := range medicines {
		m := g.Medicine(i)
		if m.PrescriptionRequired != def.Prescription {
			t.Errorf("%s: prescription flag must come from the catalog", def.Name)
		}
		if m.Category != def.Category {
			t.Errorf("%s: expected category %q, got %q", def.Name, def.Category, m.Category)
		}
	}
}

func TestDefaultSeedConfig(t *testing.T) {
	cfg := DefaultSeedConfig()
	if cfg.DoctorCount == 0 || cfg.SpecialistCount == 0 || cfg.HospitalCount == 0 || cfg.MedicineCount == 0 {
		t.Errorf("defaults must seed every catalog: %+v", cfg)
	}
}
