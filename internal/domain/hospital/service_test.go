package hospital

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/carelink/carelink/internal/domain/provider"
)

// -- Mocks --

type mockRepo struct {
	store map[uuid.UUID]*Hospital
	err   error
}

func newMockRepo() *mockRepo {
	return &mockRepo{store: make(map[uuid.UUID]*Hospital)}
}

func (m *mockRepo) add(h *Hospital) *Hospital {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	m.store[h.ID] = h
	return h
}

func (m *mockRepo) Search(_ context.Context, location string, limit, offset int) ([]*Hospital, int, error) {
	if m.err != nil {
		return nil, 0, m.err
	}
	var r []*Hospital
	for _, h := range m.store {
		if location != "" && !strings.Contains(strings.ToLower(h.Location), strings.ToLower(location)) {
			continue
		}
		r = append(r, h)
	}
	return r, len(r), nil
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*Hospital, error) {
	h, ok := m.store[id]
	if !ok {
		return nil, ErrNotFound
	}
	return h, nil
}

type mockDoctorFinder struct {
	doctors []*provider.Doctor
	err     error
	gotCity string
	calls   int
}

func (m *mockDoctorFinder) DoctorsInCity(_ context.Context, city string, limit int) ([]*provider.Doctor, error) {
	m.calls++
	m.gotCity = city
	if m.err != nil {
		return nil, m.err
	}
	if len(m.doctors) > limit {
		return m.doctors[:limit], nil
	}
	return m.doctors, nil
}

func newTestService() (*Service, *mockRepo, *mockDoctorFinder) {
	repo := newMockRepo()
	finder := &mockDoctorFinder{}
	return NewService(repo, finder, zerolog.Nop()), repo, finder
}

// -- Tests --

func TestHospital_City(t *testing.T) {
	cases := map[string]string{
		"London, UK":       "London",
		"Boston":           "Boston",
		" Madrid , Spain":  "Madrid",
		"Paris,France,75e": "Paris",
	}
	for location, want := range cases {
		h := &Hospital{Location: location}
		if got := h.City(); got != want {
			t.Errorf("City(%q) = %q, want %q", location, got, want)
		}
	}
}

func TestSearch_LocationFilter(t *testing.T) {
	svc, repo, _ := newTestService()
	repo.add(&Hospital{Name: "City General", Location: "London, UK"})
	repo.add(&Hospital{Name: "Bay Medical", Location: "Boston, USA"})

	items, total, err := svc.Search(context.Background(), "lond", 20, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 1 || items[0].Name != "City General" {
		t.Errorf("expected location substring match, got %+v", items)
	}
}

func TestGetDetail_IncludesCityDoctors(t *testing.T) {
	svc, repo, finder := newTestService()
	h := repo.add(&Hospital{Name: "City General", Location: "London, UK"})
	finder.doctors = []*provider.Doctor{{Name: "Dr. Adams"}}

	detail, err := svc.GetDetail(context.Background(), h.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if detail.Hospital.Name != "City General" {
		t.Errorf("unexpected hospital: %+v", detail.Hospital)
	}
	if finder.gotCity != "London" {
		t.Errorf("expected lookup by city segment London, got %q", finder.gotCity)
	}
	if len(detail.Doctors) != 1 {
		t.Errorf("expected 1 doctor, got %d", len(detail.Doctors))
	}
}

func TestGetDetail_DoctorLookupFailureTolerated(t *testing.T) {
	svc, repo, finder := newTestService()
	h := repo.add(&Hospital{Name: "City General", Location: "London, UK"})
	finder.err = errors.New("doctors table unavailable")

	detail, err := svc.GetDetail(context.Background(), h.ID)
	if err != nil {
		t.Fatalf("doctor lookup failure must not fail the detail: %v", err)
	}
	if detail.Doctors == nil || len(detail.Doctors) != 0 {
		t.Errorf("expected empty doctor list, got %v", detail.Doctors)
	}
}

func TestGetDetail_NotFoundSkipsDoctorLookup(t *testing.T) {
	svc, _, finder := newTestService()

	_, err := svc.GetDetail(context.Background(), uuid.New())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if finder.calls != 0 {
		t.Error("doctor lookup must not run for a missing hospital")
	}
}

func TestGetDetail_CapsDoctorsAtSix(t *testing.T) {
	svc, repo, finder := newTestService()
	h := repo.add(&Hospital{Name: "City General", Location: "London, UK"})
	for i := 0; i < 10; i++ {
		finder.doctors = append(finder.doctors, &provider.Doctor{Name: "Dr."})
	}

	detail, err := svc.GetDetail(context.Background(), h.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(detail.Doctors) != cityDoctorLimit {
		t.Errorf("expected %d doctors, got %d", cityDoctorLimit, len(detail.Doctors))
	}
}
