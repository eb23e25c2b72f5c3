package medicine

import (
	"context"
	"sort"
	"strings"
	"testing"

	"github.com/google/uuid"
)

// -- Mock Repository --

type mockRepo struct {
	store map[uuid.UUID]*Medicine
	err   error
}

func newMockRepo() *mockRepo {
	return &mockRepo{store: make(map[uuid.UUID]*Medicine)}
}

func (m *mockRepo) add(med *Medicine) *Medicine {
	if med.ID == uuid.Nil {
		med.ID = uuid.New()
	}
	m.store[med.ID] = med
	return med
}

func (m *mockRepo) Search(_ context.Context, f Filters, limit, offset int) ([]*Medicine, int, error) {
	if m.err != nil {
		return nil, 0, m.err
	}
	var r []*Medicine
	for _, med := range m.store {
		if f.Search != "" && !strings.Contains(strings.ToLower(med.Name), strings.ToLower(f.Search)) {
			continue
		}
		if f.Category != "" && f.Category != "all" {
			if med.Category == nil || *med.Category != f.Category {
				continue
			}
		}
		if f.PrescriptionOnly && !med.PrescriptionRequired {
			continue
		}
		if f.InStockOnly && !med.InStock {
			continue
		}
		r = append(r, med)
	}
	return r, len(r), nil
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*Medicine, error) {
	med, ok := m.store[id]
	if !ok {
		return nil, ErrNotFound
	}
	return med, nil
}

func (m *mockRepo) Categories(_ context.Context) ([]string, error) {
	seen := map[string]bool{}
	var r []string
	for _, med := range m.store {
		if med.Category != nil && !seen[*med.Category] {
			seen[*med.Category] = true
			r = append(r, *med.Category)
		}
	}
	sort.Strings(r)
	return r, nil
}

func strPtr(s string) *string { return &s }

func newTestService() (*Service, *mockRepo) {
	repo := newMockRepo()
	return NewService(repo), repo
}

// -- Tests --

func TestSearch_CategoryExactMatch(t *testing.T) {
	svc, repo := newTestService()
	repo.add(&Medicine{Name: "Amoxicillin", Category: strPtr("Antibiotics"), InStock: true})
	repo.add(&Medicine{Name: "Paracetamol", Category: strPtr("Pain Relief"), InStock: true})

	items, _, err := svc.Search(context.Background(), Filters{Category: "Antibiotics"}, 20, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 || items[0].Name != "Amoxicillin" {
		t.Errorf("expected exact category match, got %+v", items)
	}
}

func TestSearch_AllCategorySentinel(t *testing.T) {
	svc, repo := newTestService()
	repo.add(&Medicine{Name: "Amoxicillin", Category: strPtr("Antibiotics")})
	repo.add(&Medicine{Name: "Paracetamol", Category: strPtr("Pain Relief")})

	items, _, err := svc.Search(context.Background(), Filters{Category: "all"}, 20, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Errorf(`expected "all" to disable the category filter, got %d`, len(items))
	}
}

func TestSearch_FlagsCompose(t *testing.T) {
	svc, repo := newTestService()
	repo.add(&Medicine{Name: "A", Category: strPtr("Antibiotics"), PrescriptionRequired: true, InStock: true})
	repo.add(&Medicine{Name: "B", Category: strPtr("Antibiotics"), PrescriptionRequired: true, InStock: false})
	repo.add(&Medicine{Name: "C", Category: strPtr("Antibiotics"), PrescriptionRequired: false, InStock: true})
	repo.add(&Medicine{Name: "D", Category: strPtr("Pain Relief"), PrescriptionRequired: true, InStock: true})

	items, _, err := svc.Search(context.Background(),
		Filters{Category: "Antibiotics", PrescriptionOnly: true, InStockOnly: true}, 20, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 || items[0].Name != "A" {
		t.Errorf("expected category+flags to narrow to A, got %+v", items)
	}
}

func TestSearch_DisabledFlagsDoNotConstrain(t *testing.T) {
	svc, repo := newTestService()
	repo.add(&Medicine{Name: "A", InStock: false, PrescriptionRequired: false})
	repo.add(&Medicine{Name: "B", InStock: true, PrescriptionRequired: true})

	items, _, err := svc.Search(context.Background(), Filters{}, 20, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Errorf("disabled flags must not filter, got %d", len(items))
	}
}

func TestGet_NotFound(t *testing.T) {
	svc, _ := newTestService()
	if _, err := svc.Get(context.Background(), uuid.New()); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestCategories_DistinctOrdered(t *testing.T) {
	svc, repo := newTestService()
	repo.add(&Medicine{Name: "A", Category: strPtr("Pain Relief")})
	repo.add(&Medicine{Name: "B", Category: strPtr("Antibiotics")})
	repo.add(&Medicine{Name: "C", Category: strPtr("Antibiotics")})
	repo.add(&Medicine{Name: "D"})

	categories, err := svc.Categories(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"Antibiotics", "Pain Relief"}
	if len(categories) != len(want) || categories[0] != want[0] || categories[1] != want[1] {
		t.Errorf("expected %v, got %v", want, categories)
	}
}
