package query

import (
	"testing"
)

func TestBuilder_Empty(t *testing.T) {
	b := NewBuilder()
	clause, args := b.Clause(1)
	if clause != "" {
		t.Errorf("expected empty clause, got %q", clause)
	}
	if len(args) != 0 {
		t.Errorf("expected no args, got %v", args)
	}
	if b.Len() != 0 {
		t.Errorf("expected 0 conditions, got %d", b.Len())
	}
}

func TestBuilder_Contains(t *testing.T) {
	b := NewBuilder().Contains("name", "clin")
	clause, args := b.Clause(1)

	if clause != " WHERE name ILIKE $1" {
		t.Errorf("unexpected clause: %q", clause)
	}
	if len(args) != 1 || args[0] != "%clin%" {
		t.Errorf("unexpected args: %v", args)
	}
}

func TestBuilder_Contains_SkipsEmpty(t *testing.T) {
	b := NewBuilder().Contains("name", "")
	clause, _ := b.Clause(1)
	if clause != "" {
		t.Errorf("expected empty value to be skipped, got %q", clause)
	}
}

func TestBuilder_Match(t *testing.T) {
	b := NewBuilder().Match("category", "Antibiotics")
	clause, args := b.Clause(1)

	if clause != " WHERE category = $1" {
		t.Errorf("unexpected clause: %q", clause)
	}
	if len(args) != 1 || args[0] != "Antibiotics" {
		t.Errorf("unexpected args: %v", args)
	}
}

func TestBuilder_Match_SkipsSentinel(t *testing.T) {
	for _, value := range []string{"", "all"} {
		b := NewBuilder().Match("category", value)
		clause, _ := b.Clause(1)
		if clause != "" {
			t.Errorf("value %q: expected skip, got %q", value, clause)
		}
	}
}

func TestBuilder_Flag(t *testing.T) {
	b := NewBuilder().Flag("in_stock", true)
	clause, args := b.Clause(1)

	if clause != " WHERE in_stock = TRUE" {
		t.Errorf("unexpected clause: %q", clause)
	}
	if len(args) != 0 {
		t.Errorf("flag should not consume a placeholder, got args %v", args)
	}
}

func TestBuilder_Flag_DisabledAddsNothing(t *testing.T) {
	b := NewBuilder().Flag("in_stock", false)
	if b.Len() != 0 {
		t.Errorf("disabled flag should add nothing, got %d conditions", b.Len())
	}
}

func TestBuilder_Eq(t *testing.T) {
	b := NewBuilder().Eq("user_id", "u-1")
	clause, args := b.Clause(1)

	if clause != " WHERE user_id = $1" {
		t.Errorf("unexpected clause: %q", clause)
	}
	if len(args) != 1 || args[0] != "u-1" {
		t.Errorf("unexpected args: %v", args)
	}
}

func TestBuilder_CombinedConditions(t *testing.T) {
	b := NewBuilder().
		Contains("name", "para").
		Match("category", "Pain Relief").
		Flag("in_stock", true)

	clause, args := b.Clause(1)

	want := " WHERE name ILIKE $1 AND category = $2 AND in_stock = TRUE"
	if clause != want {
		t.Errorf("expected %q, got %q", want, clause)
	}
	if len(args) != 2 {
		t.Fatalf("expected 2 args, got %d", len(args))
	}
	if args[0] != "%para%" || args[1] != "Pain Relief" {
		t.Errorf("unexpected args: %v", args)
	}
}

func TestBuilder_StartIdx(t *testing.T) {
	b := NewBuilder().Contains("location", "London").Match("specialty", "Cardiology")
	clause, args := b.Clause(3)

	want := " WHERE location ILIKE $3 AND specialty = $4"
	if clause != want {
		t.Errorf("expected %q, got %q", want, clause)
	}
	if len(args) != 2 {
		t.Errorf("expected 2 args, got %d", len(args))
	}
}

func TestBuilder_NextIdx(t *testing.T) {
	b := NewBuilder().
		Contains("name", "x").
		Flag("in_stock", true).
		Match("category", "y")

	// Two placeholder-consuming conditions; the flag consumes none.
	if next := b.NextIdx(1); next != 3 {
		t.Errorf("expected next index 3, got %d", next)
	}
}

func TestBuilder_AllSkipped(t *testing.T) {
	b := NewBuilder().
		Contains("name", "").
		Match("specialty", "all").
		Flag("available_today", false)

	clause, args := b.Clause(1)
	if clause != "" || len(args) != 0 {
		t.Errorf("expected empty clause for all-skipped filters, got %q %v", clause, args)
	}
}
