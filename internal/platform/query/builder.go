// Package query builds parameterized WHERE clauses for catalog listings.
//
// Conditions compose with AND only. Optional filters skip themselves when
// their value is empty (or the "all" sentinel for Match), so a builder with
// no effective conditions renders an empty clause and the query returns
// every row.
package query

import (
	"fmt"
	"strings"
)

// All is the sentinel value meaning "no filtering" for Match conditions.
const All = "all"

type condition struct {
	column string
	op     string
	value  any
}

// Builder accumulates filter conditions and renders them as a SQL WHERE
// clause with positional placeholders.
type Builder struct {
	conditions []condition
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Contains adds a case-insensitive substring condition. Empty values are
// skipped.
func (b *Builder) Contains(column, value string) *Builder {
	if value == "" {
		return b
	}
	b.conditions = append(b.conditions, condition{column: column, op: "ilike", value: "%" + value + "%"})
	return b
}

// Match adds an exact equality condition. Empty values and the "all"
// sentinel are skipped.
func (b *Builder) Match(column, value string) *Builder {
	if value == "" || value == All {
		return b
	}
	b.conditions = append(b.conditions, condition{column: column, op: "eq", value: value})
	return b
}

// Flag constrains column to TRUE when enabled; a disabled flag adds nothing.
func (b *Builder) Flag(column string, enabled bool) *Builder {
	if !enabled {
		return b
	}
	b.conditions = append(b.conditions, condition{column: column, op: "true"})
	return b
}

// Eq adds an unconditional equality condition. Used for scoping queries to
// a known value (a user id, a conversation id) rather than an optional
// filter.
func (b *Builder) Eq(column string, value any) *Builder {
	b.conditions = append(b.conditions, condition{column: column, op: "eq", value: value})
	return b
}

// Len returns the number of accumulated conditions.
func (b *Builder) Len() int {
	return len(b.conditions)
}

// Clause renders the accumulated conditions as a WHERE clause fragment
// (including the leading " WHERE") and the matching argument slice.
// Placeholders are numbered from startIdx so callers can append their own
// (LIMIT/OFFSET) afterwards. Zero conditions render an empty string.
func (b *Builder) Clause(startIdx int) (string, []any) {
	if len(b.conditions) == 0 {
		return "", nil
	}

	parts := make([]string, 0, len(b.conditions))
	args := make([]any, 0, len(b.conditions))
	idx := startIdx

	for _, cond := range b.conditions {
		switch cond.op {
		case "ilike":
			parts = append(parts, fmt.Sprintf("%s ILIKE $%d", cond.column, idx))
			args = append(args, cond.value)
			idx++
		case "eq":
			parts = append(parts, fmt.Sprintf("%s = $%d", cond.column, idx))
			args = append(args, cond.value)
			idx++
		case "true":
			parts = append(parts, fmt.Sprintf("%s = TRUE", cond.column))
		}
	}

	return " WHERE " + strings.Join(parts, " AND "), args
}

// NextIdx returns the placeholder index following the clause rendered with
// startIdx, for callers appending LIMIT/OFFSET placeholders.
func (b *Builder) NextIdx(startIdx int) int {
	for _, cond := range b.conditions {
		if cond.op != "true" {
			startIdx++
		}
	}
	return startIdx
}
