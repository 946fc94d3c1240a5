package fields

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrUnknownField is returned for ids that have no spec.
	ErrUnknownField = errors.New("unknown field")
	// ErrReadOnly is returned when a derived field is written directly.
	ErrReadOnly = errors.New("field is derived and cannot be edited")
)

// Store holds the current value of every line-item field.
type Store struct {
	values map[ID]float64
}

// NewStore returns a store initialised with Defaults.
func NewStore() *Store {
	return &Store{values: Defaults()}
}

// Get returns the current value of id, or 0 for unknown ids.
func (s *Store) Get(id ID) float64 {
	return s.values[id]
}

// Set clamps value to the field's spec and stores it.
func (s *Store) Set(id ID, value float64) (float64, error) {
	spec, ok := Lookup(id)
	if !ok {
		return 0, fmt.Errorf("set %q: %w", id, ErrUnknownField)
	}
	if spec.ReadOnly {
		return 0, fmt.Errorf("set %q: %w", id, ErrReadOnly)
	}

	v := spec.Clamp(value)
	s.values[id] = v
	return v, nil
}

// Apply stores engine-computed values as given, bypassing the edit-boundary
// clamp. Ids without a spec are skipped.
func (s *Store) Apply(values map[ID]float64) {
	for id, v := range values {
		if _, ok := byID[id]; !ok {
			continue
		}
		s.values[id] = v
	}
}

// Values returns a copy of every field value.
func (s *Store) Values() map[ID]float64 {
	out := make(map[ID]float64, len(s.values))
	for id, v := range s.values {
		out[id] = v
	}
	return out
}

// Parse coerces user text to a number. Empty or non-numeric input is 0.
func Parse(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return v
}
