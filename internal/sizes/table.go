package sizes

import (
	"errors"
	"fmt"

	"github.com/samber/lo"
)

// Entry pairs a display label (e.g. "P", "7", "6½") with the ring's inside
// diameter in millimeters.
type Entry struct {
	Label      string  `yaml:"label" validate:"required"`
	DiameterMM float64 `yaml:"diameter_mm" validate:"required,gt=0"`
}

// System is one national or organizational sizing standard: a short code,
// the descriptive region name from the reference table, and its entries
// ordered ascending by diameter.
type System struct {
	Code    string  `yaml:"code" validate:"required"`
	Name    string  `yaml:"name"`
	Entries []Entry `yaml:"sizes" validate:"required,min=1,dive"`
}

// Labels returns the entry labels in display order.
func (s *System) Labels() []string {
	return lo.Map(s.Entries, func(e Entry, _ int) string { return e.Label })
}

// Lookup returns the diameter recorded for the given label.
func (s *System) Lookup(label string) (float64, bool) {
	for _, e := range s.Entries {
		if e.Label == label {
			return e.DiameterMM, true
		}
	}
	return 0, false
}

// Lookup failure reasons, distinguishable with errors.Is.
var (
	ErrUnknownSystem = errors.New("unknown sizing system")
	ErrUnknownLabel  = errors.New("unknown size label")
)

// Table is the full sizing table, immutable once loaded. Each tool
// invocation builds its own Table; nothing is shared across runs.
type Table struct {
	systems []System
	byCode  map[string]int
}

// NewTable builds a Table from validated systems, preserving their order.
func NewTable(systems []System) *Table {
	t := &Table{
		systems: systems,
		byCode:  make(map[string]int, len(systems)),
	}
	for i, s := range systems {
		t.byCode[s.Code] = i
	}
	return t
}

// Systems returns the sizing systems in display order.
func (t *Table) Systems() []System {
	return t.systems
}

// Codes returns the system codes in display order.
func (t *Table) Codes() []string {
	return lo.Map(t.systems, func(s System, _ int) string { return s.Code })
}

// System returns the sizing system with the given code.
func (t *Table) System(code string) (*System, bool) {
	i, ok := t.byCode[code]
	if !ok {
		return nil, false
	}
	return &t.systems[i], true
}

// Lookup resolves a (system code, size label) pair to a diameter. The two
// not-found cases stay distinct so callers can report which part of the
// pair was wrong.
func (t *Table) Lookup(code, label string) (float64, error) {
	s, ok := t.System(code)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownSystem, code)
	}
	d, ok := s.Lookup(label)
	if !ok {
		return 0, fmt.Errorf("%w: %q in system %q", ErrUnknownLabel, label, code)
	}
	return d, nil
}

// Len returns the number of sizing systems.
func (t *Table) Len() int {
	return len(t.systems)
}
