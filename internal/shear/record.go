// Package shear implements the shear resistance checks of EN 1992-1-1
// Section 6.2: V_Rd,max (crushing of the compression strut) and V_Rd,c
// (members without shear reinforcement).
//
// Every evaluation is a pure function of its inputs. Inputs carry a
// units.System tag; results and intermediates come back re-expressed in
// that same system.
package shear

import (
	"errors"

	"github.com/mbruyneel/goec2/internal/units"
)

var (
	// ErrOutOfDomain is returned when an input lies outside the domain of
	// the governing expression (strut angle at or beyond (0, π/2), negative
	// quantities, a zero denominator or a negative radicand).
	ErrOutOfDomain = errors.New("out of domain")

	// ErrMissingArgument is returned when a required input is absent
	// (zero or NaN).
	ErrMissingArgument = errors.New("missing argument")
)

// Intermediate is one named sub-term of a formula evaluation.
type Intermediate struct {
	Name  string
	Value float64
	Dim   units.Dimension
}

// IntermediateRecord is the ordered list of sub-terms captured during one
// evaluation. It is built fresh per call and never mutated after return.
type IntermediateRecord []Intermediate

// Get returns the value of the named sub-term.
func (r IntermediateRecord) Get(name string) (float64, bool) {
	for _, e := range r {
		if e.Name == name {
			return e.Value, true
		}
	}
	return 0, false
}

// inSystem re-expresses every entry in the given unit system. Values are
// canonical when this is called.
func (r IntermediateRecord) inSystem(sys units.System) IntermediateRecord {
	out := make(IntermediateRecord, len(r))
	for i, e := range r {
		out[i] = Intermediate{Name: e.Name, Value: sys.FromCanonical(e.Dim, e.Value), Dim: e.Dim}
	}
	return out
}
