// Package units handles the unit systems recognized by goec2.
//
// All evaluation happens in the canonical N-mm-rad system (newtons,
// millimetres, radians, stresses in N/mm²). Callers tag their inputs with
// one System; quantities are converted to canonical units before any
// arithmetic and converted back before being returned.
package units

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidUnitSystem is returned when a unit-system tag is not in the
// recognized set.
var ErrInvalidUnitSystem = errors.New("invalid unit system")

// System identifies the {force, length, angle} unit triple a caller is using.
// Exactly one System governs all inputs and outputs of a single evaluation.
type System string

const (
	// NmmRad is the canonical system: newtons, millimetres, radians.
	// Stresses are N/mm² (MPa), areas mm².
	NmmRad System = "N-mm-rad"

	// KNmRad uses kilonewtons, metres, radians. Stresses are kN/m² (kPa),
	// areas m².
	KNmRad System = "kN-m-rad"

	// NmmDeg is NmmRad with angles in degrees.
	NmmDeg System = "N-mm-deg"

	// KNmDeg is KNmRad with angles in degrees.
	KNmDeg System = "kN-m-deg"
)

// Dimension classifies a quantity so the right conversion factor applies.
type Dimension int

const (
	Dimensionless Dimension = iota
	Length
	Area
	Force
	Stress
	Angle
)

// factors holds the multipliers taking a quantity into canonical units.
type factors struct {
	length float64
	area   float64
	force  float64
	stress float64
	angle  float64
}

var systemFactors = map[System]factors{
	NmmRad: {length: 1, area: 1, force: 1, stress: 1, angle: 1},
	KNmRad: {length: 1000, area: 1e6, force: 1000, stress: 0.001, angle: 1},
	NmmDeg: {length: 1, area: 1, force: 1, stress: 1, angle: math.Pi / 180},
	KNmDeg: {length: 1000, area: 1e6, force: 1000, stress: 0.001, angle: math.Pi / 180},
}

// Parse validates a unit-system tag. An empty tag resolves to the canonical
// system, matching the library default.
func Parse(tag string) (System, error) {
	if tag == "" {
		return NmmRad, nil
	}
	s := System(tag)
	if _, ok := systemFactors[s]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidUnitSystem, tag)
	}
	return s, nil
}

// Valid reports whether s is a recognized system.
func (s System) Valid() bool {
	_, ok := systemFactors[s]
	return ok
}

func (s System) factor(dim Dimension) float64 {
	f := systemFactors[s]
	switch dim {
	case Length:
		return f.length
	case Area:
		return f.area
	case Force:
		return f.force
	case Stress:
		return f.stress
	case Angle:
		return f.angle
	default:
		return 1
	}
}

// ToCanonical converts v, a quantity of the given dimension expressed in s,
// into canonical units.
func (s System) ToCanonical(dim Dimension, v float64) float64 {
	return v * s.factor(dim)
}

// FromCanonical converts a canonical-unit quantity back into s.
func (s System) FromCanonical(dim Dimension, v float64) float64 {
	return v / s.factor(dim)
}

// Unit labels for reports.

func (s System) LengthUnit() string {
	if s == KNmRad || s == KNmDeg {
		return "m"
	}
	return "mm"
}

func (s System) AreaUnit() string {
	if s == KNmRad || s == KNmDeg {
		return "m²"
	}
	return "mm²"
}

func (s System) ForceUnit() string {
	if s == KNmRad || s == KNmDeg {
		return "kN"
	}
	return "N"
}

func (s System) StressUnit() string {
	if s == KNmRad || s == KNmDeg {
		return "kN/m²"
	}
	return "N/mm²"
}

func (s System) AngleUnit() string {
	if s == NmmDeg || s == KNmDeg {
		return "deg"
	}
	return "rad"
}

// Label returns the unit label for a dimension in s. Dimensionless
// quantities have no label.
func (s System) Label(dim Dimension) string {
	switch dim {
	case Length:
		return s.LengthUnit()
	case Area:
		return s.AreaUnit()
	case Force:
		return s.ForceUnit()
	case Stress:
		return s.StressUnit()
	case Angle:
		return s.AngleUnit()
	default:
		return ""
	}
}

// Systems lists every recognized system tag, canonical first.
func Systems() []System {
	return []System{NmmRad, KNmRad, NmmDeg, KNmDeg}
}
