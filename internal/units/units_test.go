package units

import (
	"errors"
	"math"
	"testing"
)

func TestParseRecognizedSystems(t *testing.T) {
	for _, sys := range Systems() {
		got, err := Parse(string(sys))
		if err != nil {
			t.Errorf("Parse(%q) failed: %v", sys, err)
		}
		if got != sys {
			t.Errorf("Parse(%q) = %q", sys, got)
		}
	}
}

func TestParseEmptyDefaultsToCanonical(t *testing.T) {
	got, err := Parse("")
	if err != nil {
		t.Fatalf("Parse(\"\") failed: %v", err)
	}
	if got != NmmRad {
		t.Errorf("Parse(\"\") = %q, want %q", got, NmmRad)
	}
}

func TestParseUnrecognizedSystem(t *testing.T) {
	_, err := Parse("furlong-stone-turn")
	if !errors.Is(err, ErrInvalidUnitSystem) {
		t.Fatalf("Parse(furlong-stone-turn) = %v, want ErrInvalidUnitSystem", err)
	}
}

func TestCanonicalConversions(t *testing.T) {
	cases := []struct {
		sys  System
		dim  Dimension
		in   float64
		want float64
	}{
		{NmmRad, Length, 250, 250},
		{KNmRad, Length, 0.25, 250},          // m -> mm
		{KNmRad, Area, 0.000308, 308},        // m² -> mm²
		{KNmRad, Force, 446.292, 446292},     // kN -> N
		{KNmRad, Stress, 20000, 20},          // kN/m² -> N/mm²
		{NmmDeg, Angle, 45, math.Pi / 4},     // deg -> rad
		{KNmDeg, Angle, 90, math.Pi / 2},     // deg -> rad
		{KNmDeg, Length, 0.539, 539},         // m -> mm
		{NmmRad, Dimensionless, 0.552, 0.552},
	}
	for _, c := range cases {
		got := c.sys.ToCanonical(c.dim, c.in)
		if math.Abs(got-c.want) > 1e-9*math.Abs(c.want)+1e-12 {
			t.Errorf("%s ToCanonical(dim=%d, %g) = %g, want %g", c.sys, c.dim, c.in, got, c.want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	dims := []Dimension{Dimensionless, Length, Area, Force, Stress, Angle}
	values := []float64{0.002, 0.66667, 1, 250, 539, 446292}
	for _, sys := range Systems() {
		for _, dim := range dims {
			for _, v := range values {
				back := sys.FromCanonical(dim, sys.ToCanonical(dim, v))
				if math.Abs(back-v) > 1e-12*math.Abs(v) {
					t.Errorf("%s dim=%d: round trip of %g gave %g", sys, dim, v, back)
				}
			}
		}
	}
}

func TestUnitLabels(t *testing.T) {
	if got := NmmRad.ForceUnit(); got != "N" {
		t.Errorf("NmmRad force unit = %q", got)
	}
	if got := KNmDeg.ForceUnit(); got != "kN" {
		t.Errorf("KNmDeg force unit = %q", got)
	}
	if got := KNmRad.StressUnit(); got != "kN/m²" {
		t.Errorf("KNmRad stress unit = %q", got)
	}
	if got := NmmDeg.AngleUnit(); got != "deg" {
		t.Errorf("NmmDeg angle unit = %q", got)
	}
	if got := NmmRad.Label(Dimensionless); got != "" {
		t.Errorf("dimensionless label = %q, want empty", got)
	}
}
