package shear

import (
	"errors"
	"math"
	"testing"

	"github.com/mbruyneel/goec2/internal/units"
)

// The worked example: 250x~600 web, C20/25, B500 steel, 45° strut.
// Hand recombination: z = 485.1, f_cd = 20/1.5, ν₁ = 0.552, cot = tan = 1,
// giving 1·250·485.1·0.552·(20/1.5)/2 = 446292 N.
func workedInput() VRdMaxInput {
	return VRdMaxInput{
		Bw:    250,
		D:     539,
		Fck:   20,
		Fyk:   500,
		Fywk:  500,
		Theta: math.Pi / 4,
		Units: units.NmmRad,
	}
}

func TestVRdMaxWorkedCase(t *testing.T) {
	got, err := VRdMax(workedInput())
	if err != nil {
		t.Fatalf("VRdMax failed: %v", err)
	}
	want := 446292.0
	if math.Abs(got-want) > 1e-6*want {
		t.Errorf("VRdMax = %.6f N, want %.1f N", got, want)
	}
	if got <= 0 {
		t.Errorf("VRdMax = %g, want positive", got)
	}
}

func TestVRdMaxDetailedSubTerms(t *testing.T) {
	res, err := VRdMaxDetailed(workedInput())
	if err != nil {
		t.Fatalf("VRdMaxDetailed failed: %v", err)
	}
	cases := []struct {
		name string
		got  float64
		want float64
	}{
		{"z", res.Z, 485.1},
		{"fcd", res.Fcd, 20.0 / 1.5},
		{"nu1", res.Nu1, 0.552},
		{"cot", res.CotTheta, 1},
		{"tan", res.TanTheta, 1},
		{"alpha_cw", res.AlphaCW, 1},
		{"gamma_c", res.GammaC, 1.5},
	}
	for _, c := range cases {
		if math.Abs(c.got-c.want) > 1e-9*math.Abs(c.want)+1e-12 {
			t.Errorf("%s = %.9f, want %.9f", c.name, c.got, c.want)
		}
	}
}

func TestVRdMaxDeterministic(t *testing.T) {
	a, err := VRdMax(workedInput())
	if err != nil {
		t.Fatalf("first call failed: %v", err)
	}
	b, err := VRdMax(workedInput())
	if err != nil {
		t.Fatalf("second call failed: %v", err)
	}
	if a != b {
		t.Errorf("identical inputs gave %v and %v", a, b)
	}
}

func TestVRdMaxScalarMatchesDetailed(t *testing.T) {
	scalar, err := VRdMax(workedInput())
	if err != nil {
		t.Fatalf("VRdMax failed: %v", err)
	}
	detailed, err := VRdMaxDetailed(workedInput())
	if err != nil {
		t.Fatalf("VRdMaxDetailed failed: %v", err)
	}
	if scalar != detailed.Value {
		t.Errorf("scalar %v != detailed %v", scalar, detailed.Value)
	}
}

// Recombining the returned sub-terms through Eq. 6.9 must reproduce the
// returned value, in every unit system.
func TestVRdMaxIntermediateRecombination(t *testing.T) {
	inputs := map[units.System]VRdMaxInput{
		units.NmmRad: workedInput(),
		units.KNmRad: {Bw: 0.25, D: 0.539, Fck: 20000, Fyk: 500000, Fywk: 500000, Theta: math.Pi / 4, Units: units.KNmRad},
		units.NmmDeg: {Bw: 250, D: 539, Fck: 20, Fyk: 500, Fywk: 500, Theta: 45, Units: units.NmmDeg},
		units.KNmDeg: {Bw: 0.25, D: 0.539, Fck: 20000, Fyk: 500000, Fywk: 500000, Theta: 45, Units: units.KNmDeg},
	}
	for sys, in := range inputs {
		res, err := VRdMaxDetailed(in)
		if err != nil {
			t.Fatalf("%s: VRdMaxDetailed failed: %v", sys, err)
		}
		get := func(name string) float64 {
			v, ok := res.Intermediates.Get(name)
			if !ok {
				t.Fatalf("%s: intermediate %q missing", sys, name)
			}
			return v
		}
		// Sub-terms come back in the caller's units; normalize before recombining.
		alphaCW := get("alpha_cw")
		nu1 := get("nu_1")
		fcd := sys.ToCanonical(units.Stress, get("f_cd"))
		z := sys.ToCanonical(units.Length, get("z"))
		cot := get("cot_theta")
		tan := get("tan_theta")
		bw := sys.ToCanonical(units.Length, res.Bw)

		recombined := sys.FromCanonical(units.Force, alphaCW*bw*z*nu1*fcd/(cot+tan))
		if math.Abs(recombined-res.Value) > 1e-9*math.Abs(res.Value) {
			t.Errorf("%s: recombined %.9f, returned %.9f", sys, recombined, res.Value)
		}
	}
}

func TestVRdMaxUnitSystemEquivalence(t *testing.T) {
	n, err := VRdMax(workedInput())
	if err != nil {
		t.Fatalf("N-mm-rad failed: %v", err)
	}
	kn, err := VRdMax(VRdMaxInput{
		Bw: 0.25, D: 0.539, Fck: 20000, Fyk: 500000, Fywk: 500000,
		Theta: math.Pi / 4, Units: units.KNmRad,
	})
	if err != nil {
		t.Fatalf("kN-m-rad failed: %v", err)
	}
	if math.Abs(kn*1000-n) > 1e-6*n {
		t.Errorf("kN-m-rad gave %.6f kN, N-mm-rad gave %.6f N", kn, n)
	}

	deg, err := VRdMax(VRdMaxInput{
		Bw: 250, D: 539, Fck: 20, Fyk: 500, Fywk: 500,
		Theta: 45, Units: units.NmmDeg,
	})
	if err != nil {
		t.Fatalf("N-mm-deg failed: %v", err)
	}
	if math.Abs(deg-n) > 1e-9*n {
		t.Errorf("N-mm-deg gave %.6f, N-mm-rad gave %.6f", deg, n)
	}
}

func TestVRdMaxDomainBoundaries(t *testing.T) {
	for _, theta := range []float64{0, math.Pi / 2, 3, math.Pi} {
		in := workedInput()
		in.Theta = theta
		_, err := VRdMax(in)
		if !errors.Is(err, ErrOutOfDomain) {
			t.Errorf("theta=%g: err = %v, want ErrOutOfDomain", theta, err)
		}
	}
	// Negative angle is outside (0, π/2) as well
	in := workedInput()
	in.Theta = -math.Pi / 4
	if _, err := VRdMax(in); !errors.Is(err, ErrOutOfDomain) {
		t.Errorf("negative theta: want ErrOutOfDomain, got %v", err)
	}
	// 90° expressed in degrees must be caught after angle normalization
	in = workedInput()
	in.Theta = 90
	in.Units = units.NmmDeg
	if _, err := VRdMax(in); !errors.Is(err, ErrOutOfDomain) {
		t.Errorf("theta=90deg: want ErrOutOfDomain, got %v", err)
	}
	// Interior angle succeeds
	in = workedInput()
	in.Theta = 0.6
	if _, err := VRdMax(in); err != nil {
		t.Errorf("theta=0.6 rad failed: %v", err)
	}
}

func TestVRdMaxMissingArguments(t *testing.T) {
	mutations := map[string]func(*VRdMaxInput){
		"bw":    func(in *VRdMaxInput) { in.Bw = 0 },
		"d":     func(in *VRdMaxInput) { in.D = 0 },
		"fck":   func(in *VRdMaxInput) { in.Fck = 0 },
		"fyk":   func(in *VRdMaxInput) { in.Fyk = 0 },
		"fywk":  func(in *VRdMaxInput) { in.Fywk = 0 },
		"theta": func(in *VRdMaxInput) { in.Theta = math.NaN() },
		"nan":   func(in *VRdMaxInput) { in.D = math.NaN() },
	}
	for name, mutate := range mutations {
		in := workedInput()
		mutate(&in)
		_, err := VRdMax(in)
		if !errors.Is(err, ErrMissingArgument) {
			t.Errorf("%s: err = %v, want ErrMissingArgument", name, err)
		}
	}
}

func TestVRdMaxNegativeInput(t *testing.T) {
	in := workedInput()
	in.Bw = -250
	if _, err := VRdMax(in); !errors.Is(err, ErrOutOfDomain) {
		t.Errorf("negative bw: want ErrOutOfDomain, got %v", err)
	}
}

func TestVRdMaxInvalidUnitSystem(t *testing.T) {
	in := workedInput()
	in.Units = "furlong-stone-turn"
	_, err := VRdMax(in)
	if !errors.Is(err, units.ErrInvalidUnitSystem) {
		t.Errorf("err = %v, want ErrInvalidUnitSystem", err)
	}
}

func TestVRdMaxNu1FlatBranch(t *testing.T) {
	// fywk below 80% of fyk switches ν₁ to the flat 0.6
	in := workedInput()
	in.Fywk = 300
	res, err := VRdMaxDetailed(in)
	if err != nil {
		t.Fatalf("VRdMaxDetailed failed: %v", err)
	}
	if res.Nu1 != 0.6 {
		t.Errorf("nu1 = %v, want 0.6", res.Nu1)
	}
}
