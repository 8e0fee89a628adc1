package shear

import (
	"fmt"
	"math"

	"github.com/mbruyneel/goec2/internal/ec2"
	"github.com/mbruyneel/goec2/internal/units"
)

// VRdMaxInput holds the parameters of a V_Rd,max check. All quantities are
// expressed in the Units system (canonical N-mm-rad when empty).
type VRdMaxInput struct {
	Bw    float64 // smallest web width in the tensile area
	D     float64 // effective depth
	Fck   float64 // characteristic concrete strength
	Fyk   float64 // characteristic yield strength of reinforcement
	Fywk  float64 // characteristic yield strength of shear reinforcement
	Theta float64 // strut angle

	// Optional, zero means the EC2 default.
	AlphaCW float64 // compression chord stress coefficient (default 1.0)
	GammaC  float64 // concrete partial safety factor (default 1.5)

	Units units.System
}

// VRdMaxResult bundles the resistance with its inputs and every captured
// sub-term, all re-expressed in the caller's unit system.
type VRdMaxResult struct {
	// Echoed inputs
	Bw      float64
	D       float64
	Fck     float64
	Fyk     float64
	Fywk    float64
	Theta   float64
	AlphaCW float64
	GammaC  float64
	Units   units.System

	// Outputs
	Value    float64 // V_Rd,max
	Z        float64 // lever arm
	Fcd      float64 // design compressive strength
	Nu1      float64 // strength reduction factor
	CotTheta float64
	TanTheta float64

	Intermediates IntermediateRecord
}

// VRdMax calculates the maximum design shear resistance and returns the
// bare scalar. Use VRdMaxDetailed for the sub-terms.
func VRdMax(in VRdMaxInput) (float64, error) {
	res, err := VRdMaxDetailed(in)
	if err != nil {
		return 0, err
	}
	return res.Value, nil
}

// VRdMaxDetailed calculates the maximum design shear resistance limited by
// crushing of the concrete compression strut
// EN 1992-1-1 Section 6.2.3(3), Eq. 6.9:
//
//	V_Rd,max = α_cw · b_w · z · ν₁ · f_cd / (cot θ + tan θ)
func VRdMaxDetailed(in VRdMaxInput) (*VRdMaxResult, error) {
	sys, err := units.Parse(string(in.Units))
	if err != nil {
		return nil, err
	}

	required := []struct {
		name string
		v    float64
	}{
		{"bw", in.Bw},
		{"d", in.D},
		{"fck", in.Fck},
		{"fyk", in.Fyk},
		{"fywk", in.Fywk},
	}
	for _, f := range required {
		if f.v == 0 || math.IsNaN(f.v) {
			return nil, fmt.Errorf("%w: %s", ErrMissingArgument, f.name)
		}
		if f.v < 0 {
			return nil, fmt.Errorf("%w: %s must be positive, got %g", ErrOutOfDomain, f.name, f.v)
		}
	}
	// θ = 0 already sits on the domain boundary, so the domain check below
	// covers it; only NaN counts as an omitted angle.
	if math.IsNaN(in.Theta) {
		return nil, fmt.Errorf("%w: theta", ErrMissingArgument)
	}

	alphaCW := in.AlphaCW
	if alphaCW == 0 {
		alphaCW = ec2.AlphaCW
	}
	gammaC := in.GammaC
	if gammaC == 0 {
		gammaC = ec2.GammaC
	}
	if math.IsNaN(alphaCW) || math.IsNaN(gammaC) {
		return nil, fmt.Errorf("%w: alpha_cw or gamma_c", ErrMissingArgument)
	}
	if gammaC < 0 || alphaCW < 0 {
		return nil, fmt.Errorf("%w: alpha_cw and gamma_c must be positive", ErrOutOfDomain)
	}

	// Normalize to N-mm-rad
	bw := sys.ToCanonical(units.Length, in.Bw)
	d := sys.ToCanonical(units.Length, in.D)
	fck := sys.ToCanonical(units.Stress, in.Fck)
	fyk := sys.ToCanonical(units.Stress, in.Fyk)
	fywk := sys.ToCanonical(units.Stress, in.Fywk)
	theta := sys.ToCanonical(units.Angle, in.Theta)

	// Strictly inside (0, π/2): cot θ and tan θ diverge at the boundaries
	if theta <= 0 || theta >= math.Pi/2 {
		return nil, fmt.Errorf("%w: strut angle must lie in (0, π/2) rad, got %g", ErrOutOfDomain, theta)
	}

	z := ec2.LeverArm(d)
	fcd := ec2.Fcd(fck, gammaC)
	nu1 := ec2.Nu1(fck, fyk, fywk)
	tanTheta := math.Tan(theta)
	cotTheta := 1 / tanTheta

	value := alphaCW * bw * z * nu1 * fcd / (cotTheta + tanTheta)

	rec := IntermediateRecord{
		{Name: "alpha_cw", Value: alphaCW, Dim: units.Dimensionless},
		{Name: "nu_1", Value: nu1, Dim: units.Dimensionless},
		{Name: "f_cd", Value: fcd, Dim: units.Stress},
		{Name: "z", Value: z, Dim: units.Length},
		{Name: "cot_theta", Value: cotTheta, Dim: units.Dimensionless},
		{Name: "tan_theta", Value: tanTheta, Dim: units.Dimensionless},
	}

	return &VRdMaxResult{
		Bw:      in.Bw,
		D:       in.D,
		Fck:     in.Fck,
		Fyk:     in.Fyk,
		Fywk:    in.Fywk,
		Theta:   in.Theta,
		AlphaCW: alphaCW,
		GammaC:  gammaC,
		Units:   sys,

		Value:    sys.FromCanonical(units.Force, value),
		Z:        sys.FromCanonical(units.Length, z),
		Fcd:      sys.FromCanonical(units.Stress, fcd),
		Nu1:      nu1,
		CotTheta: cotTheta,
		TanTheta: tanTheta,

		Intermediates: rec.inSystem(sys),
	}, nil
}
