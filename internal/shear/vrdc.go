package shear

import (
	"fmt"
	"math"

	"github.com/mbruyneel/goec2/internal/ec2"
	"github.com/mbruyneel/goec2/internal/units"
)

// VRdCInput holds the parameters of a V_Rd,c check. All quantities are
// expressed in the Units system (canonical N-mm-rad when empty).
type VRdCInput struct {
	CRdc    float64 // C_Rd,c coefficient, recommended 0.18/γ_c
	Asl     float64 // area of the anchored tensile reinforcement
	Fck     float64 // characteristic concrete strength
	SigmaCp float64 // concrete compressive stress N_Ed/A_c; zero is valid (no axial force)
	Bw      float64 // smallest web width in the tensile area
	D       float64 // effective depth

	Units units.System
}

// VRdCResult bundles the resistance with its inputs and every captured
// sub-term, all re-expressed in the caller's unit system.
type VRdCResult struct {
	// Echoed inputs
	CRdc    float64
	Asl     float64
	Fck     float64
	SigmaCp float64
	Bw      float64
	D       float64
	Units   units.System

	// Outputs
	Value   float64 // V_Rd,c, the greater of the two branches
	RhoL    float64 // longitudinal reinforcement ratio
	K       float64 // size effect factor
	VMin    float64 // minimum shear stress resistance
	K1      float64
	Branch1 float64 // Eq. 6.2a value
	Branch2 float64 // Eq. 6.2b value

	Intermediates IntermediateRecord
}

// VRdC calculates the design shear resistance of a member without shear
// reinforcement and returns the bare scalar.
func VRdC(in VRdCInput) (float64, error) {
	res, err := VRdCDetailed(in)
	if err != nil {
		return 0, err
	}
	return res.Value, nil
}

// VRdCDetailed calculates the design shear resistance of a member without
// shear reinforcement
// EN 1992-1-1 Section 6.2.2(1), Eqs. 6.2a and 6.2b:
//
//	V_Rd,c = max( [C_Rd,c · k · (100 · ρ_l · f_ck)^(1/3) + k₁ · σ_cp] · b_w · d ,
//	              (v_min + k₁ · σ_cp) · b_w · d )
func VRdCDetailed(in VRdCInput) (*VRdCResult, error) {
	sys, err := units.Parse(string(in.Units))
	if err != nil {
		return nil, err
	}

	required := []struct {
		name string
		v    float64
	}{
		{"crdc", in.CRdc},
		{"asl", in.Asl},
		{"fck", in.Fck},
		{"bw", in.Bw},
		{"d", in.D},
	}
	for _, f := range required {
		if f.v == 0 || math.IsNaN(f.v) {
			return nil, fmt.Errorf("%w: %s", ErrMissingArgument, f.name)
		}
		if f.v < 0 {
			return nil, fmt.Errorf("%w: %s must be positive, got %g", ErrOutOfDomain, f.name, f.v)
		}
	}
	// σ_cp = 0 means no axial force, which is a legitimate state
	if math.IsNaN(in.SigmaCp) {
		return nil, fmt.Errorf("%w: sigma_cp", ErrMissingArgument)
	}
	if in.SigmaCp < 0 {
		return nil, fmt.Errorf("%w: sigma_cp must not be negative, got %g", ErrOutOfDomain, in.SigmaCp)
	}

	// Normalize to N-mm-rad
	crdc := in.CRdc
	asl := sys.ToCanonical(units.Area, in.Asl)
	fck := sys.ToCanonical(units.Stress, in.Fck)
	sigmaCp := sys.ToCanonical(units.Stress, in.SigmaCp)
	bw := sys.ToCanonical(units.Length, in.Bw)
	d := sys.ToCanonical(units.Length, in.D)

	rhoL := ec2.RhoL(asl, bw, d)
	k := ec2.SizeFactor(d)
	vMin := ec2.VMin(k, fck)

	branch1 := (crdc*k*math.Cbrt(100*rhoL*fck) + ec2.K1*sigmaCp) * bw * d
	branch2 := (vMin + ec2.K1*sigmaCp) * bw * d
	value := math.Max(branch1, branch2)

	rec := IntermediateRecord{
		{Name: "rho_l", Value: rhoL, Dim: units.Dimensionless},
		{Name: "k", Value: k, Dim: units.Dimensionless},
		{Name: "v_min", Value: vMin, Dim: units.Stress},
		{Name: "k_1", Value: ec2.K1, Dim: units.Dimensionless},
		{Name: "v_rdc_1", Value: branch1, Dim: units.Force},
		{Name: "v_rdc_2", Value: branch2, Dim: units.Force},
	}

	return &VRdCResult{
		CRdc:    in.CRdc,
		Asl:     in.Asl,
		Fck:     in.Fck,
		SigmaCp: in.SigmaCp,
		Bw:      in.Bw,
		D:       in.D,
		Units:   sys,

		Value:   sys.FromCanonical(units.Force, value),
		RhoL:    rhoL,
		K:       k,
		VMin:    sys.FromCanonical(units.Stress, vMin),
		K1:      ec2.K1,
		Branch1: sys.FromCanonical(units.Force, branch1),
		Branch2: sys.FromCanonical(units.Force, branch2),

		Intermediates: rec.inSystem(sys),
	}, nil
}
