package ec2

import "math"

// EN 1992-1-1 Material and Shear Constants

const (
	// Partial safety factors (Section 2.4.2.4, Table 2.1N)
	GammaC = 1.5  // concrete, persistent and transient situations
	GammaS = 1.15 // reinforcing steel

	// Coefficient for the state of stress in the compression chord
	// Section 6.2.3(3) - 1.0 for non-prestressed structures
	AlphaCW = 1.0

	// Coefficient on the axial-stress term of V_Rd,c (Section 6.2.2(1))
	K1 = 0.15

	// Longitudinal reinforcement ratio cap in V_Rd,c (Section 6.2.2(1))
	RhoLMax = 0.02

	// Size effect factor cap (Section 6.2.2(1))
	KMax = 2.0

	// Lever arm approximation z = 0.9d (Section 6.2.3(1))
	LeverArmRatio = 0.9

	// Strut angle limits, 1 <= cot θ <= 2.5 (Section 6.2.3(2), Eq. 6.7N)
	CotThetaMin = 1.0
	CotThetaMax = 2.5
)

// Fcd calculates the design compressive strength of concrete
// EN 1992-1-1 Section 3.1.6, Eq. 3.15 (α_cc taken as 1.0)
func Fcd(fck, gammaC float64) float64 {
	return fck / gammaC
}

// Nu1 calculates the strength reduction factor for concrete cracked in shear
// EN 1992-1-1 Section 6.2.3(3), Eq. 6.6N and its Note
// When the design stress of the shear reinforcement stays below 80% of fyk,
// ν₁ may be taken as 0.6; otherwise ν₁ = 0.6(1 - fck/250)
func Nu1(fck, fyk, fywk float64) float64 {
	if fywk < 0.8*fyk {
		return 0.6
	}
	return 0.6 * (1 - fck/250.0)
}

// LeverArm calculates the lever arm of internal forces from the effective depth
// EN 1992-1-1 Section 6.2.3(1)
func LeverArm(d float64) float64 {
	return LeverArmRatio * d
}

// SizeFactor calculates the size effect factor k for V_Rd,c
// EN 1992-1-1 Section 6.2.2(1)
// k = 1 + √(200/d) <= 2.0, with d in mm
func SizeFactor(d float64) float64 {
	return math.Min(1+math.Sqrt(200.0/d), KMax)
}

// VMin calculates the minimum shear stress resistance
// EN 1992-1-1 Section 6.2.2(1), Eq. 6.3N
func VMin(k, fck float64) float64 {
	return 0.035 * math.Pow(k, 1.5) * math.Sqrt(fck)
}

// RhoL calculates the longitudinal reinforcement ratio for V_Rd,c
// EN 1992-1-1 Section 6.2.2(1)
// ρ_l = A_sl / (b_w · d) <= 0.02
func RhoL(asl, bw, d float64) float64 {
	return math.Min(asl/(bw*d), RhoLMax)
}

// ThetaLimits returns the strut angle range corresponding to the cot θ
// limits of Eq. 6.7N, in radians. The lower angle comes from cot θ = 2.5,
// the upper from cot θ = 1.
func ThetaLimits() (min, max float64) {
	return math.Atan(1 / CotThetaMax), math.Atan(1 / CotThetaMin)
}
