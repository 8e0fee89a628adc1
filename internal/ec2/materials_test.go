package ec2

import (
	"math"
	"testing"
)

func approx(t *testing.T, name string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s = %.9f, want %.9f", name, got, want)
	}
}

func TestFcd(t *testing.T) {
	approx(t, "Fcd(20, 1.5)", Fcd(20, 1.5), 13.333333333, 1e-8)
	approx(t, "Fcd(30, 1.5)", Fcd(30, 1.5), 20.0, 1e-12)
}

func TestNu1BranchSwitch(t *testing.T) {
	// Shear reinforcement below 80% of fyk: the flat 0.6 applies
	approx(t, "Nu1 low fywk", Nu1(20, 500, 300), 0.6, 1e-12)
	// At or above 80%: the fck-dependent reduction applies
	approx(t, "Nu1 high fywk", Nu1(20, 500, 500), 0.552, 1e-12)
	approx(t, "Nu1 boundary", Nu1(25, 500, 400), 0.6*(1-25.0/250.0), 1e-12)
}

func TestLeverArm(t *testing.T) {
	approx(t, "LeverArm(539)", LeverArm(539), 485.1, 1e-9)
}

func TestSizeFactorCap(t *testing.T) {
	// Shallow sections hit the 2.0 cap: d = 100 gives 1 + sqrt(2) > 2
	approx(t, "SizeFactor(100)", SizeFactor(100), 2.0, 1e-12)
	approx(t, "SizeFactor(539)", SizeFactor(539), 1+math.Sqrt(200.0/539.0), 1e-12)
}

func TestVMin(t *testing.T) {
	k := SizeFactor(539)
	approx(t, "VMin", VMin(k, 20), 0.035*math.Pow(k, 1.5)*math.Sqrt(20), 1e-12)
}

func TestRhoLCap(t *testing.T) {
	approx(t, "RhoL(308, 250, 539)", RhoL(308, 250, 539), 308.0/(250*539), 1e-15)
	// 4000 mm² in a 250x539 web exceeds the 2% cap
	approx(t, "RhoL capped", RhoL(4000, 250, 539), RhoLMax, 1e-15)
}

func TestThetaLimits(t *testing.T) {
	lo, hi := ThetaLimits()
	approx(t, "theta lower", lo, math.Atan(0.4), 1e-12)
	approx(t, "theta upper", hi, math.Pi/4, 1e-12)
	if lo >= hi {
		t.Fatalf("theta limits out of order: %g >= %g", lo, hi)
	}
}
