package report

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/mbruyneel/goec2/internal/shear"
	"github.com/mbruyneel/goec2/internal/units"
)

func assertPDF(t *testing.T, path string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	if len(data) < 4 || string(data[:4]) != "%PDF" {
		t.Errorf("%s does not look like a PDF", path)
	}
}

func TestVRdMaxSheet(t *testing.T) {
	res, err := shear.VRdMaxDetailed(shear.VRdMaxInput{
		Bw: 250, D: 539, Fck: 20, Fyk: 500, Fywk: 500,
		Theta: math.Pi / 4, Units: units.NmmRad,
	})
	if err != nil {
		t.Fatalf("VRdMaxDetailed failed: %v", err)
	}
	path := filepath.Join(t.TempDir(), "vrdmax.pdf")
	if err := VRdMaxSheet(res, path); err != nil {
		t.Fatalf("VRdMaxSheet failed: %v", err)
	}
	assertPDF(t, path)
}

func TestVRdCSheet(t *testing.T) {
	res, err := shear.VRdCDetailed(shear.VRdCInput{
		CRdc: 0.12, Asl: 308, Fck: 20, SigmaCp: 0.66667,
		Bw: 250, D: 539, Units: units.NmmRad,
	})
	if err != nil {
		t.Fatalf("VRdCDetailed failed: %v", err)
	}
	path := filepath.Join(t.TempDir(), "vrdc.pdf")
	if err := VRdCSheet(res, path); err != nil {
		t.Fatalf("VRdCSheet failed: %v", err)
	}
	assertPDF(t, path)
}
