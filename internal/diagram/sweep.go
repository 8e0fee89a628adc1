// Package diagram renders the V_Rd,max strut-angle sweep as a PNG chart or
// as an ASCII chart for the terminal.
package diagram

import (
	"fmt"
	"image/color"
	"math"

	"github.com/guptarohit/asciigraph"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/mbruyneel/goec2/internal/ec2"
	"github.com/mbruyneel/goec2/internal/shear"
	"github.com/mbruyneel/goec2/internal/units"
)

// SweepPoint is one evaluated strut angle.
type SweepPoint struct {
	ThetaDeg float64 // strut angle in degrees, for axis labelling
	Value    float64 // V_Rd,max in the input's force unit
}

// Sweep evaluates V_Rd,max over the EC2 strut angle range
// (1 <= cot θ <= 2.5, Eq. 6.7N) at n evenly spaced angles. The section
// parameters are taken from in; its Theta field is ignored.
func Sweep(in shear.VRdMaxInput, n int) ([]SweepPoint, error) {
	if n < 2 {
		return nil, fmt.Errorf("sweep needs at least 2 points, got %d", n)
	}
	sys, err := units.Parse(string(in.Units))
	if err != nil {
		return nil, err
	}

	lo, hi := ec2.ThetaLimits()
	pts := make([]SweepPoint, n)
	for i := 0; i < n; i++ {
		theta := lo + (hi-lo)*float64(i)/float64(n-1)
		probe := in
		probe.Theta = sys.FromCanonical(units.Angle, theta)
		v, err := shear.VRdMax(probe)
		if err != nil {
			return nil, err
		}
		pts[i] = SweepPoint{ThetaDeg: theta * 180 / math.Pi, Value: v}
	}
	return pts, nil
}

// ExportPNG writes the sweep as a line chart.
func ExportPNG(pts []SweepPoint, forceUnit, filename string) error {
	p := plot.New()
	p.Title.Text = "Shear Resistance vs Strut Angle"
	p.X.Label.Text = "Strut angle θ (deg)"
	p.Y.Label.Text = fmt.Sprintf("V_Rd,max (%s)", forceUnit)

	xys := make(plotter.XYs, len(pts))
	for i, pt := range pts {
		xys[i] = plotter.XY{X: pt.ThetaDeg, Y: pt.Value}
	}
	line, err := plotter.NewLine(xys)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}

	p.Add(plotter.NewGrid())
	p.Add(line)

	return p.Save(8*vg.Inch, 6*vg.Inch, filename)
}

// ASCII renders the sweep as a terminal chart.
func ASCII(pts []SweepPoint, forceUnit string) string {
	values := make([]float64, len(pts))
	for i, pt := range pts {
		values[i] = pt.Value
	}
	caption := fmt.Sprintf("V_Rd,max (%s) for θ = %.1f°..%.1f°",
		forceUnit, pts[0].ThetaDeg, pts[len(pts)-1].ThetaDeg)
	return asciigraph.Plot(values,
		asciigraph.Height(12),
		asciigraph.Width(60),
		asciigraph.Caption(caption),
	)
}
