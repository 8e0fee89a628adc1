package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/mbruyneel/goec2/internal/diagram"
	"github.com/mbruyneel/goec2/internal/report"
	"github.com/mbruyneel/goec2/internal/shear"
	"github.com/mbruyneel/goec2/internal/units"
	"github.com/spf13/cobra"
)

var (
	// Section and material inputs
	vrdmaxBw    float64
	vrdmaxD     float64
	vrdmaxFck   float64
	vrdmaxFyk   float64
	vrdmaxFywk  float64
	vrdmaxTheta float64

	// EC2 coefficients
	vrdmaxAlphaCW float64
	vrdmaxGammaC  float64

	// Options
	vrdmaxUnits   string
	vrdmaxPDF     string
	vrdmaxDiagram string
	vrdmaxSweep   bool
)

var vrdmaxCmd = &cobra.Command{
	Use:   "vrdmax",
	Short: "Maximum shear resistance V_Rd,max (strut crushing)",
	Long: `Calculate the maximum design shear resistance V_Rd,max, limited by
crushing of the concrete compression strut.

The calculation follows EN 1992-1-1 Section 6.2.3(3), Eq. 6.9:

  V_Rd,max = α_cw · b_w · z · ν₁ · f_cd / (cot θ + tan θ)

with z = 0.9d, f_cd = f_ck/γ_c and ν₁ per the Note to Eq. 6.6N.
The strut angle must lie strictly inside (0, π/2); the EC2 design range
is 1 ≤ cot θ ≤ 2.5 (Eq. 6.7N).

Examples:
  # 250x600 web, C20/25, B500 reinforcement, θ = 45°
  goec2 shear vrdmax --bw 250 --d 539 --fck 20 --fyk 500 --fywk 500 --theta 0.7853981634

  # Same section with angles in degrees
  goec2 shear vrdmax --bw 250 --d 539 --fck 20 --fyk 500 --fywk 500 --theta 45 --units N-mm-deg

  # Export a PDF calculation sheet and a strut angle sweep chart
  goec2 shear vrdmax --bw 250 --d 539 --fck 20 --fyk 500 --fywk 500 --theta 45 \
    --units N-mm-deg --pdf vrdmax.pdf --diagram sweep.png`,
	Run: runVRdMax,
}

func init() {
	shearCmd.AddCommand(vrdmaxCmd)

	// Geometry flags
	vrdmaxCmd.Flags().Float64VarP(&vrdmaxBw, "bw", "b", 0, "Smallest web width in the tensile area [required]")
	vrdmaxCmd.Flags().Float64Var(&vrdmaxD, "d", 0, "Effective depth [required]")

	// Material flags
	vrdmaxCmd.Flags().Float64Var(&vrdmaxFck, "fck", 0, "Characteristic concrete strength f_ck [required]")
	vrdmaxCmd.Flags().Float64Var(&vrdmaxFyk, "fyk", 0, "Characteristic reinforcement yield strength f_yk [required]")
	vrdmaxCmd.Flags().Float64Var(&vrdmaxFywk, "fywk", 0, "Characteristic shear reinforcement yield strength f_ywk [required]")

	// Strut angle
	vrdmaxCmd.Flags().Float64VarP(&vrdmaxTheta, "theta", "t", 0, "Strut angle θ [required]")

	// EC2 coefficients
	vrdmaxCmd.Flags().Float64Var(&vrdmaxAlphaCW, "alpha-cw", 1.0, "Compression chord stress coefficient α_cw")
	vrdmaxCmd.Flags().Float64Var(&vrdmaxGammaC, "gamma-c", 1.5, "Concrete partial safety factor γ_c")

	// Options
	vrdmaxCmd.Flags().StringVarP(&vrdmaxUnits, "units", "u", "N-mm-rad", "Unit system (N-mm-rad, kN-m-rad, N-mm-deg, kN-m-deg)")
	vrdmaxCmd.Flags().StringVar(&vrdmaxPDF, "pdf", "", "Write a PDF calculation sheet to this file")
	vrdmaxCmd.Flags().StringVar(&vrdmaxDiagram, "diagram", "", "Write a θ-sweep PNG chart to this file")
	vrdmaxCmd.Flags().BoolVar(&vrdmaxSweep, "sweep", false, "Print a θ-sweep ASCII chart")

	// Mark required flags
	vrdmaxCmd.MarkFlagRequired("bw")
	vrdmaxCmd.MarkFlagRequired("d")
	vrdmaxCmd.MarkFlagRequired("fck")
	vrdmaxCmd.MarkFlagRequired("fyk")
	vrdmaxCmd.MarkFlagRequired("fywk")
	vrdmaxCmd.MarkFlagRequired("theta")
}

func runVRdMax(cmd *cobra.Command, args []string) {
	in := shear.VRdMaxInput{
		Bw:      vrdmaxBw,
		D:       vrdmaxD,
		Fck:     vrdmaxFck,
		Fyk:     vrdmaxFyk,
		Fywk:    vrdmaxFywk,
		Theta:   vrdmaxTheta,
		AlphaCW: vrdmaxAlphaCW,
		GammaC:  vrdmaxGammaC,
		Units:   units.System(vrdmaxUnits),
	}

	result, err := shear.VRdMaxDetailed(in)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	sys := result.Units

	// Print results
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     MAXIMUM SHEAR RESISTANCE V_Rd,max - EN 1992-1-1 §6.2.3")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	// Input summary
	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Web Width (b_w):\t%.2f %s\n", result.Bw, sys.LengthUnit())
	fmt.Fprintf(w, "  Effective Depth (d):\t%.2f %s\n", result.D, sys.LengthUnit())
	fmt.Fprintf(w, "  f_ck:\t%.2f %s\n", result.Fck, sys.StressUnit())
	fmt.Fprintf(w, "  f_yk:\t%.2f %s\n", result.Fyk, sys.StressUnit())
	fmt.Fprintf(w, "  f_ywk:\t%.2f %s\n", result.Fywk, sys.StressUnit())
	fmt.Fprintf(w, "  Strut Angle (θ):\t%.4f %s\n", result.Theta, sys.AngleUnit())
	fmt.Fprintf(w, "  α_cw:\t%.2f\n", result.AlphaCW)
	fmt.Fprintf(w, "  γ_c:\t%.2f\n", result.GammaC)
	fmt.Fprintf(w, "  Unit System:\t%s\n", sys)
	w.Flush()
	fmt.Println()

	// Intermediate values
	fmt.Println("INTERMEDIATE VALUES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Lever Arm (z = 0.9d):\t%.4f %s\n", result.Z, sys.LengthUnit())
	fmt.Fprintf(w, "  Design Strength (f_cd):\t%.4f %s\n", result.Fcd, sys.StressUnit())
	fmt.Fprintf(w, "  Strength Reduction (ν₁):\t%.4f\n", result.Nu1)
	fmt.Fprintf(w, "  cot θ:\t%.6f\n", result.CotTheta)
	fmt.Fprintf(w, "  tan θ:\t%.6f\n", result.TanTheta)
	w.Flush()
	fmt.Println()

	// Result
	fmt.Printf("  ╔═════════════════════════════════════════╗\n")
	fmt.Printf("  ║  V_Rd,max = %.3f %s     \n", result.Value, sys.ForceUnit())
	fmt.Printf("  ╚═════════════════════════════════════════╝\n")
	fmt.Println()

	if vrdmaxPDF != "" {
		if err := report.VRdMaxSheet(result, vrdmaxPDF); err != nil {
			fmt.Printf("Error writing PDF: %v\n", err)
		} else {
			fmt.Printf("  Calculation sheet written to %s\n", vrdmaxPDF)
		}
	}

	if vrdmaxDiagram != "" || vrdmaxSweep {
		pts, err := diagram.Sweep(in, 50)
		if err != nil {
			fmt.Printf("Error building sweep: %v\n", err)
			return
		}
		if vrdmaxDiagram != "" {
			if err := diagram.ExportPNG(pts, sys.ForceUnit(), vrdmaxDiagram); err != nil {
				fmt.Printf("Error writing diagram: %v\n", err)
			} else {
				fmt.Printf("  Sweep diagram written to %s\n", vrdmaxDiagram)
			}
		}
		if vrdmaxSweep {
			fmt.Println()
			fmt.Println(diagram.ASCII(pts, sys.ForceUnit()))
			fmt.Println()
		}
	}
}
