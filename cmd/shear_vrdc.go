package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/mbruyneel/goec2/internal/report"
	"github.com/mbruyneel/goec2/internal/shear"
	"github.com/mbruyneel/goec2/internal/units"
	"github.com/spf13/cobra"
)

var (
	// Inputs
	vrdcCRdc    float64
	vrdcAsl     float64
	vrdcFck     float64
	vrdcSigmaCp float64
	vrdcBw      float64
	vrdcD       float64

	// Options
	vrdcUnits string
	vrdcPDF   string
)

var vrdcCmd = &cobra.Command{
	Use:   "vrdc",
	Short: "Shear resistance without shear reinforcement V_Rd,c",
	Long: `Calculate the design shear resistance V_Rd,c of a member not
requiring design shear reinforcement.

The calculation follows EN 1992-1-1 Section 6.2.2(1), Eqs. 6.2a and 6.2b:

  V_Rd,c = max( [C_Rd,c·k·(100·ρ_l·f_ck)^(1/3) + k₁·σ_cp]·b_w·d ,
                (v_min + k₁·σ_cp)·b_w·d )

with k = 1 + √(200/d) ≤ 2.0, ρ_l = A_sl/(b_w·d) ≤ 0.02 and k₁ = 0.15.

Examples:
  # 250x600 web, C20/25, 308 mm² tensile steel, light axial compression
  goec2 shear vrdc --crdc 0.12 --asl 308 --fck 20 --sigma-cp 0.66667 --bw 250 --d 539`,
	Run: runVRdC,
}

func init() {
	shearCmd.AddCommand(vrdcCmd)

	vrdcCmd.Flags().Float64Var(&vrdcCRdc, "crdc", 0.12, "C_Rd,c coefficient (recommended 0.18/γ_c)")
	vrdcCmd.Flags().Float64VarP(&vrdcAsl, "asl", "a", 0, "Area of anchored tensile reinforcement A_sl [required]")
	vrdcCmd.Flags().Float64Var(&vrdcFck, "fck", 0, "Characteristic concrete strength f_ck [required]")
	vrdcCmd.Flags().Float64Var(&vrdcSigmaCp, "sigma-cp", 0, "Concrete compressive stress σ_cp = N_Ed/A_c")
	vrdcCmd.Flags().Float64VarP(&vrdcBw, "bw", "b", 0, "Smallest web width in the tensile area [required]")
	vrdcCmd.Flags().Float64Var(&vrdcD, "d", 0, "Effective depth [required]")

	vrdcCmd.Flags().StringVarP(&vrdcUnits, "units", "u", "N-mm-rad", "Unit system (N-mm-rad, kN-m-rad, N-mm-deg, kN-m-deg)")
	vrdcCmd.Flags().StringVar(&vrdcPDF, "pdf", "", "Write a PDF calculation sheet to this file")

	vrdcCmd.MarkFlagRequired("asl")
	vrdcCmd.MarkFlagRequired("fck")
	vrdcCmd.MarkFlagRequired("bw")
	vrdcCmd.MarkFlagRequired("d")
}

func runVRdC(cmd *cobra.Command, args []string) {
	in := shear.VRdCInput{
		CRdc:    vrdcCRdc,
		Asl:     vrdcAsl,
		Fck:     vrdcFck,
		SigmaCp: vrdcSigmaCp,
		Bw:      vrdcBw,
		D:       vrdcD,
		Units:   units.System(vrdcUnits),
	}

	result, err := shear.VRdCDetailed(in)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	sys := result.Units

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     SHEAR RESISTANCE V_Rd,c - EN 1992-1-1 §6.2.2")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  C_Rd,c:\t%.4f\n", result.CRdc)
	fmt.Fprintf(w, "  Tensile Reinforcement (A_sl):\t%.2f %s\n", result.Asl, sys.AreaUnit())
	fmt.Fprintf(w, "  f_ck:\t%.2f %s\n", result.Fck, sys.StressUnit())
	fmt.Fprintf(w, "  Axial Stress (σ_cp):\t%.4f %s\n", result.SigmaCp, sys.StressUnit())
	fmt.Fprintf(w, "  Web Width (b_w):\t%.2f %s\n", result.Bw, sys.LengthUnit())
	fmt.Fprintf(w, "  Effective Depth (d):\t%.2f %s\n", result.D, sys.LengthUnit())
	fmt.Fprintf(w, "  Unit System:\t%s\n", sys)
	w.Flush()
	fmt.Println()

	fmt.Println("INTERMEDIATE VALUES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  ρ_l:\t%.6f\n", result.RhoL)
	fmt.Fprintf(w, "  Size Factor (k):\t%.4f\n", result.K)
	fmt.Fprintf(w, "  v_min:\t%.4f %s\n", result.VMin, sys.StressUnit())
	fmt.Fprintf(w, "  k₁:\t%.2f\n", result.K1)
	w.Flush()
	fmt.Println()

	fmt.Println("GOVERNING EXPRESSION (EN 1992-1-1 Eqs. 6.2a/6.2b):")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	marker1, marker2 := "", " ← GOVERNS"
	if result.Branch1 >= result.Branch2 {
		marker1, marker2 = " ← GOVERNS", ""
	}
	fmt.Fprintf(w, "  Eq. 6.2a:\t%.3f %s%s\n", result.Branch1, sys.ForceUnit(), marker1)
	fmt.Fprintf(w, "  Eq. 6.2b:\t%.3f %s%s\n", result.Branch2, sys.ForceUnit(), marker2)
	w.Flush()
	fmt.Println()

	fmt.Printf("  ╔═════════════════════════════════════════╗\n")
	fmt.Printf("  ║  V_Rd,c = %.3f %s     \n", result.Value, sys.ForceUnit())
	fmt.Printf("  ╚═════════════════════════════════════════╝\n")
	fmt.Println()

	if vrdcPDF != "" {
		if err := report.VRdCSheet(result, vrdcPDF); err != nil {
			fmt.Printf("Error writing PDF: %v\n", err)
		} else {
			fmt.Printf("  Calculation sheet written to %s\n", vrdcPDF)
		}
	}
}
