// Package report renders calculation sheets for shear checks as PDF files.
package report

import (
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/mbruyneel/goec2/internal/shear"
	"github.com/mbruyneel/goec2/internal/units"
)

type line struct {
	label string
	value float64
	unit  string
}

// VRdMaxSheet writes an A4 calculation sheet for a V_Rd,max check:
// inputs, intermediate values and the governing resistance.
func VRdMaxSheet(res *shear.VRdMaxResult, filename string) error {
	sys := res.Units
	inputs := []line{
		{"Web width b_w", res.Bw, sys.LengthUnit()},
		{"Effective depth d", res.D, sys.LengthUnit()},
		{"Concrete strength f_ck", res.Fck, sys.StressUnit()},
		{"Reinforcement yield f_yk", res.Fyk, sys.StressUnit()},
		{"Shear reinforcement yield f_ywk", res.Fywk, sys.StressUnit()},
		{"Strut angle theta", res.Theta, sys.AngleUnit()},
		{"alpha_cw", res.AlphaCW, ""},
		{"gamma_c", res.GammaC, ""},
	}
	intermediates := make([]line, 0, len(res.Intermediates))
	for _, e := range res.Intermediates {
		intermediates = append(intermediates, line{e.Name, e.Value, sys.Label(e.Dim)})
	}
	return sheet(
		"V_Rd,max Calculation Sheet",
		"EN 1992-1-1 Section 6.2.3, Eq. 6.9",
		"V_Rd,max = alpha_cw * b_w * z * nu_1 * f_cd / (cot theta + tan theta)",
		inputs, intermediates,
		fmt.Sprintf("V_Rd,max = %.3f %s", res.Value, sys.ForceUnit()),
		sys, filename,
	)
}

// VRdCSheet writes an A4 calculation sheet for a V_Rd,c check.
func VRdCSheet(res *shear.VRdCResult, filename string) error {
	sys := res.Units
	inputs := []line{
		{"C_Rd,c", res.CRdc, ""},
		{"Tensile reinforcement A_sl", res.Asl, sys.AreaUnit()},
		{"Concrete strength f_ck", res.Fck, sys.StressUnit()},
		{"Axial stress sigma_cp", res.SigmaCp, sys.StressUnit()},
		{"Web width b_w", res.Bw, sys.LengthUnit()},
		{"Effective depth d", res.D, sys.LengthUnit()},
	}
	intermediates := make([]line, 0, len(res.Intermediates))
	for _, e := range res.Intermediates {
		intermediates = append(intermediates, line{e.Name, e.Value, sys.Label(e.Dim)})
	}
	return sheet(
		"V_Rd,c Calculation Sheet",
		"EN 1992-1-1 Section 6.2.2, Eqs. 6.2a/6.2b",
		"V_Rd,c = max([C_Rd,c*k*(100*rho_l*f_ck)^(1/3) + k_1*sigma_cp]*b_w*d, (v_min + k_1*sigma_cp)*b_w*d)",
		inputs, intermediates,
		fmt.Sprintf("V_Rd,c = %.3f %s", res.Value, sys.ForceUnit()),
		sys, filename,
	)
}

func sheet(title, reference, expression string, inputs, intermediates []line, result string, sys units.System, filename string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, title)
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, reference)
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Unit system: %s", sys))
	pdf.Ln(10)

	block(pdf, "INPUT DATA", inputs)
	block(pdf, "INTERMEDIATE VALUES", intermediates)

	pdf.SetFont("Helvetica", "", 9)
	pdf.MultiCell(0, 5, expression, "", "L", false)
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 12, result, "1", 1, "C", false, 0, "")

	return pdf.OutputFileAndClose(filename)
}

func block(pdf *gofpdf.Fpdf, heading string, lines []line) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 7, heading)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	for _, l := range lines {
		pdf.CellFormat(80, 6, l.label, "", 0, "L", false, 0, "")
		pdf.CellFormat(40, 6, fmt.Sprintf("%.6g", l.value), "", 0, "R", false, 0, "")
		pdf.CellFormat(20, 6, l.unit, "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)
}
