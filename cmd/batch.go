package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/mbruyneel/goec2/internal/batch"
	"github.com/mbruyneel/goec2/internal/units"
	"github.com/spf13/cobra"
)

var (
	batchInput  string
	batchOutput string
	batchUnits  string
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Run V_Rd,max checks for every row of an xlsx workbook",
	Long: `Evaluate one V_Rd,max check per data row of the first sheet of an
xlsx workbook. The first row is treated as a header.

Expected columns:
  bw | d | fck | fyk | fywk | theta | alpha_cw (optional) | gamma_c (optional)

All rows share the unit system given by --units. Rows that fail to parse or
to evaluate are skipped and counted.

Examples:
  # Tabulate results to the terminal
  goec2 batch --input sections.xlsx

  # Write a results workbook
  goec2 batch --input sections.xlsx --output results.xlsx --units N-mm-deg`,
	Run: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVarP(&batchInput, "input", "i", "", "Input workbook (xlsx) [required]")
	batchCmd.Flags().StringVarP(&batchOutput, "output", "o", "", "Results workbook (xlsx)")
	batchCmd.Flags().StringVarP(&batchUnits, "units", "u", "N-mm-rad", "Unit system for every row")

	batchCmd.MarkFlagRequired("input")
}

func runBatch(cmd *cobra.Command, args []string) {
	sum, err := batch.EvaluateWorkbook(batchInput, units.System(batchUnits))
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     BATCH V_Rd,max VERIFICATION - EN 1992-1-1 §6.2.3")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Row\tb_w\td\tf_ck\tθ\tV_Rd,max (%s)\n", sum.Units.ForceUnit())
	fmt.Fprintf(w, "  ───\t───\t─\t────\t─\t────────\n")
	for _, item := range sum.Items {
		r := item.Result
		fmt.Fprintf(w, "  %d\t%.1f\t%.1f\t%.1f\t%.4f\t%.3f\n",
			item.Row, r.Bw, r.D, r.Fck, r.Theta, r.Value)
	}
	w.Flush()
	fmt.Println()
	fmt.Printf("  Evaluated: %d   Skipped: %d\n", len(sum.Items), sum.Skipped)
	fmt.Println()

	if batchOutput != "" {
		if err := batch.WriteResults(sum, batchOutput); err != nil {
			fmt.Printf("Error writing results workbook: %v\n", err)
			return
		}
		fmt.Printf("  Results written to %s\n", batchOutput)
	}
}
