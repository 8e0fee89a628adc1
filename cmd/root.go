package cmd

import (
	"fmt"
	"os"

	"github.com/mbruyneel/goec2/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "goec2",
	Short: "Eurocode 2 Shear Design Tool",
	Long: `goec2 - Eurocode 2 Shear Design Tool

A CLI tool for shear resistance verification of reinforced concrete
sections based on EN 1992-1-1 (Eurocode 2).

This tool helps structural engineers perform:
  - Maximum shear resistance check V_Rd,max (compression strut crushing)
  - Shear resistance without shear reinforcement V_Rd,c
  - Batch verification from spreadsheet input
  - Calculation sheet export (PDF) and strut angle sweep diagrams

All calculations follow EN 1992-1-1 Section 6.2 provisions.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   goec2 v%-49s║\n", version.Version)
		fmt.Println("  ║   Eurocode 2 Shear Design Tool                            ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for shear resistance verification of reinforced")
		fmt.Println("  concrete sections based on EN 1992-1-1 (Eurocode 2).")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • V_Rd,max with every intermediate sub-term reported")
		fmt.Println("    • V_Rd,c for members without shear reinforcement")
		fmt.Println("    • N-mm-rad, kN-m-rad, N-mm-deg and kN-m-deg unit systems")
		fmt.Println("    • Batch runs from xlsx workbooks")
		fmt.Println("    • PDF calculation sheets and θ-sweep diagrams")
		fmt.Println()
		fmt.Println("  Use 'goec2 --help' to see available commands.")
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
