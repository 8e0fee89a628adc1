package cmd

import (
	"github.com/spf13/cobra"
)

var shearCmd = &cobra.Command{
	Use:   "shear",
	Short: "Shear resistance verification per EN 1992-1-1 Section 6.2",
	Long: `Verify the shear resistance of reinforced concrete sections
based on EN 1992-1-1 (Eurocode 2) provisions.

Subcommands:
  vrdmax  - Maximum shear resistance limited by strut crushing (Eq. 6.9)
  vrdc    - Shear resistance without shear reinforcement (Eqs. 6.2a/6.2b)

Inputs may be given in any recognized unit system (--units); results are
reported in the same system.`,
}

func init() {
	rootCmd.AddCommand(shearCmd)
}
