package cmd

import (
	"fmt"

	"github.com/mbruyneel/goec2/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of goec2",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("goec2 v%s\n", version.Version)
		fmt.Println("Eurocode 2 Shear Design Tool")
		fmt.Println("Based on EN 1992-1-1 (Eurocode 2)")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
