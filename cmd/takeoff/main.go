package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jackgaston/digital-blueprint-material-takeoff-tool/version"
)

var rootCmd = &cobra.Command{
	Use:   "takeoff",
	Short: "A CLI tool for measuring distances on construction blueprints",
	Long: `takeoff measures real-world distances on digital blueprints.
Given a scale calibration (a pixel distance of known real-world length) it
converts multi-segment paths drawn in document coordinates into real lengths
for material takeoff. Supports raster blueprints and paginated PDF documents.`,
	Version: version.GetFullVersion(),
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
