package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jackgaston/digital-blueprint-material-takeoff-tool/internal/document"
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display page information for a blueprint file",
	Long:  "Show the format, page count, and per-page dimensions of a blueprint document.",
	Args:  cobra.ExactArgs(1),
	Run:   runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) {
	filename := args[0]

	bp, err := document.Load(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading blueprint: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Blueprint Information")
	fmt.Println("=====================")
	fmt.Printf("File: %s\n", bp.Path)
	fmt.Printf("Format: %s\n", bp.Kind)
	fmt.Printf("Pages: %d\n\n", len(bp.Pages))

	unit := "px"
	if bp.Kind == document.KindPDF {
		unit = "pt"
	}
	for _, page := range bp.Pages {
		fmt.Printf("  Page %d: %.1f x %.1f %s\n", page.Index+1, page.Width, page.Height, unit)
	}
}
