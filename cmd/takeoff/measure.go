package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jackgaston/digital-blueprint-material-takeoff-tool/internal/units"
	"github.com/jackgaston/digital-blueprint-material-takeoff-tool/pkg/geometry"
)

var (
	measurePoints []string
	scalePixels   float64
	scaleReal     float64
	unitName      string
)

var measureCmd = &cobra.Command{
	Use:   "measure",
	Short: "Measure a multi-segment path in document coordinates",
	Long: `Measure the cumulative length of a path given as a sequence of points.
The path length is the sum of the straight segments between consecutive points.
With --scale-px and --scale-real the result is also converted to real-world
units using the ratio scale-px / scale-real pixels per unit.`,
	Run: runMeasure,
}

func init() {
	rootCmd.AddCommand(measureCmd)

	measureCmd.Flags().StringArrayVar(&measurePoints, "point", nil, "path point as x,y (repeat for each point, at least two)")
	measureCmd.Flags().Float64Var(&scalePixels, "scale-px", 0, "calibration distance in pixels")
	measureCmd.Flags().Float64Var(&scaleReal, "scale-real", 0, "calibration distance in real-world units")
	measureCmd.Flags().StringVar(&unitName, "unit", "metric", "unit system: metric or imperial")

	measureCmd.MarkFlagsRequiredTogether("scale-px", "scale-real")
}

// parsePoint parses an "x,y" flag value into a document-space point
func parsePoint(s string) (geometry.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return geometry.Point{}, fmt.Errorf("invalid point %q (expected x,y)", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return geometry.Point{}, fmt.Errorf("invalid x coordinate in %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return geometry.Point{}, fmt.Errorf("invalid y coordinate in %q: %w", s, err)
	}
	return geometry.NewPoint(x, y), nil
}

func runMeasure(cmd *cobra.Command, args []string) {
	if len(measurePoints) < 2 {
		fmt.Fprintln(os.Stderr, "Error: at least two --point values are required")
		os.Exit(1)
	}

	points := make([]geometry.Point, 0, len(measurePoints))
	for _, s := range measurePoints {
		p, err := parsePoint(s)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		points = append(points, p)
	}

	pixelLength := geometry.PolylineLength(points)

	fmt.Println("Path Measurement")
	fmt.Println("================")
	fmt.Printf("Points: %d\n", len(points))
	fmt.Printf("Segments: %d\n", len(points)-1)
	fmt.Printf("Pixel length: %s\n", units.FormatPixels(pixelLength))

	if scalePixels == 0 {
		return
	}

	sys, err := units.Parse(unitName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if scalePixels <= 0 || scaleReal <= 0 {
		fmt.Fprintln(os.Stderr, "Error: scale distances must be positive")
		os.Exit(1)
	}

	pixelsPerUnit := scalePixels / scaleReal
	fmt.Printf("Scale: %.4f px per %s\n", pixelsPerUnit, sys.Label())
	fmt.Printf("Real length: %s\n", units.FormatLength(pixelLength/pixelsPerUnit, sys))
}
