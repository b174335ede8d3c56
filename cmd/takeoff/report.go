package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jackgaston/digital-blueprint-material-takeoff-tool/internal/calibrate"
	"github.com/jackgaston/digital-blueprint-material-takeoff-tool/internal/measure"
	"github.com/jackgaston/digital-blueprint-material-takeoff-tool/internal/units"
	"github.com/jackgaston/digital-blueprint-material-takeoff-tool/pkg/geometry"
	"github.com/jackgaston/digital-blueprint-material-takeoff-tool/pkg/takeoff"
)

var (
	reportScalePixels float64
	reportScaleReal   float64
	reportUnitName    string
)

var reportCmd = &cobra.Command{
	Use:   "report [points-file]",
	Short: "Produce a takeoff summary from a points file",
	Long: `Read measurement paths from a text file and print a material takeoff
summary. Each line holds one point as "x,y"; a blank line or a line starting
with "#" separates paths. Every path needs at least two points.`,
	Args: cobra.ExactArgs(1),
	Run:  runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().Float64Var(&reportScalePixels, "scale-px", 0, "calibration distance in pixels")
	reportCmd.Flags().Float64Var(&reportScaleReal, "scale-real", 0, "calibration distance in real-world units")
	reportCmd.Flags().StringVar(&reportUnitName, "unit", "metric", "unit system: metric or imperial")

	reportCmd.MarkFlagRequired("scale-px")
	reportCmd.MarkFlagRequired("scale-real")
}

// readPaths parses the points file into one point sequence per path
func readPaths(filename string) ([][]geometry.Point, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var paths [][]geometry.Point
	var current []geometry.Point

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			if len(current) > 0 {
				paths = append(paths, current)
				current = nil
			}
			continue
		}

		p, err := parsePoint(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		current = append(current, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(current) > 0 {
		paths = append(paths, current)
	}
	return paths, nil
}

func runReport(cmd *cobra.Command, args []string) {
	filename := args[0]

	sys, err := units.Parse(reportUnitName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	paths, err := readPaths(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading points file: %v\n", err)
		os.Exit(1)
	}
	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no paths found in points file")
		os.Exit(1)
	}

	// Calibrate from the flag-supplied scale distances.
	cal := calibrate.NewCalibrator()
	cal.Begin()
	cal.AddPoint(geometry.NewPoint(0, 0))
	cal.AddPoint(geometry.NewPoint(reportScalePixels, 0))
	if err := cal.Commit(reportScaleReal, sys); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid scale: %v\n", err)
		os.Exit(1)
	}

	session := measure.NewSession(cal)
	for i, pts := range paths {
		if err := session.Start(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		for _, p := range pts {
			session.AddPoint(p)
		}
		if _, err := session.Finish(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: path %d: %v\n", i+1, err)
			os.Exit(1)
		}
	}

	summary, err := takeoff.Summarize(session)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Material Takeoff Report")
	fmt.Println("=======================")
	fmt.Printf("Source: %s\n\n", filename)
	fmt.Print(takeoff.FormatReport(summary, sys))
}
