package main

import (
	"fmt"
	"os"

	"github.com/jackgaston/digital-blueprint-material-takeoff-tool/internal/app"
	"github.com/jackgaston/digital-blueprint-material-takeoff-tool/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
		cfg = config.DefaultConfig()
	}

	path := ""
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	app.Run(cfg, path)
}
