package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	densityexpander "github.com/menta2k/density-expander"
	"github.com/menta2k/density-expander/internal/config"
	"github.com/menta2k/density-expander/pkg/density"
	"github.com/menta2k/density-expander/pkg/expander"
	"github.com/menta2k/density-expander/pkg/processing"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	prog := filepath.Base(os.Args[0])

	cfg, err := config.ParseArgs(args)
	switch {
	case errors.Is(err, config.ErrHelp):
		config.PrintUsage(os.Stdout, prog)
		return 0
	case err != nil:
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	de := densityexpander.NewWithConfig(processing.Config{
		Quality:      cfg.Quality,
		WebPLossless: cfg.WebPLossless,
	})
	de.SetLogger(log.Default())

	variants, err := de.ExpandWithOptions(cfg.ExpanderOptions())
	if err != nil {
		switch expander.Class(err) {
		case expander.ClassValidation:
			log.Printf("invalid input: %v", err)
		default:
			log.Printf("failed after %d of %d variants: %v", len(variants), len(density.All()), err)
		}
		return 1
	}

	log.Printf("done: %d variants of %s", len(variants), cfg.Input)
	return 0
}
