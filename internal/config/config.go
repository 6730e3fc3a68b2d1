package config

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/menta2k/density-expander/pkg/density"
	"github.com/menta2k/density-expander/pkg/expander"
)

// Command line flags
const (
	FlagHelp       = "h"
	FlagInput      = "i"
	FlagOutputDir  = "o"
	FlagAndroidDir = "a"
	FlagDensity    = "d"
)

var (
	// ErrUsage reports missing or malformed command line arguments
	ErrUsage = errors.New("please enter correct number of arguments, use -h for help")
	// ErrHelp is returned when help was requested
	ErrHelp = errors.New("help requested")
)

// Config holds the application configuration
type Config struct {
	// Input is the source image path. Required.
	Input string
	// OutputDir receives the density directories. Empty means the working directory.
	OutputDir string
	// AndroidDir is the resource directory prefix, "drawable" by default.
	AndroidDir string
	// Density names the bucket the input was drawn for, "xxxhdpi" by default.
	Density string
	// Quality applies to JPEG and lossy WebP output, 95 by default.
	Quality int
	// WebPLossless selects lossless WebP output, true by default.
	WebPLossless bool
}

// Default returns a configuration with default values
func Default() *Config {
	return &Config{
		OutputDir:    "",
		AndroidDir:   expander.DefaultAndroidDir,
		Density:      density.Highest().Name,
		Quality:      95,
		WebPLossless: true,
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Input == "" {
		return fmt.Errorf("%w: -%s is required", ErrUsage, FlagInput)
	}

	if c.AndroidDir == "" {
		return fmt.Errorf("android directory name cannot be empty")
	}

	if c.Quality < 1 || c.Quality > 100 {
		return fmt.Errorf("quality must be between 1 and 100")
	}

	return nil
}

// ExpanderOptions converts the configuration into expander options
func (c *Config) ExpanderOptions() expander.Options {
	return expander.Options{
		ImagePath:  c.Input,
		OutputRoot: c.OutputDir,
		AndroidDir: c.AndroidDir,
		Density:    c.Density,
	}
}

// ParseArgs parses command line arguments (without the program name).
// -h is only accepted on its own and yields ErrHelp. Every other argument
// list must be a sequence of "-i/-o/-a/-d <value>" pairs, otherwise ErrUsage.
func ParseArgs(args []string) (*Config, error) {
	if len(args) == 0 {
		return nil, ErrUsage
	}
	if len(args) == 1 && args[0] == "-"+FlagHelp {
		return nil, ErrHelp
	}
	if err := checkPairs(args); err != nil {
		return nil, err
	}

	cfg := Default()

	fs := flag.NewFlagSet("density-expander", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.Input, FlagInput, "", "path to input image")
	fs.StringVar(&cfg.OutputDir, FlagOutputDir, cfg.OutputDir, "output directory")
	fs.StringVar(&cfg.AndroidDir, FlagAndroidDir, cfg.AndroidDir, "android resource directory name")
	fs.StringVar(&cfg.Density, FlagDensity, cfg.Density, "pixel density of the input image")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: unexpected argument %q", ErrUsage, fs.Arg(0))
	}

	if cfg.Input == "" {
		return nil, fmt.Errorf("%w: -%s is required", ErrUsage, FlagInput)
	}

	return cfg, nil
}

// checkPairs rejects anything but exact single-dash value flags in flag
// positions, so "--i", "-i=x" and "-h" mixed with other flags all fail.
func checkPairs(args []string) error {
	if len(args)%2 != 0 {
		return fmt.Errorf("%w: flags and values must come in pairs", ErrUsage)
	}
	for i := 0; i < len(args); i += 2 {
		switch args[i] {
		case "-" + FlagInput, "-" + FlagOutputDir, "-" + FlagAndroidDir, "-" + FlagDensity:
		case "-" + FlagHelp:
			return fmt.Errorf("%w: -%s must be used on its own", ErrUsage, FlagHelp)
		default:
			return fmt.Errorf("%w: unknown flag %q", ErrUsage, args[i])
		}
	}
	return nil
}

// PrintUsage writes the help text
func PrintUsage(w io.Writer, prog string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Image density expander for Android")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Scales a bitmap image into every Android pixel density version: %s\n", density.NameList())
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintf(w, "  %s -%s <path_to_image>\n", prog, FlagInput)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Example:")
	fmt.Fprintf(w, "  %s -i image.png -o output_folder -a mipmap\n", prog)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintf(w, "  -%s  Required. Path to input image\n", FlagInput)
	fmt.Fprintf(w, "  -%s  Optional. Output directory for all versions. Defaults to the current working directory\n", FlagOutputDir)
	fmt.Fprintf(w, "  -%s  Optional. Android resource directory name, %q by default. One directory is created per density, such as %q\n",
		FlagAndroidDir, expander.DefaultAndroidDir, density.DirName(expander.DefaultAndroidDir, density.MDPI))
	fmt.Fprintf(w, "  -%s  Optional. Pixel density the input image was made for, %q by default. Accepted values: %s\n",
		FlagDensity, density.Highest().Name, density.NameList())
	fmt.Fprintf(w, "  -%s  Print help instructions. Only used on its own\n", FlagHelp)
}
