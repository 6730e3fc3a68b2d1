// Package densityexpander generates Android density variants of bitmap images.
//
// A single source image drawn for one density bucket is scaled to every
// other bucket (mdpi, hdpi, xhdpi, xxhdpi, xxxhdpi) and written into the
// matching resource directory:
//
//	<output>/<androidDir>-<density>/<image file name>
//
// Basic usage:
//
//	package main
//
//	import (
//		"log"
//
//		densityexpander "github.com/menta2k/density-expander"
//	)
//
//	func main() {
//		de := densityexpander.New()
//
//		variants, err := de.Expand("logo.png", "res", "drawable", "xxhdpi")
//		if err != nil {
//			log.Fatal(err)
//		}
//
//		for _, v := range variants {
//			log.Printf("%s: %dx%d", v.DestinationPath, v.Size.Width, v.Size.Height)
//		}
//	}
//
// Sizes are derived proportionally from the reference bucket and truncated
// toward zero. The reference bucket gets the source pixels unchanged; every
// other bucket is resampled with a Lanczos filter. Output is written in the
// format the source was decoded from.
package densityexpander

import (
	"log"

	"github.com/menta2k/density-expander/pkg/expander"
	"github.com/menta2k/density-expander/pkg/processing"
	"github.com/menta2k/density-expander/pkg/types"
)

// Version of the density expander library
const Version = "1.0.0"

// DensityExpander provides a high-level interface for density expansion
type DensityExpander struct {
	processor *processing.Processor
	expander  *expander.DensityExpander
}

// New creates a new DensityExpander with default configuration
func New() *DensityExpander {
	return NewWithConfig(processing.Config{Quality: 95, WebPLossless: true})
}

// NewWithConfig creates a new DensityExpander with custom encoder settings
func NewWithConfig(processingConfig processing.Config) *DensityExpander {
	p := processing.NewProcessorWithConfig(processingConfig)
	return &DensityExpander{
		processor: p,
		expander:  expander.NewWithProcessor(p),
	}
}

// SetLogger enables progress logging
func (de *DensityExpander) SetLogger(l *log.Logger) {
	de.expander.SetLogger(l)
}

// LoadImage loads and decodes an image file
func (de *DensityExpander) LoadImage(path string) (*types.SourceImage, error) {
	return de.processor.LoadImage(path)
}

// Expand writes every density variant of imagePath below outputRoot.
// Empty androidDir and densityName fall back to "drawable" and "xxxhdpi".
func (de *DensityExpander) Expand(imagePath, outputRoot, androidDir, densityName string) ([]types.OutputVariant, error) {
	return de.expander.Expand(expander.Options{
		ImagePath:  imagePath,
		OutputRoot: outputRoot,
		AndroidDir: androidDir,
		Density:    densityName,
	})
}

// ExpandWithOptions is Expand with an explicit options struct
func (de *DensityExpander) ExpandWithOptions(opts expander.Options) ([]types.OutputVariant, error) {
	return de.expander.Expand(opts)
}

// Plan computes the variants for an already loaded image without writing anything
func (de *DensityExpander) Plan(src *types.SourceImage, outputRoot, androidDir, densityName string) ([]types.OutputVariant, error) {
	return de.expander.Plan(src, expander.Options{
		ImagePath:  src.Path,
		OutputRoot: outputRoot,
		AndroidDir: androidDir,
		Density:    densityName,
	})
}

// GetVersion returns the library version
func GetVersion() string {
	return Version
}
