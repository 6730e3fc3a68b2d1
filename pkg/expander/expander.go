// Package expander turns one bitmap into a full set of Android density
// variants, one resource directory per density bucket.
package expander

import (
	"errors"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"

	"github.com/menta2k/density-expander/internal/utils"
	"github.com/menta2k/density-expander/pkg/density"
	"github.com/menta2k/density-expander/pkg/processing"
	"github.com/menta2k/density-expander/pkg/types"
)

// DefaultAndroidDir is the resource directory prefix used when none is given
const DefaultAndroidDir = "drawable"

// Options describes a single expansion run
type Options struct {
	// ImagePath is the source bitmap. Required.
	ImagePath string
	// OutputRoot receives the density directories. Empty means the working directory.
	OutputRoot string
	// AndroidDir is the resource directory prefix. Defaults to DefaultAndroidDir.
	AndroidDir string
	// Density names the bucket the source image was drawn for. Defaults to the highest bucket.
	Density string
}

func (o Options) withDefaults() Options {
	if o.AndroidDir == "" {
		o.AndroidDir = DefaultAndroidDir
	}
	if o.Density == "" {
		o.Density = density.Highest().Name
	}
	return o
}

// DensityExpander writes resized copies of an image for every density bucket
type DensityExpander struct {
	processor *processing.Processor
	logger    *log.Logger
}

// New creates a DensityExpander with the default processor
func New() *DensityExpander {
	return &DensityExpander{processor: processing.NewProcessor()}
}

// NewWithProcessor creates a DensityExpander around a custom processor
func NewWithProcessor(p *processing.Processor) *DensityExpander {
	return &DensityExpander{processor: p}
}

// SetLogger enables progress logging. A nil logger silences it.
func (e *DensityExpander) SetLogger(l *log.Logger) {
	e.logger = l
}

// Expand validates the options, decodes the source image and writes one
// variant per density bucket, in bucket order. On failure the variants
// written so far are returned together with the error and left on disk.
func (e *DensityExpander) Expand(opts Options) ([]types.OutputVariant, error) {
	opts = opts.withDefaults()

	if !utils.FileExists(opts.ImagePath) {
		return nil, &Error{Kind: ErrFileNotFound, Op: "open", Path: opts.ImagePath}
	}

	if _, ok := density.Lookup(opts.Density); !ok {
		return nil, invalidDensity(opts.Density)
	}

	src, err := e.processor.LoadImage(opts.ImagePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &Error{Kind: ErrFileNotFound, Op: "open", Path: opts.ImagePath, Err: err}
		}
		return nil, &Error{Kind: ErrDecode, Op: "decode", Path: opts.ImagePath, Err: err}
	}

	variants, err := e.Plan(src, opts)
	if err != nil {
		return nil, err
	}

	if opts.OutputRoot != "" {
		if err := utils.EnsureDir(opts.OutputRoot); err != nil {
			return nil, &Error{Kind: ErrDirectoryCreate, Op: "mkdir", Path: opts.OutputRoot, Err: err}
		}
	}

	written := make([]types.OutputVariant, 0, len(variants))
	for _, v := range variants {
		if err := e.write(src, v); err != nil {
			return written, err
		}
		written = append(written, v)
		e.logf("wrote %s (%s %dx%d)", v.DestinationPath, v.Density, v.Size.Width, v.Size.Height)
	}

	return written, nil
}

// Plan computes every output variant for src without touching the filesystem.
// It fails with ErrEmptyVariant if any bucket would end up with a zero-pixel side.
func (e *DensityExpander) Plan(src *types.SourceImage, opts Options) ([]types.OutputVariant, error) {
	opts = opts.withDefaults()

	ref, ok := density.Lookup(opts.Density)
	if !ok {
		return nil, invalidDensity(opts.Density)
	}

	name := utils.BaseName(src.Path)
	all := density.All()
	variants := make([]types.OutputVariant, 0, len(all))

	for _, d := range all {
		w, h := density.TargetSize(src.Size.Width, src.Size.Height, ref, d)
		size := types.Size{Width: w, Height: h}
		if size.Empty() {
			return nil, &Error{
				Kind: ErrEmptyVariant,
				Op:   "plan",
				Path: src.Path,
				Err: fmt.Errorf("%s would be %dx%d from %dx%d at %s",
					d.Name, w, h, src.Size.Width, src.Size.Height, ref.Name),
			}
		}

		dir := filepath.Join(opts.OutputRoot, density.DirName(opts.AndroidDir, d))
		variants = append(variants, types.OutputVariant{
			Density:         d,
			Size:            size,
			Dir:             dir,
			DestinationPath: filepath.Join(dir, name),
			Reference:       d.Name == ref.Name,
		})
	}

	return variants, nil
}

func (e *DensityExpander) write(src *types.SourceImage, v types.OutputVariant) error {
	var img image.Image = src.Image
	if !v.Reference {
		resized, err := e.processor.Resize(src.Image, v.Size.Width, v.Size.Height)
		if err != nil {
			return &Error{Kind: ErrEmptyVariant, Op: "resize", Path: v.DestinationPath, Err: err}
		}
		img = resized
	}

	if err := utils.EnsureDir(v.Dir); err != nil {
		return &Error{Kind: ErrDirectoryCreate, Op: "mkdir", Path: v.Dir, Err: err}
	}

	if err := e.processor.SaveImage(img, v.DestinationPath, src.Format); err != nil {
		return &Error{Kind: ErrEncode, Op: "save", Path: v.DestinationPath, Err: err}
	}
	return nil
}

func (e *DensityExpander) logf(format string, args ...interface{}) {
	if e.logger != nil {
		e.logger.Printf(format, args...)
	}
}
