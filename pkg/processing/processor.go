package processing

import (
	"bufio"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/menta2k/density-expander/pkg/types"
)

// resampleFilter is used for every resize. Output pixels are only
// reproducible as long as this stays fixed.
var resampleFilter = imaging.Lanczos

// Encoded format names as reported by image.Decode
const (
	FormatJPEG = "jpeg"
	FormatPNG  = "png"
	FormatGIF  = "gif"
	FormatBMP  = "bmp"
	FormatTIFF = "tiff"
	FormatWebP = "webp"
)

// Config holds encoder settings
type Config struct {
	// Quality (1-100) applies to JPEG output and to WebP output when WebPLossless is false
	Quality      int
	WebPLossless bool
}

// Processor handles image decoding, resizing and encoding
type Processor struct {
	config Config
}

// NewProcessor creates a new image processor with default encoder settings
func NewProcessor() *Processor {
	return &Processor{
		config: Config{
			Quality:      95,
			WebPLossless: true,
		},
	}
}

// NewProcessorWithConfig creates a new image processor with custom encoder settings
func NewProcessorWithConfig(config Config) *Processor {
	return &Processor{config: config}
}

// SupportedFormats lists the formats that can be both read and written
func SupportedFormats() []string {
	return []string{FormatJPEG, FormatPNG, FormatGIF, FormatBMP, FormatTIFF, FormatWebP}
}

// LoadImage opens and decodes an image file, keeping track of its format
func (p *Processor) LoadImage(path string) (*types.SourceImage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, format, err := p.decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	b := img.Bounds()
	return &types.SourceImage{
		Path:   path,
		Image:  img,
		Size:   types.Size{Width: b.Dx(), Height: b.Dy()},
		Format: format,
	}, nil
}

func (p *Processor) decode(r io.ReadSeeker) (image.Image, string, error) {
	img, format, err := image.Decode(bufio.NewReader(r))
	if err == nil {
		return img, format, nil
	}

	// Fallback: libwebp handles a few extended WebP files the pure Go decoder rejects
	if _, serr := r.Seek(0, io.SeekStart); serr != nil {
		return nil, "", err
	}
	if wimg, werr := webp.Decode(r); werr == nil {
		return wimg, FormatWebP, nil
	}
	return nil, "", err
}

// Resize scales img to exactly width x height with the Lanczos filter
func (p *Processor) Resize(img image.Image, width, height int) (image.Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid target size %dx%d", width, height)
	}
	b := img.Bounds()
	if b.Dx() == width && b.Dy() == height {
		return img, nil
	}
	return imaging.Resize(img, width, height, resampleFilter), nil
}

// SaveImage writes img to path in the given format, replacing any existing file
func (p *Processor) SaveImage(img image.Image, path, format string) error {
	format = strings.ToLower(format)
	if !isSupported(format) {
		return fmt.Errorf("unsupported output format: %q", format)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := p.Encode(f, img, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Encode writes img to w in the given format
func (p *Processor) Encode(w io.Writer, img image.Image, format string) error {
	switch strings.ToLower(format) {
	case FormatWebP:
		opts := &webp.Options{Lossless: p.config.WebPLossless, Quality: float32(p.config.Quality)}
		return webp.Encode(w, img, opts)
	case FormatJPEG:
		return imaging.Encode(w, img, imaging.JPEG, imaging.JPEGQuality(p.config.Quality))
	case FormatPNG:
		return imaging.Encode(w, img, imaging.PNG)
	case FormatGIF:
		return imaging.Encode(w, img, imaging.GIF)
	case FormatBMP:
		return imaging.Encode(w, img, imaging.BMP)
	case FormatTIFF:
		return imaging.Encode(w, img, imaging.TIFF)
	default:
		return fmt.Errorf("unsupported output format: %q", format)
	}
}

func isSupported(format string) bool {
	for _, f := range SupportedFormats() {
		if f == format {
			return true
		}
	}
	return false
}
