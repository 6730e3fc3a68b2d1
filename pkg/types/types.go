package types

import (
	"image"

	"github.com/menta2k/density-expander/pkg/density"
)

// Size is a pixel width and height
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Empty reports whether either side is zero or negative
func (s Size) Empty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// SourceImage is a decoded input image together with its encoded format
type SourceImage struct {
	Path   string
	Image  image.Image
	Size   Size
	Format string
}

// OutputVariant describes one density-specific copy of the source image
type OutputVariant struct {
	Density         density.Descriptor `json:"density"`
	Size            Size               `json:"size"`
	Dir             string             `json:"dir"`
	DestinationPath string             `json:"destination_path"`
	Reference       bool               `json:"reference"`
}
