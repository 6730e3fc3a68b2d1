// Package density holds the fixed table of Android screen density buckets
// and the proportional arithmetic used to derive per-bucket image sizes.
package density

import (
	"fmt"
	"strings"
)

// Descriptor is a named density bucket and its scale relative to mdpi
type Descriptor struct {
	Name        string
	ScaleFactor float64
}

// Standard Android density buckets
var (
	MDPI    = Descriptor{"mdpi", 1}
	HDPI    = Descriptor{"hdpi", 1.5}
	XHDPI   = Descriptor{"xhdpi", 2}
	XXHDPI  = Descriptor{"xxhdpi", 3}
	XXXHDPI = Descriptor{"xxxhdpi", 4}
)

// table is ordered by increasing scale factor and never mutated.
var table = [...]Descriptor{MDPI, HDPI, XHDPI, XXHDPI, XXXHDPI}

// All returns the density buckets in their fixed order
func All() []Descriptor {
	out := make([]Descriptor, len(table))
	copy(out, table[:])
	return out
}

// Names returns the bucket names in their fixed order
func Names() []string {
	names := make([]string, len(table))
	for i, d := range table {
		names[i] = d.Name
	}
	return names
}

// Lookup finds a bucket by its exact name
func Lookup(name string) (Descriptor, bool) {
	for _, d := range table {
		if d.Name == name {
			return d, true
		}
	}
	return Descriptor{}, false
}

// Highest returns the bucket with the largest scale factor
func Highest() Descriptor {
	return table[len(table)-1]
}

// TargetSize computes the size of a w x h reference image when rendered for
// the target bucket. The reference bucket keeps its size untouched; every
// other bucket is scaled proportionally and truncated toward zero.
func TargetSize(w, h int, ref, target Descriptor) (int, int) {
	if target.Name == ref.Name {
		return w, h
	}
	tw := int(float64(w) / ref.ScaleFactor * target.ScaleFactor)
	th := int(float64(h) / ref.ScaleFactor * target.ScaleFactor)
	return tw, th
}

// DirName returns the resource directory for a bucket, e.g. "drawable-hdpi"
func DirName(androidDir string, d Descriptor) string {
	return androidDir + "-" + d.Name
}

// String implements fmt.Stringer
func (d Descriptor) String() string {
	return fmt.Sprintf("%s(%gx)", d.Name, d.ScaleFactor)
}

// NameList renders the bucket names as a comma separated list
func NameList() string {
	return strings.Join(Names(), ", ")
}
