package main

import (
	"image"
	"image/color"
)

func solid(width, height int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.NRGBA{200, 40, 40, 255})
		}
	}
	return img
}
