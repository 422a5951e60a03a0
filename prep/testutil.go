package prep

import (
	"image"
	"image/color"

	"github.com/lisheld/ledframe"
)

// CreateGradientImage creates a horizontal grayscale gradient test
// image.
func CreateGradientImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	span := width - 1
	if span < 1 {
		span = 1
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := uint8(255 * x / span)
			img.SetRGBA(x, y, color.RGBA{R: v, G: v, B: v, A: 255})
		}
	}
	return img
}

// CreateCheckerboardImage creates a black/white checkerboard pattern.
func CreateCheckerboardImage(width, height, squareSize int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			isWhite := ((x/squareSize)+(y/squareSize))%2 == 0
			if isWhite {
				img.SetRGBA(x, y, color.RGBA{R: 255, G: 255, B: 255, A: 255})
			} else {
				img.SetRGBA(x, y, color.RGBA{A: 255})
			}
		}
	}
	return img
}

// CreateSolidImage creates a solid color image.
func CreateSolidImage(width, height int, c ledframe.RGB) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, c.ToColor())
		}
	}
	return img
}

// CreateColorBarsImage creates a color bars test pattern.
func CreateColorBarsImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	colors := []ledframe.RGB{
		{R: 255, G: 255, B: 255}, // White
		{R: 255, G: 255, B: 0},   // Yellow
		{R: 0, G: 255, B: 255},   // Cyan
		{R: 0, G: 255, B: 0},     // Green
		{R: 255, G: 0, B: 255},   // Magenta
		{R: 255, G: 0, B: 0},     // Red
		{R: 0, G: 0, B: 255},     // Blue
		{R: 0, G: 0, B: 0},       // Black
	}

	barWidth := width / len(colors)
	if barWidth < 1 {
		barWidth = 1
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			colorIdx := x / barWidth
			if colorIdx >= len(colors) {
				colorIdx = len(colors) - 1
			}
			img.SetRGBA(x, y, colors[colorIdx].ToColor())
		}
	}
	return img
}
