package ledframe

import "image/color"

// RGB represents a color in the RGB color space with 8-bit channels,
// where each channel ranges from 0 to 255. Palette entries and all
// per-pixel color math in this module use this representation.
type RGB struct {
	R, G, B uint8
}

// ToColor converts RGB to color.RGBA for use with the standard library.
func (c RGB) ToColor() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// RGBFromColor converts a color.Color to RGB, discarding alpha.
func RGBFromColor(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	return RGB{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
	}
}

// Luminance returns the perceptual luminance of the color using the
// BT.601 weights (0.299*R + 0.587*G + 0.114*B), normalized to [0, 1].
func (c RGB) Luminance() float64 {
	return (0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)) / 255.0
}

// Offset adds a signed delta to every channel, clamping each result to
// [0, 255]. This is the primitive the temporal dither engine uses to
// derive a modulated palette from the base palette.
func (c RGB) Offset(delta int) RGB {
	return RGB{
		R: clampChannel(int(c.R) + delta),
		G: clampChannel(int(c.G) + delta),
		B: clampChannel(int(c.B) + delta),
	}
}

func clampChannel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
