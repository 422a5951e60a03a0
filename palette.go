package ledframe

import (
	"fmt"
	"image/color"
)

// Palette size bounds for indexed bitmaps. Index data is one byte per
// pixel, so a palette can never exceed 256 entries; a palette of fewer
// than 2 entries carries no information worth indexing.
const (
	MinPaletteSize = 2
	MaxPaletteSize = 256
)

// Palette is the ordered color table referenced by an indexed bitmap's
// indices. Index identity is load-bearing: entries are never reordered
// after creation.
type Palette []RGB

// Validate checks that the palette length is within
// [MinPaletteSize, MaxPaletteSize].
func (p Palette) Validate() error {
	if len(p) < MinPaletteSize || len(p) > MaxPaletteSize {
		return fmt.Errorf("%w: %d entries, want %d-%d",
			ErrInvalidPaletteSize, len(p), MinPaletteSize, MaxPaletteSize)
	}
	return nil
}

// Clone returns an independent copy of the palette.
func (p Palette) Clone() Palette {
	out := make(Palette, len(p))
	copy(out, p)
	return out
}

// ColorPalette converts the palette to a color.Palette, preserving
// entry order, for use with image.Paletted and the standard draw
// machinery.
func (p Palette) ColorPalette() color.Palette {
	out := make(color.Palette, len(p))
	for i, c := range p {
		out[i] = c.ToColor()
	}
	return out
}

// PaletteFromColors converts a color.Palette back to a Palette,
// preserving entry order.
func PaletteFromColors(cp color.Palette) Palette {
	out := make(Palette, len(cp))
	for i, c := range cp {
		out[i] = RGBFromColor(c)
	}
	return out
}
