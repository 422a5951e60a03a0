package ledframe

import "fmt"

// IndexedBitmap is an image represented as a width x height grid of
// palette indices rather than direct per-pixel color values. The index
// grid is owned by whichever stage last produced it and is immutable
// once handed to the temporal dither engine: the engine mutates only a
// derived palette, never the grid.
type IndexedBitmap struct {
	Width  int
	Height int
	// Pix holds one palette index per pixel in row-major order.
	Pix []uint8
}

// NewIndexedBitmap allocates a zero-filled bitmap with the given
// dimensions.
func NewIndexedBitmap(width, height int) *IndexedBitmap {
	return &IndexedBitmap{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height),
	}
}

// At returns the palette index at (x, y).
func (b *IndexedBitmap) At(x, y int) uint8 {
	return b.Pix[y*b.Width+x]
}

// Set writes the palette index at (x, y).
func (b *IndexedBitmap) Set(x, y int, idx uint8) {
	b.Pix[y*b.Width+x] = idx
}

// Validate checks structural consistency against a palette of the given
// length: positive dimensions, a pixel buffer of exactly width*height,
// and every index strictly below paletteLen.
func (b *IndexedBitmap) Validate(paletteLen int) error {
	if b.Width <= 0 || b.Height <= 0 {
		return fmt.Errorf("%w: bitmap dimensions %dx%d",
			ErrInvalidImage, b.Width, b.Height)
	}
	if len(b.Pix) != b.Width*b.Height {
		return fmt.Errorf("%w: pixel buffer holds %d indices, want %d",
			ErrInvalidImage, len(b.Pix), b.Width*b.Height)
	}
	for i, idx := range b.Pix {
		if int(idx) >= paletteLen {
			return fmt.Errorf("%w: index %d at offset %d exceeds palette length %d",
				ErrInvalidImage, idx, i, paletteLen)
		}
	}
	return nil
}

// Clone returns an independent copy of the bitmap.
func (b *IndexedBitmap) Clone() *IndexedBitmap {
	out := NewIndexedBitmap(b.Width, b.Height)
	copy(out.Pix, b.Pix)
	return out
}
