package ledframe

import "image"

// SourceKind discriminates the two pixel-source variants.
type SourceKind int

const (
	// SourceIndexed is an indexed bitmap resolved through a palette.
	SourceIndexed SourceKind = iota
	// SourceDirect is a direct-color RGB bitmap.
	SourceDirect
)

// PixelSource is a tagged variant over the two ways a frame's pixels can
// be represented: Indexed(IndexedBitmap, Palette) or
// DirectColor(*image.RGBA). Consumers branch explicitly on Kind rather
// than probing types at runtime.
type PixelSource struct {
	kind    SourceKind
	bitmap  *IndexedBitmap
	palette Palette
	direct  *image.RGBA
}

// IndexedSource wraps an indexed bitmap and its palette as a
// PixelSource.
func IndexedSource(bm *IndexedBitmap, pal Palette) PixelSource {
	return PixelSource{kind: SourceIndexed, bitmap: bm, palette: pal}
}

// DirectSource wraps a direct-color image as a PixelSource.
func DirectSource(img *image.RGBA) PixelSource {
	return PixelSource{kind: SourceDirect, direct: img}
}

// Kind reports which variant this source holds.
func (s PixelSource) Kind() SourceKind {
	return s.kind
}

// Indexed returns the bitmap and palette of an indexed source. The
// returned values are nil for a direct source.
func (s PixelSource) Indexed() (*IndexedBitmap, Palette) {
	return s.bitmap, s.palette
}

// Direct returns the image of a direct source, or nil for an indexed
// source.
func (s PixelSource) Direct() *image.RGBA {
	return s.direct
}

// Size returns the source dimensions in pixels.
func (s PixelSource) Size() (width, height int) {
	switch s.kind {
	case SourceIndexed:
		return s.bitmap.Width, s.bitmap.Height
	case SourceDirect:
		b := s.direct.Bounds()
		return b.Dx(), b.Dy()
	}
	return 0, 0
}

// ColorAt resolves the color at (x, y), looking the index up through the
// palette for an indexed source. Indices past the end of the palette
// resolve to black rather than panicking.
func (s PixelSource) ColorAt(x, y int) RGB {
	switch s.kind {
	case SourceIndexed:
		idx := int(s.bitmap.At(x, y))
		if idx >= len(s.palette) {
			return RGB{}
		}
		return s.palette[idx]
	case SourceDirect:
		c := s.direct.RGBAAt(x, y)
		return RGB{R: c.R, G: c.G, B: c.B}
	}
	return RGB{}
}

// Image materializes the source as a direct-color image. An indexed
// source is resolved through its palette; a direct source is returned
// as-is.
func (s PixelSource) Image() *image.RGBA {
	if s.kind == SourceDirect {
		return s.direct
	}
	w, h := s.Size()
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			out.SetRGBA(x, y, s.ColorAt(x, y).ToColor())
		}
	}
	return out
}
