package prep

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/makeworld-the-better-one/dither/v2"

	"github.com/lisheld/ledframe"
)

// Quantize reduces an enhanced canvas to an indexed bitmap and its
// palette. The palette comes from a population-weighted median cut of
// the image's color space; pixels are then mapped to their nearest
// palette entry, either directly or with Floyd-Steinberg error
// diffusion when spatialDither is set.
//
// A paletteSize outside [MinPaletteSize, MaxPaletteSize] fails with
// ErrInvalidPaletteSize. The produced palette may hold fewer than
// paletteSize entries when the image has fewer distinct colors.
func Quantize(img *image.RGBA, paletteSize int, spatialDither bool) (*ledframe.IndexedBitmap, ledframe.Palette, error) {
	if paletteSize < ledframe.MinPaletteSize || paletteSize > ledframe.MaxPaletteSize {
		return nil, nil, fmt.Errorf("%w: %d entries, want %d-%d",
			ledframe.ErrInvalidPaletteSize, paletteSize,
			ledframe.MinPaletteSize, ledframe.MaxPaletteSize)
	}

	pal := medianCutPalette(img, paletteSize)
	cp := pal.ColorPalette()

	var pm *image.Paletted
	if spatialDither {
		d := dither.NewDitherer(cp)
		d.Matrix = dither.FloydSteinberg
		pm = d.DitherPaletted(img)
	} else {
		pm = image.NewPaletted(img.Bounds(), cp)
		draw.Draw(pm, pm.Bounds(), img, img.Bounds().Min, draw.Src)
	}

	return bitmapFromPaletted(pm), pal, nil
}

// bitmapFromPaletted copies a paletted image's index grid into an
// IndexedBitmap, normalizing away stride and bounds offsets.
func bitmapFromPaletted(pm *image.Paletted) *ledframe.IndexedBitmap {
	b := pm.Bounds()
	bm := ledframe.NewIndexedBitmap(b.Dx(), b.Dy())
	for y := 0; y < bm.Height; y++ {
		off := pm.PixOffset(b.Min.X, b.Min.Y+y)
		copy(bm.Pix[y*bm.Width:(y+1)*bm.Width], pm.Pix[off:off+bm.Width])
	}
	return bm
}
