package prep

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"

	"github.com/lisheld/ledframe"
)

// Normalize center-crops the source to the target aspect ratio and then
// resizes the cropped region to exactly width x height. A source wider
// than the target loses width symmetrically while keeping full height;
// a taller source loses height symmetrically. Resampling uses
// Catmull-Rom, which holds up well for the heavy downscales typical of
// photo-to-matrix conversion.
//
// The output dimensions equal the target dimensions for any source with
// positive width and height; a zero-size source fails with
// ErrInvalidImage.
func Normalize(src image.Image, width, height int) (*image.RGBA, error) {
	b := src.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, fmt.Errorf("%w: source dimensions %dx%d",
			ledframe.ErrInvalidImage, b.Dx(), b.Dy())
	}

	crop := cropRect(b, width, height)
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, crop, draw.Src, nil)
	return dst, nil
}

// cropRect computes the centered source rectangle whose aspect ratio
// matches the target. Ratio comparisons cross-multiply to stay in
// integer arithmetic.
func cropRect(b image.Rectangle, targetW, targetH int) image.Rectangle {
	srcW, srcH := b.Dx(), b.Dy()
	switch {
	case srcW*targetH > targetW*srcH:
		// Source is wider than the target: crop width.
		cropW := srcH * targetW / targetH
		if cropW < 1 {
			cropW = 1
		}
		left := b.Min.X + (srcW-cropW)/2
		return image.Rect(left, b.Min.Y, left+cropW, b.Max.Y)
	case srcW*targetH < targetW*srcH:
		// Source is taller than the target: crop height.
		cropH := srcW * targetH / targetW
		if cropH < 1 {
			cropH = 1
		}
		top := b.Min.Y + (srcH-cropH)/2
		return image.Rect(b.Min.X, top, b.Max.X, top+cropH)
	}
	return b
}
