package prep

import (
	"image"

	"github.com/disintegration/gift"
)

// Enhance applies the LED output corrections as a single filter chain
// in fixed order: contrast scaling, then brightness scaling, then a
// saturation boost. Contrast runs on the raw values before brightness
// attenuation so highlights are shaped before dimming rather than
// clipped after it.
//
// Each factor is multiplicative with 1.0 as identity. Factors are
// assumed validated (see Options.Validate); the transform itself is a
// pure per-pixel function with no failure modes.
func Enhance(src *image.RGBA, contrast, brightness, saturation float64) *image.RGBA {
	g := gift.New(
		gift.Contrast(factorToPercentage(contrast)),
		gift.ColorFunc(brightnessScale(float32(brightness))),
		gift.Saturation(factorToPercentage(saturation)),
	)
	dst := image.NewRGBA(g.Bounds(src.Bounds()))
	g.Draw(dst, src)
	return dst
}

// factorToPercentage maps a multiplicative factor onto gift's
// percentage scale, where 0 is identity and -100/+100 bound the usable
// range for these filters.
func factorToPercentage(factor float64) float32 {
	return float32((factor - 1.0) * 100.0)
}

// brightnessScale multiplies each color channel by the factor, leaving
// alpha untouched. gift clamps the results on write. This matches the
// multiplicative brightness model of photo tooling rather than gift's
// additive Brightness filter.
func brightnessScale(factor float32) func(r, g, b, a float32) (float32, float32, float32, float32) {
	return func(r, g, b, a float32) (float32, float32, float32, float32) {
		return r * factor, g * factor, b * factor, a
	}
}
