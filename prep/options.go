package prep

import (
	"fmt"

	"github.com/lisheld/ledframe"
)

// Valid ranges for the enhancement factors. Values outside these ranges
// fail validation rather than being silently clamped.
const (
	MinBrightness = 0.1
	MaxBrightness = 1.0
	MinContrast   = 0.5
	MaxContrast   = 2.0
	MinSaturation = 0.0
	MaxSaturation = 5.0
)

// Options configures the preparation pipeline. The zero value is not
// usable; start from DefaultOptions.
type Options struct {
	// Width and Height are the target canvas dimensions. Every prepared
	// bitmap has exactly these dimensions.
	Width  int
	Height int

	// Contrast is a multiplicative contrast factor in
	// [MinContrast, MaxContrast]. Applied first, to the raw values.
	Contrast float64

	// Brightness is a multiplicative brightness factor in
	// [MinBrightness, MaxBrightness]. LEDs are driven hard; anything
	// above 1.0 overwhelms the matrix.
	Brightness float64

	// Saturation is a multiplicative saturation factor in
	// [MinSaturation, MaxSaturation]. Applied last.
	Saturation float64

	// PaletteSize is the target number of palette entries, 2-256.
	PaletteSize int

	// SpatialDither enables Floyd-Steinberg error diffusion while
	// mapping pixels to the quantized palette. Spatial and temporal
	// dithering extend perceived depth by different means; combining
	// them is legal but unvalidated against banding, and integration
	// layers should flag the combination.
	SpatialDither bool
}

// DefaultOptions returns the tuning used for 64x64 LED matrices: mild
// contrast boost, dimmed brightness, and a slight saturation lift for
// more vivid colors on LEDs.
func DefaultOptions() Options {
	return Options{
		Width:       64,
		Height:      64,
		Contrast:    1.2,
		Brightness:  0.7,
		Saturation:  1.1,
		PaletteSize: 256,
	}
}

// Validate checks every tunable against its documented range.
func (o Options) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("%w: canvas dimensions %dx%d must be positive",
			ledframe.ErrInvalidConfig, o.Width, o.Height)
	}
	if o.Width > 0xFFFF || o.Height > 0xFFFF {
		return fmt.Errorf("%w: canvas dimensions %dx%d exceed uint16",
			ledframe.ErrInvalidConfig, o.Width, o.Height)
	}
	if o.Brightness < MinBrightness || o.Brightness > MaxBrightness {
		return fmt.Errorf("%w: brightness %.2f outside [%.1f, %.1f]",
			ledframe.ErrInvalidConfig, o.Brightness, MinBrightness, MaxBrightness)
	}
	if o.Contrast < MinContrast || o.Contrast > MaxContrast {
		return fmt.Errorf("%w: contrast %.2f outside [%.1f, %.1f]",
			ledframe.ErrInvalidConfig, o.Contrast, MinContrast, MaxContrast)
	}
	if o.Saturation < MinSaturation || o.Saturation > MaxSaturation {
		return fmt.Errorf("%w: saturation %.2f outside [%.1f, %.1f]",
			ledframe.ErrInvalidConfig, o.Saturation, MinSaturation, MaxSaturation)
	}
	if o.PaletteSize < ledframe.MinPaletteSize || o.PaletteSize > ledframe.MaxPaletteSize {
		return fmt.Errorf("%w: %d entries, want %d-%d",
			ledframe.ErrInvalidPaletteSize, o.PaletteSize,
			ledframe.MinPaletteSize, ledframe.MaxPaletteSize)
	}
	return nil
}
