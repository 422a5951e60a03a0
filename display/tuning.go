// Package display implements the consumption side of the artifact
// contract: classifying a decoded bitmap's contrast/color-diversity
// profile and cycling palette modulations at a fixed cadence to
// simulate extra color depth through persistence of vision.
package display

import (
	"fmt"

	"github.com/lisheld/ledframe"
)

// Tuning holds the classification thresholds and dither offset
// magnitudes. Source revisions of this system disagreed on several of
// these values (light offsets of 2 vs 3, heavy offsets of 8 vs 12,
// brightness thresholds 0.6/0.25 vs 0.7/0.3), so they are centralized
// here as tunables rather than hard-coded.
type Tuning struct {
	// TargetSamples is the approximate number of pixels the analyzer
	// samples; the grid step is derived from it independently per axis.
	TargetSamples int `json:"target_samples"` // Default: 100

	// Brightness-range thresholds: above High classifies Light, below
	// Low classifies Heavy, in between Medium.
	BrightnessHigh float64 `json:"brightness_high"` // Default: 0.6
	BrightnessLow  float64 `json:"brightness_low"`  // Default: 0.25

	// Color-usage-ratio overrides: below Low forces Heavy, above High
	// forces Light.
	UsageLow  float64 `json:"usage_low"`  // Default: 0.15
	UsageHigh float64 `json:"usage_high"` // Default: 0.4

	// Distinct-index overrides: below Low forces Heavy, above High
	// forces Light.
	DistinctLow  int `json:"distinct_low"`  // Default: 20
	DistinctHigh int `json:"distinct_high"` // Default: 100

	// Per-profile brightness offset magnitudes for the temporal dither
	// engine.
	LightOffset  int `json:"light_offset"`  // Default: 2
	MediumOffset int `json:"medium_offset"` // Default: 4
	HeavyOffset  int `json:"heavy_offset"`  // Default: 8
}

// DefaultTuning returns the standard values for 64x64 matrices.
func DefaultTuning() Tuning {
	return Tuning{
		TargetSamples:  100,
		BrightnessHigh: 0.6,
		BrightnessLow:  0.25,
		UsageLow:       0.15,
		UsageHigh:      0.4,
		DistinctLow:    20,
		DistinctHigh:   100,
		LightOffset:    2,
		MediumOffset:   4,
		HeavyOffset:    8,
	}
}

// Validate checks internal consistency of the tuning values.
func (t Tuning) Validate() error {
	if t.TargetSamples < 1 {
		return fmt.Errorf("%w: target samples %d must be positive",
			ledframe.ErrInvalidConfig, t.TargetSamples)
	}
	if t.BrightnessLow < 0 || t.BrightnessHigh > 1 || t.BrightnessLow >= t.BrightnessHigh {
		return fmt.Errorf("%w: brightness thresholds %.2f/%.2f",
			ledframe.ErrInvalidConfig, t.BrightnessLow, t.BrightnessHigh)
	}
	if t.UsageLow < 0 || t.UsageHigh > 1 || t.UsageLow >= t.UsageHigh {
		return fmt.Errorf("%w: usage thresholds %.2f/%.2f",
			ledframe.ErrInvalidConfig, t.UsageLow, t.UsageHigh)
	}
	if t.DistinctLow < 0 || t.DistinctLow >= t.DistinctHigh {
		return fmt.Errorf("%w: distinct-index thresholds %d/%d",
			ledframe.ErrInvalidConfig, t.DistinctLow, t.DistinctHigh)
	}
	for _, off := range []int{t.LightOffset, t.MediumOffset, t.HeavyOffset} {
		if off < 1 || off > 255 {
			return fmt.Errorf("%w: dither offset %d outside [1, 255]",
				ledframe.ErrInvalidConfig, off)
		}
	}
	return nil
}
