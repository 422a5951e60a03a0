package display

import (
	"math"

	"github.com/lisheld/ledframe"
)

// ColorProfile describes how aggressively an image should be temporally
// dithered, derived from its contrast and color diversity. It is
// computed per adopted image and never persisted.
type ColorProfile int

const (
	// ProfileLight applies small, frequent offsets; suits high-contrast,
	// color-rich images.
	ProfileLight ColorProfile = iota
	// ProfileMedium is the safe default.
	ProfileMedium
	// ProfileHeavy applies large offsets; suits flat, low-diversity
	// images that band badly.
	ProfileHeavy
)

func (p ColorProfile) String() string {
	switch p {
	case ProfileLight:
		return "light"
	case ProfileMedium:
		return "medium"
	case ProfileHeavy:
		return "heavy"
	}
	return "unknown"
}

// SampleStats summarizes a grid sample of an indexed bitmap resolved
// through its palette.
type SampleStats struct {
	// Samples is the number of pixels that resolved to a valid palette
	// entry. Zero means the sample was degenerate.
	Samples int
	// DistinctIndices is the count of distinct palette indices
	// observed.
	DistinctIndices int
	// BrightnessRange is max(L) - min(L) over the sampled luminances,
	// each normalized to [0, 1].
	BrightnessRange float64
	// ColorUsageRatio is DistinctIndices / len(palette).
	ColorUsageRatio float64
}

// Sample walks a regular grid over the bitmap and gathers luminance and
// index-diversity statistics. The grid step is derived from the target
// sample count independently per axis, so large bitmaps are
// sub-sampled rather than fully scanned. Indices outside the palette
// contribute nothing; a bitmap yielding no valid samples reports
// Samples == 0.
func Sample(bm *ledframe.IndexedBitmap, pal ledframe.Palette, targetSamples int) SampleStats {
	var stats SampleStats
	if bm == nil || len(pal) == 0 || bm.Width <= 0 || bm.Height <= 0 {
		return stats
	}

	perAxis := int(math.Sqrt(float64(targetSamples)))
	if perAxis < 1 {
		perAxis = 1
	}
	stepX := bm.Width / perAxis
	if stepX < 1 {
		stepX = 1
	}
	stepY := bm.Height / perAxis
	if stepY < 1 {
		stepY = 1
	}

	seen := make(map[uint8]struct{})
	minL, maxL := math.MaxFloat64, -math.MaxFloat64
	for y := 0; y < bm.Height; y += stepY {
		for x := 0; x < bm.Width; x += stepX {
			idx := bm.At(x, y)
			if int(idx) >= len(pal) {
				continue
			}
			l := pal[idx].Luminance()
			if l < minL {
				minL = l
			}
			if l > maxL {
				maxL = l
			}
			seen[idx] = struct{}{}
			stats.Samples++
		}
	}
	if stats.Samples == 0 {
		return stats
	}

	stats.DistinctIndices = len(seen)
	stats.BrightnessRange = maxL - minL
	stats.ColorUsageRatio = float64(len(seen)) / float64(len(pal))
	return stats
}

// Classify maps sample statistics to a profile. The rules apply in
// priority order with later rules overriding earlier ones:
//
//  1. brightness range: > high -> Light, < low -> Heavy, else Medium
//  2. color usage ratio: < low forces Heavy, > high forces Light
//  3. distinct indices: < low forces Heavy, > high forces Light
//
// A degenerate sample (no valid pixels) classifies Medium: analysis
// must never block image display.
func (t Tuning) Classify(stats SampleStats) ColorProfile {
	if stats.Samples == 0 {
		return ProfileMedium
	}

	profile := ProfileMedium
	switch {
	case stats.BrightnessRange > t.BrightnessHigh:
		profile = ProfileLight
	case stats.BrightnessRange < t.BrightnessLow:
		profile = ProfileHeavy
	}

	switch {
	case stats.ColorUsageRatio < t.UsageLow:
		profile = ProfileHeavy
	case stats.ColorUsageRatio > t.UsageHigh:
		profile = ProfileLight
	}

	switch {
	case stats.DistinctIndices < t.DistinctLow:
		profile = ProfileHeavy
	case stats.DistinctIndices > t.DistinctHigh:
		profile = ProfileLight
	}

	return profile
}

// Analyze samples the bitmap and classifies it in one step.
func (t Tuning) Analyze(bm *ledframe.IndexedBitmap, pal ledframe.Palette) ColorProfile {
	return t.Classify(Sample(bm, pal, t.TargetSamples))
}
