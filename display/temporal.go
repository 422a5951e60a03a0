package display

import (
	"time"

	"github.com/lisheld/ledframe"
)

// phasePatterns defines the four-phase modulation cycle per profile. A
// true phase selects the positive brightness offset for that tick, a
// false phase the negative one.
var phasePatterns = map[ColorProfile][4]bool{
	ProfileLight:  {false, true, false, true},
	ProfileMedium: {false, false, false, true},
	ProfileHeavy:  {false, true, true, true},
}

// ditherState is the engine's complete per-image state. Adoption swaps
// the whole struct behind a single pointer so a tick can never observe
// a half-replaced state (new palette with an old profile, or vice
// versa).
type ditherState struct {
	bitmap   *ledframe.IndexedBitmap
	base     ledframe.Palette
	profile  ColorProfile
	frame    int
	lastTick time.Time

	// derived caches the four phase palettes. Each one is a pure
	// function of (base, profile, frame), so it is computed once on
	// first use and reused for the rest of the image's tenure.
	derived [4]ledframe.Palette
}

// Engine is the temporal dither engine: a state machine over four
// phases that derives a modulated palette from the adopted base palette
// on every tick. Only the lookup table changes; the index grid is never
// touched, so a tick costs O(paletteSize) regardless of resolution.
//
// The engine is driven from a single cooperative loop and performs no
// internal locking.
type Engine struct {
	tuning Tuning
	state  *ditherState
}

// NewEngine validates the tuning and returns an engine with no adopted
// image.
func NewEngine(tuning Tuning) (*Engine, error) {
	if err := tuning.Validate(); err != nil {
		return nil, err
	}
	return &Engine{tuning: tuning}, nil
}

// Adopt installs a new bitmap/palette pair: the analyzer picks a fresh
// profile, the frame counter resets to 0, and the previous state is
// replaced wholesale. The bitmap and palette become engine-owned and
// must not be mutated by the caller afterward. Returns the chosen
// profile.
func (e *Engine) Adopt(bm *ledframe.IndexedBitmap, pal ledframe.Palette) ColorProfile {
	profile := e.tuning.Analyze(bm, pal)
	e.state = &ditherState{
		bitmap:  bm,
		base:    pal,
		profile: profile,
	}
	return profile
}

// Active reports whether an image has been adopted.
func (e *Engine) Active() bool {
	return e.state != nil
}

// Bitmap returns the adopted index grid, or nil before the first
// adoption.
func (e *Engine) Bitmap() *ledframe.IndexedBitmap {
	if e.state == nil {
		return nil
	}
	return e.state.bitmap
}

// BasePalette returns the adopted base palette, or nil before the
// first adoption.
func (e *Engine) BasePalette() ledframe.Palette {
	if e.state == nil {
		return nil
	}
	return e.state.base
}

// Profile returns the current profile. Before the first adoption it
// reports ProfileMedium.
func (e *Engine) Profile() ColorProfile {
	if e.state == nil {
		return ProfileMedium
	}
	return e.state.profile
}

// Frame returns the current frame counter in [0, 4).
func (e *Engine) Frame() int {
	if e.state == nil {
		return 0
	}
	return e.state.frame
}

// Tick advances the frame counter modulo 4 and returns a palette
// derived from the base palette with the current phase's signed offset
// applied to every channel of every entry, clamped to [0, 255]. The
// derivation always starts from the original base palette, never the
// previously derived one, so repeated ticks cannot drift.
//
// The returned palette is owned by the engine and must not be mutated;
// the same slice is handed out again when the phase repeats.
//
// Tick returns nil before the first adoption.
func (e *Engine) Tick(now time.Time) ledframe.Palette {
	s := e.state
	if s == nil {
		return nil
	}
	s.frame = (s.frame + 1) % 4
	s.lastTick = now

	if s.derived[s.frame] == nil {
		offset := e.offsetFor(s.profile)
		if !phasePatterns[s.profile][s.frame] {
			offset = -offset
		}
		derived := make(ledframe.Palette, len(s.base))
		for i, c := range s.base {
			derived[i] = c.Offset(offset)
		}
		s.derived[s.frame] = derived
	}
	return s.derived[s.frame]
}

func (e *Engine) offsetFor(p ColorProfile) int {
	switch p {
	case ProfileLight:
		return e.tuning.LightOffset
	case ProfileHeavy:
		return e.tuning.HeavyOffset
	}
	return e.tuning.MediumOffset
}
