package display

import "github.com/lisheld/ledframe"

// Display is the narrow contract to the physical (or emulated) matrix.
// Show submits a full frame; UpdatePalette swaps only the active color
// table for an already-shown bitmap, which is how dither ticks reach
// the hardware without re-submitting pixel data.
//
// Hardware drivers live outside this module; the in-repo
// TerminalDisplay exists so the slideshow can run end to end without a
// matrix attached.
type Display interface {
	Show(bm *ledframe.IndexedBitmap, pal ledframe.Palette) error
	UpdatePalette(pal ledframe.Palette) error
}
