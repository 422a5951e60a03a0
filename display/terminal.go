package display

import (
	"fmt"
	"io"

	"github.com/kevin-cantwell/dotmatrix"

	"github.com/lisheld/ledframe"
)

// TerminalDisplay renders frames as braille dot-matrix output, giving
// the slideshow a working display without LED hardware. Output is
// 1-bit, so palette-only refreshes from the dither engine change
// nothing visible; UpdatePalette is accepted and dropped.
type TerminalDisplay struct {
	w     io.Writer
	enc   *dotmatrix.Encoder
	shown bool
}

// NewTerminalDisplay creates a terminal display writing to w.
func NewTerminalDisplay(w io.Writer) *TerminalDisplay {
	return &TerminalDisplay{
		w:   w,
		enc: dotmatrix.NewEncoder(dotmatrix.Config{Luminosity: 0.45}),
	}
}

// Show renders the bitmap resolved through the palette.
func (d *TerminalDisplay) Show(bm *ledframe.IndexedBitmap, pal ledframe.Palette) error {
	img := ledframe.IndexedSource(bm, pal).Image()
	if d.shown {
		// Reposition the cursor so successive frames overwrite in
		// place instead of scrolling.
		if _, err := fmt.Fprint(d.w, "\033[H"); err != nil {
			return err
		}
	}
	if err := d.enc.Encode(d.w, img); err != nil {
		return fmt.Errorf("terminal render: %w", err)
	}
	d.shown = true
	return nil
}

// UpdatePalette implements the palette-only refresh of the Display
// contract. Braille output carries no color, so there is nothing to
// redraw.
func (d *TerminalDisplay) UpdatePalette(ledframe.Palette) error {
	return nil
}
