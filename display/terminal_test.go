package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lisheld/ledframe"
)

func TestTerminalDisplayShow(t *testing.T) {
	bm := ledframe.NewIndexedBitmap(8, 8)
	for i := range bm.Pix {
		bm.Pix[i] = uint8(i % 2)
	}
	pal := ledframe.Palette{
		{R: 0, G: 0, B: 0},
		{R: 255, G: 255, B: 255},
	}

	var buf bytes.Buffer
	d := NewTerminalDisplay(&buf)
	if err := d.Show(bm, pal); err != nil {
		t.Fatalf("Show failed: %v", err)
	}
	first := buf.String()
	if first == "" {
		t.Fatal("Expected rendered output, got none")
	}
	if strings.HasPrefix(first, "\033[H") {
		t.Error("Expected no cursor repositioning before the first frame")
	}

	buf.Reset()
	if err := d.Show(bm, pal); err != nil {
		t.Fatalf("Second Show failed: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "\033[H") {
		t.Error("Expected cursor repositioning before subsequent frames")
	}
}

func TestTerminalDisplayUpdatePalette(t *testing.T) {
	var buf bytes.Buffer
	d := NewTerminalDisplay(&buf)
	if err := d.UpdatePalette(ledframe.Palette{{R: 1, G: 2, B: 3}}); err != nil {
		t.Fatalf("UpdatePalette failed: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Expected palette-only update to write nothing, wrote %d bytes", buf.Len())
	}
}
