package ledframe

import (
	"image"
	"math"
	"testing"
)

func TestOffsetClamps(t *testing.T) {
	for _, tc := range []struct {
		name  string
		in    RGB
		delta int
		want  RGB
	}{
		{"positive", RGB{100, 100, 100}, 8, RGB{108, 108, 108}},
		{"negative", RGB{100, 100, 100}, -8, RGB{92, 92, 92}},
		{"clamp_high", RGB{250, 128, 255}, 12, RGB{255, 140, 255}},
		{"clamp_low", RGB{5, 128, 0}, -12, RGB{0, 116, 0}},
		{"zero", RGB{77, 88, 99}, 0, RGB{77, 88, 99}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.Offset(tc.delta); got != tc.want {
				t.Errorf("Offset(%d) on %v = %v, want %v",
					tc.delta, tc.in, got, tc.want)
			}
		})
	}
}

func TestLuminanceEndpoints(t *testing.T) {
	if l := (RGB{0, 0, 0}).Luminance(); l != 0 {
		t.Errorf("Black luminance = %f, want 0", l)
	}
	if l := (RGB{255, 255, 255}).Luminance(); math.Abs(l-1.0) > 1e-9 {
		t.Errorf("White luminance = %f, want 1", l)
	}
	// Green carries the dominant BT.601 weight.
	g := (RGB{0, 255, 0}).Luminance()
	r := (RGB{255, 0, 0}).Luminance()
	b := (RGB{0, 0, 255}).Luminance()
	if !(g > r && r > b) {
		t.Errorf("Luminance ordering wrong: G=%f R=%f B=%f", g, r, b)
	}
}

func TestPixelSourceBranches(t *testing.T) {
	bm := NewIndexedBitmap(2, 2)
	bm.Set(1, 0, 1)
	pal := Palette{{0, 0, 0}, {255, 0, 0}}

	indexed := IndexedSource(bm, pal)
	if indexed.Kind() != SourceIndexed {
		t.Fatalf("Kind = %v, want SourceIndexed", indexed.Kind())
	}
	if got := indexed.ColorAt(1, 0); got != (RGB{255, 0, 0}) {
		t.Errorf("ColorAt(1,0) = %v, want red", got)
	}
	if got := indexed.ColorAt(0, 0); got != (RGB{0, 0, 0}) {
		t.Errorf("ColorAt(0,0) = %v, want black", got)
	}

	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(0, 1, RGB{0, 255, 0}.ToColor())
	direct := DirectSource(img)
	if direct.Kind() != SourceDirect {
		t.Fatalf("Kind = %v, want SourceDirect", direct.Kind())
	}
	if got := direct.ColorAt(0, 1); got != (RGB{0, 255, 0}) {
		t.Errorf("ColorAt(0,1) = %v, want green", got)
	}

	// Materialized indexed source resolves through the palette.
	out := indexed.Image()
	if c := out.RGBAAt(1, 0); c.R != 255 || c.G != 0 || c.B != 0 {
		t.Errorf("Image() pixel (1,0) = %v, want red", c)
	}
}

func TestPixelSourceStaleIndexResolvesBlack(t *testing.T) {
	bm := NewIndexedBitmap(1, 1)
	bm.Set(0, 0, 5) // past the end of the palette
	src := IndexedSource(bm, Palette{{10, 10, 10}, {20, 20, 20}})
	if got := src.ColorAt(0, 0); got != (RGB{}) {
		t.Errorf("ColorAt with stale index = %v, want black", got)
	}
}
