package prep

import (
	"errors"
	"testing"

	"github.com/lisheld/ledframe"
)

func TestOptionsValidate(t *testing.T) {
	for _, tc := range []struct {
		name   string
		mutate func(*Options)
		want   error
	}{
		{"defaults", func(o *Options) {}, nil},
		{"zero_width", func(o *Options) { o.Width = 0 }, ledframe.ErrInvalidConfig},
		{"negative_height", func(o *Options) { o.Height = -1 }, ledframe.ErrInvalidConfig},
		{"oversize_canvas", func(o *Options) { o.Width = 70000 }, ledframe.ErrInvalidConfig},
		{"brightness_low", func(o *Options) { o.Brightness = 0.05 }, ledframe.ErrInvalidConfig},
		{"brightness_high", func(o *Options) { o.Brightness = 1.5 }, ledframe.ErrInvalidConfig},
		{"contrast_low", func(o *Options) { o.Contrast = 0.4 }, ledframe.ErrInvalidConfig},
		{"contrast_high", func(o *Options) { o.Contrast = 2.5 }, ledframe.ErrInvalidConfig},
		{"saturation_negative", func(o *Options) { o.Saturation = -0.1 }, ledframe.ErrInvalidConfig},
		{"palette_too_small", func(o *Options) { o.PaletteSize = 1 }, ledframe.ErrInvalidPaletteSize},
		{"palette_too_large", func(o *Options) { o.PaletteSize = 300 }, ledframe.ErrInvalidPaletteSize},
	} {
		t.Run(tc.name, func(t *testing.T) {
			opts := DefaultOptions()
			tc.mutate(&opts)
			err := opts.Validate()
			if tc.want == nil {
				if err != nil {
					t.Errorf("Validate = %v, want nil", err)
				}
			} else if !errors.Is(err, tc.want) {
				t.Errorf("Validate = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestNewPreparerRejectsInvalidOptions(t *testing.T) {
	opts := DefaultOptions()
	opts.Brightness = 2.0
	if _, err := NewPreparer(opts, nil); !errors.Is(err, ledframe.ErrInvalidConfig) {
		t.Errorf("NewPreparer = %v, want ErrInvalidConfig", err)
	}
}

func TestPrepareEndToEnd(t *testing.T) {
	p, err := NewPreparer(DefaultOptions(), nil)
	if err != nil {
		t.Fatalf("NewPreparer: %v", err)
	}

	art, err := p.Prepare(CreateColorBarsImage(320, 240))
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	if art.Bitmap.Width != 64 || art.Bitmap.Height != 64 {
		t.Errorf("Bitmap %dx%d, want 64x64", art.Bitmap.Width, art.Bitmap.Height)
	}
	if err := art.Palette.Validate(); err != nil {
		t.Errorf("Palette invalid: %v", err)
	}
	if err := art.Bitmap.Validate(len(art.Palette)); err != nil {
		t.Errorf("Bitmap invalid: %v", err)
	}

	// The prepared artifact must survive the codec byte-for-byte.
	data, err := ledframe.Encode(art)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	back, err := ledframe.Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if back.Bitmap.Width != art.Bitmap.Width || len(back.Palette) != len(art.Palette) {
		t.Error("Round-tripped artifact does not match")
	}
}

func TestPrepareSinglePixelSource(t *testing.T) {
	p, err := NewPreparer(DefaultOptions(), nil)
	if err != nil {
		t.Fatalf("NewPreparer: %v", err)
	}
	_, err = p.Prepare(CreateGradientImage(1, 1))
	if err != nil {
		t.Fatalf("Prepare on 1x1: %v", err)
	}
}
