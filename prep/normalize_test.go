package prep

import (
	"errors"
	"image"
	"testing"

	"github.com/lisheld/ledframe"
)

func TestNormalizeProducesExactCanvasSize(t *testing.T) {
	for _, tc := range []struct {
		name                 string
		srcW, srcH           int
		targetW, targetH     int
	}{
		{"wider_source", 300, 100, 64, 64},
		{"taller_source", 100, 300, 64, 64},
		{"matching_aspect", 128, 128, 64, 64},
		{"upscale", 10, 10, 64, 64},
		{"single_pixel", 1, 1, 64, 64},
		{"extreme_wide", 2000, 3, 64, 64},
		{"extreme_tall", 3, 2000, 64, 64},
		{"rectangular_target", 640, 480, 64, 32},
	} {
		t.Run(tc.name, func(t *testing.T) {
			src := CreateGradientImage(tc.srcW, tc.srcH)
			out, err := Normalize(src, tc.targetW, tc.targetH)
			if err != nil {
				t.Fatalf("Normalize: %v", err)
			}
			if out.Bounds().Dx() != tc.targetW || out.Bounds().Dy() != tc.targetH {
				t.Errorf("Output dimensions %dx%d, want %dx%d",
					out.Bounds().Dx(), out.Bounds().Dy(), tc.targetW, tc.targetH)
			}
		})
	}
}

func TestNormalizeRejectsDegenerateSource(t *testing.T) {
	for _, tc := range []struct {
		name string
		src  image.Image
	}{
		{"zero_width", image.NewRGBA(image.Rect(0, 0, 0, 10))},
		{"zero_height", image.NewRGBA(image.Rect(0, 0, 10, 0))},
		{"empty", image.NewRGBA(image.Rectangle{})},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Normalize(tc.src, 64, 64)
			if !errors.Is(err, ledframe.ErrInvalidImage) {
				t.Errorf("Normalize = %v, want ErrInvalidImage", err)
			}
		})
	}
}

func TestNormalizeCropsCenter(t *testing.T) {
	// Wide image: blue margins, red center square. The symmetric crop
	// must keep only the red center.
	src := CreateSolidImage(300, 100, ledframe.RGB{B: 255})
	for y := 0; y < 100; y++ {
		for x := 100; x < 200; x++ {
			src.SetRGBA(x, y, ledframe.RGB{R: 255}.ToColor())
		}
	}

	out, err := Normalize(src, 50, 50)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	c := out.RGBAAt(25, 25)
	if c.R < 200 || c.B > 55 {
		t.Errorf("Center pixel %v, want predominantly red", c)
	}
}

func TestCropRect(t *testing.T) {
	for _, tc := range []struct {
		name             string
		src              image.Rectangle
		targetW, targetH int
		want             image.Rectangle
	}{
		{"wider", image.Rect(0, 0, 300, 100), 64, 64, image.Rect(100, 0, 200, 100)},
		{"taller", image.Rect(0, 0, 100, 300), 64, 64, image.Rect(0, 100, 100, 200)},
		{"equal", image.Rect(0, 0, 128, 128), 64, 64, image.Rect(0, 0, 128, 128)},
		{"offset_bounds", image.Rect(10, 20, 310, 120), 64, 64, image.Rect(110, 20, 210, 120)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := cropRect(tc.src, tc.targetW, tc.targetH); got != tc.want {
				t.Errorf("cropRect(%v) = %v, want %v", tc.src, got, tc.want)
			}
		})
	}
}
