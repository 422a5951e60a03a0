// Package prep implements the deterministic image-preparation pipeline:
// it crops, resizes, color-corrects, and quantizes an arbitrary
// photograph into a fixed-size indexed bitmap with a bounded palette,
// ready for encoding as an artifact.
package prep

import (
	"fmt"
	"image"
	"io"
	"os"

	_ "image/gif"  // Register GIF decoder
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder

	_ "golang.org/x/image/bmp"  // Register BMP decoder
	_ "golang.org/x/image/tiff" // Register TIFF decoder
	_ "golang.org/x/image/webp" // Register WebP decoder

	"github.com/lisheld/ledframe"
)

// LoadImage loads a source photograph from the specified path.
// Supports PNG, JPEG, GIF, BMP, TIFF, and WebP formats.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	return DecodeImage(f)
}

// DecodeImage decodes a source photograph from a reader. Undecodable
// data fails with ErrInvalidImage.
func DecodeImage(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ledframe.ErrInvalidImage, err)
	}
	return img, nil
}
