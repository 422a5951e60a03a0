package ledframe

import (
	"encoding/binary"
	"fmt"
)

// Artifact is the persisted/transmitted unit shared between the
// preparation pipeline and the display runtime: an indexed bitmap plus
// the palette its indices resolve through.
type Artifact struct {
	Bitmap  *IndexedBitmap
	Palette Palette
}

// Binary artifact layout, big-endian:
//
//	offset  size  field
//	0       4     magic "LEDA"
//	4       1     version (currently 1)
//	5       2     width  (uint16)
//	7       2     height (uint16)
//	9       2     palette length (uint16, 2-256)
//	11      3*N   palette table, R G B per entry
//	11+3*N  W*H   index data, one byte per pixel, row-major
//
// The record is self-describing and must round-trip exactly: encoding a
// decoded record reproduces the original bytes, and decoding an encoded
// artifact reproduces the palette and indices bit for bit.
const (
	artifactMagic   = "LEDA"
	artifactVersion = 1
	headerSize      = 11
)

// Encode serializes an artifact into a binary record. The artifact must
// be structurally consistent: palette length within bounds, positive
// dimensions that fit a uint16, and every index below the palette
// length.
func Encode(a *Artifact) ([]byte, error) {
	if err := a.Palette.Validate(); err != nil {
		return nil, err
	}
	if err := a.Bitmap.Validate(len(a.Palette)); err != nil {
		return nil, err
	}
	if a.Bitmap.Width > 0xFFFF || a.Bitmap.Height > 0xFFFF {
		return nil, fmt.Errorf("%w: dimensions %dx%d exceed uint16",
			ErrInvalidImage, a.Bitmap.Width, a.Bitmap.Height)
	}

	buf := make([]byte, 0, headerSize+3*len(a.Palette)+len(a.Bitmap.Pix))
	buf = append(buf, artifactMagic...)
	buf = append(buf, artifactVersion)
	buf = binary.BigEndian.AppendUint16(buf, uint16(a.Bitmap.Width))
	buf = binary.BigEndian.AppendUint16(buf, uint16(a.Bitmap.Height))
	buf = binary.BigEndian.AppendUint16(buf, uint16(len(a.Palette)))
	for _, c := range a.Palette {
		buf = append(buf, c.R, c.G, c.B)
	}
	buf = append(buf, a.Bitmap.Pix...)
	return buf, nil
}

// Decode parses a binary record back into an artifact. It validates the
// magic, version, palette length bounds, exact record length, and that
// every index resolves within the palette; any violation fails with
// ErrCorruptArtifact.
func Decode(data []byte) (*Artifact, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("%w: record truncated at %d bytes",
			ErrCorruptArtifact, len(data))
	}
	if string(data[:4]) != artifactMagic {
		return nil, fmt.Errorf("%w: bad magic %q", ErrCorruptArtifact, data[:4])
	}
	if data[4] != artifactVersion {
		return nil, fmt.Errorf("%w: unsupported version %d",
			ErrCorruptArtifact, data[4])
	}
	width := int(binary.BigEndian.Uint16(data[5:7]))
	height := int(binary.BigEndian.Uint16(data[7:9]))
	palLen := int(binary.BigEndian.Uint16(data[9:11]))

	if width == 0 || height == 0 {
		return nil, fmt.Errorf("%w: zero dimension %dx%d",
			ErrCorruptArtifact, width, height)
	}
	if palLen < MinPaletteSize || palLen > MaxPaletteSize {
		return nil, fmt.Errorf("%w: palette length %d outside %d-%d",
			ErrCorruptArtifact, palLen, MinPaletteSize, MaxPaletteSize)
	}
	want := headerSize + 3*palLen + width*height
	if len(data) != want {
		return nil, fmt.Errorf("%w: record is %d bytes, want %d",
			ErrCorruptArtifact, len(data), want)
	}

	pal := make(Palette, palLen)
	off := headerSize
	for i := range pal {
		pal[i] = RGB{R: data[off], G: data[off+1], B: data[off+2]}
		off += 3
	}

	bm := &IndexedBitmap{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height),
	}
	copy(bm.Pix, data[off:])
	for i, idx := range bm.Pix {
		if int(idx) >= palLen {
			return nil, fmt.Errorf("%w: index %d at offset %d exceeds palette length %d",
				ErrCorruptArtifact, idx, i, palLen)
		}
	}
	return &Artifact{Bitmap: bm, Palette: pal}, nil
}
