package prep

import (
	"image"

	"go.uber.org/zap"

	"github.com/lisheld/ledframe"
)

// Preparer runs the full preparation pipeline with a fixed, validated
// configuration: normalize geometry, enhance colors, quantize to an
// indexed bitmap.
type Preparer struct {
	opts Options
	log  *zap.Logger
}

// NewPreparer validates the options and returns a Preparer. A nil
// logger disables logging.
func NewPreparer(opts Options, log *zap.Logger) (*Preparer, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Preparer{opts: opts, log: log}, nil
}

// Options returns the preparer's configuration.
func (p *Preparer) Options() Options {
	return p.opts
}

// Prepare converts a source photograph into an artifact. Errors abort
// this image only; the preparer holds no per-image state.
func (p *Preparer) Prepare(src image.Image) (*ledframe.Artifact, error) {
	bounds := src.Bounds()
	canvas, err := Normalize(src, p.opts.Width, p.opts.Height)
	if err != nil {
		return nil, err
	}
	enhanced := Enhance(canvas, p.opts.Contrast, p.opts.Brightness, p.opts.Saturation)
	bitmap, palette, err := Quantize(enhanced, p.opts.PaletteSize, p.opts.SpatialDither)
	if err != nil {
		return nil, err
	}

	p.log.Debug("prepared image",
		zap.Int("sourceWidth", bounds.Dx()),
		zap.Int("sourceHeight", bounds.Dy()),
		zap.Int("width", bitmap.Width),
		zap.Int("height", bitmap.Height),
		zap.Int("palette", len(palette)),
		zap.Bool("spatialDither", p.opts.SpatialDither))

	return &ledframe.Artifact{Bitmap: bitmap, Palette: palette}, nil
}

// PrepareFile loads a photograph from disk and prepares it.
func (p *Preparer) PrepareFile(path string) (*ledframe.Artifact, error) {
	img, err := LoadImage(path)
	if err != nil {
		return nil, err
	}
	return p.Prepare(img)
}
