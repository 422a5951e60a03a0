package slideshow

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/lisheld/ledframe"
	"github.com/lisheld/ledframe/display"
)

// Controller runs the slideshow: a single cooperative loop interleaving
// high-frequency dither ticks with low-frequency image changes. There
// is no parallel execution; fetching and decoding block the loop, which
// is an accepted latency cost, and the engine resumes cleanly from the
// freshly adopted state afterward.
type Controller struct {
	cfg     Config
	fetcher Fetcher
	disp    display.Display
	engine  *display.Engine
	log     *zap.Logger

	idx        int       // next reference to fetch
	lastChange time.Time // when the current image was adopted
	nextCycle  time.Time // when the next image-change attempt is due
	attempts   int       // consecutive failures on the current reference
}

// New validates the configuration and assembles a controller. A nil
// logger disables logging.
func New(cfg Config, fetcher Fetcher, disp display.Display, engine *display.Engine, log *zap.Logger) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if fetcher == nil || disp == nil || engine == nil {
		return nil, fmt.Errorf("%w: controller requires a fetcher, display, and engine",
			ledframe.ErrInvalidConfig)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{
		cfg:     cfg,
		fetcher: fetcher,
		disp:    disp,
		engine:  engine,
		log:     log,
	}, nil
}

// Run drives the loop until the context is canceled, which is the only
// way to stop it. Cycle failures keep the previous image on screen and
// are never fatal.
func (c *Controller) Run(ctx context.Context) error {
	c.cycle(ctx, time.Now())

	ticker := time.NewTicker(c.cfg.TickInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			if !now.Before(c.nextCycle) {
				c.cycle(ctx, now)
			}
			if pal := c.engine.Tick(now); pal != nil {
				if err := c.disp.UpdatePalette(pal); err != nil {
					c.log.Warn("palette update rejected", zap.Error(err))
				}
			}
		}
	}
}

// cycle makes one attempt to advance the slideshow: fetch the next
// reference, decode it, adopt it, and show it. On failure the previous
// state is left untouched and the next attempt is scheduled
// after the backoff delay rather than immediately.
func (c *Controller) cycle(ctx context.Context, now time.Time) {
	ref := c.cfg.Refs[c.idx]
	art, err := c.fetchDecode(ctx, ref)
	if err != nil {
		c.attempts++
		c.nextCycle = now.Add(c.cfg.Retry.Delay)
		c.log.Error("cycle failed, keeping previous image",
			zap.String("ref", ref),
			zap.Int("attempt", c.attempts),
			zap.Error(err))
		if c.attempts >= c.cfg.Retry.MaxAttempts {
			c.log.Warn("giving up on reference",
				zap.String("ref", ref),
				zap.Int("attempts", c.attempts))
			c.advance()
		}
		return
	}

	profile := c.engine.Adopt(art.Bitmap, art.Palette)
	if err := c.disp.Show(art.Bitmap, art.Palette); err != nil {
		// The engine state is already consistent; a display hiccup on
		// the full frame is recoverable through later palette updates.
		c.log.Warn("display rejected frame", zap.String("ref", ref), zap.Error(err))
	}
	c.lastChange = now
	c.nextCycle = now.Add(c.cfg.CycleTime)
	c.advance()
	c.log.Info("image adopted",
		zap.String("ref", ref),
		zap.Stringer("profile", profile),
		zap.Int("palette", len(art.Palette)))
}

func (c *Controller) advance() {
	c.idx = (c.idx + 1) % len(c.cfg.Refs)
	c.attempts = 0
}

// fetchDecode performs the single fetch attempt for this cycle and
// decodes the artifact.
func (c *Controller) fetchDecode(ctx context.Context, ref string) (*ledframe.Artifact, error) {
	data, err := c.fetcher.Fetch(ctx, ref)
	if err != nil {
		return nil, err
	}
	art, err := ledframe.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", ref, err)
	}
	return art, nil
}
