package prep

import (
	"image"
	"sort"

	"github.com/lisheld/ledframe"
)

// colorCount is one distinct color and its pixel population.
type colorCount struct {
	color ledframe.RGB
	count int
}

// bucket is a contiguous region of color space holding part of the
// image's color histogram.
type bucket struct {
	entries    []colorCount
	population int
}

// medianCutPalette reduces the image's colors to at most n palette
// entries by recursive population-weighted median cuts: the most
// populous splittable bucket is divided at the population median of its
// widest color channel until n buckets exist or no bucket can split.
// Each bucket contributes its population-weighted mean color as one
// palette entry.
//
// The returned palette is deterministic for a given image: the
// histogram is canonically ordered before any split. Images with fewer
// distinct colors than MinPaletteSize are padded by repeating the last
// entry.
func medianCutPalette(img *image.RGBA, n int) ledframe.Palette {
	buckets := []bucket{histogram(img)}

	for len(buckets) < n {
		sx := pickSplittable(buckets)
		if sx < 0 {
			break
		}
		lo, hi := splitBucket(buckets[sx])
		buckets[sx] = lo
		buckets = append(buckets, hi)
	}

	pal := make(ledframe.Palette, 0, len(buckets))
	for _, bk := range buckets {
		pal = append(pal, bk.mean())
	}
	for len(pal) < ledframe.MinPaletteSize {
		pal = append(pal, pal[len(pal)-1])
	}
	return pal
}

// histogram collects the image's distinct colors and their populations,
// sorted canonically by (R, G, B) so later splits are deterministic.
func histogram(img *image.RGBA) bucket {
	counts := make(map[ledframe.RGB]int)
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := img.RGBAAt(x, y)
			counts[ledframe.RGB{R: c.R, G: c.G, B: c.B}]++
		}
	}

	entries := make([]colorCount, 0, len(counts))
	population := 0
	for c, n := range counts {
		entries = append(entries, colorCount{color: c, count: n})
		population += n
	}
	sort.Slice(entries, func(i, j int) bool {
		return colorLess(entries[i].color, entries[j].color)
	})
	return bucket{entries: entries, population: population}
}

func colorLess(a, b ledframe.RGB) bool {
	if a.R != b.R {
		return a.R < b.R
	}
	if a.G != b.G {
		return a.G < b.G
	}
	return a.B < b.B
}

// pickSplittable returns the index of the most populous bucket with at
// least two distinct colors, or -1 when none can split further.
func pickSplittable(buckets []bucket) int {
	sx := -1
	best := 0
	for i, bk := range buckets {
		if len(bk.entries) >= 2 && bk.population > best {
			best = bk.population
			sx = i
		}
	}
	return sx
}

// channelOf extracts one color channel by axis index (0=R, 1=G, 2=B).
func channelOf(c ledframe.RGB, axis int) uint8 {
	switch axis {
	case 0:
		return c.R
	case 1:
		return c.G
	}
	return c.B
}

// widestAxis returns the color channel with the largest value range
// across the bucket.
func (bk bucket) widestAxis() int {
	var minCh, maxCh [3]uint8
	for i := range minCh {
		minCh[i] = 255
	}
	for _, e := range bk.entries {
		for axis := 0; axis < 3; axis++ {
			v := channelOf(e.color, axis)
			if v < minCh[axis] {
				minCh[axis] = v
			}
			if v > maxCh[axis] {
				maxCh[axis] = v
			}
		}
	}
	axis, widest := 0, -1
	for i := 0; i < 3; i++ {
		if r := int(maxCh[i]) - int(minCh[i]); r > widest {
			widest = r
			axis = i
		}
	}
	return axis
}

// splitBucket divides a bucket at the population median along its
// widest channel. Both halves are always non-empty.
func splitBucket(bk bucket) (bucket, bucket) {
	axis := bk.widestAxis()
	entries := make([]colorCount, len(bk.entries))
	copy(entries, bk.entries)
	sort.SliceStable(entries, func(i, j int) bool {
		return channelOf(entries[i].color, axis) < channelOf(entries[j].color, axis)
	})

	cut := len(entries) - 1
	acc := 0
	for i, e := range entries[:len(entries)-1] {
		acc += e.count
		if acc*2 >= bk.population {
			cut = i + 1
			break
		}
	}

	lo := bucket{entries: entries[:cut]}
	hi := bucket{entries: entries[cut:]}
	for _, e := range lo.entries {
		lo.population += e.count
	}
	hi.population = bk.population - lo.population
	return lo, hi
}

// mean returns the bucket's population-weighted mean color.
func (bk bucket) mean() ledframe.RGB {
	if bk.population == 0 {
		return ledframe.RGB{}
	}
	var r, g, b, n int64
	for _, e := range bk.entries {
		w := int64(e.count)
		r += int64(e.color.R) * w
		g += int64(e.color.G) * w
		b += int64(e.color.B) * w
		n += w
	}
	return ledframe.RGB{
		R: uint8((r + n/2) / n),
		G: uint8((g + n/2) / n),
		B: uint8((b + n/2) / n),
	}
}
