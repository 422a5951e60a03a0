// Command ledconvert prepares source photos for an LED matrix: resize
// and center-crop, enhance, quantize to an indexed palette, and write
// the result as a binary artifact ready for the slideshow.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/lisheld/ledframe"
	"github.com/lisheld/ledframe/display"
	"github.com/lisheld/ledframe/prep"
)

var imageExtensions = map[string]bool{
	".bmp":  true,
	".gif":  true,
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".tif":  true,
	".tiff": true,
	".webp": true,
}

func main() {
	inputPath := flag.String("input", "",
		"Path to the input image, or a directory of images (required)")
	outputPath := flag.String("output", "",
		"Path for the output artifact; for directory input, the output directory")
	size := flag.String("size", "64x64",
		"Target matrix dimensions as WIDTHxHEIGHT")
	brightness := flag.Float64("brightness", prep.DefaultOptions().Brightness,
		"Brightness factor (0.1-1.0)")
	contrast := flag.Float64("contrast", prep.DefaultOptions().Contrast,
		"Contrast factor (0.5-2.0)")
	saturation := flag.Float64("saturation", prep.DefaultOptions().Saturation,
		"Saturation factor (0.0-5.0)")
	colors := flag.Int("colors", prep.DefaultOptions().PaletteSize,
		"Palette size (2-256)")
	spatialDither := flag.Bool("dither", false,
		"Apply Floyd-Steinberg dithering during quantization")
	preview := flag.Bool("preview", false,
		"Render each converted artifact to the terminal")
	debug := flag.Bool("debug", false,
		"Enable debug logging")
	flag.Parse()

	log := newLogger(*debug)
	defer log.Sync()

	if *inputPath == "" {
		fmt.Println("Please provide the image using the -input flag")
		flag.PrintDefaults()
		os.Exit(1)
	}

	width, height, err := parseSize(*size)
	if err != nil {
		log.Fatal("invalid -size", zap.String("size", *size), zap.Error(err))
	}

	opts := prep.DefaultOptions()
	opts.Width = width
	opts.Height = height
	opts.Brightness = *brightness
	opts.Contrast = *contrast
	opts.Saturation = *saturation
	opts.PaletteSize = *colors
	opts.SpatialDither = *spatialDither

	if opts.SpatialDither {
		log.Warn("spatial dithering is combined with the runtime temporal dither; " +
			"inspect the result for banding artifacts")
	}

	p, err := prep.NewPreparer(opts, log)
	if err != nil {
		log.Fatal("invalid options", zap.Error(err))
	}

	info, err := os.Stat(*inputPath)
	if err != nil {
		log.Fatal("cannot read input", zap.String("input", *inputPath), zap.Error(err))
	}

	if info.IsDir() {
		convertDirectory(p, log, *inputPath, *outputPath, *preview)
		return
	}

	out := *outputPath
	if out == "" {
		out = replaceExt(*inputPath, ".led")
	}
	if err := convertOne(p, *inputPath, out, *preview); err != nil {
		log.Fatal("conversion failed", zap.String("input", *inputPath), zap.Error(err))
	}
	log.Info("converted", zap.String("input", *inputPath), zap.String("output", out))
}

func newLogger(debug bool) *zap.Logger {
	var log *zap.Logger
	var err error
	if debug {
		log, err = zap.NewDevelopment()
	} else {
		log, err = zap.NewProduction()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	return log
}

// parseSize parses a WIDTHxHEIGHT string such as "64x64".
func parseSize(s string) (width, height int, err error) {
	w, h, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("expected WIDTHxHEIGHT, got %q", s)
	}
	width, err = strconv.Atoi(w)
	if err != nil {
		return 0, 0, fmt.Errorf("bad width %q: %v", w, err)
	}
	height, err = strconv.Atoi(h)
	if err != nil {
		return 0, 0, fmt.Errorf("bad height %q: %v", h, err)
	}
	return width, height, nil
}

func replaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

// convertDirectory converts every recognized image in dir. A failing
// file is logged and skipped; the batch continues.
func convertDirectory(p *prep.Preparer, log *zap.Logger, dir, outDir string, preview bool) {
	if outDir == "" {
		outDir = dir
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		log.Fatal("cannot create output directory", zap.String("dir", outDir), zap.Error(err))
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Fatal("cannot list input directory", zap.String("dir", dir), zap.Error(err))
	}

	converted, failed := 0, 0
	for _, entry := range entries {
		if entry.IsDir() || !imageExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			continue
		}
		in := filepath.Join(dir, entry.Name())
		out := filepath.Join(outDir, replaceExt(entry.Name(), ".led"))
		if err := convertOne(p, in, out, preview); err != nil {
			log.Error("skipping file", zap.String("input", in), zap.Error(err))
			failed++
			continue
		}
		log.Info("converted", zap.String("input", in), zap.String("output", out))
		converted++
	}
	log.Info("batch complete", zap.Int("converted", converted), zap.Int("failed", failed))
	if converted == 0 {
		os.Exit(1)
	}
}

func convertOne(p *prep.Preparer, in, out string, preview bool) error {
	art, err := p.PrepareFile(in)
	if err != nil {
		return err
	}
	data, err := ledframe.Encode(art)
	if err != nil {
		return err
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}
	if preview {
		term := display.NewTerminalDisplay(os.Stdout)
		if err := term.Show(art.Bitmap, art.Palette); err != nil {
			return err
		}
	}
	return nil
}
