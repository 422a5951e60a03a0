// Command ledshow runs the slideshow loop against a list of artifact
// references, rendering to the terminal as a stand-in for LED matrix
// hardware. References may be local paths or http(s) URLs.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/lisheld/ledframe/display"
	"github.com/lisheld/ledframe/slideshow"
)

func main() {
	refsFile := flag.String("refs", "",
		"Path to a file listing one artifact reference per line")
	cycleTime := flag.Duration("cycle", slideshow.DefaultConfig().CycleTime,
		"How long each image stays on screen")
	tickInterval := flag.Duration("tick", slideshow.DefaultConfig().TickInterval,
		"Interval between temporal dither ticks")
	retryDelay := flag.Duration("retry-delay", slideshow.DefaultConfig().Retry.Delay,
		"Delay before retrying a failed fetch")
	retryAttempts := flag.Int("retry-attempts", slideshow.DefaultConfig().Retry.MaxAttempts,
		"Consecutive failures on one reference before skipping it")
	fetchTimeout := flag.Duration("fetch-timeout", 10*time.Second,
		"Timeout for HTTP fetches")
	debug := flag.Bool("debug", false,
		"Enable debug logging")
	flag.Parse()

	log := newLogger(*debug)
	defer log.Sync()

	refs := flag.Args()
	if *refsFile != "" {
		fromFile, err := readRefs(*refsFile)
		if err != nil {
			log.Fatal("cannot read refs file", zap.String("path", *refsFile), zap.Error(err))
		}
		refs = append(fromFile, refs...)
	}
	if len(refs) == 0 {
		fmt.Println("Please provide artifact references as arguments or via -refs")
		flag.PrintDefaults()
		os.Exit(1)
	}

	cfg := slideshow.Config{
		Refs:         refs,
		CycleTime:    *cycleTime,
		TickInterval: *tickInterval,
		Retry: slideshow.Backoff{
			Delay:       *retryDelay,
			MaxAttempts: *retryAttempts,
		},
	}

	engine, err := display.NewEngine(display.DefaultTuning())
	if err != nil {
		log.Fatal("engine setup failed", zap.Error(err))
	}

	ctrl, err := slideshow.New(cfg,
		slideshow.NewAutoFetcher(*fetchTimeout),
		display.NewTerminalDisplay(os.Stdout),
		engine, log)
	if err != nil {
		log.Fatal("invalid configuration", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("starting slideshow",
		zap.Int("refs", len(refs)),
		zap.Duration("cycle", cfg.CycleTime),
		zap.Duration("tick", cfg.TickInterval))

	if err := ctrl.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal("slideshow stopped", zap.Error(err))
	}
	log.Info("slideshow stopped")
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

// readRefs reads one reference per line, skipping blanks and #-comments.
func readRefs(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var refs []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		refs = append(refs, line)
	}
	return refs, sc.Err()
}
