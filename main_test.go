package main

import (
	"errors"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"mazegen/pkg/engine/world"
	"mazegen/pkg/game/config"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestRun_WritesImageAndDump(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Width, cfg.Height = 21, 11
	cfg.Seed = 5
	cfg.Output = filepath.Join(dir, "maze.png")
	opts := options{dump: filepath.Join(dir, "maze.txt"), solve: true}

	if err := run(cfg, opts, quietLogger()); err != nil {
		t.Fatalf("run: %v", err)
	}

	f, err := os.Open(cfg.Output)
	if err != nil {
		t.Fatalf("open png: %v", err)
	}
	defer f.Close()
	img, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	if img.Width != 210 || img.Height != 110 {
		t.Errorf("png size = %dx%d, want 210x110", img.Width, img.Height)
	}

	dump, err := os.ReadFile(opts.dump)
	if err != nil {
		t.Fatalf("read dump: %v", err)
	}
	if !strings.Contains(string(dump), "seed: 5") {
		t.Error("dump does not record the seed")
	}
}

func TestRun_InvalidDimensions(t *testing.T) {
	cfg := config.Default()
	cfg.Width = 10
	cfg.Output = filepath.Join(t.TempDir(), "maze.png")
	err := run(cfg, options{}, quietLogger())
	if !errors.Is(err, world.ErrInvalidDimensions) {
		t.Fatalf("run with width 10 = %v, want ErrInvalidDimensions", err)
	}
	if _, statErr := os.Stat(cfg.Output); !os.IsNotExist(statErr) {
		t.Error("an image was written despite invalid dimensions")
	}
}

func TestRun_UnknownGenerator(t *testing.T) {
	cfg := config.Default()
	cfg.Generator = "prim"
	cfg.Output = filepath.Join(t.TempDir(), "maze.png")
	if err := run(cfg, options{}, quietLogger()); err == nil {
		t.Fatal("run with unknown generator returned nil error")
	}
}
