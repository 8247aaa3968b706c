package main

import (
	"flag"
	"math/rand"
	"os"
	"time"

	"github.com/leonelquinteros/gotext"
	"github.com/sirupsen/logrus"

	"mazegen/pkg/engine/terminal"
	"mazegen/pkg/engine/world"
	"mazegen/pkg/game/config"
	"mazegen/pkg/game/devtools"
	"mazegen/pkg/game/generator"
	"mazegen/pkg/game/renderer"
	"mazegen/pkg/game/renderer/tui"
	"mazegen/pkg/game/solver"
)

// options are the per-run switches that only exist as flags
type options struct {
	console bool
	dump    string
	solve   bool
}

func initGettext(cfg config.Config) {
	gotext.Configure(cfg.LocaleDir, cfg.Language, "default")
}

// generateGrid builds and carves a grid with the configured generator
func generateGrid(cfg config.Config, rng *rand.Rand, log *logrus.Logger) (*world.Grid, error) {
	grid, err := world.NewGrid(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}

	gen, err := generator.New(cfg.Generator,
		generator.WithPlacementAttempts(cfg.PlacementAttempts),
		generator.WithProgress(func(carved, total int, percent float64) {
			log.WithFields(logrus.Fields{
				"carved":  carved,
				"total":   total,
				"percent": percent,
			}).Info(gotext.Get("GENERATION_PROGRESS"))
		}),
	)
	if err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"width":     cfg.Width,
		"height":    cfg.Height,
		"generator": gen.Name(),
		"seed":      cfg.Seed,
	}).Info(gotext.Get("GENERATING_MAZE"))

	started := time.Now()
	if err := gen.Generate(grid, rng); err != nil {
		return nil, err
	}

	report := solver.Analyze(grid)
	log.WithFields(logrus.Fields{
		"junctions":  report.Junctions,
		"connectors": report.Connectors,
		"perfect":    report.IsPerfect(),
		"elapsed":    time.Since(started).String(),
	}).Info(gotext.Get("MAZE_GENERATED"))

	return grid, nil
}

// buildRenderers assembles the output backends for a finished grid
func buildRenderers(cfg config.Config, opts options, grid *world.Grid, log *logrus.Logger) ([]renderer.Renderer, error) {
	var overlay renderer.Overlay
	if opts.solve {
		path, err := solver.SolutionPath(grid)
		if err != nil {
			return nil, err
		}
		overlay = path
		log.WithField("length", len(path)).Info(gotext.Get("SOLUTION_FOUND"))
	}

	img := renderer.NewImageRenderer(cfg.Output)
	img.CellSize = cfg.CellSize
	img.Overlay = overlay
	renderers := []renderer.Renderer{img}

	if opts.console {
		console := tui.New(os.Stdout)
		console.Colorize = terminal.IsTerminal()
		console.Overlay = overlay
		if !console.FitsTerminal(grid) {
			log.WithFields(logrus.Fields{
				"width":    grid.Width(),
				"terminal": terminal.GetWidth(),
			}).Warn(gotext.Get("CONSOLE_TOO_NARROW"))
		}
		renderers = append(renderers, console)
	}

	return renderers, nil
}

// run generates one maze and writes every requested output
func run(cfg config.Config, opts options, log *logrus.Logger) error {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(cfg.Seed))

	grid, err := generateGrid(cfg, rng, log)
	if err != nil {
		return err
	}

	renderers, err := buildRenderers(cfg, opts, grid, log)
	if err != nil {
		return err
	}
	for _, r := range renderers {
		if err := r.Render(grid); err != nil {
			return err
		}
		log.WithField("renderer", r.Name()).Info(gotext.Get("MAZE_RENDERED"))
	}

	if opts.dump != "" {
		path, err := devtools.DumpMapToFile(opts.dump, grid, devtools.Metadata{Seed: cfg.Seed, Generator: cfg.Generator})
		if err != nil {
			return err
		}
		log.WithField("path", path).Info(gotext.Get("MAP_DUMPED"))
	}

	return nil
}

func main() {
	log := logrus.New()

	cfg, loadedEnv, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}

	flag.IntVar(&cfg.Width, "width", cfg.Width, "maze width in cells (odd, at least 3)")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "maze height in cells (odd, at least 3)")
	flag.IntVar(&cfg.CellSize, "cell", cfg.CellSize, "pixel size of one cell in the PNG")
	flag.StringVar(&cfg.Output, "out", cfg.Output, "PNG output path")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 = time based)")
	flag.StringVar(&cfg.Generator, "generator", cfg.Generator, "carving algorithm: backtracker or recursive")
	var opts options
	flag.BoolVar(&opts.console, "console", false, "also print the maze to the terminal")
	flag.StringVar(&opts.dump, "dump", "", "write a debug map dump to this file")
	flag.BoolVar(&opts.solve, "solve", false, "mark the start-to-end route in the outputs")
	flag.Parse()

	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	} else {
		log.WithError(err).Warn("unknown log level, keeping info")
	}
	if !loadedEnv {
		log.Debug(".env file not found, using environment and defaults")
	}

	initGettext(cfg)

	if err := run(cfg, opts, log); err != nil {
		log.WithError(err).Fatal(gotext.Get("GENERATION_FAILED"))
	}
}
