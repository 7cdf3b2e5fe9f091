package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/integrii/flaggy"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// options holds command line values; zero values leave the config untouched
type options struct {
	configFile  string
	width       int
	height      int
	interval    time.Duration
	generations int
	pattern     string
	density     float64
	seed        int64
	color       bool
	statsFile   string
	verbose     bool
}

func parseFlags() options {
	var o options
	flaggy.SetName("go-life")
	flaggy.SetDescription("Conway's Game of Life in the terminal")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true

	flaggy.String(&o.configFile, "c", "config", "Path to a YAML or JSON config file")
	flaggy.Int(&o.width, "x", "width", "Width of the universe")
	flaggy.Int(&o.height, "y", "height", "Height of the universe")
	flaggy.Duration(&o.interval, "i", "interval", "Delay between generations, for example 150ms")
	flaggy.Int(&o.generations, "g", "generations", "Stop after this many generations")
	flaggy.String(&o.pattern, "p", "pattern", "Seed pattern ["+strings.Join(model.PatternNames(), "|")+"], random if empty")
	flaggy.Float64(&o.density, "d", "density", "Probability of a live cell when seeding randomly")
	flaggy.Int64(&o.seed, "s", "seed", "Random seed")
	flaggy.Bool(&o.color, "", "color", "Colour live cells")
	flaggy.String(&o.statsFile, "", "stats", "Write per-generation stats to this CSV file")
	flaggy.Bool(&o.verbose, "v", "verbose", "Enable debug logging")

	flaggy.Parse()
	return o
}

// buildConfig loads the config file, if any, and applies flag overrides
func buildConfig(o options) (utils.Config, error) {
	config := utils.DefaultConfig()
	if o.configFile != "" {
		var err error
		if config, err = utils.LoadConfig(o.configFile); err != nil {
			return config, err
		}
	}

	if o.width != 0 {
		config.Width = o.width
	}
	if o.height != 0 {
		config.Height = o.height
	}
	if o.interval != 0 {
		config.FrameRate = o.interval
	}
	if o.generations != 0 {
		config.MaxGenerations = o.generations
	}
	if o.pattern != "" {
		config.Pattern = o.pattern
	}
	if o.density != 0 {
		config.RandomDensity = o.density
	}
	if o.seed != 0 {
		config.Seed = o.seed
	}
	if o.color {
		config.Color = true
	}
	if o.statsFile != "" {
		config.StatsFile = o.statsFile
	}

	return config, config.Validate()
}

func main() {
	o := parseFlags()

	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	config, err := buildConfig(o)
	if err != nil {
		logger.Error("invalid configuration", "err", err)
		os.Exit(1)
	}

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, config, logger); err != nil {
		logger.Error("run failed", "err", err)
		stop()
		os.Exit(1)
	}
}

// run drives the game loop while a second goroutine drains stats records to CSV
func run(ctx context.Context, config utils.Config, logger *slog.Logger) error {
	s, err := initializeGame(config)
	if err != nil {
		return err
	}

	statsWriter, err := utils.CreateStatsFile(config.StatsFile)
	if err != nil {
		return err
	}
	defer statsWriter.Close()

	renderer := model.NewTerminalRenderer(os.Stdout, config.Color)
	logger.Info("game started",
		"width", config.Width,
		"height", config.Height,
		"pattern", config.Pattern,
		"living", s.game.Universe.CountLivingCells())

	records := make(chan utils.GenerationRecord, 16)
	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		defer close(records)
		return s.loop(ctx, renderer, records, logger)
	})
	eg.Go(func() error {
		for rec := range records {
			if err := statsWriter.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})

	err = eg.Wait()
	logger.Info("game finished", "summary", s.stats.Summary())
	return err
}

// loop renders and advances generations until a stop condition or cancellation
func (s *session) loop(
	ctx context.Context,
	renderer *model.TerminalRenderer,
	records chan<- utils.GenerationRecord,
	logger *slog.Logger,
) error {
	var (
		stagnantCount = 0
		lastFrameTime = time.Now()
	)

	for generation := 0; ; generation++ {
		frameStart := time.Now()

		rec := s.updateGameState(generation, frameStart.Sub(lastFrameTime))
		lastFrameTime = frameStart

		if rec.Status == statusStagnant {
			stagnantCount++
		} else {
			stagnantCount = 0
		}

		if err := s.draw(renderer, rec); err != nil {
			return err
		}
		logger.Debug("generation", "stats", s.stats)

		select {
		case records <- rec:
		case <-ctx.Done():
			logger.Info("shutting down", "generation", generation)
			return nil
		}

		// Check for max generations limit
		if s.config.MaxGenerations > 0 && generation >= s.config.MaxGenerations {
			logger.Info("reached maximum generations limit", "limit", s.config.MaxGenerations)
			return nil
		}

		if restart, reason := checkRestartConditions(rec, stagnantCount, s.config); restart {
			if !s.config.AutoRestart {
				logger.Info("stopping", "reason", reason, "generation", generation)
				return nil
			}
			logger.Info("restarting", "reason", reason, "generation", generation)
			if err := s.seed(); err != nil {
				return err
			}
			stagnantCount = 0
			continue
		}

		s.game.NextGeneration()

		select {
		case <-time.After(s.config.FrameRate):
		case <-ctx.Done():
			logger.Info("shutting down", "generation", generation)
			return nil
		}
	}
}

func (s *session) draw(renderer *model.TerminalRenderer, rec utils.GenerationRecord) error {
	if err := renderer.Clear(); err != nil {
		return errors.Wrap(err, "[draw] failed to clear screen")
	}
	err := renderer.Status("Gen: %d | Living: %d | Density: %.1f%% | Status: %s",
		rec.Generation, rec.Living, rec.Density, rec.Status)
	if err != nil {
		return errors.Wrap(err, "[draw] failed to write status")
	}
	return errors.Wrap(renderer.Display(s.game.Universe), "[draw] failed to render universe")
}
