package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

func testConfig() utils.Config {
	config := utils.DefaultConfig()
	config.Width = 10
	config.Height = 10
	config.FrameRate = 0
	return config
}

func TestInitializeGame(t *testing.T) {
	config := testConfig()
	config.Pattern = "block"

	s, err := initializeGame(config)
	if err != nil {
		t.Fatal(err)
	}
	if n := s.game.Universe.CountLivingCells(); n != 4 {
		t.Errorf("living cells = %d, want 4", n)
	}
	if s.game.Pool == nil {
		t.Error("memory pool not configured")
	}
}

func TestInitializeGameErrors(t *testing.T) {
	config := testConfig()
	config.Pattern = "unknown"
	if _, err := initializeGame(config); !errors.Is(err, model.ErrUnknownPattern) {
		t.Errorf("err = %v, want ErrUnknownPattern", err)
	}

	config = testConfig()
	config.Width = 0
	if _, err := initializeGame(config); !errors.Is(err, model.ErrInvalidDimensions) {
		t.Errorf("err = %v, want ErrInvalidDimensions", err)
	}
}

func TestUpdateGameState(t *testing.T) {
	config := testConfig()
	config.Pattern = "block"
	s, err := initializeGame(config)
	if err != nil {
		t.Fatal(err)
	}

	var statuses []string
	for gen := 0; gen < 5; gen++ {
		rec := s.updateGameState(gen, time.Millisecond)
		if rec.Living != 4 || math.Abs(rec.Density-4) > 1e-9 {
			t.Fatalf("generation %d: living = %d, density = %v", gen, rec.Living, rec.Density)
		}
		statuses = append(statuses, rec.Status)
		s.game.NextGeneration()
	}
	want := []string{statusActive, statusActive, statusActive, statusStagnant, statusStagnant}
	for i := range want {
		if statuses[i] != want[i] {
			t.Errorf("statuses = %v, want %v", statuses, want)
			break
		}
	}

	s.game.Universe.Clear()
	if rec := s.updateGameState(5, time.Millisecond); rec.Status != statusExtinct {
		t.Errorf("status = %q, want %q", rec.Status, statusExtinct)
	}
}

func TestCheckRestartConditions(t *testing.T) {
	config := testConfig()

	tests := []struct {
		name      string
		living    int
		stagnant  int
		threshold int
		want      bool
		reason    string
	}{
		{"extinct", 0, 0, 5, true, "extinction"},
		{"stagnant", 3, 5, 5, true, "stagnation detected"},
		{"below threshold", 3, 4, 5, false, ""},
		{"threshold disabled", 3, 50, 0, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config.StagnationThreshold = tt.threshold
			got, reason := checkRestartConditions(utils.GenerationRecord{Living: tt.living}, tt.stagnant, config)
			if got != tt.want || reason != tt.reason {
				t.Errorf("got (%v, %q), want (%v, %q)", got, reason, tt.want, tt.reason)
			}
		})
	}
}

func TestBuildConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "life.yaml")
	if err := os.WriteFile(path, []byte("width: 30\nheight: 20\npattern: block\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	config, err := buildConfig(options{configFile: path, height: 15, pattern: "glider", color: true})
	if err != nil {
		t.Fatal(err)
	}
	if config.Width != 30 || config.Height != 15 || config.Pattern != "glider" || !config.Color {
		t.Errorf("config = %+v", config)
	}

	if _, err = buildConfig(options{density: 2}); !errors.Is(err, utils.ErrInvalidConfig) {
		t.Errorf("err = %v, want ErrInvalidConfig", err)
	}
}

func TestLoopStopsOnStagnation(t *testing.T) {
	config := testConfig()
	config.Pattern = "block"
	config.StagnationThreshold = 2
	s, err := initializeGame(config)
	if err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	records := make(chan utils.GenerationRecord, 100)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	if err = s.loop(context.Background(), model.NewTerminalRenderer(&out, false), records, logger); err != nil {
		t.Fatal(err)
	}
	close(records)

	var last utils.GenerationRecord
	n := 0
	for rec := range records {
		last = rec
		n++
	}
	// three states to fill history, then two stagnant generations
	if n != 5 || last.Generation != 4 || last.Status != statusStagnant {
		t.Errorf("records = %d, last = %+v", n, last)
	}
	if !strings.Contains(out.String(), "Gen: 4 | Living: 4") {
		t.Errorf("status line missing from output:\n%s", out.String())
	}
}

func TestLoopMaxGenerations(t *testing.T) {
	config := testConfig()
	config.Pattern = "glider"
	config.Width, config.Height = 40, 40
	config.MaxGenerations = 6
	s, err := initializeGame(config)
	if err != nil {
		t.Fatal(err)
	}

	records := make(chan utils.GenerationRecord, 100)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if err = s.loop(context.Background(), model.NewTerminalRenderer(io.Discard, false), records, logger); err != nil {
		t.Fatal(err)
	}
	if len(records) != 7 {
		t.Errorf("records = %d, want 7", len(records))
	}
}

func TestLoopCancelled(t *testing.T) {
	config := testConfig()
	config.Pattern = "glider"
	config.Width, config.Height = 40, 40
	config.MaxGenerations = 0
	config.FrameRate = time.Hour
	s, err := initializeGame(config)
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	records := make(chan utils.GenerationRecord, 1)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	done := make(chan error, 1)
	go func() {
		done <- s.loop(ctx, model.NewTerminalRenderer(io.Discard, false), records, logger)
	}()
	<-records
	cancel()

	select {
	case err = <-done:
		if err != nil {
			t.Fatal(err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("loop did not stop after cancellation")
	}
}

func TestRunWritesStats(t *testing.T) {
	config := testConfig()
	config.Pattern = "blinker"
	config.MaxGenerations = 3
	config.StagnationThreshold = 0
	config.StatsFile = filepath.Join(t.TempDir(), "stats.csv")

	// run renders to stdout; silence it for the test
	stdout := os.Stdout
	devNull, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	if err != nil {
		t.Fatal(err)
	}
	defer devNull.Close()
	os.Stdout = devNull
	defer func() { os.Stdout = stdout }()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if err = run(context.Background(), config, logger); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(config.StatsFile)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 5 {
		t.Fatalf("stats file has %d lines, want header plus 4 rows:\n%s", len(lines), data)
	}
	if !strings.HasPrefix(lines[4], "3,3,") {
		t.Errorf("last row = %q", lines[4])
	}
}
