package utils

import (
	"log/slog"
	"time"

	"gonum.org/v1/gonum/stat"
)

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	StartTime            time.Time
	ActiveCells          int

	populations []float64
}

// Summary describes a finished run
type Summary struct {
	Generations    int
	MeanPopulation float64
	StdPopulation  float64
	PeakPopulation int
	Runtime        time.Duration
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

func (s *Stats) Update(generation int, population int, duration time.Duration) {
	s.TotalGenerations = generation
	s.ActiveCells = population
	s.populations = append(s.populations, float64(population))
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Simple moving average for population
	if len(s.populations) == 1 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// Summary computes population statistics over every recorded generation
func (s *Stats) Summary() Summary {
	sum := Summary{
		Generations: s.TotalGenerations,
		Runtime:     time.Since(s.StartTime),
	}
	if len(s.populations) == 0 {
		return sum
	}
	if len(s.populations) == 1 {
		sum.MeanPopulation = s.populations[0]
	} else {
		sum.MeanPopulation, sum.StdPopulation = stat.MeanStdDev(s.populations, nil)
	}
	for _, p := range s.populations {
		sum.PeakPopulation = max(sum.PeakPopulation, int(p))
	}
	return sum
}

// LogValue implements slog.LogValuer for structured logging.
func (s *Stats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("generation", s.TotalGenerations),
		slog.Int("living", s.ActiveCells),
		slog.Float64("avg_population", s.AveragePopulation),
		slog.Float64("gen_per_sec", s.GenerationsPerSecond),
	)
}

// LogValue implements slog.LogValuer for structured logging.
func (s Summary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("generations", s.Generations),
		slog.Float64("mean_population", s.MeanPopulation),
		slog.Float64("std_population", s.StdPopulation),
		slog.Int("peak_population", s.PeakPopulation),
		slog.Duration("runtime", s.Runtime),
	)
}
