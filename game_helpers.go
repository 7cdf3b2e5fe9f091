package main

import (
	"math/rand"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

const (
	statusActive   = "Active"
	statusStagnant = "Stagnant"
	statusExtinct  = "Extinct"
)

// session is the mutable state of a single run
type session struct {
	config  utils.Config
	game    *model.Game
	history *model.History
	stats   *utils.Stats
	rng     *rand.Rand
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config) (*session, error) {
	game, err := model.NewGame(config.Width, config.Height)
	if err != nil {
		return nil, errors.Wrap(err, "[initializeGame] failed to create game")
	}
	if config.UseMemoryPool {
		game.Pool = model.NewUniversePool()
	}

	s := &session{
		config:  config,
		game:    game,
		history: model.NewHistory(0),
		stats:   utils.NewStats(),
		rng:     rand.New(rand.NewSource(config.Seed)),
	}
	if err = s.seed(); err != nil {
		return nil, err
	}
	return s, nil
}

// seed fills a cleared universe with the configured pattern, or random life if none
func (s *session) seed() error {
	u := s.game.Universe
	u.Clear()
	s.history.Reset()
	if s.config.Pattern == "" {
		u.Randomize(s.config.RandomDensity, s.rng)
		return nil
	}
	return errors.Wrap(u.SeedCentered(s.config.Pattern), "[seed] failed to seed universe")
}

// updateGameState records the current generation and returns status information
func (s *session) updateGameState(generation int, frame time.Duration) utils.GenerationRecord {
	u := s.game.Universe
	livingCells := u.CountLivingCells()
	density := float64(livingCells) / float64(u.GetWidth()*u.GetHeight()) * 100

	s.stats.Update(generation, livingCells, frame)

	// Compare against earlier generations before recording this one
	status := statusActive
	if s.history.IsStagnant(u) {
		status = statusStagnant
	}
	s.history.Update(u)
	if livingCells == 0 {
		status = statusExtinct
	}

	return utils.GenerationRecord{
		Generation: generation,
		Living:     livingCells,
		Density:    density,
		Status:     status,
	}
}

// checkRestartConditions determines if the run should restart or stop
func checkRestartConditions(rec utils.GenerationRecord, stagnantCount int, config utils.Config) (bool, string) {
	if rec.Living == 0 {
		return true, "extinction"
	}
	if config.StagnationThreshold > 0 && stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	return false, ""
}
