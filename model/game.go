package model

import (
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/rules"
)

// Game owns a universe and advances it one generation at a time
type Game struct {
	Universe *Universe

	// Pool, when set, supplies the per-tick snapshot buffer
	Pool *UniversePool
}

// NewGame creates a game with an all-dead universe of the given size
func NewGame(width, height int) (*Game, error) {
	u, err := NewUniverse(width, height)
	if err != nil {
		return nil, errors.Wrap(err, "[NewGame] failed to create universe")
	}
	return &Game{Universe: u}, nil
}

// NextGeneration advances the universe by one tick. Every cell is decided
// from a snapshot of the previous generation, so writes made during the
// sweep never feed back into neighbor counts of the same tick.
func (g *Game) NextGeneration() {
	var prev *Universe
	if g.Pool != nil {
		prev = g.Pool.Snapshot(g.Universe)
		defer UniverseToPool(prev, g.Pool)
	} else {
		prev = g.Universe.Clone()
	}

	for c := range prev.Cells() {
		g.Universe.Set(c.X, c.Y, rules.NextState(c.Alive, prev.CountNeighbors(c.X, c.Y)))
	}
}

// String renders the owned universe
func (g *Game) String() string {
	return g.Universe.String()
}
