package model

import (
	"math/rand"
	"slices"

	"github.com/pkg/errors"
)

// Pattern is a named set of live cell offsets relative to its top-left corner
type Pattern struct {
	Name  string
	Cells [][2]int
}

// Patterns is the catalogue of seeds available by name
var Patterns = map[string]Pattern{
	"block": {
		Name:  "block",
		Cells: [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	},
	"blinker": {
		Name:  "blinker",
		Cells: [][2]int{{0, 0}, {1, 0}, {2, 0}},
	},
	"glider": {
		Name:  "glider",
		Cells: [][2]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}},
	},
	"r-pentomino": {
		Name:  "r-pentomino",
		Cells: [][2]int{{1, 0}, {0, 1}, {1, 1}, {1, 2}, {2, 2}},
	},
}

// PatternNames returns the catalogue names in sorted order
func PatternNames() []string {
	names := make([]string, 0, len(Patterns))
	for name := range Patterns {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Place sets the pattern's cells alive with its top-left corner at (startX, startY).
// Cells falling outside the universe are dropped.
func (u *Universe) Place(p Pattern, startX, startY int) {
	for _, c := range p.Cells {
		x, y := startX+c[0], startY+c[1]
		if u.inBounds(x, y) {
			u.Set(x, y, true)
		}
	}
}

// Seed places the named pattern at (startX, startY)
func (u *Universe) Seed(name string, startX, startY int) error {
	p, ok := Patterns[name]
	if !ok {
		return errors.Wrapf(ErrUnknownPattern, "[Seed] %q", name)
	}
	u.Place(p, startX, startY)
	return nil
}

// SeedCentered places the named pattern in the middle of the universe
func (u *Universe) SeedCentered(name string) error {
	p, ok := Patterns[name]
	if !ok {
		return errors.Wrapf(ErrUnknownPattern, "[SeedCentered] %q", name)
	}
	var w, h int
	for _, c := range p.Cells {
		w = max(w, c[0]+1)
		h = max(h, c[1]+1)
	}
	u.Place(p, (u.width-w)/2, (u.height-h)/2)
	return nil
}

// Randomize sets every cell alive with probability density
func (u *Universe) Randomize(density float64, rng *rand.Rand) {
	for i := range u.cells {
		u.cells[i] = rng.Float64() < density
	}
}
