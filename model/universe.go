package model

import (
	"crypto/md5"
	"fmt"
	"iter"
	"strings"

	"github.com/pkg/errors"
)

const (
	cellAlive = 'X'
	cellDead  = ' '
)

// Cell is a single position of the universe together with its state
type Cell struct {
	X, Y  int
	Alive bool
}

// Universe is a fixed-size 2D grid of cells stored row-major in a flat slice
type Universe struct {
	width  int
	height int
	cells  []bool
}

// NewUniverse creates a universe of width*height dead cells
func NewUniverse(width, height int) (*Universe, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[NewUniverse] %dx%d", width, height)
	}
	return &Universe{
		width:  width,
		height: height,
		cells:  make([]bool, width*height),
	}, nil
}

// GetWidth returns the width of the universe
func (u *Universe) GetWidth() int {
	return u.width
}

// GetHeight returns the height of the universe
func (u *Universe) GetHeight() int {
	return u.height
}

func (u *Universe) inBounds(x, y int) bool {
	return x >= 0 && x < u.width && y >= 0 && y < u.height
}

func (u *Universe) index(x, y int) int {
	return y*u.width + x
}

// Get returns the state of the cell at (x,y). ok is false when the
// coordinates fall outside the grid, which callers read as a dead cell.
func (u *Universe) Get(x, y int) (alive bool, ok bool) {
	if !u.inBounds(x, y) {
		return false, false
	}
	return u.cells[u.index(x, y)], true
}

// Set writes the state of the cell at (x,y).
// It panics with an *OutOfBoundsError if (x,y) is outside the grid.
func (u *Universe) Set(x, y int, alive bool) {
	if !u.inBounds(x, y) {
		panic(&OutOfBoundsError{X: x, Y: y, Width: u.width, Height: u.height})
	}
	u.cells[u.index(x, y)] = alive
}

// CountNeighbors counts the living cells among the 8 surrounding positions.
// Positions off the grid count as dead.
func (u *Universe) CountNeighbors(x, y int) (count int) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if alive, _ := u.Get(x+dx, y+dy); alive {
				count++
			}
		}
	}
	return
}

// Cells returns a row-major traversal over every cell of the universe.
// Each range over the result starts from (0,0) again.
func (u *Universe) Cells() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for i, alive := range u.cells {
			if !yield(Cell{X: i % u.width, Y: i / u.width, Alive: alive}) {
				return
			}
		}
	}
}

// Clone returns a deep copy of the universe
func (u *Universe) Clone() *Universe {
	c := &Universe{width: u.width, height: u.height, cells: make([]bool, len(u.cells))}
	copy(c.cells, u.cells)
	return c
}

// CopyFrom overwrites the cells of u with those of src, resizing u if needed
func (u *Universe) CopyFrom(src *Universe) {
	if cap(u.cells) < len(src.cells) {
		u.cells = make([]bool, len(src.cells))
	}
	u.cells = u.cells[:len(src.cells)]
	u.width = src.width
	u.height = src.height
	copy(u.cells, src.cells)
}

// Clear kills all cells
func (u *Universe) Clear() {
	clear(u.cells)
}

// Equal reports whether both universes have the same size and cell states
func (u *Universe) Equal(other *Universe) bool {
	if u.width != other.width || u.height != other.height {
		return false
	}
	for i := range u.cells {
		if u.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// CountLivingCells returns the total number of living cells
func (u *Universe) CountLivingCells() (count int) {
	for _, alive := range u.cells {
		if alive {
			count++
		}
	}
	return
}

// GetGridHash returns an MD5 fingerprint of the current cell states
func (u *Universe) GetGridHash() string {
	h := md5.New()
	buf := make([]byte, len(u.cells))
	for i, alive := range u.cells {
		if alive {
			buf[i] = 1
		}
	}
	h.Write(buf)
	return fmt.Sprintf("%x", h.Sum(nil))
}

// String renders one character per cell, X for alive and a space for dead,
// with a newline after every row.
func (u *Universe) String() string {
	var sb strings.Builder
	sb.Grow(len(u.cells) + u.height)
	for i, alive := range u.cells {
		if alive {
			sb.WriteByte(cellAlive)
		} else {
			sb.WriteByte(cellDead)
		}
		if (i+1)%u.width == 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
