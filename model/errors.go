package model

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidDimensions is returned when a universe is requested with a non-positive size
	ErrInvalidDimensions = errors.New("invalid universe dimensions")

	// ErrUnknownPattern is returned when seeding with a name missing from Patterns
	ErrUnknownPattern = errors.New("unknown pattern")
)

// OutOfBoundsError is the panic value of Universe.Set for coordinates outside the grid
type OutOfBoundsError struct {
	X, Y          int
	Width, Height int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("cell (%d,%d) out of bounds for %dx%d universe", e.X, e.Y, e.Width, e.Height)
}
