package model

import (
	"fmt"
	"io"
	"strings"

	"github.com/logrusorgru/aurora"
)

const (
	ansiClearScreen = "\033[H\033[2J"
)

// TerminalRenderer writes the board to a terminal
type TerminalRenderer struct {
	out io.Writer
	au  aurora.Aurora
}

// NewTerminalRenderer renders to out; color paints live cells green
func NewTerminalRenderer(out io.Writer, color bool) *TerminalRenderer {
	return &TerminalRenderer{out: out, au: aurora.NewAurora(color)}
}

// Display renders the universe using the plain text layout, colouring live cells if enabled
func (r *TerminalRenderer) Display(u *Universe) error {
	board := u.String()
	board = strings.ReplaceAll(board, string(cellAlive), r.au.Green(string(cellAlive)).String())
	_, err := io.WriteString(r.out, board)
	return err
}

// Status prints a single status line above the board
func (r *TerminalRenderer) Status(format string, args ...interface{}) error {
	_, err := fmt.Fprintln(r.out, r.au.Bold(fmt.Sprintf(format, args...)))
	return err
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() error {
	_, err := io.WriteString(r.out, ansiClearScreen)
	return err
}
