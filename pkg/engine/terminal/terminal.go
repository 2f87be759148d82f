// Package terminal wraps the few terminal operations the text front end needs.
package terminal

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// IsInteractive reports whether stdin is attached to a terminal
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// MakeRaw puts stdin into raw mode so single key presses arrive unbuffered.
// The returned function restores the previous mode.
func MakeRaw() (restore func(), err error) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return func() {}, fmt.Errorf("set terminal raw mode: %w", err)
	}
	return func() {
		_ = term.Restore(fd, oldState)
	}, nil
}

// HideCursor and ShowCursor toggle the cursor with ANSI escapes
func HideCursor() { fmt.Fprint(os.Stdout, "\033[?25l") }

// ShowCursor makes the cursor visible again
func ShowCursor() { fmt.Fprint(os.Stdout, "\033[?25h") }

// Home moves the cursor to the top-left corner without clearing, which avoids
// flicker when redrawing a full frame.
func Home() { fmt.Fprint(os.Stdout, "\033[H") }

// ClearScreen erases the whole screen
func ClearScreen() { fmt.Fprint(os.Stdout, "\033[2J\033[H") }
