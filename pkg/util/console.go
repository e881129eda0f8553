package util

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/crypto/ssh/terminal"
)

const DefaultConsoleWidth = 80

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w interface{}) bool {
	f, ok := w.(*os.File)
	if !ok || f == nil {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// GetConsoleWidth returns the column count of the terminal behind w, or
// DefaultConsoleWidth when w is not a terminal.
func GetConsoleWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !IsTerminal(f) {
		return DefaultConsoleWidth
	}

	width, _, err := terminal.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		width = DefaultConsoleWidth
	}

	return width
}
