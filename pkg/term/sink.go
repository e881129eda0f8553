// Package term holds the terminal sinks a spinner renders into.
package term

import (
	"io"

	"github.com/elseano/spinner/pkg/util"
)

// Sink is the only thing a render loop writes to. Every method flushes before
// returning, so an error from any of them means output was lost.
type Sink interface {
	// Redraw replaces the spinner line with line, without a line break.
	Redraw(line string) error
	// Message prints text on its own line in place of the spinner line.
	Message(text string) error
	// Done releases the spinner line once no further redraws will happen.
	Done() error
}

// Auto picks a Terminal sink when w is a terminal and a Plain sink otherwise.
func Auto(w io.Writer) Sink {
	if util.IsTerminal(w) {
		return NewTerminal(w, WithWidth(util.GetConsoleWidth(w)))
	}

	return NewPlain(w)
}
