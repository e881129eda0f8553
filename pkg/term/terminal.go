package term

import (
	"bufio"
	"io"

	"github.com/muesli/reflow/truncate"
	"github.com/muesli/termenv"

	"github.com/elseano/spinner/pkg/util"
)

// Terminal redraws the spinner in place using carriage returns and ANSI line
// erasure.
type Terminal struct {
	buf   *bufio.Writer
	out   *termenv.Output
	width int
	drawn bool
}

type Option func(t *Terminal)

// WithWidth sets the console width used to keep redraws on one line.
func WithWidth(width int) Option {
	return func(t *Terminal) {
		if width > 0 {
			t.width = width
		}
	}
}

func NewTerminal(w io.Writer, opts ...Option) *Terminal {
	buf := bufio.NewWriter(w)

	t := &Terminal{
		buf:   buf,
		out:   termenv.NewOutput(buf, termenv.WithProfile(termenv.Ascii)),
		width: util.DefaultConsoleWidth,
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

func (t *Terminal) Redraw(line string) error {
	t.eraseLine()

	// Writing into the last column wraps on some terminals, which breaks \r.
	t.out.WriteString(truncate.String(line, uint(t.width-1)))
	t.drawn = true

	return t.buf.Flush()
}

func (t *Terminal) Message(text string) error {
	t.eraseLine()
	t.out.WriteString(text + "\n")
	t.drawn = false

	return t.buf.Flush()
}

func (t *Terminal) Done() error {
	if t.drawn {
		t.out.WriteString("\n")
		t.drawn = false
	}

	return t.buf.Flush()
}

func (t *Terminal) eraseLine() {
	t.out.WriteString("\r")
	t.out.ClearLine()
}
