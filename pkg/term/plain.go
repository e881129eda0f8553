package term

import (
	"bufio"
	"io"
)

// Plain is used when output is not a terminal, such as CI logs or pipes.
// Redraws are only remembered; the final status is written once by Done.
type Plain struct {
	buf     *bufio.Writer
	last    string
	pending bool
}

func NewPlain(w io.Writer) *Plain {
	return &Plain{buf: bufio.NewWriter(w)}
}

func (p *Plain) Redraw(line string) error {
	p.last = line
	p.pending = true
	return nil
}

func (p *Plain) Message(text string) error {
	p.buf.WriteString(text + "\n")
	return p.buf.Flush()
}

func (p *Plain) Done() error {
	if p.pending {
		p.buf.WriteString(p.last + "\n")
		p.pending = false
	}

	return p.buf.Flush()
}
