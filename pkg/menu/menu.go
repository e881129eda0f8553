// Package menu asks a fixed list of typed questions on the terminal and
// re-asks each one until it gets an answer of the right type.
package menu

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/logrusorgru/aurora"

	"github.com/elseano/spinner/pkg/util"
)

type Menu struct {
	fields   []Field
	in       io.Reader
	out      io.Writer
	prompter Prompter
	colors   aurora.Aurora
	consumed bool
}

type Option func(m *Menu)

// WithIO reads answers from in and writes prompts to out.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(m *Menu) {
		m.in = in
		m.out = out
	}
}

// WithPrompter replaces the prompter chosen from the menu's input and output.
func WithPrompter(p Prompter) Option {
	return func(m *Menu) {
		m.prompter = p
	}
}

// WithColors controls prompt colouring. By default colours are enabled only
// when output is a terminal.
func WithColors(colors aurora.Aurora) Option {
	return func(m *Menu) {
		m.colors = colors
	}
}

// New builds a menu over fields, in order. Every default must match its
// field's kind.
func New(fields []Field, opts ...Option) (*Menu, error) {
	for _, f := range fields {
		if err := f.check(); err != nil {
			return nil, err
		}
	}

	m := &Menu{
		fields: append([]Field(nil), fields...),
		in:     os.Stdin,
		out:    os.Stdout,
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.colors == nil {
		m.colors = aurora.NewAurora(util.IsTerminal(m.out))
	}

	if m.prompter == nil {
		if util.IsTerminal(m.in) && util.IsTerminal(m.out) {
			m.prompter = NewInteractivePrompter(m.in, m.out)
		} else {
			m.prompter = NewLinePrompter(m.in, m.out)
		}
	}

	return m, nil
}

// Display asks each field in turn and returns them with their resolved
// values. Blank answers keep the default, unless the field is required and
// has none; unparsable answers are rejected. Both re-ask the same field.
// Read and write failures end the menu and are returned.
//
// A menu can only be displayed once.
func (m *Menu) Display() (Results, error) {
	if m.consumed {
		return nil, ErrConsumed
	}
	m.consumed = true

	fields := m.fields
	m.fields = nil

	for i := 0; i < len(fields); {
		field := &fields[i]

		input, err := m.prompter.Prompt(m.label(*field))
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", field.Label, err)
		}

		if err := field.accept(input); err != nil {
			util.Logger.Debug().Err(err).Str("field", field.Label).Msg("Rejected menu input")

			if err := m.complain(err); err != nil {
				return nil, err
			}
			continue
		}

		i++
	}

	return Results(fields), nil
}

func (m *Menu) label(f Field) string {
	var annotation string

	switch {
	case f.IsOptional() && f.HasValue():
		annotation = fmt.Sprintf("(Optional, default: %q)", f.Value.String())
	case f.IsOptional():
		annotation = "(Optional)"
	case f.HasValue():
		annotation = fmt.Sprintf("(default: %q)", f.Value.String())
	}

	label := m.colors.Bold(f.Label).String()
	if annotation != "" {
		label += " " + m.colors.Faint(annotation).String()
	}

	return label + ", expecting " + f.Kind.String()
}

func (m *Menu) complain(reason error) error {
	message := reason.Error()
	if errors.Is(reason, ErrParse) {
		message = ErrParse.Error()
	}

	_, err := fmt.Fprintln(m.out, m.colors.Red(message).String())
	return err
}
