package menu

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/chzyer/readline"
	"github.com/manifoldco/promptui"
)

// Prompter shows a label and reads one line of input.
type Prompter interface {
	Prompt(label string) (string, error)
}

// LinePrompter reads lines from any reader. It is used when input is piped.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

// Prompt returns the line including its line ending. A final line without a
// line ending is returned as is; end of input with nothing read is an error.
func (p *LinePrompter) Prompt(label string) (string, error) {
	if _, err := fmt.Fprint(p.out, label+": "); err != nil {
		return "", err
	}

	line, err := p.in.ReadString('\n')
	if err == io.EOF && line != "" {
		return line, nil
	}

	return line, err
}

var promptTemplates = &promptui.PromptTemplates{
	Prompt:  "{{ . }}: ",
	Valid:   "{{ . }}: ",
	Invalid: "{{ . }}: ",
	Success: "{{ . }}: ",
}

// InteractivePrompter edits the line with readline, via promptui.
type InteractivePrompter struct {
	in  io.ReadCloser
	out io.WriteCloser
}

func NewInteractivePrompter(in io.Reader, out io.Writer) *InteractivePrompter {
	silenceBell()

	return &InteractivePrompter{
		in:  io.NopCloser(in),
		out: nopWriteCloser{out},
	}
}

func (p *InteractivePrompter) Prompt(label string) (string, error) {
	prompt := promptui.Prompt{
		Label:     label,
		Templates: promptTemplates,
		Stdin:     p.in,
		Stdout:    p.out,
	}

	return prompt.Run()
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

type bellFilter struct{}

func (bellFilter) Write(b []byte) (int, error) {
	if len(b) == 1 && b[0] == 7 {
		return 0, nil
	}
	return os.Stderr.Write(b)
}

func (bellFilter) Close() error {
	return nil
}

var bellOnce sync.Once

// silenceBell stops readline ringing the terminal bell on every keystroke
// it can't handle.
func silenceBell() {
	bellOnce.Do(func() {
		readline.Stdout = bellFilter{}
	})
}
