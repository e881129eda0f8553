package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"

	"github.com/elseano/spinner/pkg/menu"
	"github.com/elseano/spinner/pkg/spinner"
)

var (
	ErrorInternal     = errors.New("Internal error")
	ErrorInvalidInput = errors.New("Invalid input")
	ErrorInterrupted  = errors.New("Interrupted")

	errNoPayers = errors.New("You need at least one person paying.")
)

func handleError(dest io.Writer, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
		return ErrorInterrupted
	}

	fmt.Fprintf(dest, "\n%s: %s\n\n", color.RedString("Error"), err)

	switch {
	case errors.Is(err, io.EOF),
		errors.Is(err, spinner.ErrNoFrames),
		errors.Is(err, menu.ErrTypeMismatch):
		return ErrorInvalidInput
	}

	return ErrorInternal
}
