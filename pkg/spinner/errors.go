package spinner

import (
	"errors"
	"fmt"
)

var (
	ErrClosed   = errors.New("spinner is closed")
	ErrNoFrames = errors.New("spinner needs at least one frame")
)

// UnsentError is returned by Handle.Update and Handle.Message once the render
// loop has stopped. It carries back the text that could not be delivered.
type UnsentError struct {
	Kind    string
	Payload string
}

func (e *UnsentError) Error() string {
	return fmt.Sprintf("%s %q not sent: %s", e.Kind, e.Payload, ErrClosed)
}

func (e *UnsentError) Unwrap() error {
	return ErrClosed
}
