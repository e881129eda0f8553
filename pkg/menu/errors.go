package menu

import (
	"errors"
	"fmt"
)

var (
	ErrTypeMismatch = errors.New("type mismatch")
	ErrConsumed     = errors.New("menu has already been displayed")

	// Input errors are reported to the user and the field is asked again.
	ErrRequired = errors.New("This item is not optional, please enter a value.")
	ErrParse    = errors.New("You have entered the wrong type of information.")
)

// MismatchError is returned when a field is read, or defaulted, as a kind it
// was not declared with.
type MismatchError struct {
	Label string
	Want  Kind
	Have  Kind
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("field %q is %s, not %s", e.Label, e.Have, e.Want)
}

func (e *MismatchError) Unwrap() error {
	return ErrTypeMismatch
}
