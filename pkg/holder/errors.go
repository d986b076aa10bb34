package holder

import (
	"errors"
	"fmt"
)

// ErrUnexpectedArgument is wrapped by an ArgumentError
var ErrUnexpectedArgument = errors.New("unexpected holder constructor argument")

// ArgumentError represents an extra constructor argument a holder does not understand
type ArgumentError struct {
	Index int
	Arg   any
}

func (err *ArgumentError) Error() string {
	return fmt.Sprintf("%s at index %d (%T)", ErrUnexpectedArgument, err.Index, err.Arg)
}

func (err *ArgumentError) Unwrap() error {
	return ErrUnexpectedArgument
}
