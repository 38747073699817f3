package lang

import (
	"errors"
	"fmt"
)

var (
	// ErrMismatchNumParams is returned when a recognized keyword is given the
	// wrong number of tokens.
	ErrMismatchNumParams = errors.New("mismatch num params")

	// ErrTypeMismatch is returned when a literal is neither a string nor a
	// signed 64-bit integer, or when add combines incompatible operands.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrEmptyStack is returned when pop or add needs more Values than the
	// operand stack holds.
	ErrEmptyStack = errors.New("empty stack")
)

// An UnknownCommandError is returned when a line begins with an unrecognized
// keyword. It carries the offending token for diagnostics.
type UnknownCommandError struct {
	error
	keyword string
}

func NewUnknownCommandError(keyword string) error {
	return UnknownCommandError{
		fmt.Errorf("unknown command %q", keyword),
		keyword,
	}
}

// Keyword returns the unrecognized leading token.
func (err UnknownCommandError) Keyword() string {
	return err.keyword
}

// A MissingVariableError is returned when get or pushvar references a name
// that was never set. It carries the name for diagnostics.
type MissingVariableError struct {
	error
	name string
}

func NewMissingVariableError(name string) error {
	return MissingVariableError{
		fmt.Errorf("missing variable %q", name),
		name,
	}
}

// Name returns the unbound variable name.
func (err MissingVariableError) Name() string {
	return err.name
}
