package engine

import (
	"github.com/sophiajt/onehour/core/buffer"
	"github.com/sophiajt/onehour/core/lang"
)

// An Exec requests the evaluation of one source text. The Engine answers
// with a Result, or an Error if parsing or evaluation fails.
type Exec struct {
	Source string
}

// NewExec returns an Exec for a source text.
func NewExec(source string) buffer.Message {
	return Exec{source}
}

// IsMessage implements the buffer.Message interface.
func (message Exec) IsMessage() {
}

// An ExecBatch requests the evaluation of many source texts. Each source is
// evaluated with its own Evaluator, so none of them share state. The Engine
// answers with a ResultBatch holding one Value per source, in order, or an
// Error if any source fails.
type ExecBatch struct {
	Sources []string
}

// NewExecBatch returns an ExecBatch for a slice of source texts.
func NewExecBatch(sources []string) buffer.Message {
	return ExecBatch{sources}
}

// IsMessage implements the buffer.Message interface.
func (message ExecBatch) IsMessage() {
}

// A Result carries the final Value of a successful evaluation.
type Result struct {
	Value lang.Value
}

// IsMessage implements the buffer.Message interface.
func (message Result) IsMessage() {
}

// A ResultBatch carries the final Values of a successful ExecBatch, in the
// same order as the sources.
type ResultBatch struct {
	Values []lang.Value
}

// IsMessage implements the buffer.Message interface.
func (message ResultBatch) IsMessage() {
}

// An Error is a Message wrapper type for the error that aborted a parse or
// an evaluation.
type Error struct {
	error
}

// NewError returns an Error wrapping `err`.
func NewError(err error) buffer.Message {
	return Error{err}
}

// IsMessage implements the buffer.Message interface.
func (message Error) IsMessage() {
}
