package stack

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrStackUnderflow is returned when an Element is popped from the Stack
	// when the Stack is empty.
	ErrStackUnderflow = errors.New("stack underflow")
)

// An Element is pushed and popped from a Stack.
type Element interface {
}

// A Stack is a LIFO queue of Elements backed by a growable slice. It has no
// capacity limit; pushing never fails.
type Stack struct {
	elems []Element
}

// New returns an empty Stack.
func New() Stack {
	return Stack{
		elems: []Element{},
	}
}

// Push an Element to the top of the Stack.
func (stack *Stack) Push(elem Element) {
	stack.elems = append(stack.elems, elem)
}

// Pop an Element from the top of the Stack. If the Stack is empty, the
// Element returned will be nil and an ErrStackUnderflow is returned.
func (stack *Stack) Pop() (Element, error) {
	if stack.IsEmpty() {
		return nil, ErrStackUnderflow
	}

	elem := stack.elems[len(stack.elems)-1]
	stack.elems = stack.elems[:len(stack.elems)-1]

	return elem, nil
}

// IsEmpty returns true when the Stack is empty, otherwise it returns false.
// Popping from an empty Stack will result in a stack underflow.
func (stack *Stack) IsEmpty() bool {
	return len(stack.elems) == 0
}

// Len returns the number of Elements on the Stack.
func (stack *Stack) Len() int {
	return len(stack.elems)
}

func (stack *Stack) String() string {
	types := []string{}
	for _, elem := range stack.elems {
		types = append(types, fmt.Sprintf("%T", elem))
	}
	return fmt.Sprintf("[%v]", strings.Join(types, ", "))
}
