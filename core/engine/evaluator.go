package engine

import (
	"fmt"

	"github.com/sophiajt/onehour/core/collection/stack"
	"github.com/sophiajt/onehour/core/lang"
)

// An Evaluator executes Code against a variable table and an operand stack.
// Both are owned exclusively by one Evaluator; no state is shared between
// Evaluators. Repeated calls to Evaluate on the same Evaluator accumulate
// state, which is how the REPL keeps a persistent session.
type Evaluator struct {
	vars   map[string]lang.Value
	stack  stack.Stack
	output lang.Value
}

// NewEvaluator returns an Evaluator with an empty variable table, an empty
// operand stack, and a pending output of Nothing.
func NewEvaluator() Evaluator {
	return Evaluator{
		vars:   map[string]lang.Value{},
		stack:  stack.New(),
		output: lang.ValueNothing{},
	}
}

// Evaluate executes Code sequentially, in a single pass, and returns the
// pending output: the Value produced by the last get or pop, or Nothing if
// the Code never produces one. Execution stops at the first failing Command;
// side effects applied before the failure remain in place.
func (eval *Evaluator) Evaluate(code lang.Code) (lang.Value, error) {
	for _, cmd := range code {
		if err := eval.execCommand(cmd); err != nil {
			return nil, err
		}
	}
	return eval.output, nil
}

func (eval *Evaluator) execCommand(cmd lang.Command) error {
	switch cmd := cmd.(type) {

	case lang.CommandSetVar:
		return eval.execSetVar(cmd)

	case lang.CommandGetVar:
		return eval.execGetVar(cmd)

	case lang.CommandPushVar:
		return eval.execPushVar(cmd)

	case lang.CommandPush:
		return eval.execPush(cmd)

	case lang.CommandPop:
		return eval.execPop(cmd)

	case lang.CommandAdd:
		return eval.execAdd(cmd)

	default:
		return lang.NewUnknownCommandError(fmt.Sprintf("%T", cmd))
	}
}

func (eval *Evaluator) execSetVar(cmd lang.CommandSetVar) error {
	eval.vars[cmd.Name] = cmd.Value
	return nil
}

func (eval *Evaluator) execGetVar(cmd lang.CommandGetVar) error {
	value, ok := eval.vars[cmd.Name]
	if !ok {
		return lang.NewMissingVariableError(cmd.Name)
	}

	eval.output = value
	return nil
}

func (eval *Evaluator) execPushVar(cmd lang.CommandPushVar) error {
	value, ok := eval.vars[cmd.Name]
	if !ok {
		return lang.NewMissingVariableError(cmd.Name)
	}

	eval.stack.Push(value)
	return nil
}

func (eval *Evaluator) execPush(cmd lang.CommandPush) error {
	eval.stack.Push(cmd.Value)
	return nil
}

func (eval *Evaluator) execPop(cmd lang.CommandPop) error {
	value, err := eval.pop()
	if err != nil {
		return err
	}

	eval.output = value
	return nil
}

func (eval *Evaluator) execAdd(cmd lang.CommandAdd) error {
	// The first pop is the left-hand operand. This is observable for string
	// concatenation, so the order must not be flipped.
	lhs, err := eval.pop()
	if err != nil {
		return err
	}
	rhs, err := eval.pop()
	if err != nil {
		return err
	}

	ret := lang.Value(nil)
	switch lhs := lhs.(type) {
	case lang.ValueInt:
		ret, err = lhs.Add(rhs)
	case lang.ValueString:
		ret, err = lhs.Add(rhs)
	default:
		err = lang.ErrTypeMismatch
	}
	if err != nil {
		return err
	}

	eval.stack.Push(ret)
	return nil
}

func (eval *Evaluator) pop() (lang.Value, error) {
	elem, err := eval.stack.Pop()
	if err != nil {
		return nil, lang.ErrEmptyStack
	}
	return elem.(lang.Value), nil
}
