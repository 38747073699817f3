package engine

import (
	"log"

	"github.com/republicprotocol/co-go"
	"github.com/sophiajt/onehour/core/buffer"
	"github.com/sophiajt/onehour/core/lang"
	"github.com/sophiajt/onehour/core/parser"
)

// An Engine evaluates programs sent to it as Messages. It reads Exec and
// ExecBatch Messages from its input, and writes Result, ResultBatch, and
// Error Messages to its output. A failing program aborts that evaluation
// only; the Engine keeps serving.
type Engine struct {
	input  buffer.ReaderWriter
	output buffer.ReaderWriter
	buf    buffer.Buffer
}

// New returns an Engine with input and output channels of capacity `cap`,
// and an output buffer of capacity `cap`.
func New(cap int) *Engine {
	return &Engine{
		input:  buffer.NewReaderWriter(cap),
		output: buffer.NewReaderWriter(cap),
		buf:    buffer.New(cap),
	}
}

// Input returns the Writer used to send Messages to the Engine.
func (engine *Engine) Input() buffer.Writer {
	return engine.input.Writer()
}

// Output returns the Reader used to receive Messages from the Engine.
func (engine *Engine) Output() buffer.Reader {
	return engine.output.Reader()
}

// Run the Engine until the done channel is closed. This blocks the current
// goroutine.
func (engine *Engine) Run(done <-chan struct{}) {
	defer log.Printf("[info] (engine) terminating")

	for {
		select {
		case <-done:
			return

		case message, ok := <-engine.input.Reader():
			if !ok {
				return
			}
			engine.recv(message)

		case message, ok := <-engine.buf.Peek():
			if !ok {
				return
			}
			select {
			case <-done:
				return
			case engine.output.Writer() <- message:
				if !engine.buf.Dequeue() {
					log.Printf("[error] (engine) buffer underflow")
				}
			}
		}
	}
}

func (engine *Engine) recv(message buffer.Message) {
	switch message := message.(type) {

	case Exec:
		engine.exec(message)

	case ExecBatch:
		engine.execBatch(message)

	default:
		log.Printf("[error] (engine) unexpected message type %T", message)
	}
}

func (engine *Engine) exec(exec Exec) {
	value, err := Run(exec.Source)
	if err != nil {
		engine.send(NewError(err))
		return
	}
	engine.send(Result{
		Value: value,
	})
}

func (engine *Engine) execBatch(exec ExecBatch) {
	values := make([]lang.Value, len(exec.Sources))
	errs := make([]error, len(exec.Sources))

	// Evaluators own their state exclusively, so sources can run in
	// parallel.
	co.ParForAll(exec.Sources, func(i int) {
		values[i], errs[i] = Run(exec.Sources[i])
	})

	for _, err := range errs {
		if err != nil {
			engine.send(NewError(err))
			return
		}
	}
	engine.send(ResultBatch{
		Values: values,
	})
}

func (engine *Engine) send(message buffer.Message) {
	if !engine.buf.Enqueue(message) {
		log.Printf("[error] (engine) buffer overflow")
	}
}

// Run parses and evaluates one source text with a fresh Evaluator, and
// returns the final Value. A source that fails to parse never reaches
// evaluation.
func Run(source string) (lang.Value, error) {
	code, err := parser.Parse(source)
	if err != nil {
		return nil, err
	}

	eval := NewEvaluator()
	return eval.Evaluate(code)
}
