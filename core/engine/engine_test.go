package engine_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	. "github.com/sophiajt/onehour/core/engine"

	"github.com/sophiajt/onehour/core/lang"
)

var _ = Describe("Engine", func() {

	runEngine := func(cap int) (*Engine, chan struct{}) {
		engine := New(cap)
		done := make(chan struct{})
		go engine.Run(done)
		return engine, done
	}

	Context("when sending an exec message", func() {
		It("should answer with the final value", func() {
			engine, done := runEngine(16)
			defer close(done)

			engine.Input() <- NewExec("set x 33\npushvar x\npush 100\nadd\npop")

			message := <-engine.Output()
			result, ok := message.(Result)
			Expect(ok).To(BeTrue())
			Expect(result.Value.Eq(lang.ValueInt{Int: 133})).To(BeTrue())
		})

		It("should answer with an error when the source fails to parse", func() {
			engine, done := runEngine(16)
			defer close(done)

			engine.Input() <- NewExec("launch x")

			message := <-engine.Output()
			_, ok := message.(Error)
			Expect(ok).To(BeTrue())
		})

		It("should answer with an error when the evaluation fails", func() {
			engine, done := runEngine(16)
			defer close(done)

			engine.Input() <- NewExec("pop")

			message := <-engine.Output()
			_, ok := message.(Error)
			Expect(ok).To(BeTrue())
		})

		It("should keep serving after a failing program", func() {
			engine, done := runEngine(16)
			defer close(done)

			engine.Input() <- NewExec("pop")
			engine.Input() <- NewExec("push 1\npop")

			message := <-engine.Output()
			_, ok := message.(Error)
			Expect(ok).To(BeTrue())

			message = <-engine.Output()
			result, ok := message.(Result)
			Expect(ok).To(BeTrue())
			Expect(result.Value.Eq(lang.ValueInt{Int: 1})).To(BeTrue())
		})

		It("should isolate state between execs", func() {
			engine, done := runEngine(16)
			defer close(done)

			engine.Input() <- NewExec("set x 1\nget x")
			engine.Input() <- NewExec("get x")

			message := <-engine.Output()
			result, ok := message.(Result)
			Expect(ok).To(BeTrue())
			Expect(result.Value.Eq(lang.ValueInt{Int: 1})).To(BeTrue())

			message = <-engine.Output()
			_, ok = message.(Error)
			Expect(ok).To(BeTrue())
		})
	})

	Context("when sending an exec batch message", func() {
		It("should answer with one value per source, in order", func() {
			engine, done := runEngine(16)
			defer close(done)

			engine.Input() <- NewExecBatch([]string{
				"push 100\npush 30\nadd\npop",
				"set x \"hello\"\nget x",
				"set x 1\nset x 2\nget x",
			})

			message := <-engine.Output()
			batch, ok := message.(ResultBatch)
			Expect(ok).To(BeTrue())
			Expect(batch.Values).To(HaveLen(3))
			Expect(batch.Values[0].Eq(lang.ValueInt{Int: 130})).To(BeTrue())
			Expect(batch.Values[1].Eq(lang.ValueString{Str: "hello"})).To(BeTrue())
			Expect(batch.Values[2].Eq(lang.ValueInt{Int: 2})).To(BeTrue())
		})

		It("should answer with an error when any source fails", func() {
			engine, done := runEngine(16)
			defer close(done)

			engine.Input() <- NewExecBatch([]string{
				"push 1\npop",
				"pop",
			})

			message := <-engine.Output()
			_, ok := message.(Error)
			Expect(ok).To(BeTrue())
		})
	})

	Context("when running a source directly", func() {
		It("should parse and evaluate with a fresh evaluator", func() {
			value, err := Run("set x 30\nget x")
			Expect(err).To(BeNil())
			Expect(value.Eq(lang.ValueInt{Int: 30})).To(BeTrue())
		})

		It("should not reach evaluation when the parse fails", func() {
			_, err := Run("set x")
			Expect(err).To(Equal(lang.ErrMismatchNumParams))
		})
	})
})
