package onehour

import (
	"github.com/sophiajt/onehour/core/engine"
	"github.com/sophiajt/onehour/core/lang"
	"github.com/sophiajt/onehour/core/parser"
)

type (
	Value = lang.Value

	ValueNothing = lang.ValueNothing

	ValueInt = lang.ValueInt

	ValueString = lang.ValueString

	Command = lang.Command

	Code = lang.Code

	Evaluator = engine.Evaluator

	Engine = engine.Engine
)

var (
	Parse = parser.Parse

	NewEvaluator = engine.NewEvaluator

	NewEngine = engine.New

	Run = engine.Run
)
