package lang

// Code is an ordered sequence of Commands, in source line order.
type Code []Command

// A Command is one parsed instruction of the language. Commands are produced
// once by the parser and are immutable afterwards.
type Command interface {

	// IsCommand is a marker method. A programmer must explicitly mark a type
	// as a Command by implementing this method.
	IsCommand()
}

// CommandSetVar binds a variable name to a Value in the variable table.
type CommandSetVar struct {
	Name  string
	Value Value
}

// IsCommand implements the Command interface.
func (cmd CommandSetVar) IsCommand() {
}

// CommandGetVar reads a variable into the evaluation output. It does not
// touch the operand stack.
type CommandGetVar struct {
	Name string
}

// IsCommand implements the Command interface.
func (cmd CommandGetVar) IsCommand() {
}

// CommandPushVar pushes a variable's current Value on to the operand stack.
type CommandPushVar struct {
	Name string
}

// IsCommand implements the Command interface.
func (cmd CommandPushVar) IsCommand() {
}

// CommandPush pushes a literal Value on to the operand stack.
type CommandPush struct {
	Value Value
}

// IsCommand implements the Command interface.
func (cmd CommandPush) IsCommand() {
}

// CommandPop pops the top of the operand stack into the evaluation output.
type CommandPop struct {
}

// IsCommand implements the Command interface.
func (cmd CommandPop) IsCommand() {
}

// CommandAdd pops two Values, combines them, and pushes the result. The
// first pop is the left-hand operand and the second pop is the right-hand
// operand.
type CommandAdd struct {
}

// IsCommand implements the Command interface.
func (cmd CommandAdd) IsCommand() {
}
