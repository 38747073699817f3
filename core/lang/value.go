package lang

import "fmt"

// A Value is the interface of any datum that the language can bind to a
// variable or push on to the operand stack. Values are immutable once
// constructed; combining Values always produces a new Value.
type Value interface {

	// IsValue is a marker method. A programmer must explicitly mark a type as
	// a Value by implementing this method.
	IsValue()

	// Eq returns true when the other Value has the same variant and an equal
	// payload.
	Eq(other Value) bool

	// String renders the Value in its debug form.
	String() string
}

// ValueNothing is the unit Value. It is the output of an evaluation that
// never produces a result.
type ValueNothing struct {
}

// IsValue implements the Value interface.
func (val ValueNothing) IsValue() {
}

// Eq implements the Value interface.
func (val ValueNothing) Eq(other Value) bool {
	_, ok := other.(ValueNothing)
	return ok
}

func (val ValueNothing) String() string {
	return "Nothing"
}

// ValueInt is a signed 64-bit integer Value.
type ValueInt struct {
	Int int64
}

// Add combines a ValueInt with another Value. Two ValueInts combine into
// their arithmetic sum. Any other pairing returns an ErrTypeMismatch.
func (lhs ValueInt) Add(rhs Value) (Value, error) {
	switch rhs := rhs.(type) {

	case ValueInt:
		return ValueInt{
			Int: lhs.Int + rhs.Int,
		}, nil

	default:
		return nil, ErrTypeMismatch
	}
}

// IsValue implements the Value interface.
func (val ValueInt) IsValue() {
}

// Eq implements the Value interface.
func (val ValueInt) Eq(other Value) bool {
	otherInt, ok := other.(ValueInt)
	return ok && val.Int == otherInt.Int
}

func (val ValueInt) String() string {
	return fmt.Sprintf("Int(%d)", val.Int)
}

// ValueString is an owned text Value.
type ValueString struct {
	Str string
}

// Add combines a ValueString with another Value. Two ValueStrings combine
// into the left operand's text followed by the right operand's text. Any
// other pairing returns an ErrTypeMismatch.
func (lhs ValueString) Add(rhs Value) (Value, error) {
	switch rhs := rhs.(type) {

	case ValueString:
		return ValueString{
			Str: lhs.Str + rhs.Str,
		}, nil

	default:
		return nil, ErrTypeMismatch
	}
}

// IsValue implements the Value interface.
func (val ValueString) IsValue() {
}

// Eq implements the Value interface.
func (val ValueString) Eq(other Value) bool {
	otherStr, ok := other.(ValueString)
	return ok && val.Str == otherStr.Str
}

func (val ValueString) String() string {
	return fmt.Sprintf("String(%q)", val.Str)
}
