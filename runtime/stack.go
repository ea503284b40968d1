package runtime

import (
	"strings"

	"github.com/emirpasic/gods/stacks/arraystack"
)

// Stack is the operand stack of a stax run. Values are copied on the way in,
// so nothing on the stack is ever shared with the program or with other
// stack slots.
//
// The zero value is an empty stack ready to use.
type Stack struct {
	values *arraystack.Stack
}

// NewStack creates an empty stack.
func NewStack() *Stack {
	return &Stack{values: arraystack.New()}
}

func (s *Stack) vals() *arraystack.Stack {
	if s.values == nil {
		s.values = arraystack.New()
	}
	return s.values
}

// Push puts a copy of v on top of the stack.
func (s *Stack) Push(v Value) {
	s.vals().Push(v.Copy())
}

// Pop removes the topmost value. An empty stack results in a StackUnderflow
// error.
func (s *Stack) Pop() (Value, error) {
	v, ok := s.vals().Pop()
	if !ok {
		return Value{}, StackUnderflow{Expected: 1, Found: 0}
	}
	return v.(Value), nil
}

// Peek returns the topmost value without removing it.
func (s *Stack) Peek() (Value, error) {
	v, ok := s.vals().Peek()
	if !ok {
		return Value{}, StackUnderflow{Expected: 1, Found: 0}
	}
	return v.(Value).Copy(), nil
}

// PopNumber pops a value and requires it to be a number.
// A value of a different type is consumed nevertheless.
func (s *Stack) PopNumber() (float64, error) {
	v, err := s.popTyped(NumberType)
	return v.num, err
}

// PopText pops a value and requires it to be a text.
// A value of a different type is consumed nevertheless.
func (s *Stack) PopText() (string, error) {
	v, err := s.popTyped(TextType)
	return v.text, err
}

// PopBlock pops a value and requires it to be a block.
// A value of a different type is consumed nevertheless.
func (s *Stack) PopBlock() (Block, error) {
	v, err := s.popTyped(BlockType)
	return v.block, err
}

// PopBool pops a number and interprets it as a boolean (see Value.Truthy).
// A value of a different type is consumed nevertheless.
func (s *Stack) PopBool() (bool, error) {
	v, err := s.popTyped(NumberType)
	return v.Truthy(), err
}

func (s *Stack) popTyped(t Type) (Value, error) {
	v, err := s.Pop()
	if err != nil {
		return v, err
	}
	if v.typ != t {
		return Value{}, TypeMismatch{Expected: t, Found: v.typ}
	}
	return v, nil
}

// Depth returns the number of values on the stack.
func (s *Stack) Depth() int {
	return s.vals().Size()
}

// IsEmpty is a predicate: is the stack empty?
func (s *Stack) IsEmpty() bool {
	return s.vals().Empty()
}

// Clear removes all values.
func (s *Stack) Clear() {
	s.vals().Clear()
}

// Values returns copies of the values on the stack, bottom first.
func (s *Stack) Values() []Value {
	lifo := s.vals().Values() // topmost first
	values := make([]Value, len(lifo))
	for i, v := range lifo {
		values[len(lifo)-1-i] = v.(Value).Copy()
	}
	return values
}

// String renders the stack from bottom to top, joined by commas.
func (s *Stack) String() string {
	values := s.Values()
	r := make([]string, len(values))
	for i, v := range values {
		r[i] = v.String()
	}
	return strings.Join(r, ",")
}
