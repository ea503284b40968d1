package runtime

import "fmt"

// Errors raised while evaluating. All of them are plain values and may be
// matched with errors.As.

// StackUnderflow is returned if an operation needs more values than are present
// on the stack. Found is the number of operands which have been available.
type StackUnderflow struct {
	Expected int
	Found    int
}

func (e StackUnderflow) Error() string {
	return fmt.Sprintf("expected at least %d items on the stack, found %d", e.Expected, e.Found)
}

// TypeMismatch is returned if a typed pop finds a value with the wrong tag.
type TypeMismatch struct {
	Expected Type
	Found    Type
}

func (e TypeMismatch) Error() string {
	return fmt.Sprintf("expected a %s, found a %s", e.Expected, e.Found)
}

// UnknownWord is returned if a word reference has no entry in the dictionary.
type UnknownWord struct {
	Name string
}

func (e UnknownWord) Error() string {
	return fmt.Sprintf("word '%s' not bound", e.Name)
}

// InvalidName is returned if a word is to be defined under a name which
// could never be referenced.
type InvalidName struct {
	Value  string
	Reason string
}

func (e InvalidName) Error() string {
	return fmt.Sprintf("invalid name %q: %s", e.Value, e.Reason)
}
