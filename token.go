package stax

import "fmt"

// --- A general purpose interface for tokens --------------------------------

// TokType is a category type for a Token. Constants are defined by the scanner
// package, as it is up to the scanner to define categories.
type TokType int

// Tokens represent input tokens. They are produced by a scanner and
// reflect terminals of the stax language.
//
// An example would be a token for a floating point number:
//
//	TokType = Num         // identifier for this kind of tokens
//	Lexeme  = "3.1416"    // lexeme how it appeared in the input stream
//	Value   = 3.1416      // is a float64 value
//	Span    = 67…73       // occured from position 67 in the input stream
//
// Token.Value() could either have been set by the scanner, or converted from
// Token.Lexeme() by the parser.
type Token interface {
	TokType() TokType
	Lexeme() string
	Value() interface{}
	Span() Span
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a run of input bytes. A span denotes
// a start position and the position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}

// Location converts the start of a span into a 1-based line and column
// within input.
func (s Span) Location(input string) (line, col int) {
	line, col = 1, 1
	for i, r := range input {
		if uint64(i) >= s[0] {
			break
		}
		if r == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return
}
