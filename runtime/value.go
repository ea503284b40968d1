package runtime

import (
	"math"
	"strconv"
	"strings"
)

// --- Types -----------------------------------------------------------------

// Type is the tag of a value.
type Type int8

// The value types of stax. There is exactly one numeric type.
const (
	Undefined Type = iota
	NumberType
	TextType
	BlockType
)

func (t Type) String() string {
	switch t {
	case NumberType:
		return "Number"
	case TextType:
		return "Text"
	case BlockType:
		return "Block"
	}
	return "Undefined"
}

// --- Values ----------------------------------------------------------------

// Value is a tagged union of a number, a text or a block. Values have no
// identity: they are copied whenever they are put onto a stack.
//
// Numbers double as booleans: any number > 0 is true, comparisons and
// logical operations yield exactly 1 or 0.
type Value struct {
	typ   Type
	num   float64
	text  string
	block Block
}

// Number creates a numeric value.
func Number(n float64) Value {
	return Value{typ: NumberType, num: n}
}

// Bool creates the numeric encoding of a boolean, 1 or 0.
func Bool(b bool) Value {
	if b {
		return Number(1)
	}
	return Number(0)
}

// Text creates a text value.
func Text(s string) Value {
	return Value{typ: TextType, text: s}
}

// Quote creates a block value from a sequence of expressions.
// The expressions are copied.
func Quote(exprs ...Expr) Value {
	return Value{typ: BlockType, block: Block(exprs).Clone()}
}

// Type returns the tag of a value.
func (v Value) Type() Type {
	return v.typ
}

// Num returns the numeric payload of v, or 0 for non-numbers.
func (v Value) Num() float64 {
	return v.num
}

// Str returns the text payload of v, or "" for non-texts.
func (v Value) Str() string {
	return v.text
}

// Exprs returns a copy of the expressions of a block, or nil for non-blocks.
func (v Value) Exprs() Block {
	return v.block.Clone()
}

// Truthy applies the boolean convention of stax: numbers > 0 are true.
func (v Value) Truthy() bool {
	return v.typ == NumberType && v.num > 0
}

// Copy returns a value which shares no data with v.
func (v Value) Copy() Value {
	if v.typ == BlockType {
		v.block = v.block.Clone()
	}
	return v
}

// Equal compares two values structurally.
func (v Value) Equal(other Value) bool {
	if v.typ != other.typ {
		return false
	}
	switch v.typ {
	case NumberType:
		return v.num == other.num
	case TextType:
		return v.text == other.text
	case BlockType:
		return v.block.Equal(other.block)
	}
	return true
}

// String renders a value the way the prt word prints it.
func (v Value) String() string {
	switch v.typ {
	case NumberType:
		return FormatNumber(v.num)
	case TextType:
		return v.text
	case BlockType:
		return v.block.String()
	}
	return "<undefined>"
}

// GoString is a debug representation, which keeps texts distinguishable
// from numbers.
func (v Value) GoString() string {
	switch v.typ {
	case NumberType:
		return "Num(" + FormatNumber(v.num) + ")"
	case TextType:
		return "Text(" + strconv.Quote(v.text) + ")"
	case BlockType:
		return "Block" + v.block.String()
	}
	return "Undefined"
}

// FormatNumber renders a float in its shortest decimal form, without exponent.
func FormatNumber(n float64) string {
	switch {
	case math.IsNaN(n):
		return "NaN"
	case math.IsInf(n, 1):
		return "inf"
	case math.IsInf(n, -1):
		return "-inf"
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// --- Expressions -----------------------------------------------------------

// ExprKind discriminates literal expressions from word references.
type ExprKind int8

const (
	LiteralExpr ExprKind = iota
	WordExpr
)

// Expr is a program node: either a literal value, which pushes itself when
// evaluated, or a reference to a word, which is resolved in the dictionary.
type Expr struct {
	kind  ExprKind
	value Value
	name  string
}

// Literal creates a literal expression.
func Literal(v Value) Expr {
	return Expr{kind: LiteralExpr, value: v.Copy()}
}

// WordRef creates a reference to a named word.
func WordRef(name string) Expr {
	return Expr{kind: WordExpr, name: name}
}

// Kind returns the kind of expression.
func (e Expr) Kind() ExprKind {
	return e.kind
}

// IsWord is a predicate: is e a word reference?
func (e Expr) IsWord() bool {
	return e.kind == WordExpr
}

// Value returns the value of a literal expression.
func (e Expr) Value() Value {
	return e.value
}

// Name returns the name of a referenced word.
func (e Expr) Name() string {
	return e.name
}

// Clone returns a deep copy of e.
func (e Expr) Clone() Expr {
	e.value = e.value.Copy()
	return e
}

// Equal compares two expressions structurally.
func (e Expr) Equal(other Expr) bool {
	if e.kind != other.kind {
		return false
	}
	if e.kind == WordExpr {
		return e.name == other.name
	}
	return e.value.Equal(other.value)
}

func (e Expr) String() string {
	return e.GoString()
}

// GoString is a debug representation of an expression.
func (e Expr) GoString() string {
	if e.kind == WordExpr {
		return "Word(" + e.name + ")"
	}
	return e.value.GoString()
}

// Block is an ordered sequence of expressions, carried around as data
// until it is applied.
type Block []Expr

// Clone returns a deep copy of a block.
func (b Block) Clone() Block {
	if b == nil {
		return nil
	}
	c := make(Block, len(b))
	for i, e := range b {
		c[i] = e.Clone()
	}
	return c
}

// Equal compares two blocks element by element.
func (b Block) Equal(other Block) bool {
	if len(b) != len(other) {
		return false
	}
	for i := range b {
		if !b[i].Equal(other[i]) {
			return false
		}
	}
	return true
}

// String is a debug listing of the expressions. It is not valid source code.
func (b Block) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, e := range b {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(e.GoString())
	}
	sb.WriteByte(']')
	return sb.String()
}

// Program is the unit of evaluation: a sequence of expressions, evaluated
// from first to last.
type Program []Expr
