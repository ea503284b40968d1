package eval

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/npillmayer/stax/runtime"
)

// The builtin words. Stack effects are noted with the topmost value rightmost.
var builtins = map[string]runtime.NativeFunc{
	"add": arith(func(a, b float64) float64 { return a + b }),
	"sub": arith(func(a, b float64) float64 { return a - b }),
	"mul": arith(func(a, b float64) float64 { return a * b }),
	"div": arith(func(a, b float64) float64 { return a / b }),

	"eq": compare(func(a, b float64) bool { return a == b }),
	"lt": compare(func(a, b float64) bool { return a < b }),
	"gt": compare(func(a, b float64) bool { return a > b }),
	"le": compare(func(a, b float64) bool { return a <= b }),
	"ge": compare(func(a, b float64) bool { return a >= b }),

	"and": logic(func(a, b bool) bool { return a && b }),
	"or":  logic(func(a, b bool) bool { return a || b }),
	"not": not,

	"if":  ifThenElse,
	"dup": dup,
	"swp": swp,
	"pop": pop,
	"def": def,
	"evl": evl,
	"prt": prt,
	"stk": stk,
}

// NewDictionary creates a dictionary holding exactly the builtin words.
func NewDictionary() *runtime.Dictionary {
	dict := runtime.NewDictionary()
	for name, fn := range builtins {
		dict.Bind(name, runtime.Native(fn))
	}
	return dict
}

// Builtins returns the names of the builtin words, sorted.
func Builtins() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// --- Operands --------------------------------------------------------------

// operand maps a stack underflow while popping operand #found of a word with
// the given arity to an underflow for the word as a whole.
func operand(err error, arity, found int) error {
	var underflow runtime.StackUnderflow
	if errors.As(err, &underflow) {
		return runtime.StackUnderflow{Expected: arity, Found: found}
	}
	return err
}

// numbers pops b, then a.
func numbers(rt *runtime.Runtime) (a, b float64, err error) {
	if b, err = rt.Stack.PopNumber(); err != nil {
		return 0, 0, operand(err, 2, 0)
	}
	if a, err = rt.Stack.PopNumber(); err != nil {
		return 0, 0, operand(err, 2, 1)
	}
	return
}

// --- Arithmetic, comparison, logic -----------------------------------------

// a b ⇒ a op b
func arith(op func(a, b float64) float64) runtime.NativeFunc {
	return func(rt *runtime.Runtime) error {
		a, b, err := numbers(rt)
		if err != nil {
			return err
		}
		rt.Stack.Push(runtime.Number(op(a, b)))
		return nil
	}
}

// a b ⇒ 1|0
func compare(op func(a, b float64) bool) runtime.NativeFunc {
	return func(rt *runtime.Runtime) error {
		a, b, err := numbers(rt)
		if err != nil {
			return err
		}
		rt.Stack.Push(runtime.Bool(op(a, b)))
		return nil
	}
}

// a b ⇒ 1|0, with a, b coerced to booleans
func logic(op func(a, b bool) bool) runtime.NativeFunc {
	return func(rt *runtime.Runtime) error {
		b, err := rt.Stack.PopBool()
		if err != nil {
			return operand(err, 2, 0)
		}
		a, err := rt.Stack.PopBool()
		if err != nil {
			return operand(err, 2, 1)
		}
		rt.Stack.Push(runtime.Bool(op(a, b)))
		return nil
	}
}

// a ⇒ 1|0
func not(rt *runtime.Runtime) error {
	a, err := rt.Stack.PopBool()
	if err != nil {
		return operand(err, 1, 0)
	}
	rt.Stack.Push(runtime.Bool(!a))
	return nil
}

// --- Control flow ----------------------------------------------------------

// cond {then} {else} ⇒ …
func ifThenElse(rt *runtime.Runtime) error {
	elseBlock, err := rt.Stack.PopBlock()
	if err != nil {
		return operand(err, 3, 0)
	}
	thenBlock, err := rt.Stack.PopBlock()
	if err != nil {
		return operand(err, 3, 1)
	}
	cond, err := rt.Stack.PopBool()
	if err != nil {
		return operand(err, 3, 2)
	}
	if cond {
		return EvaluateBlock(thenBlock, rt)
	}
	return EvaluateBlock(elseBlock, rt)
}

// {block} ⇒ …
func evl(rt *runtime.Runtime) error {
	block, err := rt.Stack.PopBlock()
	if err != nil {
		return operand(err, 1, 0)
	}
	return EvaluateBlock(block, rt)
}

// --- Stack shuffling -------------------------------------------------------

// v ⇒ v v
func dup(rt *runtime.Runtime) error {
	v, err := rt.Stack.Pop()
	if err != nil {
		return operand(err, 1, 0)
	}
	rt.Stack.Push(v)
	rt.Stack.Push(v)
	return nil
}

// v2 v1 ⇒ v1 v2
func swp(rt *runtime.Runtime) error {
	v1, err := rt.Stack.Pop()
	if err != nil {
		return operand(err, 2, 0)
	}
	v2, err := rt.Stack.Pop()
	if err != nil {
		return operand(err, 2, 1)
	}
	rt.Stack.Push(v1)
	rt.Stack.Push(v2)
	return nil
}

// v ⇒
func pop(rt *runtime.Runtime) error {
	_, err := rt.Stack.Pop()
	return operand(err, 1, 0)
}

// --- Definitions -----------------------------------------------------------

// invalidNameChars may not appear in the name of a word.
const invalidNameChars = " \t\n\r{}"

// "name" {body} ⇒
func def(rt *runtime.Runtime) error {
	body, err := rt.Stack.PopBlock()
	if err != nil {
		return operand(err, 2, 0)
	}
	name, err := rt.Stack.PopText()
	if err != nil {
		return operand(err, 2, 1)
	}
	if strings.ContainsAny(name, invalidNameChars) {
		return runtime.InvalidName{Value: name, Reason: "name contains invalid characters"}
	}
	if old := rt.Dict.Bind(name, runtime.UserDefined(body)); old != nil {
		tracer().Debugf("word '%s' re-defined, was %s", name, old)
	}
	return nil
}

// --- Output ----------------------------------------------------------------

// v ⇒
func prt(rt *runtime.Runtime) error {
	v, err := rt.Stack.Pop()
	if err != nil {
		return operand(err, 1, 0)
	}
	fmt.Fprintln(rt.Out, v.String())
	return nil
}

// ⇒
func stk(rt *runtime.Runtime) error {
	fmt.Fprintln(rt.Out, rt.Stack.String())
	return nil
}
