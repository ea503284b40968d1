/*
Package eval implements the evaluator of stax and its library of builtin words.

Evaluation is direct recursive descent over a program: literals are pushed
onto the stack, word references are resolved in the dictionary and executed.
Builtins like if and evl, as well as user defined words, evaluate blocks by
calling back into the evaluator. There is no limit on recursion depth other
than the Go call stack.

Errors are returned to the caller unchanged and abort the rest of the
program. Nothing is rolled back: values a failing word has already pushed
or popped stay that way.

Operand Order

All binary words apply their operator in textual order:

    a b sub   ⇒  a − b
    a b lt    ⇒  a < b

Note that the original design of the language evaluated comparisons the other
way round (a b lt ⇒ b < a). We chose to keep comparisons consistent with
arithmetic.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package eval

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'stax.eval'.
func tracer() tracing.Trace {
	return tracing.Select("stax.eval")
}
