/*
Package runtime implements the runtime of the stax interpreter, consisting of
the value model, the operand stack, the dictionary of words and a stack of
call frames.

Values and Expressions

A value is a number, a text or a block. Blocks are unevaluated sequences of
expressions, carried around as data. An expression is either a literal value
or a reference to a word.

Dictionary

The dictionary maps names to words, where a word is either native (a Go
function) or user defined (a block captured by the def word). There are no
scopes. Looking up a word yields a detached copy of it, so a word may re-bind
its own name while it is executing, without disturbing its own execution.

Call Frames

The evaluator keeps a stack of call frames for the user words it is
executing. It is used for tracing and for back-traces of failed runs.


----------------------------------------------------------------------

BSD License

Copyright (c) 2017-22, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software or the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE. */
package runtime

import (
	"io"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'stax.runtime'.
func tracer() tracing.Trace {
	return tracing.Select("stax.runtime")
}

// Runtime is a type implementing a runtime environment for the interpreter.
// It is owned by a single evaluation and must not be shared between
// goroutines.
type Runtime struct {
	Stack *Stack      // operand stack
	Dict  *Dictionary // words
	Calls *CallStack  // active user words
	Out   io.Writer   // text sink for printing words

	failed    bool
	backtrace []string
}

// NewRuntimeEnvironment constructs
// a new runtime environment with an empty stack. Accepts a dictionary
// and a text sink. If out is nil, output will be discarded.
func NewRuntimeEnvironment(dict *Dictionary, out io.Writer) *Runtime {
	if dict == nil {
		dict = NewDictionary()
	}
	if out == nil {
		out = io.Discard
	}
	return &Runtime{
		Stack: NewStack(),
		Dict:  dict,
		Calls: new(CallStack),
		Out:   out,
	}
}

// Fail records a back-trace for a failing word. Only the innermost failure of
// an evaluation is recorded, i.e. the first call to Fail after ClearFailure.
func (rt *Runtime) Fail(word string) {
	if rt.failed {
		return
	}
	rt.failed = true
	rt.backtrace = append(rt.Calls.Names(), word)
	tracer().Debugf("failure in %v", rt.backtrace)
}

// ClearFailure forgets a recorded back-trace.
func (rt *Runtime) ClearFailure() {
	rt.failed = false
	rt.backtrace = nil
}

// Backtrace returns the chain of words active when the last evaluation
// failed, outermost first and ending with the failing word. For a successful
// evaluation it is empty.
func (rt *Runtime) Backtrace() []string {
	return rt.backtrace
}

// Reset empties the stack and forgets failures. The dictionary is kept.
func (rt *Runtime) Reset() {
	rt.Stack.Clear()
	rt.ClearFailure()
}
