package eval

import (
	"io"
	"os"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/stax/runtime"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/

// NewRuntime creates a runtime environment with an empty stack and a
// dictionary containing the builtin words. Printing words will write to
// out, which defaults to os.Stdout if nil.
func NewRuntime(out io.Writer) *runtime.Runtime {
	if out == nil {
		out = os.Stdout
	}
	return runtime.NewRuntimeEnvironment(NewDictionary(), out)
}

// EvaluateProgram evaluates the expressions of a program in order. It stops
// at the first error and returns it.
func EvaluateProgram(prog runtime.Program, rt *runtime.Runtime) error {
	rt.ClearFailure()
	tracer().Debugf("evaluating program of %d expressions", len(prog))
	for _, expr := range prog {
		if err := Evaluate(expr, rt); err != nil {
			tracer().Infof("program aborted: %v", err)
			return err
		}
	}
	return nil
}

// EvaluateBlock evaluates the expressions of a block in place, i.e. against
// the stack and dictionary of rt, without introducing any scope.
func EvaluateBlock(block runtime.Block, rt *runtime.Runtime) error {
	for _, expr := range block {
		if err := Evaluate(expr, rt); err != nil {
			return err
		}
	}
	return nil
}

// Evaluate evaluates a single expression. A literal pushes its value, a word
// reference is resolved and executed.
func Evaluate(expr runtime.Expr, rt *runtime.Runtime) error {
	if !expr.IsWord() {
		rt.Stack.Push(expr.Value())
		return nil
	}
	return call(expr.Name(), rt)
}

func call(name string, rt *runtime.Runtime) error {
	word, err := rt.Dict.Resolve(name)
	if err != nil {
		tracer().Errorf("unknown word '%s'", name)
		rt.Fail(name)
		return err
	}
	switch word.Kind() {
	case runtime.NativeWord:
		err = word.Func()(rt)
	case runtime.UserWord:
		if tracer().GetTraceLevel() >= tracing.LevelDebug {
			if outer := rt.Calls.FindCallFrame(name); outer != nil {
				tracer().P("word", name).Debugf("recursive call, outer activation @%d", outer.Depth)
			}
		}
		rt.Calls.PushCallFrame(name)
		err = EvaluateBlock(word.Body(), rt)
		rt.Calls.PopCallFrame()
	}
	if err != nil {
		rt.Fail(name)
	}
	return err
}
