package runtime

import (
	"fmt"
)

// This module implements a stack of call frames.
// Call frames are pushed by the evaluator for every user word it executes.
// They carry no data for the executing word (stax has no local variables),
// but record the chain of active words for tracing and back-traces.

// CallFrame is an activation of a user word.
type CallFrame struct {
	Name   string
	Depth  int
	Parent *CallFrame
}

// NewCallFrame creates a new call frame.
func NewCallFrame(nm string) *CallFrame {
	return &CallFrame{Name: nm}
}

func (cf *CallFrame) String() string {
	return fmt.Sprintf("<frame %s @%d>", cf.Name, cf.Depth)
}

// ---------------------------------------------------------------------------

// CallStack is a stack of call frames.
type CallStack struct {
	callFrameTOS *CallFrame
}

// Current gets the current call frame of a stack (TOS), or nil if no user word
// is executing.
func (cs *CallStack) Current() *CallFrame {
	return cs.callFrameTOS
}

// Depth returns the number of active frames.
func (cs *CallStack) Depth() int {
	if cs.callFrameTOS == nil {
		return 0
	}
	return cs.callFrameTOS.Depth
}

// PushCallFrame pushes a new call frame as TOS.
// A frame is constructed, having the recent TOS as its parent.
func (cs *CallStack) PushCallFrame(nm string) *CallFrame {
	cfp := cs.callFrameTOS
	newcf := NewCallFrame(nm)
	newcf.Parent = cfp
	newcf.Depth = 1
	if cfp != nil {
		newcf.Depth = cfp.Depth + 1
	}
	cs.callFrameTOS = newcf // new frame now TOS
	tracer().P("call", newcf.Name).Debugf("pushing new call frame @%d", newcf.Depth)
	return newcf
}

// PopCallFrame pops the top-most call frame. Returns the popped frame.
func (cs *CallStack) PopCallFrame() *CallFrame {
	if cs.callFrameTOS == nil {
		panic("attempt to pop call frame from empty call stack")
	}
	cf := cs.callFrameTOS
	tracer().Debugf("popping call frame [%s]", cf.Name)
	cs.callFrameTOS = cs.callFrameTOS.Parent
	return cf
}

// Names returns the names of the active words, outermost first.
func (cs *CallStack) Names() []string {
	names := make([]string, cs.Depth())
	for cf := cs.callFrameTOS; cf != nil; cf = cf.Parent {
		names[cf.Depth-1] = cf.Name
	}
	return names
}

// FindCallFrame finds the top-most frame for a word, or nil if the word is not
// active.
func (cs *CallStack) FindCallFrame(name string) *CallFrame {
	cf := cs.callFrameTOS
	for cf != nil {
		if cf.Name == name {
			return cf
		}
		cf = cf.Parent
	}
	return nil
}
