package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/repr"
	"github.com/chzyer/readline"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/stax/eval"
	"github.com/npillmayer/stax/runtime"
	"github.com/npillmayer/stax/staxlang"
	"github.com/pterm/pterm"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// run parses and evaluates source against rt.
func run(source string, rt *runtime.Runtime) error {
	prog, err := staxlang.Parse(source)
	if err != nil {
		return err
	}
	tracer().Debugf("program = %s", repr.String(prog))
	return eval.EvaluateProgram(prog, rt)
}

// runFile runs a program file and returns an exit code.
func runFile(filename string, rt *runtime.Runtime) int {
	src, err := os.ReadFile(filename)
	if err != nil {
		pterm.Error.Println(err.Error())
		return 2
	}
	if err = run(string(src), rt); err != nil {
		printError(err, rt)
		return 1
	}
	return 0
}

// runReader runs a program read from r, e.g. piped into stdin, and returns
// an exit code.
func runReader(r io.Reader, rt *runtime.Runtime) int {
	src, err := io.ReadAll(r)
	if err != nil {
		pterm.Error.Println(err.Error())
		return 2
	}
	if err = run(string(src), rt); err != nil {
		printError(err, rt)
		return 1
	}
	return 0
}

func printError(err error, rt *runtime.Runtime) {
	pterm.Error.Println(err.Error())
	if bt := rt.Backtrace(); len(bt) > 1 {
		pterm.Error.Println("in " + strings.Join(bt, " → "))
	}
}

// Intp is our interpreter object
type Intp struct {
	rt   *runtime.Runtime
	repl *readline.Instance
}

// NewIntp creates an interactive interpreter for a runtime environment.
func NewIntp(rt *runtime.Runtime) (*Intp, error) {
	repl, err := readline.New("stax> ")
	if err != nil {
		return nil, err
	}
	return &Intp{rt: rt, repl: repl}, nil
}

// Close releases the terminal.
func (intp *Intp) Close() error {
	return intp.repl.Close()
}

func (intp *Intp) loadInitFile(filename string) {
	if filename == "" {
		return
	}
	tracer().Infof("Loading init file %s", filename)
	if code := runFile(filename, intp.rt); code != 0 {
		tracer().Errorf("Unable to load init file: %s", filename)
	}
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Eval(line)
		if err != nil {
			printError(err, intp.rt)
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

// Eval evaluates a line of input, which is either a REPL command or stax
// source code.
func (intp *Intp) Eval(line string) (bool, error) {
	if strings.HasPrefix(line, ":") {
		return intp.command(line)
	}
	err := run(line, intp.rt)
	if err == nil && gconf.GetBool("stax.show-stack") {
		fmt.Fprint(intp.rt.Out, pterm.Info.Sprintln(intp.rt.Stack.String()))
	}
	return false, err
}

func (intp *Intp) command(line string) (bool, error) {
	cmd, arg := line, ""
	if i := strings.IndexAny(line, " \t"); i > 0 {
		cmd, arg = line[:i], strings.TrimSpace(line[i:])
	}
	switch cmd {
	case ":quit", ":q":
		return true, nil
	case ":stack":
		pterm.Println(intp.rt.Stack.String())
	case ":clear":
		intp.rt.Reset()
	case ":tree":
		ll := leveledValues(intp.rt.Stack.Values(), pterm.LeveledList{}, 0)
		if len(ll) == 0 {
			pterm.Info.Println("stack is empty")
			break
		}
		root := pterm.NewTreeFromLeveledList(ll)
		pterm.DefaultTree.WithRoot(root).Render()
	case ":words":
		for _, w := range wordList(intp.rt.Dict) {
			pterm.Println(w)
		}
	case ":dump":
		prog, err := staxlang.Parse(arg)
		if err != nil {
			return false, err
		}
		pterm.Println(repr.String(prog))
	default:
		return false, fmt.Errorf("unknown command %s", cmd)
	}
	return false, nil
}

// wordList lists the dictionary entries, sorted by name.
func wordList(dict *runtime.Dictionary) []string {
	names := dict.Names()
	lines := make([]string, 0, len(names))
	for _, name := range names {
		entry := dict.Lookup(name)
		fp, err := dict.Fingerprint(name)
		if err != nil {
			fp = err.Error()
		}
		lines = append(lines, fmt.Sprintf("%-12s %-6s #%-3d %s", name,
			entry.Word().Kind(), entry.Generation, fp))
	}
	return lines
}

// leveledValues creates a leveled list of stack values, for display as a tree.
// Blocks are expanded one level deeper.
func leveledValues(values []runtime.Value, ll pterm.LeveledList, level int) pterm.LeveledList {
	for _, v := range values {
		ll = leveledValue(v, ll, level)
	}
	return ll
}

func leveledValue(v runtime.Value, ll pterm.LeveledList, level int) pterm.LeveledList {
	if v.Type() != runtime.BlockType {
		return append(ll, pterm.LeveledListItem{
			Level: level,
			Text:  v.GoString(),
		})
	}
	ll = append(ll, pterm.LeveledListItem{
		Level: level,
		Text:  "Block",
	})
	for _, e := range v.Exprs() {
		if e.IsWord() {
			ll = append(ll, pterm.LeveledListItem{
				Level: level + 1,
				Text:  e.GoString(),
			})
		} else {
			ll = leveledValue(e.Value(), ll, level+1)
		}
	}
	return ll
}
