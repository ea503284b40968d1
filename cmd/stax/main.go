package main

import (
	"flag"
	"os"
	"strconv"

	"github.com/npillmayer/stax/eval"
	"github.com/pterm/pterm"
	"golang.org/x/term"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// traceKeys are the tracers of all stax packages.
var traceKeys = []string{"stax.cmd", "stax.eval", "stax.runtime", "stax.lang", "stax.scanner"}

// main() either runs a program file or starts an interactive CLI, where users
// may enter stax expressions line by line.
func main() {
	initDisplay()
	conf := newConfig(os.LookupEnv)
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	showStack := flag.Bool("show-stack", false, "Print the stack after each line")
	initf := flag.String("init", "", "Initial load")
	flag.Parse()
	flag.Visit(func(f *flag.Flag) { // explicit flags override the environment
		switch f.Name {
		case "trace":
			conf.Set("tracelevel.root", *tlevel)
		case "show-stack":
			conf.Set("stax.show-stack", strconv.FormatBool(*showStack))
		}
	})
	if err := initConfig(conf); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(3)
	}
	tracer().Infof("Trace level is %s", conf.GetString("tracelevel.root"))
	//
	rt := eval.NewRuntime(os.Stdout)
	if flag.NArg() > 0 { // file mode
		os.Exit(runFile(flag.Arg(0), rt))
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) { // input is piped in
		os.Exit(runReader(os.Stdin, rt))
	}
	//
	intp, err := NewIntp(rt)
	if err != nil {
		tracer().Errorf("%v", err)
		os.Exit(3)
	}
	defer intp.Close()
	pterm.Info.Println("Welcome to stax") // colored welcome message
	tracer().Infof("Quit with <ctrl>D")   // inform user how to stop the CLI
	intp.loadInitFile(*initf)             // init file name provided by flag
	intp.REPL()                           // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}
