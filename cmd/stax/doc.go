/*
Command stax runs stax programs.

    stax [-trace LEVEL] FILE      run a program file
    stax [-trace LEVEL] < FILE    run a program from stdin
    stax [-init FILE]             interactive mode (REPL)

In interactive mode every line is parsed and evaluated against the same stack
and dictionary. Errors are reported and the session continues with the stack
left exactly as the failing line left it. Lines starting with a colon are
commands of the REPL itself:

    :words        list the dictionary, with a fingerprint for every word
    :stack        print the stack
    :tree         print the stack as a tree, expanding blocks
    :clear        empty the stack
    :dump SOURCE  parse SOURCE and dump the resulting program
    :quit         leave the REPL (or use <ctrl>D)

If configuration key stax.show-stack is true, the stack is printed after
every line. It is set with flag -show-stack or environment variable
STAX_SHOW_STACK. Likewise, the default trace level may be set with
STAX_TRACE instead of flag -trace.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'stax.cmd'
func tracer() tracing.Trace {
	return tracing.Select("stax.cmd")
}
