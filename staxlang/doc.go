/*
Package staxlang provides a parser for stax programs.

Source text is a sequence of expressions, separated by white space or commas:

    Word    ::=  [A-Za-z_]+                      // add, my_word
    Number  ::=  [+-]? digits [. digits] [e exp]  // 1, -2.5, 6e23
    Text    ::=  "…"  |  '…'                     // no escapes
    Block   ::=  '{' Expr { Expr } '}'           // may not be empty

Comments start with '#' and extend to the end of the line.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package staxlang

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'stax.lang'
func tracer() tracing.Trace {
	return tracing.Select("stax.lang")
}
