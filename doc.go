/*
Package stax is a small interpreter for a concatenative, stack-based scripting
language.

Programs are sequences of whitespace-separated tokens. A token is either a literal
value (a number, a quoted text or a {…} block) or the name of a word. Literals
are pushed onto a single shared stack, words are looked up in a mutable
dictionary and executed. A short session:

    "square" {dup mul} def
    7 square prt              # prints 49
    1 {"yes"} {"no"} if prt   # prints yes

Package structure is as follows:

■ runtime: Package runtime implements the value model, the stack, the dictionary
of words and the runtime environment bundling them.

■ eval: Package eval implements the evaluator and the builtin word library.

■ scanner: Package scanner defines the tokenizer interface; sub-package lexmach
adapts lexmachine to it.

■ staxlang: Package staxlang parses source text into programs.

■ cmd/stax: The command line tool, running files or an interactive REPL.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package stax
