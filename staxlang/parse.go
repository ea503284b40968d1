package staxlang

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
	"strconv"
	"sync"
	"unicode/utf8"

	"github.com/npillmayer/stax"
	"github.com/npillmayer/stax/runtime"
	"github.com/npillmayer/stax/scanner"
	"github.com/npillmayer/stax/scanner/lexmach"
	"github.com/timtadh/lexmachine/machines"
)

// --- Grammar ---------------------------------------------------------------

// Program    ::=  Sequence
// Sequence   ::=  Sequence Expr  |  ε
// Expr       ::=  word  |  number  |  string  |  Block
// Block      ::=  '{' Expr Sequence '}'
//
// Expressions have to be separated by blanks or commas, except next to braces.
// Comments starting with '#' will be filtered by the scanner.

// SyntaxError is returned for input which is not a valid stax program.
type SyntaxError struct {
	Line, Column int
	Msg          string
}

func (e SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at %d:%d: %s", e.Line, e.Column, e.Msg)
}

var lexer *lexmach.LMAdapter
var lexerErr error

var startOnce sync.Once // monitors one-time creation of the lexer

func createLexer() (*lexmach.LMAdapter, error) {
	startOnce.Do(func() {
		tracer().Infof("Creating lexer")
		lexer, lexerErr = Lexer()
	})
	return lexer, lexerErr
}

// Parse parses an input string, given in stax language format. It returns the
// program, or an error in case of failure.
func Parse(input string) (runtime.Program, error) {
	lm, err := createLexer()
	if err != nil {
		return nil, fmt.Errorf("cannot create lexer: %w", err)
	}
	scan, err := lm.Scanner(input)
	if err != nil {
		return nil, err
	}
	p := &parser{input: input, scan: scan}
	scan.SetErrorHandler(p.scanError)
	p.next()
	seq, err := p.sequence(false)
	if err != nil {
		tracer().Debugf("%v", err)
		return nil, err
	}
	return runtime.Program(seq), nil
}

// MustParse is like Parse, but panics on syntax errors.
func MustParse(input string) runtime.Program {
	prog, err := Parse(input)
	if err != nil {
		panic(err)
	}
	return prog
}

type parser struct {
	input   string
	scan    scanner.Tokenizer
	tok     stax.Token
	prev    stax.Token
	scanErr error // first error reported by the scanner
}

func (p *parser) scanError(err error) {
	if p.scanErr != nil {
		return
	}
	var ui *machines.UnconsumedInput
	if errors.As(err, &ui) && ui.StartTC < len(p.input) {
		line, col := stax.Span{uint64(ui.StartTC), 0}.Location(p.input)
		r, _ := utf8.DecodeRuneInString(p.input[ui.StartTC:])
		p.scanErr = SyntaxError{Line: line, Column: col,
			Msg: fmt.Sprintf("unexpected input starting with %q", r)}
		return
	}
	p.scanErr = err
}

func (p *parser) next() {
	p.prev = p.tok
	p.tok = p.scan.NextToken()
	tracer().Debugf("token %q", p.tok.Lexeme())
}

func (p *parser) errorf(tok stax.Token, format string, args ...interface{}) error {
	line, col := tok.Span().Location(p.input)
	return SyntaxError{Line: line, Column: col, Msg: fmt.Sprintf(format, args...)}
}

func isBrace(tok stax.Token) bool {
	t := int(tok.TokType())
	return t == '{' || t == '}'
}

// sequence parses expressions up to EOF or, if inBlock is set, up to and
// including a closing brace.
func (p *parser) sequence(inBlock bool) ([]runtime.Expr, error) {
	var seq []runtime.Expr
	for {
		if p.scanErr != nil {
			return nil, p.scanErr
		}
		tok := p.tok
		switch tok.TokType() {
		case scanner.EOF:
			if inBlock {
				return nil, p.errorf(tok, "missing '}'")
			}
			return seq, nil
		case '}':
			if !inBlock {
				return nil, p.errorf(tok, "unbalanced '}'")
			}
			p.next()
			return seq, nil
		}
		if p.prev != nil && !isBrace(tok) && !isBrace(p.prev) &&
			p.prev.Span().To() == tok.Span().From() {
			return nil, p.errorf(tok, "missing separator before %q", tok.Lexeme())
		}
		expr, err := p.expr()
		if err != nil {
			return nil, err
		}
		seq = append(seq, expr)
	}
}

func (p *parser) expr() (runtime.Expr, error) {
	tok := p.tok
	switch tok.TokType() {
	case scanner.Ident:
		p.next()
		return runtime.WordRef(tok.Lexeme()), nil
	case scanner.Float:
		n, err := strconv.ParseFloat(tok.Lexeme(), 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) { // out of range yields ±inf
			return runtime.Expr{}, p.errorf(tok, "malformed number %q", tok.Lexeme())
		}
		p.next()
		return runtime.Literal(runtime.Number(n)), nil
	case scanner.String:
		lexeme := tok.Lexeme()
		p.next()
		return runtime.Literal(runtime.Text(lexeme[1 : len(lexeme)-1])), nil
	case '{':
		p.next()
		if p.scanErr == nil && int(p.tok.TokType()) == '}' {
			return runtime.Expr{}, p.errorf(tok, "empty block")
		}
		body, err := p.sequence(true)
		if err != nil {
			return runtime.Expr{}, err
		}
		return runtime.Literal(runtime.Quote(body...)), nil
	}
	return runtime.Expr{}, p.errorf(tok, "unexpected token %q", tok.Lexeme())
}
