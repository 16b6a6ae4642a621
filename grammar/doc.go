/*
Package grammar implements the front end of the calculator: tokens, the
scanner, the abstract syntax tree and a recursive-descent parser.

Syntax

One input line holds exactly one statement:

    stmt    = fun | assign | magic | expr
    fun     = 'fun' name '(' { name [','] } ')' '=' expr
    assign  = name '=' expr
    magic   = '%' name '(' { (name | expr) [','] } ')'
    expr    = { mult ('+'|'-') } mult
    mult    = { power ('*'|'/') } power
    power   = { minus '^' } minus
    minus   = '-' minus | fact
    fact    = call ['!']
    call    = name '(' { expr [','] } ')' | primary
    primary = name | number | '(' expr ')'

All binary operators, including '^', are left-associative. A name directly
followed by '(' is always a call. Comments start with '#' and extend to the
end of the line. Names start with a letter or '_' and continue with letters,
digits or '_'; letters are not restricted to ASCII. Expressions may nest up to
MaxNesting levels.

The only magic command is plot2d, which takes the name of a function and
three expressions for start, end and step.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grammar

import (
	"errors"
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'funcalc.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("funcalc.grammar")
}

// Error kinds of the front end. Use errors.Is to test for them.
var (
	ErrLexical = errors.New("lexical error")
	ErrSyntax  = errors.New("syntax error")
)

// SyntaxError is returned by the scanner and the parser. It wraps one of
// ErrLexical or ErrSyntax.
type SyntaxError struct {
	Kind error  // ErrLexical or ErrSyntax
	Msg  string // diagnostic
	Pos  int    // byte offset into the input line
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%v at %d: %s", e.Kind, e.Pos, e.Msg)
}

func (e *SyntaxError) Unwrap() error {
	return e.Kind
}

func syntaxError(pos int, format string, args ...interface{}) error {
	err := &SyntaxError{Kind: ErrSyntax, Msg: fmt.Sprintf(format, args...), Pos: pos}
	tracer().Errorf("%v", err)
	return err
}

func lexicalError(pos int, format string, args ...interface{}) error {
	err := &SyntaxError{Kind: ErrLexical, Msg: fmt.Sprintf(format, args...), Pos: pos}
	tracer().Errorf("%v", err)
	return err
}
