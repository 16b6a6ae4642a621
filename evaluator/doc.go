/*
Package evaluator executes calculator statements.

An Evaluator is the environment of one calculator session. It holds global
variables, user-defined functions and a fixed table of built-in functions,
all keyed by symbols of the session's namespace. Functions and variables
live in separate tables: call syntax resolves to a function, a bare name to
a variable, so one name may denote both at the same time.

    ev := evaluator.New()
    ev.Run("fun sq(x) = x * x")
    r, err := ev.Run("sq(5)")   // r.Value == 25

Failures never leave partial state behind: an assignment whose right-hand
side fails to evaluate does not assign. IEEE-754 special values are not
failures; division by zero or sqrt(-1) produce ±Inf or NaN, which propagate
as usual.

Factorial truncates its operand towards zero to an unsigned 32-bit integer
and multiplies modulo 2^32, so n! for n ≥ 13 wraps around.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package evaluator

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'funcalc.eval'.
func tracer() tracing.Trace {
	return tracing.Select("funcalc.eval")
}

// Error conditions of evaluation. Errors returned by an Evaluator wrap one
// of these (or a grammar error), use errors.Is to test for them.
var (
	ErrUndefinedVariable     = errors.New("undefined variable")
	ErrUndefinedFunction     = errors.New("function not defined")
	ErrArgumentCount         = errors.New("wrong number of arguments")
	ErrInsufficientArguments = errors.New("insufficient arguments")
	ErrRecursionLimit        = errors.New("recursion limit exceeded")
	ErrPlot                  = errors.New("cannot plot")
	ErrInterrupted           = errors.New("interrupted")
)
