/*
Package cli implements the funcalc command line interface.

Without arguments and with a terminal on standard input, funcalc starts an
interactive REPL. Statements may also be given with -e (repeatable) or be
piped into standard input, one per line; they are evaluated in a single
session and results are printed one per line. Adding -i enters the REPL
after batch evaluation, keeping all definitions.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cli

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'funcalc.cli'
func tracer() tracing.Trace {
	return tracing.Select("funcalc.cli")
}
