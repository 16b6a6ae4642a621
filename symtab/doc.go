/*
Package symtab interns identifiers.

Every identifier the scanner sees is entered into a Namespace, which hands
out a small integer Key for it. Keys are the identity of variables,
functions and built-ins throughout parsing and evaluation; the Namespace
keeps the reverse mapping for diagnostics. Interning is bijective: two
different names never share a key.

A Namespace lives as long as a calculator session and only grows.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package symtab

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'funcalc.symtab'
func tracer() tracing.Trace {
	return tracing.Select("funcalc.symtab")
}
