// Package funcalc is a small interactive calculator for expressions and
// single-expression functions.
//
// The language knows numbers, global variables, user-defined functions
// with positional parameters, a fixed set of built-in math functions and
// a plotting statement, which samples a function and draws it onto a
// braille canvas in the terminal:
//
//     >>> fun sq(x) = x * x
//     >>> sq(5)
//     25
//     >>> r = sqrt(2)
//     >>> %plot2d(sq, 0, 20, 0.5)
//
// Sub-packages implement the pipeline: symtab (identifier interning),
// grammar (scanner, parser, AST), evaluator (environment and statement
// execution) and canvas (braille rasterizer).
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
//
package funcalc

import (
	"context"
	"io"
	"os"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
)

// Configuration holds global configuration values. We use koanf.
var Configuration *koanf.Koanf

// Tracefile is the file we write our log output, if not nil.
var Tracefile io.WriteCloser

// SignalContext is a global context for terminating the application by an interrupt
// signal.
var SignalContext context.Context

// Exit exits the application. It gracefully shuts down all resources.
func Exit(errcode int) {
	if Tracefile != nil {
		Tracefile.Close()
	}
	os.Exit(errcode)
}

// Configuration keys.
const (
	KeyMaxDepth   = "calc.max-depth"    // recursion limit for user functions
	KeyMaxSamples = "plot.max-samples"  // iteration cap for plot statements
	KeyPrecision  = "display.precision" // decimal places of printed results, -1 = exact
	KeyFoldWidth  = "input.fold-width"  // fold full-width input to ASCII
)

// Defaults returns the default configuration values.
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		KeyMaxDepth:   1000,
		KeyMaxSamples: 100000,
		KeyPrecision:  -1,
		KeyFoldWidth:  true,
	}
}

// LoadDefaults loads the default configuration values into a koanf instance.
// Values already present will be overwritten.
func LoadDefaults(k *koanf.Koanf) error {
	return k.Load(confmap.Provider(Defaults(), "."), nil)
}
