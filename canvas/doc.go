/*
Package canvas rasterizes points onto a terminal canvas made of braille
characters.

Every braille cell (U+2800 to U+28FF) holds a grid of 2×4 dots, so a
canvas of c columns and r rows of characters has a resolution of 2c×4r
points. Coordinates are rounded to the nearest dot; x grows to the right,
y grows downwards. The canvas grows on demand when points are set.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package canvas

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'funcalc.canvas'.
func tracer() tracing.Trace {
	return tracing.Select("funcalc.canvas")
}
