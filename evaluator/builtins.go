package evaluator

import (
	"math"
)

// Builtin is a native function of one argument.
type Builtin func(float64) float64

var builtins = map[string]Builtin{
	"ln":     math.Log,
	"lg":     math.Log10,
	"sin":    math.Sin,
	"cos":    math.Cos,
	"tan":    math.Tan,
	"asin":   math.Asin,
	"acos":   math.Acos,
	"atan":   math.Atan,
	"sqrt":   math.Sqrt,
	"abs":    math.Abs,
	"sinh":   math.Sinh,
	"cosh":   math.Cosh,
	"floor":  math.Floor,
	"to_rad": func(deg float64) float64 { return deg * math.Pi / 180 },
}

var constants = map[string]float64{
	"PI": math.Pi,
	"E":  math.E,
}

// factorial computes n! for n = x truncated to uint32, multiplying modulo
// 2^32. Once the product has wrapped to 0 it stays 0.
func factorial(x float64) float64 {
	n := toUint32(x)
	var r uint32 = 1
	for i := uint32(2); i <= n && r != 0; i++ {
		r *= i
	}
	return float64(r)
}

// toUint32 truncates towards zero, saturating at the bounds of uint32.
// NaN converts to 0.
func toUint32(x float64) uint32 {
	switch {
	case math.IsNaN(x) || x <= 0:
		return 0
	case x >= math.MaxUint32:
		return math.MaxUint32
	}
	return uint32(x)
}
