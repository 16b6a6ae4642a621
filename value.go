package funcalc

import (
	"math"

	"github.com/npillmayer/schuko/tracing"
	"github.com/shopspring/decimal"
)

// tracer traces with key 'funcalc'.
func tracer() tracing.Trace {
	return tracing.Select("funcalc")
}

// FormatValue renders a calculation result for output.
//
// Finite values are printed as plain decimals without exponent, using the
// shortest representation which reads back to the same float. If precision
// is non-negative, the value is rounded to that many decimal places first.
// NaN and infinities are printed as "NaN", "inf" and "-inf".
//
func FormatValue(v float64, precision int) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	d := decimal.NewFromFloat(v)
	if precision >= 0 {
		d = d.Round(int32(precision))
	}
	s := d.String()
	tracer().Debugf("format %g => %s", v, s)
	return s
}
