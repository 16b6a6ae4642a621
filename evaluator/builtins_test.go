package evaluator

import (
	"math"
	"testing"
)

func TestFactorialConversion(t *testing.T) {
	for _, x := range []struct {
		in   float64
		want float64
	}{
		{math.NaN(), 1},
		{-5, 1},
		{-0.5, 1},
		{2.999, 2},
		{4, 24},
		{math.Inf(1), 0},
		{1e12, 0},
	} {
		if have := factorial(x.in); have != x.want {
			t.Errorf("expected factorial(%g) = %g, have %g", x.in, x.want, have)
		}
	}
	if n := toUint32(1e12); n != math.MaxUint32 {
		t.Errorf("expected conversion to saturate, have %d", n)
	}
}
