package funcalc

import (
	"math"
	"testing"

	"github.com/knadh/koanf"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestFormatValue(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "funcalc")
	defer teardown()
	//
	for i, x := range []struct {
		v    float64
		prec int
		s    string
	}{
		{v: 14, prec: -1, s: "14"},
		{v: -120, prec: -1, s: "-120"},
		{v: 0.1, prec: -1, s: "0.1"},
		{v: 2.5, prec: -1, s: "2.5"},
		{v: 1932053504, prec: -1, s: "1932053504"},
		{v: 1.0 / 3.0, prec: 4, s: "0.3333"},
		{v: 2.0 / 3.0, prec: 2, s: "0.67"},
		{v: math.NaN(), prec: -1, s: "NaN"},
		{v: math.Inf(1), prec: 3, s: "inf"},
		{v: math.Inf(-1), prec: -1, s: "-inf"},
	} {
		if s := FormatValue(x.v, x.prec); s != x.s {
			t.Errorf("test %d: expected %g to format as %q, is %q", i, x.v, x.s, s)
		}
	}
}

func TestLoadDefaults(t *testing.T) {
	k := koanf.New(".")
	if err := LoadDefaults(k); err != nil {
		t.Fatal(err)
	}
	if d := k.Int(KeyMaxDepth); d != 1000 {
		t.Errorf("expected default recursion limit of 1000, is %d", d)
	}
	if p := k.Int(KeyPrecision); p != -1 {
		t.Errorf("expected default precision of -1, is %d", p)
	}
	if !k.Bool(KeyFoldWidth) {
		t.Errorf("expected width folding to be on by default")
	}
}
