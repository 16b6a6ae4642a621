package grammar

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/funcalc/symtab"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func types(toks []Token) []TokType {
	tt := make([]TokType, len(toks))
	for i, t := range toks {
		tt[i] = t.Type
	}
	return tt
}

func sameTypes(a, b []TokType) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestScanTokenTypes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "funcalc.grammar")
	defer teardown()
	//
	for i, x := range []struct {
		input string
		types []TokType
	}{
		{"", []TokType{EOF}},
		{"   \t\r\n", []TokType{EOF}},
		{"# nothing but a comment", []TokType{EOF}},
		{"x\n", []TokType{Ident, EOF}},
		{"fun sq(x) = x * x", []TokType{Fun, Ident, LParen, Ident, RParen, Equals, Ident, Star, Ident, EOF}},
		{"funny", []TokType{Ident, EOF}},
		{"_a1 + 2.5 # add", []TokType{Ident, Plus, Number, EOF}},
		{"-3!^2/1", []TokType{Minus, Number, Bang, Caret, Number, Slash, Number, EOF}},
		{"%plot2d(f, 0, 1, .5)", []TokType{Percent, Ident, LParen, Ident, Comma, Number, Comma,
			Number, Comma, Unknown, Number, RParen, EOF}},
		{"a $ b", []TokType{Ident, Unknown, Ident, EOF}},
		{"π = 3", []TokType{Ident, Equals, Number, EOF}},
		{"café + 1", []TokType{Ident, Plus, Number, EOF}},
		{"Δx2 * _ñ", []TokType{Ident, Star, Ident, EOF}},
		{"a → b", []TokType{Ident, Unknown, Ident, EOF}},
	} {
		toks, err := Scan(x.input, symtab.NewNamespace())
		if err != nil {
			t.Errorf("test %d: unexpected error: %v", i, err)
			continue
		}
		if !sameTypes(types(toks), x.types) {
			t.Errorf("test %d: expected %v, have %v", i, x.types, types(toks))
		}
	}
}

func TestScanNumbers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "funcalc.grammar")
	defer teardown()
	//
	toks, err := Scan("3.14 1. 42", nil)
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range []float64{3.14, 1, 42} {
		if toks[i].Type != Number || toks[i].Value != v {
			t.Errorf("expected number %g at %d, have %v", v, i, toks[i])
		}
	}
}

func TestScanInternsIdentifiers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "funcalc.grammar")
	defer teardown()
	//
	ns := symtab.NewNamespace()
	toks, err := Scan("x + y * x", ns)
	if err != nil {
		t.Fatal(err)
	}
	if toks[0].Key != toks[4].Key {
		t.Errorf("expected both occurences of 'x' to have the same key")
	}
	if toks[0].Key == toks[2].Key {
		t.Errorf("expected 'x' and 'y' to have different keys")
	}
	if ns.NameOf(toks[2].Key) != "y" {
		t.Errorf("expected key of 'y' to be recorded in namespace")
	}
	if toks[2].Pos != 4 {
		t.Errorf("expected 'y' at position 4, is at %d", toks[2].Pos)
	}
}

func TestScanMalformedNumber(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "funcalc.grammar")
	defer teardown()
	//
	_, err := Scan(strings.Repeat("9", 400), nil)
	if err == nil {
		t.Fatalf("expected out-of-range number to be rejected")
	}
	if !errors.Is(err, ErrLexical) {
		t.Errorf("expected lexical error, have %v", err)
	}
}

func TestScanUnicodeIdentifiers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "funcalc.grammar")
	defer teardown()
	//
	ns := symtab.NewNamespace()
	toks, err := Scan("café + π", ns)
	if err != nil {
		t.Fatal(err)
	}
	if toks[0].Lexeme != "café" || ns.NameOf(toks[0].Key) != "café" {
		t.Errorf("expected identifier 'café', have %v", toks[0])
	}
	if toks[2].Lexeme != "π" || toks[2].Pos != 8 {
		t.Errorf("expected identifier 'π' at byte 8, have %v at %d", toks[2], toks[2].Pos)
	}
	toks, err = Scan("x→", ns)
	if err != nil {
		t.Fatal(err)
	}
	if toks[0].Type != Unknown || toks[0].Lexeme != "→" || toks[0].Pos != 1 {
		t.Errorf("expected unknown token '→' at 1, have %v at %d", toks[0], toks[0].Pos)
	}
}
