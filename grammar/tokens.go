package grammar

import (
	"fmt"

	"github.com/npillmayer/funcalc/symtab"
)

// TokType is the category of a token.
type TokType int

// Token categories
const (
	EOF     TokType = iota // end of input, always the last token of a line
	Unknown                // any character not part of the language
	Number
	Ident
	Fun // keyword 'fun'
	LParen
	RParen
	Plus
	Minus
	Star
	Slash
	Bang
	Caret
	Equals
	Comma
	Percent
)

var tokTypeNames = [...]string{
	EOF:     "end of input",
	Unknown: "unknown",
	Number:  "number",
	Ident:   "name",
	Fun:     "'fun'",
	LParen:  "'('",
	RParen:  "')'",
	Plus:    "'+'",
	Minus:   "'-'",
	Star:    "'*'",
	Slash:   "'/'",
	Bang:    "'!'",
	Caret:   "'^'",
	Equals:  "'='",
	Comma:   "','",
	Percent: "'%'",
}

func (t TokType) String() string {
	if t < 0 || int(t) >= len(tokTypeNames) {
		return fmt.Sprintf("TokType(%d)", int(t))
	}
	return tokTypeNames[t]
}

// literals maps one-character lexemes to their token category.
var literals = map[string]TokType{
	"(": LParen,
	")": RParen,
	"+": Plus,
	"-": Minus,
	"*": Star,
	"/": Slash,
	"!": Bang,
	"^": Caret,
	"=": Equals,
	",": Comma,
	"%": Percent,
}

var keywords = map[string]TokType{
	"fun": Fun,
}

// Token is a lexical unit of an input line.
type Token struct {
	Type   TokType
	Value  float64    // for Number
	Key    symtab.Key // for Ident
	Lexeme string
	Pos    int // byte offset
}

func (t Token) String() string {
	switch t.Type {
	case Number, Ident, Unknown:
		return fmt.Sprintf("%s %q", t.Type, t.Lexeme)
	}
	return t.Type.String()
}
