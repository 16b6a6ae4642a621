package grammar

import (
	"errors"
	"strconv"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/funcalc/symtab"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

var compileOnce sync.Once // monitors one-time creation of the lexer
var lexer *lexmachine.Lexer
var lexerErr error

// Identifiers may contain multi-byte UTF-8 sequences. The DFA works on bytes,
// so it accepts any lead byte followed by continuation bytes, and makeName
// checks the decoded runes.
const (
	utf8Seq = "[\xc0-\xf7][\x80-\xbf]+"
	namePat = "([_a-zA-Z]|" + utf8Seq + ")([_a-zA-Z0-9]|" + utf8Seq + ")*"
)

// compiledLexer returns the DFA lexer for the calculator, which is shared by
// all scans.
func compiledLexer() (*lexmachine.Lexer, error) {
	compileOnce.Do(func() {
		tracer().Infof("Creating lexer")
		lexer = lexmachine.NewLexer()
		lexer.Add([]byte(`#[^\n]*`), skip)        // skip comments
		lexer.Add([]byte(`( |\t|\n|\r)+`), skip) // skip whitespace
		lexer.Add([]byte(`[0-9]+(\.[0-9]*)?`), makeNumber)
		lexer.Add([]byte(namePat), makeName)
		for lit, t := range literals {
			lexer.Add([]byte(`\`+lit), makeToken(t))
		}
		// must come last, as earlier patterns win ties of equal length
		lexer.Add([]byte(`[^ \t\r\n]`), makeToken(Unknown))
		lexerErr = lexer.Compile()
		if lexerErr != nil {
			tracer().Errorf("cannot compile lexer: %v", lexerErr)
		}
	})
	return lexer, lexerErr
}

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func makeToken(t TokType) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return Token{Type: t, Lexeme: string(m.Bytes), Pos: m.TC}, nil
	}
}

func makeName(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
	lexeme := string(m.Bytes)
	for i, r := range lexeme {
		if !isNameRune(r, i == 0) {
			_, size := utf8.DecodeRuneInString(lexeme[i:])
			bad := lexeme[i : i+size]
			tracer().Debugf("no identifier character: %q", bad)
			return Token{Type: Unknown, Lexeme: bad, Pos: m.TC + i}, nil
		}
	}
	if t, ok := keywords[lexeme]; ok {
		return Token{Type: t, Lexeme: lexeme, Pos: m.TC}, nil
	}
	return Token{Type: Ident, Lexeme: lexeme, Pos: m.TC}, nil
}

// isNameRune is true for letters and underscore, and for digits if not at
// the start of an identifier.
func isNameRune(r rune, first bool) bool {
	if r == '_' || unicode.IsLetter(r) {
		return true
	}
	return !first && unicode.IsDigit(r)
}

func makeNumber(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
	lexeme := string(m.Bytes)
	f, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		return nil, lexicalError(m.TC, "malformed number %q", lexeme)
	}
	return Token{Type: Number, Value: f, Lexeme: lexeme, Pos: m.TC}, nil
}

// Scan splits an input line into tokens. The result always ends with
// exactly one EOF token. Identifiers are interned into ns as they are
// encountered. Characters outside the language are returned as tokens of
// type Unknown and left for the parser to reject.
//
// Identifiers consist of Unicode letters, digits and underscore, and do not
// start with a digit. A non-ASCII character which is not a letter or digit is
// returned as a single Unknown token.
//
// An error is returned for numbers which do not fit into a float64.
//
func Scan(input string, ns *symtab.Namespace) ([]Token, error) {
	lx, err := compiledLexer()
	if err != nil {
		return nil, err
	}
	if ns == nil {
		ns = symtab.NewNamespace()
	}
	scanner, err := lx.Scanner([]byte(input))
	if err != nil {
		return nil, err
	}
	var toks []Token
	for tok, err, eos := scanner.Next(); !eos; tok, err, eos = scanner.Next() {
		if err != nil {
			var serr *SyntaxError
			if errors.As(err, &serr) {
				return nil, err
			}
			return nil, lexicalError(scanner.TC, "%v", err)
		}
		t := tok.(Token)
		if t.Type == Ident {
			t.Key = ns.Intern(t.Lexeme)
		}
		tracer().Debugf("token %v at %d", t, t.Pos)
		toks = append(toks, t)
	}
	toks = append(toks, Token{Type: EOF, Pos: len(input)})
	return toks, nil
}
