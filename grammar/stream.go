package grammar

// tokenStream delivers tokens to the parser with one token of lookahead.
// Reading past the end repeats the final EOF token.
type tokenStream struct {
	toks []Token
	pos  int
}

func newTokenStream(toks []Token) *tokenStream {
	if len(toks) == 0 || toks[len(toks)-1].Type != EOF {
		end := 0
		if len(toks) > 0 {
			last := toks[len(toks)-1]
			end = last.Pos + len(last.Lexeme)
		}
		toks = append(toks, Token{Type: EOF, Pos: end})
	}
	return &tokenStream{toks: toks}
}

// lookahead returns the next token without consuming it.
func (ts *tokenStream) lookahead() Token {
	return ts.toks[ts.pos]
}

// next consumes and returns the next token.
func (ts *tokenStream) next() Token {
	t := ts.toks[ts.pos]
	if ts.pos < len(ts.toks)-1 {
		ts.pos++
	}
	tracer().Debugf("match %v", t)
	return t
}

// unread pushes back the token consumed last.
func (ts *tokenStream) unread() {
	if ts.pos > 0 {
		ts.pos--
	}
}

func (ts *tokenStream) check(t TokType) bool {
	return ts.lookahead().Type == t
}

// expect consumes the next token if it is of type t.
func (ts *tokenStream) expect(t TokType) bool {
	if ts.check(t) {
		ts.next()
		return true
	}
	return false
}

func (ts *tokenStream) atEnd() bool {
	return ts.check(EOF)
}
