package grammar

import (
	"sort"

	"github.com/npillmayer/funcalc/symtab"
)

// Parse parses one statement from a token sequence as produced by Scan.
// Identifier names for diagnostics are taken from ns, which may be nil.
//
// If the tokens hold nothing but the end of input, Parse returns a nil
// statement and no error. Otherwise the statement must extend up to the end
// of input; trailing tokens make the whole line a syntax error.
//
func Parse(toks []Token, ns *symtab.Namespace) (Stmt, error) {
	p := &parser{
		ts:   newTokenStream(toks),
		ns:   ns,
		args: make(map[symtab.Key]int),
	}
	return p.statement()
}

// ParseLine scans and parses one input line, interning identifiers into ns.
func ParseLine(line string, ns *symtab.Namespace) (Stmt, error) {
	if ns == nil {
		ns = symtab.NewNamespace()
	}
	toks, err := Scan(line, ns)
	if err != nil {
		return nil, err
	}
	return Parse(toks, ns)
}

// --- Magic commands --------------------------------------------------------

// MagicSlot is the kind of an argument of a magic command.
type MagicSlot int

// A magic argument is either a bare name or an expression.
const (
	NameSlot MagicSlot = iota
	ExprSlot
)

type magicCommand struct {
	shape []MagicSlot
	build func(names []symtab.Key, exprs []Expr) Stmt
}

var magics = map[string]magicCommand{
	"plot2d": {
		shape: []MagicSlot{NameSlot, ExprSlot, ExprSlot, ExprSlot},
		build: func(names []symtab.Key, exprs []Expr) Stmt {
			return &Plot{Fn: names[0], Start: exprs[0], End: exprs[1], Step: exprs[2]}
		},
	},
}

// MagicCommands returns the names of all magic commands, sorted.
func MagicCommands() []string {
	names := make([]string, 0, len(magics))
	for name := range magics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// --- Recursive descent -----------------------------------------------------

type parser struct {
	ts    *tokenStream
	ns    *symtab.Namespace
	args  map[symtab.Key]int // parameter positions, only while parsing a definition
	depth int                // current nesting of sub-expressions
}

// MaxNesting limits the nesting of parentheses, call arguments and prefix
// minus signs within a statement.
const MaxNesting = 1000

func (p *parser) enter() error {
	p.depth++
	if p.depth > MaxNesting {
		return syntaxError(p.ts.lookahead().Pos, "expression nested deeper than %d levels", MaxNesting)
	}
	return nil
}

func (p *parser) leave() {
	p.depth--
}

func (p *parser) name(k symtab.Key) string {
	return p.ns.NameOf(k)
}

func (p *parser) statement() (Stmt, error) {
	var stmt Stmt
	var err error
	start := p.ts.lookahead()
	switch start.Type {
	case EOF:
		tracer().Debugf("empty statement")
		return nil, nil
	case Unknown:
		return nil, syntaxError(start.Pos, "invalid character %q", start.Lexeme)
	case Fun:
		p.ts.next()
		stmt, err = p.function()
	case Percent:
		p.ts.next()
		stmt, err = p.magic()
	case Ident:
		stmt, err = p.assignment()
	default:
		var e Expr
		if e, err = p.expr(); err == nil {
			stmt = &ExprStmt{Expr: e}
		}
	}
	if err != nil {
		return nil, err
	}
	if t := p.ts.lookahead(); t.Type != EOF {
		return nil, syntaxError(t.Pos, "unexpected %v, expected end of input", t)
	}
	tracer().Debugf("statement %T", stmt)
	return stmt, nil
}

// assignment = name '=' expr | expr
func (p *parser) assignment() (Stmt, error) {
	target := p.ts.next()
	if !p.ts.expect(Equals) {
		p.ts.unread()
		e, err := p.expr()
		if err != nil {
			return nil, err
		}
		return &ExprStmt{Expr: e}, nil
	}
	value, err := p.expr()
	if err != nil {
		return nil, err
	}
	return &Assign{Target: target.Key, Value: value}, nil
}

// fun = 'fun' name '(' { name [','] } ')' '=' expr
func (p *parser) function() (Stmt, error) {
	t := p.ts.next()
	if t.Type != Ident {
		return nil, syntaxError(t.Pos, "expected a name after 'fun', have %v", t)
	}
	fname := p.name(t.Key)
	if !p.ts.expect(LParen) {
		return nil, syntaxError(p.ts.lookahead().Pos, "expected '(' after '%s'", fname)
	}
	defer func() { // parameters are visible only inside this definition
		p.args = make(map[symtab.Key]int)
	}()
	var params []symtab.Key
	for p.ts.check(Ident) {
		a := p.ts.next()
		if _, dup := p.args[a.Key]; dup {
			return nil, syntaxError(a.Pos, "duplicate parameter '%s' of '%s'", a.Lexeme, fname)
		}
		p.args[a.Key] = len(params)
		params = append(params, a.Key)
		p.ts.expect(Comma)
	}
	if !p.ts.expect(RParen) {
		return nil, syntaxError(p.ts.lookahead().Pos, "missing ')' after parameters of '%s'", fname)
	}
	if !p.ts.expect(Equals) {
		return nil, syntaxError(p.ts.lookahead().Pos, "expected '=' after parameters of '%s'", fname)
	}
	body, err := p.expr()
	if err != nil {
		return nil, err
	}
	return &FunctionDef{Name: t.Key, Params: params, Body: body}, nil
}

// magic = '%' name '(' { (name | expr) [','] } ')'
func (p *parser) magic() (Stmt, error) {
	t := p.ts.next()
	if t.Type != Ident {
		return nil, syntaxError(t.Pos, "expected a name after '%%', have %v", t)
	}
	mname := p.name(t.Key)
	cmd, ok := magics[mname]
	if !ok {
		return nil, syntaxError(t.Pos, "unknown magic command '%s'", mname)
	}
	if !p.ts.expect(LParen) {
		return nil, syntaxError(p.ts.lookahead().Pos, "expected '(' after '%s'", mname)
	}
	var names []symtab.Key
	var exprs []Expr
	for _, slot := range cmd.shape {
		switch slot {
		case NameSlot:
			a := p.ts.next()
			if a.Type != Ident {
				return nil, syntaxError(a.Pos, "expected a name as argument %d of '%s', have %v",
					len(names)+len(exprs)+1, mname, a)
			}
			names = append(names, a.Key)
		case ExprSlot:
			e, err := p.expr()
			if err != nil {
				return nil, err
			}
			exprs = append(exprs, e)
		}
		p.ts.expect(Comma)
	}
	if !p.ts.expect(RParen) {
		return nil, syntaxError(p.ts.lookahead().Pos, "'%s' takes %d arguments, missing ')'",
			mname, len(cmd.shape))
	}
	return cmd.build(names, exprs), nil
}

func (p *parser) expr() (Expr, error) {
	defer p.leave()
	if err := p.enter(); err != nil {
		return nil, err
	}
	return p.additive()
}

// additive = { multiplicative ('+'|'-') } multiplicative
func (p *parser) additive() (Expr, error) {
	left, err := p.multiplicative()
	if err != nil {
		return nil, err
	}
	for p.ts.check(Plus) || p.ts.check(Minus) {
		op := Add
		if p.ts.next().Type == Minus {
			op = Sub
		}
		right, err := p.multiplicative()
		if err != nil {
			return nil, err
		}
		left = &Binary{Left: left, Op: op, Right: right}
	}
	return left, nil
}

// multiplicative = { power ('*'|'/') } power
func (p *parser) multiplicative() (Expr, error) {
	left, err := p.power()
	if err != nil {
		return nil, err
	}
	for p.ts.check(Star) || p.ts.check(Slash) {
		op := Mul
		if p.ts.next().Type == Slash {
			op = Div
		}
		right, err := p.power()
		if err != nil {
			return nil, err
		}
		left = &Binary{Left: left, Op: op, Right: right}
	}
	return left, nil
}

// power = { minus '^' } minus
func (p *parser) power() (Expr, error) {
	left, err := p.minus()
	if err != nil {
		return nil, err
	}
	for p.ts.expect(Caret) {
		right, err := p.minus()
		if err != nil {
			return nil, err
		}
		left = &Binary{Left: left, Op: Pow, Right: right}
	}
	return left, nil
}

// minus = '-' minus | factorial
func (p *parser) minus() (Expr, error) {
	if p.ts.expect(Minus) {
		defer p.leave()
		if err := p.enter(); err != nil {
			return nil, err
		}
		operand, err := p.minus()
		if err != nil {
			return nil, err
		}
		return &Unary{Op: Neg, Operand: operand}, nil
	}
	return p.factorial()
}

// factorial = call ['!']
func (p *parser) factorial() (Expr, error) {
	operand, err := p.call()
	if err != nil {
		return nil, err
	}
	if p.ts.expect(Bang) {
		return &Unary{Op: Factorial, Operand: operand}, nil
	}
	return operand, nil
}

// call = name '(' { expr [','] } ')' | primary
func (p *parser) call() (Expr, error) {
	if !p.ts.check(Ident) {
		return p.primary()
	}
	t := p.ts.next()
	if !p.ts.expect(LParen) {
		return p.variable(t), nil
	}
	var args []Expr
	for !p.ts.expect(RParen) {
		if p.ts.atEnd() {
			return nil, syntaxError(p.ts.lookahead().Pos, "missing ')' in call of '%s'", p.name(t.Key))
		}
		a, err := p.expr()
		if err != nil {
			return nil, err
		}
		args = append(args, a)
		p.ts.expect(Comma)
	}
	return &Call{Fn: t.Key, Args: args}, nil
}

// primary = name | number | '(' expr ')'
func (p *parser) primary() (Expr, error) {
	t := p.ts.next()
	switch t.Type {
	case Ident:
		return p.variable(t), nil
	case Number:
		return &Literal{Value: Value(t.Value)}, nil
	case LParen:
		body, err := p.expr()
		if err != nil {
			return nil, err
		}
		if !p.ts.expect(RParen) {
			return nil, syntaxError(p.ts.lookahead().Pos, "missing ')'")
		}
		return &Group{Body: body}, nil
	case Unknown:
		return nil, syntaxError(t.Pos, "invalid character %q", t.Lexeme)
	}
	return nil, syntaxError(t.Pos, "unexpected %v, expected an expression", t)
}

// variable resolves a bare name to a parameter slot if a definition is being
// parsed and the name is one of its parameters, else to a global variable.
func (p *parser) variable(t Token) Expr {
	if i, ok := p.args[t.Key]; ok {
		return &Literal{Value: Arg(i)}
	}
	return &Literal{Value: Var(t.Key)}
}
