package grammar

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/funcalc/symtab"
)

// Format prints an expression in source form. Parameter slots are printed
// with the names in params, if present, and as $0, $1, … otherwise.
//
// Parentheses appear exactly where the source had them, which is enough for
// trees produced by the parser to read back to the same tree.
//
func Format(e Expr, ns *symtab.Namespace, params []symtab.Key) string {
	var b strings.Builder
	formatExpr(&b, e, ns, params)
	return b.String()
}

// FormatStmt prints a statement in source form.
func FormatStmt(s Stmt, ns *symtab.Namespace) string {
	switch s := s.(type) {
	case *FunctionDef:
		names := make([]string, len(s.Params))
		for i, p := range s.Params {
			names[i] = ns.NameOf(p)
		}
		return fmt.Sprintf("fun %s(%s) = %s", ns.NameOf(s.Name), strings.Join(names, ", "),
			Format(s.Body, ns, s.Params))
	case *Assign:
		return fmt.Sprintf("%s = %s", ns.NameOf(s.Target), Format(s.Value, ns, nil))
	case *ExprStmt:
		return Format(s.Expr, ns, nil)
	case *Plot:
		return fmt.Sprintf("%%plot2d(%s, %s, %s, %s)", ns.NameOf(s.Fn),
			Format(s.Start, ns, nil), Format(s.End, ns, nil), Format(s.Step, ns, nil))
	}
	return fmt.Sprintf("%v", s)
}

func formatExpr(b *strings.Builder, e Expr, ns *symtab.Namespace, params []symtab.Key) {
	switch e := e.(type) {
	case *Literal:
		switch v := e.Value.(type) {
		case Value:
			b.WriteString(strconv.FormatFloat(float64(v), 'f', -1, 64))
		case Arg:
			if int(v) < len(params) {
				b.WriteString(ns.NameOf(params[v]))
			} else {
				fmt.Fprintf(b, "$%d", int(v))
			}
		case Var:
			b.WriteString(ns.NameOf(symtab.Key(v)))
		}
	case *Group:
		b.WriteByte('(')
		formatExpr(b, e.Body, ns, params)
		b.WriteByte(')')
	case *Unary:
		if e.Op == Neg {
			b.WriteByte('-')
			formatExpr(b, e.Operand, ns, params)
		} else {
			formatExpr(b, e.Operand, ns, params)
			b.WriteByte('!')
		}
	case *Binary:
		formatExpr(b, e.Left, ns, params)
		b.WriteString(" " + e.Op.String() + " ")
		formatExpr(b, e.Right, ns, params)
	case *Call:
		b.WriteString(ns.NameOf(e.Fn))
		b.WriteByte('(')
		for i, a := range e.Args {
			if i > 0 {
				b.WriteString(", ")
			}
			formatExpr(b, a, ns, params)
		}
		b.WriteByte(')')
	}
}
