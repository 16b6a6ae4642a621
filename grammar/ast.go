package grammar

import "github.com/npillmayer/funcalc/symtab"

// Expr is an expression node. Nodes are immutable once the parser has
// built them, and every node owns its children.
//
// Expr is one of *Literal, *Group, *Unary, *Binary or *Call.
type Expr interface {
	isExpr()
}

// Valuable is the payload of a literal: a Value, an Arg or a Var.
type Valuable interface {
	isValuable()
}

// Value is a numeric constant.
type Value float64

// Arg references a parameter of the enclosing function by position.
type Arg int

// Var references a global variable.
type Var symtab.Key

func (Value) isValuable() {}
func (Arg) isValuable()   {}
func (Var) isValuable()   {}

// Literal is a leaf of an expression tree.
type Literal struct {
	Value Valuable
}

// Group is a parenthesized sub-expression.
type Group struct {
	Body Expr
}

// UnaryOp is an operator with one operand.
type UnaryOp int

// Unary operators
const (
	Neg       UnaryOp = iota // prefix '-'
	Factorial                // postfix '!'
)

// Unary applies a UnaryOp.
type Unary struct {
	Op      UnaryOp
	Operand Expr
}

// BinaryOp is an arithmetic operator with two operands.
type BinaryOp int

// Binary operators
const (
	Add BinaryOp = iota
	Sub
	Mul
	Div
	Pow
)

var binaryOpNames = [...]string{Add: "+", Sub: "-", Mul: "*", Div: "/", Pow: "^"}

func (op BinaryOp) String() string {
	return binaryOpNames[op]
}

// Binary applies a BinaryOp.
type Binary struct {
	Left  Expr
	Op    BinaryOp
	Right Expr
}

// Call invokes a user function or a built-in.
type Call struct {
	Fn   symtab.Key
	Args []Expr
}

func (*Literal) isExpr() {}
func (*Group) isExpr()   {}
func (*Unary) isExpr()   {}
func (*Binary) isExpr()  {}
func (*Call) isExpr()    {}

// Stmt is a statement node, the result of parsing one input line.
//
// Stmt is one of *FunctionDef, *Assign, *ExprStmt or *Plot.
type Stmt interface {
	isStmt()
}

// FunctionDef binds a name to a single-expression body. Params are kept for
// printing; the body refers to parameters by position only.
type FunctionDef struct {
	Name   symtab.Key
	Params []symtab.Key
	Body   Expr
}

// Assign stores the value of an expression into a global variable.
type Assign struct {
	Target symtab.Key
	Value  Expr
}

// ExprStmt evaluates an expression for its value.
type ExprStmt struct {
	Expr Expr
}

// Plot samples a function of one argument from Start to End with
// increment Step.
type Plot struct {
	Fn               symtab.Key
	Start, End, Step Expr
}

func (*FunctionDef) isStmt() {}
func (*Assign) isStmt()      {}
func (*ExprStmt) isStmt()    {}
func (*Plot) isStmt()        {}
