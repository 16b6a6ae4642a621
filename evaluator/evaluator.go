package evaluator

import (
	"context"
	"fmt"
	"math"

	"github.com/npillmayer/arithm"
	"github.com/npillmayer/funcalc/canvas"
	"github.com/npillmayer/funcalc/grammar"
	"github.com/npillmayer/funcalc/symtab"
)

// Canvas receives the samples of a plot statement.
type Canvas interface {
	Set(x, y float64)
	Frame() string
}

// Evaluator is a runtime environment for a calculator session.
type Evaluator struct {
	ns         *symtab.Namespace                   // names for diagnostics, grows with the session
	globals    map[symtab.Key]float64              // global variables
	functions  map[symtab.Key]*grammar.FunctionDef // user-defined functions
	builtins   map[symtab.Key]Builtin              // fixed after construction
	frames     frameStack                          // active user-function calls
	maxDepth   int                                 // limit for frames
	maxSamples int                                 // limit of samples per plot
	newCanvas  func() Canvas                       // canvas factory for plots
	ctx        context.Context                     // cancels long-running statements
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithMaxDepth limits the nesting depth of user-function calls.
func WithMaxDepth(depth int) Option {
	return func(ev *Evaluator) {
		if depth > 0 {
			ev.maxDepth = depth
		}
	}
}

// WithMaxSamples limits the number of samples a plot statement may take.
func WithMaxSamples(n int) Option {
	return func(ev *Evaluator) {
		if n > 0 {
			ev.maxSamples = n
		}
	}
}

// WithContext sets a context which interrupts evaluation when done, e.g.
// on a user interrupt. The statement being executed fails with
// ErrInterrupted.
func WithContext(ctx context.Context) Option {
	return func(ev *Evaluator) {
		if ctx != nil {
			ev.ctx = ctx
		}
	}
}

// WithCanvas sets a factory for the canvases plots are drawn onto. The
// default is a braille canvas.
func WithCanvas(create func() Canvas) Option {
	return func(ev *Evaluator) {
		if create != nil {
			ev.newCanvas = create
		}
	}
}

// Default limits
const (
	DefaultMaxDepth   = 1000
	DefaultMaxSamples = 100000
)

// New creates an evaluator with built-in functions and the constants PI
// and E, but no user definitions.
func New(opts ...Option) *Evaluator {
	ev := &Evaluator{
		ns:         symtab.NewNamespace(),
		globals:    make(map[symtab.Key]float64),
		functions:  make(map[symtab.Key]*grammar.FunctionDef),
		builtins:   make(map[symtab.Key]Builtin, len(builtins)),
		frames:     newFrameStack(),
		maxDepth:   DefaultMaxDepth,
		maxSamples: DefaultMaxSamples,
		newCanvas:  func() Canvas { return canvas.New() },
		ctx:        context.Background(),
	}
	for name, fn := range builtins {
		ev.builtins[ev.ns.Intern(name)] = fn
	}
	for name, c := range constants {
		ev.globals[ev.ns.Intern(name)] = c
	}
	for _, opt := range opts {
		opt(ev)
	}
	return ev
}

// Namespace returns the namespace of this session.
func (ev *Evaluator) Namespace() *symtab.Namespace {
	return ev.ns
}

// ResultKind tells what a statement produced.
type ResultKind int

// Kinds of results
const (
	NoValue     ResultKind = iota // definitions, assignments, empty lines
	NumberValue                   // expression statements
	PlotOutput                    // plot statements
)

// Result is the outcome of executing one statement.
type Result struct {
	Kind   ResultKind
	Value  float64       // for NumberValue
	Frame  string        // rendered canvas, for PlotOutput
	Points []arithm.Pair // samples, for PlotOutput
}

// Run scans, parses and executes one input line. A trailing newline is
// tolerated.
func (ev *Evaluator) Run(line string) (Result, error) {
	stmt, err := grammar.ParseLine(line, ev.ns)
	if err != nil {
		return Result{}, err
	}
	if stmt == nil {
		return Result{}, nil
	}
	return ev.Exec(stmt)
}

// RunContext is like Run, but execution is interrupted when ctx is done
// instead of the evaluator's own context.
func (ev *Evaluator) RunContext(ctx context.Context, line string) (Result, error) {
	if ctx == nil {
		return ev.Run(line)
	}
	saved := ev.ctx
	ev.ctx = ctx
	defer func() { ev.ctx = saved }()
	return ev.Run(line)
}

// Exec executes a statement. Statements must have been parsed with this
// evaluator's namespace.
func (ev *Evaluator) Exec(stmt grammar.Stmt) (Result, error) {
	defer ev.frames.clear()
	switch s := stmt.(type) {
	case *grammar.FunctionDef:
		if _, ok := ev.functions[s.Name]; ok {
			tracer().P("fun", ev.name(s.Name)).Infof("redefining function")
		}
		ev.functions[s.Name] = s
		tracer().P("fun", ev.name(s.Name)).Debugf("defined with %d parameters", len(s.Params))
		return Result{}, nil
	case *grammar.Assign:
		v, err := ev.eval(s.Value, nil)
		if err != nil {
			return Result{}, err
		}
		ev.globals[s.Target] = v
		tracer().P("var", ev.name(s.Target)).Debugf("assigned %g", v)
		return Result{}, nil
	case *grammar.ExprStmt:
		v, err := ev.eval(s.Expr, nil)
		if err != nil {
			return Result{}, err
		}
		return Result{Kind: NumberValue, Value: v}, nil
	case *grammar.Plot:
		return ev.plot(s)
	}
	return Result{}, fmt.Errorf("unknown statement type %T", stmt)
}

// Evaluate evaluates an expression at top level, i.e. without arguments.
func (ev *Evaluator) Evaluate(e grammar.Expr) (float64, error) {
	defer ev.frames.clear()
	return ev.eval(e, nil)
}

func (ev *Evaluator) name(k symtab.Key) string {
	return ev.ns.NameOf(k)
}

func (ev *Evaluator) fail(err error) error {
	tracer().Errorf("%v", err)
	return err
}

// interrupted checks for cancellation of the evaluator's context.
func (ev *Evaluator) interrupted() error {
	if err := ev.ctx.Err(); err != nil {
		return ev.fail(fmt.Errorf("%w: %v", ErrInterrupted, err))
	}
	return nil
}

// eval evaluates e with positional arguments locals, which is nil at top
// level.
func (ev *Evaluator) eval(e grammar.Expr, locals []float64) (float64, error) {
	switch e := e.(type) {
	case *grammar.Literal:
		switch v := e.Value.(type) {
		case grammar.Value:
			return float64(v), nil
		case grammar.Arg:
			if int(v) >= len(locals) {
				return 0, ev.fail(ev.insufficientArgs(int(v), len(locals)))
			}
			return locals[v], nil
		case grammar.Var:
			x, ok := ev.globals[symtab.Key(v)]
			if !ok {
				return 0, ev.fail(fmt.Errorf("%w: %s", ErrUndefinedVariable, ev.name(symtab.Key(v))))
			}
			return x, nil
		}
	case *grammar.Group:
		return ev.eval(e.Body, locals)
	case *grammar.Unary:
		x, err := ev.eval(e.Operand, locals)
		if err != nil {
			return 0, err
		}
		if e.Op == grammar.Neg {
			return -x, nil
		}
		return factorial(x), nil
	case *grammar.Binary:
		l, err := ev.eval(e.Left, locals)
		if err != nil {
			return 0, err
		}
		r, err := ev.eval(e.Right, locals)
		if err != nil {
			return 0, err
		}
		switch e.Op {
		case grammar.Add:
			return l + r, nil
		case grammar.Sub:
			return l - r, nil
		case grammar.Mul:
			return l * r, nil
		case grammar.Div:
			return l / r, nil
		case grammar.Pow:
			return math.Pow(l, r), nil
		}
	case *grammar.Call:
		args := make([]float64, len(e.Args))
		for i, a := range e.Args {
			x, err := ev.eval(a, locals)
			if err != nil {
				return 0, err
			}
			args[i] = x
		}
		return ev.call(e.Fn, args)
	}
	return 0, fmt.Errorf("cannot evaluate expression %T", e)
}

// call invokes a user function or, if there is none of this name, a
// built-in.
func (ev *Evaluator) call(fn symtab.Key, args []float64) (float64, error) {
	if def, ok := ev.functions[fn]; ok {
		if err := ev.interrupted(); err != nil {
			return 0, err
		}
		if ev.frames.depth() >= ev.maxDepth {
			return 0, ev.fail(fmt.Errorf("%w: depth %d in %s", ErrRecursionLimit,
				ev.maxDepth, ev.frames.trace(ev.ns)))
		}
		tracer().P("fun", ev.name(fn)).Debugf("call with %v", args)
		ev.frames.push(fn, args)
		defer ev.frames.pop()
		return ev.eval(def.Body, args)
	}
	if b, ok := ev.builtins[fn]; ok {
		if len(args) != 1 {
			return 0, ev.fail(fmt.Errorf("%w: %s needs exactly 1 argument, has %d",
				ErrArgumentCount, ev.name(fn), len(args)))
		}
		return b(args[0]), nil
	}
	return 0, ev.fail(fmt.Errorf("%w: %s", ErrUndefinedFunction, ev.name(fn)))
}

func (ev *Evaluator) insufficientArgs(slot, have int) error {
	if f, ok := ev.frames.current(); ok {
		if def, ok := ev.functions[f.fn]; ok && slot < len(def.Params) {
			return fmt.Errorf("%w: %s needs argument '%s', has %d arguments",
				ErrInsufficientArguments, ev.name(f.fn), ev.name(def.Params[slot]), have)
		}
		return fmt.Errorf("%w: %s needs argument %d, has %d", ErrInsufficientArguments,
			ev.name(f.fn), slot+1, have)
	}
	return fmt.Errorf("%w: argument %d outside of a function", ErrInsufficientArguments, slot+1)
}
