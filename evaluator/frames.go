package evaluator

import (
	"strings"

	"github.com/emirpasic/gods/stacks/linkedliststack"
	"github.com/npillmayer/funcalc/symtab"
)

// callFrame is the activation of a user function.
type callFrame struct {
	fn   symtab.Key
	args []float64 // positional argument values
}

// frameStack is the stack of active user-function calls. Its size is the
// current recursion depth.
type frameStack struct {
	stack *linkedliststack.Stack
}

func newFrameStack() frameStack {
	return frameStack{stack: linkedliststack.New()}
}

func (fs frameStack) push(fn symtab.Key, args []float64) *callFrame {
	f := &callFrame{fn: fn, args: args}
	fs.stack.Push(f)
	return f
}

func (fs frameStack) pop() *callFrame {
	f, ok := fs.stack.Pop()
	if !ok {
		panic("attempt to pop from empty call stack")
	}
	return f.(*callFrame)
}

// current gets the innermost active call, if any.
func (fs frameStack) current() (*callFrame, bool) {
	f, ok := fs.stack.Peek()
	if !ok {
		return nil, false
	}
	return f.(*callFrame), true
}

func (fs frameStack) depth() int {
	return fs.stack.Size()
}

func (fs frameStack) clear() {
	fs.stack.Clear()
}

// trace lists the active calls, innermost first, for diagnostics.
func (fs frameStack) trace(ns *symtab.Namespace) string {
	var names []string
	it := fs.stack.Iterator()
	for it.Next() && len(names) < 5 {
		names = append(names, ns.NameOf(it.Value().(*callFrame).fn))
	}
	if fs.depth() > len(names) {
		names = append(names, "…")
	}
	return strings.Join(names, " ← ")
}
