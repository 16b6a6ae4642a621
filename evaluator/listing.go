package evaluator

import (
	"sort"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/funcalc/grammar"
)

// Binding is a global variable and its value.
type Binding struct {
	Name  string
	Value float64
}

// Definition is a user-defined function.
type Definition struct {
	Name   string
	Params []string
	Body   string // in source form
}

// Variable returns the value of a global variable.
func (ev *Evaluator) Variable(name string) (float64, bool) {
	k, ok := ev.ns.Lookup(name)
	if !ok {
		return 0, false
	}
	v, ok := ev.globals[k]
	return v, ok
}

// Variables lists all global variables, sorted by name.
func (ev *Evaluator) Variables() []Binding {
	sorted := treemap.NewWithStringComparator()
	for k, v := range ev.globals {
		sorted.Put(ev.name(k), v)
	}
	bindings := make([]Binding, 0, sorted.Size())
	sorted.Each(func(name, value interface{}) {
		bindings = append(bindings, Binding{Name: name.(string), Value: value.(float64)})
	})
	return bindings
}

// Functions lists all user-defined functions, sorted by name.
func (ev *Evaluator) Functions() []Definition {
	sorted := treemap.NewWithStringComparator()
	for k, def := range ev.functions {
		sorted.Put(ev.name(k), def)
	}
	defs := make([]Definition, 0, sorted.Size())
	sorted.Each(func(name, value interface{}) {
		def := value.(*grammar.FunctionDef)
		params := make([]string, len(def.Params))
		for i, p := range def.Params {
			params[i] = ev.name(p)
		}
		defs = append(defs, Definition{
			Name:   name.(string),
			Params: params,
			Body:   grammar.Format(def.Body, ev.ns, def.Params),
		})
	})
	return defs
}

// Builtins lists the names of all built-in functions, sorted.
func Builtins() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
