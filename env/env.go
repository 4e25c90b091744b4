/*
File    : gomix-lox/env/env.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package env implements gomix-lox's lexical scope chain, the direct
// descendant of the teacher's scope.Scope. The one structural change from
// the teacher: Variables here maps to *values.Value rather than a plain
// value, because spec.md's closures must observe mutation of a captured
// variable through any alias (see spec.md §8's counter-closure scenario,
// where `i = i + 1` inside a returned function must be visible to every
// other closure sharing that binding). Storing *values.Value means
// AssignExisting can overwrite the pointee in place instead of rebinding
// the map entry, so every Environment that still holds the pointer sees
// the update.
package env

import "github.com/akashmaji946/gomix-lox/values"

// Environment is a single lexical scope: its own bindings plus a link to
// the enclosing scope. A nil Parent marks the global scope.
type Environment struct {
	vars   map[string]*values.Value
	Parent *Environment
}

// New creates an Environment whose enclosing scope is parent, or a global
// scope if parent is nil.
func New(parent *Environment) *Environment {
	return &Environment{vars: make(map[string]*values.Value), Parent: parent}
}

// NewChild creates a fresh scope nested directly inside e. It satisfies
// values.Environment so *Function.Closure and *Instance.Env can build child
// scopes without importing the concrete env type back into values.
func (e *Environment) NewChild() values.Environment {
	return New(e)
}

// Define binds name to v in e itself, shadowing (not overwriting) any
// binding of the same name in an enclosing scope. Re-declaring an existing
// name in the same scope replaces its binding, matching the teacher's
// Scope.Bind.
func (e *Environment) Define(name string, v *values.Value) {
	e.vars[name] = v
}

// Lookup searches e and, failing that, each enclosing scope in turn for
// name, returning the bound pointer and true if found.
func (e *Environment) Lookup(name string) (*values.Value, bool) {
	if v, ok := e.vars[name]; ok {
		return v, true
	}
	if e.Parent != nil {
		return e.Parent.Lookup(name)
	}
	return nil, false
}

// AssignExisting updates the binding for name in the nearest scope (e or an
// enclosing one) where it already exists, without creating a new binding.
// It reports whether such a binding was found. Per the Environment storing
// *values.Value, the existing pointer's pointee is overwritten in place, so
// every other reference to that pointer (a closure's captured variable, for
// instance) observes the new value immediately.
func (e *Environment) AssignExisting(name string, v *values.Value) bool {
	if existing, ok := e.vars[name]; ok {
		*existing = *v
		return true
	}
	if e.Parent != nil {
		return e.Parent.AssignExisting(name, v)
	}
	return false
}

// Remove deletes name's binding from the nearest scope (e or an enclosing
// one) where it exists, reporting whether a binding was found and removed.
// The evaluator uses this to implement assignment of nil: `x = nil` removes
// x's binding (an extension beyond the teacher's Scope, which has no
// equivalent operation).
func (e *Environment) Remove(name string) bool {
	if _, ok := e.vars[name]; ok {
		delete(e.vars, name)
		return true
	}
	if e.Parent != nil {
		return e.Parent.Remove(name)
	}
	return false
}
