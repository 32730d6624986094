/*
File    : koi/scope/environment.go

Package scope implements Koi's lexical environment: a parent-linked
chain of bindings. Unlike the teacher's Scope (which snapshot-copies
itself for every closure capture), Environment is shared directly: a
closure holds a live pointer to the environment that was current at its
definition site, so mutations visible through one alias are visible
through every other alias of the same environment, matching spec.md
§4.3's closure/aliasing model.
*/
package scope

import "github.com/koi-lang/koi/objects"

// Var is one binding: its current value, and whether it was declared
// exported (`exp let NAME = ...`), making it part of every child
// process's environment (see os_env below).
type Var struct {
	Value      objects.Value
	IsExported bool
}

// Environment is one lexical scope, with an optional parent forming
// the scope chain. nil Parent marks the root (global) environment.
type Environment struct {
	vars   map[string]*Var
	Parent *Environment
}

// New creates an environment with the given parent (nil for a root
// environment).
func New(parent *Environment) *Environment {
	return &Environment{vars: make(map[string]*Var), Parent: parent}
}

// Lookup walks from e up through Parent looking for name.
func (e *Environment) Lookup(name string) (objects.Value, bool) {
	for env := e; env != nil; env = env.Parent {
		if v, ok := env.vars[name]; ok {
			return v.Value, true
		}
	}
	return nil, false
}

// Def inserts name into the CURRENT environment (e), shadowing any
// same-named binding in a parent. Used by `let` and function parameter
// binding.
func (e *Environment) Def(name string, value objects.Value, isExported bool) {
	e.vars[name] = &Var{Value: value, IsExported: isExported}
}

// Put walks the scope chain to find the nearest enclosing binding of
// name and mutates it in place. It reports false (and does nothing) if
// name is not bound anywhere in the chain — the caller (the evaluator)
// treats that as the fatal "undefined variable in a put" error from
// spec.md §7.
func (e *Environment) Put(name string, value objects.Value) bool {
	for env := e; env != nil; env = env.Parent {
		if v, ok := env.vars[name]; ok {
			v.Value = value
			return true
		}
	}
	return false
}

// Entries returns a snapshot of e's own bindings (not its ancestors'),
// keyed by name. Used to package a finished module's globals for a
// named import.
func (e *Environment) Entries() map[string]objects.Value {
	out := make(map[string]objects.Value, len(e.vars))
	for name, v := range e.vars {
		out[name] = v.Value
	}
	return out
}

// OsEnv walks from e to the root collecting every binding whose
// IsExported flag is true, returning the ordered (name, stringified
// value) pairs to pass to a child process's environment (spec.md §4.3).
// Later (closer-to-e) scopes override earlier (outer) ones by name,
// implementing shadowing.
func (e *Environment) OsEnv() [][2]string {
	seen := make(map[string]bool)
	var out [][2]string
	for env := e; env != nil; env = env.Parent {
		for name, v := range env.vars {
			if !v.IsExported || seen[name] {
				continue
			}
			seen[name] = true
			out = append(out, [2]string{name, v.Value.ToString()})
		}
	}
	return out
}
