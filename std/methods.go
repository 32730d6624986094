/*
File    : koi/std/methods.go

Package std implements Koi's builtin free functions and the method
table dispatched by field access on a receiver value (spec.md §6). It
cannot import eval (eval imports std to resolve methods), so calling a
Koi-level function value from inside a builtin (map/filter/forEach) goes
through the CallFunc hook the eval package installs at startup — the
same inversion-of-control the teacher's std package uses to call back
into its evaluator's Runtime callback.
*/
package std

import (
	"github.com/koi-lang/koi/function"
	"github.com/koi-lang/koi/koierr"
	"github.com/koi-lang/koi/objects"
)

// CallFunc invokes a Koi function value with args and returns its
// result. eval.New wires this to its own call-expression evaluator
// before any Koi code runs.
var CallFunc func(fn objects.Value, args []objects.Value) objects.Value

func call(fn objects.Value, args []objects.Value) objects.Value {
	if CallFunc == nil {
		koierr.Raise("no evaluator installed to invoke function value")
	}
	return CallFunc(fn, args)
}

// method wraps a raw table entry as an unbound Native the caller binds
// to its receiver with WithReceiver.
func method(name string, paramCount int, fn function.NativeFn) *function.Native {
	return &function.Native{Name: name, ParamCount: paramCount, Fn: fn}
}

// LookupMethod resolves `recv.name` to an unbound Native per spec.md
// §4.4's field-access fallback rule: "any" methods first, then the
// type-specific table for recv's tag.
func LookupMethod(recv objects.Value, name string) (*function.Native, bool) {
	if m, ok := anyMethods[name]; ok {
		return m, true
	}
	switch recv.(type) {
	case *objects.String:
		m, ok := stringMethods[name]
		return m, ok
	case *objects.Vec:
		m, ok := vecMethods[name]
		return m, ok
	case *objects.Dict:
		m, ok := dictMethods[name]
		return m, ok
	}
	return nil, false
}

var anyMethods = map[string]*function.Native{
	"string": method("string", 0, func(args []objects.Value) objects.Value {
		return &objects.String{Value: args[0].ToString()}
	}),
	"type": method("type", 0, func(args []objects.Value) objects.Value {
		return &objects.String{Value: string(args[0].GetType())}
	}),
	"toJson": method("toJson", 0, func(args []objects.Value) objects.Value {
		return &objects.String{Value: ToJSON(args[0])}
	}),
}
