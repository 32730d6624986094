/*
File    : koi/function/function.go

Package function defines Koi's Func value: a tagged variant with a
User case (closures defined in Koi source) and a Native case (builtin
free functions and receiver-bound builtin methods). Both satisfy
objects.Value so a Func can be stored in any binding, Vec, or Dict
exactly like any other value.
*/
package function

import (
	"fmt"
	"strings"

	"github.com/koi-lang/koi/objects"
	"github.com/koi-lang/koi/parser"
	"github.com/koi-lang/koi/scope"
)

// User is a closure defined by Koi source: `fn name(...) {...}` or a
// `fn(...) {...}` lambda.
type User struct {
	Name          string // "" for lambdas
	Params        []parser.Param
	Body          parser.Stmt
	CapturedEnv   *scope.Environment // scope the function was defined in; a nil value makes calls use the global scope
	HasReturnType bool
	ReturnType    string
	Receiver      objects.Value // non-nil when resolved as a bound method
}

func (f *User) GetType() objects.ValueType { return objects.FuncType }
func (f *User) ToString() string {
	if f.Name == "" {
		return "func(lambda)"
	}
	return fmt.Sprintf("func(%s)", f.Name)
}
func (f *User) ToObject() string {
	names := make([]string, len(f.Params))
	for i, p := range f.Params {
		names[i] = p.Name
	}
	return fmt.Sprintf("<func %s(%s)>", f.Name, strings.Join(names, ", "))
}

// WithReceiver returns a copy of f bound to receiver; calling the copy
// passes the receiver as its first argument.
func (f *User) WithReceiver(receiver objects.Value) *User {
	cp := *f
	cp.Receiver = receiver
	return &cp
}

// NativeFn is the signature every builtin free function and method
// implements. args never includes a receiver for free functions; for
// resolved methods the receiver is prepended by the evaluator before
// calling (see eval's call-expression handling).
type NativeFn func(args []objects.Value) objects.Value

// Native is a builtin function or a receiver-bound builtin method.
type Native struct {
	Name     string
	ParamCount int  // -1 means variadic
	Fn       NativeFn
	Receiver objects.Value // non-nil when this is a bound method value
}

func (n *Native) GetType() objects.ValueType { return objects.FuncType }
func (n *Native) ToString() string           { return fmt.Sprintf("func(%s)", n.Name) }
func (n *Native) ToObject() string           { return fmt.Sprintf("<native func %s>", n.Name) }

// WithReceiver returns a copy of n bound to receiver.
func (n *Native) WithReceiver(receiver objects.Value) *Native {
	cp := *n
	cp.Receiver = receiver
	return &cp
}

// Equal implements spec.md §4.4's by-name-identity Func equality.
func Equal(a, b objects.Value) bool {
	an, aok := a.(*Native)
	bn, bok := b.(*Native)
	if aok && bok {
		return an.Name == bn.Name
	}
	au, auok := a.(*User)
	bu, buok := b.(*User)
	if auok && buok {
		return au.Name != "" && au.Name == bu.Name
	}
	return false
}
