/*
File    : koi/eval/eval_expressions.go

Expression evaluation (spec.md §4.4): literals, arithmetic/comparison,
short-circuit boolean operators, variable get/set, interpolation, calls,
and embedded commands.
*/
package eval

import (
	"math"
	"strings"

	"github.com/koi-lang/koi/function"
	"github.com/koi-lang/koi/koierr"
	"github.com/koi-lang/koi/lexer"
	"github.com/koi-lang/koi/objects"
	"github.com/koi-lang/koi/parser"
	"github.com/koi-lang/koi/std"
)

// Eval evaluates expr in the evaluator's current environment. It also
// implements cmdexec.Interp, letting the command builder resolve word
// pieces and redirect targets.
func (e *Evaluator) Eval(expr parser.Expr) objects.Value {
	switch x := expr.(type) {
	case parser.NilLit:
		return &objects.Nil{}
	case parser.NumLit:
		return &objects.Num{Value: x.Value}
	case parser.BoolLit:
		return &objects.Bool{Value: x.Value}
	case parser.StringLit:
		return &objects.String{Value: x.Value}
	case *parser.VecLit:
		elems := make([]objects.Value, len(x.Elements))
		for i, el := range x.Elements {
			elems[i] = e.Eval(el)
		}
		return objects.NewVec(elems)
	case *parser.DictLit:
		d := objects.NewDict()
		for i, k := range x.Keys {
			d.Set(k, e.Eval(x.Values[i]))
		}
		return d
	case *parser.RangeExpr:
		return e.evalRange(x)
	case *parser.InterpExpr:
		return e.evalInterp(x)
	case *parser.UnaryExpr:
		return e.evalUnary(x)
	case *parser.BinaryExpr:
		return e.evalBinary(x)
	case *parser.GetExpr:
		v, ok := e.Env.Lookup(x.Name)
		if !ok {
			koierr.Raise("undefined variable %q", x.Name)
		}
		return v
	case *parser.SetExpr:
		v := e.Eval(x.Value)
		if !e.Env.Put(x.Name, v) {
			koierr.Raise("assignment to undefined variable %q", x.Name)
		}
		return v
	case *parser.GetFieldExpr:
		return e.getField(e.Eval(x.Base), e.Eval(x.Index))
	case *parser.SetFieldExpr:
		v := e.Eval(x.Value)
		e.setField(e.Eval(x.Base), e.Eval(x.Index), v)
		return v
	case *parser.CallExpr:
		return e.evalCall(x)
	case *parser.CmdExpr:
		out, status := e.runCmd(x.Cmd, true)
		if status != 0 {
			koierr.Raise("command exited with status %d", status)
		}
		return &objects.String{Value: strings.TrimRight(out, "\n")}
	case *parser.LambdaExpr:
		return &function.User{
			Params:        x.Params,
			Body:          x.Body,
			CapturedEnv:   e.Env,
			HasReturnType: x.HasReturnType,
			ReturnType:    x.ReturnType,
		}
	}
	koierr.Raise("unrecognized expression node")
	return nil
}

func (e *Evaluator) evalRange(x *parser.RangeExpr) objects.Value {
	l := requireNum(e.Eval(x.Left), "range bound")
	r := requireNum(e.Eval(x.Right), "range bound")
	end := int64(r)
	if x.Inclusive {
		end++
	}
	return &objects.Range{Start: int64(l), End: end}
}

func (e *Evaluator) evalInterp(x *parser.InterpExpr) objects.Value {
	var b strings.Builder
	for i, s := range x.Strings {
		b.WriteString(s)
		if i < len(x.Exprs) {
			b.WriteString(e.Eval(x.Exprs[i]).ToString())
		}
	}
	return &objects.String{Value: b.String()}
}

func (e *Evaluator) evalUnary(x *parser.UnaryExpr) objects.Value {
	v := e.Eval(x.Operand)
	switch x.Op {
	case lexer.MINUS:
		return &objects.Num{Value: -requireNum(v, "unary -")}
	case lexer.BANG:
		return &objects.Bool{Value: !objects.Truthy(v)}
	}
	koierr.Raise("unknown unary operator %s", x.Op)
	return nil
}

func (e *Evaluator) evalBinary(x *parser.BinaryExpr) objects.Value {
	// Short-circuit operators evaluate the right side lazily.
	switch x.Op {
	case lexer.AND:
		l := e.Eval(x.Left)
		if !objects.Truthy(l) {
			return &objects.Bool{Value: false}
		}
		return &objects.Bool{Value: objects.Truthy(e.Eval(x.Right))}
	case lexer.OR:
		l := e.Eval(x.Left)
		if objects.Truthy(l) {
			return &objects.Bool{Value: true}
		}
		return &objects.Bool{Value: objects.Truthy(e.Eval(x.Right))}
	}

	l := e.Eval(x.Left)
	r := e.Eval(x.Right)

	switch x.Op {
	case lexer.EQ:
		return &objects.Bool{Value: valuesEqual(l, r)}
	case lexer.NE:
		return &objects.Bool{Value: !valuesEqual(l, r)}
	}

	switch x.Op {
	case lexer.PLUS:
		return evalPlus(l, r)
	case lexer.MINUS:
		return &objects.Num{Value: requireNum(l, "-") - requireNum(r, "-")}
	case lexer.STAR:
		return &objects.Num{Value: requireNum(l, "*") * requireNum(r, "*")}
	case lexer.SLASH:
		rv := requireNum(r, "/")
		if rv == 0 {
			koierr.Raise("division by zero")
		}
		return &objects.Num{Value: requireNum(l, "/") / rv}
	case lexer.PERCENT:
		rv := requireNum(r, "%")
		if rv == 0 {
			koierr.Raise("modulo by zero")
		}
		lv := requireNum(l, "%")
		m := lv - rv*float64(int64(lv/rv))
		return &objects.Num{Value: m}
	case lexer.CARET:
		return &objects.Num{Value: powFloat(requireNum(l, "^"), requireNum(r, "^"))}
	case lexer.LT:
		return &objects.Bool{Value: requireNum(l, "<") < requireNum(r, "<")}
	case lexer.LE:
		return &objects.Bool{Value: requireNum(l, "<=") <= requireNum(r, "<=")}
	case lexer.GT:
		return &objects.Bool{Value: requireNum(l, ">") > requireNum(r, ">")}
	case lexer.GE:
		return &objects.Bool{Value: requireNum(l, ">=") >= requireNum(r, ">=")}
	}
	koierr.Raise("unknown binary operator %s", x.Op)
	return nil
}

// evalPlus implements spec.md §4.4's overloaded `+`: numeric addition,
// string/Vec concatenation (producing a new value), Dict merge.
func evalPlus(l, r objects.Value) objects.Value {
	switch lv := l.(type) {
	case *objects.Num:
		rv, ok := r.(*objects.Num)
		if !ok {
			koierr.Raise("cannot add %s to num", r.GetType())
		}
		return &objects.Num{Value: lv.Value + rv.Value}
	case *objects.String:
		return &objects.String{Value: lv.Value + r.ToString()}
	case *objects.Vec:
		rv, ok := r.(*objects.Vec)
		if !ok {
			koierr.Raise("cannot add %s to vec", r.GetType())
		}
		combined := make([]objects.Value, 0, len(lv.Elements)+len(rv.Elements))
		combined = append(combined, lv.Elements...)
		combined = append(combined, rv.Elements...)
		return objects.NewVec(combined)
	case *objects.Dict:
		rv, ok := r.(*objects.Dict)
		if !ok {
			koierr.Raise("cannot add %s to dict", r.GetType())
		}
		return lv.Merge(rv)
	}
	koierr.Raise("operator + not defined for %s", l.GetType())
	return nil
}

func valuesEqual(a, b objects.Value) bool {
	if af, ok := a.(*function.Native); ok {
		return function.Equal(af, b)
	}
	if af, ok := a.(*function.User); ok {
		return function.Equal(af, b)
	}
	return objects.Equal(a, b)
}

func requireNum(v objects.Value, ctx string) float64 {
	n, ok := v.(*objects.Num)
	if !ok {
		koierr.Raise("%s: expected a num, got %s", ctx, v.GetType())
	}
	return n.Value
}

func powFloat(base, exp float64) float64 {
	return math.Pow(base, exp)
}

func (e *Evaluator) evalCall(x *parser.CallExpr) objects.Value {
	var fn objects.Value

	if field, ok := x.Callee.(*parser.GetFieldExpr); ok {
		base := e.Eval(field.Base)
		idx := e.Eval(field.Index)
		if name, ok := idx.(*objects.String); ok {
			if m, found := std.LookupMethod(base, name.Value); found {
				fn = m.WithReceiver(base)
			}
		}
		if fn == nil {
			fn = e.getField(base, idx)
		}
	} else {
		fn = e.Eval(x.Callee)
	}

	args := make([]objects.Value, len(x.Args))
	for i, a := range x.Args {
		args[i] = e.Eval(a)
	}
	return e.callValue(fn, args)
}
