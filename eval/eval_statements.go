/*
File    : koi/eval/eval_statements.go

Statement execution (spec.md §4.4): Exec returns a non-nil *Escape when
control flow needs to unwind past the caller (break/continue/return),
nil on ordinary completion. Blocks push a child environment and always
restore the caller's environment on the way out, escape or not.
*/
package eval

import (
	"strings"

	"github.com/koi-lang/koi/function"
	"github.com/koi-lang/koi/koierr"
	"github.com/koi-lang/koi/objects"
	"github.com/koi-lang/koi/parser"
	"github.com/koi-lang/koi/scope"
	"github.com/koi-lang/koi/std"
)

// Exec runs one statement in the evaluator's current environment.
func (e *Evaluator) Exec(stmt parser.Stmt) *Escape {
	switch s := stmt.(type) {
	case *parser.ExprStmt:
		e.Eval(s.Expr)
		return nil

	case *parser.CmdStmt:
		capture := e.Collector != nil
		out, _ := e.runCmd(s.Cmd, capture)
		// A non-zero exit is not itself fatal at statement level
		// (spec.md §7): scripts routinely probe `grep`/`test` exit
		// codes via `&&`/`||`.
		if capture {
			e.Collector.WriteString(out)
		}
		return nil

	case *parser.ImportStmt:
		RunFile(e, e.resolveImportPath(s.Path))
		return nil

	case *parser.NamedImportStmt:
		// A named import runs the target file in its own top-level
		// environment, then binds the resulting globals as a Dict under
		// Alias, so `import "x" as x` reads like a namespace.
		child := New(e.Out, strings.NewReader(""), e.ImportRoot)
		RunFile(child, e.resolveImportPath(s.Path))
		std.CallFunc = e.callValue
		e.Env.Def(s.Alias, exportsAsDict(child.Global), false)
		return nil

	case *parser.LetStmt:
		var v objects.Value = &objects.Nil{}
		if s.Init != nil {
			v = e.Eval(s.Init)
		}
		e.Env.Def(s.Name, v, s.IsExported)
		return nil

	case *parser.BlockStmt:
		return e.execBlock(s)

	case *parser.IfStmt:
		if objects.Truthy(e.Eval(s.Cond)) {
			return e.Exec(s.Then)
		}
		if s.Else != nil {
			return e.Exec(s.Else)
		}
		return nil

	case *parser.ForStmt:
		return e.execFor(s)

	case *parser.WhileStmt:
		return e.execWhile(s)

	case *parser.FuncDeclStmt:
		fn := &function.User{
			Name:          s.Name,
			Params:        s.Params,
			Body:          s.Body,
			CapturedEnv:   e.Env,
			HasReturnType: s.HasReturnType,
			ReturnType:    s.ReturnType,
		}
		e.Env.Def(s.Name, fn, false)
		return nil

	case *parser.ContinueStmt:
		return &Escape{Kind: EscapeContinue}

	case *parser.BreakStmt:
		return &Escape{Kind: EscapeBreak}

	case *parser.ReturnStmt:
		var v objects.Value = &objects.Nil{}
		if s.Value != nil {
			v = e.Eval(s.Value)
		}
		return &Escape{Kind: EscapeReturn, Value: v}
	}
	koierr.Raise("unrecognized statement node")
	return nil
}

// exportsAsDict packages a finished module's top-level bindings as a
// Dict, so `import "x" as ns` can read `ns.someFunc`.
func exportsAsDict(global *scope.Environment) *objects.Dict {
	d := objects.NewDict()
	for name, v := range global.Entries() {
		d.Set(name, v)
	}
	return d
}

func (e *Evaluator) execBlock(b *parser.BlockStmt) *Escape {
	saved := e.Env
	e.Env = scope.New(saved)
	defer func() { e.Env = saved }()

	for _, stmt := range b.Stmts {
		if esc := e.Exec(stmt); esc != nil {
			return esc
		}
	}
	return nil
}

func (e *Evaluator) execWhile(s *parser.WhileStmt) *Escape {
	for objects.Truthy(e.Eval(s.Cond)) {
		esc := e.Exec(s.Body)
		if esc == nil {
			continue
		}
		switch esc.Kind {
		case EscapeBreak:
			return nil
		case EscapeContinue:
			continue
		default:
			return esc
		}
	}
	return nil
}

func (e *Evaluator) execFor(s *parser.ForStmt) *Escape {
	iter := e.Eval(s.Iterated)

	runBody := func(lVal, rVal objects.Value) *Escape {
		saved := e.Env
		e.Env = scope.New(saved)
		e.Env.Def(s.LVar, lVal, false)
		if s.HasRVar {
			e.Env.Def(s.RVar, rVal, false)
		}
		esc := e.Exec(s.Body)
		e.Env = saved
		return esc
	}

	switch it := iter.(type) {
	case *objects.Range:
		if s.HasRVar {
			koierr.Raise("for over a range takes a single loop variable, got %s, %s", s.LVar, s.RVar)
		}
		for i := it.Start; i < it.End; i++ {
			esc := runBody(&objects.Num{Value: float64(i)}, nil)
			if esc == nil {
				continue
			}
			switch esc.Kind {
			case EscapeBreak:
				return nil
			case EscapeContinue:
				continue
			default:
				return esc
			}
		}
	case *objects.Vec:
		for i, el := range it.Elements {
			var lVal, rVal objects.Value
			if s.HasRVar {
				lVal, rVal = &objects.Num{Value: float64(i)}, el
			} else {
				lVal = el
			}
			esc := runBody(lVal, rVal)
			if esc == nil {
				continue
			}
			switch esc.Kind {
			case EscapeBreak:
				return nil
			case EscapeContinue:
				continue
			default:
				return esc
			}
		}
	case *objects.Dict:
		for _, k := range it.Keys() {
			v, _ := it.Get(k)
			var lVal, rVal objects.Value
			if s.HasRVar {
				lVal, rVal = &objects.String{Value: k}, v
			} else {
				lVal = &objects.String{Value: k}
			}
			esc := runBody(lVal, rVal)
			if esc == nil {
				continue
			}
			switch esc.Kind {
			case EscapeBreak:
				return nil
			case EscapeContinue:
				continue
			default:
				return esc
			}
		}
	default:
		koierr.Raise("cannot iterate over a value of type %s", iter.GetType())
	}
	return nil
}
