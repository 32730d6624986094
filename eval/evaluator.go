/*
File    : koi/eval/evaluator.go

Package eval is Koi's tree-walking interpreter: statement/expression
evaluation, closures, escapes, and the bridge into cmdexec for command
statements and embedded commands. Grounded on the teacher's
eval/evaluator.go Runtime-callback shape, generalized from GoMix's
object/scope model to Koi's Value/Environment model.
*/
package eval

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/koi-lang/koi/cmdexec"
	"github.com/koi-lang/koi/function"
	"github.com/koi-lang/koi/koierr"
	"github.com/koi-lang/koi/objects"
	"github.com/koi-lang/koi/parser"
	"github.com/koi-lang/koi/scope"
	"github.com/koi-lang/koi/std"
)

// Evaluator holds one interpreter run's mutable state: the active
// environment (swapped on block/function entry and restored on exit),
// the import root used to resolve relative import paths, and the I/O
// streams builtins write to / read from.
type Evaluator struct {
	Global     *scope.Environment
	Env        *scope.Environment
	ImportRoot string
	Out        io.Writer
	In         *bufio.Reader

	// Collector, when non-nil, makes CmdStmt run commands in capture
	// mode and append their output here instead of inheriting stdio.
	Collector *strings.Builder
}

// New builds an Evaluator rooted at importRoot (the directory used to
// resolve relative `import` paths), wired to out/in for print/input.
func New(out io.Writer, in io.Reader, importRoot string) *Evaluator {
	global := scope.New(nil)
	e := &Evaluator{Global: global, Env: global, ImportRoot: importRoot, Out: out, In: bufio.NewReader(in)}

	for name, fn := range std.NewBuiltins(out, e.In) {
		global.Def(name, fn, false)
	}
	std.CallFunc = e.callValue
	return e
}

// Run executes every top-level statement. An escape reaching here is
// fatal (spec.md §4.4).
func (e *Evaluator) Run(prog *parser.Prog) {
	for _, stmt := range prog.Stmts {
		if esc := e.Exec(stmt); esc != nil {
			koierr.Raise("%s escaped to top level", esc.Kind)
		}
	}
}

// CallTopLevel invokes a zero-argument top-level function by name, for
// the CLI's `--fn NAME` flag.
func (e *Evaluator) CallTopLevel(name string) objects.Value {
	v, ok := e.Env.Lookup(name)
	if !ok {
		koierr.Raise("no top-level function named %q", name)
	}
	return e.callValue(v, nil)
}

// callValue is shared by CallExpr evaluation and std's CallFunc hook
// (map/filter/forEach invoking a Koi function value).
func (e *Evaluator) callValue(fn objects.Value, args []objects.Value) objects.Value {
	switch f := fn.(type) {
	case *function.Native:
		callArgs := args
		expected := f.ParamCount
		if f.Receiver != nil {
			callArgs = append([]objects.Value{f.Receiver}, args...)
			if expected >= 0 {
				expected++
			}
		}
		if expected >= 0 && len(callArgs) != expected {
			koierr.Raise("%s: expected %d argument(s), got %d", f.Name, expected, len(callArgs))
		}
		return f.Fn(callArgs)

	case *function.User:
		callArgs := args
		if f.Receiver != nil {
			callArgs = append([]objects.Value{f.Receiver}, args...)
		}
		if len(callArgs) != len(f.Params) {
			koierr.Raise("%s: expected %d argument(s), got %d", displayName(f.Name), len(f.Params), len(callArgs))
		}
		parent := f.CapturedEnv
		if parent == nil {
			parent = e.Global
		}
		callEnv := scope.New(parent)
		for i, p := range f.Params {
			callEnv.Def(p.Name, callArgs[i], false)
		}

		saved := e.Env
		e.Env = callEnv
		esc := e.Exec(f.Body)
		e.Env = saved

		if esc == nil {
			return &objects.Nil{}
		}
		if esc.Kind != EscapeReturn {
			koierr.Raise("%s escaped out of a function call", esc.Kind)
		}
		return esc.Value

	default:
		koierr.Raise("attempt to call a non-function value of type %s", fn.GetType())
		return nil
	}
}

func displayName(name string) string {
	if name == "" {
		return "lambda"
	}
	return name
}

// runCmd executes a Cmd AST node, either inheriting stdio or (when
// capture is true) returning its collected stdout.
func (e *Evaluator) runCmd(cmd parser.Cmd, capture bool) (string, int) {
	osEnv := e.Env.OsEnv()
	if capture {
		return cmdexec.RunCapture(cmd, e, osEnv)
	}
	status := cmdexec.RunInherit(cmd, e, osEnv)
	return "", status
}

// resolveImportPath appends .koi if missing and resolves relative to
// the current import root (spec.md §4.4).
func (e *Evaluator) resolveImportPath(path string) string {
	if filepath.Ext(path) == "" {
		path += ".koi"
	}
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(e.ImportRoot, path)
}

// RunFile parses and runs the file at path as a fresh top-level
// program, for use both by import and by the CLI entry point.
func RunFile(e *Evaluator, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		koierr.Raise("reading %s: %v", path, err)
	}
	p := parser.New(string(data))
	prog := p.Parse()
	if p.HasErrors() {
		koierr.Raise("parse error in %s: %s", path, strings.Join(p.Errors(), "; "))
	}
	e.Run(prog)
}
