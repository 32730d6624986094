/*
File    : koi/std/builtins.go

Free functions available at the top of every Koi program: the core set
from spec.md §6 (print/input/exit/glob) plus the supplemented debug and
serialization helpers from SPEC_FULL.md (toYaml/fromYaml via
gopkg.in/yaml.v3, typeof/addr/isSameRef, the assert family, sleep and
humanDuration via github.com/docker/go-units), grounded on the teacher's
std/common.go Builtin{Name, Callback} registration pattern.
*/
package std

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	units "github.com/docker/go-units"
	"gopkg.in/yaml.v3"

	"github.com/koi-lang/koi/function"
	"github.com/koi-lang/koi/koierr"
	"github.com/koi-lang/koi/objects"
)

// NewBuiltins builds the table of top-level free functions, writing
// print() output to out and reading input() lines from in.
func NewBuiltins(out io.Writer, in *bufio.Reader) map[string]*function.Native {
	table := map[string]*function.Native{
		"print": freeFn("print", -1, func(args []objects.Value) objects.Value {
			parts := make([]string, len(args))
			for i, a := range args {
				parts[i] = a.ToString()
			}
			fmt.Fprintln(out, strings.Join(parts, " "))
			return &objects.Nil{}
		}),
		"input": freeFn("input", 0, func(args []objects.Value) objects.Value {
			line, err := in.ReadString('\n')
			if err != nil && line == "" {
				return &objects.Nil{}
			}
			return &objects.String{Value: strings.TrimRight(line, "\r\n")}
		}),
		"exit": freeFn("exit", 1, func(args []objects.Value) objects.Value {
			n, ok := args[0].(*objects.Num)
			if !ok {
				koierr.Raise("exit(): expected a numeric exit code")
			}
			os.Exit(int(n.Value))
			return &objects.Nil{}
		}),
		"glob": freeFn("glob", 1, func(args []objects.Value) objects.Value {
			pattern, ok := args[0].(*objects.String)
			if !ok {
				koierr.Raise("glob(): expected a string pattern")
			}
			matches, err := filepath.Glob(pattern.Value)
			if err != nil {
				koierr.Raise("glob(): %v", err)
			}
			elems := make([]objects.Value, len(matches))
			for i, m := range matches {
				elems[i] = &objects.String{Value: m}
			}
			return objects.NewVec(elems)
		}),
		"toYaml": freeFn("toYaml", 1, func(args []objects.Value) objects.Value {
			out, err := yaml.Marshal(toGeneric(args[0]))
			if err != nil {
				koierr.Raise("toYaml: %v", err)
			}
			return &objects.String{Value: string(out)}
		}),
		"fromYaml": freeFn("fromYaml", 1, func(args []objects.Value) objects.Value {
			s, ok := args[0].(*objects.String)
			if !ok {
				koierr.Raise("fromYaml(): expected a string")
			}
			var generic interface{}
			if err := yaml.Unmarshal([]byte(s.Value), &generic); err != nil {
				koierr.Raise("fromYaml: %v", err)
			}
			return fromGeneric(generic)
		}),
		"typeof": freeFn("typeof", 1, func(args []objects.Value) objects.Value {
			return &objects.String{Value: string(args[0].GetType())}
		}),
		"addr": freeFn("addr", 1, func(args []objects.Value) objects.Value {
			return &objects.String{Value: refAddr(args[0])}
		}),
		"isSameRef": freeFn("isSameRef", 2, func(args []objects.Value) objects.Value {
			a, b := refAddr(args[0]), refAddr(args[1])
			return &objects.Bool{Value: a != "" && a == b}
		}),
		"assert": freeFn("assert", 1, func(args []objects.Value) objects.Value {
			if !objects.Truthy(args[0]) {
				koierr.Raise("assertion failed")
			}
			return &objects.Nil{}
		}),
		"assertTrue": freeFn("assertTrue", 1, func(args []objects.Value) objects.Value {
			if !objects.Truthy(args[0]) {
				koierr.Raise("assertTrue failed: %s", args[0].ToObject())
			}
			return &objects.Nil{}
		}),
		"assertFalse": freeFn("assertFalse", 1, func(args []objects.Value) objects.Value {
			if objects.Truthy(args[0]) {
				koierr.Raise("assertFalse failed: %s", args[0].ToObject())
			}
			return &objects.Nil{}
		}),
		"assertEqual": freeFn("assertEqual", 2, func(args []objects.Value) objects.Value {
			if !objects.Equal(args[0], args[1]) {
				koierr.Raise("assertEqual failed: %s != %s", args[0].ToObject(), args[1].ToObject())
			}
			return &objects.Nil{}
		}),
		"sleep": freeFn("sleep", 1, func(args []objects.Value) objects.Value {
			n, ok := args[0].(*objects.Num)
			if !ok {
				koierr.Raise("sleep(): expected a number of seconds")
			}
			time.Sleep(time.Duration(n.Value * float64(time.Second)))
			return &objects.Nil{}
		}),
		"humanDuration": freeFn("humanDuration", 1, func(args []objects.Value) objects.Value {
			n, ok := args[0].(*objects.Num)
			if !ok {
				koierr.Raise("humanDuration(): expected a number of seconds")
			}
			d := time.Duration(n.Value * float64(time.Second))
			return &objects.String{Value: units.HumanDuration(d)}
		}),
	}
	return table
}

func freeFn(name string, paramCount int, fn function.NativeFn) *function.Native {
	return &function.Native{Name: name, ParamCount: paramCount, Fn: fn}
}

// refAddr returns a stable identity string for reference-semantics
// values (Vec, Dict), and "" for value types — the supplemented
// isSameRef()/addr() helpers use this to expose aliasing, which
// spec.md §8's Vec/Dict aliasing invariant otherwise has no way for
// Koi code itself to observe directly.
func refAddr(v objects.Value) string {
	switch vv := v.(type) {
	case *objects.Vec:
		return fmt.Sprintf("%p", vv)
	case *objects.Dict:
		return fmt.Sprintf("%p", vv)
	default:
		return ""
	}
}
