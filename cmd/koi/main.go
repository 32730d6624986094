/*
File    : koi/cmd/koi/main.go

Package main is the Koi CLI entry point: run a source file (default
Koifile), read source from stdin, call a top-level function after
running the script, or fall into the REPL when given no arguments and
no readable Koifile.
*/
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/koi-lang/koi/eval"
	"github.com/koi-lang/koi/koierr"
	"github.com/koi-lang/koi/objects"
	"github.com/koi-lang/koi/parser"
	"github.com/koi-lang/koi/repl"
)

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

const defaultSourceFile = "Koifile"

func main() {
	os.Exit(run(os.Args[1:]))
}

// run implements the CLI surface from spec.md §6: a positional source
// path, --stdin/-s, --fn/-f NAME, and a `--` args passthrough boundary.
func run(argv []string) int {
	var (
		sourcePath string
		fromStdin  bool
		fnName     string
		scriptArgs []string
	)

	i := 0
	for ; i < len(argv); i++ {
		arg := argv[i]
		switch {
		case arg == "--":
			scriptArgs = argv[i+1:]
			i = len(argv)
		case arg == "--stdin" || arg == "-s":
			fromStdin = true
		case arg == "--fn" || arg == "-f":
			if i+1 >= len(argv) {
				redColor.Fprintf(os.Stderr, "[USAGE ERROR] %s requires a function name\n", arg)
				return 1
			}
			i++
			fnName = argv[i]
		case arg == "--help" || arg == "-h":
			printHelp()
			return 0
		case strings.HasPrefix(arg, "-") && arg != "-":
			redColor.Fprintf(os.Stderr, "[USAGE ERROR] unrecognized flag %q\n", arg)
			return 1
		default:
			sourcePath = arg
		}
	}

	var source string
	var importRoot string
	if fromStdin {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			redColor.Fprintf(os.Stderr, "[STDIN ERROR] %v\n", err)
			return 1
		}
		source = string(data)
		importRoot, _ = os.Getwd()
	} else {
		if sourcePath == "" {
			sourcePath = defaultSourceFile
		}
		data, err := os.ReadFile(sourcePath)
		if err != nil {
			if sourcePath == defaultSourceFile && argvHadNoSource(argv) {
				repl.New(os.Stdin, os.Stdout).Run()
				return 0
			}
			redColor.Fprintf(os.Stderr, "[FILE ERROR] could not read %q: %v\n", sourcePath, err)
			return 1
		}
		source = string(data)
		importRoot = dirOf(sourcePath)
	}

	return execute(source, importRoot, fnName, scriptArgs)
}

// argvHadNoSource reports whether the user gave no flags/path at all,
// the one case that drops into the REPL instead of erroring on a
// missing Koifile.
func argvHadNoSource(argv []string) bool {
	return len(argv) == 0
}

func execute(source, importRoot, fnName string, scriptArgs []string) (code int) {
	defer func() {
		if r := recover(); r != nil {
			if f, ok := r.(*koierr.Fatal); ok {
				redColor.Fprintf(os.Stderr, "[RUNTIME ERROR] %s\n", f.Message)
			} else {
				redColor.Fprintf(os.Stderr, "[RUNTIME ERROR] %v\n", r)
			}
			code = 1
		}
	}()

	p := parser.New(source)
	prog := p.Parse()
	if p.HasErrors() {
		for _, msg := range p.Errors() {
			redColor.Fprintf(os.Stderr, "[PARSE ERROR] %s\n", msg)
		}
		return 1
	}

	e := eval.New(os.Stdout, os.Stdin, importRoot)
	e.Env.Def("args", argsVec(scriptArgs), false)
	e.Run(prog)

	if fnName != "" {
		result := e.CallTopLevel(fnName)
		if result.GetType() != objects.NilType {
			yellowColor.Fprintf(os.Stdout, "%s\n", result.ToString())
		}
	}
	return 0
}

func argsVec(args []string) *objects.Vec {
	elems := make([]objects.Value, len(args))
	for i, a := range args {
		elems[i] = &objects.String{Value: a}
	}
	return objects.NewVec(elems)
}

func dirOf(path string) string {
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		return path[:i]
	}
	return "."
}

func printHelp() {
	cyanColor.Println("Koi - a shell-embedding scripting language")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  koi [path]                run a Koi source file (default Koifile)")
	yellowColor.Println("  koi --stdin | -s          read source from stdin")
	yellowColor.Println("  koi --fn NAME | -f NAME   call NAME() after running the source")
	yellowColor.Println("  koi path -- a b c         pass a, b, c to the script as args")
	yellowColor.Println("  koi                       run ./Koifile, or start the REPL if it cannot be read")
	fmt.Fprintln(os.Stdout)
}
