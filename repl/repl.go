/*
File    : koi/repl/repl.go

Package repl implements Koi's interactive Read-Eval-Print Loop: each
line (or block, once braces are unbalanced) is parsed and run against a
persistent evaluator, so variables and functions defined at one prompt
are visible at the next.
*/
package repl

import (
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/koi-lang/koi/eval"
	"github.com/koi-lang/koi/koierr"
	"github.com/koi-lang/koi/objects"
	"github.com/koi-lang/koi/parser"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

const banner = `
   _  __     _
  | |/ /___ (_)
  |   // _ \| |
  |   \ (_) | |
  |_|\_\___/|_|
`

const prompt = "koi >>> "

// Repl is one interactive session: readline front end plus a persistent
// evaluator.
type Repl struct {
	in  io.Reader
	out io.Writer
}

// New builds a Repl reading from in and writing to out.
func New(in io.Reader, out io.Writer) *Repl {
	return &Repl{in: in, out: out}
}

func (r *Repl) printBanner() {
	blueColor.Fprintln(r.out, strings.Repeat("-", 60))
	greenColor.Fprintln(r.out, banner)
	blueColor.Fprintln(r.out, strings.Repeat("-", 60))
	cyanColor.Fprintln(r.out, "Koi - a shell-embedding scripting language")
	cyanColor.Fprintln(r.out, "Type Koi code and press enter; 'exit' to quit.")
	blueColor.Fprintln(r.out, strings.Repeat("-", 60))
}

// Run starts the main REPL loop, blocking until 'exit' or EOF.
func (r *Repl) Run() {
	r.printBanner()

	rl, err := readline.NewEx(&readline.Config{
		Prompt: prompt,
		Stdin:  io.NopCloser(r.in),
		Stdout: r.out,
	})
	if err != nil {
		redColor.Fprintf(r.out, "[REPL ERROR] %v\n", err)
		return
	}
	defer rl.Close()

	wd, _ := os.Getwd()
	e := eval.New(r.out, r.in, wd)

	var pending strings.Builder
	depth := 0

	for {
		line, err := rl.Readline()
		if err != nil {
			r.out.Write([]byte("Bye.\n"))
			return
		}

		if depth == 0 {
			trimmed := strings.TrimSpace(line)
			if trimmed == "exit" {
				r.out.Write([]byte("Bye.\n"))
				return
			}
			if trimmed == "" {
				continue
			}
		}

		pending.WriteString(line)
		pending.WriteByte('\n')
		depth += strings.Count(line, "{") - strings.Count(line, "}")
		if depth > 0 {
			rl.SetPrompt("  ... ")
			continue
		}
		rl.SetPrompt(prompt)

		src := pending.String()
		pending.Reset()
		depth = 0
		rl.SaveHistory(strings.TrimRight(src, "\n"))
		r.evalLine(e, src)
	}
}

func (r *Repl) evalLine(e *eval.Evaluator, src string) {
	defer func() {
		if rec := recover(); rec != nil {
			if f, ok := rec.(*koierr.Fatal); ok {
				redColor.Fprintf(r.out, "[ERROR] %s\n", f.Message)
			} else {
				redColor.Fprintf(r.out, "[ERROR] %v\n", rec)
			}
		}
	}()

	p := parser.New(src)
	prog := p.Parse()
	if p.HasErrors() {
		for _, msg := range p.Errors() {
			redColor.Fprintf(r.out, "[PARSE ERROR] %s\n", msg)
		}
		return
	}

	for _, stmt := range prog.Stmts {
		if es, ok := stmt.(*parser.ExprStmt); ok {
			v := e.Eval(es.Expr)
			if v.GetType() != objects.NilType {
				yellowColor.Fprintf(r.out, "%s\n", v.ToObject())
			}
			continue
		}
		e.Exec(stmt)
	}
}
