/*
File    : koi/cmdexec/build.go

Build turns a Cmd AST into a process tree (spec.md §4.5): atom
expansion (word pieces, `~` substitution, Vec cross-product), pipe
wiring, conditional stream-cloning, and redirect file opening.
Environment injection happens once per Std node at build time, from the
os_env() snapshot the evaluator hands in.
*/
package cmdexec

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/koi-lang/koi/koierr"
	"github.com/koi-lang/koi/objects"
	"github.com/koi-lang/koi/parser"
)

var errEmptyCommand = errors.New("empty command")

// Interp is the evaluator hook the command builder uses to resolve
// embedded expressions (word pieces, redirect targets). Kept as a
// narrow interface so this package never imports eval.
type Interp interface {
	Eval(parser.Expr) objects.Value
}

// Build recursively constructs a process tree from cmd, threading the
// three stdio streams down through pipes/conditionals/redirects.
func Build(cmd parser.Cmd, interp Interp, osEnv [][2]string, stdin, stdout, stderr Stream) Node {
	switch c := cmd.(type) {
	case *parser.Atom:
		argv := expandAtom(c, interp)
		if len(argv) == 0 {
			koierr.Raise("empty command")
		}
		return &Std{Argv: argv, Env: buildEnv(osEnv), Stdin: stdin, Stdout: stdout, Stderr: stderr}

	case *parser.CmdOpNode:
		switch c.Op {
		case parser.OpOutPipe, parser.OpErrPipe, parser.OpAllPipe:
			return buildPipe(c, interp, osEnv, stdin, stdout, stderr)
		case parser.OpAnd, parser.OpOr, parser.OpSeq:
			return buildCond(c, interp, osEnv, stdin, stdout, stderr)
		default:
			return buildRedirect(c, interp, osEnv, stdin, stdout, stderr)
		}
	}
	koierr.Raise("unrecognized command node")
	return nil
}

func buildPipe(c *parser.CmdOpNode, interp Interp, osEnv [][2]string, stdin, stdout, stderr Stream) Node {
	r, w, err := os.Pipe()
	if err != nil {
		koierr.Raise("pipe: %v", err)
	}
	lStdout, lStderr := stdout, stderr
	switch c.Op {
	case parser.OpOutPipe:
		lStdout = pipeStream(w)
	case parser.OpErrPipe:
		lStderr = pipeStream(w)
		lStdout = Null()
	case parser.OpAllPipe:
		w2, err := dupFile(w)
		if err != nil {
			koierr.Raise("pipe dup: %v", err)
		}
		lStdout = pipeStream(w)
		lStderr = pipeStream(w2)
	}
	left := Build(c.Left, interp, osEnv, stdin, lStdout, lStderr)
	right := Build(c.Right, interp, osEnv, pipeStream(r), stdout, stderr)
	return &Pipe{Left: left, Right: right}
}

func buildCond(c *parser.CmdOpNode, interp Interp, osEnv [][2]string, stdin, stdout, stderr Stream) Node {
	lStdin, err := stdin.clone()
	if err != nil {
		koierr.Raise("%v", err)
	}
	lStdout, err := stdout.clone()
	if err != nil {
		koierr.Raise("%v", err)
	}
	lStderr, err := stderr.clone()
	if err != nil {
		koierr.Raise("%v", err)
	}
	rStdin, err := stdin.clone()
	if err != nil {
		koierr.Raise("%v", err)
	}
	rStdout, err := stdout.clone()
	if err != nil {
		koierr.Raise("%v", err)
	}
	rStderr, err := stderr.clone()
	if err != nil {
		koierr.Raise("%v", err)
	}
	left := Build(c.Left, interp, osEnv, lStdin, lStdout, lStderr)
	right := Build(c.Right, interp, osEnv, rStdin, rStdout, rStderr)
	return &Cond{Left: left, Right: right, Op: c.Op}
}

func buildRedirect(c *parser.CmdOpNode, interp Interp, osEnv [][2]string, stdin, stdout, stderr Stream) Node {
	path := resolveRedirectPath(c.Right, interp)
	// Replaced slots never reach a child: close any pipe end in them so its reader sees EOF.
	closePipes := func(ss ...Stream) {
		for _, s := range ss {
			if s.kind == kindPipe {
				s.file.Close()
			}
		}
	}
	switch c.Op {
	case parser.OpOutWrite:
		closePipes(stdout)
		return Build(c.Left, interp, osEnv, stdin, fileStream(openWrite(path)), stderr)
	case parser.OpOutAppend:
		closePipes(stdout)
		return Build(c.Left, interp, osEnv, stdin, fileStream(openAppend(path)), stderr)
	case parser.OpErrWrite:
		closePipes(stderr)
		return Build(c.Left, interp, osEnv, stdin, stdout, fileStream(openWrite(path)))
	case parser.OpErrAppend:
		closePipes(stderr)
		return Build(c.Left, interp, osEnv, stdin, stdout, fileStream(openAppend(path)))
	case parser.OpAllWrite:
		closePipes(stdout, stderr)
		f := openWrite(path)
		f2, err := dupFile(f)
		if err != nil {
			koierr.Raise("redirect dup: %v", err)
		}
		return Build(c.Left, interp, osEnv, stdin, fileStream(f), fileStream(f2))
	case parser.OpAllAppend:
		closePipes(stdout, stderr)
		f := openAppend(path)
		f2, err := dupFile(f)
		if err != nil {
			koierr.Raise("redirect dup: %v", err)
		}
		return Build(c.Left, interp, osEnv, stdin, fileStream(f), fileStream(f2))
	case parser.OpRead:
		closePipes(stdin)
		return Build(c.Left, interp, osEnv, fileStream(openRead(path)), stdout, stderr)
	}
	koierr.Raise("unknown redirect operator")
	return nil
}

func resolveRedirectPath(target parser.Cmd, interp Interp) string {
	atom, ok := target.(*parser.Atom)
	if !ok || len(atom.Segments) != 1 {
		koierr.Raise("redirect target must be a single word")
	}
	words := expandWord(atom.Segments[0], interp)
	if len(words) != 1 {
		koierr.Raise("redirect target must expand to exactly one path, got %d", len(words))
	}
	return words[0]
}

func raiseRedirectErr(path string, err error) {
	koierr.Raise("redirect: %s: %v", path, err)
}

// expandAtom expands every word of atom in order into the final argv.
func expandAtom(atom *parser.Atom, interp Interp) []string {
	var argv []string
	for _, w := range atom.Segments {
		argv = append(argv, expandWord(w, interp)...)
	}
	return argv
}

// expandWord implements spec.md §4.5's cross-product expansion: each
// piece contributes one alternative (scalar) or many (Vec); the word's
// final strings are the cross-product of its pieces' alternatives,
// combined starting from the last piece.
func expandWord(w parser.Word, interp Interp) []string {
	altLists := make([][]string, len(w.Pieces))
	for i, piece := range w.Pieces {
		v := interp.Eval(piece)
		if vec, ok := v.(*objects.Vec); ok {
			alts := make([]string, len(vec.Elements))
			for j, e := range vec.Elements {
				alts[j] = stringifyPiece(e)
			}
			altLists[i] = alts
		} else {
			altLists[i] = []string{stringifyPiece(v)}
		}
	}

	combos := []string{""}
	for i := len(altLists) - 1; i >= 0; i-- {
		var next []string
		for _, alt := range altLists[i] {
			for _, c := range combos {
				next = append(next, alt+c)
			}
		}
		combos = next
	}
	return combos
}

func stringifyPiece(v objects.Value) string {
	s, ok := v.(*objects.String)
	if !ok {
		return v.ToString()
	}
	if strings.Contains(s.Value, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			return strings.ReplaceAll(s.Value, "~", home)
		}
	}
	return s.Value
}

// buildEnv overlays osEnv (the Koi scope's exported bindings) onto the
// Koi process's own environment.
func buildEnv(osEnv [][2]string) []string {
	override := make(map[string]string, len(osEnv))
	for _, pair := range osEnv {
		override[pair[0]] = pair[1]
	}
	base := os.Environ()
	seen := make(map[string]bool, len(override))
	out := make([]string, 0, len(base)+len(osEnv))
	for _, kv := range base {
		eq := strings.IndexByte(kv, '=')
		if eq < 0 {
			out = append(out, kv)
			continue
		}
		name := kv[:eq]
		if v, ok := override[name]; ok {
			out = append(out, name+"="+v)
			seen[name] = true
		} else {
			out = append(out, kv)
		}
	}
	for _, pair := range osEnv {
		if !seen[pair[0]] {
			out = append(out, pair[0]+"="+pair[1])
		}
	}
	return out
}

// RunInherit runs cmd in pipe mode: stdio inherited from the Koi
// process. Returns the tree's final exit status.
func RunInherit(cmd parser.Cmd, interp Interp, osEnv [][2]string) int {
	node := Build(cmd, interp, osEnv, Inherit(), Inherit(), Inherit())
	if err := node.Spawn(); err != nil {
		koierr.Raise("exec: %v", err)
	}
	status, err := node.Wait()
	if err != nil {
		koierr.Raise("exec: %v", err)
	}
	return status
}

// RunCapture runs cmd in capture mode: stdout is routed to an internal
// pipe and collected into the returned string, as used by `$(cmd)`.
func RunCapture(cmd parser.Cmd, interp Interp, osEnv [][2]string) (string, int) {
	r, w, err := os.Pipe()
	if err != nil {
		koierr.Raise("pipe: %v", err)
	}
	node := Build(cmd, interp, osEnv, Inherit(), pipeStream(w), Inherit())
	if err := node.Spawn(); err != nil {
		koierr.Raise("exec: %v", err)
	}
	w.Close()

	data, readErr := io.ReadAll(r)
	r.Close()
	status, waitErr := node.Wait()
	if waitErr != nil {
		koierr.Raise("exec: %v", waitErr)
	}
	if readErr != nil {
		koierr.Raise("capture: %v", readErr)
	}
	return string(data), status
}
