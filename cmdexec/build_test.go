package cmdexec

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koi-lang/koi/objects"
	"github.com/koi-lang/koi/parser"
)

// literalInterp evaluates only the word-piece shapes cmdexec ever asks
// it to: string literals and vec literals of string literals.
type literalInterp struct{}

func (literalInterp) Eval(e parser.Expr) objects.Value {
	switch x := e.(type) {
	case *parser.StringLit:
		return &objects.String{Value: x.Value}
	case parser.StringLit:
		return &objects.String{Value: x.Value}
	case *parser.VecLit:
		elems := make([]objects.Value, len(x.Elements))
		for i, el := range x.Elements {
			elems[i] = literalInterp{}.Eval(el)
		}
		return objects.NewVec(elems)
	}
	return &objects.Nil{}
}

func word(s string) parser.Word {
	return parser.Word{Pieces: []parser.Expr{parser.StringLit{Value: s}}}
}

func atom(words ...string) *parser.Atom {
	segs := make([]parser.Word, len(words))
	for i, w := range words {
		segs[i] = word(w)
	}
	return &parser.Atom{Segments: segs}
}

func requireTool(t *testing.T, name string) {
	t.Helper()
	if _, err := exec.LookPath(name); err != nil {
		t.Skipf("%s not available", name)
	}
}

func TestRunCaptureEchoesArgv(t *testing.T) {
	requireTool(t, "echo")
	out, status := RunCapture(atom("echo", "hi"), literalInterp{}, nil)
	require.Equal(t, 0, status)
	assert.Equal(t, "hi\n", out)
}

func TestRunCapturePipeline(t *testing.T) {
	requireTool(t, "echo")
	requireTool(t, "cat")
	pipe := &parser.CmdOpNode{
		Op:   parser.OpOutPipe,
		Left: atom("echo", "piped"),
		Right: atom("cat"),
	}
	out, status := RunCapture(pipe, literalInterp{}, nil)
	require.Equal(t, 0, status)
	assert.Equal(t, "piped\n", out)
}

func TestRunInheritExitStatusPropagates(t *testing.T) {
	requireTool(t, "sh")
	status := RunInherit(atom("sh", "-c", "exit 3"), literalInterp{}, nil)
	assert.Equal(t, 3, status)
}

func TestBuildEmptyAtomRaises(t *testing.T) {
	assert.Panics(t, func() {
		Build(&parser.Atom{}, literalInterp{}, nil, Null(), Null(), Null())
	})
}

func TestExpandWordCrossProductOfVecPieces(t *testing.T) {
	w := parser.Word{Pieces: []parser.Expr{
		&parser.VecLit{Elements: []parser.Expr{parser.StringLit{Value: "a"}, parser.StringLit{Value: "b"}}},
		parser.StringLit{Value: "-suffix"},
	}}
	got := expandWord(w, literalInterp{})
	assert.ElementsMatch(t, []string{"a-suffix", "b-suffix"}, got)
}
