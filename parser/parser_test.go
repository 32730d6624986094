package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseOne(t *testing.T, src string) Stmt {
	t.Helper()
	p := New(src)
	prog := p.Parse()
	require.False(t, p.HasErrors(), "parse errors for %q: %v", src, p.Errors())
	require.Len(t, prog.Stmts, 1)
	return prog.Stmts[0]
}

func TestParseLetStatementWithBinaryInit(t *testing.T) {
	stmt := parseOne(t, "let x = 1 + 2")
	let, ok := stmt.(*LetStmt)
	require.True(t, ok)
	assert.Equal(t, "x", let.Name)
	bin, ok := let.Init.(*BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, NumLit{Value: 1}, bin.Left)
}

func TestAssignmentLooksLikeExpressionStatement(t *testing.T) {
	stmt := parseOne(t, "x = 5")
	es, ok := stmt.(*ExprStmt)
	require.True(t, ok)
	set, ok := es.Expr.(*SetExpr)
	require.True(t, ok)
	assert.Equal(t, "x", set.Name)
}

func TestFieldAssignmentIsExpressionStatement(t *testing.T) {
	stmt := parseOne(t, "x.y = 5")
	es, ok := stmt.(*ExprStmt)
	require.True(t, ok)
	_, ok = es.Expr.(*SetFieldExpr)
	require.True(t, ok)
}

func TestBareWordLineIsCommandStatement(t *testing.T) {
	stmt := parseOne(t, "echo hello")
	cs, ok := stmt.(*CmdStmt)
	require.True(t, ok)
	atom, ok := cs.Cmd.(*Atom)
	require.True(t, ok)
	require.Len(t, atom.Segments, 2)
}

func TestLeadingDollarForcesCommandStatement(t *testing.T) {
	stmt := parseOne(t, "$ print")
	cs, ok := stmt.(*CmdStmt)
	require.True(t, ok)
	atom, ok := cs.Cmd.(*Atom)
	require.True(t, ok)
	require.Len(t, atom.Segments, 1)
	piece, ok := atom.Segments[0].Pieces[0].(StringLit)
	require.True(t, ok)
	assert.Equal(t, "print", piece.Value)
}

func TestCallLooksLikeExpressionStatement(t *testing.T) {
	stmt := parseOne(t, "print(1)")
	es, ok := stmt.(*ExprStmt)
	require.True(t, ok)
	_, ok = es.Expr.(*CallExpr)
	require.True(t, ok)
}

func TestCommandWithPipeAndRedirect(t *testing.T) {
	stmt := parseOne(t, "echo xyz > out.txt ; cat out.txt")
	cs, ok := stmt.(*CmdStmt)
	require.True(t, ok)
	seq, ok := cs.Cmd.(*CmdOpNode)
	require.True(t, ok)
	assert.Equal(t, OpSeq, seq.Op)
	redirect, ok := seq.Left.(*CmdOpNode)
	require.True(t, ok)
	assert.Equal(t, OpOutWrite, redirect.Op)
}

func TestRangeInclusiveAndExclusive(t *testing.T) {
	stmt := parseOne(t, "let r = 0..=2")
	let := stmt.(*LetStmt)
	rng, ok := let.Init.(*RangeExpr)
	require.True(t, ok)
	assert.True(t, rng.Inclusive)

	stmt2 := parseOne(t, "let r = 0..2")
	let2 := stmt2.(*LetStmt)
	rng2, ok := let2.Init.(*RangeExpr)
	require.True(t, ok)
	assert.False(t, rng2.Inclusive)
}

func TestForLoopWithTwoVars(t *testing.T) {
	p := New("for i, x in [1,2,3] { print(x) }")
	prog := p.Parse()
	require.False(t, p.HasErrors())
	require.Len(t, prog.Stmts, 1)
	f, ok := prog.Stmts[0].(*ForStmt)
	require.True(t, ok)
	assert.Equal(t, "i", f.LVar)
	assert.True(t, f.HasRVar)
	assert.Equal(t, "x", f.RVar)
}

func TestStringInterpolationSegments(t *testing.T) {
	stmt := parseOne(t, `let s = "a{1}b{2}c"`)
	let := stmt.(*LetStmt)
	interp, ok := let.Init.(*InterpExpr)
	require.True(t, ok)
	require.Len(t, interp.Strings, 3)
	require.Len(t, interp.Exprs, 2)
	assert.Equal(t, len(interp.Strings), len(interp.Exprs)+1)
}

func TestLambdaLiteralParams(t *testing.T) {
	stmt := parseOne(t, "let add = fn(a, b) { return a + b }")
	let := stmt.(*LetStmt)
	lambda, ok := let.Init.(*LambdaExpr)
	require.True(t, ok)
	require.Len(t, lambda.Params, 2)
}

func TestCompoundAssignDesugars(t *testing.T) {
	stmt := parseOne(t, "x += 1")
	es := stmt.(*ExprStmt)
	set, ok := es.Expr.(*SetExpr)
	require.True(t, ok)
	bin, ok := set.Value.(*BinaryExpr)
	require.True(t, ok)
	get, ok := bin.Left.(*GetExpr)
	require.True(t, ok)
	assert.Equal(t, "x", get.Name)
}
