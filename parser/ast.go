/*
File    : koi/parser/ast.go

AST node types for Koi: Expr, Stmt, and Cmd tagged variants. Each case
is a small struct; dispatch happens by type switch in the evaluator and
command builder (see eval.Eval and cmdexec.Build), not through a
visitor interface — this mirrors how the teacher's own evaluator
actually walks its AST in practice.
*/
package parser

import "github.com/koi-lang/koi/lexer"

// Node is the minimal marker every AST node satisfies.
type Node interface {
	node()
}

// Expr is any expression node.
type Expr interface {
	Node
	exprNode()
}

// Stmt is any statement node.
type Stmt interface {
	Node
	stmtNode()
}

// ---- Expressions ----------------------------------------------------

type NilLit struct{}

type NumLit struct{ Value float64 }

type BoolLit struct{ Value bool }

type StringLit struct{ Value string }

// VecLit is an ordered vector literal: [e0, e1, ...].
type VecLit struct{ Elements []Expr }

// DictLit is a dict literal: {k0: e0, k1: e1, ...}. Key order in the
// source is not semantically significant but is preserved for
// deterministic printing.
type DictLit struct {
	Keys   []string
	Values []Expr
}

// RangeExpr is `left..right` or `left..=right`.
type RangeExpr struct {
	Left, Right Expr
	Inclusive   bool
}

// InterpExpr is an interpolated string: Strings[0] Exprs[0] Strings[1]
// Exprs[1] ... Strings[n], always len(Strings) == len(Exprs)+1.
type InterpExpr struct {
	Strings []string
	Exprs   []Expr
}

type UnaryExpr struct {
	Op      lexer.TokenType
	Operand Expr
}

type BinaryExpr struct {
	Left  Expr
	Op    lexer.TokenType
	Right Expr
}

// GetExpr reads a variable by name.
type GetExpr struct{ Name string }

// SetExpr assigns a value-expression to a variable name.
type SetExpr struct {
	Name  string
	Value Expr
}

// GetFieldExpr reads Base[Index] (also used for Base.method resolution
// with Index being a string-literal expression synthesized by the
// parser for `.` access).
type GetFieldExpr struct {
	Base  Expr
	Index Expr
}

// SetFieldExpr assigns Base[Index] = Value.
type SetFieldExpr struct {
	Base  Expr
	Index Expr
	Value Expr
}

// CallExpr invokes Callee with Args.
type CallExpr struct {
	Callee Expr
	Args   []Expr
}

// CmdExpr embeds a command as an expression: $(cmd), evaluated in
// capture mode and yielding its captured stdout as a String.
type CmdExpr struct{ Cmd Cmd }

// Param is one function parameter, with its (unenforced) type hints.
type Param struct {
	Name         string
	TypeHints    []string
	HasTypeHint  bool
}

// LambdaExpr is an anonymous function literal.
type LambdaExpr struct {
	Params         []Param
	Body           Stmt
	HasReturnType  bool
	ReturnType     string
}

func (NilLit) node()       {}
func (NumLit) node()       {}
func (BoolLit) node()      {}
func (StringLit) node()    {}
func (*VecLit) node()      {}
func (*DictLit) node()     {}
func (*RangeExpr) node()   {}
func (*InterpExpr) node()  {}
func (*UnaryExpr) node()   {}
func (*BinaryExpr) node()  {}
func (*GetExpr) node()     {}
func (*SetExpr) node()     {}
func (*GetFieldExpr) node()   {}
func (*SetFieldExpr) node()   {}
func (*CallExpr) node()    {}
func (*CmdExpr) node()     {}
func (*LambdaExpr) node()  {}

func (NilLit) exprNode()       {}
func (NumLit) exprNode()       {}
func (BoolLit) exprNode()      {}
func (StringLit) exprNode()    {}
func (*VecLit) exprNode()      {}
func (*DictLit) exprNode()     {}
func (*RangeExpr) exprNode()   {}
func (*InterpExpr) exprNode()  {}
func (*UnaryExpr) exprNode()   {}
func (*BinaryExpr) exprNode()  {}
func (*GetExpr) exprNode()     {}
func (*SetExpr) exprNode()     {}
func (*GetFieldExpr) exprNode()   {}
func (*SetFieldExpr) exprNode()   {}
func (*CallExpr) exprNode()    {}
func (*CmdExpr) exprNode()     {}
func (*LambdaExpr) exprNode()  {}

// ---- Statements -------------------------------------------------------

type ExprStmt struct{ Expr Expr }

type CmdStmt struct{ Cmd Cmd }

type ImportStmt struct{ Path string }

type NamedImportStmt struct {
	Path  string
	Alias string
}

type LetStmt struct {
	IsExported bool
	Name       string
	Init       Expr // nil => Nil
}

type BlockStmt struct{ Stmts []Stmt }

type IfStmt struct {
	Cond Expr
	Then Stmt
	Else Stmt // nil if absent
}

// ForStmt covers both the one-variable form `for x in e` (HasRVar false,
// RVar == "") and the two-variable form `for x, y in e` (HasRVar true).
type ForStmt struct {
	LVar     string
	RVar     string
	HasRVar  bool
	Iterated Expr
	Body     Stmt
}

type WhileStmt struct {
	Cond Expr
	Body Stmt
}

type FuncDeclStmt struct {
	Name          string
	Params        []Param
	Body          Stmt
	HasReturnType bool
	ReturnType    string
}

type ContinueStmt struct{}

type BreakStmt struct{}

type ReturnStmt struct{ Value Expr } // nil => Nil

func (*ExprStmt) node()        {}
func (*CmdStmt) node()         {}
func (*ImportStmt) node()      {}
func (*NamedImportStmt) node() {}
func (*LetStmt) node()         {}
func (*BlockStmt) node()       {}
func (*IfStmt) node()          {}
func (*ForStmt) node()         {}
func (*WhileStmt) node()       {}
func (*FuncDeclStmt) node()    {}
func (*ContinueStmt) node()    {}
func (*BreakStmt) node()       {}
func (*ReturnStmt) node()      {}

func (*ExprStmt) stmtNode()        {}
func (*CmdStmt) stmtNode()         {}
func (*ImportStmt) stmtNode()      {}
func (*NamedImportStmt) stmtNode() {}
func (*LetStmt) stmtNode()         {}
func (*BlockStmt) stmtNode()       {}
func (*IfStmt) stmtNode()          {}
func (*ForStmt) stmtNode()         {}
func (*WhileStmt) stmtNode()       {}
func (*FuncDeclStmt) stmtNode()    {}
func (*ContinueStmt) stmtNode()    {}
func (*BreakStmt) stmtNode()       {}
func (*ReturnStmt) stmtNode()      {}

// Prog is the top-level program: a sequence of statements.
type Prog struct{ Stmts []Stmt }

// ---- Commands ---------------------------------------------------------

// CmdOp enumerates the Cmd AST's binary operators (spec.md §3).
type CmdOp int

const (
	OpAnd CmdOp = iota
	OpOr
	OpSeq
	OpOutPipe
	OpErrPipe
	OpAllPipe
	OpOutWrite
	OpErrWrite
	OpAllWrite
	OpOutAppend
	OpErrAppend
	OpAllAppend
	OpRead
)

// Cmd is any command AST node: Atom or Op.
type Cmd interface {
	cmdNode()
}

// Word is one argv piece: a concatenated sequence of expressions
// whose evaluated results are joined to form one argument string.
// A bare identifier, number or symbol becomes a StringLit of its lexeme,
// a quoted string a StringLit or InterpExpr, `$(...)` a CmdExpr, and an
// embedded `{expr}` piece any expression.
type Word struct{ Pieces []Expr }

// Atom is a bare command invocation: segments[0] is the program name,
// segments[1:] are its arguments.
type Atom struct{ Segments []Word }

// CmdOpNode is a binary combination of two commands.
type CmdOpNode struct {
	Left  Cmd
	Op    CmdOp
	Right Cmd
}

func (*Atom) cmdNode()      {}
func (*CmdOpNode) cmdNode() {}
