package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/lexer"
)

func parse(t *testing.T, src string) []ast.Stmt {
	t.Helper()
	toks, lexErrs := lexer.ScanTokens(src)
	require.Empty(t, lexErrs)
	stmts, errs := Parse(toks)
	require.Empty(t, errs)
	return stmts
}

func TestParse_ExpressionStatement(t *testing.T) {
	stmts := parse(t, "1 + 2 * 3;")
	require.Len(t, stmts, 1)
	exprStmt, ok := stmts[0].(*ast.ExpressionStmt)
	require.True(t, ok)
	bin, ok := exprStmt.Expression.(*ast.BinaryExpr)
	require.True(t, ok)
	left, ok := bin.Left.(*ast.LiteralExpr)
	require.True(t, ok)
	assert.Equal(t, 1.0, left.Value)
	rightBin, ok := bin.Right.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, "*", string(rightBin.Operator.Lexeme))
}

func TestParse_VarDeclaration(t *testing.T) {
	stmts := parse(t, "var x = 1;")
	require.Len(t, stmts, 1)
	v, ok := stmts[0].(*ast.VarStmt)
	require.True(t, ok)
	assert.Equal(t, "x", v.Name.Lexeme)
	lit, ok := v.Initializer.(*ast.LiteralExpr)
	require.True(t, ok)
	assert.Equal(t, 1.0, lit.Value)
}

func TestParse_AssignmentTarget(t *testing.T) {
	stmts := parse(t, "x = 2;")
	exprStmt := stmts[0].(*ast.ExpressionStmt)
	assign, ok := exprStmt.Expression.(*ast.AssignExpr)
	require.True(t, ok)
	assert.Equal(t, "x", assign.Name.Lexeme)
}

func TestParse_InvalidAssignmentTarget(t *testing.T) {
	toks, _ := lexer.ScanTokens("1 = 2;")
	_, errs := Parse(toks)
	require.Len(t, errs, 1)
	assert.Equal(t, "Invalid assignment target.", errs[0].Message)
}

func TestParse_ForDesugarsToWhile(t *testing.T) {
	stmts := parse(t, "for (var i = 0; i < 3; i = i + 1) print i;")
	require.Len(t, stmts, 1)
	outer, ok := stmts[0].(*ast.BlockStmt)
	require.True(t, ok)
	require.Len(t, outer.Statements, 2)
	_, isVar := outer.Statements[0].(*ast.VarStmt)
	assert.True(t, isVar)
	whileStmt, ok := outer.Statements[1].(*ast.WhileStmt)
	require.True(t, ok)
	innerBlock, ok := whileStmt.Body.(*ast.BlockStmt)
	require.True(t, ok)
	require.Len(t, innerBlock.Statements, 2)
	_, isPrint := innerBlock.Statements[0].(*ast.PrintStmt)
	assert.True(t, isPrint)
	_, isIncr := innerBlock.Statements[1].(*ast.ExpressionStmt)
	assert.True(t, isIncr)
}

func TestParse_ForWithoutClausesUsesTrueCondition(t *testing.T) {
	stmts := parse(t, "for (;;) print 1;")
	whileStmt, ok := stmts[0].(*ast.WhileStmt)
	require.True(t, ok)
	lit, ok := whileStmt.Condition.(*ast.LiteralExpr)
	require.True(t, ok)
	assert.Equal(t, true, lit.Value)
}

func TestParse_ClassDeclaration(t *testing.T) {
	stmts := parse(t, "class Cake < Dessert { bake() { return 1; } }")
	cls, ok := stmts[0].(*ast.ClassStmt)
	require.True(t, ok)
	assert.Equal(t, "Cake", cls.Name.Lexeme)
	require.NotNil(t, cls.Superclass)
	assert.Equal(t, "Dessert", cls.Superclass.Name.Lexeme)
	require.Len(t, cls.Methods, 1)
	assert.Equal(t, "bake", cls.Methods[0].Name.Lexeme)
}

func TestParse_FunctionCallAndGet(t *testing.T) {
	stmts := parse(t, "a.b(1, 2);")
	exprStmt := stmts[0].(*ast.ExpressionStmt)
	call, ok := exprStmt.Expression.(*ast.CallExpr)
	require.True(t, ok)
	require.Len(t, call.Args, 2)
	get, ok := call.Callee.(*ast.GetExpr)
	require.True(t, ok)
	assert.Equal(t, "b", get.Name.Lexeme)
}

func TestParse_AnonymousFunctionExpression(t *testing.T) {
	stmts := parse(t, "var f = fun (a, b) { return a + b; };")
	v, ok := stmts[0].(*ast.VarStmt)
	require.True(t, ok)
	fn, ok := v.Initializer.(*ast.FunctionExpr)
	require.True(t, ok)
	require.Len(t, fn.Params, 2)
	assert.Equal(t, "a", fn.Params[0].Lexeme)
	assert.Equal(t, "b", fn.Params[1].Lexeme)
	require.Len(t, fn.Body, 1)
	_, isReturn := fn.Body[0].(*ast.ReturnStmt)
	assert.True(t, isReturn)
}

func TestParse_MissingSemicolonReportsError(t *testing.T) {
	toks, _ := lexer.ScanTokens("var x = 1")
	_, errs := Parse(toks)
	require.Len(t, errs, 1)
	assert.Equal(t, "Expect ';' after variable declaration.", errs[0].Message)
}

func TestParse_UnclosedParenReportsExpectClosingParen(t *testing.T) {
	toks, _ := lexer.ScanTokens("(1 + 2;")
	_, errs := Parse(toks)
	require.NotEmpty(t, errs)
	assert.Equal(t, "Expect ')' after expression.", errs[0].Message)
}

func TestParse_SynchronizeRecoversAfterError(t *testing.T) {
	toks, _ := lexer.ScanTokens("var ; var y = 1;")
	stmts, errs := Parse(toks)
	assert.NotEmpty(t, errs)
	// the second, well-formed declaration still parses after recovery
	found := false
	for _, s := range stmts {
		if v, ok := s.(*ast.VarStmt); ok && v.Name.Lexeme == "y" {
			found = true
		}
	}
	assert.True(t, found)
}
