package astprinter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/lexer"
	"github.com/akashmaji946/golox/parser"
	"github.com/akashmaji946/golox/token"
)

func exprOf(t *testing.T, src string) ast.Expr {
	t.Helper()
	toks, lexErrs := lexer.ScanTokens(src)
	require.Empty(t, lexErrs)
	stmts, parseErrs := parser.Parse(toks)
	require.Empty(t, parseErrs)
	return stmts[0].(*ast.ExpressionStmt).Expression
}

func TestPrint_BinaryWithGrouping(t *testing.T) {
	expr := ast.NewBinaryExpr(
		ast.NewUnaryExpr(token.New(token.MINUS, "-", 1), ast.NewLiteralExpr(123.0)),
		token.New(token.STAR, "*", 1),
		ast.NewGroupingExpr(ast.NewLiteralExpr(45.67)),
	)
	assert.Equal(t, "(* (- 123.0) (group 45.67))", Print(expr))
}

func TestPrint_FromParsedSource(t *testing.T) {
	expr := exprOf(t, "1 + 2 * 3;")
	assert.Equal(t, "(+ 1.0 (* 2.0 3.0))", Print(expr))
}

func TestPrint_AnonymousFunctionExpression(t *testing.T) {
	toks, lexErrs := lexer.ScanTokens("var f = fun (a, b) { return a; };")
	require.Empty(t, lexErrs)
	stmts, parseErrs := parser.Parse(toks)
	require.Empty(t, parseErrs)
	v := stmts[0].(*ast.VarStmt)
	assert.Equal(t, "(fun a b)", Print(v.Initializer))
}

func TestPrintTokens_SimpleProgram(t *testing.T) {
	toks, errs := lexer.ScanTokens("var x = 1;")
	require.Empty(t, errs)
	out := PrintTokens(toks)
	assert.Contains(t, out, "VAR var null\n")
	assert.Contains(t, out, "NUMBER 1 1.0\n")
	assert.Contains(t, out, "EOF  null\n")
}
