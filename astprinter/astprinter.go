// Package astprinter renders a parsed expression back out as the fully
// parenthesized prefix form spec.md §6.3 specifies, and renders a
// scanned token stream in the §6.2 dump format. Both are debugging aids
// the `parse` and `tokenize` CLI subcommands use to print without
// running the program.
//
// The visitor shape is grounded on the teacher's print_visitor.go
// (akashmaji946/go-mix/main/print_visitor.go): a small struct
// implementing one Visit method per node kind, accumulating into a
// string builder rather than printing directly, so it composes under
// nested Accept calls.
package astprinter

import (
	"strconv"
	"strings"

	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/token"
)

// Printer renders expressions as fully parenthesized prefix text.
type Printer struct {
	buf strings.Builder
}

// Print renders a single expression.
func Print(e ast.Expr) string {
	p := &Printer{}
	e.Accept(p)
	return p.buf.String()
}

// PrintTokens renders a scanned token stream one line per token, in
// the §6.2 tokenize-dump format ("<KIND> <lexeme> <literal-or-null>").
func PrintTokens(tokens []token.Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(t.String())
		b.WriteByte('\n')
	}
	return b.String()
}

func (p *Printer) parenthesize(name string, exprs ...ast.Expr) {
	p.buf.WriteByte('(')
	p.buf.WriteString(name)
	for _, e := range exprs {
		p.buf.WriteByte(' ')
		e.Accept(p)
	}
	p.buf.WriteByte(')')
}

func (p *Printer) VisitLiteralExpr(e *ast.LiteralExpr) any {
	p.buf.WriteString(stringifyLiteral(e.Value))
	return nil
}

// stringifyLiteral matches §6.3: numbers print the same way the token
// dump's literal field does (integral values keep a trailing ".0"),
// which is why this duplicates token.formatNumberLiteral's rule rather
// than calling interp.Stringify — the two dumps intentionally disagree
// on numbers.
func stringifyLiteral(v any) string {
	switch val := v.(type) {
	case nil:
		return "nil"
	case bool:
		if val {
			return "true"
		}
		return "false"
	case float64:
		if val == float64(int64(val)) {
			return strconv.FormatInt(int64(val), 10) + ".0"
		}
		return strconv.FormatFloat(val, 'g', -1, 64)
	case string:
		return val
	default:
		return ""
	}
}

func (p *Printer) VisitGroupingExpr(e *ast.GroupingExpr) any {
	p.parenthesize("group", e.Expression)
	return nil
}

func (p *Printer) VisitUnaryExpr(e *ast.UnaryExpr) any {
	p.parenthesize(e.Operator.Lexeme, e.Right)
	return nil
}

func (p *Printer) VisitBinaryExpr(e *ast.BinaryExpr) any {
	p.parenthesize(e.Operator.Lexeme, e.Left, e.Right)
	return nil
}

func (p *Printer) VisitLogicalExpr(e *ast.LogicalExpr) any {
	p.parenthesize(e.Operator.Lexeme, e.Left, e.Right)
	return nil
}

func (p *Printer) VisitVariableExpr(e *ast.VariableExpr) any {
	p.buf.WriteString(e.Name.Lexeme)
	return nil
}

func (p *Printer) VisitAssignExpr(e *ast.AssignExpr) any {
	p.parenthesize("= "+e.Name.Lexeme, e.Value)
	return nil
}

func (p *Printer) VisitCallExpr(e *ast.CallExpr) any {
	p.parenthesize("call", append([]ast.Expr{e.Callee}, e.Args...)...)
	return nil
}

func (p *Printer) VisitGetExpr(e *ast.GetExpr) any {
	p.parenthesize("get "+e.Name.Lexeme, e.Object)
	return nil
}

func (p *Printer) VisitSetExpr(e *ast.SetExpr) any {
	p.parenthesize("set "+e.Name.Lexeme, e.Object, e.Value)
	return nil
}

func (p *Printer) VisitThisExpr(e *ast.ThisExpr) any {
	p.buf.WriteString("this")
	return nil
}

func (p *Printer) VisitSuperExpr(e *ast.SuperExpr) any {
	p.buf.WriteString("(super " + e.Method.Lexeme + ")")
	return nil
}

func (p *Printer) VisitFunctionExpr(e *ast.FunctionExpr) any {
	p.buf.WriteString("(fun")
	for _, param := range e.Params {
		p.buf.WriteByte(' ')
		p.buf.WriteString(param.Lexeme)
	}
	p.buf.WriteByte(')')
	return nil
}
