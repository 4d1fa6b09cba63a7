package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/golox/token"
)

func TestNewXxx_AssignsDistinctIDs(t *testing.T) {
	a := NewLiteralExpr(1.0)
	b := NewLiteralExpr(1.0)
	assert.NotEqual(t, a.ID(), b.ID(), "two textually identical nodes must still have distinct identity")
}

func TestVariableExpr_SameNameDifferentNodesHaveDistinctIDs(t *testing.T) {
	name := token.New(token.IDENTIFIER, "x", 1)
	first := NewVariableExpr(name)
	second := NewVariableExpr(name)
	assert.NotEqual(t, first.ID(), second.ID())
}

// recordingVisitor implements ExprVisitor, recording which Visit method
// fired so Accept's dispatch can be checked without a full interpreter.
type recordingVisitor struct {
	visited string
}

func (r *recordingVisitor) VisitLiteralExpr(e *LiteralExpr) any    { r.visited = "literal"; return nil }
func (r *recordingVisitor) VisitGroupingExpr(e *GroupingExpr) any  { r.visited = "grouping"; return nil }
func (r *recordingVisitor) VisitUnaryExpr(e *UnaryExpr) any        { r.visited = "unary"; return nil }
func (r *recordingVisitor) VisitBinaryExpr(e *BinaryExpr) any      { r.visited = "binary"; return nil }
func (r *recordingVisitor) VisitLogicalExpr(e *LogicalExpr) any    { r.visited = "logical"; return nil }
func (r *recordingVisitor) VisitVariableExpr(e *VariableExpr) any  { r.visited = "variable"; return nil }
func (r *recordingVisitor) VisitAssignExpr(e *AssignExpr) any      { r.visited = "assign"; return nil }
func (r *recordingVisitor) VisitCallExpr(e *CallExpr) any          { r.visited = "call"; return nil }
func (r *recordingVisitor) VisitGetExpr(e *GetExpr) any            { r.visited = "get"; return nil }
func (r *recordingVisitor) VisitSetExpr(e *SetExpr) any            { r.visited = "set"; return nil }
func (r *recordingVisitor) VisitThisExpr(e *ThisExpr) any          { r.visited = "this"; return nil }
func (r *recordingVisitor) VisitSuperExpr(e *SuperExpr) any        { r.visited = "super"; return nil }
func (r *recordingVisitor) VisitFunctionExpr(e *FunctionExpr) any  { r.visited = "function"; return nil }

func TestAccept_DispatchesToMatchingVisitMethod(t *testing.T) {
	cases := []struct {
		name string
		expr Expr
		want string
	}{
		{"literal", NewLiteralExpr(1.0), "literal"},
		{"grouping", NewGroupingExpr(NewLiteralExpr(1.0)), "grouping"},
		{"unary", NewUnaryExpr(token.New(token.MINUS, "-", 1), NewLiteralExpr(1.0)), "unary"},
		{"binary", NewBinaryExpr(NewLiteralExpr(1.0), token.New(token.PLUS, "+", 1), NewLiteralExpr(2.0)), "binary"},
		{"variable", NewVariableExpr(token.New(token.IDENTIFIER, "x", 1)), "variable"},
		{"function", NewFunctionExpr(nil, nil), "function"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v := &recordingVisitor{}
			c.expr.Accept(v)
			assert.Equal(t, c.want, v.visited)
		})
	}
}

func TestClassStmt_SuperclassNilWhenNoneDeclared(t *testing.T) {
	name := token.New(token.IDENTIFIER, "A", 1)
	cls := NewClassStmt(name, nil, nil)
	assert.Nil(t, cls.Superclass)
}
