// Package ast defines the expression and statement tree produced by the
// parser and walked by the resolver and the interpreter.
//
// The visitor shape is grounded on the teacher's parser.NodeVisitor
// (akashmaji946/go-mix/parser/node.go): one Visit method per concrete
// node type, dispatched through an Accept method on the node itself.
// Lox's grammar is flatter than go-mix's (no arrays/maps/sets/ranges),
// so the visitor here only carries the node kinds spec.md §3 names.
//
// Every node also carries an ID, a value distinct from any other node's
// ID for the lifetime of the process. The resolver's scope-depth table
// is keyed by this ID rather than by the node's contents, because two
// syntactically identical variable references (e.g. two uses of `x` in
// the same expression) must resolve to potentially different depths.
// The original Rust implementation gets this for free by hashing
// Rc<Expr> pointer identity (see original_source/src/resolver.rs); Go
// structs don't carry pointer identity through value copies, so nodes
// here are always built and passed around as pointers, and the ID is
// assigned once at construction time.
package ast

import "github.com/akashmaji946/golox/token"

var nextID int64

func newID() int64 {
	nextID++
	return nextID
}

// Expr is any expression node.
type Expr interface {
	ID() int64
	Accept(v ExprVisitor) any
}

// Stmt is any statement node.
type Stmt interface {
	ID() int64
	Accept(v StmtVisitor) any
}

// ExprVisitor dispatches over every expression node kind.
type ExprVisitor interface {
	VisitLiteralExpr(e *LiteralExpr) any
	VisitGroupingExpr(e *GroupingExpr) any
	VisitUnaryExpr(e *UnaryExpr) any
	VisitBinaryExpr(e *BinaryExpr) any
	VisitLogicalExpr(e *LogicalExpr) any
	VisitVariableExpr(e *VariableExpr) any
	VisitAssignExpr(e *AssignExpr) any
	VisitCallExpr(e *CallExpr) any
	VisitGetExpr(e *GetExpr) any
	VisitSetExpr(e *SetExpr) any
	VisitThisExpr(e *ThisExpr) any
	VisitSuperExpr(e *SuperExpr) any
	VisitFunctionExpr(e *FunctionExpr) any
}

// StmtVisitor dispatches over every statement node kind.
type StmtVisitor interface {
	VisitExpressionStmt(s *ExpressionStmt) any
	VisitPrintStmt(s *PrintStmt) any
	VisitVarStmt(s *VarStmt) any
	VisitBlockStmt(s *BlockStmt) any
	VisitIfStmt(s *IfStmt) any
	VisitWhileStmt(s *WhileStmt) any
	VisitReturnStmt(s *ReturnStmt) any
	VisitFunctionStmt(s *FunctionStmt) any
	VisitClassStmt(s *ClassStmt) any
}

// base embeds the identity field shared by every node.
type base struct {
	id int64
}

func (b base) ID() int64 { return b.id }

// --- expressions ---

// LiteralExpr is a number, string, boolean, or nil constant.
type LiteralExpr struct {
	base
	Value any // float64, string, bool, or nil
}

func NewLiteralExpr(value any) *LiteralExpr {
	return &LiteralExpr{base: base{newID()}, Value: value}
}

func (e *LiteralExpr) Accept(v ExprVisitor) any { return v.VisitLiteralExpr(e) }

// GroupingExpr is a parenthesized sub-expression.
type GroupingExpr struct {
	base
	Expression Expr
}

func NewGroupingExpr(expression Expr) *GroupingExpr {
	return &GroupingExpr{base: base{newID()}, Expression: expression}
}

func (e *GroupingExpr) Accept(v ExprVisitor) any { return v.VisitGroupingExpr(e) }

// UnaryExpr is a prefix operator applied to one operand: -x, !x.
type UnaryExpr struct {
	base
	Operator token.Token
	Right    Expr
}

func NewUnaryExpr(operator token.Token, right Expr) *UnaryExpr {
	return &UnaryExpr{base: base{newID()}, Operator: operator, Right: right}
}

func (e *UnaryExpr) Accept(v ExprVisitor) any { return v.VisitUnaryExpr(e) }

// BinaryExpr is an infix arithmetic, comparison, or equality operator.
type BinaryExpr struct {
	base
	Left     Expr
	Operator token.Token
	Right    Expr
}

func NewBinaryExpr(left Expr, operator token.Token, right Expr) *BinaryExpr {
	return &BinaryExpr{base: base{newID()}, Left: left, Operator: operator, Right: right}
}

func (e *BinaryExpr) Accept(v ExprVisitor) any { return v.VisitBinaryExpr(e) }

// LogicalExpr is `and`/`or`, kept distinct from BinaryExpr because it
// short-circuits and returns an operand rather than a boolean.
type LogicalExpr struct {
	base
	Left     Expr
	Operator token.Token
	Right    Expr
}

func NewLogicalExpr(left Expr, operator token.Token, right Expr) *LogicalExpr {
	return &LogicalExpr{base: base{newID()}, Left: left, Operator: operator, Right: right}
}

func (e *LogicalExpr) Accept(v ExprVisitor) any { return v.VisitLogicalExpr(e) }

// VariableExpr reads a variable by name.
type VariableExpr struct {
	base
	Name token.Token
}

func NewVariableExpr(name token.Token) *VariableExpr {
	return &VariableExpr{base: base{newID()}, Name: name}
}

func (e *VariableExpr) Accept(v ExprVisitor) any { return v.VisitVariableExpr(e) }

// AssignExpr assigns a new value to an existing variable.
type AssignExpr struct {
	base
	Name  token.Token
	Value Expr
}

func NewAssignExpr(name token.Token, value Expr) *AssignExpr {
	return &AssignExpr{base: base{newID()}, Name: name, Value: value}
}

func (e *AssignExpr) Accept(v ExprVisitor) any { return v.VisitAssignExpr(e) }

// CallExpr invokes a callee with a list of argument expressions. Paren
// is the closing ')' token, kept so runtime errors can report a line.
type CallExpr struct {
	base
	Callee Expr
	Paren  token.Token
	Args   []Expr
}

func NewCallExpr(callee Expr, paren token.Token, args []Expr) *CallExpr {
	return &CallExpr{base: base{newID()}, Callee: callee, Paren: paren, Args: args}
}

func (e *CallExpr) Accept(v ExprVisitor) any { return v.VisitCallExpr(e) }

// GetExpr reads a property off an instance: obj.field.
type GetExpr struct {
	base
	Object Expr
	Name   token.Token
}

func NewGetExpr(object Expr, name token.Token) *GetExpr {
	return &GetExpr{base: base{newID()}, Object: object, Name: name}
}

func (e *GetExpr) Accept(v ExprVisitor) any { return v.VisitGetExpr(e) }

// SetExpr writes a property on an instance: obj.field = value.
type SetExpr struct {
	base
	Object Expr
	Name   token.Token
	Value  Expr
}

func NewSetExpr(object Expr, name token.Token, value Expr) *SetExpr {
	return &SetExpr{base: base{newID()}, Object: object, Name: name, Value: value}
}

func (e *SetExpr) Accept(v ExprVisitor) any { return v.VisitSetExpr(e) }

// ThisExpr refers to the receiver inside a method body.
type ThisExpr struct {
	base
	Keyword token.Token
}

func NewThisExpr(keyword token.Token) *ThisExpr {
	return &ThisExpr{base: base{newID()}, Keyword: keyword}
}

func (e *ThisExpr) Accept(v ExprVisitor) any { return v.VisitThisExpr(e) }

// SuperExpr looks up a method on the enclosing class's superclass.
type SuperExpr struct {
	base
	Keyword token.Token
	Method  token.Token
}

func NewSuperExpr(keyword, method token.Token) *SuperExpr {
	return &SuperExpr{base: base{newID()}, Keyword: keyword, Method: method}
}

func (e *SuperExpr) Accept(v ExprVisitor) any { return v.VisitSuperExpr(e) }

// FunctionExpr is an anonymous function literal: `fun (params) { body }`
// appearing in expression position. A named `fun` declaration parses to
// a FunctionStmt instead; this node exists only for the unnamed form.
type FunctionExpr struct {
	base
	Params []token.Token
	Body   []Stmt
}

func NewFunctionExpr(params []token.Token, body []Stmt) *FunctionExpr {
	return &FunctionExpr{base: base{newID()}, Params: params, Body: body}
}

func (e *FunctionExpr) Accept(v ExprVisitor) any { return v.VisitFunctionExpr(e) }

// --- statements ---

// ExpressionStmt evaluates an expression and discards its value.
type ExpressionStmt struct {
	base
	Expression Expr
}

func NewExpressionStmt(expression Expr) *ExpressionStmt {
	return &ExpressionStmt{base: base{newID()}, Expression: expression}
}

func (s *ExpressionStmt) Accept(v StmtVisitor) any { return v.VisitExpressionStmt(s) }

// PrintStmt evaluates an expression and writes its text form.
type PrintStmt struct {
	base
	Expression Expr
}

func NewPrintStmt(expression Expr) *PrintStmt {
	return &PrintStmt{base: base{newID()}, Expression: expression}
}

func (s *PrintStmt) Accept(v StmtVisitor) any { return v.VisitPrintStmt(s) }

// VarStmt declares a variable, optionally with an initializer.
// Initializer is nil when the declaration has none (`var x;`).
type VarStmt struct {
	base
	Name        token.Token
	Initializer Expr
}

func NewVarStmt(name token.Token, initializer Expr) *VarStmt {
	return &VarStmt{base: base{newID()}, Name: name, Initializer: initializer}
}

func (s *VarStmt) Accept(v StmtVisitor) any { return v.VisitVarStmt(s) }

// BlockStmt introduces a new lexical scope around a list of statements.
type BlockStmt struct {
	base
	Statements []Stmt
}

func NewBlockStmt(statements []Stmt) *BlockStmt {
	return &BlockStmt{base: base{newID()}, Statements: statements}
}

func (s *BlockStmt) Accept(v StmtVisitor) any { return v.VisitBlockStmt(s) }

// IfStmt is a conditional; ElseBranch is nil when there is no else clause.
type IfStmt struct {
	base
	Condition  Expr
	ThenBranch Stmt
	ElseBranch Stmt
}

func NewIfStmt(condition Expr, thenBranch, elseBranch Stmt) *IfStmt {
	return &IfStmt{base: base{newID()}, Condition: condition, ThenBranch: thenBranch, ElseBranch: elseBranch}
}

func (s *IfStmt) Accept(v StmtVisitor) any { return v.VisitIfStmt(s) }

// WhileStmt repeats Body while Condition is truthy. `for` desugars to
// this plus a surrounding BlockStmt; there is no separate for-node.
type WhileStmt struct {
	base
	Condition Expr
	Body      Stmt
}

func NewWhileStmt(condition Expr, body Stmt) *WhileStmt {
	return &WhileStmt{base: base{newID()}, Condition: condition, Body: body}
}

func (s *WhileStmt) Accept(v StmtVisitor) any { return v.VisitWhileStmt(s) }

// ReturnStmt unwinds the current function call. Value is nil for a bare
// `return;`.
type ReturnStmt struct {
	base
	Keyword token.Token
	Value   Expr
}

func NewReturnStmt(keyword token.Token, value Expr) *ReturnStmt {
	return &ReturnStmt{base: base{newID()}, Keyword: keyword, Value: value}
}

func (s *ReturnStmt) Accept(v StmtVisitor) any { return v.VisitReturnStmt(s) }

// FunctionStmt declares a named function or method.
type FunctionStmt struct {
	base
	Name   token.Token
	Params []token.Token
	Body   []Stmt
}

func NewFunctionStmt(name token.Token, params []token.Token, body []Stmt) *FunctionStmt {
	return &FunctionStmt{base: base{newID()}, Name: name, Params: params, Body: body}
}

func (s *FunctionStmt) Accept(v StmtVisitor) any { return v.VisitFunctionStmt(s) }

// ClassStmt declares a class. Superclass is nil when the class has none.
type ClassStmt struct {
	base
	Name       token.Token
	Superclass *VariableExpr
	Methods    []*FunctionStmt
}

func NewClassStmt(name token.Token, superclass *VariableExpr, methods []*FunctionStmt) *ClassStmt {
	return &ClassStmt{base: base{newID()}, Name: name, Superclass: superclass, Methods: methods}
}

func (s *ClassStmt) Accept(v StmtVisitor) any { return v.VisitClassStmt(s) }
