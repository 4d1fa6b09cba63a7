// Package resolver performs the static post-parse pass that computes,
// for every variable reference, how many enclosing scopes separate it
// from the scope that declares it. The interpreter's environment chain
// uses that depth instead of walking up by name, which is what makes a
// closure over a block-scoped variable see the binding that was live
// when the closure was created rather than whatever that name resolves
// to dynamically later on.
//
// The scope-stack-of-maps plus a declare/define split is grounded on
// the original source's Resolver (original_source/src/resolver.rs):
// declare marks a name visible-but-uninitialized in the current scope
// (catching `var a = a;`), define marks it ready for use. The table is
// keyed by ast node identity — resolver.rs hashes Rc<Expr> pointer
// identity for the same reason; here every ast.Expr/ast.Stmt already
// carries a stable ID field for exactly this purpose.
package resolver

import (
	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/loxerr"
	"github.com/akashmaji946/golox/token"
)

type functionKind int

const (
	fnNone functionKind = iota
	fnFunction
	fnInitializer
	fnMethod
)

type classKind int

const (
	classNone classKind = iota
	classClass
	classSubclass
)

// Depths maps a variable-reference or assignment node's ID to the
// number of scopes between its use and its declaration. A node absent
// from the map is global and should be looked up dynamically at
// runtime instead.
type Depths map[int64]int

// Resolver walks the statement tree produced by the parser.
type Resolver struct {
	scopes      []map[string]bool
	depths      Depths
	errors      []*loxerr.ResolveError
	currentFn   functionKind
	currentCls  classKind
}

// New creates a Resolver ready to walk a program.
func New() *Resolver {
	return &Resolver{}
}

// Resolve walks every top-level statement and returns the completed
// depth table plus any ResolveErrors. A non-empty error slice means the
// caller must not hand the tree to the interpreter.
func Resolve(stmts []ast.Stmt) (Depths, []*loxerr.ResolveError) {
	r := New()
	r.depths = make(Depths)
	r.resolveStmts(stmts)
	return r.depths, r.errors
}

// ResolveExpr resolves a single bare expression, for the `evaluate`
// CLI mode which works over one expression rather than a statement
// program.
func ResolveExpr(expr ast.Expr) (Depths, []*loxerr.ResolveError) {
	r := New()
	r.depths = make(Depths)
	r.resolveExpr(expr)
	return r.depths, r.errors
}

func (r *Resolver) error(line int, message string) {
	r.errors = append(r.errors, &loxerr.ResolveError{Message: message, Line: line})
}

// --- scope stack ---

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]bool))
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *Resolver) declare(name string, line int) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.scopes[len(r.scopes)-1]
	if _, exists := scope[name]; exists {
		r.error(line, "Already a variable with this name in this scope.")
	}
	scope[name] = false
}

func (r *Resolver) define(name string) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name] = true
}

func (r *Resolver) resolveLocal(nodeID int64, name string) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name]; ok {
			r.depths[nodeID] = len(r.scopes) - 1 - i
			return
		}
	}
	// not found in any scope: treated as global, left out of the table.
}

// --- statements ---

func (r *Resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *Resolver) resolveStmt(s ast.Stmt) {
	s.Accept(r)
}

func (r *Resolver) VisitBlockStmt(s *ast.BlockStmt) any {
	r.beginScope()
	r.resolveStmts(s.Statements)
	r.endScope()
	return nil
}

func (r *Resolver) VisitVarStmt(s *ast.VarStmt) any {
	r.declare(s.Name.Lexeme, s.Name.Line)
	if s.Initializer != nil {
		r.resolveExpr(s.Initializer)
	}
	r.define(s.Name.Lexeme)
	return nil
}

func (r *Resolver) VisitFunctionStmt(s *ast.FunctionStmt) any {
	r.declare(s.Name.Lexeme, s.Name.Line)
	r.define(s.Name.Lexeme)
	r.resolveFunction(s, fnFunction)
	return nil
}

func (r *Resolver) resolveFunction(fn *ast.FunctionStmt, kind functionKind) {
	r.resolveFunctionBody(fn.Params, fn.Body, kind)
}

// resolveFunctionBody resolves a parameter list and body in a fresh
// scope, shared by named function/method declarations and anonymous
// function expressions.
func (r *Resolver) resolveFunctionBody(params []token.Token, body []ast.Stmt, kind functionKind) {
	enclosing := r.currentFn
	r.currentFn = kind
	r.beginScope()
	for _, param := range params {
		r.declare(param.Lexeme, param.Line)
		r.define(param.Lexeme)
	}
	r.resolveStmts(body)
	r.endScope()
	r.currentFn = enclosing
}

func (r *Resolver) VisitExpressionStmt(s *ast.ExpressionStmt) any {
	r.resolveExpr(s.Expression)
	return nil
}

func (r *Resolver) VisitIfStmt(s *ast.IfStmt) any {
	r.resolveExpr(s.Condition)
	r.resolveStmt(s.ThenBranch)
	if s.ElseBranch != nil {
		r.resolveStmt(s.ElseBranch)
	}
	return nil
}

func (r *Resolver) VisitPrintStmt(s *ast.PrintStmt) any {
	r.resolveExpr(s.Expression)
	return nil
}

func (r *Resolver) VisitReturnStmt(s *ast.ReturnStmt) any {
	if r.currentFn == fnNone {
		r.error(s.Keyword.Line, "Can't return from top-level code.")
	}
	if s.Value != nil {
		if r.currentFn == fnInitializer {
			r.error(s.Keyword.Line, "Can't return a value from an initializer.")
		}
		r.resolveExpr(s.Value)
	}
	return nil
}

func (r *Resolver) VisitWhileStmt(s *ast.WhileStmt) any {
	r.resolveExpr(s.Condition)
	r.resolveStmt(s.Body)
	return nil
}

func (r *Resolver) VisitClassStmt(s *ast.ClassStmt) any {
	enclosingCls := r.currentCls
	r.currentCls = classClass

	r.declare(s.Name.Lexeme, s.Name.Line)
	r.define(s.Name.Lexeme)

	if s.Superclass != nil {
		if s.Superclass.Name.Lexeme == s.Name.Lexeme {
			r.error(s.Superclass.Name.Line, "A class can't inherit from itself.")
		}
		r.currentCls = classSubclass
		r.resolveExpr(s.Superclass)

		r.beginScope()
		r.scopes[len(r.scopes)-1]["super"] = true
	}

	r.beginScope()
	r.scopes[len(r.scopes)-1]["this"] = true

	for _, method := range s.Methods {
		kind := fnMethod
		if method.Name.Lexeme == "init" {
			kind = fnInitializer
		}
		r.resolveFunction(method, kind)
	}

	r.endScope()

	if s.Superclass != nil {
		r.endScope()
	}

	r.currentCls = enclosingCls
	return nil
}

// --- expressions ---

func (r *Resolver) resolveExpr(e ast.Expr) {
	e.Accept(r)
}

func (r *Resolver) VisitVariableExpr(e *ast.VariableExpr) any {
	if len(r.scopes) > 0 {
		if ready, declared := r.scopes[len(r.scopes)-1][e.Name.Lexeme]; declared && !ready {
			r.error(e.Name.Line, "Can't read local variable in its own initializer.")
		}
	}
	r.resolveLocal(e.ID(), e.Name.Lexeme)
	return nil
}

func (r *Resolver) VisitAssignExpr(e *ast.AssignExpr) any {
	r.resolveExpr(e.Value)
	r.resolveLocal(e.ID(), e.Name.Lexeme)
	return nil
}

func (r *Resolver) VisitBinaryExpr(e *ast.BinaryExpr) any {
	r.resolveExpr(e.Left)
	r.resolveExpr(e.Right)
	return nil
}

func (r *Resolver) VisitLogicalExpr(e *ast.LogicalExpr) any {
	r.resolveExpr(e.Left)
	r.resolveExpr(e.Right)
	return nil
}

func (r *Resolver) VisitCallExpr(e *ast.CallExpr) any {
	r.resolveExpr(e.Callee)
	for _, arg := range e.Args {
		r.resolveExpr(arg)
	}
	return nil
}

func (r *Resolver) VisitGetExpr(e *ast.GetExpr) any {
	r.resolveExpr(e.Object)
	return nil
}

func (r *Resolver) VisitSetExpr(e *ast.SetExpr) any {
	r.resolveExpr(e.Value)
	r.resolveExpr(e.Object)
	return nil
}

func (r *Resolver) VisitGroupingExpr(e *ast.GroupingExpr) any {
	r.resolveExpr(e.Expression)
	return nil
}

func (r *Resolver) VisitLiteralExpr(e *ast.LiteralExpr) any {
	return nil
}

func (r *Resolver) VisitUnaryExpr(e *ast.UnaryExpr) any {
	r.resolveExpr(e.Right)
	return nil
}

func (r *Resolver) VisitThisExpr(e *ast.ThisExpr) any {
	if r.currentCls == classNone {
		r.error(e.Keyword.Line, "Can't use 'this' outside of a class.")
		return nil
	}
	r.resolveLocal(e.ID(), "this")
	return nil
}

func (r *Resolver) VisitFunctionExpr(e *ast.FunctionExpr) any {
	r.resolveFunctionBody(e.Params, e.Body, fnFunction)
	return nil
}

func (r *Resolver) VisitSuperExpr(e *ast.SuperExpr) any {
	switch r.currentCls {
	case classNone:
		r.error(e.Keyword.Line, "Can't use 'super' outside of a class.")
	case classClass:
		r.error(e.Keyword.Line, "Can't use 'super' in a class with no superclass.")
	}
	r.resolveLocal(e.ID(), "super")
	return nil
}
