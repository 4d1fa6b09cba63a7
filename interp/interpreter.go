// Interpreter walks the resolved ast.Stmt tree and executes it directly
// (no bytecode, no separate value-stack machine), matching spec.md §5's
// tree-walking design and the teacher's eval.Evaluator
// (akashmaji946/go-mix/eval/evaluator.go).
//
// Within a single Interpret call, runtime failures and `return`
// unwinding are both signaled by panicking a sentinel value and
// recovering it at the nearest statement-execution boundary, the same
// panic-recovery idiom the teacher's executeFileWithRecovery
// (akashmaji946/go-mix/main/main.go) and repl.Repl.Start use for a
// user script's own panics. ast.ExprVisitor/ast.StmtVisitor return a
// bare `any`, so this is the natural way to thread failure through a
// visitor dispatch without changing every Visit method's signature;
// every exported entry point (Interpret, Callable.Call) still recovers
// before returning, so callers only ever see a normal Go error value.
package interp

import (
	"fmt"
	"io"
	"strconv"

	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/loxerr"
	"github.com/akashmaji946/golox/resolver"
	"github.com/akashmaji946/golox/token"
)

// returnSignal carries a `return` statement's value up to the nearest
// enclosing function call.
type returnSignal struct {
	value any
}

// Interpreter holds the state live across one program run: the
// permanent global scope, the current scope, the resolver's computed
// depths, and where Print statements write.
type Interpreter struct {
	globals     *Environment
	environment *Environment
	depths      resolver.Depths
	out         io.Writer
}

// New creates an Interpreter that writes `print` output to out and
// registers the `clock` native builtin in the global scope.
func New(out io.Writer) *Interpreter {
	globals := NewEnvironment()
	globals.Define("clock", clockFn)
	return &Interpreter{globals: globals, environment: globals, out: out}
}

// SetWriter redirects where subsequent Print statements write.
func (in *Interpreter) SetWriter(out io.Writer) { in.out = out }

// Interpret executes every statement in order against depths, the
// resolver's output for this same tree. It returns the first
// RuntimeError encountered; Lox aborts a run on the first one.
//
// depths is merged into, not replacing, any depths from a prior
// Interpret call on the same Interpreter: the REPL resolves and
// interprets one line at a time, so a function declared on an earlier
// line still needs its body's node IDs resolvable when called from a
// later one.
func (in *Interpreter) Interpret(stmts []ast.Stmt, depths resolver.Depths) (result *loxerr.RuntimeError) {
	if in.depths == nil {
		in.depths = make(resolver.Depths, len(depths))
	}
	for id, depth := range depths {
		in.depths[id] = depth
	}
	defer func() {
		if r := recover(); r != nil {
			if rte, ok := r.(*loxerr.RuntimeError); ok {
				result = rte
				return
			}
			panic(r)
		}
	}()
	for _, stmt := range stmts {
		in.execute(stmt)
	}
	return nil
}

// EvaluateExpr evaluates a single bare expression — what the `evaluate`
// CLI subcommand needs, since spec.md §6.4's evaluate mode works over
// one expression rather than a statement program. depths is merged the
// same way Interpret's is.
func (in *Interpreter) EvaluateExpr(expr ast.Expr, depths resolver.Depths) (value any, result *loxerr.RuntimeError) {
	if in.depths == nil {
		in.depths = make(resolver.Depths, len(depths))
	}
	for id, depth := range depths {
		in.depths[id] = depth
	}
	defer func() {
		if r := recover(); r != nil {
			if rte, ok := r.(*loxerr.RuntimeError); ok {
				result = rte
				return
			}
			panic(r)
		}
	}()
	return in.evaluate(expr), nil
}

func panicRuntime(line int, message string) {
	panic(&loxerr.RuntimeError{Message: message, Line: line})
}

// executeBlockCatchingReturn runs body in env and is the one place a
// returnSignal panic is expected and caught; anything else propagates.
func (in *Interpreter) executeBlockCatchingReturn(body []ast.Stmt, env *Environment) (sig *returnSignal, err error) {
	defer func() {
		if r := recover(); r != nil {
			switch v := r.(type) {
			case *returnSignal:
				sig = v
			case *loxerr.RuntimeError:
				err = v
			default:
				panic(r)
			}
		}
	}()
	previous := in.environment
	in.environment = env
	defer func() { in.environment = previous }()
	for _, stmt := range body {
		in.execute(stmt)
	}
	return nil, nil
}

func (in *Interpreter) execute(s ast.Stmt) {
	s.Accept(in)
}

func (in *Interpreter) evaluate(e ast.Expr) any {
	return e.Accept(in)
}

// --- statements ---

func (in *Interpreter) VisitExpressionStmt(s *ast.ExpressionStmt) any {
	in.evaluate(s.Expression)
	return nil
}

func (in *Interpreter) VisitPrintStmt(s *ast.PrintStmt) any {
	value := in.evaluate(s.Expression)
	fmt.Fprintln(in.out, Stringify(value))
	return nil
}

func (in *Interpreter) VisitVarStmt(s *ast.VarStmt) any {
	var value any
	if s.Initializer != nil {
		value = in.evaluate(s.Initializer)
	}
	in.environment.Define(s.Name.Lexeme, value)
	return nil
}

func (in *Interpreter) VisitBlockStmt(s *ast.BlockStmt) any {
	in.executeBlock(s.Statements, NewChildEnvironment(in.environment))
	return nil
}

// executeBlock is the panic-propagating counterpart to
// executeBlockCatchingReturn, used wherever a return or runtime error
// must keep unwinding rather than be caught (every block that isn't a
// function body).
func (in *Interpreter) executeBlock(stmts []ast.Stmt, env *Environment) {
	previous := in.environment
	in.environment = env
	defer func() { in.environment = previous }()
	for _, stmt := range stmts {
		in.execute(stmt)
	}
}

func (in *Interpreter) VisitIfStmt(s *ast.IfStmt) any {
	if isTruthy(in.evaluate(s.Condition)) {
		in.execute(s.ThenBranch)
	} else if s.ElseBranch != nil {
		in.execute(s.ElseBranch)
	}
	return nil
}

func (in *Interpreter) VisitWhileStmt(s *ast.WhileStmt) any {
	for isTruthy(in.evaluate(s.Condition)) {
		in.execute(s.Body)
	}
	return nil
}

func (in *Interpreter) VisitReturnStmt(s *ast.ReturnStmt) any {
	var value any
	if s.Value != nil {
		value = in.evaluate(s.Value)
	}
	panic(&returnSignal{value: value})
}

func (in *Interpreter) VisitFunctionStmt(s *ast.FunctionStmt) any {
	fn := NewUserFunction(s.Name.Lexeme, s.Params, s.Body, in.environment, false)
	in.environment.Define(s.Name.Lexeme, fn)
	return nil
}

func (in *Interpreter) VisitClassStmt(s *ast.ClassStmt) any {
	var superclass *Class
	if s.Superclass != nil {
		sup := in.evaluate(s.Superclass)
		sc, ok := sup.(*Class)
		if !ok {
			panicRuntime(s.Superclass.Name.Line, "Superclass must be a class.")
		}
		superclass = sc
	}

	in.environment.Define(s.Name.Lexeme, nil)

	env := in.environment
	if superclass != nil {
		env = NewChildEnvironment(in.environment)
		env.Define("super", superclass)
	}

	methods := make(map[string]*UserFunction, len(s.Methods))
	for _, m := range s.Methods {
		methods[m.Name.Lexeme] = NewUserFunction(m.Name.Lexeme, m.Params, m.Body, env, m.Name.Lexeme == "init")
	}

	class := NewClass(s.Name.Lexeme, superclass, methods)
	in.environment.Assign(s.Name.Lexeme, class, s.Name.Line)
	return nil
}

// --- expressions ---

func (in *Interpreter) VisitLiteralExpr(e *ast.LiteralExpr) any {
	return e.Value
}

func (in *Interpreter) VisitGroupingExpr(e *ast.GroupingExpr) any {
	return in.evaluate(e.Expression)
}

func (in *Interpreter) VisitUnaryExpr(e *ast.UnaryExpr) any {
	right := in.evaluate(e.Right)
	switch e.Operator.Type {
	case token.MINUS:
		n, ok := right.(float64)
		if !ok {
			panicRuntime(e.Operator.Line, "Operand must be a number.")
		}
		return -n
	case token.BANG:
		return !isTruthy(right)
	}
	panic("unreachable unary operator")
}

func (in *Interpreter) VisitBinaryExpr(e *ast.BinaryExpr) any {
	left := in.evaluate(e.Left)
	right := in.evaluate(e.Right)
	line := e.Operator.Line

	switch e.Operator.Type {
	case token.PLUS:
		if ln, ok := left.(float64); ok {
			if rn, ok := right.(float64); ok {
				return ln + rn
			}
		}
		if ls, ok := left.(string); ok {
			if rs, ok := right.(string); ok {
				return ls + rs
			}
		}
		panicRuntime(line, "Operands must be two numbers or two strings.")
	case token.MINUS:
		ln, rn := numberOperands(e.Operator.Line, left, right)
		return ln - rn
	case token.STAR:
		ln, rn := numberOperands(e.Operator.Line, left, right)
		return ln * rn
	case token.SLASH:
		ln, rn := numberOperands(e.Operator.Line, left, right)
		return ln / rn
	case token.GREATER:
		ln, rn := numberOperands(e.Operator.Line, left, right)
		return ln > rn
	case token.GREATER_EQUAL:
		ln, rn := numberOperands(e.Operator.Line, left, right)
		return ln >= rn
	case token.LESS:
		ln, rn := numberOperands(e.Operator.Line, left, right)
		return ln < rn
	case token.LESS_EQUAL:
		ln, rn := numberOperands(e.Operator.Line, left, right)
		return ln <= rn
	case token.EQUAL_EQUAL:
		return isEqual(left, right)
	case token.BANG_EQUAL:
		return !isEqual(left, right)
	}
	panic("unreachable binary operator")
}

func (in *Interpreter) VisitLogicalExpr(e *ast.LogicalExpr) any {
	left := in.evaluate(e.Left)
	if e.Operator.Type == token.OR {
		if isTruthy(left) {
			return left
		}
	} else {
		if !isTruthy(left) {
			return left
		}
	}
	return in.evaluate(e.Right)
}

func (in *Interpreter) VisitVariableExpr(e *ast.VariableExpr) any {
	return in.lookUpVariable(e.Name.Lexeme, e.ID(), e.Name.Line)
}

func (in *Interpreter) lookUpVariable(name string, nodeID int64, line int) any {
	if distance, ok := in.depths[nodeID]; ok {
		return in.environment.GetAt(distance, name)
	}
	value, err := in.globals.Get(name, line)
	if err != nil {
		panic(err)
	}
	return value
}

func (in *Interpreter) VisitAssignExpr(e *ast.AssignExpr) any {
	value := in.evaluate(e.Value)
	if distance, ok := in.depths[e.ID()]; ok {
		in.environment.AssignAt(distance, e.Name.Lexeme, value)
	} else if err := in.globals.Assign(e.Name.Lexeme, value, e.Name.Line); err != nil {
		panic(err)
	}
	return value
}

func (in *Interpreter) VisitCallExpr(e *ast.CallExpr) any {
	callee := in.evaluate(e.Callee)

	args := make([]any, len(e.Args))
	for i, a := range e.Args {
		args[i] = in.evaluate(a)
	}

	fn, ok := callee.(Callable)
	if !ok {
		panicRuntime(e.Paren.Line, "Can only call functions and classes.")
	}
	if err := checkArity(fn, args, e.Paren.Line); err != nil {
		panic(err)
	}
	result, err := fn.Call(in, args)
	if err != nil {
		panic(err)
	}
	return result
}

func (in *Interpreter) VisitGetExpr(e *ast.GetExpr) any {
	object := in.evaluate(e.Object)
	instance, ok := object.(*Instance)
	if !ok {
		panicRuntime(e.Name.Line, "Only instances have properties.")
	}
	value, err := instance.Get(e.Name.Lexeme, e.Name.Line)
	if err != nil {
		panic(err)
	}
	return value
}

func (in *Interpreter) VisitSetExpr(e *ast.SetExpr) any {
	object := in.evaluate(e.Object)
	instance, ok := object.(*Instance)
	if !ok {
		panicRuntime(e.Name.Line, "Only instances have fields.")
	}
	value := in.evaluate(e.Value)
	instance.Set(e.Name.Lexeme, value)
	return value
}

// VisitFunctionExpr evaluates an anonymous function literal to a
// UserFunction closed over the environment live at this point, exactly
// as VisitFunctionStmt does for a named declaration (spec.md §9's
// invariant that a function literal's captured environment is the one
// in effect at evaluation time, not at its call site).
func (in *Interpreter) VisitFunctionExpr(e *ast.FunctionExpr) any {
	return NewUserFunction("", e.Params, e.Body, in.environment, false)
}

func (in *Interpreter) VisitThisExpr(e *ast.ThisExpr) any {
	return in.lookUpVariable("this", e.ID(), e.Keyword.Line)
}

func (in *Interpreter) VisitSuperExpr(e *ast.SuperExpr) any {
	distance := in.depths[e.ID()]
	superclass := in.environment.GetAt(distance, "super").(*Class)
	instance := in.environment.GetAt(distance-1, "this").(*Instance)

	method := superclass.FindMethod(e.Method.Lexeme)
	if method == nil {
		panicRuntime(e.Method.Line, "Undefined property '"+e.Method.Lexeme+"'.")
	}
	return method.Bind(instance)
}

// --- value helpers ---

func numberOperands(line int, left, right any) (float64, float64) {
	ln, lok := left.(float64)
	rn, rok := right.(float64)
	if !lok || !rok {
		panicRuntime(line, "Operands must be numbers.")
	}
	return ln, rn
}

func isTruthy(v any) bool {
	if v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return true
}

func isEqual(a, b any) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a == b
}

// Stringify renders a runtime value the way Lox's `print` does: nil as
// "nil", an integral float without a fractional part, everything else
// via its natural Go formatting. This differs from the AST-dump number
// format in astprinter, which always keeps the decimal point.
func Stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return "nil"
	case float64:
		if val == float64(int64(val)) {
			return strconv.FormatInt(int64(val), 10)
		}
		return strconv.FormatFloat(val, 'g', -1, 64)
	case bool:
		if val {
			return "true"
		}
		return "false"
	case string:
		return val
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprintf("%v", val)
	}
}
