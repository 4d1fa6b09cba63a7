// Callable covers every value Lox can invoke with call syntax: native
// builtins, user-defined functions and closures, and classes (whose
// call constructs an instance). Grounded on the teacher's
// function.Function plus Evaluator.CallFunction
// (akashmaji946/go-mix/eval/evaluator.go), generalized so the
// interpreter dispatches through one interface instead of switching on
// concrete node type at the call site.
package interp

import (
	"strconv"
	"time"

	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/loxerr"
	"github.com/akashmaji946/golox/token"
)

// Callable is any value that call syntax `f(args...)` can invoke.
type Callable interface {
	Arity() int
	Call(in *Interpreter, args []any) (any, error)
	String() string
}

// NativeFunction wraps a Go function as a Lox builtin.
type NativeFunction struct {
	name  string
	arity int
	fn    func(in *Interpreter, args []any) (any, error)
}

func (n *NativeFunction) Arity() int { return n.arity }

func (n *NativeFunction) Call(in *Interpreter, args []any) (any, error) {
	return n.fn(in, args)
}

func (n *NativeFunction) String() string { return "<native fn " + n.name + ">" }

// clockFn implements the single builtin spec.md §6.5 names: `clock()`
// returns the number of seconds since the Unix epoch as a float.
var clockFn = &NativeFunction{
	name:  "clock",
	arity: 0,
	fn: func(in *Interpreter, args []any) (any, error) {
		return float64(time.Now().UnixNano()) / 1e9, nil
	},
}

// UserFunction is a Lox `fun` declaration, method, or anonymous function
// expression, closed over the environment it was defined in. name is
// empty for an anonymous function expression.
type UserFunction struct {
	name          string
	params        []token.Token
	body          []ast.Stmt
	closure       *Environment
	isInitializer bool
}

func NewUserFunction(name string, params []token.Token, body []ast.Stmt, closure *Environment, isInitializer bool) *UserFunction {
	return &UserFunction{name: name, params: params, body: body, closure: closure, isInitializer: isInitializer}
}

func (f *UserFunction) Arity() int { return len(f.params) }

func (f *UserFunction) String() string {
	if f.name == "" {
		return "<fn>"
	}
	return "<fn " + f.name + ">"
}

// Bind returns a copy of f whose closure wraps a fresh environment
// binding `this` to instance, so the same method body works for every
// instance of its class without mutating shared state.
func (f *UserFunction) Bind(instance *Instance) *UserFunction {
	env := NewChildEnvironment(f.closure)
	env.Define("this", instance)
	return NewUserFunction(f.name, f.params, f.body, env, f.isInitializer)
}

func (f *UserFunction) Call(in *Interpreter, args []any) (result any, err error) {
	env := NewChildEnvironment(f.closure)
	for i, param := range f.params {
		env.Define(param.Lexeme, args[i])
	}

	ret, err := in.executeBlockCatchingReturn(f.body, env)
	if err != nil {
		return nil, err
	}
	if f.isInitializer {
		return f.closure.GetAt(0, "this"), nil
	}
	if ret != nil {
		return ret.value, nil
	}
	return nil, nil
}

// checkArity reports the exact message spec.md §4.4 names when a call
// site's argument count doesn't match the callee's arity.
func checkArity(callee Callable, args []any, line int) error {
	if len(args) != callee.Arity() {
		return &loxerr.RuntimeError{
			Message: arityMessage(callee.Arity(), len(args)),
			Line:    line,
		}
	}
	return nil
}

func arityMessage(want, got int) string {
	return "Expected " + strconv.Itoa(want) + " arguments but got " + strconv.Itoa(got) + "."
}
