// Package interp evaluates a resolved ast.Stmt tree: the Environment
// chain here is grounded on the teacher's scope.Scope
// (akashmaji946/go-mix/scope/scope.go) — a map of bindings per lexical
// level linked to its enclosing parent, with Assign walking the chain
// to mutate the binding in place rather than shadowing it. What's new
// relative to the teacher is that variable lookups here are depth-aware:
// the resolver has already computed how many parents to skip, so
// GetAt/AssignAt jump straight to the right Environment instead of
// searching name-by-name, which is what keeps two different variables
// named the same thing in nested scopes from ever being confused.
package interp

import "github.com/akashmaji946/golox/loxerr"

// Environment is one lexical scope's variable bindings.
type Environment struct {
	values    map[string]any
	enclosing *Environment
}

// NewEnvironment creates a top-level (global) environment.
func NewEnvironment() *Environment {
	return &Environment{values: make(map[string]any)}
}

// NewChildEnvironment creates a scope nested inside enclosing.
func NewChildEnvironment(enclosing *Environment) *Environment {
	return &Environment{values: make(map[string]any), enclosing: enclosing}
}

// Define binds name in this scope, shadowing any binding of the same
// name in an enclosing scope. Lox allows redefining a name within the
// same scope (only the resolver's local-block check forbids it).
func (e *Environment) Define(name string, value any) {
	e.values[name] = value
}

// Get looks up name by walking the enclosing chain; used for globals,
// which the resolver never puts in the depth table.
func (e *Environment) Get(name string, line int) (any, error) {
	if v, ok := e.values[name]; ok {
		return v, nil
	}
	if e.enclosing != nil {
		return e.enclosing.Get(name, line)
	}
	return nil, &loxerr.RuntimeError{Message: "Undefined variable '" + name + "'.", Line: line}
}

// Assign mutates an existing binding in place, searching outward; it
// never creates a new binding, matching Lox's distinction between
// declaration (var) and assignment (=).
func (e *Environment) Assign(name string, value any, line int) error {
	if _, ok := e.values[name]; ok {
		e.values[name] = value
		return nil
	}
	if e.enclosing != nil {
		return e.enclosing.Assign(name, value, line)
	}
	return &loxerr.RuntimeError{Message: "Undefined variable '" + name + "'.", Line: line}
}

// Ancestor walks up distance enclosing scopes.
func (e *Environment) Ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		env = env.enclosing
	}
	return env
}

// GetAt reads name at exactly distance scopes up, per the resolver's
// computed depth.
func (e *Environment) GetAt(distance int, name string) any {
	return e.Ancestor(distance).values[name]
}

// AssignAt mutates name at exactly distance scopes up.
func (e *Environment) AssignAt(distance int, name string, value any) {
	e.Ancestor(distance).values[name] = value
}
