// Class and Instance model Lox's single-inheritance object model,
// grounded on the teacher's objects.GoMixStruct/GoMixObjectInstance
// (akashmaji946/go-mix/objects/struct.go) — a name, a method table, and
// a field map per instance — generalized with a Superclass link so
// method lookup can fall through to an ancestor the way
// original_source/src/class.rs's Class::find_method chain does.
package interp

import "github.com/akashmaji946/golox/loxerr"

// Class is a Lox class value. Calling it constructs an Instance.
type Class struct {
	Name       string
	Superclass *Class
	Methods    map[string]*UserFunction
}

func NewClass(name string, superclass *Class, methods map[string]*UserFunction) *Class {
	return &Class{Name: name, Superclass: superclass, Methods: methods}
}

func (c *Class) String() string { return c.Name }

// FindMethod looks up name on c, then its ancestors.
func (c *Class) FindMethod(name string) *UserFunction {
	if m, ok := c.Methods[name]; ok {
		return m
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil
}

func (c *Class) Arity() int {
	if init := c.FindMethod("init"); init != nil {
		return init.Arity()
	}
	return 0
}

func (c *Class) Call(in *Interpreter, args []any) (any, error) {
	instance := NewInstance(c)
	if init := c.FindMethod("init"); init != nil {
		if _, err := init.Bind(instance).Call(in, args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

// Instance is a single object: its class plus its own field bindings.
type Instance struct {
	class  *Class
	fields map[string]any
}

func NewInstance(class *Class) *Instance {
	return &Instance{class: class, fields: make(map[string]any)}
}

func (i *Instance) String() string { return i.class.Name + " instance" }

// Get reads a field first, then falls back to a bound method.
func (i *Instance) Get(name string, line int) (any, error) {
	if v, ok := i.fields[name]; ok {
		return v, nil
	}
	if method := i.class.FindMethod(name); method != nil {
		return method.Bind(i), nil
	}
	return nil, &loxerr.RuntimeError{Message: "Undefined property '" + name + "'.", Line: line}
}

// Set always writes to the instance's own field map; Lox has no
// declared-field list, fields spring into existence on first write.
func (i *Instance) Set(name string, value any) {
	i.fields[name] = value
}
