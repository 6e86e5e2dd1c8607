package interp

import "github.com/dolthub/swiss"

// Environment is a lexical binding scope: a flat table of names to values,
// chained to an enclosing scope. Block, function-call, and method-bind
// boundaries each introduce a fresh Environment.
type Environment struct {
	enclosing *Environment
	values    *swiss.Map[string, Value]
}

func NewEnvironment(enclosing *Environment) *Environment {
	return &Environment{enclosing: enclosing, values: swiss.NewMap[string, Value](8)}
}

// Define binds name in this scope, shadowing any binding of the same name
// in an enclosing scope. Re-defining an existing name in the same scope is
// allowed (the resolver only rejects that for locals, not globals).
func (e *Environment) Define(name string, v Value) {
	e.values.Put(name, v)
}

// undefinedVariableError is returned by Get/Assign when name is bound
// nowhere in the chain. The evaluator attaches a source line when it wraps
// this into a RuntimeError.
type undefinedVariableError struct{ Name string }

func (e *undefinedVariableError) Error() string {
	return "Undefined variable '" + e.Name + "'."
}

// Get looks up name, walking outward through enclosing scopes.
func (e *Environment) Get(name string) (Value, error) {
	if v, ok := e.values.Get(name); ok {
		return v, nil
	}
	if e.enclosing != nil {
		return e.enclosing.Get(name)
	}
	return nil, &undefinedVariableError{Name: name}
}

// Assign rebinds an existing name, walking outward, without creating one.
func (e *Environment) Assign(name string, v Value) error {
	if _, ok := e.values.Get(name); ok {
		e.values.Put(name, v)
		return nil
	}
	if e.enclosing != nil {
		return e.enclosing.Assign(name, v)
	}
	return &undefinedVariableError{Name: name}
}

func (e *Environment) ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		env = env.enclosing
	}
	return env
}

// GetAt reads name from the scope exactly distance hops out, as computed by
// the resolver. A miss here means the resolver and the environment chain
// disagree, which is a bug in the interpreter rather than a runtime error.
func (e *Environment) GetAt(distance int, name string) (Value, error) {
	env := e.ancestor(distance)
	v, ok := env.values.Get(name)
	if !ok {
		return nil, &undefinedVariableError{Name: name}
	}
	return v, nil
}

func (e *Environment) AssignAt(distance int, name string, v Value) {
	e.ancestor(distance).values.Put(name, v)
}
