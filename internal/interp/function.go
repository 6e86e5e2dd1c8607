package interp

import "github.com/MuhammadZohaib07/lox-interpreter/internal/ast"

// Function is a user-defined function or method value: its declaration plus
// the environment it closed over when the `fun` statement (or method
// definition) ran.
type Function struct {
	Decl          *ast.Function
	Closure       *Environment
	IsInitializer bool
}

func (f *Function) String() string { return "<fn " + f.Decl.Name.Lexeme + ">" }
func (*Function) isValue()         {}
func (f *Function) Arity() int     { return len(f.Decl.Params) }

// Bind returns a copy of f whose closure has "this" bound to inst, used to
// turn an unbound method into a callable value on `obj.method`.
func (f *Function) Bind(inst *Instance) *Function {
	env := NewEnvironment(f.Closure)
	env.Define("this", inst)
	return &Function{Decl: f.Decl, Closure: env, IsInitializer: f.IsInitializer}
}

// Call runs the function body in a fresh environment parented at the
// closure, with parameters bound to args. An initializer always yields the
// bound instance regardless of what (if anything) its body returns.
func (f *Function) Call(it *Interpreter, args []Value) (Value, error) {
	env := NewEnvironment(f.Closure)
	for i, p := range f.Decl.Params {
		env.Define(p.Lexeme, args[i])
	}

	result, err := it.executeBlock(f.Decl.Body, env)
	if err != nil {
		return nil, err
	}

	if f.IsInitializer {
		return f.Closure.GetAt(0, "this")
	}
	if result.kind == ctrlReturn {
		return result.value, nil
	}
	return NilValue, nil
}
