// Package interp implements the tree-walking evaluator: the runtime value
// universe (Value, Callable, Class, Instance), the Environment binding
// chain, and the Interpreter that executes an already-resolved program.
package interp

import (
	"fmt"
	"io"
	"time"

	"github.com/MuhammadZohaib07/lox-interpreter/internal/ast"
	"github.com/MuhammadZohaib07/lox-interpreter/internal/resolver"
	"github.com/MuhammadZohaib07/lox-interpreter/internal/token"
)

// HostInput is the host's implementation of the "input" native: given the
// prompt text, write it to the host's output and read and return one line
// of input (without its trailing newline).
type HostInput func(prompt string) (string, error)

// Interpreter executes a resolved program. One Interpreter is built per
// Run and reused across a REPL session, so that globals and top-level
// variables persist across consecutive inputs.
type Interpreter struct {
	globals   *Environment
	env       *Environment
	locals    resolver.Resolution
	out       io.Writer
	hostInput HostInput
	startTime time.Time
	trace     io.Writer
}

// SetTrace makes Run print each top-level statement's parenthesized AST to w
// immediately before executing it. A nil w (the default) disables tracing.
func (it *Interpreter) SetTrace(w io.Writer) {
	it.trace = w
}

// New builds an Interpreter with its globals (clock, input) pre-defined.
// out receives everything a `print` statement writes; hostInput backs the
// "input" native and the `input` statement.
func New(out io.Writer, hostInput HostInput) *Interpreter {
	it := &Interpreter{
		globals:   NewEnvironment(nil),
		out:       out,
		hostInput: hostInput,
		startTime: time.Now(),
	}
	it.env = it.globals
	it.defineNatives()
	return it
}

// Run executes a resolved program's top-level statements against this
// Interpreter's environment, in order, stopping at the first runtime error.
func (it *Interpreter) Run(stmts []ast.Stmt, locals resolver.Resolution) error {
	it.locals = locals
	for _, s := range stmts {
		if it.trace != nil {
			fmt.Fprintln(it.trace, ast.PrintStmt(s))
		}
		if _, err := it.execute(s); err != nil {
			return err
		}
	}
	return nil
}

func (it *Interpreter) execute(s ast.Stmt) (control, error) {
	switch n := s.(type) {
	case *ast.Block:
		return it.executeBlock(n.Stmts, NewEnvironment(it.env))

	case *ast.Class:
		return normalControl, it.executeClass(n)

	case *ast.Expression:
		_, err := it.evaluate(n.Expr)
		return normalControl, err

	case *ast.Function:
		fn := &Function{Decl: n, Closure: it.env}
		it.env.Define(n.Name.Lexeme, fn)
		return normalControl, nil

	case *ast.If:
		cond, err := it.evaluate(n.Cond)
		if err != nil {
			return normalControl, err
		}
		if isTruthy(cond) {
			return it.execute(n.Then)
		}
		if n.Else != nil {
			return it.execute(n.Else)
		}
		return normalControl, nil

	case *ast.Print:
		v, err := it.evaluate(n.Expr)
		if err != nil {
			return normalControl, err
		}
		fmt.Fprintln(it.out, stringify(v))
		return normalControl, nil

	case *ast.Return:
		var v Value = NilValue
		if n.Value != nil {
			var err error
			v, err = it.evaluate(n.Value)
			if err != nil {
				return normalControl, err
			}
		}
		return control{kind: ctrlReturn, value: v}, nil

	case *ast.Var:
		var v Value = NilValue
		if n.Init != nil {
			var err error
			v, err = it.evaluate(n.Init)
			if err != nil {
				return normalControl, err
			}
		}
		it.env.Define(n.Name.Lexeme, v)
		return normalControl, nil

	case *ast.While:
		for {
			cond, err := it.evaluate(n.Cond)
			if err != nil {
				return normalControl, err
			}
			if !isTruthy(cond) {
				return normalControl, nil
			}
			result, err := it.execute(n.Body)
			if err != nil {
				return normalControl, err
			}
			if result.kind == ctrlReturn {
				return result, nil
			}
		}

	case *ast.Input:
		return normalControl, it.executeInput(n)

	default:
		return normalControl, fmt.Errorf("interp: unhandled statement %T", s)
	}
}

// executeBlock runs stmts in env, restoring the previous environment on the
// way out (including on error, so a runtime error inside a block doesn't
// leave the interpreter's current scope pointing into a dead block).
func (it *Interpreter) executeBlock(stmts []ast.Stmt, env *Environment) (control, error) {
	previous := it.env
	it.env = env
	defer func() { it.env = previous }()

	for _, s := range stmts {
		result, err := it.execute(s)
		if err != nil {
			return normalControl, err
		}
		if result.kind == ctrlReturn {
			return result, nil
		}
	}
	return normalControl, nil
}

func (it *Interpreter) executeClass(c *ast.Class) error {
	var super *Class
	if c.Superclass != nil {
		v, err := it.evaluate(c.Superclass)
		if err != nil {
			return err
		}
		sc, ok := v.(*Class)
		if !ok {
			return newRuntimeError(c.Superclass.Name.Line, "Superclass must be a class.")
		}
		super = sc
	}

	it.env.Define(c.Name.Lexeme, NilValue)

	methodEnv := it.env
	if super != nil {
		methodEnv = NewEnvironment(it.env)
		methodEnv.Define("super", super)
	}

	methods := make(map[string]*Function, len(c.Methods))
	order := make([]string, 0, len(c.Methods))
	for _, m := range c.Methods {
		fn := &Function{Decl: m, Closure: methodEnv, IsInitializer: m.Name.Lexeme == "init"}
		methods[m.Name.Lexeme] = fn
		order = append(order, m.Name.Lexeme)
	}

	class := &Class{Name: c.Name.Lexeme, Super: super, Methods: methods, MethodSeq: order}
	return it.env.Assign(c.Name.Lexeme, class)
}

func (it *Interpreter) executeInput(n *ast.Input) error {
	prompt, err := it.evaluate(n.Prompt)
	if err != nil {
		return err
	}
	native, err := it.globals.Get("input")
	if err != nil {
		return err
	}
	line, callErr := native.(Callable).Call(it, []Value{prompt})
	if callErr != nil {
		return callErr
	}
	it.env.Define(n.Name.Lexeme, line)
	return nil
}

func (it *Interpreter) evaluate(e ast.Expr) (Value, error) {
	switch n := e.(type) {
	case *ast.Assign:
		v, err := it.evaluate(n.Value)
		if err != nil {
			return nil, err
		}
		if distance, ok := it.locals[n.ExprID()]; ok {
			it.env.AssignAt(distance, n.Name.Lexeme, v)
		} else if err := it.globals.Assign(n.Name.Lexeme, v); err != nil {
			return nil, newRuntimeError(n.Name.Line, "%s", err.Error())
		}
		return v, nil

	case *ast.Binary:
		return it.evaluateBinary(n)

	case *ast.Call:
		return it.evaluateCall(n)

	case *ast.Get:
		obj, err := it.evaluate(n.Object)
		if err != nil {
			return nil, err
		}
		inst, ok := obj.(*Instance)
		if !ok {
			return nil, newRuntimeError(n.Name.Line, "Only instances have properties.")
		}
		v, ok := inst.Get(n.Name.Lexeme)
		if !ok {
			return nil, newRuntimeError(n.Name.Line, "Undefined property '%s'.", n.Name.Lexeme)
		}
		return v, nil

	case *ast.Grouping:
		return it.evaluate(n.Inner)

	case *ast.Literal:
		return literalValue(n), nil

	case *ast.Logical:
		left, err := it.evaluate(n.Left)
		if err != nil {
			return nil, err
		}
		if n.Op.Kind == token.Or {
			if isTruthy(left) {
				return left, nil
			}
		} else if !isTruthy(left) {
			return left, nil
		}
		return it.evaluate(n.Right)

	case *ast.Set:
		obj, err := it.evaluate(n.Object)
		if err != nil {
			return nil, err
		}
		inst, ok := obj.(*Instance)
		if !ok {
			return nil, newRuntimeError(n.Name.Line, "Only instances have fields.")
		}
		v, err := it.evaluate(n.Value)
		if err != nil {
			return nil, err
		}
		inst.Set(n.Name.Lexeme, v)
		return v, nil

	case *ast.Super:
		return it.evaluateSuper(n)

	case *ast.This:
		return it.lookupVariable(n.Keyword, n.ExprID())

	case *ast.Unary:
		return it.evaluateUnary(n)

	case *ast.Variable:
		return it.lookupVariable(n.Name, n.ExprID())

	default:
		return nil, fmt.Errorf("interp: unhandled expression %T", e)
	}
}

func (it *Interpreter) lookupVariable(name token.Token, id ast.ID) (Value, error) {
	if distance, ok := it.locals[id]; ok {
		return it.env.GetAt(distance, name.Lexeme)
	}
	v, err := it.globals.Get(name.Lexeme)
	if err != nil {
		return nil, newRuntimeError(name.Line, "%s", err.Error())
	}
	return v, nil
}

func (it *Interpreter) evaluateUnary(n *ast.Unary) (Value, error) {
	right, err := it.evaluate(n.Right)
	if err != nil {
		return nil, err
	}
	switch n.Op.Kind {
	case token.Bang:
		return Bool(!isTruthy(right)), nil
	case token.Minus:
		num, ok := right.(Number)
		if !ok {
			return nil, newRuntimeError(n.Op.Line, "Operand must be a number.")
		}
		return Number{Val: -num.Val, IsFloat: num.IsFloat}, nil
	default:
		return nil, newRuntimeError(n.Op.Line, "Unknown unary operator '%s'.", n.Op.Lexeme)
	}
}

func (it *Interpreter) evaluateBinary(n *ast.Binary) (Value, error) {
	left, err := it.evaluate(n.Left)
	if err != nil {
		return nil, err
	}
	right, err := it.evaluate(n.Right)
	if err != nil {
		return nil, err
	}

	switch n.Op.Kind {
	case token.EqualEqual:
		return Bool(valuesEqual(left, right)), nil
	case token.BangEqual:
		return Bool(!valuesEqual(left, right)), nil

	case token.Plus:
		ln, lok := left.(Number)
		rn, rok := right.(Number)
		if lok && rok {
			return numericAdd(ln, rn), nil
		}
		ls, lsok := left.(Str)
		rs, rsok := right.(Str)
		if lsok || rsok {
			l := stringOperand(left, ls, lsok)
			r := stringOperand(right, rs, rsok)
			return Str(l + r), nil
		}
		return nil, newRuntimeError(n.Op.Line, "Operands must be two numbers or two strings.")

	case token.Minus:
		ln, rn, err := numberOperands(left, right, n.Op.Line)
		if err != nil {
			return nil, err
		}
		return numericSub(ln, rn), nil

	case token.Star:
		ln, rn, err := numberOperands(left, right, n.Op.Line)
		if err != nil {
			return nil, err
		}
		return numericMul(ln, rn), nil

	case token.Slash:
		ln, rn, err := numberOperands(left, right, n.Op.Line)
		if err != nil {
			return nil, err
		}
		if rn.Val == 0 {
			return nil, newRuntimeError(n.Op.Line, "Division by 0 is not allowed.")
		}
		return Number{Val: ln.Val / rn.Val, IsFloat: true}, nil

	case token.Greater:
		ln, rn, err := numberOperands(left, right, n.Op.Line)
		if err != nil {
			return nil, err
		}
		return Bool(ln.Val > rn.Val), nil
	case token.GreaterEqual:
		ln, rn, err := numberOperands(left, right, n.Op.Line)
		if err != nil {
			return nil, err
		}
		return Bool(ln.Val >= rn.Val), nil
	case token.Less:
		ln, rn, err := numberOperands(left, right, n.Op.Line)
		if err != nil {
			return nil, err
		}
		return Bool(ln.Val < rn.Val), nil
	case token.LessEqual:
		ln, rn, err := numberOperands(left, right, n.Op.Line)
		if err != nil {
			return nil, err
		}
		return Bool(ln.Val <= rn.Val), nil

	default:
		return nil, newRuntimeError(n.Op.Line, "Unknown binary operator '%s'.", n.Op.Lexeme)
	}
}

func numberOperands(left, right Value, line int) (Number, Number, error) {
	ln, lok := left.(Number)
	rn, rok := right.(Number)
	if !lok || !rok {
		return Number{}, Number{}, newRuntimeError(line, "Operands must be numbers.")
	}
	return ln, rn, nil
}

func numericAdd(l, r Number) Number {
	return Number{Val: l.Val + r.Val, IsFloat: l.IsFloat || r.IsFloat}
}
func numericSub(l, r Number) Number {
	return Number{Val: l.Val - r.Val, IsFloat: l.IsFloat || r.IsFloat}
}
func numericMul(l, r Number) Number {
	return Number{Val: l.Val * r.Val, IsFloat: l.IsFloat || r.IsFloat}
}

func stringOperand(v Value, s Str, isStr bool) string {
	if isStr {
		return string(s)
	}
	return stringify(v)
}

func (it *Interpreter) evaluateCall(n *ast.Call) (Value, error) {
	calleeVal, err := it.evaluate(n.Callee)
	if err != nil {
		return nil, err
	}
	callee, ok := calleeVal.(Callable)
	if !ok {
		return nil, newRuntimeError(n.CloseParen.Line, "Can only call functions and classes.")
	}

	args := make([]Value, len(n.Args))
	for i, a := range n.Args {
		v, err := it.evaluate(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	if len(args) != callee.Arity() {
		return nil, newRuntimeError(n.CloseParen.Line, "Expected %d arguments but got %d.", callee.Arity(), len(args))
	}
	return callee.Call(it, args)
}

func (it *Interpreter) evaluateSuper(n *ast.Super) (Value, error) {
	distance, ok := it.locals[n.ExprID()]
	if !ok {
		return nil, newRuntimeError(n.Keyword.Line, "Unresolved variable 'super'.")
	}
	superVal, err := it.env.GetAt(distance, "super")
	if err != nil {
		return nil, err
	}
	super := superVal.(*Class)

	instVal, err := it.env.GetAt(distance-1, "this")
	if err != nil {
		return nil, err
	}
	inst := instVal.(*Instance)

	method := super.FindMethod(n.Method.Lexeme)
	if method == nil {
		return nil, newRuntimeError(n.Method.Line, "Undefined property '%s'.", n.Method.Lexeme)
	}
	return method.Bind(inst), nil
}

func literalValue(l *ast.Literal) Value {
	switch l.Kind {
	case ast.LiteralNil:
		return NilValue
	case ast.LiteralBool:
		return Bool(l.Bool)
	case ast.LiteralNumber:
		return Number{Val: l.Number, IsFloat: l.IsFloat}
	case ast.LiteralString:
		return Str(l.Str)
	default:
		return NilValue
	}
}

func isTruthy(v Value) bool {
	switch n := v.(type) {
	case Nil:
		return false
	case Bool:
		return bool(n)
	default:
		return true
	}
}

func valuesEqual(a, b Value) bool {
	_, aNil := a.(Nil)
	_, bNil := b.(Nil)
	if aNil && bNil {
		return true
	}
	if aNil || bNil {
		return false
	}
	switch av := a.(type) {
	case Bool:
		bv, ok := b.(Bool)
		return ok && av == bv
	case Number:
		bv, ok := b.(Number)
		return ok && av.Val == bv.Val
	case Str:
		bv, ok := b.(Str)
		return ok && av == bv
	default:
		return a == b
	}
}

func stringify(v Value) string {
	return v.String()
}
