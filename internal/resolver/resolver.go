// Package resolver implements the static analysis pass that computes, for
// every variable-like expression, the number of enclosing environments
// between its use site and its defining scope, and enforces the Language's
// static rules (this/super placement, return placement, self-inheriting
// classes, duplicate locals, reading a local in its own initializer).
package resolver

import (
	"fmt"

	"github.com/MuhammadZohaib07/lox-interpreter/internal/ast"
	"github.com/MuhammadZohaib07/lox-interpreter/internal/token"
)

// Error is a static error recorded during resolution.
type Error struct {
	Line    int
	Where   string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("[line %d] Error%s: %s", e.Line, e.Where, e.Message)
}

// Resolution is the side table produced by Resolve: expression identity to
// scope distance. An expression with no entry reads/writes a global.
type Resolution map[ast.ID]int

type functionType int

const (
	funcNone functionType = iota
	funcFunction
	funcInitializer
	funcMethod
)

type classType int

const (
	classNone classType = iota
	classClass
	classSubclass
)

type scope map[string]bool // name -> defined (false while only declared)

// Resolver walks an already-parsed program once, before any evaluation.
type Resolver struct {
	scopes      []scope
	locals      Resolution
	currentFunc functionType
	currentCls  classType
	errs        []*Error
}

func New() *Resolver {
	return &Resolver{locals: make(Resolution)}
}

// Resolve runs the pass over a whole program (a list of top-level
// statements) and returns the resolution side table plus any static errors.
// Resolution is deterministic and side-effect-free on the AST, so running it
// twice over the same tree yields the same table.
func Resolve(stmts []ast.Stmt) (Resolution, []*Error) {
	r := New()
	r.resolveStmts(stmts)
	return r.locals, r.errs
}

func (r *Resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *Resolver) resolveStmt(s ast.Stmt) {
	switch n := s.(type) {
	case *ast.Block:
		r.beginScope()
		r.resolveStmts(n.Stmts)
		r.endScope()

	case *ast.Class:
		r.resolveClass(n)

	case *ast.Expression:
		r.resolveExpr(n.Expr)

	case *ast.Function:
		r.declare(n.Name)
		r.define(n.Name)
		r.resolveFunction(n, funcFunction)

	case *ast.If:
		r.resolveExpr(n.Cond)
		r.resolveStmt(n.Then)
		if n.Else != nil {
			r.resolveStmt(n.Else)
		}

	case *ast.Print:
		r.resolveExpr(n.Expr)

	case *ast.Return:
		if r.currentFunc == funcNone {
			r.errorAt(n.Keyword, "Can't return from top-level code.")
		}
		if n.Value != nil {
			if r.currentFunc == funcInitializer {
				r.errorAt(n.Keyword, "Can't return a value from an initializer.")
			}
			r.resolveExpr(n.Value)
		}

	case *ast.Var:
		r.declare(n.Name)
		if n.Init != nil {
			r.resolveExpr(n.Init)
		}
		r.define(n.Name)

	case *ast.While:
		r.resolveExpr(n.Cond)
		r.resolveStmt(n.Body)

	case *ast.Input:
		r.resolveExpr(n.Prompt)
		r.declare(n.Name)
		r.define(n.Name)

	default:
		panic(fmt.Sprintf("resolver: unhandled statement %T", s))
	}
}

func (r *Resolver) resolveClass(c *ast.Class) {
	enclosingCls := r.currentCls
	r.currentCls = classClass
	defer func() { r.currentCls = enclosingCls }()

	r.declare(c.Name)
	r.define(c.Name)

	if c.Superclass != nil {
		if c.Superclass.Name.Lexeme == c.Name.Lexeme {
			r.errorAt(c.Superclass.Name, "A class can't inherit from itself.")
		}
		r.currentCls = classSubclass
		r.resolveExpr(c.Superclass)

		r.beginScope()
		r.scopes[len(r.scopes)-1]["super"] = true
		defer r.endScope()
	}

	r.beginScope()
	r.scopes[len(r.scopes)-1]["this"] = true
	defer r.endScope()

	for _, m := range c.Methods {
		ft := funcMethod
		if m.Name.Lexeme == "init" {
			ft = funcInitializer
		}
		r.resolveFunction(m, ft)
	}
}

func (r *Resolver) resolveFunction(fn *ast.Function, ft functionType) {
	enclosingFunc := r.currentFunc
	r.currentFunc = ft
	defer func() { r.currentFunc = enclosingFunc }()

	r.beginScope()
	defer r.endScope()

	for _, p := range fn.Params {
		r.declare(p)
		r.define(p)
	}
	r.resolveStmts(fn.Body)
}

func (r *Resolver) resolveExpr(e ast.Expr) {
	switch n := e.(type) {
	case *ast.Assign:
		r.resolveExpr(n.Value)
		r.resolveLocal(n, n.Name.Lexeme)

	case *ast.Binary:
		r.resolveExpr(n.Left)
		r.resolveExpr(n.Right)

	case *ast.Call:
		r.resolveExpr(n.Callee)
		for _, a := range n.Args {
			r.resolveExpr(a)
		}

	case *ast.Get:
		r.resolveExpr(n.Object)

	case *ast.Grouping:
		r.resolveExpr(n.Inner)

	case *ast.Literal:
		// nothing to resolve

	case *ast.Logical:
		r.resolveExpr(n.Left)
		r.resolveExpr(n.Right)

	case *ast.Set:
		r.resolveExpr(n.Value)
		r.resolveExpr(n.Object)

	case *ast.Super:
		if r.currentCls == classNone {
			r.errorAt(n.Keyword, "Can't use 'super' outside of a class.")
		} else if r.currentCls != classSubclass {
			r.errorAt(n.Keyword, "Can't use 'super' in a class with no superclass.")
		}
		r.resolveLocal(n, "super")

	case *ast.This:
		if r.currentCls == classNone {
			r.errorAt(n.Keyword, "Can't use 'this' outside of a class.")
		}
		r.resolveLocal(n, "this")

	case *ast.Unary:
		r.resolveExpr(n.Right)

	case *ast.Variable:
		if len(r.scopes) > 0 {
			if defined, declared := r.scopes[len(r.scopes)-1][n.Name.Lexeme]; declared && !defined {
				r.errorAt(n.Name, "Can't read local variable in its own initializer.")
			}
		}
		r.resolveLocal(n, n.Name.Lexeme)

	default:
		panic(fmt.Sprintf("resolver: unhandled expression %T", e))
	}
}

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, scope{})
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *Resolver) declare(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	s := r.scopes[len(r.scopes)-1]
	if _, exists := s[name.Lexeme]; exists {
		r.errorAt(name, "Already a variable with this name in this scope.")
	}
	s[name.Lexeme] = false
}

func (r *Resolver) define(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = true
}

func (r *Resolver) resolveLocal(expr ast.Expr, name string) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name]; ok {
			r.locals[expr.ExprID()] = len(r.scopes) - 1 - i
			return
		}
	}
	// not found in any local scope: treated as global, no side-table entry
}

func (r *Resolver) errorAt(tok token.Token, message string) {
	where := " at '" + tok.Lexeme + "'"
	if tok.Kind == token.EOF {
		where = " at end"
	}
	r.errs = append(r.errs, &Error{Line: tok.Line, Where: where, Message: message})
}
