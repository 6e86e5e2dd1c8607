package ast

import "github.com/MuhammadZohaib07/lox-interpreter/internal/token"

// Block is `{ decls... }`.
type Block struct {
	stmtBase
	Stmts []Stmt
}

func NewBlock(stmts []Stmt) *Block {
	return &Block{Stmts: stmts}
}

// Function is both a `fun name(params) { body }` declaration and a class
// method: `methods` in Class is an ordered list of these.
type Function struct {
	stmtBase
	Name   token.Token
	Params []token.Token
	Body   []Stmt
}

func NewFunction(name token.Token, params []token.Token, body []Stmt) *Function {
	return &Function{Name: name, Params: params, Body: body}
}

// Class is `class Name (< Superclass)? { methods* }`.
type Class struct {
	stmtBase
	Name       token.Token
	Superclass *Variable // nil if no "< Superclass" clause
	Methods    []*Function
}

func NewClass(name token.Token, superclass *Variable, methods []*Function) *Class {
	return &Class{Name: name, Superclass: superclass, Methods: methods}
}

// Expression is an expression evaluated for its side effects.
type Expression struct {
	stmtBase
	Expr Expr
}

func NewExpression(expr Expr) *Expression {
	return &Expression{Expr: expr}
}

// If is `if (cond) then (else else)?`.
type If struct {
	stmtBase
	Cond Expr
	Then Stmt
	Else Stmt // nil if absent
}

func NewIf(cond Expr, then, els Stmt) *If {
	return &If{Cond: cond, Then: then, Else: els}
}

// Print is `print expr;`.
type Print struct {
	stmtBase
	Expr Expr
}

func NewPrint(expr Expr) *Print {
	return &Print{Expr: expr}
}

// Return is `return (value)?;`. Keyword anchors "return outside function"
// and "return with value in initializer" diagnostics.
type Return struct {
	stmtBase
	Keyword token.Token
	Value   Expr // nil if bare `return;`
}

func NewReturn(keyword token.Token, value Expr) *Return {
	return &Return{Keyword: keyword, Value: value}
}

// Var is `var name (= init)?;`.
type Var struct {
	stmtBase
	Name token.Token
	Init Expr // nil if absent
}

func NewVar(name token.Token, init Expr) *Var {
	return &Var{Name: name, Init: init}
}

// While is `while (cond) body`. The parser also builds While nodes to
// desugar `for` loops (see parser.forStatement).
type While struct {
	stmtBase
	Cond Expr
	Body Stmt
}

func NewWhile(cond Expr, body Stmt) *While {
	return &While{Cond: cond, Body: body}
}

// Input is `input (promptExpr) name;`: evaluate promptExpr, invoke the host
// input native with it, and bind the result to name in the current scope.
type Input struct {
	stmtBase
	Name   token.Token
	Prompt Expr
}

func NewInput(name token.Token, prompt Expr) *Input {
	return &Input{Name: name, Prompt: prompt}
}
