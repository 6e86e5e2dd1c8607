package ast

import "github.com/MuhammadZohaib07/lox-interpreter/internal/token"

// Assign is `name = value`.
type Assign struct {
	exprBase
	Name  token.Token
	Value Expr
}

func NewAssign(name token.Token, value Expr) *Assign {
	return &Assign{exprBase: newExprBase(), Name: name, Value: value}
}

// Binary is `left op right` for arithmetic, comparison and equality operators.
type Binary struct {
	exprBase
	Left  Expr
	Op    token.Token
	Right Expr
}

func NewBinary(left Expr, op token.Token, right Expr) *Binary {
	return &Binary{exprBase: newExprBase(), Left: left, Op: op, Right: right}
}

// Call is `callee(args...)`. CloseParen is kept for error reporting (its
// line anchors "arity mismatch" and "can only call" diagnostics).
type Call struct {
	exprBase
	Callee     Expr
	CloseParen token.Token
	Args       []Expr
}

func NewCall(callee Expr, closeParen token.Token, args []Expr) *Call {
	return &Call{exprBase: newExprBase(), Callee: callee, CloseParen: closeParen, Args: args}
}

// Get is `object.name`, a property or method read.
type Get struct {
	exprBase
	Object Expr
	Name   token.Token
}

func NewGet(object Expr, name token.Token) *Get {
	return &Get{exprBase: newExprBase(), Object: object, Name: name}
}

// Grouping is a parenthesized expression, kept distinct from its inner
// expression so printers can render the parentheses back.
type Grouping struct {
	exprBase
	Inner Expr
}

func NewGrouping(inner Expr) *Grouping {
	return &Grouping{exprBase: newExprBase(), Inner: inner}
}

// LiteralKind distinguishes the Go-native payload a Literal carries.
type LiteralKind int

const (
	LiteralNil LiteralKind = iota
	LiteralBool
	LiteralNumber
	LiteralString
)

// Literal is a constant: nil, a bool, a number, or a string. Number carries
// IsFloat so the evaluator can preserve the integer/float distinction the
// lexer already computed.
type Literal struct {
	exprBase
	Kind    LiteralKind
	Bool    bool
	Number  float64
	IsFloat bool
	Str     string
}

func NewLiteralNil() *Literal {
	return &Literal{exprBase: newExprBase(), Kind: LiteralNil}
}

func NewLiteralBool(b bool) *Literal {
	return &Literal{exprBase: newExprBase(), Kind: LiteralBool, Bool: b}
}

func NewLiteralNumber(n float64, isFloat bool) *Literal {
	return &Literal{exprBase: newExprBase(), Kind: LiteralNumber, Number: n, IsFloat: isFloat}
}

func NewLiteralString(s string) *Literal {
	return &Literal{exprBase: newExprBase(), Kind: LiteralString, Str: s}
}

// Logical is `left and right` / `left or right`; short-circuiting makes it
// distinct from Binary even though the shape is identical.
type Logical struct {
	exprBase
	Left  Expr
	Op    token.Token
	Right Expr
}

func NewLogical(left Expr, op token.Token, right Expr) *Logical {
	return &Logical{exprBase: newExprBase(), Left: left, Op: op, Right: right}
}

// Set is `object.name = value`.
type Set struct {
	exprBase
	Object Expr
	Name   token.Token
	Value  Expr
}

func NewSet(object Expr, name token.Token, value Expr) *Set {
	return &Set{exprBase: newExprBase(), Object: object, Name: name, Value: value}
}

// Super is `super.method`.
type Super struct {
	exprBase
	Keyword token.Token
	Method  token.Token
}

func NewSuper(keyword, method token.Token) *Super {
	return &Super{exprBase: newExprBase(), Keyword: keyword, Method: method}
}

// This is the `this` keyword used as an expression.
type This struct {
	exprBase
	Keyword token.Token
}

func NewThis(keyword token.Token) *This {
	return &This{exprBase: newExprBase(), Keyword: keyword}
}

// Unary is `-right` or `!right`.
type Unary struct {
	exprBase
	Op    token.Token
	Right Expr
}

func NewUnary(op token.Token, right Expr) *Unary {
	return &Unary{exprBase: newExprBase(), Op: op, Right: right}
}

// Variable is a bare identifier read.
type Variable struct {
	exprBase
	Name token.Token
}

func NewVariable(name token.Token) *Variable {
	return &Variable{exprBase: newExprBase(), Name: name}
}
