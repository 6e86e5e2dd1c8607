// Package parser implements a recursive-descent, precedence-climbing parser
// that turns a token sequence into the Language's abstract syntax tree.
package parser

import (
	"fmt"

	"github.com/MuhammadZohaib07/lox-interpreter/internal/ast"
	"github.com/MuhammadZohaib07/lox-interpreter/internal/token"
)

// Error is a parse error: an unexpected token, missing punctuation, an
// invalid assignment target, or too many parameters/arguments.
type Error struct {
	Line    int
	Where   string // token lexeme, " at end", or "" (unused here; parser errors always have a token)
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("[line %d] Error%s: %s", e.Line, e.Where, e.Message)
}

const maxArgs = 255

// Parser consumes a token slice and produces statements, collecting parse
// errors via panic-mode recovery rather than aborting at the first mistake.
type Parser struct {
	tokens  []token.Token
	current int
	errs    []*Error
}

func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// parseError unwinds the recursive-descent call stack back to the nearest
// declaration boundary; the message was already recorded in p.errs before
// panicking.
type parseError struct{}

// Parse runs `program -> declaration* EOF` and returns the collected
// statements along with any parse errors. If errs is non-empty the caller
// must not evaluate the (possibly partial) statement list.
func (p *Parser) Parse() ([]ast.Stmt, []*Error) {
	var stmts []ast.Stmt
	for !p.atEnd() {
		if d, ok := p.safeDeclaration(); ok {
			stmts = append(stmts, d)
		}
	}
	return stmts, p.errs
}

// safeDeclaration recovers from a parseError panic by synchronizing to the
// next statement boundary, per spec's panic-mode recovery.
func (p *Parser) safeDeclaration() (stmt ast.Stmt, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			if _, isParseErr := r.(parseError); !isParseErr {
				panic(r)
			}
			p.synchronize()
			ok = false
		}
	}()
	return p.declaration(), true
}

func (p *Parser) declaration() ast.Stmt {
	switch {
	case p.match(token.Class):
		return p.classDeclaration()
	case p.match(token.Fun):
		return p.function("function")
	case p.match(token.Var):
		return p.varDeclaration()
	default:
		return p.statement()
	}
}

func (p *Parser) classDeclaration() ast.Stmt {
	name := p.consume(token.Identifier, "Expect class name.")

	var superclass *ast.Variable
	if p.match(token.Less) {
		superName := p.consume(token.Identifier, "Expect superclass name.")
		superclass = ast.NewVariable(superName)
	}

	p.consume(token.LeftBrace, "Expect '{' before class body.")

	var methods []*ast.Function
	for !p.check(token.RightBrace) && !p.atEnd() {
		methods = append(methods, p.function("method"))
	}

	p.consume(token.RightBrace, "Expect '}' after class body.")

	return ast.NewClass(name, superclass, methods)
}

func (p *Parser) function(kind string) *ast.Function {
	name := p.consume(token.Identifier, "Expect "+kind+" name.")
	p.consume(token.LeftParen, "Expect '(' after "+kind+" name.")

	var params []token.Token
	if !p.check(token.RightParen) {
		for {
			if len(params) >= maxArgs {
				p.errorAtCurrent("Can't have more than 255 parameters.")
			}
			params = append(params, p.consume(token.Identifier, "Expect parameter name."))
			if !p.match(token.Comma) {
				break
			}
		}
	}
	p.consume(token.RightParen, "Expect ')' after parameters.")

	p.consume(token.LeftBrace, "Expect '{' before "+kind+" body.")
	body := p.blockStatements()

	return ast.NewFunction(name, params, body)
}

func (p *Parser) varDeclaration() ast.Stmt {
	name := p.consume(token.Identifier, "Expect variable name.")

	var init ast.Expr
	if p.match(token.Equal) {
		init = p.expression()
	}

	p.consume(token.Semicolon, "Expect ';' after variable declaration.")
	return ast.NewVar(name, init)
}

func (p *Parser) statement() ast.Stmt {
	switch {
	case p.match(token.For):
		return p.forStatement()
	case p.match(token.If):
		return p.ifStatement()
	case p.match(token.Print):
		return p.printStatement()
	case p.match(token.Return):
		return p.returnStatement()
	case p.match(token.While):
		return p.whileStatement()
	case p.match(token.Input):
		return p.inputStatement()
	case p.match(token.LeftBrace):
		return ast.NewBlock(p.blockStatements())
	default:
		return p.expressionStatement()
	}
}

// forStatement desugars `for (init; cond; incr) body` into
// `{ init; while (cond) { body; incr; } }`, substituting `true` for an
// absent condition and omitting missing init/incr.
func (p *Parser) forStatement() ast.Stmt {
	p.consume(token.LeftParen, "Expect '(' after 'for'.")

	var initializer ast.Stmt
	switch {
	case p.match(token.Semicolon):
		initializer = nil
	case p.match(token.Var):
		initializer = p.varDeclaration()
	default:
		initializer = p.expressionStatement()
	}

	var condition ast.Expr
	if !p.check(token.Semicolon) {
		condition = p.expression()
	}
	p.consume(token.Semicolon, "Expect ';' after loop condition.")

	var increment ast.Expr
	if !p.check(token.RightParen) {
		increment = p.expression()
	}
	p.consume(token.RightParen, "Expect ')' after for clauses.")

	body := p.statement()

	if increment != nil {
		body = ast.NewBlock([]ast.Stmt{body, ast.NewExpression(increment)})
	}
	if condition == nil {
		condition = ast.NewLiteralBool(true)
	}
	body = ast.NewWhile(condition, body)

	if initializer != nil {
		body = ast.NewBlock([]ast.Stmt{initializer, body})
	}

	return body
}

func (p *Parser) ifStatement() ast.Stmt {
	p.consume(token.LeftParen, "Expect '(' after 'if'.")
	cond := p.expression()
	p.consume(token.RightParen, "Expect ')' after if condition.")

	then := p.statement()
	var els ast.Stmt
	if p.match(token.Else) {
		els = p.statement()
	}
	return ast.NewIf(cond, then, els)
}

func (p *Parser) printStatement() ast.Stmt {
	value := p.expression()
	p.consume(token.Semicolon, "Expect ';' after value.")
	return ast.NewPrint(value)
}

func (p *Parser) returnStatement() ast.Stmt {
	keyword := p.previous()

	var value ast.Expr
	if !p.check(token.Semicolon) {
		value = p.expression()
	}
	p.consume(token.Semicolon, "Expect ';' after return value.")
	return ast.NewReturn(keyword, value)
}

func (p *Parser) whileStatement() ast.Stmt {
	p.consume(token.LeftParen, "Expect '(' after 'while'.")
	cond := p.expression()
	p.consume(token.RightParen, "Expect ')' after condition.")
	body := p.statement()
	return ast.NewWhile(cond, body)
}

func (p *Parser) inputStatement() ast.Stmt {
	p.consume(token.LeftParen, "Expect '(' after 'input'.")
	prompt := p.expression()
	p.consume(token.RightParen, "Expect ')' after input prompt.")
	name := p.consume(token.Identifier, "Expect variable name after input(...).")
	p.consume(token.Semicolon, "Expect ';' after input statement.")
	return ast.NewInput(name, prompt)
}

func (p *Parser) expressionStatement() ast.Stmt {
	expr := p.expression()
	p.consume(token.Semicolon, "Expect ';' after expression.")
	return ast.NewExpression(expr)
}

func (p *Parser) blockStatements() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.check(token.RightBrace) && !p.atEnd() {
		stmts = append(stmts, p.declaration())
	}
	p.consume(token.RightBrace, "Expect '}' after block.")
	return stmts
}

func (p *Parser) expression() ast.Expr {
	return p.assignment()
}

// assignment does not consume '=' until the left-hand side has already been
// parsed as a full logic_or expression, so `a == b` still parses correctly;
// only then is the LHS validated as a Variable or Get target.
func (p *Parser) assignment() ast.Expr {
	expr := p.or()

	if p.match(token.Equal) {
		equals := p.previous()
		value := p.assignment()

		switch target := expr.(type) {
		case *ast.Variable:
			return ast.NewAssign(target.Name, value)
		case *ast.Get:
			return ast.NewSet(target.Object, target.Name, value)
		default:
			p.errorAtToken(equals, "Invalid assignment target.")
		}
	}

	return expr
}

func (p *Parser) or() ast.Expr {
	expr := p.and()
	for p.match(token.Or) {
		op := p.previous()
		right := p.and()
		expr = ast.NewLogical(expr, op, right)
	}
	return expr
}

func (p *Parser) and() ast.Expr {
	expr := p.equality()
	for p.match(token.And) {
		op := p.previous()
		right := p.equality()
		expr = ast.NewLogical(expr, op, right)
	}
	return expr
}

func (p *Parser) equality() ast.Expr {
	expr := p.comparison()
	for p.match(token.BangEqual, token.EqualEqual) {
		op := p.previous()
		right := p.comparison()
		expr = ast.NewBinary(expr, op, right)
	}
	return expr
}

func (p *Parser) comparison() ast.Expr {
	expr := p.term()
	for p.match(token.Greater, token.GreaterEqual, token.Less, token.LessEqual) {
		op := p.previous()
		right := p.term()
		expr = ast.NewBinary(expr, op, right)
	}
	return expr
}

func (p *Parser) term() ast.Expr {
	expr := p.factor()
	for p.match(token.Minus, token.Plus) {
		op := p.previous()
		right := p.factor()
		expr = ast.NewBinary(expr, op, right)
	}
	return expr
}

func (p *Parser) factor() ast.Expr {
	expr := p.unary()
	for p.match(token.Slash, token.Star) {
		op := p.previous()
		right := p.unary()
		expr = ast.NewBinary(expr, op, right)
	}
	return expr
}

func (p *Parser) unary() ast.Expr {
	if p.match(token.Bang, token.Minus) {
		op := p.previous()
		right := p.unary()
		return ast.NewUnary(op, right)
	}
	return p.call()
}

func (p *Parser) call() ast.Expr {
	expr := p.primary()

	for {
		switch {
		case p.match(token.LeftParen):
			expr = p.finishCall(expr)
		case p.match(token.Dot):
			name := p.consume(token.Identifier, "Expect property name after '.'.")
			expr = ast.NewGet(expr, name)
		default:
			return expr
		}
	}
}

func (p *Parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(token.RightParen) {
		for {
			if len(args) >= maxArgs {
				p.errorAtCurrent("Can't have more than 255 arguments.")
			}
			args = append(args, p.expression())
			if !p.match(token.Comma) {
				break
			}
		}
	}
	closeParen := p.consume(token.RightParen, "Expect ')' after arguments.")
	return ast.NewCall(callee, closeParen, args)
}

func (p *Parser) primary() ast.Expr {
	switch {
	case p.match(token.False):
		return ast.NewLiteralBool(false)
	case p.match(token.True):
		return ast.NewLiteralBool(true)
	case p.match(token.Nil):
		return ast.NewLiteralNil()
	case p.match(token.Number):
		lit := p.previous().Literal
		return ast.NewLiteralNumber(lit.Num, lit.IsFloat)
	case p.match(token.String):
		return ast.NewLiteralString(p.previous().Literal.Str)
	case p.match(token.Super):
		keyword := p.previous()
		p.consume(token.Dot, "Expect '.' after 'super'.")
		method := p.consume(token.Identifier, "Expect superclass method name.")
		return ast.NewSuper(keyword, method)
	case p.match(token.This):
		return ast.NewThis(p.previous())
	case p.match(token.Identifier):
		return ast.NewVariable(p.previous())
	case p.match(token.LeftParen):
		expr := p.expression()
		p.consume(token.RightParen, "Expect ')' after expression.")
		return ast.NewGrouping(expr)
	}

	panic(p.errorAtCurrent("Expect expression."))
}

// --------------- helpers ---------------

func (p *Parser) match(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) consume(kind token.Kind, message string) token.Token {
	if p.check(kind) {
		return p.advance()
	}
	panic(p.errorAtCurrent(message))
}

func (p *Parser) check(kind token.Kind) bool {
	return !p.atEnd() && p.peek().Kind == kind
}

func (p *Parser) advance() token.Token {
	if !p.atEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) atEnd() bool {
	return p.peek().Kind == token.EOF
}

func (p *Parser) peek() token.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() token.Token {
	return p.tokens[p.current-1]
}

func (p *Parser) errorAtCurrent(message string) parseError {
	return p.errorAtToken(p.peek(), message)
}

func (p *Parser) errorAtToken(tok token.Token, message string) parseError {
	where := " at '" + tok.Lexeme + "'"
	if tok.Kind == token.EOF {
		where = " at end"
	}
	p.errs = append(p.errs, &Error{Line: tok.Line, Where: where, Message: message})
	return parseError{}
}

// synchronize discards tokens until it passes a statement boundary (';') or
// reaches a token that begins a new declaration, so parsing can resume and
// collect further diagnostics in the same pass.
func (p *Parser) synchronize() {
	p.advance()

	for !p.atEnd() {
		if p.previous().Kind == token.Semicolon {
			return
		}

		switch p.peek().Kind {
		case token.Class, token.Fun, token.Var, token.For, token.If, token.While, token.Print, token.Return:
			return
		}

		p.advance()
	}
}
