package ast

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MuhammadZohaib07/lox-interpreter/internal/token"
)

// Print renders an expression as a parenthesized s-expression, in the style
// of the reference implementation's AstPrinter (`original_source/src/ast_printer.py`).
func Print(e Expr) string {
	switch n := e.(type) {
	case *Assign:
		return parenthesize("= "+n.Name.Lexeme, n.Value)
	case *Binary:
		return parenthesize(n.Op.Lexeme, n.Left, n.Right)
	case *Call:
		args := make([]Expr, 0, len(n.Args)+1)
		args = append(args, n.Callee)
		args = append(args, n.Args...)
		return parenthesize("call", args...)
	case *Get:
		return parenthesize("get "+n.Name.Lexeme, n.Object)
	case *Grouping:
		return parenthesize("group", n.Inner)
	case *Literal:
		return printLiteral(n)
	case *Logical:
		return parenthesize(n.Op.Lexeme, n.Left, n.Right)
	case *Set:
		return parenthesize("set "+n.Name.Lexeme, n.Object, n.Value)
	case *Super:
		return "(super " + n.Method.Lexeme + ")"
	case *This:
		return "this"
	case *Unary:
		return parenthesize(n.Op.Lexeme, n.Right)
	case *Variable:
		return n.Name.Lexeme
	default:
		return fmt.Sprintf("<unknown expr %T>", e)
	}
}

func printLiteral(l *Literal) string {
	switch l.Kind {
	case LiteralNil:
		return "nil"
	case LiteralBool:
		return strconv.FormatBool(l.Bool)
	case LiteralNumber:
		if l.IsFloat {
			return strconv.FormatFloat(l.Number, 'g', -1, 64)
		}
		return strconv.FormatInt(int64(l.Number), 10)
	case LiteralString:
		return l.Str
	default:
		return "<unknown literal>"
	}
}

func parenthesize(name string, exprs ...Expr) string {
	var sb strings.Builder
	sb.WriteByte('(')
	sb.WriteString(name)
	for _, e := range exprs {
		sb.WriteByte(' ')
		sb.WriteString(Print(e))
	}
	sb.WriteByte(')')
	return sb.String()
}

// PrintStmt renders a statement, recursing through Print for expressions.
func PrintStmt(s Stmt) string {
	switch n := s.(type) {
	case *Block:
		var sb strings.Builder
		sb.WriteString("(block")
		for _, d := range n.Stmts {
			sb.WriteByte(' ')
			sb.WriteString(PrintStmt(d))
		}
		sb.WriteByte(')')
		return sb.String()
	case *Class:
		var sb strings.Builder
		sb.WriteString("(class " + n.Name.Lexeme)
		if n.Superclass != nil {
			sb.WriteString(" < " + n.Superclass.Name.Lexeme)
		}
		for _, m := range n.Methods {
			sb.WriteByte(' ')
			sb.WriteString(PrintStmt(m))
		}
		sb.WriteByte(')')
		return sb.String()
	case *Expression:
		return parenthesize(";", n.Expr)
	case *Function:
		return fmt.Sprintf("(fun %s(%s))", n.Name.Lexeme, joinParams(n.Params))
	case *If:
		if n.Else != nil {
			return fmt.Sprintf("(if %s %s %s)", Print(n.Cond), PrintStmt(n.Then), PrintStmt(n.Else))
		}
		return fmt.Sprintf("(if %s %s)", Print(n.Cond), PrintStmt(n.Then))
	case *Print:
		return parenthesize("print", n.Expr)
	case *Return:
		if n.Value != nil {
			return parenthesize("return", n.Value)
		}
		return "(return)"
	case *Var:
		if n.Init != nil {
			return parenthesize("var "+n.Name.Lexeme, n.Init)
		}
		return "(var " + n.Name.Lexeme + ")"
	case *While:
		return fmt.Sprintf("(while %s %s)", Print(n.Cond), PrintStmt(n.Body))
	case *Input:
		return parenthesize("input "+n.Name.Lexeme, n.Prompt)
	default:
		return fmt.Sprintf("<unknown stmt %T>", s)
	}
}

func joinParams(params []token.Token) string {
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.Lexeme
	}
	return strings.Join(names, ", ")
}
