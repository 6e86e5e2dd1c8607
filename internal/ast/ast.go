// Package ast defines the Language's abstract syntax tree as a pair of
// tagged unions (Expr, Stmt) rather than the source interpreter's visitor
// hierarchy: each concrete node is a plain struct, and callers type-switch
// on the interface to dispatch. Every Expr carries a stable identity (ID)
// assigned at construction time, which the resolver uses to key its
// expression -> scope-distance side table.
package ast

import "sync/atomic"

// ID is the stable identity of an expression node, assigned once at
// construction and never reused, so a map keyed on ID behaves like one keyed
// on node pointer identity without leaking implementation details of how
// nodes are allocated.
type ID int64

var nextID int64

func newID() ID {
	return ID(atomic.AddInt64(&nextID, 1))
}

// Expr is any expression node. ExprID returns its stable identity.
type Expr interface {
	ExprID() ID
	exprNode()
}

// Stmt is any statement node.
type Stmt interface {
	stmtNode()
}

type exprBase struct {
	id ID
}

func newExprBase() exprBase {
	return exprBase{id: newID()}
}

func (e exprBase) ExprID() ID { return e.id }
func (exprBase) exprNode()    {}

type stmtBase struct{}

func (stmtBase) stmtNode() {}
