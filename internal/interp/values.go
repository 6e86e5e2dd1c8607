package interp

import (
	"strconv"
	"strings"

	"github.com/dolthub/swiss"
)

// Value is any runtime value the evaluator can produce: Nil, Bool, Number,
// Str, or one of the callable/object kinds below.
type Value interface {
	String() string
	isValue()
}

// Nil is the sole value of nil type.
type Nil struct{}

func (Nil) String() string { return "nil" }
func (Nil) isValue()       {}

// NilValue is the single Nil instance; compare against it directly.
var NilValue = Nil{}

// Bool is a boolean value.
type Bool bool

func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}
func (Bool) isValue() {}

// Number carries both the float64 payload and whether the value arose from
// a float-producing operation (a float literal, or division). Arithmetic
// over two non-float numbers stays non-float; anything touching a float, or
// division, produces a float. Printing strips a trailing ".0" from floats,
// matching the reference interpreter's stringify, so a whole-valued float
// and an integer with the same magnitude print identically.
type Number struct {
	Val     float64
	IsFloat bool
}

func (n Number) String() string {
	if !n.IsFloat {
		return strconv.FormatInt(int64(n.Val), 10)
	}
	text := strconv.FormatFloat(n.Val, 'f', -1, 64)
	text = strings.TrimSuffix(text, ".0")
	return text
}
func (Number) isValue() {}

// Str is a string value.
type Str string

func (s Str) String() string { return string(s) }
func (Str) isValue()         {}

// Callable is any Value that can appear as the callee of a call expression:
// user-defined functions, bound methods, classes (as constructors), and
// natives.
type Callable interface {
	Value
	Arity() int
	Call(it *Interpreter, args []Value) (Value, error)
}

// Native wraps a host-implemented function exposed to Language code.
type Native struct {
	Name   string
	ArityN int
	Fn     func(it *Interpreter, args []Value) (Value, error)
}

func (n *Native) String() string {
	if n.Name == "" {
		return "<native fn>"
	}
	return "<native fn '" + n.Name + "'>"
}
func (*Native) isValue()                 {}
func (n *Native) Arity() int             { return n.ArityN }
func (n *Native) Call(it *Interpreter, args []Value) (Value, error) {
	return n.Fn(it, args)
}

// Class is a runtime class value: a name, an optional superclass, and its
// declared methods (including "init" if present).
type Class struct {
	Name       string
	Super      *Class
	Methods    map[string]*Function
	MethodSeq  []string // declaration order, for introspection/printing only
}

func (c *Class) String() string { return c.Name }
func (*Class) isValue()         {}

// FindMethod looks up a method by name, walking the superclass chain.
func (c *Class) FindMethod(name string) *Function {
	if m, ok := c.Methods[name]; ok {
		return m
	}
	if c.Super != nil {
		return c.Super.FindMethod(name)
	}
	return nil
}

func (c *Class) Arity() int {
	if init := c.FindMethod("init"); init != nil {
		return init.Arity()
	}
	return 0
}

// Call constructs a new instance, running "init" if the class declares one.
func (c *Class) Call(it *Interpreter, args []Value) (Value, error) {
	inst := NewInstance(c)
	if init := c.FindMethod("init"); init != nil {
		if _, err := init.Bind(inst).Call(it, args); err != nil {
			return nil, err
		}
	}
	return inst, nil
}

// Instance is a runtime instance of a Class, with its own field table.
type Instance struct {
	Class  *Class
	fields *swiss.Map[string, Value]
}

func NewInstance(c *Class) *Instance {
	return &Instance{Class: c, fields: swiss.NewMap[string, Value](8)}
}

func (i *Instance) String() string { return i.Class.Name + " instance" }
func (*Instance) isValue()         {}

// Get resolves a field first, then a bound method, per the original
// interpreter's instance.get.
func (i *Instance) Get(name string) (Value, bool) {
	if v, ok := i.fields.Get(name); ok {
		return v, true
	}
	if m := i.Class.FindMethod(name); m != nil {
		return m.Bind(i), true
	}
	return nil, false
}

func (i *Instance) Set(name string, v Value) {
	i.fields.Put(name, v)
}
