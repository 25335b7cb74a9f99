package golisp

import (
	"bytes"
	"fmt"
	"strconv"
)

type ExprType int

const (
	ExprNumber ExprType = iota
	ExprSymbol
	ExprList
)

// Expr is one node of a parsed expression tree. A list node owns its
// children; trees are built once per parsed line and discarded after
// evaluation.
type Expr struct {
	t    ExprType
	num  int64
	sym  string
	list []*Expr
}

func NewNumber(n int64) *Expr {
	return &Expr{t: ExprNumber, num: n}
}

func NewSymbol(name string) *Expr {
	return &Expr{t: ExprSymbol, sym: name}
}

func NewList(elems ...*Expr) *Expr {
	return &Expr{t: ExprList, list: elems}
}

func (e *Expr) String() string {
	switch e.t {
	case ExprNumber:
		return strconv.FormatInt(e.num, 10)
	case ExprSymbol:
		return e.sym
	}
	var buf bytes.Buffer
	fmt.Fprint(&buf, "(")
	for i, c := range e.list {
		if i > 0 {
			fmt.Fprint(&buf, " ")
		}
		fmt.Fprint(&buf, c)
	}
	fmt.Fprint(&buf, ")")
	return buf.String()
}

type ValueType int

const (
	ValueNumber ValueType = iota
	ValueSymbol
	ValueList
)

// Value is an evaluation result. Symbol values exist only as the result of
// define, which echoes the bound name.
type Value struct {
	t    ValueType
	num  int64
	sym  string
	list []*Value
}

func NumberValue(n int64) *Value {
	return &Value{t: ValueNumber, num: n}
}

func SymbolValue(name string) *Value {
	return &Value{t: ValueSymbol, sym: name}
}

func ListValue(elems ...*Value) *Value {
	return &Value{t: ValueList, list: elems}
}

func (v *Value) String() string {
	switch v.t {
	case ValueNumber:
		return strconv.FormatInt(v.num, 10)
	case ValueSymbol:
		return v.sym
	}
	var buf bytes.Buffer
	fmt.Fprint(&buf, "(")
	for i, c := range v.list {
		if i > 0 {
			fmt.Fprint(&buf, " ")
		}
		fmt.Fprint(&buf, c)
	}
	fmt.Fprint(&buf, ")")
	return buf.String()
}
