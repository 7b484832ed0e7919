package ast

import (
	"github.com/ravelang/ravec/report"
	"github.com/ravelang/ravec/types"
)

// IntegerLiteral is a literal integer value node, satisfying types.Node and
// types.IntegerValuer. It is already reduced, so Comptime returns itself.
type IntegerLiteral struct {
	Base
	Value int64
}

func NewIntegerLiteral(span *report.TextSpan, value int64) *IntegerLiteral {
	return &IntegerLiteral{Base: NewBaseOn(span), Value: value}
}

func (n *IntegerLiteral) Comptime() types.Node { return n }

func (n *IntegerLiteral) IntegerValue() int64 { return n.Value }

// FloatLiteral is a literal floating-point value node, satisfying types.Node
// and types.FloatValuer.
type FloatLiteral struct {
	Base
	Value float64
}

func NewFloatLiteral(span *report.TextSpan, value float64) *FloatLiteral {
	return &FloatLiteral{Base: NewBaseOn(span), Value: value}
}

func (n *FloatLiteral) Comptime() types.Node { return n }

func (n *FloatLiteral) FloatValue() float64 { return n.Value }

// StringLiteral is a literal string value node, satisfying types.Node and
// types.StringValuer.
type StringLiteral struct {
	Base
	Value string
}

func NewStringLiteral(span *report.TextSpan, value string) *StringLiteral {
	return &StringLiteral{Base: NewBaseOn(span), Value: value}
}

func (n *StringLiteral) Comptime() types.Node { return n }

func (n *StringLiteral) StringValue() string { return n.Value }
