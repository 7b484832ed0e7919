// Package ast supplies the small, literal-focused AST the type core's Host
// AST Interface contract (types.Node, types.FieldElement, types.StructDecl)
// is exercised against.  The real Rave parser is out of scope for this
// repository; this package is just enough of an AST -- integer/float/string
// literals, a constant-folding binary expression, VarDecl and StructDecl --
// to drive and test the type system end to end.
package ast

import "github.com/ravelang/ravec/report"

// Base is embedded by every concrete node to provide its source span.
type Base struct {
	span *report.TextSpan
}

// NewBaseOn creates a Base over the given span.
func NewBaseOn(span *report.TextSpan) Base { return Base{span: span} }

// Span returns the node's source span.
func (b Base) Span() *report.TextSpan { return b.span }
