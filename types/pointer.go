package types

import (
	"fmt"

	"github.com/ravelang/ravec/report"
)

// PointerSize is the size in bits of a pointer on the target the Rave
// compiler assumes: 64-bit.
const PointerSize = 64

// Pointer represents a pointer type.
type Pointer struct {
	// Instance is the pointee type.  This field may be rebound in place by
	// Context.Check if it resolves to an aliased struct (see type.go's
	// rebindable).
	Instance Type
}

func (p *Pointer) Size() int { return PointerSize }

func (p *Pointer) ToString() string { return p.Instance.ToString() + "*" }

func (p *Pointer) Copy() Type {
	return &Pointer{Instance: p.Instance.Copy()}
}

// GetElementType strips leading Const wrappers from the pointee and, if the
// (const-stripped) pointee is Void, returns Basic(Char) instead -- this
// encodes the rule that `void*` arithmetic and indexing behave like `char*`.
func (p *Pointer) GetElementType() Type {
	inner := p.Instance
	for {
		c, ok := inner.(*Const)
		if !ok {
			break
		}
		inner = c.Instance
	}

	if _, ok := inner.(*Void); ok {
		return CharType
	}

	return inner
}

func (p *Pointer) rebind(resolved Type) { p.Instance = resolved }

// Array represents an array type.  Count is a host AST node that must
// reduce to an integer literal via Comptime before Size can be computed.
type Array struct {
	Count   Node
	Element Type
}

func (a *Array) Size() int {
	n, ok := evalConstInt(a.Count)
	if !ok {
		report.Fatal("array length does not reduce to a constant integer")
	}

	return int(n) * a.Element.Size()
}

func (a *Array) ToString() string {
	if n, ok := evalConstInt(a.Count); ok {
		return fmt.Sprintf("%s[%d]", a.Element.ToString(), n)
	}

	return a.Element.ToString() + "[...]"
}

func (a *Array) Copy() Type {
	return &Array{Count: a.Count, Element: a.Element.Copy()}
}

func (a *Array) GetElementType() Type { return a.Element }

func (a *Array) rebind(resolved Type) { a.Element = resolved }

// Const is a transparent wrapper that marks its inner type immutable.  Size,
// ToString and GetElementType all delegate to Instance.
type Const struct {
	Instance Type
}

func (c *Const) Size() int { return c.Instance.Size() }

func (c *Const) ToString() string { return c.Instance.ToString() }

func (c *Const) Copy() Type { return &Const{Instance: c.Instance.Copy()} }

func (c *Const) GetElementType() Type { return c.Instance.GetElementType() }

func (c *Const) rebind(resolved Type) { c.Instance = resolved }
