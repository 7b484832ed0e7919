// Package types implements the Rave front end's type representation and
// resolution core: the algebra of type constructors, the basic type
// registry, the alias/substitution tables, and the struct resolver.
package types

// Type is the interface implemented by every type constructor in the Rave
// type algebra.  Every constructor supports the five operations named in the
// original distilled spec: Size, ToString, Copy, GetElementType and the
// internal Check traversal (dispatched generically by Context.Check rather
// than called directly, except by tests).
type Type interface {
	// Size returns the size of the type in bits.
	Size() int

	// ToString returns the canonical printable form of the type.  This is
	// the identity used as the key into the alias and substitution tables
	// and in diagnostics.
	ToString() string

	// Copy returns a deep structural clone of the type.  Referenced AST
	// nodes (eg. an Array's count expression) are shared, not cloned.
	Copy() Type

	// GetElementType returns the element type of the type: itself for
	// scalar-like constructors, one level unwrapped for Pointer/Array/Const.
	GetElementType() Type
}

// rebindable is implemented by the three constructors whose single inner
// slot may be rebound in place by Context.Check when that slot turns out to
// hold an aliased struct: Pointer.Instance, Array.Element, Const.Instance.
// This is the "only mutating traversal in the system" named by the original
// spec's invariant 5.
type rebindable interface {
	rebind(resolved Type)
}
