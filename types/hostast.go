package types

// Node is the narrow contract the type core requires from a host AST node:
// the ability to reduce to a compile-time value.  Node.Comptime is the only
// capability the type algebra itself calls; it is implemented by whatever
// expression AST the (out of scope) parser builds.
type Node interface {
	// Comptime reduces the node to its compile-time value, returning the
	// node unchanged if it is already reduced (eg. already a literal).
	Comptime() Node
}

// IntegerValuer is implemented by integer literal nodes.
type IntegerValuer interface {
	Node
	IntegerValue() int64
}

// FloatValuer is implemented by floating-point literal nodes.
type FloatValuer interface {
	Node
	FloatValue() float64
}

// StringValuer is implemented by string literal nodes.
type StringValuer interface {
	Node
	StringValue() string
}

// evalConstInt reduces n via Comptime and extracts an integer value from the
// result.  It is used by Array.Size to evaluate the array's element count,
// per the original spec's "count must reduce via the compile-time evaluator
// to an integer literal" rule.
func evalConstInt(n Node) (int64, bool) {
	if n == nil {
		return 0, false
	}

	reduced := n.Comptime()
	iv, ok := reduced.(IntegerValuer)
	if !ok {
		return 0, false
	}

	return iv.IntegerValue(), true
}

// FieldElement is implemented by elements of a struct declaration's body
// that the struct resolver should count as a field: VarDecl-shaped nodes.
// Other elements (methods, nested declarations) do not implement this
// interface and are skipped by the struct resolver's field walk.
type FieldElement interface {
	FieldType() Type
}

// StructDecl is the narrow contract the type core requires from a struct
// declaration: the ordered list of body elements, and the ability to
// instantiate a generic specialization on demand.
type StructDecl interface {
	// Elements returns the struct's body, in declaration order.  Elements
	// that also implement FieldElement are fields; others are skipped by
	// the struct resolver.
	Elements() []any

	// InstantiateTemplate registers a specialization of this (generic)
	// struct declaration for the given fully-applied type arguments, keyed
	// by the mangled name base+angleSuffix (eg. "Vec<int>").  It returns the
	// specialized declaration, side-effecting the struct table that owns
	// it.
	InstantiateTemplate(angleSuffix string, typeArgs []Type) (StructDecl, error)
}
