package types

import "fmt"

// TemplateMember represents a concrete, bound generic argument during
// template instantiation: a type paired with the compile-time value node
// that selected it (for value-parameterized generics) -- ValueNode is nil
// for purely type-parameterized generics.
type TemplateMember struct {
	Type      Type
	ValueNode Node
}

func (tm *TemplateMember) Size() int { return tm.Type.Size() }

// ToString keys into the substitution table during generic instantiation.
// Its form depends on the class of ValueNode: an integer literal yields
// "@<type><integerValue>", a float literal "@<type><floatValue>", a string
// literal '@<type>"<stringValue>"', and anything else (including a nil
// ValueNode, for a plain type parameter) just "@<type>".
func (tm *TemplateMember) ToString() string {
	base := "@" + tm.Type.ToString()

	switch lit := tm.ValueNode.(type) {
	case IntegerValuer:
		return fmt.Sprintf("%s%d", base, lit.IntegerValue())
	case FloatValuer:
		return fmt.Sprintf("%s%g", base, lit.FloatValue())
	case StringValuer:
		return fmt.Sprintf("%s%q", base, lit.StringValue())
	default:
		return base
	}
}

func (tm *TemplateMember) Copy() Type {
	return &TemplateMember{Type: tm.Type.Copy(), ValueNode: tm.ValueNode}
}

func (tm *TemplateMember) GetElementType() Type { return tm.Type.GetElementType() }

// TemplateMemberDef represents an unbound template parameter declaration
// (eg. the `T` in `struct Vec<T>`) before it has been substituted.
type TemplateMemberDef struct {
	Type Type
	Name string
}

func (td *TemplateMemberDef) Size() int { return td.Type.Size() }

func (td *TemplateMemberDef) ToString() string { return "@" + td.Name }

func (td *TemplateMemberDef) Copy() Type {
	return &TemplateMemberDef{Type: td.Type.Copy(), Name: td.Name}
}

func (td *TemplateMemberDef) GetElementType() Type { return td.Type.GetElementType() }
