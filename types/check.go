package types

import "github.com/ravelang/ravec/report"

// Check resolves aliases within t relative to an optional parent, per the
// original spec's invariant 5. When parent is nil, Check returns the
// resolved type and the caller is responsible for storing it wherever it
// held t. When parent is non-nil, Check instead mutates parent's own inner
// slot (Pointer.Instance, Array.Element or Const.Instance) in place and
// returns nil -- the only mutating traversal in the type system.
//
// Only *Struct ever actually resolves to something other than itself here
// (via the alias table, chased by name, not by the full resolve fixpoint --
// see aliasChaseStruct and DESIGN.md for why substitutionTable is
// deliberately not consulted at this call site). Pointer, Array and Const
// recurse into their inner slot passing themselves as the parent, so a
// resolved struct there is rebound in place; Func, FuncArg, Vector, Divided,
// TemplateMember and TemplateMemberDef recurse with a nil parent and store
// the returned type back into their own fields. Every constructor other
// than a resolving *Struct is itself returned (or nil, when parent is
// non-nil).
func (ctx *Context) Check(t Type, parent Type) Type {
	switch v := t.(type) {
	case *Struct:
		resolved := ctx.aliasChaseStruct(v)
		if resolved == Type(v) {
			return selfOrNil(v, parent)
		}

		if parent == nil {
			return resolved
		}

		rb, ok := parent.(rebindable)
		if !ok {
			report.ICE("Check: parent %T cannot rebind a resolved struct slot", parent)
		}
		rb.rebind(resolved)
		return nil

	case *Pointer:
		ctx.Check(v.Instance, v)
		return selfOrNil(v, parent)

	case *Array:
		ctx.Check(v.Element, v)
		return selfOrNil(v, parent)

	case *Const:
		ctx.Check(v.Instance, v)
		return selfOrNil(v, parent)

	case *Func:
		if r := ctx.Check(v.Result, nil); r != nil {
			v.Result = r
		}
		for _, a := range v.Args {
			if r := ctx.Check(a.Type, nil); r != nil {
				a.Type = r
			}
		}
		return selfOrNil(v, parent)

	case *FuncArg:
		if r := ctx.Check(v.Type, nil); r != nil {
			v.Type = r
		}
		return selfOrNil(v, parent)

	case *Vector:
		if r := ctx.Check(v.Elem, nil); r != nil {
			v.Elem = r
		}
		return selfOrNil(v, parent)

	case *Divided:
		if r := ctx.Check(v.Main, nil); r != nil {
			v.Main = r
		}
		for i, p := range v.Parts {
			if r := ctx.Check(p, nil); r != nil {
				v.Parts[i] = r
			}
		}
		return selfOrNil(v, parent)

	case *TemplateMember:
		if r := ctx.Check(v.Type, nil); r != nil {
			v.Type = r
		}
		return selfOrNil(v, parent)

	case *TemplateMemberDef:
		if r := ctx.Check(v.Type, nil); r != nil {
			v.Type = r
		}
		return selfOrNil(v, parent)

	default:
		// Basic, Void, Alias, Builtin, Call, Auto, LLVMOpaque: no child
		// slots to recurse into, and none of them is ever an alias target.
		return selfOrNil(t, parent)
	}
}

func selfOrNil(t Type, parent Type) Type {
	if parent == nil {
		return t
	}

	return nil
}

// aliasChaseStruct implements the narrow, Struct-specific alias chase of the
// original spec's §4.3: follow aliasTable only, keyed by the struct's bare
// Name (not its full ToString, so a generic instantiation's mangled name
// never accidentally matches a plain alias entry), with cycle detection.
func (ctx *Context) aliasChaseStruct(st *Struct) Type {
	var t Type = st
	visited := make(map[string]bool)

	for {
		s, ok := t.(*Struct)
		if !ok {
			return t
		}

		if visited[s.Name] {
			report.Fatal("alias cycle detected involving '%s'", s.Name)
		}
		visited[s.Name] = true

		next, ok := ctx.aliasTable[s.Name]
		if !ok {
			return t
		}

		t = next
	}
}
