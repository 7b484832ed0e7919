package types

import (
	"strings"

	"github.com/ravelang/ravec/report"
	"github.com/ravelang/ravec/util"
)

// Struct represents a nominal, possibly parameterized aggregate type.  A
// freshly parsed Struct is unresolved: its Name is just the bare identifier
// the parser saw, and TypeArgs is empty unless the parser already consumed a
// `<...>` argument list.
type Struct struct {
	Name     string
	TypeArgs []Type
}

// ToString returns base<arg1,arg2,...> when TypeArgs is non-empty, where
// base is everything in Name up to the first '<' -- so ToString is stable
// whether or not UpdateByTypes has already rewritten Name.
func (s *Struct) ToString() string {
	if len(s.TypeArgs) == 0 {
		return baseName(s.Name)
	}

	args := make([]string, len(s.TypeArgs))
	for i, arg := range s.TypeArgs {
		args[i] = arg.ToString()
	}

	return baseName(s.Name) + "<" + strings.Join(args, ",") + ">"
}

// UpdateByTypes rewrites Name to keep it in sync with TypeArgs, so that
// subsequent struct-table lookups by Name see the fully applied form.
func (s *Struct) UpdateByTypes() {
	s.Name = s.ToString()
}

func baseName(name string) string {
	if i := strings.IndexByte(name, '<'); i >= 0 {
		return name[:i]
	}

	return name
}

func (s *Struct) Copy() Type {
	args := make([]Type, len(s.TypeArgs))
	for i, arg := range s.TypeArgs {
		args[i] = arg.Copy()
	}

	return &Struct{Name: s.Name, TypeArgs: args}
}

func (s *Struct) GetElementType() Type { return s }

// Size, FieldCount and IsSimple all delegate to the default, process-wide
// Context, per the type algebra's process-wide table design (§5). Callers
// that need an isolated struct table -- tests, or a future multi-unit
// driver -- should go through a *Context directly instead.
func (s *Struct) Size() int        { return DefaultContext().StructSize(s) }
func (s *Struct) FieldCount() int  { return DefaultContext().StructFieldCount(s) }
func (s *Struct) IsSimple() bool   { return DefaultContext().StructIsSimple(s) }

// resolveStructBody implements the shared preamble of Size/FieldCount/
// IsSimple (the original spec's §4.4 steps 1-4): resolve the fixpoint of
// aliasTable/substitutionTable, look the result up in the struct table, and
// -- if it is a generic specialization not yet registered -- force template
// instantiation.  ok is false when resolution lands on a non-Struct type
// (eg. `alias Foo = int`), in which case callers delegate to that type.
func (ctx *Context) resolveStructBody(s *Struct) (decl StructDecl, resolved Type, ok bool) {
	resolved = ctx.resolve(s)

	rs, isStruct := resolved.(*Struct)
	if !isStruct {
		return nil, resolved, false
	}

	if len(rs.TypeArgs) > 0 {
		if cached, found := ctx.structTable[rs.Name]; found {
			return cached, resolved, true
		}

		base := baseName(rs.Name)

		baseDecl, found := ctx.structTable[base]
		if !found {
			report.Fatal("undefined structure '%s'", base)
		}

		angleSuffix := rs.Name[len(base):]

		specialized, err := baseDecl.InstantiateTemplate(angleSuffix, rs.TypeArgs)
		if err != nil {
			report.Fatal("cannot instantiate template '%s': %s", rs.Name, err)
		}

		ctx.structTable[rs.Name] = specialized
		return specialized, resolved, true
	}

	decl, found := ctx.structTable[rs.Name]
	if !found {
		report.Fatal("undefined structure '%s'", rs.Name)
	}

	return decl, resolved, true
}

// StructSize answers the original spec's "size" query for a Struct term.
func (ctx *Context) StructSize(s *Struct) int {
	decl, resolved, ok := ctx.resolveStructBody(s)
	if !ok {
		return resolved.Size()
	}

	size := 0
	for _, el := range decl.Elements() {
		if fe, ok := el.(FieldElement); ok {
			size += ctx.TypeSize(fe.FieldType())
		}
	}

	return size
}

// TypeSize sizes t the same way Struct.Size's Type-interface shim would,
// except that a nested *Struct field is sized through ctx itself rather
// than through DefaultContext -- so a struct built against an isolated
// Context (eg. in a test) sizes correctly even when one of its fields is
// another struct defined in that same isolated Context.
func (ctx *Context) TypeSize(t Type) int {
	if st, ok := t.(*Struct); ok {
		return ctx.StructSize(st)
	}

	return t.Size()
}

// StructFieldCount answers the original spec's "fieldCount" query.  When
// resolution lands on a non-Struct type (an alias to a scalar), the scalar
// counts as a single field-equivalent -- see DESIGN.md for this open-question
// decision.
func (ctx *Context) StructFieldCount(s *Struct) int {
	decl, _, ok := ctx.resolveStructBody(s)
	if !ok {
		return 1
	}

	n := 0
	for _, el := range decl.Elements() {
		if _, ok := el.(FieldElement); ok {
			n++
		}
	}

	return n
}

// StructIsSimple answers the original spec's "isSimple" query: true iff
// every field is a primitive.  An alias to a scalar is simple by definition
// iff the scalar itself is a Basic -- see DESIGN.md.
func (ctx *Context) StructIsSimple(s *Struct) bool {
	decl, resolved, ok := ctx.resolveStructBody(s)
	if !ok {
		_, isBasic := resolved.(*Basic)
		return isBasic
	}

	var fields []FieldElement
	for _, el := range decl.Elements() {
		if fe, ok := el.(FieldElement); ok {
			fields = append(fields, fe)
		}
	}

	return util.All(fields, func(fe FieldElement) bool {
		_, isBasic := fe.FieldType().(*Basic)
		return isBasic
	})
}
