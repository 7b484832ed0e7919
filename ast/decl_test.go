package ast

import (
	"testing"

	"github.com/ravelang/ravec/types"
)

func TestVarDeclIsFieldElement(t *testing.T) {
	v := NewVarDecl(nil, "x", types.IntType)

	var fe types.FieldElement = v
	if fe.FieldType() != types.IntType {
		t.Error("VarDecl.FieldType must return the declared type")
	}
}

func TestStructDeclFieldWalkSkipsMethods(t *testing.T) {
	sd := NewStructDecl(nil, "Point", nil, []any{
		NewVarDecl(nil, "x", types.IntType),
		&Method{Name: "length"},
		NewVarDecl(nil, "y", types.IntType),
	}, types.NewContext())

	fieldCount := 0
	for _, el := range sd.Elements() {
		if _, ok := el.(types.FieldElement); ok {
			fieldCount++
		}
	}

	if fieldCount != 2 {
		t.Errorf("expected 2 fields, got %d", fieldCount)
	}
}

// TestInstantiateTemplate exercises the generic struct pipeline end to end:
// a Vec<T> template with one field of type T, instantiated with T=int,
// should produce a specialization whose field is IntType and whose name is
// mangled to Vec<int> -- the scenario named by the struct-layout spec
// section for generic instantiation.
func TestInstantiateTemplate(t *testing.T) {
	ctx := types.NewContext()

	tParam := &types.TemplateMemberDef{Name: "T", Type: types.TheAuto}
	sd := NewStructDecl(nil, "Vec", []*types.TemplateMemberDef{tParam}, []any{
		NewVarDecl(nil, "data", tParam),
	}, ctx)

	ctx.DefineStruct("Vec", sd)

	specialized, err := sd.InstantiateTemplate("<int>", []types.Type{types.IntType})
	if err != nil {
		t.Fatalf("unexpected error instantiating Vec<int>: %v", err)
	}

	if specialized.(*StructDecl).Name != "Vec<int>" {
		t.Errorf("expected mangled name `Vec<int>`, got %q", specialized.(*StructDecl).Name)
	}

	var field *VarDecl
	for _, el := range specialized.Elements() {
		if vd, ok := el.(*VarDecl); ok {
			field = vd
		}
	}

	if field == nil {
		t.Fatal("expected the specialized struct to still have its `data` field")
	}

	if field.Type != types.IntType {
		t.Errorf("expected `data` field type to resolve to IntType, got %#v", field.Type)
	}

	if _, ok := ctx.LookupStruct("Vec<int>"); !ok {
		t.Error("expected InstantiateTemplate to register the specialization in the struct table")
	}

	// The substitution binding must not leak past the call.
	if resolved := ctx.Resolve(tParam); resolved != types.Type(tParam) {
		t.Error("expected the T binding to be restored (unbound) after instantiation returns")
	}
}
