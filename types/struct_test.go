package types

import (
	"testing"

	"github.com/ravelang/ravec/report"
)

func newCtxWithPoint() (*Context, *Struct) {
	ctx := NewContext()

	body := []any{
		&fieldStub{t: IntType},
		&fieldStub{t: IntType},
	}
	ctx.DefineStruct("Point", &structDeclStub{elements: body})

	return ctx, &Struct{Name: "Point"}
}

// fieldStub and structDeclStub are minimal stand-ins for ast.VarDecl and
// ast.StructDecl, kept local to this test file so the types package's tests
// do not need to import the ast package (which itself imports types).
type fieldStub struct{ t Type }

func (f *fieldStub) FieldType() Type { return f.t }

type structDeclStub struct{ elements []any }

func (s *structDeclStub) Elements() []any { return s.elements }

func (s *structDeclStub) InstantiateTemplate(angleSuffix string, typeArgs []Type) (StructDecl, error) {
	return s, nil
}

func TestStructLayout(t *testing.T) {
	ctx, pt := newCtxWithPoint()

	if size := ctx.StructSize(pt); size != 64 {
		t.Errorf("expected Point size 64, got %d", size)
	}

	if n := ctx.StructFieldCount(pt); n != 2 {
		t.Errorf("expected Point field count 2, got %d", n)
	}

	if !ctx.StructIsSimple(pt) {
		t.Error("expected Point to be simple (all fields primitive)")
	}
}

func TestStructNotSimpleWithNestedStruct(t *testing.T) {
	ctx, _ := newCtxWithPoint()

	ctx.DefineStruct("Line", &structDeclStub{elements: []any{
		&fieldStub{t: &Struct{Name: "Point"}},
		&fieldStub{t: &Struct{Name: "Point"}},
	}})

	line := &Struct{Name: "Line"}

	if ctx.StructIsSimple(line) {
		t.Error("expected Line to be non-simple: its fields are structs, not primitives")
	}

	if size := ctx.StructSize(line); size != 128 {
		t.Errorf("expected Line size 128 (two embedded 64-bit Points), got %d", size)
	}
}

func TestUndefinedStructIsFatal(t *testing.T) {
	ctx := NewContext()

	triggered, _ := report.ExpectFatal(func() {
		ctx.StructSize(&Struct{Name: "Nonexistent"})
	})

	if !triggered {
		t.Error("expected StructSize on an undefined struct to report a fatal error")
	}
}

func TestAliasRedirectsThroughPointer(t *testing.T) {
	ctx, _ := newCtxWithPoint()
	ctx.DefineAlias("PointAlias", &Struct{Name: "Point"})

	ptr := &Pointer{Instance: &Struct{Name: "PointAlias"}}

	ctx.Check(ptr.Instance, ptr)

	resolved, ok := ptr.Instance.(*Struct)
	if !ok {
		t.Fatalf("expected Pointer.Instance to be rebound to a *Struct, got %T", ptr.Instance)
	}

	if resolved.Name != "Point" {
		t.Errorf("expected alias to redirect to `Point`, got %q", resolved.Name)
	}
}

// templateStructDeclStub is a minimal stand-in for a generic ast.StructDecl:
// InstantiateTemplate binds its single field's type to the first type
// argument it is given, mirroring `struct Vec<T> { data: T }`.
type templateStructDeclStub struct {
	ctx *Context
}

func (s *templateStructDeclStub) Elements() []any { return nil }

func (s *templateStructDeclStub) InstantiateTemplate(angleSuffix string, typeArgs []Type) (StructDecl, error) {
	specialized := &structDeclStub{elements: []any{&fieldStub{t: typeArgs[0]}}}
	s.ctx.DefineStruct("Vec"+angleSuffix, specialized)
	return specialized, nil
}

func TestStructSizeInstantiatesGenericOnFirstUse(t *testing.T) {
	ctx := NewContext()
	ctx.DefineStruct("Vec", &templateStructDeclStub{ctx: ctx})

	vecOfInt := &Struct{Name: "Vec<int>", TypeArgs: []Type{IntType}}

	if size := ctx.StructSize(vecOfInt); size != 32 {
		t.Errorf("expected Vec<int> size 32, got %d", size)
	}

	if _, ok := ctx.LookupStruct("Vec<int>"); !ok {
		t.Error("expected Vec<int> to be registered in the struct table after instantiation")
	}
}

func TestAliasCycleDetected(t *testing.T) {
	ctx := NewContext()
	ctx.DefineAlias("A", &Struct{Name: "B"})
	ctx.DefineAlias("B", &Struct{Name: "A"})

	triggered, _ := report.ExpectFatal(func() {
		ctx.StructSize(&Struct{Name: "A"})
	})

	if !triggered {
		t.Error("expected a cyclic alias chain to report a fatal error instead of looping forever")
	}
}
