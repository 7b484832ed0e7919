package codegen

import (
	"testing"

	lltypes "github.com/llir/llvm/ir/types"

	"github.com/ravelang/ravec/types"
)

func TestConvertPrimitives(t *testing.T) {
	ctx := types.NewContext()
	conv := NewConverter(ctx)

	cases := []struct {
		t    types.Type
		want lltypes.Type
	}{
		{types.BoolType, lltypes.I1},
		{types.IntType, lltypes.I32},
		{types.LongType, lltypes.I64},
		{types.FloatType, lltypes.Float},
		{types.DoubleType, lltypes.Double},
		{types.TheVoid, lltypes.Void},
	}

	for _, c := range cases {
		got, err := conv.ConvertType(c.t)
		if err != nil {
			t.Errorf("ConvertType(%s) returned error: %v", c.t.ToString(), err)
			continue
		}

		if !got.Equal(c.want) {
			t.Errorf("ConvertType(%s) = %s, want %s", c.t.ToString(), got, c.want)
		}
	}
}

func TestConvertPointer(t *testing.T) {
	ctx := types.NewContext()
	conv := NewConverter(ctx)

	got, err := conv.ConvertType(&types.Pointer{Instance: types.IntType})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ptr, ok := got.(*lltypes.PointerType)
	if !ok {
		t.Fatalf("expected *lltypes.PointerType, got %T", got)
	}

	if !ptr.ElemType.Equal(lltypes.I32) {
		t.Errorf("expected int* to point to i32, got %s", ptr.ElemType)
	}
}

func TestConvertStructCachesNamedType(t *testing.T) {
	ctx := types.NewContext()
	ctx.DefineStruct("Point", &convStructDeclStub{elements: []any{
		&convFieldStub{t: types.IntType},
		&convFieldStub{t: types.IntType},
	}})

	conv := NewConverter(ctx)

	st := &types.Struct{Name: "Point"}
	first, err := conv.ConvertType(st)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second, err := conv.ConvertType(st)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first != second {
		t.Error("expected two conversions of the same struct to return the identical cached LLVM type")
	}

	named, ok := first.(*lltypes.StructType)
	if !ok {
		t.Fatalf("expected *lltypes.StructType, got %T", first)
	}

	if len(named.Fields) != 2 {
		t.Errorf("expected 2 fields, got %d", len(named.Fields))
	}
}

type convFieldStub struct{ t types.Type }

func (f *convFieldStub) FieldType() types.Type { return f.t }

type convStructDeclStub struct{ elements []any }

func (s *convStructDeclStub) Elements() []any { return s.elements }

func (s *convStructDeclStub) InstantiateTemplate(angleSuffix string, typeArgs []types.Type) (types.StructDecl, error) {
	return s, nil
}
