// Package codegen is the narrow outbound boundary between the resolved
// core type algebra and LLVM: it turns a resolved types.Type into an LLVM
// IR type handle. The full code generator that would consume this boundary
// is out of scope; this package exists so LLVMOpaque has a concrete
// producer on the other side of the type core.
package codegen

import (
	"fmt"

	lltypes "github.com/llir/llvm/ir/types"

	"github.com/ravelang/ravec/types"
	"github.com/ravelang/ravec/util"
)

// Converter converts resolved types.Type values into LLVM IR types,
// caching named struct types so that two references to the same struct
// produce the same *lltypes.StructType instance.
type Converter struct {
	ctx          *types.Context
	namedStructs map[string]*lltypes.StructType
}

// NewConverter creates a Converter backed by ctx for struct resolution.
func NewConverter(ctx *types.Context) *Converter {
	return &Converter{ctx: ctx, namedStructs: make(map[string]*lltypes.StructType)}
}

// ConvertType converts t, first running it through the context's fixpoint
// resolver so alias and substitution entries are already settled. It does
// not instantiate generic templates: a parameterized struct is looked up by
// its applied name and is an error unless that specialization is already
// registered in the struct table.
func (c *Converter) ConvertType(t types.Type) (lltypes.Type, error) {
	return c.convert(c.ctx.Resolve(t))
}

func (c *Converter) convert(t types.Type) (lltypes.Type, error) {
	switch v := t.(type) {
	case *types.Basic:
		return c.convertBasic(v)
	case *types.Void:
		return lltypes.Void, nil
	case *types.Pointer:
		elem, err := c.convert(c.ctx.Resolve(v.Instance))
		if err != nil {
			return nil, err
		}
		return lltypes.NewPointer(elem), nil
	case *types.Const:
		return c.convert(c.ctx.Resolve(v.Instance))
	case *types.Array:
		elem, err := c.convert(c.ctx.Resolve(v.Element))
		if err != nil {
			return nil, err
		}

		count := v.Size() / max1(v.Element.Size())
		return lltypes.NewArray(uint64(count), elem), nil
	case *types.Struct:
		return c.convertStruct(v)
	case *types.LLVMOpaque:
		if v.Handle == nil {
			return nil, fmt.Errorf("cannot convert an empty LLVM opaque type")
		}
		return v.Handle, nil
	default:
		return nil, fmt.Errorf("type '%s' has no LLVM representation", t.ToString())
	}
}

// convertBasic maps a primitive tag onto its LLVM counterpart. cent/ucent
// have no native LLVM scalar, so they fall back to a 128-bit integer --
// arithmetic on them is out of scope for this boundary regardless.
func (c *Converter) convertBasic(b *types.Basic) (lltypes.Type, error) {
	switch b.Tag {
	case types.Bool:
		return lltypes.I1, nil
	case types.Char, types.Uchar:
		return lltypes.I8, nil
	case types.Short, types.Ushort:
		return lltypes.I16, nil
	case types.Int, types.Uint:
		return lltypes.I32, nil
	case types.Long, types.Ulong:
		return lltypes.I64, nil
	case types.Cent, types.Ucent:
		return lltypes.NewInt(128), nil
	case types.Half, types.Bhalf:
		return lltypes.Float, nil
	case types.Float:
		return lltypes.Float, nil
	case types.Double:
		return lltypes.Double, nil
	default:
		return nil, fmt.Errorf("primitive '%s' has no LLVM representation", b.ToString())
	}
}

func (c *Converter) convertStruct(s *types.Struct) (lltypes.Type, error) {
	name := s.ToString()
	if named, ok := c.namedStructs[name]; ok {
		return named, nil
	}

	decl, ok := c.ctx.LookupStruct(name)
	if !ok {
		return nil, fmt.Errorf("undefined structure '%s'", name)
	}

	named := lltypes.NewStruct()
	named.TypeName = name
	c.namedStructs[name] = named

	var fieldElems []types.FieldElement
	for _, el := range decl.Elements() {
		if fe, ok := el.(types.FieldElement); ok {
			fieldElems = append(fieldElems, fe)
		}
	}

	fieldTypes := util.Map(fieldElems, func(fe types.FieldElement) types.Type {
		return c.ctx.Resolve(fe.FieldType())
	})

	var fields []lltypes.Type
	for _, ft := range fieldTypes {
		llft, err := c.convert(ft)
		if err != nil {
			return nil, err
		}

		fields = append(fields, llft)
	}

	named.Fields = fields
	return named, nil
}

func max1(n int) int {
	if n <= 0 {
		return 1
	}
	return n
}
