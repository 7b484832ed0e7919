package ast

import (
	"fmt"

	"github.com/ravelang/ravec/report"
	"github.com/ravelang/ravec/types"
)

// VarDecl is a single `name: Type` binding -- a struct field, a local, or a
// function parameter. It satisfies types.FieldElement so the struct
// resolver counts it as a field when it appears in a StructDecl's body.
type VarDecl struct {
	Base
	Name string
	Type types.Type
}

func NewVarDecl(span *report.TextSpan, name string, t types.Type) *VarDecl {
	return &VarDecl{Base: NewBaseOn(span), Name: name, Type: t}
}

func (v *VarDecl) FieldType() types.Type { return v.Type }

// Method is a struct body element that is not a field -- it deliberately
// does not implement types.FieldElement, so the struct resolver's field
// walk (Size/FieldCount/IsSimple) skips over it.
type Method struct {
	Base
	Name string
}

// StructDecl is a nominal struct declaration: an ordered body of fields
// (and, potentially, methods) plus an optional list of generic template
// parameters. A StructDecl with no Params is a concrete, non-generic
// declaration; its Elements are used as-is by the struct resolver.
type StructDecl struct {
	Base
	Name   string
	Params []*types.TemplateMemberDef
	Body   []any
	ctx    *types.Context
}

// NewStructDecl creates a StructDecl whose InstantiateTemplate registers
// specializations into ctx's struct table.
func NewStructDecl(span *report.TextSpan, name string, params []*types.TemplateMemberDef, body []any, ctx *types.Context) *StructDecl {
	return &StructDecl{Base: NewBaseOn(span), Name: name, Params: params, Body: body, ctx: ctx}
}

func (sd *StructDecl) Elements() []any { return sd.Body }

// InstantiateTemplate binds sd's template parameters to typeArgs for the
// duration of resolving a fresh copy of sd's field types, then registers and
// returns the specialization under Name+angleSuffix, per the original
// spec's §5 ordering guarantee: the substitution table is restored to its
// prior state before this call returns, win or lose.
func (sd *StructDecl) InstantiateTemplate(angleSuffix string, typeArgs []types.Type) (types.StructDecl, error) {
	if len(typeArgs) != len(sd.Params) {
		return nil, fmt.Errorf("template '%s' expects %d type argument(s), got %d", sd.Name, len(sd.Params), len(typeArgs))
	}

	bindings := make(map[string]types.Type, len(sd.Params))
	for i, p := range sd.Params {
		bindings[p.ToString()] = typeArgs[i]
	}

	restore := sd.ctx.PushSubstitutions(bindings)
	defer restore()

	body := make([]any, len(sd.Body))
	for i, el := range sd.Body {
		if fe, ok := el.(*VarDecl); ok {
			body[i] = &VarDecl{Base: fe.Base, Name: fe.Name, Type: sd.ctx.Resolve(fe.Type)}
		} else {
			body[i] = el
		}
	}

	specialized := &StructDecl{
		Base: sd.Base,
		Name: sd.Name + angleSuffix,
		Body: body,
		ctx:  sd.ctx,
	}

	sd.ctx.DefineStruct(specialized.Name, specialized)
	return specialized, nil
}
