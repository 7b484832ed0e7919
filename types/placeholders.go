package types

import (
	"strings"

	lltypes "github.com/llir/llvm/ir/types"
)

// Builtin is a placeholder for a compile-time metafunction that yields a
// type, eg. `typeof(expr)`.  The (out of scope) builtin-evaluation machinery
// is expected to replace occurrences of Builtin with their evaluated result
// before the type core is asked to size them.
type Builtin struct {
	Name  string
	Args  []Node
	Block Node
}

func (b *Builtin) Size() int { return 0 }

func (b *Builtin) ToString() string { return "builtin " + b.Name }

func (b *Builtin) Copy() Type {
	return &Builtin{Name: b.Name, Args: append([]Node(nil), b.Args...), Block: b.Block}
}

func (b *Builtin) GetElementType() Type { return b }

// Call is a placeholder for a function-returning-type call, eg. a generic
// factory function invoked at the type level.
type Call struct {
	Name string
	Args []Type
}

func (c *Call) Size() int { return 0 }

func (c *Call) ToString() string {
	parts := make([]string, len(c.Args))
	for i, a := range c.Args {
		parts[i] = a.ToString()
	}

	return c.Name + "(" + strings.Join(parts, ", ") + ")"
}

func (c *Call) Copy() Type {
	args := make([]Type, len(c.Args))
	for i, a := range c.Args {
		args[i] = a.Copy()
	}

	return &Call{Name: c.Name, Args: args}
}

func (c *Call) GetElementType() Type { return c }

// Auto is a placeholder for deferred typing (eg. `var x = ...` before
// inference has run).  It is never expected to survive to codegen.
type Auto struct{}

func (a *Auto) Size() int            { return 0 }
func (a *Auto) ToString() string     { return "auto" }
func (a *Auto) Copy() Type           { return a }
func (a *Auto) GetElementType() Type { return a }

// TheAuto is the single canonical Auto instance.
var TheAuto = &Auto{}

// LLVMOpaque wraps a backend-supplied LLVM type handle directly, for types
// that originate on the codegen side (eg. an intrinsic or a runtime-support
// type) rather than from Rave source.  See codegen.Converter.ConvertType for the
// reverse direction.
type LLVMOpaque struct {
	Handle lltypes.Type
}

func (o *LLVMOpaque) Size() int { return 0 }

func (o *LLVMOpaque) ToString() string {
	if o.Handle == nil {
		return "<llvm opaque>"
	}

	return o.Handle.String()
}

func (o *LLVMOpaque) Copy() Type { return &LLVMOpaque{Handle: o.Handle} }

func (o *LLVMOpaque) GetElementType() Type { return o }
