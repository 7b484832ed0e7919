package types

import (
	"github.com/ravelang/ravec/common"
	"github.com/ravelang/ravec/report"
)

// Context owns the tables that make up the mutable side of the type system:
// the alias table, the transient substitution table, and the struct table.
// A TypeContext per compilation unit is the design the original spec's notes
// recommend; DefaultContext exists only as the convenience-shim global for
// code (and the Type interface's own methods) that has no unit to thread
// one through.
type Context struct {
	aliasTable        map[string]Type
	substitutionTable map[string]Type
	structTable       map[string]StructDecl
}

// NewContext creates a fresh, empty Context.
func NewContext() *Context {
	return &Context{
		aliasTable:        make(map[string]Type),
		substitutionTable: make(map[string]Type),
		structTable:       make(map[string]StructDecl),
	}
}

var defaultContext = NewContext()

// DefaultContext returns the process-wide Context used by Struct's Type-
// interface methods (Size, FieldCount, IsSimple) when no explicit Context is
// threaded through.
func DefaultContext() *Context { return defaultContext }

// DefineAlias records `alias name = t;`.
func (ctx *Context) DefineAlias(name string, t Type) { ctx.aliasTable[name] = t }

// DefineStruct registers a struct declaration in the struct table, keyed by
// its (possibly already-mangled) name.
func (ctx *Context) DefineStruct(name string, decl StructDecl) { ctx.structTable[name] = decl }

// LookupStruct returns the struct declaration registered under name, if any.
func (ctx *Context) LookupStruct(name string) (StructDecl, bool) {
	decl, ok := ctx.structTable[name]
	return decl, ok
}

// resolve is the pure fixpoint function of the original spec's §4.3: repeatedly
// replace t with substitutionTable[t.ToString()] if present, then with
// aliasTable[t.ToString()] if present, until neither matches.  A name seen
// twice in one walk is an alias cycle.
func (ctx *Context) resolve(t Type) Type {
	visited := make(map[string]bool)

	for steps := 0; ; steps++ {
		if steps > common.AliasCycleBound {
			report.Fatal("alias resolution did not converge after %d steps (likely a cycle)", common.AliasCycleBound)
		}

		key := t.ToString()
		if visited[key] {
			report.Fatal("alias cycle detected while resolving '%s'", key)
		}
		visited[key] = true

		if next, ok := ctx.substitutionTable[key]; ok {
			t = next
			continue
		}

		if next, ok := ctx.aliasTable[key]; ok {
			t = next
			continue
		}

		return t
	}
}

// Resolve exposes the fixpoint resolver for use outside the package (eg. by
// codegen, which must resolve a type before pattern-matching on it).
func (ctx *Context) Resolve(t Type) Type { return ctx.resolve(t) }

// pushSubstitutions scopes a set of substitution-table bindings to the
// duration of one generic instantiation, per §5's ordering guarantee: the
// returned restore function MUST be called (typically via defer) on every
// exit path, including a diagnostic abort, to return the table to its prior
// state.
func (ctx *Context) pushSubstitutions(bindings map[string]Type) (restore func()) {
	saved := make(map[string]Type, len(bindings))
	hadPrior := make(map[string]bool, len(bindings))

	for name := range bindings {
		if prior, ok := ctx.substitutionTable[name]; ok {
			saved[name] = prior
			hadPrior[name] = true
		}
	}

	for name, t := range bindings {
		ctx.substitutionTable[name] = t
	}

	return func() {
		for name := range bindings {
			if hadPrior[name] {
				ctx.substitutionTable[name] = saved[name]
			} else {
				delete(ctx.substitutionTable, name)
			}
		}
	}
}

// PushSubstitutions is the exported form of pushSubstitutions, for use by a
// StructDecl.InstantiateTemplate implementation that binds TemplateMemberDef
// canonical strings to concrete type arguments for the duration of one
// instantiation.
func (ctx *Context) PushSubstitutions(bindings map[string]Type) (restore func()) {
	return ctx.pushSubstitutions(bindings)
}
