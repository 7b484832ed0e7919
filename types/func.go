package types

import "strings"

// Func represents a function pointer type.
type Func struct {
	Result      Type
	Args        []*FuncArg
	IsVariadic bool
}

func (f *Func) Size() int { return PointerSize }

func (f *Func) ToString() string {
	parts := make([]string, len(f.Args))
	for i, a := range f.Args {
		parts[i] = a.Type.ToString()
	}

	argList := strings.Join(parts, ", ")
	if f.IsVariadic {
		if argList != "" {
			argList += ", "
		}
		argList += "..."
	}

	return "func(" + argList + ") " + f.Result.ToString()
}

func (f *Func) Copy() Type {
	args := make([]*FuncArg, len(f.Args))
	for i, a := range f.Args {
		args[i] = a.Copy().(*FuncArg)
	}

	return &Func{Result: f.Result.Copy(), Args: args, IsVariadic: f.IsVariadic}
}

func (f *Func) GetElementType() Type { return f }

// FuncArg is an adjunct constructor pairing a parameter name with its type.
// Its size delegates entirely to Type.
type FuncArg struct {
	Type Type
	Name string
}

func (fa *FuncArg) Size() int { return fa.Type.Size() }

func (fa *FuncArg) ToString() string { return fa.Type.ToString() }

func (fa *FuncArg) Copy() Type { return &FuncArg{Type: fa.Type.Copy(), Name: fa.Name} }

func (fa *FuncArg) GetElementType() Type { return fa.Type.GetElementType() }
