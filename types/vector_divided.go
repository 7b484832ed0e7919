package types

import "fmt"

// Vector represents a SIMD-style fixed-width vector type.
type Vector struct {
	Elem  Type
	Count int
}

func (v *Vector) Size() int { return v.Elem.Size() * v.Count }

func (v *Vector) ToString() string {
	return fmt.Sprintf("<%s x %d>", v.Elem.ToString(), v.Count)
}

func (v *Vector) Copy() Type { return &Vector{Elem: v.Elem.Copy(), Count: v.Count} }

func (v *Vector) GetElementType() Type { return v }

// Divided is a layout-split view of Main: a sequence of sub-types used to
// lower a scalar or aggregate for ABI purposes (eg. splitting a struct
// return value into two register-sized parts).
type Divided struct {
	Main  Type
	Parts []Type
}

func (d *Divided) Size() int {
	size := 0
	for _, p := range d.Parts {
		size += p.Size()
	}

	return size
}

// ToString formats "main {N x divided[0]}", matching the source's format.
// This assumes Parts is non-empty and homogeneous; a heterogeneous Parts
// list loses information in this representation (see DESIGN.md).
func (d *Divided) ToString() string {
	if len(d.Parts) == 0 {
		return d.Main.ToString() + " {}"
	}

	return fmt.Sprintf("%s {%d x %s}", d.Main.ToString(), len(d.Parts), d.Parts[0].ToString())
}

func (d *Divided) Copy() Type {
	parts := make([]Type, len(d.Parts))
	for i, p := range d.Parts {
		parts[i] = p.Copy()
	}

	return &Divided{Main: d.Main.Copy(), Parts: parts}
}

func (d *Divided) GetElementType() Type { return d }
