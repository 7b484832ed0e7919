package types

// PrimitiveTag enumerates the primitive type tags of the Basic Type
// Registry.
type PrimitiveTag int

// Enumeration of the primitive tags, per the primitive table in the
// original spec.
const (
	Bool PrimitiveTag = iota
	Char
	Uchar
	Short
	Ushort
	Int
	Uint
	Long
	Ulong
	Cent
	Ucent
	Half
	Bhalf
	Float
	Double
)

// Basic represents a canonical primitive type.  Instances are interned by
// the registry: equality of primitives is pointer/identity equality -- all
// canonical instances are created once, as the package-level variables in
// registry.go, and shared thereafter.
type Basic struct {
	Tag PrimitiveTag
}

var primitiveSizes = map[PrimitiveTag]int{
	Bool:   1,
	Char:   8,
	Uchar:  8,
	Short:  16,
	Ushort: 16,
	Half:   16,
	Bhalf:  16,
	Int:    32,
	Uint:   32,
	Float:  32,
	Long:   64,
	Ulong:  64,
	Double: 64,
	Cent:   128,
	Ucent:  128,
}

var primitiveNames = map[PrimitiveTag]string{
	Bool:   "bool",
	Char:   "char",
	Uchar:  "uchar",
	Short:  "short",
	Ushort: "ushort",
	Int:    "int",
	Uint:   "uint",
	Long:   "long",
	Ulong:  "ulong",
	Cent:   "cent",
	Ucent:  "ucent",
	Half:   "half",
	Bhalf:  "bhalf",
	Float:  "float",
	Double: "double",
}

var floatingTags = map[PrimitiveTag]bool{
	Half:   true,
	Bhalf:  true,
	Float:  true,
	Double: true,
}

func (b *Basic) Size() int { return primitiveSizes[b.Tag] }

func (b *Basic) ToString() string { return primitiveNames[b.Tag] }

func (b *Basic) Copy() Type { return b }

func (b *Basic) GetElementType() Type { return b }

// IsFloat reports whether this primitive is one of the floating-point
// tags: Half, Bhalf, Float, Double.
func (b *Basic) IsFloat() bool { return floatingTags[b.Tag] }
