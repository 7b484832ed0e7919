package types

// The canonical, interned Basic instances.  All later references to a
// primitive use these shared pointers; Basic equality is pointer identity.
// The registry is populated once, here, and is immutable thereafter.
var (
	BoolType   = &Basic{Tag: Bool}
	CharType   = &Basic{Tag: Char}
	UcharType  = &Basic{Tag: Uchar}
	ShortType  = &Basic{Tag: Short}
	UshortType = &Basic{Tag: Ushort}
	IntType    = &Basic{Tag: Int}
	UintType   = &Basic{Tag: Uint}
	LongType   = &Basic{Tag: Long}
	UlongType  = &Basic{Tag: Ulong}
	CentType   = &Basic{Tag: Cent}
	UcentType  = &Basic{Tag: Ucent}
	HalfType   = &Basic{Tag: Half}
	BhalfType  = &Basic{Tag: Bhalf}
	FloatType  = &Basic{Tag: Float}
	DoubleType = &Basic{Tag: Double}
)

// primitivesByName maps every primitive's surface-syntax name to its
// canonical instance.
var primitivesByName = map[string]*Basic{
	"bool":   BoolType,
	"char":   CharType,
	"uchar":  UcharType,
	"short":  ShortType,
	"ushort": UshortType,
	"int":    IntType,
	"uint":   UintType,
	"long":   LongType,
	"ulong":  UlongType,
	"cent":   CentType,
	"ucent":  UcentType,
	"half":   HalfType,
	"bhalf":  BhalfType,
	"float":  FloatType,
	"double": DoubleType,
}

// vectorShorthands maps the vector shorthand names the facade recognizes to
// a constructor for their canonical Vector term.
var vectorShorthands = map[string]func() *Vector{
	"int4":   func() *Vector { return &Vector{Elem: IntType, Count: 4} },
	"int8":   func() *Vector { return &Vector{Elem: IntType, Count: 8} },
	"float2": func() *Vector { return &Vector{Elem: FloatType, Count: 2} },
	"float4": func() *Vector { return &Vector{Elem: FloatType, Count: 4} },
	"float8": func() *Vector { return &Vector{Elem: FloatType, Count: 8} },
	"short8": func() *Vector { return &Vector{Elem: ShortType, Count: 8} },
}

// NameToType is the single public constructor the (out of scope) parser uses
// to turn a bare identifier into a type term.  It never fails: unknown
// identifiers become unresolved Struct terms that will diagnose later, when
// queried, if they remain undefined.
func NameToType(id string) Type {
	if prim, ok := primitivesByName[id]; ok {
		return prim
	}

	if id == "void" {
		return TheVoid
	}

	if id == "alias" {
		return &Alias{}
	}

	if ctor, ok := vectorShorthands[id]; ok {
		return ctor()
	}

	return &Struct{Name: id}
}
