package types

// Void represents the unit type `void`.
type Void struct{}

func (v *Void) Size() int             { return 0 }
func (v *Void) ToString() string      { return "void" }
func (v *Void) Copy() Type            { return v }
func (v *Void) GetElementType() Type  { return v }

// TheVoid is the single canonical Void instance.
var TheVoid = &Void{}

// Alias is the placeholder type the parser emits for the literal identifier
// `alias`, eg. while parsing the right-hand side of an `alias X = alias;`
// forward declaration.  It carries no payload: the real aliasing machinery
// lives in Context.aliasTable, not in this constructor.
type Alias struct{}

func (a *Alias) Size() int            { return 0 }
func (a *Alias) ToString() string     { return "alias" }
func (a *Alias) Copy() Type           { return a }
func (a *Alias) GetElementType() Type { return a }

// TheAlias is the single canonical Alias instance.
var TheAlias = &Alias{}
