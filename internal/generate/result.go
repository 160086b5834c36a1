package generate

import "github.com/hanpama/tstypes/internal/typegen"

// Result is everything a run resolved, in a stable order.
type Result struct {
	MaybeDeclaration string
	Scalars          []Scalar
	Enums            []Enum
	Types            []Type
	Fragments        []Definition
	Operations       []Definition
}

type Scalar struct {
	Name string
	Type string
}

type Enum struct {
	Name   string // declared name, converted like every type reference
	Class  typegen.EnumClass
	Values []EnumValue // only for default enums
}

type EnumValue struct {
	Name    string
	Literal string
}

// Type is a declared object, interface or input type.
type Type struct {
	Name   string
	Kind   string
	Fields []Field
}

type Field struct {
	Name     string
	Optional string
	Type     string
}

// Definition is a resolved operation or fragment.
type Definition struct {
	Name       string
	Kind       string
	Selections []Selection
}

type Selection struct {
	Path   string
	OnType string
	Fields []Field
	// Fragments is the composed fragment expression, empty when the
	// selection spreads no fragments.
	Fragments string
}
