package typegen

import "fmt"

// FieldDescriptor is the shape of one schema field as seen by the resolver.
type FieldDescriptor struct {
	Name     string
	BaseType string
	IsScalar bool
	IsEnum   bool
	IsArray  bool
	// DimensionOfArray is the list nesting depth; at least 1 when IsArray.
	DimensionOfArray int
	// IsNullableArray reports that list elements may be null.
	IsNullableArray bool
	IsRequired      bool
	HasDefaultValue bool
}

// Validate checks the descriptor invariants.
func (f FieldDescriptor) Validate() error {
	if f.Name == "" {
		return fmt.Errorf("field descriptor has no name")
	}
	if f.BaseType == "" {
		return fmt.Errorf("field %s: missing base type", f.Name)
	}
	if f.IsArray && f.DimensionOfArray < 1 {
		return fmt.Errorf("field %s: array dimension must be at least 1, got %d", f.Name, f.DimensionOfArray)
	}
	return nil
}

// InlineFragment is a type-conditioned selection written in place.
type InlineFragment struct {
	OnType string
	Name   string
}

// FragmentSpread references a named fragment.
type FragmentSpread struct {
	FragmentName string
}

// Operation is one selection set of a query, mutation or subscription.
type Operation struct {
	Name string
	// HasFields reports that fields are selected outside of any fragment.
	HasFields       bool
	InlineFragments []InlineFragment
	FragmentsSpread []FragmentSpread
}

// Fragment is a named fragment definition.
type Fragment struct {
	Name   string
	OnType string
}
