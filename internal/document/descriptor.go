package document

import (
	"github.com/hanpama/tstypes/internal/schema"
	"github.com/hanpama/tstypes/internal/typegen"
)

// Descriptor describes a field of type ref as the resolver sees it.
func Descriptor(s *schema.Schema, name string, ref *schema.TypeRef) typegen.FieldDescriptor {
	shape := ref.Shape()
	d := typegen.FieldDescriptor{
		Name:             name,
		BaseType:         shape.Named,
		IsArray:          shape.Dimension > 0,
		DimensionOfArray: shape.Dimension,
		IsNullableArray:  shape.NullableElements,
		IsRequired:       shape.Required,
	}
	if t := s.Types[shape.Named]; t != nil {
		d.IsScalar = t.Kind == schema.TypeKindScalar
		d.IsEnum = t.Kind == schema.TypeKindEnum
	}
	return d
}

// FieldDescriptors lists the fields of an object, interface or input type
// in declaration order. Other kinds have no fields.
func FieldDescriptors(s *schema.Schema, t *schema.Type) []typegen.FieldDescriptor {
	var out []typegen.FieldDescriptor
	switch t.Kind {
	case schema.TypeKindObject, schema.TypeKindInterface:
		for _, f := range t.Fields {
			out = append(out, Descriptor(s, f.Name, f.Type))
		}
	case schema.TypeKindInputObject:
		for _, f := range t.InputFields {
			d := Descriptor(s, f.Name, f.Type)
			d.HasDefaultValue = f.HasDefault
			out = append(out, d)
		}
	}
	return out
}

var typenameDescriptor = typegen.FieldDescriptor{
	Name:       "__typename",
	BaseType:   "String",
	IsScalar:   true,
	IsRequired: true,
}
