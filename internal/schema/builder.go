package schema

import (
	"fmt"
	"strings"

	"github.com/hanpama/tstypes/internal/language"
)

// BuildFromAST converts a validated gqlparser schema into the schema model.
// Extensions are already merged by the loader; introspection types and
// fields are skipped.
func BuildFromAST(doc *language.Schema) (*Schema, error) {
	if doc == nil {
		return nil, fmt.Errorf("schema is nil")
	}
	s := &Schema{Types: make(map[string]*Type, len(doc.Types))}
	if doc.Query != nil {
		s.QueryType = doc.Query.Name
	}
	if doc.Mutation != nil {
		s.MutationType = doc.Mutation.Name
	}
	if doc.Subscription != nil {
		s.SubscriptionType = doc.Subscription.Name
	}

	for name, def := range doc.Types {
		if strings.HasPrefix(name, "__") {
			continue
		}
		t, err := buildType(doc, def)
		if err != nil {
			return nil, err
		}
		s.Types[name] = t
	}
	return s, nil
}

func buildType(doc *language.Schema, def *language.Definition) (*Type, error) {
	t := &Type{
		Name:        def.Name,
		Description: def.Description,
		BuiltIn:     def.BuiltIn,
	}
	switch def.Kind {
	case language.Object, language.Interface:
		t.Kind = TypeKindObject
		if def.Kind == language.Interface {
			t.Kind = TypeKindInterface
			for _, p := range doc.PossibleTypes[def.Name] {
				t.PossibleTypes = append(t.PossibleTypes, p.Name)
			}
		}
		t.Interfaces = append(t.Interfaces, def.Interfaces...)
		for _, f := range def.Fields {
			if strings.HasPrefix(f.Name, "__") {
				continue
			}
			t.Fields = append(t.Fields, buildField(f))
		}
	case language.Union:
		t.Kind = TypeKindUnion
		t.PossibleTypes = append(t.PossibleTypes, def.Types...)
	case language.Enum:
		t.Kind = TypeKindEnum
		for _, v := range def.EnumValues {
			ev := &EnumValue{Name: v.Name, Description: v.Description}
			ev.IsDeprecated, ev.DeprecationReason = deprecation(v.Directives)
			t.EnumValues = append(t.EnumValues, ev)
		}
	case language.InputObject:
		t.Kind = TypeKindInputObject
		for _, f := range def.Fields {
			iv := &InputValue{Name: f.Name, Description: f.Description, Type: buildTypeRef(f.Type)}
			if f.DefaultValue != nil {
				iv.DefaultValue, iv.HasDefault = f.DefaultValue.String(), true
			}
			t.InputFields = append(t.InputFields, iv)
		}
	case language.Scalar:
		t.Kind = TypeKindScalar
	default:
		return nil, fmt.Errorf("type %q has unsupported kind %q", def.Name, def.Kind)
	}
	return t, nil
}

func buildField(def *language.FieldDefinition) *Field {
	f := &Field{
		Name:        def.Name,
		Description: def.Description,
		Type:        buildTypeRef(def.Type),
	}
	f.IsDeprecated, f.DeprecationReason = deprecation(def.Directives)
	for _, arg := range def.Arguments {
		iv := &InputValue{Name: arg.Name, Description: arg.Description, Type: buildTypeRef(arg.Type)}
		if arg.DefaultValue != nil {
			iv.DefaultValue, iv.HasDefault = arg.DefaultValue.String(), true
		}
		f.Arguments = append(f.Arguments, iv)
	}
	return f
}

func buildTypeRef(t *language.Type) *TypeRef {
	var ref *TypeRef
	if t.Elem != nil {
		ref = ListType(buildTypeRef(t.Elem))
	} else {
		ref = NamedType(t.NamedType)
	}
	if t.NonNull {
		ref = NonNullType(ref)
	}
	return ref
}

func deprecation(dirs language.DirectiveList) (bool, string) {
	d := dirs.ForName("deprecated")
	if d == nil {
		return false, ""
	}
	if arg := d.Arguments.ForName("reason"); arg != nil && arg.Value != nil {
		return true, arg.Value.Raw
	}
	return true, ""
}
