package generate

import (
	"context"
	"fmt"

	"github.com/hanpama/tstypes/internal/document"
	"github.com/hanpama/tstypes/internal/eventbus"
	"github.com/hanpama/tstypes/internal/events"
	"github.com/hanpama/tstypes/internal/schema"
	"github.com/hanpama/tstypes/internal/typegen"
)

type resolver struct {
	gen    *typegen.Generator
	cache  *typegen.Cache
	schema *schema.Schema
}

func (r *resolver) declarations(res *Result) {
	for _, t := range r.schema.UserTypes() {
		switch t.Kind {
		case schema.TypeKindScalar:
			res.Scalars = append(res.Scalars, Scalar{Name: r.gen.Convert(t.Name), Type: r.gen.ScalarType(t.Name)})
		case schema.TypeKindEnum:
			res.Enums = append(res.Enums, r.enum(t))
		case schema.TypeKindObject, schema.TypeKindInterface, schema.TypeKindInputObject:
			res.Types = append(res.Types, r.objectType(t))
		}
	}
}

func (r *resolver) enum(t *schema.Type) Enum {
	e := Enum{Name: r.gen.Convert(t.Name), Class: r.gen.ClassifyEnum(t.Name)}
	if e.Class.Kind != typegen.EnumDefault {
		return e
	}
	for _, v := range t.EnumValues {
		e.Values = append(e.Values, EnumValue{Name: v.Name, Literal: r.gen.EnumValue(t.Name, v.Name)})
	}
	return e
}

func (r *resolver) objectType(t *schema.Type) Type {
	out := Type{
		Name: r.gen.Config().InterfacePrefix + r.gen.Convert(t.Name),
		Kind: string(t.Kind),
	}
	for _, d := range document.FieldDescriptors(r.schema, t) {
		out.Fields = append(out.Fields, Field{
			Name:     d.Name,
			Optional: r.gen.Optional(d),
			Type:     r.cache.ResolveFieldType(d, t.Name),
		})
	}
	return out
}

func (r *resolver) definition(ctx context.Context, def *document.Definition, table []typegen.Fragment) (Definition, error) {
	out := Definition{Name: def.Name, Kind: def.Kind}
	for _, sel := range def.Selections {
		composed, err := r.gen.BuildOperationType(sel.Shape, sel.Prefix, table)
		if err != nil {
			return Definition{}, fmt.Errorf("%s %s: %w", def.Kind, def.Name, err)
		}
		s := Selection{Path: sel.Path, OnType: sel.OnType, Fragments: composed}
		for _, f := range sel.Fields {
			s.Fields = append(s.Fields, Field{
				Name:     f.ResponseName,
				Optional: r.gen.Optional(f.Field),
				Type:     r.gen.SelectionFieldType(f.Field, sel.Prefix, sel.OnType),
			})
		}
		if composed != "" {
			eventbus.Publish(ctx, events.SelectionComposed{Definition: def.Name, Path: sel.Path, Type: composed})
		}
		out.Selections = append(out.Selections, s)
	}
	return out, nil
}
