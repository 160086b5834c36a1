package document

import (
	"fmt"
	"strings"

	"github.com/hanpama/tstypes/internal/language"
	"github.com/hanpama/tstypes/internal/ordered"
	"github.com/hanpama/tstypes/internal/schema"
	"github.com/hanpama/tstypes/internal/typegen"
)

const KindFragment = "fragment"

// Definition is an operation or a named fragment broken into selection sets.
type Definition struct {
	Name   string
	Kind   string // query, mutation, subscription or fragment
	OnType string
	// Selections holds the root selection set first, then nested ones
	// depth first.
	Selections []*Selection
}

// Selection is one selection set.
type Selection struct {
	Path   string
	Prefix string
	OnType string
	Fields []SelectedField
	Shape  typegen.Operation
}

type SelectedField struct {
	ResponseName string
	Field        typegen.FieldDescriptor
}

// Collection is every definition found in a set of documents.
type Collection struct {
	Operations []*Definition
	Fragments  []*Definition
}

// FragmentTable lists the named fragments for fragment composition.
func (c *Collection) FragmentTable() []typegen.Fragment {
	out := make([]typegen.Fragment, 0, len(c.Fragments))
	for _, f := range c.Fragments {
		out = append(out, typegen.Fragment{Name: f.Name, OnType: f.OnType})
	}
	return out
}

// Collect walks doc against s. The document is expected to be validated;
// references to unknown types or fields are reported as errors.
func Collect(s *schema.Schema, doc *language.QueryDocument) (*Collection, error) {
	c := &collector{schema: s}
	out := &Collection{}

	for _, frag := range doc.Fragments {
		parent, err := c.lookup(frag.TypeCondition)
		if err != nil {
			return nil, fmt.Errorf("fragment %s: %w", frag.Name, err)
		}
		sels, err := c.selections(frag.Name, frag.Name, parent, []language.SelectionSet{frag.SelectionSet})
		if err != nil {
			return nil, err
		}
		out.Fragments = append(out.Fragments, &Definition{
			Name:       frag.Name,
			Kind:       KindFragment,
			OnType:     parent.Name,
			Selections: sels,
		})
	}

	for _, op := range doc.Operations {
		name := op.Name
		if name == "" {
			name = "Anonymous"
		}
		kind := string(op.Operation)
		parent, err := c.lookup(s.RootType(kind))
		if err != nil {
			return nil, fmt.Errorf("operation %s: %w", name, err)
		}
		sels, err := c.selections(name, name, parent, []language.SelectionSet{op.SelectionSet})
		if err != nil {
			return nil, err
		}
		out.Operations = append(out.Operations, &Definition{
			Name:       name,
			Kind:       kind,
			OnType:     parent.Name,
			Selections: sels,
		})
	}
	return out, nil
}

type collector struct {
	schema *schema.Schema
}

func (c *collector) lookup(name string) (*schema.Type, error) {
	if name == "" {
		return nil, fmt.Errorf("schema has no root type for this operation")
	}
	t, ok := c.schema.Types[name]
	if !ok {
		return nil, fmt.Errorf("unknown type %q", name)
	}
	return t, nil
}

// selections merges sets, all selected on parent, into one Selection and
// appends the selections nested under it.
func (c *collector) selections(path, prefix string, parent *schema.Type, sets []language.SelectionSet) ([]*Selection, error) {
	sel := &Selection{
		Path:   path,
		Prefix: prefix,
		OnType: parent.Name,
		Shape:  typegen.Operation{Name: path},
	}
	fields := ordered.NewGroups[*language.Field]()
	inline := ordered.NewGroups[language.SelectionSet]()
	spreads := ordered.NewGroups[*language.FragmentSpread]()

	for _, set := range sets {
		for _, s := range set {
			switch s := s.(type) {
			case *language.Field:
				name := s.Alias
				if name == "" {
					name = s.Name
				}
				fields.Add(name, s)
			case *language.InlineFragment:
				on := s.TypeCondition
				if on == "" {
					on = parent.Name
				}
				inline.Add(on, s.SelectionSet)
			case *language.FragmentSpread:
				spreads.Add(s.Name, s)
			}
		}
	}

	out := []*Selection{sel}
	for _, grp := range fields.All() {
		first := grp.Items[0]
		sel.Shape.HasFields = true
		if first.Name == "__typename" {
			sel.Fields = append(sel.Fields, SelectedField{ResponseName: grp.Key, Field: typenameDescriptor})
			continue
		}
		def := fieldDefinition(parent, first.Name)
		if def == nil {
			return nil, fmt.Errorf("%s: field %q is not defined on %s", path, first.Name, parent.Name)
		}
		desc := Descriptor(c.schema, first.Name, def.Type)
		if conditional(grp.Items) {
			desc.IsRequired = false
		}
		sel.Fields = append(sel.Fields, SelectedField{ResponseName: grp.Key, Field: desc})

		var nested []language.SelectionSet
		for _, f := range grp.Items {
			if len(f.SelectionSet) > 0 {
				nested = append(nested, f.SelectionSet)
			}
		}
		if len(nested) == 0 {
			continue
		}
		child, err := c.lookup(desc.BaseType)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", path, grp.Key, err)
		}
		sub, err := c.selections(path+"."+grp.Key, prefix+desc.BaseType, child, nested)
		if err != nil {
			return nil, err
		}
		out = append(out, sub...)
	}

	for _, grp := range inline.All() {
		name := "On" + grp.Key
		sel.Shape.InlineFragments = append(sel.Shape.InlineFragments, typegen.InlineFragment{OnType: grp.Key, Name: name})
		on, err := c.lookup(grp.Key)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		sub, err := c.selections(path+"."+name, prefix+name, on, grp.Items)
		if err != nil {
			return nil, err
		}
		out = append(out, sub...)
	}

	for _, grp := range spreads.All() {
		sel.Shape.FragmentsSpread = append(sel.Shape.FragmentsSpread, typegen.FragmentSpread{FragmentName: grp.Key})
	}
	return out, nil
}

// fieldDefinition finds a field on an object or interface. Unions expose
// no fields besides __typename.
func fieldDefinition(t *schema.Type, name string) *schema.Field {
	if strings.HasPrefix(name, "__") {
		return nil
	}
	return t.Field(name)
}

// conditional reports whether every selection of a field is guarded by
// @skip or @include, in which case the field may be absent.
func conditional(fields []*language.Field) bool {
	for _, f := range fields {
		if f.Directives.ForName("skip") == nil && f.Directives.ForName("include") == nil {
			return false
		}
	}
	return true
}
