package language

import (
	"errors"

	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"
	"github.com/vektah/gqlparser/v2/parser"
	"github.com/vektah/gqlparser/v2/validator"
)

// ParseQuery parses an executable document without validating it.
func ParseQuery(name, source string) (*QueryDocument, error) {
	doc, err := parser.ParseQuery(&ast.Source{Name: name, Input: source})
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// ParseSchema parses a single SDL file.
func ParseSchema(name, source string) (*SchemaDocument, error) {
	doc, err := parser.ParseSchema(&ast.Source{Name: name, Input: source})
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// LoadSchema merges and validates SDL sources together with the builtin
// prelude (String, Int, Float, Boolean, ID and the introspection types).
func LoadSchema(sources ...*Source) (*Schema, error) {
	if len(sources) == 0 {
		return nil, errors.New("no schema sources")
	}
	s, err := gqlparser.LoadSchema(sources...)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// MergeQueries folds several executable documents into one so fragments
// defined in one file can be spread from another.
func MergeQueries(docs ...*QueryDocument) *QueryDocument {
	merged := &QueryDocument{}
	for _, doc := range docs {
		if doc == nil {
			continue
		}
		merged.Operations = append(merged.Operations, doc.Operations...)
		merged.Fragments = append(merged.Fragments, doc.Fragments...)
	}
	return merged
}

// ValidateQuery runs the standard validation rules against schema.
func ValidateQuery(schema *Schema, doc *QueryDocument) error {
	errs := validator.Validate(schema, doc)
	if len(errs) == 0 {
		return nil
	}
	return gqlerror.List(errs)
}
