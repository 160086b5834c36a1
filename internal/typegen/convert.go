package typegen

import (
	"fmt"

	"github.com/hanpama/tstypes/internal/config"
	"github.com/iancoleman/strcase"
)

// Converter turns a GraphQL name into a TypeScript type name.
type Converter func(name string) string

// PascalCase converts snake, kebab and camel names to PascalCase. Runs of
// capitals are split into words first, so HTTPRequest becomes HttpRequest.
func PascalCase(name string) string {
	if name == "" {
		return ""
	}
	return strcase.ToCamel(strcase.ToSnake(name))
}

// KeepCase returns the name unchanged.
func KeepCase(name string) string { return name }

// ConverterFor returns the converter selected by a namingConvention value.
func ConverterFor(convention string) (Converter, error) {
	switch convention {
	case config.NamingPascalCase, "":
		return PascalCase, nil
	case config.NamingKeep:
		return KeepCase, nil
	}
	return nil, fmt.Errorf("unknown naming convention %q", convention)
}
