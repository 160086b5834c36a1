package typegen

import (
	"strings"

	"github.com/hanpama/tstypes/internal/config"
)

// Generator resolves field and operation types for one configuration.
type Generator struct {
	cfg     *config.Config
	scalars *ScalarRegistry
	names   *NameRegistry
	convert Converter
}

// Option configures a Generator.
type Option func(*Generator)

// WithNameRegistry replaces the stock name registry. Entries from the
// nameMap option are still layered on top.
func WithNameRegistry(r *NameRegistry) Option {
	return func(g *Generator) { g.names = r }
}

// WithConverter overrides the namingConvention option.
func WithConverter(c Converter) Option {
	return func(g *Generator) { g.convert = c }
}

// New validates a private copy of cfg and builds a Generator; cfg itself is
// never modified. A nil cfg means defaults.
func New(cfg *config.Config, opts ...Option) (*Generator, error) {
	if cfg == nil {
		cfg = config.Default()
	} else {
		cfg = cfg.Clone()
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	convert, err := ConverterFor(cfg.NamingConvention)
	if err != nil {
		return nil, err
	}
	g := &Generator{
		cfg:     cfg,
		scalars: NewScalarRegistry(cfg.Scalars),
		names:   DefaultNameRegistry(),
		convert: convert,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.names = g.names.Merge(NameRegistryFromMap(cfg.NameMap))
	return g, nil
}

func (g *Generator) Config() *config.Config { return g.cfg }

func (g *Generator) Scalars() *ScalarRegistry { return g.scalars }

// Convert applies the configured naming convention.
func (g *Generator) Convert(name string) string { return g.convert(name) }

// ScalarType is the type a custom scalar declaration aliases.
func (g *Generator) ScalarType(name string) string {
	return g.scalars.ResolveScalar(name)
}

// DefineMaybe returns the Maybe declaration, or "" when wrapping is off.
func (g *Generator) DefineMaybe() string {
	if !g.cfg.MaybeEnabled() {
		return ""
	}
	return "declare type Maybe<T> = T | " + g.cfg.MaybeSentinel() + ";"
}

// Maybe wraps t in Maybe<t> when wrapping is on.
func (g *Generator) Maybe(t string) string {
	if !g.cfg.MaybeEnabled() {
		return t
	}
	return "Maybe<" + t + ">"
}

// Optional returns the "?" property marker for a field that may be
// omitted, unless avoidOptionals is set.
func (g *Generator) Optional(field FieldDescriptor) string {
	if g.cfg.AvoidOptionals {
		return ""
	}
	if !field.IsRequired {
		return "?"
	}
	return ""
}

// IsPrimitive reports whether the field's base type maps to a primitive.
func (g *Generator) IsPrimitive(field FieldDescriptor) bool {
	return g.scalars.IsPrimitive(field.BaseType)
}

// ShouldHavePrefix reports whether a selection field type is named after
// its selection prefix. Only object-like types get a prefix, and only when
// namespaces are off.
func (g *Generator) ShouldHavePrefix(field FieldDescriptor) bool {
	nonPrefixable := field.IsEnum || field.IsScalar
	return g.cfg.NoNamespaces && !g.IsPrimitive(field) && !nonPrefixable
}

// ResolveFieldType returns the type expression of a schema field declared
// on onType.
func (g *Generator) ResolveFieldType(field FieldDescriptor, onType string) string {
	return g.FieldType(field, g.realType(field, false), g.convert(onType))
}

// ResolveFieldTypeRaw is ResolveFieldType without converting the base
// type name.
func (g *Generator) ResolveFieldTypeRaw(field FieldDescriptor, onType string) string {
	return g.FieldType(field, g.realType(field, true), g.convert(onType))
}

// SelectionFieldType returns the type of a field selected in an operation
// or fragment. prefix names the enclosing selection set.
func (g *Generator) SelectionFieldType(field FieldDescriptor, prefix, onType string) string {
	var realType string
	if g.ShouldHavePrefix(field) {
		realType = g.convert(prefix) + field.BaseType
	} else if p, ok := g.scalars.Primitive(field.BaseType); ok {
		realType = p
	} else {
		realType = g.convert(field.BaseType)
	}
	return g.FieldType(field, realType, g.convert(onType))
}

func (g *Generator) realType(field FieldDescriptor, skipConversion bool) string {
	if p, ok := g.scalars.Primitive(field.BaseType); ok {
		return p
	}
	name := field.BaseType
	if !skipConversion {
		name = g.convert(name)
	}
	if field.IsScalar {
		return name
	}
	return g.cfg.InterfacePrefix + name
}

// FieldType applies name mapping, array nesting and Maybe wrapping to
// realType. onType is the already converted owning type name.
func (g *Generator) FieldType(field FieldDescriptor, realType, onType string) string {
	result := g.mapName(field, realType, onType)

	if !field.IsArray {
		if field.IsRequired {
			return result
		}
		return g.extend(field, result)
	}

	immutable := g.cfg.ImmutableTypes
	if field.IsNullableArray && g.cfg.MaybeEnabled() {
		if immutable {
			result = g.Maybe(result)
		} else {
			result = "(" + g.Maybe(result) + ")"
		}
	}

	dim := max(field.DimensionOfArray, 1)
	if immutable {
		result = strings.Repeat("ReadonlyArray<", dim) + result + strings.Repeat(">", dim)
	} else {
		result += strings.Repeat("[]", dim)
	}

	if !field.IsRequired {
		result = g.extend(field, result)
	}
	return result
}

// defaulted fields are never Maybe-wrapped
func (g *Generator) extend(field FieldDescriptor, t string) string {
	if field.HasDefaultValue {
		return t
	}
	return g.Maybe(t)
}

func (g *Generator) mapName(field FieldDescriptor, realType, onType string) string {
	if !field.IsScalar || g.IsPrimitive(field) {
		return realType
	}
	if name, ok := g.ResolveName(field.Name, onType, field.BaseType); ok {
		return name
	}
	return realType
}

// ResolveName maps an opaque scalar field to a semantic type name.
//
// The registry is consulted first. When it has no answer and baseType, the
// unconverted schema name, is the object id scalar, the capitalized field
// name is used. A result is
// rewritten by the tbReplaces chain and qualified with the namespace
// unless namespaces are off.
func (g *Generator) ResolveName(fieldName, owningType, baseType string) (string, bool) {
	mapped, ok := g.names.Resolve(fieldName, owningType)
	if !ok && baseType == g.cfg.ObjectIDScalar {
		mapped = capitalizeFieldName(fieldName)
		ok = mapped != ""
	}
	if !ok {
		return "", false
	}
	mapped = g.cfg.TBReplaces.Apply(mapped)
	if mapped == "" {
		return "", false
	}
	if g.cfg.NoNamespaces {
		return mapped, true
	}
	return g.cfg.Namespace + "." + mapped, true
}
