package typegen

import "github.com/hanpama/tstypes/internal/config"

// EnumKind is the outcome of classifying an enum against the config.
type EnumKind int

const (
	// EnumDefault generates the enum from its schema values.
	EnumDefault EnumKind = iota
	// EnumExternal imports the enum from File.
	EnumExternal
	// EnumSuppressed generates nothing.
	EnumSuppressed
)

func (k EnumKind) String() string {
	switch k {
	case EnumExternal:
		return "external"
	case EnumSuppressed:
		return "suppressed"
	}
	return "default"
}

// EnumClass describes how an enum is emitted.
type EnumClass struct {
	Kind EnumKind
	Name string
	File string
	Type string
}

// TypeName is the imported type name; it falls back to the enum name.
func (c EnumClass) TypeName() string {
	if c.Type != "" {
		return c.Type
	}
	return c.Name
}

// ClassifyEnum reports whether name is imported, suppressed or generated.
func (g *Generator) ClassifyEnum(name string) EnumClass {
	s, ok := g.cfg.Enums[name]
	if !ok {
		return EnumClass{Kind: EnumDefault, Name: name}
	}
	switch s.Mode {
	case config.EnumExternal:
		return EnumClass{Kind: EnumExternal, Name: name, File: s.File, Type: s.Type}
	case config.EnumSuppressed:
		return EnumClass{Kind: EnumSuppressed, Name: name}
	}
	return EnumClass{Kind: EnumDefault, Name: name}
}

// EnumValue returns the literal emitted for an enum member: the configured
// override when present, otherwise the quoted member name.
func (g *Generator) EnumValue(typ, member string) string {
	if s, ok := g.cfg.Enums[typ]; ok && s.Mode == config.EnumValues {
		if lit, ok := s.Values[member]; ok {
			return lit
		}
	}
	return `"` + member + `"`
}
