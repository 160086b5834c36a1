package config

import (
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// EnumMode tells how an enum entry in the config should be treated.
type EnumMode int

const (
	// EnumValues generates the enum, with optional per-member literals.
	EnumValues EnumMode = iota
	// EnumExternal imports the enum from another file.
	EnumExternal
	// EnumSuppressed generates nothing for the enum.
	EnumSuppressed
)

// EnumSetting is one entry of the enums option.
//
// In YAML a string "file#Type" is an external reference, an explicit null
// suppresses the enum and a mapping overrides member values.
type EnumSetting struct {
	Mode   EnumMode
	File   string
	Type   string
	Values map[string]string
}

// ExternalEnum parses a "<file>#<Type>" reference. The type part is optional.
func ExternalEnum(ref string) EnumSetting {
	file, typ, _ := strings.Cut(ref, "#")
	return EnumSetting{Mode: EnumExternal, File: file, Type: typ}
}

// SuppressedEnum is the setting for an explicit null entry.
func SuppressedEnum() EnumSetting {
	return EnumSetting{Mode: EnumSuppressed}
}

// EnumValueOverrides maps members to literals emitted verbatim.
func EnumValueOverrides(values map[string]string) EnumSetting {
	return EnumSetting{Mode: EnumValues, Values: values}
}

func (s EnumSetting) MarshalYAML() (any, error) {
	switch s.Mode {
	case EnumSuppressed:
		return nil, nil
	case EnumExternal:
		if s.Type == "" {
			return s.File, nil
		}
		return s.File + "#" + s.Type, nil
	}
	// map keys are sorted by the encoder
	return s.Values, nil
}

// Enums maps enum names to their settings.
type Enums map[string]EnumSetting

func (e *Enums) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: enums must be a mapping", node.Line)
	}
	out := make(Enums, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		s, err := decodeEnumSetting(val)
		if err != nil {
			return fmt.Errorf("enum %s: %w", key.Value, err)
		}
		out[key.Value] = s
	}
	*e = out
	return nil
}

func decodeEnumSetting(n *yaml.Node) (EnumSetting, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		if n.ShortTag() == "!!null" {
			return SuppressedEnum(), nil
		}
		return ExternalEnum(n.Value), nil
	case yaml.MappingNode:
		values := make(map[string]string, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			member, lit := n.Content[i], n.Content[i+1]
			if lit.Kind != yaml.ScalarNode {
				return EnumSetting{}, fmt.Errorf("line %d: value for %s must be a scalar", lit.Line, member.Value)
			}
			values[member.Value] = enumLiteral(lit)
		}
		return EnumValueOverrides(values), nil
	}
	return EnumSetting{}, fmt.Errorf("line %d: expected a string, null or mapping", n.Line)
}

// the scalar text is the TypeScript literal, emitted as written
func enumLiteral(n *yaml.Node) string {
	return n.Value
}

// Names returns the configured enum names in sorted order.
func (e Enums) Names() []string {
	names := make([]string, 0, len(e))
	for name := range e {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
