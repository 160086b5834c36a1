// Package config holds the options that drive type synthesis.
//
// A Config is decoded from YAML, normalized and validated once at the
// boundary, and treated as read-only afterwards.
package config

import (
	"fmt"
	"hash/fnv"
	"maps"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultOptionalType   = "null"
	DefaultNamespace      = "TBTypes"
	DefaultObjectIDScalar = "ObjectId"

	NamingPascalCase = "pascalCase"
	NamingKeep       = "keep"
)

// Config is the codegen configuration file.
type Config struct {
	Schema    Globs `yaml:"schema,omitempty"`
	Documents Globs `yaml:"documents,omitempty"`

	// OptionalType is the sentinel joined with T in Maybe<T>. Setting it
	// turns Maybe wrapping on.
	OptionalType    string            `yaml:"optionalType,omitempty"`
	UseMaybe        bool              `yaml:"useMaybe,omitempty"`
	Scalars         map[string]string `yaml:"scalars,omitempty"`
	Enums           Enums             `yaml:"enums,omitempty"`
	TBReplaces      Replacements      `yaml:"tbReplaces,omitempty"`
	ImmutableTypes  bool              `yaml:"immutableTypes,omitempty"`
	NoNamespaces    bool              `yaml:"noNamespaces,omitempty"`
	InterfacePrefix string            `yaml:"interfacePrefix,omitempty"`
	AvoidOptionals  Flag              `yaml:"avoidOptionals,omitempty"`

	Namespace        string            `yaml:"namespace,omitempty"`
	ObjectIDScalar   string            `yaml:"objectIdScalar,omitempty"`
	NamingConvention string            `yaml:"namingConvention,omitempty"`
	NameMap          map[string]string `yaml:"nameMap,omitempty"`
}

// Default returns a normalized Config with no overrides.
func Default() *Config {
	c := &Config{}
	c.Normalize()
	return c
}

// Load reads, normalizes and validates a Config from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %q: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes, normalizes and validates a Config from YAML bytes.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Normalize fills every unset option with its default. It is idempotent.
func (c *Config) Normalize() {
	if c.Scalars == nil {
		c.Scalars = map[string]string{}
	}
	if c.Enums == nil {
		c.Enums = Enums{}
	}
	if c.NameMap == nil {
		c.NameMap = map[string]string{}
	}
	if c.Namespace == "" {
		c.Namespace = DefaultNamespace
	}
	if c.ObjectIDScalar == "" {
		c.ObjectIDScalar = DefaultObjectIDScalar
	}
	if c.NamingConvention == "" {
		c.NamingConvention = NamingPascalCase
	}
}

// Clone returns a deep copy of c. Compiled replacement patterns are shared;
// a compiled *regexp.Regexp is safe for concurrent use.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}
	out := *c
	out.Schema = slices.Clone(c.Schema)
	out.Documents = slices.Clone(c.Documents)
	out.Scalars = maps.Clone(c.Scalars)
	out.NameMap = maps.Clone(c.NameMap)
	out.TBReplaces = slices.Clone(c.TBReplaces)
	if c.Enums != nil {
		out.Enums = make(Enums, len(c.Enums))
		for name, setting := range c.Enums {
			setting.Values = maps.Clone(setting.Values)
			out.Enums[name] = setting
		}
	}
	return &out
}

// Validate checks option values and compiles the replacement chain.
func (c *Config) Validate() error {
	var errs ValidationError
	switch c.NamingConvention {
	case NamingPascalCase, NamingKeep, "":
	default:
		errs = append(errs, fmt.Sprintf("unknown namingConvention %q", c.NamingConvention))
	}
	errs = append(errs, c.TBReplaces.compile()...)
	for name, s := range c.Enums {
		if s.Mode == EnumExternal && s.File == "" {
			errs = append(errs, fmt.Sprintf("enum %s: external reference has no file", name))
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// MaybeEnabled reports whether nullable types are wrapped in Maybe<T>.
func (c *Config) MaybeEnabled() bool {
	return c.UseMaybe || c.OptionalType != ""
}

// MaybeSentinel is the type unioned with T by the Maybe declaration.
func (c *Config) MaybeSentinel() string {
	if c.OptionalType == "" {
		return DefaultOptionalType
	}
	return c.OptionalType
}

// Hash returns a stable digest of the options. Two configs that encode to
// the same YAML hash equally.
func (c *Config) Hash() uint64 {
	data, err := yaml.Marshal(c)
	if err != nil {
		// every field is plain data; encoding cannot fail
		panic(err)
	}
	h := fnv.New64a()
	h.Write(data)
	return h.Sum64()
}

// ValidationError lists every problem found in a config.
type ValidationError []string

func (e ValidationError) Error() string {
	var b strings.Builder
	b.WriteString("invalid config:")
	for _, msg := range e {
		b.WriteString("\n- ")
		b.WriteString(msg)
	}
	return b.String()
}

// Flag is a boolean option that also accepts 1, "1" and "true".
type Flag bool

func (f *Flag) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a boolean", node.Line)
	}
	switch strings.ToLower(strings.TrimSpace(node.Value)) {
	case "true", "1", "yes", "on":
		*f = true
	case "false", "0", "no", "off", "", "~", "null":
		*f = false
	default:
		return fmt.Errorf("line %d: invalid boolean %q", node.Line, node.Value)
	}
	return nil
}

// Globs is a list of file patterns; a single string is accepted too.
type Globs []string

func (g *Globs) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*g = Globs{node.Value}
		return nil
	}
	var list []string
	if err := node.Decode(&list); err != nil {
		return err
	}
	*g = list
	return nil
}
