package config

import (
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Replacement rewrites every match of Pattern (RE2 syntax) with the
// literal Replacement.
type Replacement struct {
	Pattern     string `yaml:"pattern"`
	Replacement string `yaml:"replacement"`

	re *regexp.Regexp
}

// Replacements is an ordered substitution chain. Rules run left to right
// and each sees the output of the previous one, so reordering overlapping
// rules changes the result.
type Replacements []Replacement

// Apply runs the chain over name. Rules whose pattern does not compile are
// applied as plain substrings; Validate reports them.
func (r Replacements) Apply(name string) string {
	for i := range r {
		rule := &r[i]
		re := rule.re
		if re == nil {
			var err error
			if re, err = regexp.Compile(rule.Pattern); err != nil {
				name = strings.ReplaceAll(name, rule.Pattern, rule.Replacement)
				continue
			}
		}
		name = re.ReplaceAllLiteralString(name, rule.Replacement)
	}
	return name
}

func (r Replacements) compile() []string {
	var errs []string
	for i := range r {
		re, err := regexp.Compile(r[i].Pattern)
		if err != nil {
			errs = append(errs, fmt.Sprintf("tbReplaces[%d]: invalid pattern %q: %v", i, r[i].Pattern, err))
			continue
		}
		r[i].re = re
	}
	return errs
}

// UnmarshalYAML accepts either a mapping, whose document order is kept, or
// a sequence of {pattern, replacement} objects.
func (r *Replacements) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.MappingNode:
		out := make(Replacements, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, val := node.Content[i], node.Content[i+1]
			if val.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: replacement for %q must be a string", val.Line, key.Value)
			}
			out = append(out, Replacement{Pattern: key.Value, Replacement: val.Value})
		}
		*r = out
		return nil
	case yaml.SequenceNode:
		var items []struct {
			Pattern     string `yaml:"pattern"`
			Replacement string `yaml:"replacement"`
		}
		if err := node.Decode(&items); err != nil {
			return err
		}
		out := make(Replacements, 0, len(items))
		for _, it := range items {
			out = append(out, Replacement{Pattern: it.Pattern, Replacement: it.Replacement})
		}
		*r = out
		return nil
	}
	return fmt.Errorf("line %d: tbReplaces must be a mapping or a list", node.Line)
}
