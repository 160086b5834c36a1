package typegen

import (
	"strings"
	"unicode"
)

type nameEntryKind int

const (
	literalEntry nameEntryKind = iota + 1
	derivedEntry
)

// NameEntry maps a field name to a type name, either fixed or computed
// from the type that declares the field.
type NameEntry struct {
	kind   nameEntryKind
	name   string
	derive func(owningType string) (string, bool)
}

// Literal maps a field to the same type name on every owning type.
func Literal(name string) NameEntry {
	return NameEntry{kind: literalEntry, name: name}
}

// Derived maps a field depending on its owning type. Returning false opts
// out and lets the default heuristic decide.
func Derived(fn func(owningType string) (string, bool)) NameEntry {
	return NameEntry{kind: derivedEntry, derive: fn}
}

// Resolve returns the mapped type name for a field declared on owningType.
func (e NameEntry) Resolve(owningType string) (string, bool) {
	switch e.kind {
	case literalEntry:
		return e.name, e.name != ""
	case derivedEntry:
		if e.derive == nil {
			return "", false
		}
		name, ok := e.derive(owningType)
		return name, ok && name != ""
	}
	return "", false
}

// NameRegistry holds field name overrides.
type NameRegistry struct {
	entries map[string]NameEntry
}

func NewNameRegistry() *NameRegistry {
	return &NameRegistry{entries: make(map[string]NameEntry)}
}

// Set registers an entry under a field name and returns the registry.
func (r *NameRegistry) Set(fieldName string, e NameEntry) *NameRegistry {
	r.entries[fieldName] = e
	return r
}

func (r *NameRegistry) Lookup(fieldName string) (NameEntry, bool) {
	if r == nil {
		return NameEntry{}, false
	}
	e, ok := r.entries[fieldName]
	return e, ok
}

func (r *NameRegistry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.entries)
}

// Merge returns a new registry holding r's entries overlaid with other's.
func (r *NameRegistry) Merge(other *NameRegistry) *NameRegistry {
	out := NewNameRegistry()
	if r != nil {
		for k, v := range r.entries {
			out.entries[k] = v
		}
	}
	if other != nil {
		for k, v := range other.entries {
			out.entries[k] = v
		}
	}
	return out
}

// Resolve looks the field up by its normalized name first, then by the
// raw name, and evaluates the entry for owningType.
func (r *NameRegistry) Resolve(fieldName, owningType string) (string, bool) {
	e, ok := r.Lookup(normalizeFieldName(fieldName))
	if !ok {
		e, ok = r.Lookup(fieldName)
	}
	if !ok {
		return "", false
	}
	return e.Resolve(owningType)
}

const ownerPlaceholder = "{type}"

// NameRegistryFromMap builds entries from plain strings. A value holding
// "{type}" is derived: the placeholder is replaced by the owning type, and
// the entry opts out when the owning type is unknown.
func NameRegistryFromMap(m map[string]string) *NameRegistry {
	r := NewNameRegistry()
	for field, value := range m {
		if !strings.Contains(value, ownerPlaceholder) {
			r.Set(field, Literal(value))
			continue
		}
		tmpl := value
		r.Set(field, Derived(func(owningType string) (string, bool) {
			if owningType == "" {
				return "", false
			}
			return strings.ReplaceAll(tmpl, ownerPlaceholder, owningType), true
		}))
	}
	return r
}

var idTypeAliases = map[string]string{
	"AppendOrganization": "Organization",
}

func permissionBinding(member string, owners ...string) NameEntry {
	return Derived(func(owningType string) (string, bool) {
		for _, o := range owners {
			if owningType == o {
				return "PermissionBinding['" + member + "']", true
			}
		}
		return "", false
	})
}

// DefaultNameRegistry returns the stock object id and permission mappings.
func DefaultNameRegistry() *NameRegistry {
	return NewNameRegistry().
		Set("executorId", Literal("UserId")).
		Set("creatorId", Literal("UserId")).
		Set("categoryId", Derived(func(owningType string) (string, bool) {
			if owningType == "" {
				return "", false
			}
			return owningType + "CategoryId", true
		})).
		Set("id", Derived(func(owningType string) (string, bool) {
			if owningType == "" {
				return "", false
			}
			if alias, ok := idTypeAliases[owningType]; ok {
				return alias + "Id", true
			}
			return owningType + "Id", true
		})).
		Set("roleId", Literal("RoleId")).
		Set("orgRoleId", Literal("RoleId")).
		Set("permissions", permissionBinding("permissions", "PermissionBind", "Role")).
		Set("externalRoleId", permissionBinding("externalRoleId", "PermissionBind")).
		Set("memberRoleId", permissionBinding("memberRoleId", "PermissionBind")).
		Set("level", permissionBinding("UserLevel", "PermissionBind")).
		Set("orgLevel", permissionBinding("UserLevel", "PermissionBind"))
}

// trimFieldName strips one leading underscore and one trailing "s".
func trimFieldName(name string) string {
	name = strings.TrimPrefix(name, "_")
	return strings.TrimSuffix(name, "s")
}

func normalizeFieldName(name string) string {
	return mapFirstWordRune(trimFieldName(name), unicode.ToLower)
}

func capitalizeFieldName(name string) string {
	return mapFirstWordRune(trimFieldName(name), unicode.ToUpper)
}

// only ASCII word characters are touched
func mapFirstWordRune(s string, fn func(rune) rune) string {
	if s == "" {
		return s
	}
	r := rune(s[0])
	if r > unicode.MaxASCII || !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_') {
		return s
	}
	return string(fn(r)) + s[1:]
}
