package typegen

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hanpama/tstypes/internal/ordered"
)

// ErrFragmentNotFound matches every *FragmentNotFoundError.
var ErrFragmentNotFound = errors.New("fragment not found")

// FragmentNotFoundError reports a spread of a fragment that was never loaded.
type FragmentNotFoundError struct {
	Name string
}

func (e *FragmentNotFoundError) Error() string {
	return fmt.Sprintf("fragment spread %q could not be found; make sure it is loaded as a GraphQL document", e.Name)
}

func (e *FragmentNotFoundError) Is(target error) bool { return target == ErrFragmentNotFound }

// fragmentExpression renders buckets of fragment names, keyed by type
// condition, as (A1 & A2) | B1, prefixed with " & " when the selection
// also has its own fields.
func fragmentExpression(buckets *ordered.Groups[string], hasFields bool) string {
	parts := make([]string, 0, buckets.Len())
	for _, grp := range buckets.All() {
		joined := strings.Join(grp.Items, " & ")
		if len(grp.Items) > 1 {
			joined = "(" + joined + ")"
		}
		parts = append(parts, joined)
	}
	merged := strings.Join(parts, " | ")
	if merged == "" {
		return ""
	}

	var out strings.Builder
	if hasFields {
		out.WriteString(" & ")
	}
	if len(parts) > 1 {
		out.WriteString("(" + merged + ")")
	} else {
		out.WriteString(merged)
	}
	return out.String()
}

// InlineFragmentName is the type name an inline fragment is emitted under.
// Without namespaces it is qualified by the selection prefix.
func (g *Generator) InlineFragmentName(prefix string, f InlineFragment) string {
	if g.cfg.NoNamespaces {
		return g.convert(prefix) + f.Name
	}
	return f.Name
}

// FragmentSpreadName is the type name a named fragment is emitted under:
// Name.Fragment, or NameFragment without namespaces.
func (g *Generator) FragmentSpreadName(f FragmentSpread) string {
	if g.cfg.NoNamespaces {
		return g.convert(f.FragmentName) + "Fragment"
	}
	return g.convert(f.FragmentName) + ".Fragment"
}

// BuildOperationType composes the fragment part of a selection set type.
// The result is empty when the selection uses no fragments. prefix names
// the selection set and only matters when namespaces are off.
func (g *Generator) BuildOperationType(op Operation, prefix string, fragments []Fragment) (string, error) {
	buckets := ordered.NewGroups[string]()
	for _, f := range op.InlineFragments {
		buckets.Add(f.OnType, g.InlineFragmentName(prefix, f))
	}
	for _, s := range op.FragmentsSpread {
		def, ok := findFragment(fragments, s.FragmentName)
		if !ok {
			return "", &FragmentNotFoundError{Name: s.FragmentName}
		}
		buckets.Add(def.OnType, g.FragmentSpreadName(s))
	}
	return fragmentExpression(buckets, op.HasFields), nil
}

func findFragment(fragments []Fragment, name string) (Fragment, bool) {
	for _, f := range fragments {
		if f.Name == name {
			return f, true
		}
	}
	return Fragment{}, false
}
