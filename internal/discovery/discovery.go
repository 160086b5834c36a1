package discovery

import (
	"context"
	"path"
	"strings"
)

// Discovery locates schema and document sources.
type Discovery interface {
	ListSchemas(ctx context.Context) ([]string, error)
	ListDocuments(ctx context.Context) ([]string, error)
	Read(ctx context.Context, name string) (string, error)
}

// matchGlob reports whether name matches glob. A leading "**/" matches any
// number of directories, including none.
func matchGlob(glob, name string) bool {
	if rest, ok := strings.CutPrefix(glob, "**/"); ok {
		parts := strings.Split(name, "/")
		for i := range parts {
			if matched, _ := path.Match(rest, strings.Join(parts[i:], "/")); matched {
				return true
			}
		}
		return false
	}
	matched, _ := path.Match(strings.TrimPrefix(glob, "./"), name)
	return matched
}

func matchAny(globs []string, name string) bool {
	for _, g := range globs {
		if matchGlob(g, name) {
			return true
		}
	}
	return false
}
