package discovery

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
)

// FileSystemDiscovery finds sources under a root directory by glob.
type FileSystemDiscovery struct {
	root      string
	schemas   []string
	documents []string
}

// NewFileSystemDiscovery walks rootDir once and records every file matching
// the schema or document globs. Names are slash separated and relative to
// rootDir.
func NewFileSystemDiscovery(ctx context.Context, rootDir string, schemaGlobs, documentGlobs []string) (*FileSystemDiscovery, error) {
	if len(schemaGlobs) == 0 {
		return nil, fmt.Errorf("at least one schema glob is required")
	}
	d := &FileSystemDiscovery{root: rootDir}

	err := filepath.WalkDir(rootDir, func(p string, entry os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if entry.IsDir() {
			if p != rootDir && (entry.Name() == "node_modules" || entry.Name()[0] == '.') {
				return filepath.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(rootDir, p)
		if err != nil {
			return fmt.Errorf("failed to get relative path for %q: %w", p, err)
		}
		rel = filepath.ToSlash(rel)
		switch {
		case matchAny(schemaGlobs, rel):
			d.schemas = append(d.schemas, rel)
		case matchAny(documentGlobs, rel):
			d.documents = append(d.documents, rel)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk root directory %q: %w", rootDir, err)
	}
	slices.Sort(d.schemas)
	slices.Sort(d.documents)
	return d, nil
}

func (d *FileSystemDiscovery) ListSchemas(ctx context.Context) ([]string, error) {
	return slices.Clone(d.schemas), nil
}

func (d *FileSystemDiscovery) ListDocuments(ctx context.Context) ([]string, error) {
	return slices.Clone(d.documents), nil
}

// Read returns the content of a file previously listed.
func (d *FileSystemDiscovery) Read(ctx context.Context, name string) (string, error) {
	if !slices.Contains(d.schemas, name) && !slices.Contains(d.documents, name) {
		return "", fmt.Errorf("source %q not found", name)
	}
	content, err := os.ReadFile(filepath.Join(d.root, filepath.FromSlash(name)))
	if err != nil {
		return "", fmt.Errorf("failed to read %q: %w", name, err)
	}
	return string(content), nil
}
