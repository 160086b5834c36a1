package discovery

import (
	"context"
	"fmt"
)

// Source is a named in-memory file.
type Source struct {
	Name    string
	Content string
}

// InMemoryDiscovery serves sources held in memory, in the order given.
type InMemoryDiscovery struct {
	schemas   []string
	documents []string
	contents  map[string]string
}

func NewInMemoryDiscovery(schemas, documents []Source) *InMemoryDiscovery {
	d := &InMemoryDiscovery{contents: make(map[string]string)}
	for _, s := range schemas {
		d.schemas = append(d.schemas, s.Name)
		d.contents[s.Name] = s.Content
	}
	for _, s := range documents {
		d.documents = append(d.documents, s.Name)
		d.contents[s.Name] = s.Content
	}
	return d
}

func (d *InMemoryDiscovery) ListSchemas(ctx context.Context) ([]string, error) {
	return append([]string(nil), d.schemas...), nil
}

func (d *InMemoryDiscovery) ListDocuments(ctx context.Context) ([]string, error) {
	return append([]string(nil), d.documents...), nil
}

func (d *InMemoryDiscovery) Read(ctx context.Context, name string) (string, error) {
	content, ok := d.contents[name]
	if !ok {
		return "", fmt.Errorf("source %q not found", name)
	}
	return content, nil
}
