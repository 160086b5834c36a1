package typegen_test

import (
	"sync"
	"testing"

	"github.com/hanpama/tstypes/internal/config"
	"github.com/hanpama/tstypes/internal/typegen"
	"github.com/stretchr/testify/assert"
)

func TestCache(t *testing.T) {
	g := newGenerator(t, withMaybe(&config.Config{}))
	c := typegen.NewCache(g)

	field := typegen.FieldDescriptor{Name: "creatorId", BaseType: "ObjectId", IsScalar: true}
	want := g.ResolveFieldType(field, "Task")

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, want, c.ResolveFieldType(field, "Task"))
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, c.Len())

	c.ResolveFieldType(field, "Project")
	assert.Equal(t, 2, c.Len())
}

func TestFieldDescriptorValidate(t *testing.T) {
	tests := []struct {
		name    string
		field   typegen.FieldDescriptor
		wantErr string
	}{
		{"valid", typegen.FieldDescriptor{Name: "a", BaseType: "String"}, ""},
		{"valid array", typegen.FieldDescriptor{Name: "a", BaseType: "String", IsArray: true, DimensionOfArray: 1}, ""},
		{"missing name", typegen.FieldDescriptor{BaseType: "String"}, "no name"},
		{"missing base type", typegen.FieldDescriptor{Name: "a"}, "missing base type"},
		{"array without dimension", typegen.FieldDescriptor{Name: "a", BaseType: "String", IsArray: true}, "at least 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.field.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}
