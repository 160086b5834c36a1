package typegen_test

import (
	"testing"

	"github.com/hanpama/tstypes/internal/config"
	"github.com/hanpama/tstypes/internal/typegen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPascalCase(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"User", "User"},
		{"getOwner", "GetOwner"},
		{"task_status", "TaskStatus"},
		{"task-list", "TaskList"},
		{"HTTPRequest", "HttpRequest"},
		{"URLInfo", "UrlInfo"},
		{"ObjectID", "ObjectId"},
		{"JSON", "Json"},
		{"ABC", "Abc"},
		{"PermissionList", "PermissionList"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, typegen.PascalCase(tt.in))
		})
	}
}

func TestConverterFor(t *testing.T) {
	c, err := typegen.ConverterFor(config.NamingKeep)
	require.NoError(t, err)
	assert.Equal(t, "HTTPRequest", c("HTTPRequest"))

	c, err = typegen.ConverterFor(config.NamingPascalCase)
	require.NoError(t, err)
	assert.Equal(t, "HttpRequest", c("HTTPRequest"))

	_, err = typegen.ConverterFor("shouting")
	assert.Error(t, err)
}

func TestResolveFieldType_CustomObjectIDScalar(t *testing.T) {
	g := newGenerator(t, &config.Config{ObjectIDScalar: "ObjectID"})

	tagIDs := typegen.FieldDescriptor{Name: "_tagIds", BaseType: "ObjectID", IsScalar: true, IsArray: true, DimensionOfArray: 1, IsRequired: true}
	owner := typegen.FieldDescriptor{Name: "ownerId", BaseType: "ObjectID", IsScalar: true, IsRequired: true}
	meta := typegen.FieldDescriptor{Name: "meta", BaseType: "JSON", IsScalar: true, IsRequired: true}

	assert.Equal(t, "TBTypes.TagId[]", g.ResolveFieldType(tagIDs, "HTTPRequest"))
	assert.Equal(t, "TBTypes.OwnerId", g.ResolveFieldType(owner, "HTTPRequest"))
	assert.Equal(t, "Json", g.ResolveFieldType(meta, "HTTPRequest"))

	// the heuristic keys on the schema name, not the converted one
	g = newGenerator(t, &config.Config{})
	assert.Equal(t, "ObjectId", g.ResolveFieldType(owner, "HTTPRequest"))
}
