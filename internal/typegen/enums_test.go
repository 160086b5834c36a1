package typegen_test

import (
	"testing"

	"github.com/hanpama/tstypes/internal/config"
	"github.com/hanpama/tstypes/internal/typegen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyEnum(t *testing.T) {
	cfg, err := config.Parse([]byte(`
enums:
  Status: ./enums#StatusEnum
  Color: ./colors
  Hidden: null
  Level:
    LOW: 1
`))
	require.NoError(t, err)
	g := newGenerator(t, cfg)

	tests := []struct {
		name     string
		want     typegen.EnumClass
		typeName string
	}{
		{"Status", typegen.EnumClass{Kind: typegen.EnumExternal, Name: "Status", File: "./enums", Type: "StatusEnum"}, "StatusEnum"},
		{"Color", typegen.EnumClass{Kind: typegen.EnumExternal, Name: "Color", File: "./colors"}, "Color"},
		{"Hidden", typegen.EnumClass{Kind: typegen.EnumSuppressed, Name: "Hidden"}, "Hidden"},
		{"Level", typegen.EnumClass{Kind: typegen.EnumDefault, Name: "Level"}, "Level"},
		{"Other", typegen.EnumClass{Kind: typegen.EnumDefault, Name: "Other"}, "Other"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.ClassifyEnum(tt.name)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.typeName, got.TypeName())
		})
	}
}

func TestEnumValue(t *testing.T) {
	g := newGenerator(t, &config.Config{Enums: config.Enums{
		"Level":  config.EnumValueOverrides(map[string]string{"LOW": "1"}),
		"Status": config.ExternalEnum("./enums#Status"),
	}})

	assert.Equal(t, "1", g.EnumValue("Level", "LOW"))
	assert.Equal(t, `"HIGH"`, g.EnumValue("Level", "HIGH"))
	assert.Equal(t, `"OPEN"`, g.EnumValue("Status", "OPEN"))
	assert.Equal(t, `"X"`, g.EnumValue("Unknown", "X"))
}

func TestEnumValue_OverridesAreVerbatim(t *testing.T) {
	cfg, err := config.Parse([]byte(`
enums:
  Status:
    ACTIVE: "'active'"
    DONE: 2
    ARCHIVED: "Flags.Archived"
`))
	require.NoError(t, err)
	g := newGenerator(t, cfg)

	assert.Equal(t, "'active'", g.EnumValue("Status", "ACTIVE"))
	assert.Equal(t, "2", g.EnumValue("Status", "DONE"))
	assert.Equal(t, "Flags.Archived", g.EnumValue("Status", "ARCHIVED"))
	assert.Equal(t, `"PENDING"`, g.EnumValue("Status", "PENDING"))
}

func TestEnumKindString(t *testing.T) {
	assert.Equal(t, "default", typegen.EnumDefault.String())
	assert.Equal(t, "external", typegen.EnumExternal.String())
	assert.Equal(t, "suppressed", typegen.EnumSuppressed.String())
}
