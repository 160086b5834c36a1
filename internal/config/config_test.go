package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse([]byte(`{}`))
	require.NoError(t, err)

	assert.Equal(t, DefaultNamespace, cfg.Namespace)
	assert.Equal(t, DefaultObjectIDScalar, cfg.ObjectIDScalar)
	assert.Equal(t, NamingPascalCase, cfg.NamingConvention)
	assert.False(t, cfg.MaybeEnabled())
	assert.Equal(t, "null", cfg.MaybeSentinel())
	assert.NotNil(t, cfg.Scalars)
	assert.NotNil(t, cfg.Enums)
}

func TestParse_FullFile(t *testing.T) {
	cfg, err := Parse([]byte(`
schema: schema/*.graphql
documents:
  - queries/*.graphql
  - fragments/*.graphql
optionalType: undefined
scalars:
  DateTime: string
  ObjectId: string
enums:
  Status: ./enums#StatusEnum
  Color: ./colors
  Hidden: null
  Level:
    LOW: 1
    HIGH: high
tbReplaces:
  Project: Proj
  ^Proj: P
immutableTypes: true
noNamespaces: true
interfacePrefix: I
avoidOptionals: "1"
nameMap:
  ownerId: UserId
`))
	require.NoError(t, err)

	assert.Equal(t, Globs{"schema/*.graphql"}, cfg.Schema)
	assert.Equal(t, Globs{"queries/*.graphql", "fragments/*.graphql"}, cfg.Documents)
	assert.True(t, cfg.MaybeEnabled())
	assert.Equal(t, "undefined", cfg.MaybeSentinel())
	assert.Equal(t, "string", cfg.Scalars["DateTime"])
	assert.True(t, cfg.ImmutableTypes)
	assert.True(t, cfg.NoNamespaces)
	assert.Equal(t, "I", cfg.InterfacePrefix)
	assert.True(t, bool(cfg.AvoidOptionals))
	assert.Equal(t, "UserId", cfg.NameMap["ownerId"])

	assert.Equal(t, EnumSetting{Mode: EnumExternal, File: "./enums", Type: "StatusEnum"}, cfg.Enums["Status"])
	assert.Equal(t, EnumSetting{Mode: EnumExternal, File: "./colors"}, cfg.Enums["Color"])
	assert.Equal(t, EnumSuppressed, cfg.Enums["Hidden"].Mode)
	assert.Equal(t, map[string]string{"LOW": "1", "HIGH": "high"}, cfg.Enums["Level"].Values)
	assert.Equal(t, []string{"Color", "Hidden", "Level", "Status"}, cfg.Enums.Names())

	require.Len(t, cfg.TBReplaces, 2)
	assert.Equal(t, "Project", cfg.TBReplaces[0].Pattern)
	assert.Equal(t, "^Proj", cfg.TBReplaces[1].Pattern)
}

func TestReplacements_OrderMatters(t *testing.T) {
	forward := Replacements{
		{Pattern: "Project", Replacement: "Proj"},
		{Pattern: "^Proj", Replacement: "P"},
	}
	backward := Replacements{
		{Pattern: "^Proj", Replacement: "P"},
		{Pattern: "Project", Replacement: "Proj"},
	}
	assert.Equal(t, "PId", forward.Apply("ProjectId"))
	assert.Equal(t, "PectId", backward.Apply("ProjectId"))
}

func TestReplacements_GlobalAndLiteral(t *testing.T) {
	r := Replacements{{Pattern: "a", Replacement: "$1b"}}
	assert.Equal(t, "$1bb$1b", r.Apply("aba"))
}

func TestReplacements_SequenceForm(t *testing.T) {
	cfg, err := Parse([]byte(`
tbReplaces:
  - pattern: Foo
    replacement: Bar
  - pattern: Bar$
    replacement: Baz
`))
	require.NoError(t, err)
	assert.Equal(t, "BarBaz", cfg.TBReplaces.Apply("FooFoo"))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "valid",
			yaml:    `namingConvention: keep`,
			wantErr: "",
		},
		{
			name:    "bad pattern",
			yaml:    "tbReplaces:\n  \"(\": x\n",
			wantErr: "invalid pattern",
		},
		{
			name:    "unknown convention",
			yaml:    `namingConvention: snake`,
			wantErr: "unknown namingConvention",
		},
		{
			name:    "external enum without file",
			yaml:    "enums:\n  Status: \"#Status\"\n",
			wantErr: "external reference has no file",
		},
		{
			name:    "bad flag",
			yaml:    `avoidOptionals: maybe`,
			wantErr: "invalid boolean",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestUncompiledPatternFallsBackToLiteral(t *testing.T) {
	r := Replacements{{Pattern: "(", Replacement: "_"}}
	assert.Equal(t, "a_b", r.Apply("a(b"))
}

func TestHash(t *testing.T) {
	a, err := Parse([]byte("scalars:\n  A: string\n  B: number\n"))
	require.NoError(t, err)
	b, err := Parse([]byte("scalars:\n  B: number\n  A: string\n"))
	require.NoError(t, err)
	c, err := Parse([]byte("scalars:\n  A: string\n"))
	require.NoError(t, err)

	assert.Equal(t, a.Hash(), b.Hash())
	assert.NotEqual(t, a.Hash(), c.Hash())
	assert.Equal(t, Default().Hash(), Default().Hash())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "codegen.yml")
	require.NoError(t, os.WriteFile(path, []byte("noNamespaces: true\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.NoNamespaces)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}

func TestClone(t *testing.T) {
	cfg, err := Parse([]byte(`
schema: a.graphqls
scalars:
  DateTime: string
enums:
  Level:
    LOW: 1
tbReplaces:
  Project: Proj
`))
	require.NoError(t, err)

	clone := cfg.Clone()
	assert.Equal(t, cfg.Hash(), clone.Hash())

	clone.Schema[0] = "b.graphqls"
	clone.Scalars["DateTime"] = "Date"
	clone.Enums["Level"].Values["LOW"] = "2"
	clone.TBReplaces[0].Replacement = "P"

	assert.Equal(t, Globs{"a.graphqls"}, cfg.Schema)
	assert.Equal(t, "string", cfg.Scalars["DateTime"])
	assert.Equal(t, "1", cfg.Enums["Level"].Values["LOW"])
	assert.Equal(t, "ProjId", cfg.TBReplaces.Apply("ProjectId"))

	var nilConfig *Config
	assert.Nil(t, nilConfig.Clone())
}
