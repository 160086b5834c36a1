package typegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeFieldName(t *testing.T) {
	tests := []struct {
		in, normalized, capitalized string
	}{
		{"_id", "id", "Id"},
		{"tagIds", "tagId", "TagId"},
		{"ExecutorId", "executorId", "ExecutorId"},
		{"__typename", "_typename", "_typename"},
		{"s", "", ""},
		{"", "", ""},
		{"édition", "édition", "édition"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.normalized, normalizeFieldName(tt.in))
			assert.Equal(t, tt.capitalized, capitalizeFieldName(tt.in))
		})
	}
}

func TestNameRegistry_Precedence(t *testing.T) {
	r := NewNameRegistry().
		Set("ownerId", Literal("Normalized")).
		Set("OwnerIds", Literal("Raw")).
		Set("Members", Literal("RawOnly"))

	got, ok := r.Resolve("OwnerIds", "")
	assert.True(t, ok)
	assert.Equal(t, "Normalized", got)

	got, ok = r.Resolve("Members", "")
	assert.True(t, ok)
	assert.Equal(t, "RawOnly", got)

	_, ok = r.Resolve("unknown", "")
	assert.False(t, ok)
}

func TestNameRegistry_DerivedOptOutDoesNotFallBackToRaw(t *testing.T) {
	r := NewNameRegistry().
		Set("level", Derived(func(string) (string, bool) { return "", false })).
		Set("levels", Literal("Levels"))

	_, ok := r.Resolve("levels", "User")
	assert.False(t, ok)
}

func TestNameEntry_Resolve(t *testing.T) {
	var zero NameEntry
	_, ok := zero.Resolve("T")
	assert.False(t, ok)

	_, ok = Literal("").Resolve("T")
	assert.False(t, ok)

	_, ok = Derived(nil).Resolve("T")
	assert.False(t, ok)

	got, ok := Derived(func(o string) (string, bool) { return o + "Id", true }).Resolve("Task")
	assert.True(t, ok)
	assert.Equal(t, "TaskId", got)
}

func TestNameRegistry_Merge(t *testing.T) {
	base := NewNameRegistry().Set("a", Literal("A")).Set("b", Literal("B"))
	over := NewNameRegistry().Set("b", Literal("B2"))
	merged := base.Merge(over)

	assert.Equal(t, 2, merged.Len())
	got, _ := merged.Resolve("b", "")
	assert.Equal(t, "B2", got)
	got, _ = base.Resolve("b", "")
	assert.Equal(t, "B", got)

	var nilRegistry *NameRegistry
	assert.Equal(t, 1, nilRegistry.Merge(over).Len())
}

func TestNameRegistryFromMap(t *testing.T) {
	r := NameRegistryFromMap(map[string]string{
		"ownerId": "UserId",
		"teamId":  "{type}TeamId",
	})
	got, ok := r.Resolve("ownerId", "Task")
	assert.True(t, ok)
	assert.Equal(t, "UserId", got)

	got, ok = r.Resolve("teamId", "Org")
	assert.True(t, ok)
	assert.Equal(t, "OrgTeamId", got)

	_, ok = r.Resolve("teamId", "")
	assert.False(t, ok)
}

func TestDefaultNameRegistry(t *testing.T) {
	r := DefaultNameRegistry()
	tests := []struct {
		field, owner, want string
		ok                 bool
	}{
		{"executorId", "Task", "UserId", true},
		{"orgRoleId", "Member", "RoleId", true},
		{"level", "PermissionBind", "PermissionBinding['UserLevel']", true},
		{"orgLevel", "Role", "", false},
		{"externalRoleId", "PermissionBind", "PermissionBinding['externalRoleId']", true},
		{"id", "", "", false},
		{"categoryId", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.field+"/"+tt.owner, func(t *testing.T) {
			got, ok := r.Resolve(tt.field, tt.owner)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
