package ordered

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestGroups(t *testing.T) {
	g := NewGroups[string]()
	assert.Equal(t, 0, g.Len())

	g.Add("B", "b1")
	g.Add("A", "a1")
	g.Add("B", "b2")
	g.Add("C", "c1")
	g.Add("A", "a2")

	want := []Group[string]{
		{Key: "B", Items: []string{"b1", "b2"}},
		{Key: "A", Items: []string{"a1", "a2"}},
		{Key: "C", Items: []string{"c1"}},
	}
	if diff := cmp.Diff(want, g.All()); diff != "" {
		t.Errorf("groups mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 3, g.Len())
}
