// Package ordered groups items by key while keeping first-seen key order
// and insertion order inside each group.
package ordered

// Groups preserves the order in which keys and items were added.
type Groups[T any] struct {
	groups []Group[T]
	index  map[string]int
}

type Group[T any] struct {
	Key   string
	Items []T
}

func NewGroups[T any]() *Groups[T] {
	return &Groups[T]{index: make(map[string]int)}
}

// Add appends item to the group for key, creating it at the end if needed.
func (g *Groups[T]) Add(key string, item T) {
	if idx, ok := g.index[key]; ok {
		g.groups[idx].Items = append(g.groups[idx].Items, item)
		return
	}
	g.index[key] = len(g.groups)
	g.groups = append(g.groups, Group[T]{Key: key, Items: []T{item}})
}

// All returns the groups in first-seen order.
func (g *Groups[T]) All() []Group[T] { return g.groups }

func (g *Groups[T]) Len() int { return len(g.groups) }
