package cache

import "github.com/IvanBrykalov/boundcache/replacement"

// Node is an extracted entry: it belongs to no map and is owned by the
// caller until re-inserted. The zero Node is empty.
type Node[K comparable, V any] struct {
	n *replacement.Node[K, V]
}

// Empty reports whether the handle holds no entry.
func (h Node[K, V]) Empty() bool { return h.n == nil }

// Key returns the extracted entry's key. It panics on an empty handle.
func (h Node[K, V]) Key() K { return h.n.Key() }

// Value returns the extracted entry's value. It panics on an empty handle.
func (h Node[K, V]) Value() V { return h.n.Value() }

// InsertResult reports the outcome of InsertNode: the position of the entry
// with the node's key, whether the node was inserted, and — when it was
// not — the still-owned node.
type InsertResult[K comparable, V any] struct {
	Position Iterator[K, V]
	Inserted bool
	Node     Node[K, V]
}

// Extract removes the entry stored under key from both structures and
// returns it as a caller-owned node. The second result is false when the
// key is absent.
func (m *Map[K, V]) Extract(key K) (Node[K, V], bool) {
	n := m.tab.Find(key)
	if n == nil {
		return Node[K, V]{}, false
	}
	return m.ExtractIter(replacement.ToIter(n)), true
}

// ExtractIter removes the pointed-at entry from both structures and
// returns it as a caller-owned node.
func (m *Map[K, V]) ExtractIter(it Iterator[K, V]) Node[K, V] {
	m.man.Erase(it)
	m.tab.Remove(it.Node())
	m.noteSize()
	return Node[K, V]{n: it.Node()}
}

// InsertNode re-inserts an extracted node, enforcing the same fit rules as
// Insert. When the node's key is already resident the node stays with the
// caller (returned inside the result) and nothing changes. An empty handle
// inserts nothing.
func (m *Map[K, V]) InsertNode(h Node[K, V]) (InsertResult[K, V], error) {
	if h.Empty() {
		return InsertResult[K, V]{Position: m.man.End()}, nil
	}
	if resident := m.tab.Find(h.n.Key()); resident != nil {
		return InsertResult[K, V]{Position: replacement.ToIter(resident), Node: h}, nil
	}
	if !m.provideSpace(m.man.WeightOf(h.n.Key(), h.n.Value())) {
		m.opt.Metrics.Reject()
		return InsertResult[K, V]{Position: m.man.End(), Node: h}, ErrNoSpace
	}
	m.tab.Insert(h.n)
	it := m.man.Insert(h.n)
	m.noteSize()
	return InsertResult[K, V]{Position: it, Inserted: true}, nil
}
