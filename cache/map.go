package cache

import (
	"iter"

	"github.com/IvanBrykalov/boundcache/internal/index"
	"github.com/IvanBrykalov/boundcache/replacement"
)

// Iterator points into a Map's replacement order; see replacement.Iterator.
type Iterator[K comparable, V any] = replacement.Iterator[K, V]

// Item is a key/value pair for batch operations and construction.
type Item[K comparable, V any] struct {
	Key   K
	Value V
}

// Map is a bounded weighted associative container. It is not safe for
// concurrent use and must not be copied after first use; transfer it with
// Swap or Clone.
type Map[K comparable, V any] struct {
	tab *index.Table[K, V]
	man replacement.Manager[K, V]
	opt Options[K, V]
}

// New constructs a Map from Options, applying the documented defaults.
func New[K comparable, V any](opt Options[K, V]) *Map[K, V] {
	if opt.Metrics == nil {
		opt.Metrics = NoopMetrics{}
	}
	m := &Map[K, V]{
		tab: index.New[K, V](opt.BucketCount, opt.Hasher, opt.Equal),
		opt: opt,
	}
	m.man.Init(opt.Capacity, opt.Weigher, opt.Policy)
	if opt.MaxLoadFactor > 0 {
		m.tab.SetMaxLoadFactor(opt.MaxLoadFactor)
	}
	return m
}

// NewFromItems constructs a Map and batch-inserts items. The whole batch
// must fit: on ErrNoSpace the returned map is empty.
func NewFromItems[K comparable, V any](items []Item[K, V], opt Options[K, V]) (*Map[K, V], error) {
	m := New(opt)
	if err := m.InsertBatch(items); err != nil {
		m.Clear()
		return m, err
	}
	return m, nil
}

// Len returns the number of resident entries.
func (m *Map[K, V]) Len() int { return m.tab.Len() }

// Empty reports whether the map holds no entries.
func (m *Map[K, V]) Empty() bool { return m.tab.Len() == 0 }

// Weight returns the total weight of resident entries.
func (m *Map[K, V]) Weight() uint64 { return m.man.Weight() }

// Capacity returns the maximum total weight.
func (m *Map[K, V]) Capacity() uint64 { return m.man.Capacity() }

// SetCapacity raises or lowers the capacity. The new capacity must not be
// below the current weight; free space first if it is.
func (m *Map[K, V]) SetCapacity(capacity uint64) { m.man.SetCapacity(capacity) }

// CanFit reports whether weight w fits without eviction.
func (m *Map[K, V]) CanFit(w uint64) bool { return m.man.CanFit(w) }

// WeightOf runs the weigher on a pair that need not be resident.
func (m *Map[K, V]) WeightOf(key K, value V) uint64 { return m.man.WeightOf(key, value) }

// Hasher returns the hash function in use.
func (m *Map[K, V]) Hasher() func(K) uint64 { return m.tab.Hash() }

// KeyEqual returns the key equality in use.
func (m *Map[K, V]) KeyEqual() func(K, K) bool { return m.tab.Equal() }

// Weigher returns the weigher in use.
func (m *Map[K, V]) Weigher() replacement.Weigher[K, V] { return m.man.Weigher() }

// Policy returns the replacement policy in use.
func (m *Map[K, V]) Policy() replacement.Policy[K, V] { return m.man.Policy() }

// ReplacementBegin returns an iterator to the front of the replacement
// order (the default policy's next victim).
func (m *Map[K, V]) ReplacementBegin() Iterator[K, V] { return m.man.Begin() }

// ReplacementEnd returns the past-the-end iterator of the replacement
// order.
func (m *Map[K, V]) ReplacementEnd() Iterator[K, V] { return m.man.End() }

// All iterates every entry in index order without touching the replacement
// order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for n := range m.tab.All() {
			if !yield(n.Key(), n.Value()) {
				return
			}
		}
	}
}

// ReplacementOrder iterates every entry front to back in replacement order
// without touching it.
func (m *Map[K, V]) ReplacementOrder() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for it := m.man.Begin(); it != m.man.End(); it = it.Next() {
			if !yield(it.Key(), it.Value()) {
				return
			}
		}
	}
}

// Clear removes every entry. Capacity, policy and hash configuration are
// retained.
func (m *Map[K, V]) Clear() {
	m.man.Clear()
	m.tab.Clear()
	m.noteSize()
}

// Swap exchanges the full contents and configuration of two maps in
// constant time.
func (m *Map[K, V]) Swap(other *Map[K, V]) {
	m.tab, other.tab = other.tab, m.tab
	m.opt, other.opt = other.opt, m.opt
	m.man.Swap(&other.man)
}

// Clone returns an independent copy with the same configuration. Entries
// are re-inserted in replacement order, so order-preserving policies
// reproduce the source order. The metrics sink is shared; pass a fresh one
// via Options and InsertBatch to separate them.
func (m *Map[K, V]) Clone() (*Map[K, V], error) {
	out := New(m.opt)
	for it := m.man.Begin(); it != m.man.End(); it = it.Next() {
		if _, _, err := out.Insert(it.Key(), it.Value()); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// ReplaceAll replaces the whole contents with items. The aggregate weight
// of items must not exceed capacity; on ErrNoSpace the map is unchanged.
func (m *Map[K, V]) ReplaceAll(items []Item[K, V]) error {
	var w uint64
	for _, it := range items {
		w += m.man.WeightOf(it.Key, it.Value)
	}
	if w > m.man.Capacity() {
		m.opt.Metrics.Reject()
		return ErrNoSpace
	}
	m.man.Clear()
	m.tab.Clear()
	return m.InsertBatch(items)
}

// Equal reports whether two maps hold the same keys with the same values.
// Replacement order, capacity and configuration are not compared. Lookups
// are quiet on both sides.
func Equal[K, V comparable](a, b *Map[K, V]) bool {
	if a.Len() != b.Len() {
		return false
	}
	for k, v := range a.All() {
		n := b.tab.Find(k)
		if n == nil || n.Value() != v {
			return false
		}
	}
	return true
}

// noteSize publishes the current size to the metrics sink.
func (m *Map[K, V]) noteSize() {
	m.opt.Metrics.Size(m.tab.Len(), m.man.Weight())
}
