package cache

import "github.com/IvanBrykalov/boundcache/replacement"

// Lookup family. Non-quiet lookups run the policy's access hook on a hit
// and feed hit/miss metrics; quiet variants read without any observable
// effect on the replacement order.

// Find returns an iterator to the entry stored under key, recording an
// access on hit.
func (m *Map[K, V]) Find(key K) (Iterator[K, V], bool) {
	n := m.tab.Find(key)
	if n == nil {
		m.opt.Metrics.Miss()
		return m.man.End(), false
	}
	it := replacement.ToIter(n)
	m.man.Access(it)
	m.opt.Metrics.Hit()
	return it, true
}

// QuietFind is Find without the access.
func (m *Map[K, V]) QuietFind(key K) (Iterator[K, V], bool) {
	n := m.tab.Find(key)
	if n == nil {
		return m.man.End(), false
	}
	return replacement.ToIter(n), true
}

// Get returns the value stored under key, recording an access on hit.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if it, ok := m.Find(key); ok {
		return it.Value(), true
	}
	var zero V
	return zero, false
}

// QuietGet is Get without the access.
func (m *Map[K, V]) QuietGet(key K) (V, bool) {
	if n := m.tab.Find(key); n != nil {
		return n.Value(), true
	}
	var zero V
	return zero, false
}

// At returns the value stored under key, recording an access; an absent
// key is ErrKeyNotFound.
func (m *Map[K, V]) At(key K) (V, error) {
	if it, ok := m.Find(key); ok {
		return it.Value(), nil
	}
	var zero V
	return zero, ErrKeyNotFound
}

// QuietAt is At without the access.
func (m *Map[K, V]) QuietAt(key K) (V, error) {
	if n := m.tab.Find(key); n != nil {
		return n.Value(), nil
	}
	var zero V
	return zero, ErrKeyNotFound
}

// Contains reports key residency, recording an access on hit.
func (m *Map[K, V]) Contains(key K) bool {
	_, ok := m.Find(key)
	return ok
}

// QuietContains is Contains without the access.
func (m *Map[K, V]) QuietContains(key K) bool {
	return m.tab.Find(key) != nil
}

// Count returns how many entries are stored under key (0 or 1), recording
// an access on hit.
func (m *Map[K, V]) Count(key K) int {
	if _, ok := m.Find(key); ok {
		return 1
	}
	return 0
}

// QuietCount is Count without the access.
func (m *Map[K, V]) QuietCount(key K) int {
	if m.tab.Find(key) != nil {
		return 1
	}
	return 0
}

// EqualRange returns the entries stored under key — zero or one, keys being
// unique — recording an access per returned entry.
func (m *Map[K, V]) EqualRange(key K) []Iterator[K, V] {
	if it, ok := m.Find(key); ok {
		return []Iterator[K, V]{it}
	}
	return nil
}

// QuietEqualRange is EqualRange without the accesses.
func (m *Map[K, V]) QuietEqualRange(key K) []Iterator[K, V] {
	if n := m.tab.Find(key); n != nil {
		return []Iterator[K, V]{replacement.ToIter(n)}
	}
	return nil
}

// GetOrInsert returns the entry stored under key, inserting the zero value
// when the key is absent (subject to the usual fit rules). A hit records
// an access.
func (m *Map[K, V]) GetOrInsert(key K) (Iterator[K, V], error) {
	if n := m.tab.Find(key); n != nil {
		it := replacement.ToIter(n)
		m.man.Access(it)
		m.opt.Metrics.Hit()
		return it, nil
	}
	m.opt.Metrics.Miss()
	var zero V
	it, _, err := m.insertNew(key, zero)
	return it, err
}
