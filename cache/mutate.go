package cache

import "github.com/IvanBrykalov/boundcache/replacement"

// Insert adds key→value when the key is absent. A resident key is returned
// unchanged with inserted == false (and without touching the replacement
// order). A new key that cannot be made to fit fails with ErrNoSpace and no
// side effect.
func (m *Map[K, V]) Insert(key K, value V) (Iterator[K, V], bool, error) {
	if n := m.tab.Find(key); n != nil {
		return replacement.ToIter(n), false, nil
	}
	return m.insertNew(key, value)
}

// TryEmplace is Insert with a lazily built value: mk runs only when the key
// is absent, so expensive value construction is skipped on resident keys.
func (m *Map[K, V]) TryEmplace(key K, mk func() V) (Iterator[K, V], bool, error) {
	if n := m.tab.Find(key); n != nil {
		return replacement.ToIter(n), false, nil
	}
	return m.insertNew(key, mk())
}

// Upsert inserts when the key is absent and assigns (value and weight, with
// an access) when it is resident. inserted reports which path was taken.
func (m *Map[K, V]) Upsert(key K, value V) (Iterator[K, V], bool, error) {
	if n := m.tab.Find(key); n != nil {
		it := replacement.ToIter(n)
		if err := m.Assign(it, value); err != nil {
			return it, false, err
		}
		return it, false, nil
	}
	return m.insertNew(key, value)
}

// insertNew makes room for and threads a brand-new entry.
func (m *Map[K, V]) insertNew(key K, value V) (Iterator[K, V], bool, error) {
	if !m.provideSpace(m.man.WeightOf(key, value)) {
		m.opt.Metrics.Reject()
		return m.man.End(), false, ErrNoSpace
	}
	n := replacement.NewNode(key, value)
	m.tab.Insert(n)
	it := m.man.Insert(n)
	m.noteSize()
	return it, true, nil
}

// Assign replaces the value of a resident entry, recomputes its weight and
// records an access. When the weight grows, other entries are evicted to
// cover the difference — never this one. On ErrNoSpace the entry (and the
// map) is unchanged.
func (m *Map[K, V]) Assign(it Iterator[K, V], value V) error {
	n := it.Node()
	oldWeight := n.Weight()
	newWeight := m.man.WeightOf(n.Key(), value)
	if newWeight > oldWeight {
		if !m.provideSpaceExcept(newWeight-oldWeight, it) {
			m.opt.Metrics.Reject()
			return ErrNoSpace
		}
	}
	n.SetValue(value)
	m.man.UpdateWeight(it, oldWeight, newWeight)
	m.man.Access(it)
	m.noteSize()
	return nil
}

// InsertBatch inserts all items with absent keys as one atomic operation.
//
// Phase one parks each new entry in the index (unthreaded, weight not yet
// accounted) while summing the weight the batch needs, stopping early once
// the need alone exceeds capacity. Phase two frees the need in one eviction
// run; if that fails every parked entry is removed and the map — including
// the replacement order of pre-existing entries — is exactly as before.
// Only then is each new entry threaded at its policy insert position.
//
// Items whose keys are resident (or duplicated within the batch) are
// skipped, matching Insert on a resident key.
func (m *Map[K, V]) InsertBatch(items []Item[K, V]) error {
	var added []*replacement.Node[K, V]
	var need uint64
	for _, item := range items {
		n := replacement.NewNode(item.Key, item.Value)
		if _, ok := m.tab.Insert(n); !ok {
			continue
		}
		added = append(added, n)
		need += m.man.WeightOf(item.Key, item.Value)
		if need > m.man.Capacity() {
			break
		}
	}
	if !m.provideSpace(need) {
		for _, n := range added {
			m.tab.Remove(n)
		}
		m.opt.Metrics.Reject()
		return ErrNoSpace
	}
	for _, n := range added {
		m.man.Insert(n)
	}
	m.noteSize()
	return nil
}

// Erase removes the entry stored under key, reporting how many entries
// were removed (0 or 1).
func (m *Map[K, V]) Erase(key K) int {
	n := m.tab.Find(key)
	if n == nil {
		return 0
	}
	m.man.Erase(replacement.ToIter(n))
	m.tab.Remove(n)
	m.noteSize()
	return 1
}

// EraseIter removes the pointed-at entry and returns the iterator to its
// successor in replacement order.
func (m *Map[K, V]) EraseIter(it Iterator[K, V]) Iterator[K, V] {
	next := m.man.Erase(it)
	m.tab.Remove(it.Node())
	m.noteSize()
	return next
}

// EraseRange removes every entry in [first, last) of the replacement order
// and returns last.
func (m *Map[K, V]) EraseRange(first, last Iterator[K, V]) Iterator[K, V] {
	for it := first; it != last; it = it.Next() {
		m.tab.Remove(it.Node())
	}
	ret := m.man.EraseRange(first, last)
	m.noteSize()
	return ret
}

// Access moves the entry stored under key as if it had been looked up,
// reporting whether the key was resident.
func (m *Map[K, V]) Access(key K) bool {
	n := m.tab.Find(key)
	if n == nil {
		return false
	}
	m.man.Access(replacement.ToIter(n))
	return true
}

// AccessIter runs the policy's access hook for the pointed-at entry.
func (m *Map[K, V]) AccessIter(it Iterator[K, V]) {
	m.man.Access(it)
}
