package cache

// Eviction engine. freeSpace and provideSpace implement the rewindable
// eviction loop: victims are unlinked from the replacement list one at a
// time (their preserved links allow exact re-insertion) and dropped from
// the index only once enough weight is freed. If the policy reports "none"
// before that point, every unlinked victim is re-linked in reverse order
// and the map is exactly as before.

// FreeSpace evicts entries until at least w weight has been freed. It
// fails with ErrNoSpace — changing nothing — when the resident weight is
// below w or the policy refuses to give up enough victims.
func (m *Map[K, V]) FreeSpace(w uint64) error {
	if !m.freeSpace(w) {
		m.opt.Metrics.Reject()
		return ErrNoSpace
	}
	m.noteSize()
	return nil
}

// ProvideSpace ensures at least w weight is free, evicting only the
// shortfall. It fails with ErrNoSpace — changing nothing — when w exceeds
// capacity or eviction cannot cover the shortfall.
func (m *Map[K, V]) ProvideSpace(w uint64) error {
	if !m.provideSpace(w) {
		m.opt.Metrics.Reject()
		return ErrNoSpace
	}
	m.noteSize()
	return nil
}

func (m *Map[K, V]) freeSpace(w uint64) bool {
	if m.man.Weight() < w {
		return false
	}
	var freed uint64
	var removed []Iterator[K, V]
	next := m.man.Next()
	for freed < w {
		if next == m.man.End() {
			// The hint ran out; retry from the policy's full view.
			next = m.man.Next()
			if next == m.man.End() {
				for i := len(removed) - 1; i >= 0; i-- {
					m.man.Reinsert(removed[i])
				}
				return false
			}
		}
		freed += next.Weight()
		removed = append(removed, next)
		hint := m.man.Erase(next)
		next = m.man.NextFrom(hint)
	}
	m.dropEvicted(removed)
	return true
}

// freeSpaceExcept is freeSpace with one entry hidden from the policy, used
// by Assign so that growing an entry never evicts that entry.
func (m *Map[K, V]) freeSpaceExcept(w uint64, except Iterator[K, V]) bool {
	if m.man.Weight() < w {
		return false
	}
	var freed uint64
	var removed []Iterator[K, V]
	next := m.man.NextExcept(except)
	for freed < w {
		if next == m.man.End() {
			next = m.man.NextExcept(except)
			if next == m.man.End() {
				for i := len(removed) - 1; i >= 0; i-- {
					m.man.Reinsert(removed[i])
				}
				return false
			}
		}
		freed += next.Weight()
		removed = append(removed, next)
		hint := m.man.Erase(next)
		next = m.man.NextExceptFrom(hint, except)
	}
	m.dropEvicted(removed)
	return true
}

// dropEvicted removes committed victims from the index and reports them.
func (m *Map[K, V]) dropEvicted(removed []Iterator[K, V]) {
	for _, it := range removed {
		m.tab.Remove(it.Node())
		m.opt.Metrics.Evict()
		if cb := m.opt.OnEvict; cb != nil {
			cb(it.Key(), it.Value())
		}
	}
}

func (m *Map[K, V]) provideSpace(w uint64) bool {
	if w > m.man.Capacity() {
		return false
	}
	if free := m.man.Capacity() - m.man.Weight(); free >= w {
		return true
	}
	return m.freeSpace(w - (m.man.Capacity() - m.man.Weight()))
}

func (m *Map[K, V]) provideSpaceExcept(w uint64, except Iterator[K, V]) bool {
	if w > m.man.Capacity() {
		return false
	}
	if free := m.man.Capacity() - m.man.Weight(); free >= w {
		return true
	}
	return m.freeSpaceExcept(w-(m.man.Capacity()-m.man.Weight()), except)
}
