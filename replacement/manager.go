// Package replacement implements the policy-driven replacement engine: a
// circular doubly-linked list over cache entries, weight accounting against
// a fixed capacity, and victim selection through pluggable policy hooks.
//
// The list is intrusive (links live inside Node) and carries a permanent
// sentinel embedded in the Manager; the sentinel is its own neighbor when
// the list is empty and doubles as the end position. Keeping the sentinel
// inside the Manager makes Swap non-trivial: the neighbors of both
// sentinels must be re-pointed at their new addresses.
package replacement

// Manager owns the replacement order of a set of nodes and the running
// total of their weights. It does not own node storage: callers thread
// externally-allocated nodes in and out.
//
// The zero Manager is ready to use and has capacity 0; use Init or
// NewManager to set a capacity, weigher and policy. A Manager must not be
// copied after first use (the sentinel is part of its storage); transfer it
// with Swap instead.
type Manager[K comparable, V any] struct {
	root     Node[K, V] // sentinel: root.next is front, &root is end
	capacity uint64
	weight   uint64
	weigher  Weigher[K, V]
	policy   Policy[K, V]
}

// NewManager returns a manager with the given capacity, weigher and policy.
// A nil weigher defaults to UnitWeigher. The zero policy is FIFO.
func NewManager[K comparable, V any](capacity uint64, weigher Weigher[K, V], policy Policy[K, V]) *Manager[K, V] {
	m := new(Manager[K, V])
	m.Init(capacity, weigher, policy)
	return m
}

// Init resets the manager to an empty list with the given configuration.
// Any previously threaded nodes are abandoned.
func (m *Manager[K, V]) Init(capacity uint64, weigher Weigher[K, V], policy Policy[K, V]) {
	if weigher == nil {
		weigher = UnitWeigher[K, V]
	}
	m.capacity = capacity
	m.weight = 0
	m.weigher = weigher
	m.policy = policy
	link(&m.root, &m.root)
}

// lazyInit makes the zero Manager usable.
func (m *Manager[K, V]) lazyInit() {
	if m.root.next == nil {
		link(&m.root, &m.root)
	}
	if m.weigher == nil {
		m.weigher = UnitWeigher[K, V]
	}
}

// Begin returns an iterator to the front of the replacement order, the
// entry the default policy evicts first.
func (m *Manager[K, V]) Begin() Iterator[K, V] {
	m.lazyInit()
	return Iterator[K, V]{n: m.root.next}
}

// End returns the past-the-end iterator. It stays valid across all list
// mutations and compares equal only to itself.
func (m *Manager[K, V]) End() Iterator[K, V] {
	m.lazyInit()
	return Iterator[K, V]{n: &m.root}
}

// Weight returns the total weight of the threaded nodes.
func (m *Manager[K, V]) Weight() uint64 { return m.weight }

// Capacity returns the maximum total weight.
func (m *Manager[K, V]) Capacity() uint64 { return m.capacity }

// SetCapacity changes the maximum total weight. The new capacity must not
// be below the current weight.
func (m *Manager[K, V]) SetCapacity(capacity uint64) {
	if capacity < m.weight {
		panic("replacement: capacity below current weight")
	}
	m.capacity = capacity
}

// CanFit reports whether a node of weight w fits next to the current
// contents.
func (m *Manager[K, V]) CanFit(w uint64) bool { return m.weight+w <= m.capacity }

// WeightOf runs the weigher on a pair.
func (m *Manager[K, V]) WeightOf(key K, value V) uint64 {
	m.lazyInit()
	return m.weigher(key, value)
}

// Weigher returns the weigher in use.
func (m *Manager[K, V]) Weigher() Weigher[K, V] {
	m.lazyInit()
	return m.weigher
}

// Policy returns the policy in use.
func (m *Manager[K, V]) Policy() Policy[K, V] { return m.policy }

// Clear unthreads all nodes and resets the weight. The nodes themselves are
// untouched.
func (m *Manager[K, V]) Clear() {
	link(&m.root, &m.root)
	m.weight = 0
}

// insertPosition consults the policy for the position new nodes are
// spliced before.
func (m *Manager[K, V]) insertPosition() Iterator[K, V] {
	if f := m.policy.InsertPosition; f != nil {
		return f(m.Begin(), m.End())
	}
	return m.End()
}

// Insert threads a detached node into the list at the policy's insert
// position (list end when the policy has no InsertPosition hook), caches
// the node's weight and adds it to the running total.
//
// The caller must have established CanFit(WeightOf(key, value)); the
// manager does not re-check.
func (m *Manager[K, V]) Insert(n *Node[K, V]) Iterator[K, V] {
	m.lazyInit()
	w := m.weigher(n.key, n.value)
	place := m.insertPosition()
	link(place.n.prev, n)
	link(n, place.n)
	m.weight += w
	n.weight = w
	return Iterator[K, V]{n: n}
}

// Reinsert re-links a node previously removed with Erase, using the links
// preserved on the node. It is only valid when no other list mutation
// happened between the matching Erase and this call; paired erases must be
// reinserted in reverse order. Used to rewind a failed eviction run.
func (m *Manager[K, V]) Reinsert(it Iterator[K, V]) {
	m.lazyInit()
	n := it.n
	m.weight += n.weight
	link(n.prev, n)
	link(n, n.next)
}

// Erase unlinks the pointed-at node and subtracts its cached weight. The
// removed node keeps its prev/next fields so that a matching Reinsert can
// restore it to the exact position. Returns an iterator to the successor.
func (m *Manager[K, V]) Erase(it Iterator[K, V]) Iterator[K, V] {
	next := it.n.next
	link(it.n.prev, next)
	m.weight -= it.n.weight
	return Iterator[K, V]{n: next}
}

// EraseRange unlinks every node in [first, last) with a single relink after
// summing the cached weights. Returns last.
func (m *Manager[K, V]) EraseRange(first, last Iterator[K, V]) Iterator[K, V] {
	prev := first.n.prev
	var sum uint64
	for it := first; it != last; it = it.Next() {
		sum += it.n.weight
	}
	m.weight -= sum
	link(prev, last.n)
	return last
}

// UpdateWeight swaps the cached weight of a threaded node. oldWeight must
// match the cached value and the new total must not exceed capacity; both
// are the caller's contract.
func (m *Manager[K, V]) UpdateWeight(it Iterator[K, V], oldWeight, newWeight uint64) {
	m.weight -= oldWeight
	m.weight += newWeight
	it.n.weight = newWeight
}

// Access runs the policy's access hook for the pointed-at node. No-op when
// the policy has no Access hook.
func (m *Manager[K, V]) Access(it Iterator[K, V]) {
	if f := m.policy.Access; f != nil {
		f(m.Begin(), m.End(), it)
	}
}

// erasePosition consults the policy for the next victim in [first, End).
func (m *Manager[K, V]) erasePosition(first Iterator[K, V]) Iterator[K, V] {
	if f := m.policy.ErasePosition; f != nil {
		return f(first, m.End())
	}
	return first
}

// Next returns the entry the policy would evict next, or End when the list
// is empty or the policy refuses every entry.
func (m *Manager[K, V]) Next() Iterator[K, V] {
	m.lazyInit()
	if m.Begin() == m.End() {
		return m.End()
	}
	return m.erasePosition(m.Begin())
}

// NextFrom behaves like Next but starts the policy's search at hint.
// A hint of End short-circuits to End.
func (m *Manager[K, V]) NextFrom(hint Iterator[K, V]) Iterator[K, V] {
	m.lazyInit()
	if hint == m.End() {
		return m.End()
	}
	return m.erasePosition(hint)
}

// NextExcept returns the next victim while hiding except from the policy:
// the node is temporarily unlinked, the policy queried, and the node
// re-linked in exactly its original position. An except of End is
// equivalent to plain Next.
func (m *Manager[K, V]) NextExcept(except Iterator[K, V]) Iterator[K, V] {
	m.lazyInit()
	if except == m.End() {
		return m.Next()
	}
	if m.Begin() == m.End() {
		return m.End()
	}
	prev, next := except.n.prev, except.n.next
	link(prev, next)
	ret := m.erasePosition(m.Begin())
	link(prev, except.n)
	link(except.n, next)
	return ret
}

// NextExceptFrom combines NextFrom and NextExcept. When hint points at the
// excluded node, the search starts at its successor instead.
func (m *Manager[K, V]) NextExceptFrom(hint, except Iterator[K, V]) Iterator[K, V] {
	m.lazyInit()
	if except == m.End() {
		return m.NextFrom(hint)
	}
	if m.Begin() == m.End() {
		return m.End()
	}
	if hint == except {
		hint = hint.Next()
	}
	prev, next := except.n.prev, except.n.next
	link(prev, next)
	ret := m.erasePosition(hint)
	link(prev, except.n)
	link(except.n, next)
	return ret
}

// Swap exchanges the full state of two managers, including their threaded
// lists. Because each sentinel lives inside its manager, the first and last
// real nodes of both lists are patched to point at their new sentinel.
func (m *Manager[K, V]) Swap(other *Manager[K, V]) {
	m.lazyInit()
	other.lazyInit()
	m.root.prev, other.root.prev = other.root.prev, m.root.prev
	m.root.next, other.root.next = other.root.next, m.root.next
	m.fixRoot(&other.root)
	other.fixRoot(&m.root)
	m.capacity, other.capacity = other.capacity, m.capacity
	m.weight, other.weight = other.weight, m.weight
	m.weigher, other.weigher = other.weigher, m.weigher
	m.policy, other.policy = other.policy, m.policy
}

// fixRoot repairs the neighbor links around this manager's sentinel after
// its links were copied from a sentinel at a different address (old).
func (m *Manager[K, V]) fixRoot(old *Node[K, V]) {
	if m.root.next == old {
		// The adopted list was empty: its sentinel pointed at itself.
		link(&m.root, &m.root)
	} else {
		link(&m.root, m.root.next)
		link(m.root.prev, &m.root)
	}
}
