package replacement

// List surgery primitives. All operations are O(1) relinks (except Reverse,
// which touches every node in the range) and never allocate. Policies use
// them to implement replacement strategies; they are exported so that custom
// policies can do the same.
//
// Ranges are half-open [first, last) in replacement order. The caller is
// responsible for all iterators belonging to the same list.

// Move splices the range [first, last) to the position just before dest.
// dest must not lie inside [first, last).
func Move[K comparable, V any](first, last, dest Iterator[K, V]) {
	before := first.n.prev
	firstN := first.n
	lastN := last.n.prev
	after := last.n
	dBefore := dest.n.prev
	dAfter := dest.n

	link(before, after)
	link(dBefore, firstN)
	link(lastN, dAfter)
}

// IterSwap exchanges the positions of the two pointed-at nodes. The nodes
// may be adjacent in either order.
func IterSwap[K comparable, V any](a, b Iterator[K, V]) {
	beforeA, aN, afterA := a.n.prev, a.n, a.n.next
	beforeB, bN, afterB := b.n.prev, b.n, b.n.next

	switch {
	case aN == beforeB:
		link(beforeA, bN)
		link(bN, aN)
		link(aN, afterB)
	case aN == afterB:
		link(beforeB, aN)
		link(aN, bN)
		link(bN, afterA)
	case aN != bN:
		link(beforeB, aN)
		link(aN, afterB)
		link(beforeA, bN)
		link(bN, afterA)
	}
}

// SwapRanges exchanges the positions of the ranges [first1, last1) and
// [first2, last2). The ranges must not overlap; they may be adjacent.
func SwapRanges[K comparable, V any](first1, last1, first2, last2 Iterator[K, V]) {
	before1 := first1.n.prev
	first1N := first1.n
	last1N := last1.n.prev
	after1 := last1.n
	before2 := first2.n.prev
	first2N := first2.n
	last2N := last2.n.prev
	after2 := last2.n

	switch {
	case first2N == after1:
		link(before1, first2N)
		link(last2N, first1N)
		link(last1N, after2)
	case first1N == after2:
		link(before2, first1N)
		link(last1N, first2N)
		link(last2N, after1)
	case first1N != first2N || last1N != last2N:
		link(before1, first2N)
		link(last2N, after1)
		link(before2, first1N)
		link(last1N, after2)
	}
}

// Reverse reverses the order of the nodes inside [first, last) in place.
func Reverse[K comparable, V any](first, last Iterator[K, V]) {
	before := first.n.prev
	firstN := first.n
	lastN := last.n.prev
	after := last.n

	cur := firstN.next
	for cur != after {
		next := cur.next
		link(cur, cur.prev)
		cur = next
	}
	link(before, lastN)
	link(firstN, after)
}

// Rotate rearranges [first, last) so that nFirst becomes the first element
// of the range and its former predecessor the last.
func Rotate[K comparable, V any](first, nFirst, last Iterator[K, V]) {
	Move(first, nFirst, last)
}
