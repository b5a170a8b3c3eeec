// Package policy provides the built-in replacement policies: FIFO, LIFO,
// LRU, MRU and Swapping, plus the Locked and Priority adaptors that wrap a
// base policy with an eviction filter.
//
// A policy is a plain replacement.Policy value; policies with no entry in a
// hook column fall back to the manager defaults (insert at tail, evict at
// head). Custom policies are written the same way, using the surgery
// primitives of the replacement package for constant-time reshuffling.
package policy

import "github.com/IvanBrykalov/boundcache/replacement"

// FIFO evicts in insertion order: insert at tail, evict at head. It is the
// zero policy — all hooks defaulted.
func FIFO[K comparable, V any]() replacement.Policy[K, V] {
	return replacement.Policy[K, V]{}
}

// LIFO evicts the most recently inserted entry first: insert at head,
// evict at head.
func LIFO[K comparable, V any]() replacement.Policy[K, V] {
	return replacement.Policy[K, V]{
		InsertPosition: func(first, _ replacement.Iterator[K, V]) replacement.Iterator[K, V] {
			return first
		},
	}
}

// LRU evicts the least recently used entry: accessed entries move to the
// tail, victims come from the head.
func LRU[K comparable, V any]() replacement.Policy[K, V] {
	return replacement.Policy[K, V]{
		Access: func(_, last, accessed replacement.Iterator[K, V]) {
			next := accessed.Next()
			if next != last {
				replacement.Move(accessed, next, last)
			}
		},
	}
}

// MRU evicts the most recently used entry: insert at head, accessed entries
// move to the head, victims come from the head.
func MRU[K comparable, V any]() replacement.Policy[K, V] {
	return replacement.Policy[K, V]{
		InsertPosition: func(first, _ replacement.Iterator[K, V]) replacement.Iterator[K, V] {
			return first
		},
		Access: func(first, _, accessed replacement.Iterator[K, V]) {
			if accessed != first {
				replacement.Move(accessed, accessed.Next(), first)
			}
		},
	}
}

// Swapping promotes an accessed entry one step toward the tail by swapping
// it with its successor; repeated hits bubble hot entries away from the
// eviction front.
func Swapping[K comparable, V any]() replacement.Policy[K, V] {
	return replacement.Policy[K, V]{
		InsertPosition: func(first, _ replacement.Iterator[K, V]) replacement.Iterator[K, V] {
			return first
		},
		Access: func(_, last, accessed replacement.Iterator[K, V]) {
			next := accessed.Next()
			if next != last {
				replacement.IterSwap(next, accessed)
			}
		},
	}
}
