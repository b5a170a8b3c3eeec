// Package index implements the keyed side of the cache: a chained hash
// table from key to replacement-list node, with caller-supplied hash and
// equality and a bucket surface for introspection.
//
// The table stores node pointers; the nodes themselves are heap-allocated
// and never move, so references held by the replacement list (or by the
// caller) survive rehashing and growth. Go's built-in map cannot serve
// here: it hides its buckets and hard-wires hashing, while this table must
// honor user-provided hash/equality pairs and expose per-bucket iteration.
package index

import (
	"iter"

	"github.com/IvanBrykalov/boundcache/internal/util"
	"github.com/IvanBrykalov/boundcache/replacement"
)

const defaultBucketCount = 8

// Table is a pointer-stable hash index over replacement nodes. It is not
// safe for concurrent use.
type Table[K comparable, V any] struct {
	buckets [][]*replacement.Node[K, V] // len is always a power of two
	size    int
	maxLoad float64
	hash    func(K) uint64
	equal   func(K, K) bool
}

// New builds a table with at least bucketCount buckets (rounded up to a
// power of two). A nil hash falls back to util.DefaultHash, a nil equal to
// ==. Hash and equality must agree: equal keys hash equally.
func New[K comparable, V any](bucketCount int, hash func(K) uint64, equal func(K, K) bool) *Table[K, V] {
	if bucketCount <= 0 {
		bucketCount = defaultBucketCount
	}
	if hash == nil {
		hash = util.DefaultHash[K]
	}
	if equal == nil {
		equal = func(a, b K) bool { return a == b }
	}
	n := int(util.NextPow2(uint64(bucketCount)))
	return &Table[K, V]{
		buckets: make([][]*replacement.Node[K, V], n),
		maxLoad: 1.0,
		hash:    hash,
		equal:   equal,
	}
}

// Len returns the number of stored nodes.
func (t *Table[K, V]) Len() int { return t.size }

// Hash returns the hash function in use.
func (t *Table[K, V]) Hash() func(K) uint64 { return t.hash }

// Equal returns the key equality in use.
func (t *Table[K, V]) Equal() func(K, K) bool { return t.equal }

func (t *Table[K, V]) bucketIndex(h uint64) int {
	return int(h) & (len(t.buckets) - 1)
}

// Find returns the node stored under key, or nil.
func (t *Table[K, V]) Find(key K) *replacement.Node[K, V] {
	for _, n := range t.buckets[t.bucketIndex(t.hash(key))] {
		if t.equal(n.Key(), key) {
			return n
		}
	}
	return nil
}

// Insert stores a detached node under its key. When the key is already
// present the resident node is returned with false and the argument is left
// detached.
func (t *Table[K, V]) Insert(n *replacement.Node[K, V]) (*replacement.Node[K, V], bool) {
	if resident := t.Find(n.Key()); resident != nil {
		return resident, false
	}
	t.growFor(t.size + 1)
	i := t.bucketIndex(t.hash(n.Key()))
	t.buckets[i] = append(t.buckets[i], n)
	t.size++
	return n, true
}

// Remove deletes a node by identity. Returns false when the node is not in
// the table.
func (t *Table[K, V]) Remove(n *replacement.Node[K, V]) bool {
	i := t.bucketIndex(t.hash(n.Key()))
	b := t.buckets[i]
	for j, cand := range b {
		if cand == n {
			last := len(b) - 1
			b[j] = b[last]
			b[last] = nil
			t.buckets[i] = b[:last]
			t.size--
			return true
		}
	}
	return false
}

// RemoveKey deletes the node stored under key, reporting how many were
// removed (0 or 1).
func (t *Table[K, V]) RemoveKey(key K) int {
	if n := t.Find(key); n != nil {
		t.Remove(n)
		return 1
	}
	return 0
}

// Clear drops every node, keeping the current bucket count.
func (t *Table[K, V]) Clear() {
	t.buckets = make([][]*replacement.Node[K, V], len(t.buckets))
	t.size = 0
}

// LoadFactor returns size divided by bucket count.
func (t *Table[K, V]) LoadFactor() float64 {
	return float64(t.size) / float64(len(t.buckets))
}

// MaxLoadFactor returns the load factor the table keeps itself under.
func (t *Table[K, V]) MaxLoadFactor() float64 { return t.maxLoad }

// SetMaxLoadFactor changes the target load factor (must be > 0) and grows
// the table immediately if the current load exceeds it.
func (t *Table[K, V]) SetMaxLoadFactor(ml float64) {
	if ml <= 0 {
		panic("index: max load factor must be positive")
	}
	t.maxLoad = ml
	t.growFor(t.size)
}

// Rehash resizes to at least count buckets (rounded up to a power of two),
// never shrinking below what the load factor requires.
func (t *Table[K, V]) Rehash(count int) {
	n := util.NextPow2(uint64(max(count, 1)))
	for float64(t.size) > t.maxLoad*float64(n) {
		n *= 2
	}
	if int(n) == len(t.buckets) {
		return
	}
	old := t.buckets
	t.buckets = make([][]*replacement.Node[K, V], n)
	for _, b := range old {
		for _, node := range b {
			i := t.bucketIndex(t.hash(node.Key()))
			t.buckets[i] = append(t.buckets[i], node)
		}
	}
}

// Reserve prepares the table for count entries without violating the load
// factor.
func (t *Table[K, V]) Reserve(count int) {
	t.Rehash(int(float64(count)/t.maxLoad) + 1)
}

// growFor rehashes when holding n entries would exceed the load factor.
func (t *Table[K, V]) growFor(n int) {
	if float64(n) > t.maxLoad*float64(len(t.buckets)) {
		t.Rehash(len(t.buckets) * 2)
	}
}

// BucketCount returns the number of buckets.
func (t *Table[K, V]) BucketCount() int { return len(t.buckets) }

// Bucket returns the bucket index the key falls into. Only the key is
// hashed; no value is involved.
func (t *Table[K, V]) Bucket(key K) int { return t.bucketIndex(t.hash(key)) }

// BucketSize returns the number of nodes in bucket i.
func (t *Table[K, V]) BucketSize(i int) int { return len(t.buckets[i]) }

// InBucket iterates the nodes of bucket i.
func (t *Table[K, V]) InBucket(i int) iter.Seq[*replacement.Node[K, V]] {
	return func(yield func(*replacement.Node[K, V]) bool) {
		for _, n := range t.buckets[i] {
			if !yield(n) {
				return
			}
		}
	}
}

// All iterates every node in index (bucket) order.
func (t *Table[K, V]) All() iter.Seq[*replacement.Node[K, V]] {
	return func(yield func(*replacement.Node[K, V]) bool) {
		for _, b := range t.buckets {
			for _, n := range b {
				if !yield(n) {
					return
				}
			}
		}
	}
}
