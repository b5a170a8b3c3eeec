package cache

import "iter"

// Hash-policy and bucket pass-through to the keyed index.

// LoadFactor returns the average number of entries per bucket.
func (m *Map[K, V]) LoadFactor() float64 { return m.tab.LoadFactor() }

// MaxLoadFactor returns the load factor the index keeps itself under.
func (m *Map[K, V]) MaxLoadFactor() float64 { return m.tab.MaxLoadFactor() }

// SetMaxLoadFactor changes the target load factor (must be > 0).
func (m *Map[K, V]) SetMaxLoadFactor(ml float64) { m.tab.SetMaxLoadFactor(ml) }

// Rehash resizes the index to at least count buckets.
func (m *Map[K, V]) Rehash(count int) { m.tab.Rehash(count) }

// Reserve prepares the index for count entries.
func (m *Map[K, V]) Reserve(count int) { m.tab.Reserve(count) }

// BucketCount returns the number of buckets.
func (m *Map[K, V]) BucketCount() int { return m.tab.BucketCount() }

// Bucket returns the bucket index key falls into. Only the key is hashed.
func (m *Map[K, V]) Bucket(key K) int { return m.tab.Bucket(key) }

// BucketSize returns the number of entries in bucket i.
func (m *Map[K, V]) BucketSize(i int) int { return m.tab.BucketSize(i) }

// InBucket iterates the entries of bucket i without touching the
// replacement order.
func (m *Map[K, V]) InBucket(i int) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for n := range m.tab.InBucket(i) {
			if !yield(n.Key(), n.Value()) {
				return
			}
		}
	}
}
