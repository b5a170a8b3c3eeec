// Package cache provides a bounded, weighted, policy-driven associative
// container: a map from keys to values that never holds more total weight
// than its capacity and evicts resident entries to make room, in an order
// chosen by a pluggable replacement policy.
//
// # Design
//
//   - Storage: a pointer-stable hash index (user-supplied hash/equality)
//     holds the entries; every entry is simultaneously threaded on an
//     intrusive circular replacement list managed by the replacement
//     package. Both structures always agree on membership.
//
//   - Weights: a user weigher assigns each pair a weight (default 1, which
//     turns the capacity into an entry count). The weight is cached on the
//     entry so erase and update never re-run the weigher.
//
//   - Policies: the policy package ships FIFO, LIFO, LRU, MRU, Swapping and
//     the Locked/Priority adaptors. The zero policy is FIFO. Custom
//     policies are three optional hooks over replacement iterators.
//
//   - Eviction: any operation that adds or grows an entry first makes the
//     new weight fit, evicting policy-chosen victims one at a time. When
//     the policy runs out of victims before enough space is free, the
//     already-evicted entries are re-linked in their exact positions and
//     the operation fails with ErrNoSpace, leaving the map byte-identical
//     to its pre-call state.
//
//   - Quiet lookups: every lookup has a quiet variant that bypasses the
//     policy's access hook and leaves the replacement order untouched.
//
//   - Metrics: Options.Metrics receives Hit/Miss/Evict/Reject/Size
//     signals; plug metrics/prom for a Prometheus exporter.
//     Options.OnEvict observes policy evictions.
//
// # Concurrency
//
// A Map has no internal locking. Callers must serialize all mutating
// operations and all non-quiet lookups (non-quiet lookups reshuffle the
// replacement list), for example with one external mutex held around
// every such call.
//
// # Basic usage
//
//	m := cache.New[string, string](cache.Options[string, string]{Capacity: 3})
//	_, _, _ = m.Insert("a", "1")
//	if v, ok := m.Get("a"); ok {
//	    _ = v
//	}
//
// With a weigher and LRU:
//
//	m := cache.New[string, []byte](cache.Options[string, []byte]{
//	    Capacity: 64 << 20,
//	    Weigher:  func(k string, v []byte) uint64 { return uint64(len(k) + len(v)) },
//	    Policy:   policy.LRU[string, []byte](),
//	})
//	if _, _, err := m.Insert("blob", data); errors.Is(err, cache.ErrNoSpace) {
//	    // nothing evictable was large enough
//	}
//
// Pinning entries:
//
//	pinned := map[string]bool{"boot": true}
//	m := cache.New[string, int](cache.Options[string, int]{
//	    Capacity: 100,
//	    Policy: policy.Locked(policy.LRU[string, int](), func(k string, _ int) bool {
//	        return pinned[k]
//	    }),
//	})
package cache
