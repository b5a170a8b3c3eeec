package cache

import "github.com/IvanBrykalov/boundcache/replacement"

// Options configures a Map. Zero values are safe; defaults are applied in
// New:
//   - nil Hasher        => util.DefaultHash (xxhash/FNV over common key types)
//   - nil Equal         => ==
//   - nil Weigher       => unit weight (capacity counts entries)
//   - zero Policy       => FIFO
//   - BucketCount <= 0  => a small power of two
//   - MaxLoadFactor <= 0 => 1.0
//   - nil Metrics       => NoopMetrics
type Options[K comparable, V any] struct {
	// Capacity is the maximum total weight the map will hold.
	Capacity uint64

	// Hasher and Equal define key identity. They must agree: keys that
	// compare equal must hash equally.
	Hasher func(K) uint64
	Equal  func(K, K) bool

	// Weigher computes per-entry weights. It must be deterministic.
	Weigher replacement.Weigher[K, V]

	// Policy picks insert positions and eviction victims; see the policy
	// package for the built-ins. The zero value is FIFO.
	Policy replacement.Policy[K, V]

	// Hash table tuning.
	BucketCount   int
	MaxLoadFactor float64

	// Observability.
	// OnEvict is called for every entry removed by the policy (not for
	// explicit erases). Keep callbacks lightweight.
	OnEvict func(key K, value V)
	Metrics Metrics
}
