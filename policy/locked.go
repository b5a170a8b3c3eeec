package policy

import "github.com/IvanBrykalov/boundcache/replacement"

// Locker reports whether an entry is locked, i.e. must never be evicted.
type Locker[K comparable, V any] func(key K, value V) bool

// Locked wraps parent with an eviction filter: the victim is the first
// unlocked entry from the front of the range. When every entry is locked
// the hook returns last, which the container surfaces as "no space".
//
// The scan is O(n) in the number of consecutively locked entries. The
// parent must not define its own ErasePosition hook; Locked panics on
// construction if it does.
func Locked[K comparable, V any](parent replacement.Policy[K, V], locked Locker[K, V]) replacement.Policy[K, V] {
	if parent.ErasePosition != nil {
		panic("policy: Locked cannot wrap a policy with a custom erase position")
	}
	out := parent
	out.ErasePosition = func(first, last replacement.Iterator[K, V]) replacement.Iterator[K, V] {
		for it := first; it != last; it = it.Next() {
			if !locked(it.Key(), it.Value()) {
				return it
			}
		}
		return last
	}
	return out
}
