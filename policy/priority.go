package policy

import (
	"math"

	"github.com/IvanBrykalov/boundcache/replacement"
)

const (
	// PriorityMax marks an entry as unevictable.
	PriorityMax uint64 = math.MaxUint64
	// PriorityMin marks an entry for eviction on sight.
	PriorityMin uint64 = 0
)

// PriorityFunc returns the eviction priority of an entry. Higher priorities
// survive longer; see PriorityMax and PriorityMin for the two sentinels.
type PriorityFunc[K comparable, V any] func(key K, value V) uint64

// Priority wraps parent with priority-based victim selection.
//
// The scan starts at the first entry whose priority is below PriorityMax
// (returning last when there is none) and then looks ahead: an entry with
// priority P earns a look-ahead budget of P further steps, each non-better
// step spending one unit of budget, each strictly lower-priority entry
// becoming the new candidate with its own priority as the remaining budget.
// The walk stops when the budget hits PriorityMin or the range ends; the
// candidate at that point is the victim.
//
// The parent must not define its own ErasePosition hook; Priority panics on
// construction if it does.
func Priority[K comparable, V any](parent replacement.Policy[K, V], prio PriorityFunc[K, V]) replacement.Policy[K, V] {
	if parent.ErasePosition != nil {
		panic("policy: Priority cannot wrap a policy with a custom erase position")
	}
	out := parent
	out.ErasePosition = func(first, last replacement.Iterator[K, V]) replacement.Iterator[K, V] {
		if first == last {
			return last
		}
		lowest := first
		for prio(lowest.Key(), lowest.Value()) == PriorityMax {
			lowest = lowest.Next()
			if lowest == last {
				return last
			}
		}
		it := lowest.Next()
		current := prio(lowest.Key(), lowest.Value())
		for current > PriorityMin && it != last {
			p := prio(it.Key(), it.Value())
			if p < current {
				lowest = it
				current = p
			} else {
				current--
			}
			it = it.Next()
		}
		return lowest
	}
	return out
}
