// Command bench runs a simple single-threaded throughput loop against the
// bounded map with a configurable policy, capacity and key space, and
// reports the resulting hit ratio.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"time"

	"github.com/IvanBrykalov/boundcache/cache"
	"github.com/IvanBrykalov/boundcache/policy"
	"github.com/IvanBrykalov/boundcache/replacement"
)

func main() {
	var (
		capacity = flag.Uint64("capacity", 100_000, "total weight budget")
		keyspace = flag.Int("keyspace", 200_000, "distinct keys")
		ops      = flag.Int("ops", 2_000_000, "operations to run")
		polName  = flag.String("policy", "lru", "fifo|lifo|lru|mru|swapping")
		seed     = flag.Int64("seed", 1, "rng seed")
	)
	flag.Parse()

	var pol replacement.Policy[int, int]
	switch *polName {
	case "fifo":
		pol = policy.FIFO[int, int]()
	case "lifo":
		pol = policy.LIFO[int, int]()
	case "lru":
		pol = policy.LRU[int, int]()
	case "mru":
		pol = policy.MRU[int, int]()
	case "swapping":
		pol = policy.Swapping[int, int]()
	default:
		fmt.Println("unknown policy:", *polName)
		return
	}

	m := cache.New[int, int](cache.Options[int, int]{
		Capacity: *capacity,
		Policy:   pol,
	})

	rng := rand.New(rand.NewSource(*seed))
	var hits, misses int
	start := time.Now()
	for i := 0; i < *ops; i++ {
		k := rng.Intn(*keyspace)
		if _, ok := m.Get(k); ok {
			hits++
			continue
		}
		misses++
		if _, _, err := m.Insert(k, i); err != nil {
			panic(err)
		}
	}
	dur := time.Since(start)

	fmt.Printf("policy=%s ops=%d dur=%s (%.0f ops/s)\n",
		*polName, *ops, dur, float64(*ops)/dur.Seconds())
	fmt.Printf("hits=%d misses=%d ratio=%.3f entries=%d weight=%d\n",
		hits, misses, float64(hits)/float64(hits+misses), m.Len(), m.Weight())
}
