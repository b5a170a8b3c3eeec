package cache

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMapBucketSurface(t *testing.T) {
	t.Parallel()

	m := New[string, int](Options[string, int]{Capacity: 64, BucketCount: 8})
	keys := []string{"a", "b", "c", "d", "e", "f"}
	for i, k := range keys {
		m.Insert(k, i)
	}

	require.GreaterOrEqual(t, m.BucketCount(), 8)
	total := 0
	for i := 0; i < m.BucketCount(); i++ {
		for k := range m.InBucket(i) {
			require.Equal(t, i, m.Bucket(k))
			total++
		}
		require.Equal(t, m.BucketSize(i), lenSeq(m, i))
	}
	require.Equal(t, m.Len(), total)
}

func lenSeq(m *Map[string, int], i int) int {
	n := 0
	for range m.InBucket(i) {
		n++
	}
	return n
}

func TestMapRehashKeepsIterators(t *testing.T) {
	t.Parallel()

	m := New[int, int](Options[int, int]{Capacity: 1 << 12, BucketCount: 2})
	it, _, err := m.Insert(42, 420)
	require.NoError(t, err)

	for i := 0; i < 1000; i++ {
		if i != 42 {
			m.Insert(i, i)
		}
	}
	m.Rehash(4096)

	// Entry addresses are stable: the iterator taken before all the growth
	// and the explicit rehash still resolves.
	require.Equal(t, 42, it.Key())
	require.Equal(t, 420, it.Value())
	found, ok := m.QuietFind(42)
	require.True(t, ok)
	require.Same(t, it.Node(), found.Node())
	requireValid(t, m)
}

func TestMapLoadFactorControls(t *testing.T) {
	t.Parallel()

	m := New[int, int](Options[int, int]{Capacity: 1 << 12, MaxLoadFactor: 0.5})
	require.InDelta(t, 0.5, m.MaxLoadFactor(), 1e-9)
	for i := 0; i < 100; i++ {
		m.Insert(i, i)
	}
	require.LessOrEqual(t, m.LoadFactor(), m.MaxLoadFactor())

	m.SetMaxLoadFactor(0.25)
	require.LessOrEqual(t, m.LoadFactor(), 0.25)

	before := m.BucketCount()
	m.Reserve(10_000)
	require.Greater(t, m.BucketCount(), before)
	requireValid(t, m)
}

func TestMapIndexIteration(t *testing.T) {
	t.Parallel()

	m := New[int, int](Options[int, int]{Capacity: 16})
	want := map[int]int{}
	for i := 0; i < 10; i++ {
		m.Insert(i, i*i)
		want[i] = i * i
	}

	got := map[int]int{}
	for k, v := range m.All() {
		got[k] = v
	}
	require.Equal(t, want, got)
}
