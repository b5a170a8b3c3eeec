package replacement

import "testing"

// build threads keys into a fresh FIFO manager and returns the manager plus
// an iterator per key.
func build(t *testing.T, keys ...int) (*Manager[int, int], map[int]Iterator[int, int]) {
	t.Helper()
	m := NewManager[int, int](uint64(len(keys)), nil, Policy[int, int]{})
	its := make(map[int]Iterator[int, int], len(keys))
	for _, k := range keys {
		its[k] = m.Insert(NewNode(k, k*10))
	}
	return m, its
}

// order collects keys front to back.
func order(m *Manager[int, int]) []int {
	var out []int
	for it := m.Begin(); it != m.End(); it = it.Next() {
		out = append(out, it.Key())
	}
	return out
}

// checkList verifies the expected order and full link symmetry, walking
// both directions through the sentinel.
func checkList(t *testing.T, m *Manager[int, int], want ...int) {
	t.Helper()
	got := order(m)
	if len(got) != len(want) {
		t.Fatalf("order = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
	for it := m.End(); ; {
		next := it.Next()
		if next.Prev() != it {
			t.Fatalf("link symmetry broken after key %v", it.Key())
		}
		it = next
		if it == m.End() {
			break
		}
	}
	for it := m.End(); ; {
		prev := it.Prev()
		if prev.Next() != it {
			t.Fatalf("reverse link symmetry broken after key %v", it.Key())
		}
		it = prev
		if it == m.End() {
			break
		}
	}
}

func TestMove(t *testing.T) {
	t.Parallel()

	t.Run("range to end", func(t *testing.T) {
		m, its := build(t, 1, 2, 3, 4, 5)
		Move(its[2], its[4], m.End()) // [2,3] before end
		checkList(t, m, 1, 4, 5, 2, 3)
	})
	t.Run("range to front", func(t *testing.T) {
		m, its := build(t, 1, 2, 3, 4, 5)
		Move(its[4], m.End(), its[1]) // [4,5] before 1
		checkList(t, m, 4, 5, 1, 2, 3)
	})
	t.Run("single element", func(t *testing.T) {
		m, its := build(t, 1, 2, 3)
		Move(its[3], m.End(), its[2])
		checkList(t, m, 1, 3, 2)
	})
}

func TestIterSwap(t *testing.T) {
	t.Parallel()

	t.Run("adjacent a before b", func(t *testing.T) {
		m, its := build(t, 1, 2, 3, 4)
		IterSwap(its[2], its[3])
		checkList(t, m, 1, 3, 2, 4)
	})
	t.Run("adjacent b before a", func(t *testing.T) {
		m, its := build(t, 1, 2, 3, 4)
		IterSwap(its[3], its[2])
		checkList(t, m, 1, 3, 2, 4)
	})
	t.Run("non adjacent", func(t *testing.T) {
		m, its := build(t, 1, 2, 3, 4, 5)
		IterSwap(its[1], its[4])
		checkList(t, m, 4, 2, 3, 1, 5)
	})
	t.Run("ends", func(t *testing.T) {
		m, its := build(t, 1, 2, 3)
		IterSwap(its[1], its[3])
		checkList(t, m, 3, 2, 1)
	})
	t.Run("same node", func(t *testing.T) {
		m, its := build(t, 1, 2, 3)
		IterSwap(its[2], its[2])
		checkList(t, m, 1, 2, 3)
	})
}

func TestSwapRanges(t *testing.T) {
	t.Parallel()

	t.Run("disjoint", func(t *testing.T) {
		m, its := build(t, 1, 2, 3, 4, 5, 6)
		SwapRanges(its[1], its[3], its[4], its[6]) // [1,2] <-> [4,5]
		checkList(t, m, 4, 5, 3, 1, 2, 6)
	})
	t.Run("second adjacent after first", func(t *testing.T) {
		m, its := build(t, 1, 2, 3, 4)
		SwapRanges(its[1], its[2], its[2], its[4]) // [1] <-> [2,3]
		checkList(t, m, 2, 3, 1, 4)
	})
	t.Run("first adjacent after second", func(t *testing.T) {
		m, its := build(t, 1, 2, 3, 4)
		SwapRanges(its[3], m.End(), its[1], its[3]) // [3,4] <-> [1,2]
		checkList(t, m, 3, 4, 1, 2)
	})
	t.Run("identical ranges", func(t *testing.T) {
		m, its := build(t, 1, 2, 3)
		SwapRanges(its[1], its[3], its[1], its[3])
		checkList(t, m, 1, 2, 3)
	})
}

func TestReverse(t *testing.T) {
	t.Parallel()

	t.Run("whole list", func(t *testing.T) {
		m, _ := build(t, 1, 2, 3, 4, 5)
		Reverse(m.Begin(), m.End())
		checkList(t, m, 5, 4, 3, 2, 1)
	})
	t.Run("inner range", func(t *testing.T) {
		m, its := build(t, 1, 2, 3, 4, 5)
		Reverse(its[2], its[5]) // [2,3,4]
		checkList(t, m, 1, 4, 3, 2, 5)
	})
	t.Run("single element", func(t *testing.T) {
		m, its := build(t, 1, 2, 3)
		Reverse(its[2], its[3])
		checkList(t, m, 1, 2, 3)
	})
}

func TestRotate(t *testing.T) {
	t.Parallel()

	m, its := build(t, 1, 2, 3, 4, 5)
	Rotate(its[1], its[3], m.End()) // 3 becomes first
	checkList(t, m, 3, 4, 5, 1, 2)
}
