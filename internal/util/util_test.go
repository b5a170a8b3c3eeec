package util

import "testing"

func TestNextPow2(t *testing.T) {
	t.Parallel()

	cases := map[uint64]uint64{
		0:       1,
		1:       1,
		2:       2,
		3:       4,
		4:       4,
		5:       8,
		1000:    1024,
		1 << 40: 1 << 40,
	}
	for in, want := range cases {
		if got := NextPow2(in); got != want {
			t.Errorf("NextPow2(%d) = %d, want %d", in, got, want)
		}
		if !IsPowerOfTwo(NextPow2(in)) {
			t.Errorf("NextPow2(%d) is not a power of two", in)
		}
	}
	if IsPowerOfTwo(0) || IsPowerOfTwo(6) {
		t.Error("IsPowerOfTwo false positives")
	}
}

func TestDefaultHashStability(t *testing.T) {
	t.Parallel()

	if DefaultHash("key") != DefaultHash("key") {
		t.Error("string hash must be deterministic")
	}
	if DefaultHash("a") == DefaultHash("b") {
		t.Error("distinct short strings should not collide")
	}
	if DefaultHash(42) != DefaultHash(42) {
		t.Error("int hash must be deterministic")
	}
	if DefaultHash(int64(7)) != DefaultHash(int64(7)) {
		t.Error("int64 hash must be deterministic")
	}
}

func TestDefaultHashUnsupportedPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Fatal("unsupported key type must panic")
		}
	}()
	type odd struct{ a, b int }
	DefaultHash(odd{1, 2})
}
