package rng

import "testing"

func TestPermutationCoversRange(t *testing.T) {
	Seed(1)
	buf := make([]int, 9)
	Permutation(buf, 1)
	seen := make(map[int]bool)
	for _, v := range buf {
		if v < 1 || v > 9 {
			t.Fatalf("value %d out of range", v)
		}
		seen[v] = true
	}
	if len(seen) != 9 {
		t.Errorf("permutation should contain every value exactly once, got %v", buf)
	}
}

// TestPermutationAllowsFixedPoints falsifies Sattolo's algorithm: across
// many trials every index must be observed holding its original value
// at least once.
func TestPermutationAllowsFixedPoints(t *testing.T) {
	Seed(42)
	n := 9
	fixedSeen := make([]bool, n)
	buf := make([]int, n)
	for trial := 0; trial < 20000; trial++ {
		Permutation(buf, 1)
		for i, v := range buf {
			if v == i+1 {
				fixedSeen[i] = true
			}
		}
	}
	for i, seen := range fixedSeen {
		if !seen {
			t.Errorf("index %d never held its original value across trials", i)
		}
	}
}

func TestShuffleIsPermutation(t *testing.T) {
	Seed(7)
	s := []int{10, 20, 30, 40, 50}
	orig := append([]int(nil), s...)
	Shuffle(s)
	if len(s) != len(orig) {
		t.Fatal("shuffle changed length")
	}
	for _, v := range orig {
		found := false
		for _, w := range s {
			if w == v {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("value %d missing after shuffle", v)
		}
	}
}
