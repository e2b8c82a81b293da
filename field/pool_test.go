package field

import "testing"

// TestSweepOrderCoversEveryIndexOnce checks that, regardless of parity, the
// interleaved order visits every index in [0,length) exactly once.
func TestSweepOrderCoversEveryIndexOnce(t *testing.T) {
	for _, length := range []int{0, 1, 2, 5, 32} {
		for _, parity := range []bool{false, true} {
			order := sweepOrder(length, parity)
			if len(order) != length {
				t.Fatalf("sweepOrder(%d, %v) returned %d indices, want %d", length, parity, len(order), length)
			}
			seen := make(map[int]bool, length)
			for _, v := range order {
				if v < 0 || v >= length {
					t.Fatalf("sweepOrder(%d, %v) produced out-of-range index %d", length, parity, v)
				}
				if seen[v] {
					t.Fatalf("sweepOrder(%d, %v) produced duplicate index %d", length, parity, v)
				}
				seen[v] = true
			}
		}
	}
}

// TestSweepOrderPhaseAlternates checks that the two parities do not produce
// the same traversal order (so the scan direction alternates tick to tick).
func TestSweepOrderPhaseAlternates(t *testing.T) {
	a := sweepOrder(8, false)
	b := sweepOrder(8, true)

	identical := len(a) == len(b)
	if identical {
		for i := range a {
			if a[i] != b[i] {
				identical = false
				break
			}
		}
	}
	if identical {
		t.Errorf("sweepOrder(8, false) and sweepOrder(8, true) should differ")
	}
}
