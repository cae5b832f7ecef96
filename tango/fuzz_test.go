package tango

import (
	"testing"
)

// FuzzSearch replays a sequence of searches against a fixed 50-key
// universe, the same way rbtree's FuzzTree replays a sequence of inserts
// and deletes against a fixed tree: WithDebugAssertions runs
// checkInvariants after every single call, so any corruption it detects in
// cut/join/split/merge panics the test immediately rather than surviving
// to corrupt a later search.
func FuzzSearch(f *testing.F) {
	f.Add(8, 9, 13, 2, 7, 51, 1, 50)
	f.Fuzz(func(t *testing.T, k1, k2, k3, k4, k5, k6, k7, k8 int) {
		tree, err := Build(universe(50), intLess, WithDebugAssertions[int]())
		if err != nil {
			t.Fatalf("build: %v", err)
		}

		for _, k := range []int{k1, k2, k3, k4, k5, k6, k7, k8} {
			t.Logf("search(%d)", k)
			got, ok := tree.Search(k)

			inUniverse := k >= 1 && k <= 50
			if ok != inUniverse {
				t.Fatalf("search(%d): found=%v, want in-universe=%v", k, ok, inUniverse)
			}
			if ok && got != k {
				t.Fatalf("search(%d): got %d", k, got)
			}
		}

		if got := tree.inorderKeys(); len(got) != 50 {
			t.Fatalf("universe size changed: got %d keys, want 50", len(got))
		}
	})
}
