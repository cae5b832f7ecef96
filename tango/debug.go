package tango

// assertInvariant panics with an InvariantError if cond is false and debug
// assertions are enabled (spec §7: InternalInvariantViolated is fatal, no
// recovery path, and skipped by a flag check when disabled).
func (t *Tree[K]) assertInvariant(cond bool, msg string) {
	if cond || !t.debugAssertions {
		return
	}
	panic(&InvariantError{Invariant: "structural", Operation: "cut/join", Detail: msg})
}

func (t *Tree[K]) fail(invariant, operation, detail string) {
	panic(&InvariantError{Invariant: invariant, Operation: operation, Detail: detail})
}

// checkInvariants walks the whole tree verifying I1, I3, I5, and I6 (spec
// §3); of I4 it checks only that the tree root is marked, not that each
// auxiliary tree is a vertical path in P. It does nothing unless debug
// assertions are enabled, and runs
// after Build and after every Search; I2 (depth immutability) needs no
// runtime check since depth is never written outside Build.
func (t *Tree[K]) checkInvariants(operation string) {
	if !t.debugAssertions || t.isNil(t.root) {
		return
	}

	if !t.root.isRoot {
		t.fail("I4", operation, "tree root is not marked as an auxiliary-tree top")
	}

	var prev *Node[K]
	var walk func(n *Node[K])
	walk = func(n *Node[K]) {
		if t.isNil(n) {
			return
		}
		walk(n.left)

		if prev != nil && !t.less(prev.key, n.key) {
			t.fail("I1", operation, "in-order traversal is not strictly increasing")
		}
		prev = n

		if !t.isNil(n.parent) && n.parent.left != n && n.parent.right != n {
			t.fail("I6", operation, "parent/child back-links inconsistent")
		}

		if t.isRed(n) && (t.isRed(n.left) || t.isRed(n.right)) {
			t.fail("I3", operation, "red node has a red child within its auxiliary tree")
		}

		lh, rh := 0, 0
		if !n.left.auxBoundary() {
			lh = n.left.bh
		}
		if !n.right.auxBoundary() {
			rh = n.right.bh
		}
		if lh != rh {
			t.fail("I3", operation, "black-height mismatch between children within an auxiliary tree")
		}
		wantBH := lh
		if n.color == Black {
			wantBH++
		}
		if n.bh != wantBH {
			t.fail("I3", operation, "cached black-height does not match recomputed value")
		}

		wantMin, wantMax := n.depth, n.depth
		if !n.left.auxBoundary() {
			if n.left.minDepth < wantMin {
				wantMin = n.left.minDepth
			}
			if n.left.maxDepth > wantMax {
				wantMax = n.left.maxDepth
			}
		}
		if !n.right.auxBoundary() {
			if n.right.minDepth < wantMin {
				wantMin = n.right.minDepth
			}
			if n.right.maxDepth > wantMax {
				wantMax = n.right.maxDepth
			}
		}
		if n.minDepth != wantMin || n.maxDepth != wantMax {
			t.fail("I5", operation, "min/max depth aggregate does not match its auxiliary subtree")
		}

		walk(n.right)
	}
	walk(t.root)
}
