package tango

// updateDepths recomputes n.minDepth and n.maxDepth from n.depth and the
// aggregates of its unmarked (same-auxiliary-tree) children, per spec §4.2
// / I5. A marked child is a different auxiliary tree and contributes
// nothing.
func (t *Tree[K]) updateDepths(n *Node[K]) {
	if t.isNil(n) {
		return
	}
	n.minDepth = n.depth
	n.maxDepth = n.depth

	if !n.left.auxBoundary() {
		if n.left.minDepth < n.minDepth {
			n.minDepth = n.left.minDepth
		}
		if n.left.maxDepth > n.maxDepth {
			n.maxDepth = n.left.maxDepth
		}
	}
	if !n.right.auxBoundary() {
		if n.right.minDepth < n.minDepth {
			n.minDepth = n.right.minDepth
		}
		if n.right.maxDepth > n.maxDepth {
			n.maxDepth = n.right.maxDepth
		}
	}
}

// updateBlackHeight recomputes n.bh from its children's cached bh, per
// spec §4.3. A marked child counts as an absent (black) leaf, bh 0.
func (t *Tree[K]) updateBlackHeight(n *Node[K]) {
	if t.isNil(n) {
		return
	}
	lh, rh := 0, 0
	if !n.left.auxBoundary() {
		lh = n.left.bh
	}
	if !n.right.auxBoundary() {
		rh = n.right.bh
	}
	if lh > rh {
		n.bh = lh
	} else {
		n.bh = rh
	}
	if n.color == Black {
		n.bh++
	}
}

// updateDepthsUp applies updateDepths walking from n up to and including
// its auxiliary tree's root, per spec §4.2.
func (t *Tree[K]) updateDepthsUp(n *Node[K]) {
	for !t.isNil(n) {
		t.updateDepths(n)
		if n.isRoot {
			return
		}
		n = n.parent
	}
}

// refreshAggregatesUp recomputes both black-height and depth aggregates
// from n up to and including its auxiliary tree's root. Every structural
// change inside an auxiliary tree (rotation, split, merge, fixup) touches
// at most a handful of these up-walks, which is the minimal correct set
// per spec §9 Open Question 3 (the original interleaves black-height
// recomputation in more places than the invariants actually require).
func (t *Tree[K]) refreshAggregatesUp(n *Node[K]) {
	for !t.isNil(n) {
		t.updateBlackHeight(n)
		t.updateDepths(n)
		if n.isRoot {
			return
		}
		n = n.parent
	}
}
