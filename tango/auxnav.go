package tango

// Navigation helpers used by cut, join, and the terminal marked-predecessor
// lookup in Search. All of them respect auxiliary-tree boundaries: they
// never step across a marked node into a different auxiliary tree, except
// where explicitly noted (auxTopFrom, which walks up past the caller's
// starting point to find the tree that currently contains it).

// minOfSubtree descends n's left spine to the node of smallest key in n's
// auxiliary subtree.
func (t *Tree[K]) minOfSubtree(n *Node[K]) *Node[K] {
	for !n.left.auxBoundary() {
		n = n.left
	}
	return n
}

// maxOfSubtree descends n's right spine to the node of largest key in n's
// auxiliary subtree.
func (t *Tree[K]) maxOfSubtree(n *Node[K]) *Node[K] {
	for !n.right.auxBoundary() {
		n = n.right
	}
	return n
}

// auxPredecessor returns n's predecessor by key within n's own auxiliary
// tree, or the sentinel if n is that tree's minimum.
func (t *Tree[K]) auxPredecessor(n *Node[K]) *Node[K] {
	if !n.left.auxBoundary() {
		return t.maxOfSubtree(n.left)
	}
	cur := n
	for !t.atAuxTop(cur) {
		p := cur.parent
		if p.right == cur {
			return p
		}
		cur = p
	}
	return t.nilNode
}

// auxSuccessor is auxPredecessor's mirror image.
func (t *Tree[K]) auxSuccessor(n *Node[K]) *Node[K] {
	if !n.right.auxBoundary() {
		return t.minOfSubtree(n.right)
	}
	cur := n
	for !t.atAuxTop(cur) {
		p := cur.parent
		if p.left == cur {
			return p
		}
		cur = p
	}
	return t.nilNode
}

// findMinKeyDeeper descends the auxiliary tree rooted at n to the node of
// minimum key whose depth exceeds d, guided by the maxDepth aggregate
// (spec §4.5 step 1). n's auxiliary subtree must actually contain such a
// node (n.maxDepth > d).
func (t *Tree[K]) findMinKeyDeeper(n *Node[K], d int) *Node[K] {
	for {
		if !n.left.auxBoundary() && n.left.maxDepth > d {
			n = n.left
			continue
		}
		if n.depth > d {
			return n
		}
		n = n.right
	}
}

// findMaxKeyDeeper is findMinKeyDeeper's mirror image, favoring the right
// subtree first to find the node of maximum key whose depth exceeds d.
func (t *Tree[K]) findMaxKeyDeeper(n *Node[K], d int) *Node[K] {
	for {
		if !n.right.auxBoundary() && n.right.maxDepth > d {
			n = n.right
			continue
		}
		if n.depth > d {
			return n
		}
		n = n.left
	}
}

// auxFloor returns the node of greatest key less than key within the
// auxiliary tree rooted at auxTop, or the sentinel if none. key is assumed
// absent from that tree (the universe has distinct keys and this is used
// to locate where a foreign auxiliary tree's key range would fall).
//
// auxTop itself is always marked (it is, after all, an auxiliary-tree top)
// so it is momentarily unmarked for the descent, the same way split does:
// otherwise the boundary check would fire on the very first node and every
// call would trivially return the sentinel.
func (t *Tree[K]) auxFloor(auxTop *Node[K], key K) *Node[K] {
	wasMarked := auxTop.isRoot
	if wasMarked {
		auxTop.isRoot = false
	}

	cur := auxTop
	best := t.nilNode
	for !cur.auxBoundary() {
		if t.less(cur.key, key) {
			best = cur
			cur = cur.right
		} else {
			cur = cur.left
		}
	}

	if wasMarked {
		auxTop.isRoot = true
	}
	return best
}

// auxCeiling returns the node of smallest key greater than key within the
// auxiliary tree rooted at auxTop, or the sentinel if none.
func (t *Tree[K]) auxCeiling(auxTop *Node[K], key K) *Node[K] {
	wasMarked := auxTop.isRoot
	if wasMarked {
		auxTop.isRoot = false
	}

	cur := auxTop
	best := t.nilNode
	for !cur.auxBoundary() {
		if t.less(key, cur.key) {
			best = cur
			cur = cur.left
		} else {
			cur = cur.right
		}
	}

	if wasMarked {
		auxTop.isRoot = true
	}
	return best
}

// auxTopFrom walks up from n to the top of whichever auxiliary tree
// currently contains it.
func (t *Tree[K]) auxTopFrom(n *Node[K]) *Node[K] {
	for !t.atAuxTop(n) {
		n = n.parent
	}
	return n
}

// findMarkedPredecessor looks, within the auxiliary tree rooted at top, for
// the marked node that is p's nearest key-predecessor there, where p is
// top's own deepest node (key pKey) after a terminal cut has trimmed top to
// end exactly at p. It generalizes the source's "search for key - 1, return
// the first marked node touched" (spec §9 Open Question 2): since top's
// interior is entirely unmarked except at its fringes, searching for pKey
// itself and treating an exact match as "step into the left child" has the
// same effect as searching for an infinitesimally smaller key — any marked
// node hit along the way is exactly the boundary we want, and if none
// exists p's left child (if present at all) is that boundary or there is
// none.
//
// top itself is never considered a candidate: it is p's own auxiliary
// tree, not a distinct neighboring one.
func (t *Tree[K]) findMarkedPredecessor(top *Node[K], pKey K) *Node[K] {
	n := top
	for {
		var next *Node[K]
		switch {
		case t.less(pKey, n.key):
			next = n.left
		case t.less(n.key, pKey):
			next = n.right
		default:
			next = n.left
		}
		if t.isNil(next) {
			return t.nilNode
		}
		n = next
		if n.isRoot {
			return n
		}
	}
}
