package tango

// cut and join restructure preferred paths across auxiliary-tree
// boundaries (spec §4.5), ported from original_source/GUI/tree/
// tango_strict.py's _new_cut/_new_join. Both are expressed as: locate the
// boundary in key order via split, flip exactly one mark, and run auxMerge
// to restore red-black validity of whichever side lost or gained a
// boundary child.

// cut splits the auxiliary tree rooted at auxRoot into a top piece (nodes
// with depth <= d) and a bottom piece (nodes with depth > d, marked as a
// new auxiliary-tree top in place). It returns the resulting top piece's
// root, which remains attached wherever auxRoot used to be.
//
// If every node in the tree is already deeper than d, there is nothing to
// cut: the whole tree becomes (remains) the bottom piece and cut is a
// no-op (spec §9 Open Question 1).
func (t *Tree[K]) cut(auxRoot *Node[K], d int) *Node[K] {
	if auxRoot.maxDepth <= d {
		return auxRoot
	}

	l := t.findMinKeyDeeper(auxRoot, d)
	r := t.findMaxKeyDeeper(auxRoot, d)

	lp := t.auxPredecessor(l)
	rp := t.auxSuccessor(r)

	switch {
	case t.isNil(lp) && t.isNil(rp):
		// The whole tree is the bottom range: already true, no-op.
		return auxRoot

	case t.isNil(lp):
		top := t.split(rp, auxRoot)
		bottom := top.left
		bottom.isRoot = true
		newTop := t.auxMerge(top)
		t.updateDepthsUp(newTop)
		return t.auxTopFrom(newTop)

	case t.isNil(rp):
		top := t.split(lp, auxRoot)
		bottom := top.right
		bottom.isRoot = true
		newTop := t.auxMerge(top)
		t.updateDepthsUp(newTop)
		return t.auxTopFrom(newTop)

	default:
		top := t.split(lp, auxRoot)
		rest := top.right
		t.split(rp, rest)
		bottom := rp.left
		bottom.isRoot = true
		t.auxMerge(rp)
		// auxMerge(rp) just changed what lp.right looks like (a child was
		// newly marked off to become the bottom piece), so lp's own
		// cached black-height is stale until it is rebuilt too — the
		// second _aux_merge the python source performs, once around rp
		// and again around lp.
		return t.auxMerge(lp)
	}
}

// join absorbs the auxiliary tree rooted at bottomRoot (whose keys lie
// entirely outside topRoot's key range) into the auxiliary tree rooted at
// topRoot, clearing bottomRoot's mark. It returns the resulting merged
// tree's root.
func (t *Tree[K]) join(topRoot, bottomRoot *Node[K], d int) *Node[K] {
	bMin := t.minOfSubtree(bottomRoot)
	bMax := t.maxOfSubtree(bottomRoot)

	lp := t.auxFloor(topRoot, bMin.key)
	rp := t.auxCeiling(topRoot, bMax.key)

	// bottomRoot keeps its mark through the splits below, so they treat it
	// as a boundary; it is cleared only once it is reattached for auxMerge.
	switch {
	case t.isNil(lp) && t.isNil(rp):
		t.assertInvariant(false, "join: top auxiliary tree has no predecessor or successor of the bottom tree's key range")
		bottomRoot.isRoot = false
		newTop := t.auxMerge(bottomRoot)
		t.updateDepthsUp(newTop)
		return newTop

	case t.isNil(lp):
		top := t.split(rp, topRoot)
		t.detach(top.left)
		t.attachLeft(bottomRoot, top)
		bottomRoot.isRoot = false
		newTop := t.auxMerge(top)
		t.updateDepthsUp(newTop)
		return newTop

	case t.isNil(rp):
		top := t.split(lp, topRoot)
		t.detach(top.right)
		t.attachRight(bottomRoot, top)
		bottomRoot.isRoot = false
		newTop := t.auxMerge(top)
		t.updateDepthsUp(newTop)
		return newTop

	default:
		top := t.split(lp, topRoot)
		rest := top.right
		t.split(rp, rest)
		t.detach(rp.left)
		t.attachLeft(bottomRoot, rp)
		bottomRoot.isRoot = false
		t.auxMerge(rp)
		// Same reasoning as cut's default branch: rp's rebuild just
		// changed what top.right looks like, so top's own cached
		// black-height needs rebuilding too.
		return t.auxMerge(top)
	}
}
