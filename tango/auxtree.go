package tango

// This file implements the auxiliary-tree machinery of spec §4.3-4.4: the
// red-black fixup used after a merge, and split/merge/concatenate of the
// red-black trees that back each preferred path. It is ported from
// original_source/GUI/tree/tango_strict.py's _split/_merge/_aux_merge and
// insert_fixup_case1..5, cross-checked against mikenye/gotrees/rbtree's
// five-case insertFixup for the same case structure.

// detach severs child from its current parent (if any), leaving child with
// a sentinel parent and the former parent's link to it cleared. A no-op on
// the sentinel node itself.
func (t *Tree[K]) detach(child *Node[K]) {
	if t.isNil(child) {
		return
	}
	p := child.parent
	if !t.isNil(p) {
		if p.left == child {
			p.left = t.nilNode
		} else if p.right == child {
			p.right = t.nilNode
		}
	}
	child.parent = t.nilNode
}

func (t *Tree[K]) attachLeft(child, parent *Node[K]) {
	if t.isNil(child) {
		return
	}
	parent.left = child
	child.parent = parent
}

func (t *Tree[K]) attachRight(child, parent *Node[K]) {
	if t.isNil(child) {
		return
	}
	parent.right = child
	child.parent = parent
}

// attachUp attaches child under parent on whichever side its key belongs.
func (t *Tree[K]) attachUp(child, parent *Node[K]) {
	if t.isNil(child) {
		return
	}
	if t.less(child.key, parent.key) {
		parent.left = child
	} else {
		parent.right = child
	}
	child.parent = parent
}

// atAuxTop reports whether n is the top of its auxiliary tree: either
// explicitly marked, or structurally parentless (the root of a piece still
// being assembled mid-operation, not yet reattached anywhere).
func (t *Tree[K]) atAuxTop(n *Node[K]) bool {
	return n.isRoot || t.isNil(n.parent)
}

func (t *Tree[K]) isLeftChild(n *Node[K]) bool { return n.parent.left == n }
func (t *Tree[K]) isRightChild(n *Node[K]) bool { return n.parent.right == n }

// fixupSibling returns n's sibling for rb-fixup purposes: absent if n is at
// an auxiliary-tree top, or if the sibling slot is itself empty or a
// different auxiliary tree.
func (t *Tree[K]) fixupSibling(n *Node[K]) *Node[K] {
	if t.atAuxTop(n) {
		return t.nilNode
	}
	p := n.parent
	if p.left == n && !p.right.auxBoundary() {
		return p.right
	}
	if p.right == n && !p.left.auxBoundary() {
		return p.left
	}
	return t.nilNode
}

// maxChild walks to the node with the greatest key in n's auxiliary
// subtree, stopping before crossing into a different auxiliary tree.
func (t *Tree[K]) maxChild(n *Node[K]) *Node[K] {
	prev := n
	for !n.right.auxBoundary() {
		prev = n
		n = n.right
	}
	if !prev.right.auxBoundary() {
		return prev.right
	}
	return prev
}

// minChild is maxChild's mirror image.
func (t *Tree[K]) minChild(n *Node[K]) *Node[K] {
	prev := n
	for !n.left.auxBoundary() {
		prev = n
		n = n.left
	}
	if !prev.left.auxBoundary() {
		return prev.left
	}
	return prev
}

// attachAsMax splices n in as the new maximum-key node of the auxiliary
// tree rooted at sub, taking over the rightmost node's right child.
func (t *Tree[K]) attachAsMax(n, sub *Node[K]) {
	if t.isNil(sub) || t.isNil(n) {
		return
	}
	a := t.maxChild(sub)
	ar := a.right
	t.detach(ar)
	t.attachLeft(ar, n)
	t.attachRight(n, a)
	t.updateDepthsUp(n)
}

// attachAsMin is attachAsMax's mirror image.
func (t *Tree[K]) attachAsMin(n, sub *Node[K]) {
	if t.isNil(sub) || t.isNil(n) {
		return
	}
	a := t.minChild(sub)
	al := a.left
	t.detach(al)
	t.attachRight(al, n)
	t.attachLeft(n, a)
	t.updateDepthsUp(n)
}

// findMinWithBH descends n's left spine to the first black node whose
// cached black-height equals bh.
func (t *Tree[K]) findMinWithBH(n *Node[K], bh int) *Node[K] {
	for !n.auxBoundary() {
		if n.color == Black && n.bh == bh {
			break
		}
		n = n.left
	}
	return n
}

// findMaxWithBH descends n's right spine to the first black node whose
// cached black-height equals bh.
func (t *Tree[K]) findMaxWithBH(n *Node[K], bh int) *Node[K] {
	for !n.auxBoundary() {
		if n.color == Black && n.bh == bh {
			break
		}
		n = n.right
	}
	return n
}

// merge combines two red-black trees left and right (either of which may
// be the sentinel, i.e. empty) and a single node mid into one red-black
// tree, handling a black-height mismatch between left and right the
// classic way: descend the taller side to a black node at the shorter
// side's black-height, splice mid in as red there, and run the insertion
// fixup (spec §4.4).
func (t *Tree[K]) merge(left, mid, right *Node[K]) *Node[K] {
	switch {
	case t.isNil(mid):
		switch {
		case !t.isNil(right):
			mid = right
		case !t.isNil(left):
			mid = left
		default:
			return t.nilNode
		}

	case left.auxBoundary() && right.auxBoundary():
		t.attachLeft(left, mid)
		t.attachRight(right, mid)
		mid.color = Red
		t.updateBlackHeight(mid)

	case left.auxBoundary():
		t.attachAsMin(mid, right)
		t.attachLeft(left, mid)
		mid.color = Red
		t.updateBlackHeight(mid)

	case right.auxBoundary():
		t.attachAsMax(mid, left)
		t.attachRight(right, mid)
		mid.color = Red
		t.updateBlackHeight(mid)

	default:
		lh, rh := left.bh, right.bh
		switch {
		case lh == rh:
			t.attachLeft(left, mid)
			t.attachRight(right, mid)
			mid.color = Red

		case lh < rh:
			p := t.findMinWithBH(right, lh)
			pp := p.parent
			t.attachLeft(left, mid)
			t.detach(p)
			t.attachRight(p, mid)
			t.attachLeft(mid, pp)
			t.updateDepthsUp(mid)
			mid.color = Red

		default:
			p := t.findMaxWithBH(left, rh)
			pp := p.parent
			t.attachRight(right, mid)
			t.detach(p)
			t.attachLeft(p, mid)
			t.attachRight(mid, pp)
			t.updateDepthsUp(mid)
			mid.color = Red
		}
	}

	t.updateDepths(mid)
	t.rbInsertFixupCase1(mid)
	t.refreshAggregatesUp(mid)

	root := mid
	for !t.isNil(root.parent) {
		root = root.parent
	}
	return root
}

// auxMerge detaches n from its parent and from its own children, then
// reassembles n's former children as a red-black tree with n spliced back
// in, fixing up and reinstalling the result wherever n used to be
// (preserving n's mark if it was an auxiliary-tree top). This is the
// "concatenate the pieces either side of a removed pivot" building block
// used by cut/join.
func (t *Tree[K]) auxMerge(n *Node[K]) *Node[K] {
	np := n.parent
	nl := n.left
	nr := n.right

	wasRoot := n.isRoot
	if wasRoot {
		n.isRoot = false
	}

	t.detach(n)
	t.detach(nl)
	t.detach(nr)

	n.color = Black
	t.updateBlackHeight(n)
	if !t.isNil(nl) {
		nl.color = Black
		t.updateBlackHeight(nl)
	}
	if !t.isNil(nr) {
		nr.color = Black
		t.updateBlackHeight(nr)
	}

	newRoot := t.merge(nl, n, nr)

	if t.isNil(np) {
		t.root = newRoot
	} else {
		t.attachUp(newRoot, np)
	}
	if wasRoot {
		newRoot.isRoot = true
	}

	return newRoot
}

// split restructures the auxiliary tree topped by auxTop so that pivot
// becomes its new top: pivot's left subtree holds every node with a
// smaller key, its right subtree every node with a greater key (spec
// §4.4). pivot must already be a node of that auxiliary tree.
func (t *Tree[K]) split(pivot, auxTop *Node[K]) *Node[K] {
	vParent := auxTop.parent
	if !t.isNil(vParent) {
		t.detach(auxTop)
	}
	wasMarked := auxTop.isRoot
	if wasMarked {
		auxTop.isRoot = false
	}

	k := auxTop
	tl, vl := t.nilNode, t.nilNode
	tr, vr := t.nilNode, t.nilNode

	for !k.auxBoundary() {
		kl, kr := k.left, k.right
		t.detach(kl)
		t.detach(kr)

		if !t.isNil(kl) {
			kl.color = Black
			t.updateBlackHeight(kl)
		}
		if !t.isNil(kr) {
			kr.color = Black
			t.updateBlackHeight(kr)
		}

		switch {
		case t.less(pivot.key, k.key):
			tr = t.merge(kr, vr, tr)
			vr = k
			k = kl

		case t.less(k.key, pivot.key):
			tl = t.merge(tl, vl, kl)
			vl = k
			k = kr

		default:
			tl = t.merge(tl, vl, kl)
			tr = t.merge(kr, vr, tr)
			t.attachLeft(tl, k)
			t.attachRight(tr, k)
			k = t.nilNode
		}
	}

	if t.isNil(vParent) {
		t.root = pivot
	} else {
		t.attachUp(pivot, vParent)
	}
	if wasMarked {
		pivot.isRoot = true
	}

	return pivot
}

// ---- red-black insertion fixup, five cases, after merge splices mid in red ----

func (t *Tree[K]) rbInsertFixupCase1(n *Node[K]) {
	if t.atAuxTop(n) {
		n.color = Black
		t.updateBlackHeight(n)
		return
	}
	t.updateBlackHeight(n)
	t.rbInsertFixupCase2(n)
}

func (t *Tree[K]) rbInsertFixupCase2(n *Node[K]) {
	p := n.parent
	if t.isBlack(p) {
		t.updateBlackHeight(p)
		return
	}
	t.rbInsertFixupCase3(n)
}

func (t *Tree[K]) rbInsertFixupCase3(n *Node[K]) {
	p := n.parent
	g := p.parent
	u := t.fixupSibling(p)

	if t.isRed(u) {
		t.setColor(p, Black)
		t.updateBlackHeight(p)
		t.setColor(u, Black)
		t.updateBlackHeight(u)
		t.setColor(g, Red)
		t.updateBlackHeight(g)
		t.rbInsertFixupCase1(g)
		return
	}
	t.rbInsertFixupCase4(n)
}

func (t *Tree[K]) rbInsertFixupCase4(n *Node[K]) {
	p := n.parent

	if t.isLeftChild(p) {
		if t.isRightChild(n) {
			t.RotateLeft(p)
			t.updateBlackHeight(p)
			t.updateBlackHeight(n)
			n = p
		}
	} else {
		if t.isLeftChild(n) {
			t.RotateRight(p)
			t.updateBlackHeight(p)
			t.updateBlackHeight(n)
			n = p
		}
	}
	t.rbInsertFixupCase5(n)
}

func (t *Tree[K]) rbInsertFixupCase5(n *Node[K]) {
	p := n.parent
	g := p.parent

	p.color = Black
	g.color = Red

	if t.isLeftChild(p) {
		t.RotateRight(g)
	} else {
		t.RotateLeft(g)
	}
	t.updateBlackHeight(g)
	t.updateBlackHeight(p)
}
