package tango

// rotateWithParent exchanges n with its parent p, preserving BST order and
// all parent/child back-links (spec §4.1). If p was the tree root, n
// becomes the new tree root. If n was the top of an auxiliary tree, the
// mark transfers to n's new position — n stays the aux-tree top, and p
// (now n's child) is unmarked, matching the original's rotate_left/
// rotate_right ("if n.is_root: mark(n.parent); unmark(n)").
//
// RotateLeft and RotateRight are both expressed in terms of this primitive,
// as spec §4.1 requires. It is a no-op if n has no parent.
func (t *Tree[K]) rotateWithParent(n *Node[K]) {
	p := n.parent
	if t.isNil(p) {
		return
	}
	gp := p.parent

	if p.left == n {
		p.left = n.right
		if !t.isNil(p.left) {
			p.left.parent = p
		}
		n.right = p
	} else {
		p.right = n.left
		if !t.isNil(p.right) {
			p.right.parent = p
		}
		n.left = p
	}

	n.parent = gp
	p.parent = n

	if t.isNil(gp) {
		t.root = n
	} else if gp.left == p {
		gp.left = n
	} else {
		gp.right = n
	}

	if p.isRoot {
		p.isRoot = false
		n.isRoot = true
	}

	// p is now the lower of the pair: refresh it first, then n above it.
	t.refreshAggregatesUp(p)
	t.refreshAggregatesUp(n)
}

// RotateLeft rotates node down and its right child up, as in a classic
// red-black tree. It is the rotateWithParent of node's right child.
func (t *Tree[K]) RotateLeft(node *Node[K]) {
	if t.isNil(node) || t.isNil(node.right) {
		return
	}
	t.rotateWithParent(node.right)
}

// RotateRight rotates node down and its left child up. It is the
// rotateWithParent of node's left child.
func (t *Tree[K]) RotateRight(node *Node[K]) {
	if t.isNil(node) || t.isNil(node.left) {
		return
	}
	t.rotateWithParent(node.left)
}
