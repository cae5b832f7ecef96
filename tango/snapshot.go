package tango

// NodeView is an immutable, deep-copied view of one Tree node, exposing
// exactly the fields an external viewer needs: its position (by key),
// its edges (by neighboring keys), and its red-black/preferred-path state
// (spec §4.8).
type NodeView[K any] struct {
	Key              K
	Color            Color
	BlackHeight      int
	Depth            int
	MinDepth         int
	MaxDepth         int
	IsAuxTreeTop     bool
	Left, Right, Parent *K
}

// TreeSnapshot is an immutable view of an entire Tree, taken at a single
// point in time between structural operations (spec §5).
type TreeSnapshot[K any] struct {
	Nodes   []NodeView[K]
	RootKey *K
}

// Snapshot returns a deep-copied, immutable view of the whole tree. The
// caller's copy is unaffected by any later Search on t.
func (t *Tree[K]) Snapshot() TreeSnapshot[K] {
	var nodes []NodeView[K]

	var walk func(n *Node[K])
	walk = func(n *Node[K]) {
		if t.isNil(n) {
			return
		}
		walk(n.left)

		view := NodeView[K]{
			Key:          n.key,
			Color:        n.color,
			BlackHeight:  n.bh,
			Depth:        n.depth,
			MinDepth:     n.minDepth,
			MaxDepth:     n.maxDepth,
			IsAuxTreeTop: n.isRoot,
		}
		if !t.isNil(n.left) {
			k := n.left.key
			view.Left = &k
		}
		if !t.isNil(n.right) {
			k := n.right.key
			view.Right = &k
		}
		if !t.isNil(n.parent) {
			k := n.parent.key
			view.Parent = &k
		}
		nodes = append(nodes, view)

		walk(n.right)
	}
	walk(t.root)

	snap := TreeSnapshot[K]{Nodes: nodes}
	if !t.isNil(t.root) {
		k := t.root.key
		snap.RootKey = &k
	}
	return snap
}
