package tango

import "github.com/tangotree/tango/perfecttree"

// visitMark is the parody tree's metadata type: whether a node lies on the
// root-to-node path of the most recent Find. It implements perfecttree.Marked
// so the parody tree's own String rendering highlights that path directly,
// and fmt.Stringer so %v prints something more legible than a bare bool.
type visitMark bool

func (v visitMark) Marked() bool { return bool(v) }

func (v visitMark) String() string {
	if v {
		return "visited"
	}
	return "unvisited"
}

// PerfectBSTSnapshot is a parallel, never-rebalanced perfect BST over the
// same universe as a Tree, used only by external viewers for side-by-side
// visualization (spec §6). It has no effect on the Tree it was taken from.
type PerfectBSTSnapshot[K any] struct {
	tree *perfecttree.Tree[K, struct{}, visitMark]
}

// Parody builds a PerfectBSTSnapshot with the same shape as t's perfect
// BST P, by replaying the same root-first insertion order Build used to
// lay the tango tree's keys out in the first place.
func (t *Tree[K]) Parody() *PerfectBSTSnapshot[K] {
	pt := perfecttree.New[K, struct{}, visitMark](perfecttree.LessFunc[K](t.less))
	for _, k := range t.buildOrder {
		pt.Insert(k, struct{}{})
	}
	return &PerfectBSTSnapshot[K]{tree: pt}
}

// Find looks up key in the parody tree and marks every node on its
// root-to-node path as visited, for a viewer to highlight; marks left by
// earlier Finds are cleared first. It is purely observational: it never
// touches the Tree that produced this snapshot.
func (p *PerfectBSTSnapshot[K]) Find(key K) (K, bool) {
	p.tree.TraverseInOrder(p.tree.Root(), func(n *perfecttree.Node[K, struct{}, visitMark]) bool {
		p.tree.SetMetadata(n, false)
		return true
	})

	n, ok := p.tree.Search(key)
	if !ok {
		var zero K
		return zero, false
	}
	for cur := n; !p.tree.IsNil(cur); cur = p.tree.Parent(cur) {
		p.tree.SetMetadata(cur, true)
	}
	return p.tree.Key(n), true
}

// Visited reports whether key's node was marked by the most recent Find.
func (p *PerfectBSTSnapshot[K]) Visited(key K) bool {
	n, ok := p.tree.Search(key)
	if !ok {
		return false
	}
	return bool(p.tree.Metadata(n))
}

// String renders the parody tree using perfecttree's box-drawing layout.
func (p *PerfectBSTSnapshot[K]) String() string {
	return p.tree.String()
}
