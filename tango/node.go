package tango

// Color is the color of a node within its auxiliary red-black tree.
type Color bool

const (
	Red   Color = false
	Black Color = true
)

func (c Color) String() string {
	if c == Black {
		return "black"
	}
	return "red"
}

// Node is one element of a Tango tree. Its key and depth are fixed at
// construction (spec I2); everything else — color, cached black-height,
// the depth aggregates, and the preferred-path mark — is mutated by
// Search's cut/join surgery.
//
// Node is never constructed or destroyed outside Build (spec "Lifecycle").
type Node[K any] struct {
	key   K
	value any

	parent, left, right *Node[K]

	color Color
	bh    int // cached black-height within this node's auxiliary tree

	depth    int // fixed depth in the notional perfect BST P
	minDepth int // min depth over this node's auxiliary subtree
	maxDepth int // max depth over this node's auxiliary subtree

	isRoot bool // true iff this node tops an auxiliary tree (spec "is_root")
}

// auxBoundary reports whether n is a preferred-path boundary: either the
// tree's sentinel absent-node, or a node marked as the top of its own
// auxiliary tree. Both are "absent" for the purposes of the aux-tree rooted
// at one of its ancestors — this is the Go form of the original's
// is_root_or_None(node) predicate, collapsed into one field because this
// package represents "absent" with a sentinel node whose isRoot is always
// true.
func (n *Node[K]) auxBoundary() bool {
	return n.isRoot
}
