package tango

import (
	"log/slog"

	"github.com/google/uuid"
)

// LessFunc reports whether a sorts strictly before b. It must define a
// consistent, transitive total order over K.
type LessFunc[K any] func(a, b K) bool

// Tree is a Tango tree: a red-black-balanced auxiliary-tree structure
// layered over a fixed key universe, supporting only Build and Search.
//
// A Tree is not safe for concurrent use (spec §5): Search must run to
// completion before another Search begins on the same Tree.
type Tree[K any] struct {
	root    *Node[K]
	nilNode *Node[K]
	less    LessFunc[K]

	id uuid.UUID

	// buildOrder records the pre-order (root, then left recursively, then
	// right recursively) in which Build assigned keys to the perfect
	// shape, so Parody can reproduce the identical shape by replaying it
	// through ordinary BST insertion.
	buildOrder []K

	log []LogRecord[K]

	debugAssertions bool
	debugLogger     *slog.Logger
	metrics         *metricsCollector
}

func (t *Tree[K]) keyEq(a, b K) bool {
	return !t.less(a, b) && !t.less(b, a)
}

// isNil reports whether n is this tree's sentinel absent-node.
func (t *Tree[K]) isNil(n *Node[K]) bool {
	return n == t.nilNode
}

func (t *Tree[K]) isBlack(n *Node[K]) bool {
	return t.isNil(n) || n.color == Black
}

func (t *Tree[K]) isRed(n *Node[K]) bool {
	return !t.isNil(n) && n.color == Red
}

func (t *Tree[K]) setColor(n *Node[K], c Color) {
	if !t.isNil(n) {
		n.color = c
	}
}

// ID returns a build-scoped identifier for this tree, stable for its
// lifetime. It exists purely so a host process tracking several trees can
// correlate one instance's log records and metrics without the core
// prescribing any persisted or wire format (spec §6).
func (t *Tree[K]) ID() uuid.UUID {
	return t.id
}

// Size returns the number of nodes in the universe (constant after Build).
func (t *Tree[K]) Size() int {
	n := 0
	if !t.isNil(t.root) {
		t.inorder(t.root, func(*Node[K]) bool { n++; return true })
	}
	return n
}

func (t *Tree[K]) inorder(n *Node[K], f func(*Node[K]) bool) bool {
	if !t.isNil(n.left) && !t.inorder(n.left, f) {
		return false
	}
	if !f(n) {
		return false
	}
	if !t.isNil(n.right) && !t.inorder(n.right, f) {
		return false
	}
	return true
}

// sibling returns n's sibling under its parent, or the sentinel if n has
// none (n is the root, or n's parent only has n).
func (t *Tree[K]) sibling(n *Node[K]) *Node[K] {
	p := n.parent
	if t.isNil(p) {
		return t.nilNode
	}
	if p.left == n {
		return p.right
	}
	return p.left
}
