package tango

import (
	"log/slog"
	"math/bits"
	"sort"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
)

// BuildOption configures optional behavior of a Tree at construction time.
type BuildOption[K any] func(*Tree[K])

// WithDebugAssertions enables runtime checking of invariants I1-I6 (spec
// §7) after Build and after every Search. It is expensive (a full tree
// walk) and intended for tests and development, not production use.
func WithDebugAssertions[K any]() BuildOption[K] {
	return func(t *Tree[K]) { t.debugAssertions = true }
}

// WithDebugLogger attaches a structured logger that receives one Debug
// record per operation-log entry (and one per search miss), in addition to
// the tree's own operation log. Invariant checks do not log.
func WithDebugLogger[K any](logger *slog.Logger) BuildOption[K] {
	return func(t *Tree[K]) { t.debugLogger = logger }
}

// WithMetrics registers Prometheus collectors tracking log-record counts,
// search-duration, and boundary-crossing counts, labeled by this tree's
// ID (spec §6).
func WithMetrics[K any](reg prometheus.Registerer) BuildOption[K] {
	return func(t *Tree[K]) { t.metrics = newMetricsCollector(reg, t.id.String()) }
}

// Build constructs a Tree over the given keys (spec §4.7): keys are sorted
// by less, a weight-balanced perfect BST is built over them (root index
// chosen so the left subtree holds exactly 2^floor(log2 n) - 1 nodes,
// which always leaves the right subtree no larger), each node's depth is
// fixed to its depth in that perfect tree, and every node starts out
// marked as its own singleton auxiliary tree.
//
// Build fails with ErrEmptyUniverse if keys is empty. less must define a
// strict total order over K.
func Build[K any](keys []K, less LessFunc[K], opts ...BuildOption[K]) (*Tree[K], error) {
	if len(keys) == 0 {
		return nil, ErrEmptyUniverse
	}

	sorted := append([]K(nil), keys...)
	sort.Slice(sorted, func(i, j int) bool { return less(sorted[i], sorted[j]) })

	nilNode := &Node[K]{color: Black, isRoot: true}
	nilNode.parent, nilNode.left, nilNode.right = nilNode, nilNode, nilNode

	t := &Tree[K]{
		nilNode: nilNode,
		root:    nilNode,
		less:    less,
		id:      uuid.New(),
	}

	nodes := make([]*Node[K], len(sorted))
	for i, k := range sorted {
		nodes[i] = &Node[K]{
			key:    k,
			parent: t.nilNode, left: t.nilNode, right: t.nilNode,
			color:  Black,
			bh:     1,
			isRoot: true,
		}
	}

	var build func(lo, hi, depth int) *Node[K]
	build = func(lo, hi, depth int) *Node[K] {
		n := hi - lo
		if n <= 0 {
			return t.nilNode
		}
		p := bits.Len(uint(n)) - 1 // floor(log2 n)
		leftSize := (1 << p) - 1
		rootIdx := lo + leftSize

		node := nodes[rootIdx]
		node.depth = depth
		node.minDepth = depth
		node.maxDepth = depth
		t.buildOrder = append(t.buildOrder, node.key)

		left := build(lo, rootIdx, depth+1)
		if !t.isNil(left) {
			left.parent = node
		}
		node.left = left

		right := build(rootIdx+1, hi, depth+1)
		if !t.isNil(right) {
			right.parent = node
		}
		node.right = right

		return node
	}

	t.root = build(0, len(nodes), 0)
	t.root.parent = t.nilNode

	for _, opt := range opts {
		opt(t)
	}

	t.checkInvariants("build")
	return t, nil
}
