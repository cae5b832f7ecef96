package tango

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intLess(a, b int) bool { return a < b }

func universe(n int) []int {
	keys := make([]int, n)
	for i := range keys {
		keys[i] = i + 1
	}
	return keys
}

func TestBuildEmptyUniverseFails(t *testing.T) {
	_, err := Build([]int{}, intLess)
	require.ErrorIs(t, err, ErrEmptyUniverse)
}

func TestBuildSingleNode(t *testing.T) {
	tree, err := Build([]int{42}, intLess, WithDebugAssertions[int]())
	require.NoError(t, err)

	assert.Equal(t, 1, tree.Size())
	assert.True(t, tree.root.isRoot)
	assert.Equal(t, 0, tree.root.depth)
	assert.Equal(t, 0, tree.root.minDepth)
	assert.Equal(t, 0, tree.root.maxDepth)
}

// TestBuildScenario1 matches spec scenario 1: build [1..15], no searches.
// Every node is its own auxiliary tree; root has depth 0, leaves depth 3;
// in-order is 1..15.
func TestBuildScenario1(t *testing.T) {
	tree, err := Build(universe(15), intLess, WithDebugAssertions[int]())
	require.NoError(t, err)

	require.Equal(t, 8, tree.root.key)
	require.Equal(t, 0, tree.root.depth)

	wantDepth := map[int]int{
		8:  0,
		4:  1, 12: 1,
		2: 2, 6: 2, 10: 2, 14: 2,
		1: 3, 3: 3, 5: 3, 7: 3, 9: 3, 11: 3, 13: 3, 15: 3,
	}

	var inorder []int
	var walk func(n *Node[int])
	walk = func(n *Node[int]) {
		if tree.isNil(n) {
			return
		}
		walk(n.left)
		inorder = append(inorder, n.key)

		assert.Truef(t, n.isRoot, "node %d should start as its own auxiliary tree", n.key)
		assert.Equalf(t, wantDepth[n.key], n.depth, "node %d depth", n.key)
		assert.Equalf(t, n.depth, n.minDepth, "node %d minDepth", n.key)
		assert.Equalf(t, n.depth, n.maxDepth, "node %d maxDepth", n.key)
		assert.Equalf(t, Black, n.color, "node %d color", n.key)
		assert.Equalf(t, 1, n.bh, "node %d black-height", n.key)

		walk(n.right)
	}
	walk(tree.root)

	assert.Equal(t, universe(15), inorder)
}

func TestBuildMarksEveryNodeAcrossSizes(t *testing.T) {
	for n := 1; n <= 64; n++ {
		tree, err := Build(universe(n), intLess, WithDebugAssertions[int]())
		require.NoErrorf(t, err, "n=%d", n)
		checkMarkPartitionIsSingletons(t, tree, n)
	}
}

func checkMarkPartitionIsSingletons(t *testing.T, tree *Tree[int], n int) {
	t.Helper()
	count := 0
	var walk func(n *Node[int])
	walk = func(node *Node[int]) {
		if tree.isNil(node) {
			return
		}
		walk(node.left)
		count++
		assert.True(t, node.isRoot)
		walk(node.right)
	}
	walk(tree.root)
	assert.Equal(t, n, count)
}
