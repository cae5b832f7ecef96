package tango

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countKind(records []LogRecord[int], k Kind) int {
	n := 0
	for _, r := range records {
		if r.Kind == k {
			n++
		}
	}
	return n
}

// TestSearchRootKeyIsTerminalOnly matches spec scenario 2: searching for
// the key already at the root of the 15-node tree touches no boundary —
// it is the terminal cut/join step alone.
func TestSearchRootKeyIsTerminalOnly(t *testing.T) {
	tree, err := Build(universe(15), intLess, WithDebugAssertions[int]())
	require.NoError(t, err)

	got, ok := tree.Search(8)
	require.True(t, ok)
	require.Equal(t, 8, got)

	log := tree.Log()
	require.NotEmpty(t, log)
	assert.Equal(t, KindSearchStart, log[0].Kind)
	assert.Equal(t, KindSearchSuccess, log[len(log)-1].Kind)

	assert.Equal(t, 1, countKind(log, KindCut), "only the terminal cut should fire; no boundary is crossed when the key is already at the root")
	assert.LessOrEqual(t, countKind(log, KindJoin), 1)
}

// TestSearchCrossesBoundary matches spec scenario 3: searching for a key
// below an unrelated marked node forces at least one boundary-crossing
// cut/join in addition to the terminal step.
func TestSearchCrossesBoundary(t *testing.T) {
	tree, err := Build(universe(15), intLess, WithDebugAssertions[int]())
	require.NoError(t, err)

	got, ok := tree.Search(9)
	require.True(t, ok)
	require.Equal(t, 9, got)

	log := tree.Log()
	assert.Equal(t, KindSearchSuccess, log[len(log)-1].Kind)
	assert.Greater(t, countKind(log, KindCut), 1, "reaching 9 from a freshly built tree must cross at least one marked boundary before the terminal step")
}

// TestSearchOutOfUniverseEmitsNoCutOrJoin matches spec scenario 4 and the
// resolution of Open Question 4: a key outside the universe is a clean
// miss, with no structural side effects at all.
func TestSearchOutOfUniverseEmitsNoCutOrJoin(t *testing.T) {
	tree, err := Build(universe(15), intLess, WithDebugAssertions[int]())
	require.NoError(t, err)

	got, ok := tree.Search(16)
	require.False(t, ok)
	require.Equal(t, 0, got)

	log := tree.Log()
	require.Len(t, log, 2)
	assert.Equal(t, KindSearchStart, log[0].Kind)
	assert.Equal(t, KindSearchEnd, log[1].Kind)
	assert.Equal(t, 0, countKind(log, KindCut))
	assert.Equal(t, 0, countKind(log, KindJoin))
}

func TestSearchOutOfUniverseBelowRangeEmitsNoCutOrJoin(t *testing.T) {
	tree, err := Build(universe(15), intLess, WithDebugAssertions[int]())
	require.NoError(t, err)

	got, ok := tree.Search(0)
	require.False(t, ok)
	require.Equal(t, 0, got)
	assert.Equal(t, 0, countKind(tree.Log(), KindCut))
	assert.Equal(t, 0, countKind(tree.Log(), KindJoin))
}

// TestSearchSequenceScenario5 replays spec scenario 5's literal 14-search
// sequence over the 15-node universe. WithDebugAssertions makes any
// invariant violation panic the test immediately.
func TestSearchSequenceScenario5(t *testing.T) {
	tree, err := Build(universe(15), intLess, WithDebugAssertions[int]())
	require.NoError(t, err)

	sequence := []int{13, 2, 9, 7, 6, 4, 7, 9, 12, 14, 15, 11, 1, 2}
	for _, key := range sequence {
		got, ok := tree.Search(key)
		require.Truef(t, ok, "search(%d)", key)
		require.Equalf(t, key, got, "search(%d)", key)
	}

	assert.Equal(t, universe(15), tree.inorderKeys())
}

// TestSearchLargeRandomWorkload matches spec scenario 6: a 1000-key
// universe under 10000 searches for uniformly random in-universe keys.
// Every search must hit, and WithDebugAssertions verifies every invariant
// after every single call.
func TestSearchLargeRandomWorkload(t *testing.T) {
	tree, err := Build(universe(1000), intLess, WithDebugAssertions[int]())
	require.NoError(t, err)

	r := rand.New(rand.NewSource(42))
	for i := 0; i < 10000; i++ {
		key := r.Intn(1000) + 1
		got, ok := tree.Search(key)
		require.Truef(t, ok, "search(%d) at iteration %d", key, i)
		require.Equalf(t, key, got, "search(%d) at iteration %d", key, i)
	}

	assert.Equal(t, universe(1000), tree.inorderKeys())
}

// TestSearchIsIdempotentOnRepeat asserts that repeating a search for the
// same key a second time in a row still succeeds and leaves the universe
// intact; the preferred path for key is already settled, so the second
// call's boundary-crossing walk should be short or empty.
func TestSearchIsIdempotentOnRepeat(t *testing.T) {
	tree, err := Build(universe(15), intLess, WithDebugAssertions[int]())
	require.NoError(t, err)

	_, ok := tree.Search(9)
	require.True(t, ok)

	firstCuts := countKind(tree.Log(), KindCut)

	got, ok := tree.Search(9)
	require.True(t, ok)
	require.Equal(t, 9, got)

	secondCuts := countKind(tree.Log(), KindCut) - firstCuts
	assert.LessOrEqual(t, secondCuts, firstCuts, "repeating a search should not need more restructuring than the first one did")
}

// TestSearchLogIsWellFormed checks the general log-shape properties from
// the testable-properties list: every search's log slice starts with
// SEARCH_START and ends with exactly one of SEARCH_SUCCESS/SEARCH_END,
// and CUT/JOIN counts never differ by more than one.
func TestSearchLogIsWellFormed(t *testing.T) {
	tree, err := Build(universe(31), intLess, WithDebugAssertions[int]())
	require.NoError(t, err)

	for key := 1; key <= 31; key++ {
		before := len(tree.Log())
		_, ok := tree.Search(key)
		require.True(t, ok)
		segment := tree.Log()[before:]

		require.NotEmpty(t, segment)
		assert.Equal(t, KindSearchStart, segment[0].Kind)
		last := segment[len(segment)-1].Kind
		assert.True(t, last == KindSearchSuccess || last == KindSearchEnd)

		cuts := countKind(segment, KindCut)
		joins := countKind(segment, KindJoin)
		diff := cuts - joins
		assert.True(t, diff == 0 || diff == 1, "cut=%d join=%d for key=%d", cuts, joins, key)
	}
}

func (t *Tree[K]) inorderKeys() []K {
	var keys []K
	if !t.isNil(t.root) {
		t.inorder(t.root, func(n *Node[K]) bool {
			keys = append(keys, n.key)
			return true
		})
	}
	return keys
}
