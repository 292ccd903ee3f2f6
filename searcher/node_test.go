package searcher

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// countdownState is a deterministic test domain: it exposes `remaining`
// untried actions, each worth a fixed reward, and becomes terminal once they
// run out.
type countdownState struct {
	remaining int
	reward    float64
}

func (s *countdownState) NextAction() (int, bool) {
	if s.remaining == 0 {
		return 0, false
	}
	return s.remaining, true
}

func (s *countdownState) DoAction(action int) float64 {
	s.remaining--
	return s.reward
}

func (s *countdownState) Clone() State[int] {
	clone := *s
	return &clone
}

// buildShallowTree returns a root with `size` directly attached children.
func buildShallowTree(t *testing.T, size int) *Node[int] {
	t.Helper()

	root := NewNode[int](0, &countdownState{remaining: size, reward: 1})
	for i := 0; i < size; i++ {
		state := root.State().Clone()
		action, ok := state.NextAction()
		require.True(t, ok, "Root state should have untried actions")
		state.DoAction(action)

		child := NewNode(action, state)
		child.SetParent(root)
		root.AddChild(child)
	}
	return root
}

func TestNodeChildAt(t *testing.T) {
	root := buildShallowTree(t, 5)

	require.NotNil(t, root.ChildAt(2), "Index within range should resolve")
	require.Nil(t, root.ChildAt(5), "Index out of range should return nil")
	require.Nil(t, root.ChildAt(-1), "Negative index should return nil")

	leaf := root.ChildAt(2)
	require.Nil(t, leaf.ChildAt(0), "Leaf should have no children")
	require.Equal(t, root, leaf.Parent(), "Child should resolve its parent")
	require.Nil(t, root.Parent(), "Root should have no parent")
}

func TestNodeParentWiring(t *testing.T) {
	root := buildShallowTree(t, 5)

	for _, child := range root.Children() {
		require.Equal(t, root, child.Parent(), "Every child should point back at the root")

		count := 0
		for _, sibling := range root.Children() {
			if sibling == child {
				count++
			}
		}
		require.Equal(t, 1, count, "Child should appear exactly once in the parent's children")
	}
}

func TestNodeBestChild(t *testing.T) {
	t.Run("no children", func(t *testing.T) {
		root := buildShallowTree(t, 5)
		leaf := root.ChildAt(2)

		require.Nil(t, leaf.BestChild(), "Childless node should have no best child")
	})

	t.Run("maximum cumulative reward", func(t *testing.T) {
		root := buildShallowTree(t, 5)
		root.ChildAt(2).totalReward = 0.5

		require.Equal(t, root.ChildAt(2), root.BestChild(),
			"Node with the highest cumulative reward should win")
	})

	t.Run("raw sum beats sampled average", func(t *testing.T) {
		root := buildShallowTree(t, 2)
		// Heavily sampled child with a moderate average loses to a
		// once-visited child holding a single high reward.
		root.ChildAt(0).visits = 10
		root.ChildAt(0).totalReward = 1.9
		root.ChildAt(1).visits = 1
		root.ChildAt(1).totalReward = 2.0

		require.Equal(t, root.ChildAt(1), root.BestChild(),
			"Cumulative reward decides, not the per-visit average")
	})

	t.Run("ties break by insertion order", func(t *testing.T) {
		root := buildShallowTree(t, 3)
		root.ChildAt(0).totalReward = 1.0
		root.ChildAt(2).totalReward = 1.0

		require.Equal(t, root.ChildAt(0), root.BestChild(),
			"First maximal child should win a tie")
	})
}

func TestNodeScore(t *testing.T) {
	t.Run("root scores zero", func(t *testing.T) {
		root := buildShallowTree(t, 5)
		root.visits = 7
		root.totalReward = 3

		require.Zero(t, root.Score(0), "Root score should be 0 for any constant")
		require.Zero(t, root.Score(1.5), "Root score should be 0 for any constant")
	})

	t.Run("unvisited parent yields NaN", func(t *testing.T) {
		root := buildShallowTree(t, 5)
		child := root.ChildAt(2)
		child.visits = 1
		child.totalReward = 0.5

		require.True(t, math.IsNaN(child.Score(1)),
			"ln(0) in the exploration term should surface as NaN")
	})

	t.Run("unvisited node yields NaN", func(t *testing.T) {
		root := buildShallowTree(t, 5)
		root.visits = 1

		require.True(t, math.IsNaN(root.ChildAt(0).Score(1)),
			"Dividing zero reward by zero visits should surface as NaN")
	})

	t.Run("visited node and parent yield a finite score", func(t *testing.T) {
		root := buildShallowTree(t, 5)
		root.visits = 2
		child := root.ChildAt(2)
		child.visits = 1
		child.totalReward = 0.5

		score := child.Score(1)
		require.False(t, math.IsNaN(score), "Score should be a real number")
		require.False(t, math.IsInf(score, 0), "Score should be finite")
		require.Equal(t, 0.5+math.Sqrt(2*math.Log(2)), score,
			"Score should follow reward/visits + c*sqrt(2*ln(N)/visits)")
	})
}
