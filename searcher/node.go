package searcher

import "math"

// Node is a single vertex of the search tree: the action that led here from
// the parent, an owned snapshot of the domain state after that action, and
// the statistics accumulated by backpropagation. Children are owned in
// insertion order; the parent link is a plain back-reference and is nil for
// the root.
type Node[A any] struct {
	action      A
	state       State[A]
	visits      int
	totalReward float64
	expanded    bool
	children    []*Node[A]
	parent      *Node[A]
}

// NewNode returns a detached node with zero statistics. The root's action is
// an artifact of construction and carries no meaning.
func NewNode[A any](action A, state State[A]) *Node[A] {
	return &Node[A]{
		action: action,
		state:  state,
	}
}

func (n *Node[A]) Action() A {
	return n.action
}

func (n *Node[A]) State() State[A] {
	return n.state
}

func (n *Node[A]) Visits() int {
	return n.visits
}

func (n *Node[A]) TotalReward() float64 {
	return n.totalReward
}

func (n *Node[A]) Children() []*Node[A] {
	return n.children
}

// Parent returns the parent node, or nil for the root.
func (n *Node[A]) Parent() *Node[A] {
	return n.parent
}

// SetParent records the back-reference only; it does not touch the parent's
// children.
func (n *Node[A]) SetParent(parent *Node[A]) {
	n.parent = parent
}

// ChildAt returns the child at index, or nil if out of range.
func (n *Node[A]) ChildAt(index int) *Node[A] {
	if index < 0 || index >= len(n.children) {
		return nil
	}
	return n.children[index]
}

// AddChild appends child to the children sequence and returns it. The caller
// is responsible for also calling SetParent on the child.
func (n *Node[A]) AddChild(child *Node[A]) *Node[A] {
	n.children = append(n.children, child)
	return child
}

// BestChild returns the child with the highest cumulative reward, or nil if
// there are no children. Raw sums, not averages: a single lucky high-reward
// rollout outweighs many moderate ones. Ties go to the earliest added child.
func (n *Node[A]) BestChild() *Node[A] {
	var best *Node[A]
	maxReward := math.Inf(-1)
	for _, child := range n.children {
		if child.totalReward > maxReward {
			maxReward = child.totalReward
			best = child
		}
	}
	return best
}

// Score returns the UCT value of this node relative to its parent:
// totalReward/visits + c*sqrt(2*ln(parent visits)/visits). The root scores 0
// for any c. With zero visits the division yields NaN or Inf; with an
// unvisited parent ln(0) drives the exploration term to NaN. Both are
// expected numeric outcomes, not errors, and selection never consults the
// score of an unvisited node.
func (n *Node[A]) Score(c float64) float64 {
	parent := n.Parent()
	if parent == nil {
		return 0
	}
	return uct(n.totalReward, n.visits, c, 2*math.Log(float64(parent.visits)))
}
