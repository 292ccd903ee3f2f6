package searcher

import "math"

// Tree owns the root node and with it the whole node graph, and implements
// all four search phases with the UCT algorithm. Single-threaded: one search
// mutates the graph at a time.
type Tree[A any] struct {
	root         *Node[A]
	learningRate float64
	Size         int // Nodes ever added; diagnostic only
}

var (
	_ Selector[int]       = (*Tree[int])(nil)
	_ Expander[int]       = (*Tree[int])(nil)
	_ Simulator[int]      = (*Tree[int])(nil)
	_ Backpropagator[int] = (*Tree[int])(nil)
)

// NewTree builds a tree whose root snapshots the given action/state pair.
// learningRate is the UCT exploration constant C, fixed for the tree's
// lifetime.
func NewTree[A any](learningRate float64, action A, state State[A]) *Tree[A] {
	return &Tree[A]{
		root:         NewNode(action, state),
		learningRate: learningRate,
		Size:         1,
	}
}

func (t *Tree[A]) Root() *Node[A] {
	return t.root
}

// Search runs up to iterations rounds of select/expand/simulate/backpropagate
// and returns the root child with the highest cumulative reward, or nil if
// the root never grew children. A selected node is only expanded once it has
// been visited; if expansion yields nothing (terminal leaf) the rollout runs
// from the selected node itself.
func (t *Tree[A]) Search(iterations int) *Node[A] {
	for i := 0; i < iterations; i++ {
		node := t.Select()
		if node == nil {
			break
		}

		if node.visits > 0 {
			if child := t.Expand(node); child != nil {
				node = child
			}
		}

		reward := t.Simulate(node)
		t.Backpropagate(node, reward)
	}

	return t.root.BestChild()
}

// AddNode attaches node under parent, wiring both the back-reference and the
// children sequence.
func (t *Tree[A]) AddNode(node, parent *Node[A]) *Node[A] {
	t.Size++
	node.SetParent(parent)
	return parent.AddChild(node)
}

// Select descends from the root into the child maximizing the UCT score and
// stops at the first node without children. An unvisited child is always
// preferred outright over any scored sibling: its score divides by zero
// visits and is useless as a comparison key.
func (t *Tree[A]) Select() *Node[A] {
	node := t.root
	for len(node.children) > 0 {
		next := node.children[0]
		maxScore := math.Inf(-1)
		for _, child := range node.children {
			if child.visits == 0 {
				next = child
				break
			}
			if score := child.Score(t.learningRate); score > maxScore {
				maxScore = score
				next = child
			}
		}
		node = next
	}
	return node
}

// Expand adds a child for every untried action of the leaf in one call and
// returns the first created child, or nil if the leaf is terminal. Actions
// are enumerated against a clone that is advanced after each proposal, so
// the same action is never offered twice. A second call on the same leaf is
// a no-op beyond returning the existing first child.
func (t *Tree[A]) Expand(node *Node[A]) *Node[A] {
	if node.expanded {
		return node.ChildAt(0)
	}

	enum := node.state.Clone()
	for {
		action, ok := enum.NextAction()
		if !ok {
			break
		}

		state := node.state.Clone()
		state.DoAction(action)
		enum.DoAction(action)
		t.AddNode(NewNode(action, state), node)
	}
	node.expanded = true

	return node.ChildAt(0)
}

// Simulate plays a clone of the node's state forward until no actions remain,
// using whatever policy the domain's NextAction implements, and returns the
// undiscounted sum of every step reward.
func (t *Tree[A]) Simulate(node *Node[A]) float64 {
	total := 0.0
	state := node.state.Clone()
	for {
		action, ok := state.NextAction()
		if !ok {
			break
		}
		total += state.DoAction(action)
	}
	return total
}

// Backpropagate adds reward and one visit to the node and every ancestor up
// to and including the root.
func (t *Tree[A]) Backpropagate(node *Node[A], reward float64) {
	for n := node; n != nil; n = n.Parent() {
		n.totalReward += reward
		n.visits++
	}
}
