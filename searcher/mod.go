package searcher

import "math"

// Hyperparameters for UCT

const ExplorationRate = 1.0 // Default exploration constant C

// State is the contract a domain must implement to be searchable. NextAction
// proposes one untried action, or reports false when the state is terminal or
// exhausted; how actions are enumerated (random, ordered, repeated) is up to
// the domain. DoAction advances the state in place and returns the reward for
// that single transition. The search clones states liberally and assumes that
// replaying the same action sequence through DoAction reproduces the same
// rewards.
type State[A any] interface {
	NextAction() (A, bool)
	DoAction(action A) float64
	Clone() State[A]
}

// The four phases of the search, each swappable independently of the Tree's
// built-in UCT behavior.

type Selector[A any] interface {
	Select() *Node[A]
}

type Expander[A any] interface {
	Expand(node *Node[A]) *Node[A]
}

type Simulator[A any] interface {
	Simulate(node *Node[A]) float64
}

type Backpropagator[A any] interface {
	Backpropagate(node *Node[A], reward float64)
}

// uct computes rewards/visits + c*sqrt(bias/visits) where bias is
// 2*ln(parent visits). Zero visits is deliberately not guarded: the result is
// NaN or Inf, and callers treat unvisited nodes separately during selection.
func uct(rewards float64, visits int, c float64, bias float64) float64 {
	return rewards/float64(visits) + c*math.Sqrt(bias/float64(visits))
}
