package game

import (
	"uct/searcher"
	"uct/utils"

	"golang.org/x/exp/rand"
)

// Board is a harvest game: a fixed set of cells, each holding a reward, and
// every move claims one unclaimed cell. The game ends when no cells remain.
// It implements searcher.State with a uniformly random enumeration policy,
// which doubles as the rollout policy during simulation.
type Board struct {
	values    []float64
	unclaimed []Move
	rng       *rand.Rand
}

var _ searcher.State[Move] = (*Board)(nil)

// NewBoard builds a board over the given cell values. The seed fixes the
// enumeration order of NextAction, not the rewards: those depend only on
// which cells get claimed.
func NewBoard(values []float64, seed uint64) *Board {
	unclaimed := make([]Move, len(values))
	for i := range values {
		unclaimed[i] = Move(i)
	}

	cells := make([]float64, len(values))
	copy(cells, values)

	return &Board{
		values:    cells,
		unclaimed: unclaimed,
		rng:       rand.New(rand.NewSource(seed)),
	}
}

// NextAction proposes a random unclaimed cell, or reports false once every
// cell is claimed.
func (b *Board) NextAction() (Move, bool) {
	if len(b.unclaimed) == 0 {
		return 0, false
	}
	return b.unclaimed[b.rng.Intn(len(b.unclaimed))], true
}

// DoAction claims the cell and returns its value. Claiming an already-claimed
// cell is a no-op worth nothing.
func (b *Board) DoAction(move Move) float64 {
	i := utils.FindIndex(b.unclaimed, move)
	if i < 0 {
		return 0
	}
	b.unclaimed = utils.RemoveAt(b.unclaimed, i)
	return b.values[move]
}

// Clone copies the board's claim state. The random generator is shared
// across clones: enumeration stays random per call site while replaying a
// recorded move sequence through DoAction stays deterministic.
func (b *Board) Clone() searcher.State[Move] {
	unclaimed := make([]Move, len(b.unclaimed))
	copy(unclaimed, b.unclaimed)

	return &Board{
		values:    b.values,
		unclaimed: unclaimed,
		rng:       b.rng,
	}
}

// Remaining reports how many cells are still unclaimed.
func (b *Board) Remaining() int {
	return len(b.unclaimed)
}
