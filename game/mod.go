package game

// Move identifies a board cell to claim.
type Move int
