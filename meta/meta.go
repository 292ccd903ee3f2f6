// meta/meta.go
package meta

// ITERATIONS defines the default search iteration budget.
const ITERATIONS = 200

// RUNS defines the number of searches per configuration.
const RUNS = 30

// CELLS defines the default demo board size.
const CELLS = 12

// SEED defines the base seed for demo boards.
const SEED = 1
