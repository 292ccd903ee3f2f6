package experiments

import (
	"fmt"
	"time"

	"uct/experiments/metrics"
	"uct/game"
	"uct/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Run measures every search configuration in config over the demo board and
// writes the records and per-config summaries as CSV files.
func Run(config Config) error {
	log.Info().Msgf("starting %s experiment...", config.Name)

	count := 0
	records := []metrics.SearchRecord{}

	for si, search := range config.Searches {
		log.Info().Msgf("starting configuration %d of %d: %+v...", si+1, len(config.Searches), search)

		for run := 0; run < config.Runs; run++ {
			count++
			record := metrics.SearchRecord{
				ID:           count,
				Config:       search.ID,
				Run:          run + 1,
				SearchMetric: runSearch(config, search, uint64(run)),
			}
			records = append(records, record)
		}

		log.Info().Msgf("completed configuration %d of %d", si+1, len(config.Searches))
	}

	log.Info().Msgf("completed %s experiment with %d searches", config.Name, count)

	summaries := make([]metrics.Summary, 0, len(config.Searches))
	for _, search := range config.Searches {
		summaries = append(summaries, metrics.Summarize(search, records))
	}

	writer, err := metrics.NewWriter(config.Name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteConfigs(config.Searches); err != nil {
		return fmt.Errorf("failed to write search configs: %w", err)
	}
	if err := writer.WriteRecords(records); err != nil {
		return fmt.Errorf("failed to write search records: %w", err)
	}
	if err := writer.WriteSummaries(summaries); err != nil {
		return fmt.Errorf("failed to write summaries: %w", err)
	}

	log.Info().Msgf("wrote experiment results to %s", writer.BaseDir())
	return nil
}

// runSearch plays one full search on a fresh board and measures it. Boards
// are rebuilt from the config seed plus the run index, so every
// configuration faces the same sequence of boards.
func runSearch(config Config, search metrics.SearchConfig, run uint64) metrics.SearchMetric {
	board := game.NewBoard(boardValues(config.Cells, config.Seed+run), config.Seed+run)

	// Root the tree the way an embedding caller would: draw the first
	// action, apply it, and search from the resulting state.
	action, ok := board.NextAction()
	if !ok {
		panic("demo board must start with at least one unclaimed cell")
	}
	board.DoAction(action)

	tree := searcher.NewTree[game.Move](search.Exploration, action, board)

	start := time.Now()
	best := tree.Search(search.Iterations)
	duration := time.Since(start)

	metric := metrics.SearchMetric{
		Duration:   duration,
		TreeSize:   tree.Size,
		RootVisits: tree.Root().Visits(),
	}
	if best != nil {
		metric.BestReward = best.TotalReward()
	}
	return metric
}

// boardValues derives the cell rewards for one run deterministically from
// the seed.
func boardValues(cells int, seed uint64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	values := make([]float64, cells)
	for i := range values {
		values[i] = rng.Float64()
	}
	return values
}
