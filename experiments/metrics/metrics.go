package metrics

import (
	"time"

	"gonum.org/v1/gonum/stat"
)

// SearchConfig is one searcher configuration under measurement.
type SearchConfig struct {
	ID          int     `yaml:"id"`
	Exploration float64 `yaml:"exploration"`
	Iterations  int     `yaml:"iterations"`
}

// SearchMetric captures a single search run.
type SearchMetric struct {
	Duration   time.Duration
	TreeSize   int
	RootVisits int
	BestReward float64
}

// SearchRecord ties a run's metric to its configuration.
type SearchRecord struct {
	ID     int
	Config int // SearchConfig.ID
	Run    int
	SearchMetric
}

// Summary aggregates all runs of one configuration.
type Summary struct {
	Config           int
	Runs             int
	MeanDuration     time.Duration
	MeanTreeSize     float64
	MeanBestReward   float64
	StddevBestReward float64
}

// Summarize reduces the records belonging to config into a single row.
// Records for other configurations are ignored.
func Summarize(config SearchConfig, records []SearchRecord) Summary {
	var durations time.Duration
	var sizes, rewards []float64

	for _, record := range records {
		if record.Config != config.ID {
			continue
		}
		durations += record.Duration
		sizes = append(sizes, float64(record.TreeSize))
		rewards = append(rewards, record.BestReward)
	}

	summary := Summary{Config: config.ID, Runs: len(rewards)}
	if summary.Runs == 0 {
		return summary
	}

	summary.MeanDuration = durations / time.Duration(summary.Runs)
	summary.MeanTreeSize = stat.Mean(sizes, nil)
	summary.MeanBestReward = stat.Mean(rewards, nil)
	summary.StddevBestReward = stat.StdDev(rewards, nil)
	return summary
}
