package experiments

import (
	"fmt"
	"os"

	"uct/experiments/metrics"
	"uct/meta"
	"uct/searcher"

	"gopkg.in/yaml.v3"
)

// Config describes one experiment: the demo board it runs on and the
// searcher configurations it measures.
type Config struct {
	Name     string                 `yaml:"name"`
	Runs     int                    `yaml:"runs"`
	Cells    int                    `yaml:"cells"`
	Seed     uint64                 `yaml:"seed"`
	Searches []metrics.SearchConfig `yaml:"searches"`
}

// DefaultConfig sweeps the exploration constant around the library default,
// mirroring the configurations a fresh checkout is expected to measure.
func DefaultConfig() Config {
	return Config{
		Name:  "exploration_sweep",
		Runs:  meta.RUNS,
		Cells: meta.CELLS,
		Seed:  meta.SEED,
		Searches: []metrics.SearchConfig{
			{ID: 1, Exploration: 0, Iterations: meta.ITERATIONS},
			{ID: 2, Exploration: searcher.ExplorationRate / 2, Iterations: meta.ITERATIONS},
			{ID: 3, Exploration: searcher.ExplorationRate, Iterations: meta.ITERATIONS},
			{ID: 4, Exploration: searcher.ExplorationRate * 2, Iterations: meta.ITERATIONS},
			{ID: 5, Exploration: searcher.ExplorationRate * 4, Iterations: meta.ITERATIONS},
		},
	}
}

// LoadConfig reads an experiment config from a YAML file, filling omitted
// fields from the defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config file: %w", err)
	}

	if config.Runs <= 0 || config.Cells <= 0 {
		return Config{}, fmt.Errorf("config %q must have positive runs and cells", config.Name)
	}
	if len(config.Searches) == 0 {
		return Config{}, fmt.Errorf("config %q has no search configurations", config.Name)
	}
	for _, search := range config.Searches {
		if search.Iterations <= 0 {
			return Config{}, fmt.Errorf("search config %d must have positive iterations", search.ID)
		}
	}

	return config, nil
}
