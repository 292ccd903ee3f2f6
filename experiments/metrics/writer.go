package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type Writer struct {
	baseDir string
}

// NewWriter creates a timestamped output directory for one experiment.
func NewWriter(name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join("results", name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) WriteConfigs(configs []SearchConfig) error {
	path := filepath.Join(w.baseDir, "search_configs.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create search configs file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"id", "exploration", "iterations"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write search configs header: %w", err)
	}

	for _, config := range configs {
		row := []string{
			strconv.Itoa(config.ID),
			strconv.FormatFloat(config.Exploration, 'f', -1, 64),
			strconv.Itoa(config.Iterations),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write search config row: %w", err)
		}
	}

	return nil
}

func (w *Writer) WriteRecords(records []SearchRecord) error {
	path := filepath.Join(w.baseDir, "search_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create search records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"id", "config", "run", "duration", "tree_size", "root_visits", "best_reward"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write search records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Config),
			strconv.Itoa(record.Run),
			record.Duration.String(),
			strconv.Itoa(record.TreeSize),
			strconv.Itoa(record.RootVisits),
			strconv.FormatFloat(record.BestReward, 'f', -1, 64),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write search record row: %w", err)
		}
	}

	return nil
}

func (w *Writer) WriteSummaries(summaries []Summary) error {
	path := filepath.Join(w.baseDir, "summaries.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create summaries file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"config", "runs", "mean_duration", "mean_tree_size", "mean_best_reward", "stddev_best_reward"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write summaries header: %w", err)
	}

	for _, summary := range summaries {
		row := []string{
			strconv.Itoa(summary.Config),
			strconv.Itoa(summary.Runs),
			summary.MeanDuration.String(),
			strconv.FormatFloat(summary.MeanTreeSize, 'f', 2, 64),
			strconv.FormatFloat(summary.MeanBestReward, 'f', -1, 64),
			strconv.FormatFloat(summary.StddevBestReward, 'f', -1, 64),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write summary row: %w", err)
		}
	}

	return nil
}

func (w *Writer) BaseDir() string {
	return w.baseDir
}
