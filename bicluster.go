package bicluster

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Config controls how Bicluster clusters rows and columns.
// Start with [DefaultConfig] and override the fields you need.
type Config struct {
	// Method is the linkage rule used for both axes.
	// One of single, complete, average, weighted, ward, centroid, median.
	// Default: "average".
	Method LinkageMethod

	// Metric is the dissimilarity between two rows (or two columns).
	// Correlation distance is undefined for constant vectors, so filter
	// those out first (see MostVariableRows).
	// Default: CorrelationMetric.
	Metric DistanceMetric
}

// Result holds the two clusterings produced by Bicluster.
type Result struct {
	// RowLinkage clusters the rows of the input, shape (rows-1, 4).
	RowLinkage Linkage

	// ColLinkage clusters the columns of the input, shape (cols-1, 4).
	ColLinkage Linkage
}

// DefaultConfig returns a Config with average linkage on correlation
// distance.
func DefaultConfig() Config {
	return Config{
		Method: MethodAverage,
		Metric: CorrelationMetric{},
	}
}

// applyDefaults fills in zero-valued config fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.Method == "" {
		cfg.Method = MethodAverage
	}
	if cfg.Metric == nil {
		cfg.Metric = CorrelationMetric{}
	}
}

// validateConfig checks that cfg fields are valid and returns a descriptive error if not.
func validateConfig(cfg *Config) error {
	return validateMethodMetric(cfg.Method, cfg.Metric)
}

// Bicluster clusters the rows of data and, independently, its columns,
// using the same method and metric for both.
func Bicluster(data mat.Matrix, cfg Config) (*Result, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	rows, err := ComputeLinkage(data, cfg.Method, cfg.Metric)
	if err != nil {
		return nil, fmt.Errorf("bicluster: clustering rows: %w", err)
	}
	cols, err := ComputeLinkage(data.T(), cfg.Method, cfg.Metric)
	if err != nil {
		return nil, fmt.Errorf("bicluster: clustering columns: %w", err)
	}
	return &Result{RowLinkage: rows, ColLinkage: cols}, nil
}
