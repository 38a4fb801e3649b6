package bicluster

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// DistanceMetric measures the dissimilarity of two observation vectors.
type DistanceMetric interface {
	Distance(a, b []float64) float64
}

// DistanceFunc adapts a plain function into a DistanceMetric.
type DistanceFunc func(a, b []float64) float64

func (f DistanceFunc) Distance(a, b []float64) float64 { return f(a, b) }

// EuclideanMetric computes the Euclidean (L2) distance.
type EuclideanMetric struct{}

func (EuclideanMetric) Distance(a, b []float64) float64 {
	return floats.Distance(a, b, 2)
}

// SqEuclideanMetric computes the squared Euclidean distance.
type SqEuclideanMetric struct{}

func (SqEuclideanMetric) Distance(a, b []float64) float64 {
	d := floats.Distance(a, b, 2)
	return d * d
}

// ManhattanMetric computes the Manhattan (L1 / city-block) distance.
type ManhattanMetric struct{}

func (ManhattanMetric) Distance(a, b []float64) float64 {
	return floats.Distance(a, b, 1)
}

// ChebyshevMetric computes the Chebyshev (L-infinity) distance.
type ChebyshevMetric struct{}

func (ChebyshevMetric) Distance(a, b []float64) float64 {
	return floats.Distance(a, b, math.Inf(1))
}

// MinkowskiMetric computes the Minkowski distance parameterized by P.
// P must be >= 1. Panics if P < 1.
type MinkowskiMetric struct {
	P float64
}

func (m MinkowskiMetric) Distance(a, b []float64) float64 {
	if m.P < 1 {
		panic("MinkowskiMetric: P must be >= 1")
	}
	return floats.Distance(a, b, m.P)
}

// CosineMetric computes the cosine distance: 1 - cosine_similarity.
// For a zero vector the result is NaN (0/0).
type CosineMetric struct{}

func (CosineMetric) Distance(a, b []float64) float64 {
	return 1.0 - floats.Dot(a, b)/(floats.Norm(a, 2)*floats.Norm(b, 2))
}

// CorrelationMetric computes the correlation distance: 1 - Pearson's r.
// It is undefined (NaN) when either vector is constant.
type CorrelationMetric struct{}

func (CorrelationMetric) Distance(a, b []float64) float64 {
	return 1.0 - stat.Correlation(a, b, nil)
}

// MetricByName returns the metric registered under one of the scipy pdist
// names: euclidean, sqeuclidean, cityblock, chebyshev, minkowski (P=2),
// cosine, correlation.
func MetricByName(name string) (DistanceMetric, error) {
	switch name {
	case "euclidean":
		return EuclideanMetric{}, nil
	case "sqeuclidean":
		return SqEuclideanMetric{}, nil
	case "cityblock", "manhattan":
		return ManhattanMetric{}, nil
	case "chebyshev":
		return ChebyshevMetric{}, nil
	case "minkowski":
		return MinkowskiMetric{P: 2}, nil
	case "cosine":
		return CosineMetric{}, nil
	case "correlation":
		return CorrelationMetric{}, nil
	default:
		return nil, fmt.Errorf("bicluster: unknown distance metric %q", name)
	}
}

// PairwiseDistances computes the symmetric dissimilarity matrix between the
// rows of data. It returns an error naming the first pair whose distance is
// not finite, since no linkage is defined over NaN or Inf.
func PairwiseDistances(data mat.Matrix, metric DistanceMetric) (*mat.SymDense, error) {
	n, _ := data.Dims()
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = mat.Row(nil, i, data)
	}

	dist := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := metric.Distance(rows[i], rows[j])
			if math.IsNaN(d) || math.IsInf(d, 0) {
				return nil, fmt.Errorf("bicluster: distance between observations %d and %d is %v; "+
					"the metric is undefined for these rows (constant rows under correlation distance?)", i, j, d)
			}
			dist.SetSym(i, j, d)
		}
	}
	return dist, nil
}
