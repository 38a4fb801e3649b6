package bicluster

import (
	"strings"
	"testing"
)

func TestSelectStrategy(t *testing.T) {
	tests := []struct {
		method   LinkageMethod
		expected strategy
	}{
		{MethodSingle, strategyMST},
		{MethodComplete, strategyNNChain},
		{MethodAverage, strategyNNChain},
		{MethodWeighted, strategyNNChain},
		{MethodWard, strategyNNChain},
		{MethodCentroid, strategyGeneric},
		{MethodMedian, strategyGeneric},
	}

	for _, tc := range tests {
		t.Run(string(tc.method), func(t *testing.T) {
			got, err := selectStrategy(tc.method)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.expected {
				t.Errorf("expected %d, got %d", tc.expected, got)
			}
		})
	}
}

func TestSelectStrategy_Unknown(t *testing.T) {
	_, err := selectStrategy("upgma")
	if err == nil {
		t.Fatal("expected error for unknown method")
	}
	if !strings.Contains(err.Error(), "upgma") {
		t.Errorf("error should name the method, got %q", err)
	}
}

func TestValidateMethodMetric(t *testing.T) {
	tests := []struct {
		name    string
		method  LinkageMethod
		metric  DistanceMetric
		wantErr bool
	}{
		{"average correlation", MethodAverage, CorrelationMetric{}, false},
		{"single cosine", MethodSingle, CosineMetric{}, false},
		{"ward euclidean", MethodWard, EuclideanMetric{}, false},
		{"ward minkowski p2", MethodWard, MinkowskiMetric{P: 2}, false},
		{"ward minkowski p3", MethodWard, MinkowskiMetric{P: 3}, true},
		{"ward correlation", MethodWard, CorrelationMetric{}, true},
		{"centroid cityblock", MethodCentroid, ManhattanMetric{}, true},
		{"median custom", MethodMedian, DistanceFunc(func(a, b []float64) float64 { return 0 }), true},
		{"nil metric", MethodAverage, nil, true},
		{"unknown method", LinkageMethod("nope"), EuclideanMetric{}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := validateMethodMetric(tc.method, tc.metric)
			if (err != nil) != tc.wantErr {
				t.Errorf("wantErr=%v, got %v", tc.wantErr, err)
			}
		})
	}
}
